package pdfexport

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	payrollapimodels "hrms-backend/models/api/payroll"
)

// GeneratePayslip - презентационное преобразование данных расчётного листа в PDF
func GeneratePayslip(payslip payrollapimodels.PayslipResponse) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GeneratePayslip panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "static/font/")
	pdf.AddPage()
	pdf.AddUTF8Font("Arial", "", "Arial.ttf")
	pdf.AddUTF8Font("Arial", "B", "Arial Bold.ttf")
	pdf.SetFont("Arial", "B", 16)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	pdf.CellFormat(0, 12, fmt.Sprintf("Расчётный лист за %s", payslip.Month), "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	pdf.Ln(4)
	writeLine(pdf, "Сотрудник", payslip.EmployeeName)
	writeLine(pdf, "Подразделение", payslip.Department)
	writeLine(pdf, "Должность", payslip.Designation)
	pdf.Ln(6)

	writeAmount(pdf, "Оклад", payslip.BasicSalary)
	writeAmount(pdf, "Надбавка за жильё", payslip.HRA)
	writeAmount(pdf, "Прочие надбавки", payslip.Allowances)
	writeAmount(pdf, "Начислено", payslip.Gross)
	writeAmount(pdf, "Удержания", payslip.Deductions)
	writeAmount(pdf, "Налог", payslip.TaxDeduction)
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	writeAmount(pdf, "К выплате", payslip.NetPay)

	var buf bytes.Buffer
	if err = pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeLine(pdf *fpdf.Fpdf, label, value string) {
	pdf.CellFormat(60, 8, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 8, value, "", 1, "L", false, 0, "")
}

func writeAmount(pdf *fpdf.Fpdf, label string, value float64) {
	pdf.CellFormat(60, 8, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("%.2f", value), "", 1, "R", false, 0, "")
}
