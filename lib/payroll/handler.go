package payrollhandler

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"hrms-backend/db"
	employeestore "hrms-backend/lib/employee/store"
	pdfexport "hrms-backend/lib/export/pdf"
	filestorage "hrms-backend/lib/file-storage"
	notificationhandler "hrms-backend/lib/notification"
	payrollstore "hrms-backend/lib/payroll/store"
	"hrms-backend/models"
	payrollapimodels "hrms-backend/models/api/payroll"
	timesheetapimodels "hrms-backend/models/api/timesheet"
	dbmodels "hrms-backend/models/db"
)

var ErrNotFound = errors.New("расчётный лист не найден")

type Provider interface {
	Upload(ctx context.Context, month string, file []byte, fileName string) (payrollapimodels.UploadResult, error)
	Payslip(employeeID, month string) (resp payrollapimodels.PayslipResponse, err error)
	PayslipPdf(employeeID, month string) ([]byte, string, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:         payrollstore.NewInstance(db.DB),
		employeeStore: employeestore.NewInstance(db.DB),
	}
}

type impl struct {
	store         payrollstore.Provider
	employeeStore employeestore.Provider
}

// Upload - массовая загрузка из xlsx.
// Колонки: почта, оклад, надбавка за жильё, прочие надбавки, удержания, налог.
// Существующие строки (сотрудник, месяц) неизменяемы и пропускаются.
func (i impl) Upload(ctx context.Context, month string, file []byte, fileName string) (result payrollapimodels.UploadResult, err error) {
	if _, err = timesheetapimodels.ParseMonth(month); err != nil {
		return result, err
	}
	f, err := excelize.OpenReader(bytes.NewReader(file))
	if err != nil {
		return result, errors.Wrap(err, "не удалось открыть xlsx")
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.WithError(closeErr).Error("ошибка закрытия файла")
		}
	}()
	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return result, errors.Wrap(err, "не удалось прочитать строки xlsx")
	}
	for idx, row := range rows {
		// первая строка - заголовок
		if idx == 0 {
			continue
		}
		rec, rowErr := parseRow(row)
		if rowErr != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("строка %d: %v", idx+1, rowErr))
			continue
		}
		emp, err := i.employeeStore.FindByEmail(rec.email)
		if err != nil {
			return result, err
		}
		if emp == nil {
			result.Errors = append(result.Errors, fmt.Sprintf("строка %d: сотрудник %s не найден", idx+1, rec.email))
			continue
		}
		exists, err := i.store.Exists(emp.ID, month)
		if err != nil {
			return result, err
		}
		if exists {
			result.Skipped++
			continue
		}
		_, err = i.store.Create(dbmodels.Payroll{
			EmployeeID:   emp.ID,
			Month:        month,
			BasicSalary:  rec.basic,
			HRA:          rec.hra,
			Allowances:   rec.allowances,
			Deductions:   rec.deductions,
			TaxDeduction: rec.tax,
			NetPay:       rec.basic + rec.hra + rec.allowances - rec.deductions - rec.tax,
		})
		if err != nil {
			return result, err
		}
		result.Inserted++
		notificationhandler.Instance.Notify(emp.ID, models.NotifyPayrollUploaded,
			fmt.Sprintf("Расчётный лист за %s доступен", month))
	}
	// архивная копия исходного файла, некритично
	if err := filestorage.Instance.UploadPayrollSource(ctx, month, file, fileName); err != nil {
		log.WithError(err).Error("ошибка архивирования файла загрузки зарплат")
	}
	return result, nil
}

func (i impl) Payslip(employeeID, month string) (resp payrollapimodels.PayslipResponse, err error) {
	rec, err := i.store.GetByEmployeeMonth(employeeID, month)
	if err != nil {
		return resp, err
	}
	if rec == nil {
		return resp, ErrNotFound
	}
	resp = payrollapimodels.PayslipResponse{
		EmployeeID:   rec.EmployeeID,
		Month:        rec.Month,
		BasicSalary:  rec.BasicSalary,
		HRA:          rec.HRA,
		Allowances:   rec.Allowances,
		Deductions:   rec.Deductions,
		TaxDeduction: rec.TaxDeduction,
		Gross:        rec.Gross(),
		NetPay:       rec.NetPay,
	}
	if rec.Employee != nil {
		resp.EmployeeName = rec.Employee.GetFullName()
		resp.Department = rec.Employee.Department
		resp.Designation = rec.Employee.Designation
	}
	return resp, nil
}

func (i impl) PayslipPdf(employeeID, month string) ([]byte, string, error) {
	payslip, err := i.Payslip(employeeID, month)
	if err != nil {
		return nil, "", err
	}
	pdfFile, err := pdfexport.GeneratePayslip(payslip)
	if err != nil {
		return nil, "", err
	}
	fileName := fmt.Sprintf("payslip_%s.pdf", month)
	return pdfFile, fileName, nil
}

type uploadRow struct {
	email      string
	basic      float64
	hra        float64
	allowances float64
	deductions float64
	tax        float64
}

func parseRow(row []string) (rec uploadRow, err error) {
	if len(row) < 6 {
		return rec, errors.New("недостаточно колонок")
	}
	if row[0] == "" {
		return rec, errors.New("не указана почта сотрудника")
	}
	rec.email = row[0]
	values := make([]float64, 5)
	for idx := 0; idx < 5; idx++ {
		cell := row[idx+1]
		if cell == "" {
			continue
		}
		values[idx], err = strconv.ParseFloat(cell, 64)
		if err != nil {
			return rec, errors.Errorf("колонка %d не является числом", idx+2)
		}
	}
	rec.basic, rec.hra, rec.allowances, rec.deductions, rec.tax = values[0], values[1], values[2], values[3], values[4]
	return rec, nil
}
