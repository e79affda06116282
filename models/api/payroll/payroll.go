package payrollapimodels

type PayslipResponse struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Department   string  `json:"department"`
	Designation  string  `json:"designation"`
	Month        string  `json:"month"`
	BasicSalary  float64 `json:"basic_salary"`
	HRA          float64 `json:"hra"`
	Allowances   float64 `json:"allowances"`
	Deductions   float64 `json:"deductions"`
	TaxDeduction float64 `json:"tax_deduction"`
	Gross        float64 `json:"gross"`
	NetPay       float64 `json:"net_pay"`
}

type UploadResult struct {
	Inserted int      `json:"inserted"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}
