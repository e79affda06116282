package dbmodels

type Payroll struct {
	BaseModel
	EmployeeID   string    `gorm:"type:varchar(36);index:idx_payroll_employee_month,unique"`
	Employee     *Employee `gorm:"foreignKey:EmployeeID"`
	Month        string    `gorm:"type:varchar(7);index:idx_payroll_employee_month,unique"` // YYYY-MM
	BasicSalary  float64
	HRA          float64
	Allowances   float64
	Deductions   float64
	TaxDeduction float64
	NetPay       float64
}

func (r Payroll) Gross() float64 {
	return r.BasicSalary + r.HRA + r.Allowances
}
