package payrollstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "hrms-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Payroll) (string, error)
	Exists(employeeID, month string) (bool, error)
	GetByEmployeeMonth(employeeID, month string) (rec *dbmodels.Payroll, err error)
	GetByMonth(month string) (list []dbmodels.Payroll, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Payroll) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Exists(employeeID, month string) (bool, error) {
	err := i.db.
		Where("employee_id = ?", employeeID).
		Where("month = ?", month).
		First(&dbmodels.Payroll{}).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (i impl) GetByEmployeeMonth(employeeID, month string) (rec *dbmodels.Payroll, err error) {
	err = i.db.Model(dbmodels.Payroll{}).
		Where("employee_id = ?", employeeID).
		Where("month = ?", month).
		Preload(clause.Associations).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) GetByMonth(month string) (list []dbmodels.Payroll, err error) {
	err = i.db.Model(dbmodels.Payroll{}).
		Where("month = ?", month).
		Preload("Employee").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
