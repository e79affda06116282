package timesheetstore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Timesheet) (string, error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.Timesheet, err error)
	GetByPeriod(employeeID string, from, to time.Time) (list []dbmodels.Timesheet, err error)
	// GetForApproval - записи на согласовании за период;
	// managerID=nil - без ограничения по руководителю (HR/админ)
	GetForApproval(from, to time.Time, managerID *string) (list []dbmodels.Timesheet, err error)
	GetRejected(managerID *string) (list []dbmodels.Timesheet, err error)
	// UpdateStatusGuarded - смена статуса только из SUBMITTED;
	// возвращает количество затронутых строк
	UpdateStatusGuarded(id string, status models.TimesheetStatus, reason string) (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Timesheet) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.Timesheet{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) GetByID(id string) (rec *dbmodels.Timesheet, err error) {
	err = i.db.Model(dbmodels.Timesheet{}).
		Where("id = ?", id).
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

func (i impl) GetByPeriod(employeeID string, from, to time.Time) (list []dbmodels.Timesheet, err error) {
	err = i.db.Model(dbmodels.Timesheet{}).
		Where("employee_id = ?", employeeID).
		Where("work_date >= ? AND work_date <= ?", from, to).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) GetForApproval(from, to time.Time, managerID *string) (list []dbmodels.Timesheet, err error) {
	tx := i.db.Model(dbmodels.Timesheet{}).
		Where("status = ?", models.TimesheetSubmitted).
		Where("work_date >= ? AND work_date <= ?", from, to)
	if managerID != nil {
		tx = tx.Where("employee_id in (select id from employees where manager_id = ?)", *managerID)
	}
	err = tx.
		Preload("Employee").
		Order("work_date").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) GetRejected(managerID *string) (list []dbmodels.Timesheet, err error) {
	tx := i.db.Model(dbmodels.Timesheet{}).
		Where("status = ?", models.TimesheetRejected)
	if managerID != nil {
		tx = tx.Where("employee_id in (select id from employees where manager_id = ?)", *managerID)
	}
	err = tx.
		Preload("Employee").
		Order("work_date desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) UpdateStatusGuarded(id string, status models.TimesheetStatus, reason string) (int64, error) {
	res := i.db.
		Model(&dbmodels.Timesheet{}).
		Where("id = ?", id).
		Where("status = ?", models.TimesheetSubmitted).
		Updates(map[string]interface{}{
			"Status":       status,
			"RejectReason": reason,
		})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
