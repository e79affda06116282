package leavestore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Leave) (string, error)
	GetByID(id string) (rec *dbmodels.Leave, err error)
	GetByEmployee(employeeID string) (list []dbmodels.Leave, err error)
	GetPending(managerID *string) (list []dbmodels.Leave, err error)
	// GetApprovedByPeriod - согласованные отпуска, пересекающие период
	GetApprovedByPeriod(employeeID string, from, to time.Time) (list []dbmodels.Leave, err error)
	GetApprovedByYear(employeeID string, year int) (list []dbmodels.Leave, err error)
	// UpdateStatusGuarded - действие только над PENDING-заявкой;
	// возвращает количество затронутых строк
	UpdateStatusGuarded(id string, status models.LeaveStatus, reason, actionedBy string) (int64, error)
	DeletePendingOwned(id, employeeID string) (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Leave) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.Leave, err error) {
	err = i.db.Model(dbmodels.Leave{}).
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

func (i impl) GetByEmployee(employeeID string) (list []dbmodels.Leave, err error) {
	err = i.db.Model(dbmodels.Leave{}).
		Where("employee_id = ?", employeeID).
		Order("from_date desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) GetPending(managerID *string) (list []dbmodels.Leave, err error) {
	tx := i.db.Model(dbmodels.Leave{}).
		Where("status = ?", models.LeavePending)
	if managerID != nil {
		tx = tx.Where("employee_id in (select id from employees where manager_id = ?)", *managerID)
	}
	err = tx.
		Preload("Employee").
		Order("from_date").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) GetApprovedByPeriod(employeeID string, from, to time.Time) (list []dbmodels.Leave, err error) {
	err = i.db.Model(dbmodels.Leave{}).
		Where("employee_id = ?", employeeID).
		Where("status = ?", models.LeaveApproved).
		Where("from_date <= ? AND to_date >= ?", to, from).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) GetApprovedByYear(employeeID string, year int) (list []dbmodels.Leave, err error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	return i.GetApprovedByPeriod(employeeID, from, to)
}

func (i impl) UpdateStatusGuarded(id string, status models.LeaveStatus, reason, actionedBy string) (int64, error) {
	res := i.db.
		Model(&dbmodels.Leave{}).
		Where("id = ?", id).
		Where("status = ?", models.LeavePending).
		Updates(map[string]interface{}{
			"Status":       status,
			"ActionReason": reason,
			"ActionedBy":   actionedBy,
		})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (i impl) DeletePendingOwned(id, employeeID string) (int64, error) {
	res := i.db.
		Where("id = ?", id).
		Where("employee_id = ?", employeeID).
		Where("status = ?", models.LeavePending).
		Delete(&dbmodels.Leave{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
