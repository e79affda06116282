package attendancestore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "hrms-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.AttendanceLog) (string, error)
	Update(id string, updMap map[string]interface{}) error
	// GetOpenForUpdate - открытая смена сотрудника под блокировкой строки,
	// использовать только внутри транзакции
	GetOpenForUpdate(employeeID string) (rec *dbmodels.AttendanceLog, err error)
	GetOpen(employeeID string) (rec *dbmodels.AttendanceLog, err error)
	GetByDate(employeeID string, businessDate time.Time) (rec *dbmodels.AttendanceLog, err error)
	GetHistory(employeeID string, days int) (list []dbmodels.AttendanceLog, err error)
	GetByPeriod(employeeID string, from, to time.Time) (list []dbmodels.AttendanceLog, err error)
	GetStale(openedBefore time.Time, alertLevel int) (list []dbmodels.AttendanceLog, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.AttendanceLog) (string, error) {
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
		Model(&dbmodels.AttendanceLog{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) GetOpenForUpdate(employeeID string) (rec *dbmodels.AttendanceLog, err error) {
	err = i.db.Model(dbmodels.AttendanceLog{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("employee_id = ?", employeeID).
		Where("clock_out IS NULL").
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

func (i impl) GetOpen(employeeID string) (rec *dbmodels.AttendanceLog, err error) {
	err = i.db.Model(dbmodels.AttendanceLog{}).
		Where("employee_id = ?", employeeID).
		Where("clock_out IS NULL").
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

func (i impl) GetByDate(employeeID string, businessDate time.Time) (rec *dbmodels.AttendanceLog, err error) {
	err = i.db.Model(dbmodels.AttendanceLog{}).
		Where("employee_id = ?", employeeID).
		Where("business_date = ?", businessDate).
		Order("clock_in desc").
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

func (i impl) GetHistory(employeeID string, days int) (list []dbmodels.AttendanceLog, err error) {
	err = i.db.Model(dbmodels.AttendanceLog{}).
		Where("employee_id = ?", employeeID).
		Order("business_date desc").
		Limit(days).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) GetByPeriod(employeeID string, from, to time.Time) (list []dbmodels.AttendanceLog, err error) {
	err = i.db.Model(dbmodels.AttendanceLog{}).
		Where("employee_id = ?", employeeID).
		Where("business_date >= ? AND business_date <= ?", from, to).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) GetStale(openedBefore time.Time, alertLevel int) (list []dbmodels.AttendanceLog, err error) {
	err = i.db.Model(dbmodels.AttendanceLog{}).
		Where("clock_out IS NULL").
		Where("clock_in < ?", openedBefore).
		Where("alert_level = ?", alertLevel).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
