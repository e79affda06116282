package employeestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Employee) (string, error)
	Update(employeeID string, updMap map[string]interface{}) error
	Delete(employeeID string) error
	GetByID(employeeID string) (rec *dbmodels.Employee, err error)
	FindByEmail(email string) (rec *dbmodels.Employee, err error)
	GetList(onlyActive bool) (list []dbmodels.Employee, err error)
	GetDirectReports(managerID string) (list []dbmodels.Employee, err error)
	GetByRoles(roles []models.UserRole) (list []dbmodels.Employee, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Employee) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(employeeID string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.Employee{}).
		Where("id = ?", employeeID).
		Updates(updMap).
		Error
}

func (i impl) Delete(employeeID string) error {
	return i.db.
		Where("id = ?", employeeID).
		Delete(&dbmodels.Employee{}).
		Error
}

func (i impl) GetByID(employeeID string) (rec *dbmodels.Employee, err error) {
	err = i.db.Model(dbmodels.Employee{}).
		Where("id = ?", employeeID).
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

func (i impl) FindByEmail(email string) (rec *dbmodels.Employee, err error) {
	err = i.db.Model(dbmodels.Employee{}).
		Where("email = ?", email).
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

func (i impl) GetList(onlyActive bool) (list []dbmodels.Employee, err error) {
	tx := i.db.Model(dbmodels.Employee{})
	if onlyActive {
		tx = tx.Where("is_active = true")
	}
	err = tx.
		Preload(clause.Associations).
		Order("last_name, first_name").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) GetDirectReports(managerID string) (list []dbmodels.Employee, err error) {
	err = i.db.Model(dbmodels.Employee{}).
		Where("manager_id = ?", managerID).
		Where("is_active = true").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) GetByRoles(roles []models.UserRole) (list []dbmodels.Employee, err error) {
	err = i.db.Model(dbmodels.Employee{}).
		Where("role in ?", roles).
		Where("is_active = true").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
