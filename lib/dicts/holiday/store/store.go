package holidaystore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "hrms-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Holiday) error
	Count() (int64, error)
	GetList() (list []dbmodels.Holiday, err error)
	GetByPeriod(from, to time.Time) (list []dbmodels.Holiday, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Holiday) error {
	return i.db.
		Save(&rec).
		Error
}

func (i impl) Count() (count int64, err error) {
	err = i.db.Model(dbmodels.Holiday{}).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) GetList() (list []dbmodels.Holiday, err error) {
	err = i.db.Model(dbmodels.Holiday{}).
		Order("date").
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

func (i impl) GetByPeriod(from, to time.Time) (list []dbmodels.Holiday, err error) {
	err = i.db.Model(dbmodels.Holiday{}).
		Where("date >= ? AND date <= ?", from, to).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
