package holidayprovider

import (
	"time"

	"github.com/pkg/errors"

	"hrms-backend/db"
	holidaystore "hrms-backend/lib/dicts/holiday/store"
	dbmodels "hrms-backend/models/db"
)

type Provider interface {
	GetList() ([]dbmodels.Holiday, error)
	Add(date, name string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: holidaystore.NewInstance(db.DB),
	}
}

type impl struct {
	store holidaystore.Provider
}

func (i impl) GetList() ([]dbmodels.Holiday, error) {
	return i.store.GetList()
}

func (i impl) Add(date, name string) error {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return errors.New("дата должна быть в формате YYYY-MM-DD")
	}
	if name == "" {
		return errors.New("не указано название праздника")
	}
	return i.store.Create(dbmodels.Holiday{Date: day, Name: name})
}
