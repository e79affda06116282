package dictapimodels

import (
	"time"

	"github.com/pkg/errors"
)

type HolidayData struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

func (r HolidayData) Validate() error {
	if _, err := time.Parse("2006-01-02", r.Date); err != nil {
		return errors.New("дата имеет неправильный формат, ожидается 2006-01-02")
	}
	if r.Name == "" {
		return errors.New("не указано название праздника")
	}
	return nil
}

type HolidayItem struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Name string `json:"name"`
}
