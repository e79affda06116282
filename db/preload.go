package db

import (
	"time"

	log "github.com/sirupsen/logrus"

	"hrms-backend/config"
	holidaystore "hrms-backend/lib/dicts/holiday/store"
	employeestore "hrms-backend/lib/employee/store"
	authutils "hrms-backend/lib/utils/auth-utils"
	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"
)

func InitPreload() {
	addAdmin()
	fillHolidays()
}

func addAdmin() {
	if config.Conf.Admin.Email == "" {
		log.Warn("администратор не добавлен, отсутствует настройка ADMIN_EMAIL")
		return
	}
	store := employeestore.NewInstance(DB)
	existedRec, err := store.FindByEmail(config.Conf.Admin.Email)
	if err != nil {
		log.WithError(err).Error("ошибка добавления администратора")
		return
	}
	if existedRec != nil {
		return
	}
	hash, err := authutils.HashPassword(config.Conf.Admin.Password)
	if err != nil {
		log.WithError(err).Error("ошибка добавления администратора")
		return
	}
	rec := dbmodels.Employee{
		IsActive:  true,
		Role:      models.UserRoleAdmin,
		Password:  hash,
		FirstName: config.Conf.Admin.FirstName,
		LastName:  config.Conf.Admin.LastName,
		Email:     config.Conf.Admin.Email,
	}
	_, err = store.Create(rec)
	if err != nil {
		log.WithError(err).Error("ошибка добавления администратора")
	}
}

// Типовой производственный календарь, добавляется только в пустую таблицу
func fillHolidays() {
	store := holidaystore.NewInstance(DB)
	count, err := store.Count()
	if err != nil {
		log.WithError(err).Error("ошибка предзаполнения праздничных дней")
		return
	}
	if count > 0 {
		return
	}
	year := time.Now().Year()
	defaults := []dbmodels.Holiday{
		{Date: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), Name: "Новый год"},
		{Date: time.Date(year, time.January, 7, 0, 0, 0, 0, time.UTC), Name: "Рождество"},
		{Date: time.Date(year, time.February, 23, 0, 0, 0, 0, time.UTC), Name: "День защитника Отечества"},
		{Date: time.Date(year, time.March, 8, 0, 0, 0, 0, time.UTC), Name: "Международный женский день"},
		{Date: time.Date(year, time.May, 1, 0, 0, 0, 0, time.UTC), Name: "Праздник весны и труда"},
		{Date: time.Date(year, time.May, 9, 0, 0, 0, 0, time.UTC), Name: "День Победы"},
		{Date: time.Date(year, time.June, 12, 0, 0, 0, 0, time.UTC), Name: "День России"},
		{Date: time.Date(year, time.November, 4, 0, 0, 0, 0, time.UTC), Name: "День народного единства"},
	}
	for _, rec := range defaults {
		if err := store.Create(rec); err != nil {
			log.WithError(err).Error("ошибка предзаполнения праздничных дней")
			return
		}
	}
	log.Info("Предзаполнен производственный календарь")
}
