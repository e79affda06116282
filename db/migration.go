package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "hrms-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.Employee{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Employee")
	}
	if err := DB.AutoMigrate(&dbmodels.AttendanceLog{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры AttendanceLog")
	}
	if err := DB.AutoMigrate(&dbmodels.Timesheet{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Timesheet")
	}
	if err := DB.AutoMigrate(&dbmodels.Leave{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Leave")
	}
	if err := DB.AutoMigrate(&dbmodels.Payroll{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Payroll")
	}
	if err := DB.AutoMigrate(&dbmodels.Notification{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Notification")
	}
	if err := DB.AutoMigrate(&dbmodels.Holiday{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Holiday")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
