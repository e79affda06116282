package dbmodels

import (
	"time"

	"hrms-backend/models"
)

// Одна запись на сотрудника и бизнес-дату.
// Инвариант: не более одной открытой (clock_out IS NULL) записи на сотрудника,
// обеспечивается блокировкой строки в транзакции, а не ограничением БД.
type AttendanceLog struct {
	BaseModel
	EmployeeID   string    `gorm:"type:varchar(36);index:idx_att_employee"`
	Employee     *Employee `gorm:"foreignKey:EmployeeID"`
	BusinessDate time.Time `gorm:"type:date;index:idx_att_date"`
	ClockIn      time.Time
	ClockOut     *time.Time
	Status       models.AttendanceStatus `gorm:"type:varchar(20)"`
	BreakStart   *time.Time
	BreakMinutes int
	WorkMinutes  int
	Project      string `gorm:"type:varchar(255)"`
	Task         string `gorm:"type:varchar(255)"`
	Latitude     *float64
	Longitude    *float64
	// уровень отправленного алерта о зависшей смене, 0 - не отправлялся
	AlertLevel int `gorm:"default:0"`
}

func (r AttendanceLog) IsOpen() bool {
	return r.ClockOut == nil
}
