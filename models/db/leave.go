package dbmodels

import (
	"time"

	"hrms-backend/models"
)

type Leave struct {
	BaseModel
	EmployeeID   string             `gorm:"type:varchar(36);index:idx_leave_employee"`
	Employee     *Employee          `gorm:"foreignKey:EmployeeID"`
	FromDate     time.Time          `gorm:"type:date"`
	ToDate       time.Time          `gorm:"type:date"`
	LeaveType    models.LeaveType   `gorm:"type:varchar(20)"`
	Status       models.LeaveStatus `gorm:"type:varchar(20);index"`
	Reason       string             `gorm:"type:varchar(500)"`
	ActionReason string             `gorm:"type:varchar(500)"`
	ActionedBy   *string            `gorm:"type:varchar(36)"`
}

// Количество календарных дней запроса, включая границы
func (r Leave) Days() int {
	return int(r.ToDate.Sub(r.FromDate).Hours()/24) + 1
}

func (r Leave) Covers(day time.Time) bool {
	d := day.Truncate(24 * time.Hour)
	return !d.Before(r.FromDate) && !d.After(r.ToDate)
}
