package dbmodels

import (
	"time"

	"hrms-backend/models"
)

type Timesheet struct {
	BaseModel
	EmployeeID   string    `gorm:"type:varchar(36);index:idx_ts_employee"`
	Employee     *Employee `gorm:"foreignKey:EmployeeID"`
	WorkDate     time.Time `gorm:"type:date;index:idx_ts_date"`
	Project      string    `gorm:"type:varchar(255)"`
	Task         string    `gorm:"type:varchar(255)"`
	Hours        float64
	Status       models.TimesheetStatus `gorm:"type:varchar(20);index"`
	RejectReason string                 `gorm:"type:varchar(255)"`
}
