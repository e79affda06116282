package dbmodels

import (
	"hrms-backend/models"
)

type Notification struct {
	BaseModel
	UserID  string                  `gorm:"type:varchar(36);index:idx_notify_user"`
	Code    models.NotificationCode `gorm:"type:varchar(50);index:idx_notify_code"`
	Message string                  `gorm:"type:varchar(500)"`
	IsRead  bool                    `gorm:"default:false"`
}
