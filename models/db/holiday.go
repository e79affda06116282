package dbmodels

import (
	"time"
)

type Holiday struct {
	BaseModel
	Date time.Time `gorm:"type:date;uniqueIndex"`
	Name string    `gorm:"type:varchar(255)"`
}
