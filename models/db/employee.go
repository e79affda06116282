package dbmodels

import (
	"fmt"
	"time"

	"hrms-backend/models"
	employeeapimodels "hrms-backend/models/api/employee"
)

type Employee struct {
	BaseModel
	Email        string          `gorm:"type:varchar(255);uniqueIndex"`
	Password     string          `gorm:"type:varchar(128)"`
	FirstName    string          `gorm:"type:varchar(150)"`
	LastName     string          `gorm:"type:varchar(150)"`
	Department   string          `gorm:"type:varchar(150)"`
	Designation  string          `gorm:"type:varchar(150)"`
	Role         models.UserRole `gorm:"type:varchar(50)"`
	ManagerID    *string         `gorm:"type:varchar(36);index"`
	Manager      *Employee       `gorm:"foreignKey:ManagerID"`
	IsActive     bool            `gorm:"default:true"`
	BenchSince   *time.Time
	TokenVersion int `gorm:"default:0"`
	LastLogin    time.Time
}

func (r Employee) GetFullName() string {
	return fmt.Sprintf("%s %s", r.FirstName, r.LastName)
}

func (r Employee) ToModel() employeeapimodels.Employee {
	rec := employeeapimodels.Employee{
		ID:          r.ID,
		Email:       r.Email,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Department:  r.Department,
		Designation: r.Designation,
		Role:        string(r.Role),
		RoleName:    r.Role.ToHuman(),
		ManagerID:   r.ManagerID,
		IsActive:    r.IsActive,
	}
	if r.Manager != nil {
		rec.ManagerName = r.Manager.GetFullName()
	}
	if r.BenchSince != nil {
		rec.BenchSince = r.BenchSince.Format("2006-01-02")
	}
	return rec
}
