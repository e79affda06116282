package models

type UserRole string

const (
	UserRoleEmployee UserRole = "EMPLOYEE"
	UserRoleManager  UserRole = "MANAGER"
	UserRoleHR       UserRole = "HR"
	UserRoleAdmin    UserRole = "ADMIN"
)

var roleHumanName = map[UserRole]string{
	UserRoleEmployee: "Сотрудник",
	UserRoleManager:  "Руководитель",
	UserRoleHR:       "HR-специалист",
	UserRoleAdmin:    "Администратор",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

// IsStaff - роли с доступом ко всем сотрудникам
func (r UserRole) IsStaff() bool {
	return r == UserRoleHR || r == UserRoleAdmin
}

func (r UserRole) CanApprove() bool {
	return r == UserRoleManager || r.IsStaff()
}

const SystemUser = "Система"
