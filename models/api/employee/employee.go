package employeeapimodels

import (
	"net/mail"

	"github.com/pkg/errors"
)

type Employee struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Department  string  `json:"department"`
	Designation string  `json:"designation"`
	Role        string  `json:"role"`
	RoleName    string  `json:"role_name"`
	ManagerID   *string `json:"manager_id,omitempty"`
	ManagerName string  `json:"manager_name,omitempty"`
	IsActive    bool    `json:"is_active"`
	BenchSince  string  `json:"bench_since,omitempty"`
}

type EmployeeCreateRequest struct {
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Department  string  `json:"department"`
	Designation string  `json:"designation"`
	Role        string  `json:"role"`
	ManagerID   *string `json:"manager_id"`
}

func (r EmployeeCreateRequest) Validate() error {
	_, err := mail.ParseAddress(r.Email)
	if err != nil {
		return errors.New("почта имеет неправильный формат")
	}
	if r.Password == "" {
		return errors.New("не указан пароль")
	}
	if r.FirstName == "" || r.LastName == "" {
		return errors.New("не указаны имя и фамилия")
	}
	return nil
}

type EmployeeUpdateRequest struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Department  *string `json:"department"`
	Designation *string `json:"designation"`
	Role        *string `json:"role"`
	ManagerID   *string `json:"manager_id"`
	IsActive    *bool   `json:"is_active"`
}

// Узел оргструктуры
type OrgNode struct {
	Employee
	Reports []OrgNode `json:"reports,omitempty"`
}
