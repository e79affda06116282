package leaveapimodels

import (
	"time"

	"github.com/pkg/errors"

	"hrms-backend/models"
)

type ApplyRequest struct {
	FromDate  string           `json:"from_date"` // YYYY-MM-DD
	ToDate    string           `json:"to_date"`   // YYYY-MM-DD
	LeaveType models.LeaveType `json:"leave_type"`
	Reason    string           `json:"reason"`
}

func (r ApplyRequest) Validate() error {
	from, err := time.Parse("2006-01-02", r.FromDate)
	if err != nil {
		return errors.New("дата начала должна быть в формате YYYY-MM-DD")
	}
	to, err := time.Parse("2006-01-02", r.ToDate)
	if err != nil {
		return errors.New("дата окончания должна быть в формате YYYY-MM-DD")
	}
	if to.Before(from) {
		return errors.New("дата окончания раньше даты начала")
	}
	if !r.LeaveType.Valid() {
		return errors.New("недопустимый тип отпуска")
	}
	if r.Reason == "" {
		return errors.New("не указана причина")
	}
	return nil
}

func (r ApplyRequest) Dates() (from, to time.Time) {
	from, _ = time.Parse("2006-01-02", r.FromDate)
	to, _ = time.Parse("2006-01-02", r.ToDate)
	return from, to
}

type ActionRequest struct {
	Action models.LeaveStatus `json:"action"`
	Reason string             `json:"reason"`
}

func (r ActionRequest) Validate() error {
	if r.Action != models.LeaveApproved && r.Action != models.LeaveRejected {
		return errors.New("недопустимое действие")
	}
	return nil
}

type LeaveItem struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	FromDate     string  `json:"from_date"`
	ToDate       string  `json:"to_date"`
	Days         int     `json:"days"`
	LeaveType    string  `json:"leave_type"`
	Status       string  `json:"status"`
	Reason       string  `json:"reason"`
	ActionReason string  `json:"action_reason,omitempty"`
	ActionedBy   *string `json:"actioned_by,omitempty"`
}

type BalanceItem struct {
	LeaveType string `json:"leave_type"`
	TypeName  string `json:"type_name"`
	Allocated int    `json:"allocated"`
	Used      int    `json:"used"`
	Available int    `json:"available"`
}
