package timesheetapimodels

import (
	"time"

	"github.com/pkg/errors"

	"hrms-backend/models"
)

// Строка календаря табеля, одна на календарный день месяца
type CalendarDay struct {
	Date      string         `json:"date"`
	Weekday   string         `json:"weekday"`
	Type      models.DayType `json:"type"`
	StartTime string         `json:"start_time,omitempty"`
	EndTime   string         `json:"end_time,omitempty"`
	Project   string         `json:"project,omitempty"`
	Task      string         `json:"task,omitempty"`
	Hours     float64        `json:"hours,omitempty"`
	Status    string         `json:"status,omitempty"`
	LeaveType string         `json:"leave_type,omitempty"`
	Holiday   string         `json:"holiday,omitempty"`
}

type CalendarResponse struct {
	Month      string        `json:"month"`
	Days       []CalendarDay `json:"days"`
	HoursTotal float64       `json:"hours_total"`
	DaysWorked int           `json:"days_worked"`
	LeaveDays  int           `json:"leave_days"`
}

type ApprovalItem struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	WorkDate     string  `json:"work_date"`
	Project      string  `json:"project"`
	Task         string  `json:"task"`
	Hours        float64 `json:"hours"`
	Status       string  `json:"status"`
	RejectReason string  `json:"reject_reason,omitempty"`
}

type StatusRequest struct {
	Status models.TimesheetStatus `json:"status"`
	Reason string                 `json:"reason"`
}

func (r StatusRequest) Validate() error {
	if r.Status != models.TimesheetApproved && r.Status != models.TimesheetRejected {
		return errors.New("недопустимый статус")
	}
	if r.Status == models.TimesheetRejected && r.Reason == "" {
		return errors.New("не указана причина отклонения")
	}
	return nil
}

type EditRequest struct {
	Project *string                 `json:"project"`
	Task    *string                 `json:"task"`
	Hours   *float64                `json:"hours"`
	Status  *models.TimesheetStatus `json:"status"`
}

func (r EditRequest) Validate() error {
	if r.Hours != nil && (*r.Hours < 0 || *r.Hours > 24) {
		return errors.New("недопустимое количество часов")
	}
	if r.Status != nil && !r.Status.Valid() {
		return errors.New("недопустимый статус")
	}
	return nil
}

// ParseMonth - разбор параметра month в формате YYYY-MM
func ParseMonth(month string) (time.Time, error) {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, errors.New("месяц должен быть в формате YYYY-MM")
	}
	return t, nil
}
