package attendanceapimodels

import (
	"strings"

	"github.com/pkg/errors"
)

type ClockInRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Project   string   `json:"project"`
}

func (r ClockInRequest) Validate() error {
	return nil
}

type ClockOutRequest struct {
	Project string `json:"project"`
	Task    string `json:"task"`
}

func (r ClockOutRequest) Validate() error {
	if strings.TrimSpace(r.Project) == "" {
		return errors.New("не указан проект")
	}
	if strings.TrimSpace(r.Task) == "" {
		return errors.New("не указана задача")
	}
	return nil
}

type TodayStatusResponse struct {
	Status       string `json:"status"`
	ClockIn      string `json:"clock_in,omitempty"`
	BreakSeconds int    `json:"break_seconds"`
	// заполняются только по завершённой смене
	WorkedSeconds int `json:"worked_seconds,omitempty"`
	TotalBreak    int `json:"total_break_seconds,omitempty"`
}

type HistoryDay struct {
	BusinessDate string `json:"business_date"`
	ClockIn      string `json:"clock_in"`
	ClockOut     string `json:"clock_out,omitempty"`
	WorkMinutes  int    `json:"work_minutes"`
	BreakMinutes int    `json:"break_minutes"`
	Project      string `json:"project,omitempty"`
	Task         string `json:"task,omitempty"`
	DisplayState string `json:"display_status"`
}
