package models

type TimesheetStatus string

const (
	TimesheetSubmitted TimesheetStatus = "SUBMITTED"
	TimesheetApproved  TimesheetStatus = "APPROVED"
	TimesheetRejected  TimesheetStatus = "REJECTED"
)

var timesheetStatusHumanName = map[TimesheetStatus]string{
	TimesheetSubmitted: "На согласовании",
	TimesheetApproved:  "Согласован",
	TimesheetRejected:  "Отклонён",
}

func (s TimesheetStatus) ToHuman() string {
	if human, exist := timesheetStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s TimesheetStatus) Valid() bool {
	switch s {
	case TimesheetSubmitted, TimesheetApproved, TimesheetRejected:
		return true
	}
	return false
}

// Классификация дня в календаре табеля.
// Приоритет: отпуск > запись табеля > праздник > выходной > пусто.
type DayType string

const (
	DayTypeLeave     DayType = "LV"
	DayTypeTimesheet DayType = "TS"
	DayTypeHoliday   DayType = "HOL"
	DayTypeWeekend   DayType = "WO"
	DayTypeNone      DayType = ""
)
