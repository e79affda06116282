package timesheethandler

import (
	"time"

	"hrms-backend/models"
)

// ClassifyDay - тип календарного дня.
// Фиксированный приоритет: согласованный отпуск > запись табеля >
// праздник > выходной > пусто.
func ClassifyDay(hasLeave, hasTimesheet, isHoliday bool, weekday time.Weekday) models.DayType {
	switch {
	case hasLeave:
		return models.DayTypeLeave
	case hasTimesheet:
		return models.DayTypeTimesheet
	case isHoliday:
		return models.DayTypeHoliday
	case weekday == time.Saturday || weekday == time.Sunday:
		return models.DayTypeWeekend
	}
	return models.DayTypeNone
}

// MonthDays - все календарные дни месяца
func MonthDays(month time.Time) []time.Time {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	days := []time.Time{}
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// MonthBounds - первый и последний день месяца
func MonthBounds(month time.Time) (from, to time.Time) {
	from = time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	to = from.AddDate(0, 1, -1)
	return from, to
}
