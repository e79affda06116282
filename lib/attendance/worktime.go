package attendancehandler

import (
	"time"

	"hrms-backend/models"
)

// Смещение границы бизнес-даты: смена, начатая сразу после полуночи,
// относится к предыдущему календарному дню
const businessDayOffset = 4 * time.Hour

// BusinessDateFor - бизнес-дата для момента времени
func BusinessDateFor(now time.Time) time.Time {
	shifted := now.Add(-businessDayOffset)
	return time.Date(shifted.Year(), shifted.Month(), shifted.Day(), 0, 0, 0, 0, time.UTC)
}

// WorkedMinutes - чистое отработанное время: прошедшее минус перерывы, не ниже нуля
func WorkedMinutes(clockIn, clockOut time.Time, breakMinutes int) int {
	elapsed := int(clockOut.Sub(clockIn).Minutes())
	worked := elapsed - breakMinutes
	if worked < 0 {
		return 0
	}
	return worked
}

// DisplayStatus - отображаемый статус дня по отработанным минутам
func DisplayStatus(isOpen bool, workMinutes int) models.DayStatus {
	if isOpen {
		return models.DayStatusWorking
	}
	if workMinutes >= models.FullDayMinutes {
		return models.DayStatusFull
	}
	if workMinutes < models.HalfDayMinutes {
		return models.DayStatusHalf
	}
	return models.DayStatusPresent
}
