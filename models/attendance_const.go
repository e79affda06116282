package models

type AttendanceStatus string

const (
	AttendanceWorking   AttendanceStatus = "WORKING"
	AttendanceOnBreak   AttendanceStatus = "ON_BREAK"
	AttendanceCompleted AttendanceStatus = "COMPLETED"
)

var attendanceStatusHumanName = map[AttendanceStatus]string{
	AttendanceWorking:   "Работает",
	AttendanceOnBreak:   "На перерыве",
	AttendanceCompleted: "Смена завершена",
}

func (s AttendanceStatus) ToHuman() string {
	if human, exist := attendanceStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

// Отображаемый статус дня в истории посещаемости
type DayStatus string

const (
	DayStatusWorking DayStatus = "Working"
	DayStatusFull    DayStatus = "Full Day"
	DayStatusHalf    DayStatus = "Half Day"
	DayStatusPresent DayStatus = "Present"
)

const (
	// порог полного рабочего дня, минут
	FullDayMinutes = 480
	// ниже порога считается полдня, минут
	HalfDayMinutes = 240
	// смена старше этого срока считается зависшей
	StaleSessionHours = 12
	// задача, проставляемая при принудительном закрытии смены
	StaleSessionTask = "Автозакрытие смены"
)
