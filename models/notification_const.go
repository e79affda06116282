package models

// Код события уведомления
type NotificationCode string

const (
	NotifyClockIn           NotificationCode = "ATTENDANCE_CLOCK_IN"
	NotifyClockOut          NotificationCode = "ATTENDANCE_CLOCK_OUT"
	NotifyOvertime          NotificationCode = "ATTENDANCE_OVERTIME"
	NotifyLeaveApplied      NotificationCode = "LEAVE_APPLIED"
	NotifyLeaveActioned     NotificationCode = "LEAVE_ACTIONED"
	NotifyTimesheetActioned NotificationCode = "TIMESHEET_ACTIONED"
	NotifyPayrollUploaded   NotificationCode = "PAYROLL_UPLOADED"
)

// Код события, отправляемого в ws-канал при новом уведомлении
const WsEventNotificationPop = "notification_pop"
