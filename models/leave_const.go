package models

type LeaveStatus string

const (
	LeavePending  LeaveStatus = "PENDING"
	LeaveApproved LeaveStatus = "APPROVED"
	LeaveRejected LeaveStatus = "REJECTED"
)

func (s LeaveStatus) Valid() bool {
	switch s {
	case LeavePending, LeaveApproved, LeaveRejected:
		return true
	}
	return false
}

type LeaveType string

const (
	LeaveCasual LeaveType = "CASUAL"
	LeaveSick   LeaveType = "SICK"
	LeaveEarned LeaveType = "EARNED"
)

// Годовой лимит дней по типу отпуска
var LeaveAllocation = map[LeaveType]int{
	LeaveCasual: 12,
	LeaveSick:   10,
	LeaveEarned: 15,
}

func (t LeaveType) Valid() bool {
	_, exist := LeaveAllocation[t]
	return exist
}

var leaveTypeHumanName = map[LeaveType]string{
	LeaveCasual: "Отгул",
	LeaveSick:   "Больничный",
	LeaveEarned: "Ежегодный отпуск",
}

func (t LeaveType) ToHuman() string {
	if human, exist := leaveTypeHumanName[t]; exist {
		return human
	}
	return string(t)
}
