package timesheethandler

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"

	"hrms-backend/db"
	attendancestore "hrms-backend/lib/attendance/store"
	holidaystore "hrms-backend/lib/dicts/holiday/store"
	employeestore "hrms-backend/lib/employee/store"
	xlsexport "hrms-backend/lib/export/xls"
	leavestore "hrms-backend/lib/leave/store"
	notificationhandler "hrms-backend/lib/notification"
	timesheetstore "hrms-backend/lib/timesheet/store"
	"hrms-backend/models"
	timesheetapimodels "hrms-backend/models/api/timesheet"
	dbmodels "hrms-backend/models/db"
)

var (
	ErrNotFound         = errors.New("запись табеля не найдена")
	ErrAlreadyProcessed = errors.New("запись табеля уже обработана")
	ErrNotRejected      = errors.New("исправить можно только отклоненную запись")
	ErrForbidden        = errors.New("операция недоступна")
)

type Provider interface {
	Calendar(employeeID, month string) (resp timesheetapimodels.CalendarResponse, err error)
	CalendarExcel(employeeID, month string) (*bytes.Buffer, string, error)
	Approval(month, callerID string, callerRole models.UserRole) (list []timesheetapimodels.ApprovalItem, err error)
	Action(id, callerID string, callerRole models.UserRole, req timesheetapimodels.StatusRequest) error
	Rejected(callerID string, callerRole models.UserRole) (list []timesheetapimodels.ApprovalItem, err error)
	Edit(id, callerID string, callerRole models.UserRole, req timesheetapimodels.EditRequest) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		tsStore:         timesheetstore.NewInstance(db.DB),
		attendanceStore: attendancestore.NewInstance(db.DB),
		leaveStore:      leavestore.NewInstance(db.DB),
		holidayStore:    holidaystore.NewInstance(db.DB),
		employeeStore:   employeestore.NewInstance(db.DB),
	}
}

type impl struct {
	tsStore         timesheetstore.Provider
	attendanceStore attendancestore.Provider
	leaveStore      leavestore.Provider
	holidayStore    holidaystore.Provider
	employeeStore   employeestore.Provider
}

// Calendar - одна строка на каждый календарный день месяца.
// Классификация дня выполняется в ClassifyDay, выборки по периоду - в store.
func (i impl) Calendar(employeeID, month string) (resp timesheetapimodels.CalendarResponse, err error) {
	monthTime, err := timesheetapimodels.ParseMonth(month)
	if err != nil {
		return resp, err
	}
	from, to := MonthBounds(monthTime)

	attList, err := i.attendanceStore.GetByPeriod(employeeID, from, to)
	if err != nil {
		return resp, errors.Wrap(err, "ошибка получения смен за период")
	}
	tsList, err := i.tsStore.GetByPeriod(employeeID, from, to)
	if err != nil {
		return resp, errors.Wrap(err, "ошибка получения записей табеля за период")
	}
	leaveList, err := i.leaveStore.GetApprovedByPeriod(employeeID, from, to)
	if err != nil {
		return resp, errors.Wrap(err, "ошибка получения отпусков за период")
	}
	holidayList, err := i.holidayStore.GetByPeriod(from, to)
	if err != nil {
		return resp, errors.Wrap(err, "ошибка получения праздничных дней")
	}

	attByDate := map[string]dbmodels.AttendanceLog{}
	for _, rec := range attList {
		attByDate[rec.BusinessDate.Format("2006-01-02")] = rec
	}
	tsByDate := map[string]dbmodels.Timesheet{}
	for _, rec := range tsList {
		tsByDate[rec.WorkDate.Format("2006-01-02")] = rec
	}
	holidayByDate := map[string]dbmodels.Holiday{}
	for _, rec := range holidayList {
		holidayByDate[rec.Date.Format("2006-01-02")] = rec
	}

	resp.Month = month
	for _, day := range MonthDays(monthTime) {
		key := day.Format("2006-01-02")
		row := timesheetapimodels.CalendarDay{
			Date:    key,
			Weekday: day.Weekday().String(),
		}
		var leave *dbmodels.Leave
		for idx := range leaveList {
			if leaveList[idx].Covers(day) {
				leave = &leaveList[idx]
				break
			}
		}
		ts, hasTS := tsByDate[key]
		holiday, isHoliday := holidayByDate[key]
		row.Type = ClassifyDay(leave != nil, hasTS, isHoliday, day.Weekday())

		if att, ok := attByDate[key]; ok {
			row.StartTime = att.ClockIn.Format("15:04")
			if att.ClockOut != nil {
				row.EndTime = att.ClockOut.Format("15:04")
			}
		}
		if hasTS {
			row.Project = ts.Project
			row.Task = ts.Task
			row.Hours = ts.Hours
			row.Status = string(ts.Status)
			resp.HoursTotal += ts.Hours
			resp.DaysWorked++
		}
		if leave != nil {
			row.LeaveType = string(leave.LeaveType)
		}
		if isHoliday {
			row.Holiday = holiday.Name
		}
		if row.Type == models.DayTypeLeave {
			resp.LeaveDays++
		}
		resp.Days = append(resp.Days, row)
	}
	return resp, nil
}

func (i impl) CalendarExcel(employeeID, month string) (*bytes.Buffer, string, error) {
	calendar, err := i.Calendar(employeeID, month)
	if err != nil {
		return nil, "", err
	}
	emp, err := i.employeeStore.GetByID(employeeID)
	if err != nil {
		return nil, "", err
	}
	if emp == nil {
		return nil, "", errors.New("сотрудник не найден")
	}
	buf, err := xlsexport.Instance.ExportTimesheetCalendar(emp.GetFullName(), emp.Department, calendar)
	if err != nil {
		return nil, "", err
	}
	fileName := fmt.Sprintf("timesheet_%s.xlsx", month)
	return buf, fileName, nil
}

func (i impl) Approval(month, callerID string, callerRole models.UserRole) (list []timesheetapimodels.ApprovalItem, err error) {
	monthTime, err := timesheetapimodels.ParseMonth(month)
	if err != nil {
		return nil, err
	}
	from, to := MonthBounds(monthTime)
	var managerID *string
	if !callerRole.IsStaff() {
		managerID = &callerID
	}
	recs, err := i.tsStore.GetForApproval(from, to, managerID)
	if err != nil {
		return nil, err
	}
	return toApprovalItems(recs), nil
}

func (i impl) Action(id, callerID string, callerRole models.UserRole, req timesheetapimodels.StatusRequest) error {
	rec, err := i.tsStore.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	if err := i.checkAccess(rec, callerID, callerRole); err != nil {
		return err
	}
	affected, err := i.tsStore.UpdateStatusGuarded(id, req.Status, req.Reason)
	if err != nil {
		return err
	}
	// конкурирующее согласование уже перевело запись из SUBMITTED
	if affected == 0 {
		return ErrAlreadyProcessed
	}
	msg := fmt.Sprintf("Табель за %s: %s", rec.WorkDate.Format("02.01.2006"), req.Status.ToHuman())
	notificationhandler.Instance.Notify(rec.EmployeeID, models.NotifyTimesheetActioned, msg)
	return nil
}

func (i impl) Rejected(callerID string, callerRole models.UserRole) (list []timesheetapimodels.ApprovalItem, err error) {
	var managerID *string
	if !callerRole.IsStaff() {
		managerID = &callerID
	}
	recs, err := i.tsStore.GetRejected(managerID)
	if err != nil {
		return nil, err
	}
	return toApprovalItems(recs), nil
}

// Edit - правка ранее отклонённой записи с возможным возвратом статуса,
// в том числе сразу в APPROVED. Без явного статуса в запросе запись
// возвращается в SUBMITTED
func (i impl) Edit(id, callerID string, callerRole models.UserRole, req timesheetapimodels.EditRequest) error {
	rec, err := i.tsStore.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	if err := i.checkAccess(rec, callerID, callerRole); err != nil {
		return err
	}
	if rec.Status != models.TimesheetRejected {
		return ErrNotRejected
	}
	updMap := map[string]interface{}{
		"Status": models.TimesheetSubmitted,
	}
	if req.Project != nil {
		updMap["Project"] = *req.Project
	}
	if req.Task != nil {
		updMap["Task"] = *req.Task
	}
	if req.Hours != nil {
		updMap["Hours"] = *req.Hours
	}
	if req.Status != nil {
		updMap["Status"] = *req.Status
	}
	return i.tsStore.Update(id, updMap)
}

func (i impl) checkAccess(rec *dbmodels.Timesheet, callerID string, callerRole models.UserRole) error {
	if callerRole.IsStaff() {
		return nil
	}
	if rec.Employee != nil && rec.Employee.ManagerID != nil && *rec.Employee.ManagerID == callerID {
		return nil
	}
	return ErrForbidden
}

func toApprovalItems(recs []dbmodels.Timesheet) []timesheetapimodels.ApprovalItem {
	list := make([]timesheetapimodels.ApprovalItem, 0, len(recs))
	for _, rec := range recs {
		item := timesheetapimodels.ApprovalItem{
			ID:           rec.ID,
			EmployeeID:   rec.EmployeeID,
			WorkDate:     rec.WorkDate.Format("2006-01-02"),
			Project:      rec.Project,
			Task:         rec.Task,
			Hours:        rec.Hours,
			Status:       string(rec.Status),
			RejectReason: rec.RejectReason,
		}
		if rec.Employee != nil {
			item.EmployeeName = rec.Employee.GetFullName()
		}
		list = append(list, item)
	}
	return list
}
