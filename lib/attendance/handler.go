package attendancehandler

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"hrms-backend/db"
	attendancestore "hrms-backend/lib/attendance/store"
	notificationhandler "hrms-backend/lib/notification"
	timesheetstore "hrms-backend/lib/timesheet/store"
	"hrms-backend/lib/utils/helpers"
	"hrms-backend/models"
	attendanceapimodels "hrms-backend/models/api/attendance"
	dbmodels "hrms-backend/models/db"
)

var (
	ErrAlreadyClockedIn = errors.New("смена уже начата")
	ErrNoOpenSession    = errors.New("открытая смена не найдена")
	ErrAlreadyOnBreak   = errors.New("перерыв уже начат")
	ErrNotOnBreak       = errors.New("перерыв не начат")
)

type Provider interface {
	ClockIn(employeeID string, req attendanceapimodels.ClockInRequest) (status models.AttendanceStatus, clockIn time.Time, err error)
	TakeBreak(employeeID string) (status models.AttendanceStatus, err error)
	EndBreak(employeeID string) (status models.AttendanceStatus, err error)
	ClockOut(employeeID string, req attendanceapimodels.ClockOutRequest) (status models.AttendanceStatus, err error)
	TodayStatus(employeeID string) (resp attendanceapimodels.TodayStatusResponse, err error)
	History(employeeID string) (list []attendanceapimodels.HistoryDay, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

// ClockIn - начало смены. Перед открытием новой записи принудительно
// закрывается смена, зависшая с прошлой бизнес-даты.
func (i impl) ClockIn(employeeID string, req attendanceapimodels.ClockInRequest) (status models.AttendanceStatus, clockIn time.Time, err error) {
	now := time.Now()
	businessDate := BusinessDateFor(now)
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		store := attendancestore.NewInstance(tx)
		open, err := store.GetOpenForUpdate(employeeID)
		if err != nil {
			return err
		}
		if open != nil {
			if helpers.SameDate(open.BusinessDate, businessDate) {
				return ErrAlreadyClockedIn
			}
			if err := closeStaleSession(store, *open); err != nil {
				return err
			}
		}
		rec := dbmodels.AttendanceLog{
			EmployeeID:   employeeID,
			BusinessDate: businessDate,
			ClockIn:      now,
			Status:       models.AttendanceWorking,
			Project:      strings.TrimSpace(req.Project),
			Latitude:     req.Latitude,
			Longitude:    req.Longitude,
		}
		_, err = store.Create(rec)
		return err
	})
	if err != nil {
		return "", time.Time{}, err
	}
	notificationhandler.Instance.NotifyChain(employeeID, models.NotifyClockIn,
		fmt.Sprintf("Смена %s начата", businessDate.Format("02.01.2006")))
	return models.AttendanceWorking, now, nil
}

func (i impl) TakeBreak(employeeID string) (status models.AttendanceStatus, err error) {
	now := time.Now()
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		store := attendancestore.NewInstance(tx)
		open, err := store.GetOpenForUpdate(employeeID)
		if err != nil {
			return err
		}
		if open == nil {
			return ErrNoOpenSession
		}
		if open.Status == models.AttendanceOnBreak {
			return ErrAlreadyOnBreak
		}
		return store.Update(open.ID, map[string]interface{}{
			"Status":     models.AttendanceOnBreak,
			"BreakStart": now,
		})
	})
	if err != nil {
		return "", err
	}
	return models.AttendanceOnBreak, nil
}

func (i impl) EndBreak(employeeID string) (status models.AttendanceStatus, err error) {
	now := time.Now()
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		store := attendancestore.NewInstance(tx)
		open, err := store.GetOpenForUpdate(employeeID)
		if err != nil {
			return err
		}
		if open == nil {
			return ErrNoOpenSession
		}
		if open.Status != models.AttendanceOnBreak || open.BreakStart == nil {
			return ErrNotOnBreak
		}
		elapsed := int(now.Sub(*open.BreakStart).Minutes())
		return store.Update(open.ID, map[string]interface{}{
			"Status":       models.AttendanceWorking,
			"BreakStart":   nil,
			"BreakMinutes": open.BreakMinutes + elapsed,
		})
	})
	if err != nil {
		return "", err
	}
	return models.AttendanceWorking, nil
}

// ClockOut - завершение смены с записью строки в табель.
// Обе записи выполняются в одной транзакции.
func (i impl) ClockOut(employeeID string, req attendanceapimodels.ClockOutRequest) (status models.AttendanceStatus, err error) {
	now := time.Now()
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		store := attendancestore.NewInstance(tx)
		open, err := store.GetOpenForUpdate(employeeID)
		if err != nil {
			return err
		}
		if open == nil {
			return ErrNoOpenSession
		}
		breakMinutes := open.BreakMinutes
		// незакрытый перерыв учитывается в итоговой сумме
		if open.Status == models.AttendanceOnBreak && open.BreakStart != nil {
			breakMinutes += int(now.Sub(*open.BreakStart).Minutes())
		}
		worked := WorkedMinutes(open.ClockIn, now, breakMinutes)
		project := strings.TrimSpace(req.Project)
		task := strings.TrimSpace(req.Task)
		err = store.Update(open.ID, map[string]interface{}{
			"Status":       models.AttendanceCompleted,
			"ClockOut":     now,
			"BreakStart":   nil,
			"BreakMinutes": breakMinutes,
			"WorkMinutes":  worked,
			"Project":      project,
			"Task":         task,
		})
		if err != nil {
			return err
		}
		tsStore := timesheetstore.NewInstance(tx)
		_, err = tsStore.Create(dbmodels.Timesheet{
			EmployeeID: employeeID,
			WorkDate:   open.BusinessDate,
			Project:    project,
			Task:       task,
			Hours:      helpers.RoundHours(worked),
			Status:     models.TimesheetSubmitted,
		})
		return err
	})
	if err != nil {
		return "", err
	}
	notificationhandler.Instance.NotifyChain(employeeID, models.NotifyClockOut,
		fmt.Sprintf("Смена %s завершена", BusinessDateFor(now).Format("02.01.2006")))
	return models.AttendanceCompleted, nil
}

// TodayStatus - текущее состояние без вычисления прошедшего времени:
// клиент считает его сам от clock_in
func (i impl) TodayStatus(employeeID string) (resp attendanceapimodels.TodayStatusResponse, err error) {
	store := attendancestore.NewInstance(db.DB)
	rec, err := store.GetByDate(employeeID, BusinessDateFor(time.Now()))
	if err != nil {
		return resp, err
	}
	if rec == nil {
		resp.Status = "NOT_STARTED"
		return resp, nil
	}
	resp.Status = string(rec.Status)
	resp.ClockIn = rec.ClockIn.Format(time.RFC3339)
	resp.BreakSeconds = rec.BreakMinutes * 60
	if rec.Status == models.AttendanceCompleted {
		resp.WorkedSeconds = rec.WorkMinutes * 60
		resp.TotalBreak = rec.BreakMinutes * 60
	}
	return resp, nil
}

func (i impl) History(employeeID string) (list []attendanceapimodels.HistoryDay, err error) {
	store := attendancestore.NewInstance(db.DB)
	recs, err := store.GetHistory(employeeID, 10)
	if err != nil {
		return nil, err
	}
	list = make([]attendanceapimodels.HistoryDay, 0, len(recs))
	for _, rec := range recs {
		day := attendanceapimodels.HistoryDay{
			BusinessDate: rec.BusinessDate.Format("2006-01-02"),
			ClockIn:      rec.ClockIn.Format(time.RFC3339),
			WorkMinutes:  rec.WorkMinutes,
			BreakMinutes: rec.BreakMinutes,
			Project:      rec.Project,
			Task:         rec.Task,
			DisplayState: string(DisplayStatus(rec.IsOpen(), rec.WorkMinutes)),
		}
		if rec.ClockOut != nil {
			day.ClockOut = rec.ClockOut.Format(time.RFC3339)
		}
		list = append(list, day)
	}
	return list, nil
}

// закрытие смены, оставшейся открытой с прошлой бизнес-даты:
// фиксированная длительность и системная задача
func closeStaleSession(store attendancestore.Provider, rec dbmodels.AttendanceLog) error {
	log.WithField("attendance_id", rec.ID).
		WithField("employee_id", rec.EmployeeID).
		Warn("принудительное закрытие зависшей смены")
	closedAt := rec.ClockIn.Add(time.Duration(models.StaleSessionHours) * time.Hour)
	return store.Update(rec.ID, map[string]interface{}{
		"Status":      models.AttendanceCompleted,
		"ClockOut":    closedAt,
		"BreakStart":  nil,
		"WorkMinutes": models.StaleSessionHours * 60,
		"Task":        models.StaleSessionTask,
	})
}
