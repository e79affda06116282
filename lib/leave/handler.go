package leavehandler

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"hrms-backend/db"
	employeestore "hrms-backend/lib/employee/store"
	leavestore "hrms-backend/lib/leave/store"
	notificationhandler "hrms-backend/lib/notification"
	"hrms-backend/lib/smtp"
	"hrms-backend/models"
	leaveapimodels "hrms-backend/models/api/leave"
	dbmodels "hrms-backend/models/db"
)

var (
	ErrNotFound         = errors.New("заявка на отпуск не найдена")
	ErrAlreadyProcessed = errors.New("заявка на отпуск уже обработана")
	ErrForbidden        = errors.New("операция недоступна")
)

type Provider interface {
	Apply(employeeID string, req leaveapimodels.ApplyRequest) (id string, err error)
	Action(id, callerID string, callerRole models.UserRole, req leaveapimodels.ActionRequest) error
	Delete(id, employeeID string) error
	Balance(employeeID string, year int) (list []leaveapimodels.BalanceItem, err error)
	My(employeeID string) (list []leaveapimodels.LeaveItem, err error)
	Pending(callerID string, callerRole models.UserRole) (list []leaveapimodels.LeaveItem, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:         leavestore.NewInstance(db.DB),
		employeeStore: employeestore.NewInstance(db.DB),
	}
}

type impl struct {
	store         leavestore.Provider
	employeeStore employeestore.Provider
}

func (i impl) Apply(employeeID string, req leaveapimodels.ApplyRequest) (id string, err error) {
	from, to := req.Dates()
	rec := dbmodels.Leave{
		EmployeeID: employeeID,
		FromDate:   from,
		ToDate:     to,
		LeaveType:  req.LeaveType,
		Status:     models.LeavePending,
		Reason:     req.Reason,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	notificationhandler.Instance.NotifyChain(employeeID, models.NotifyLeaveApplied,
		fmt.Sprintf("Заявка на отпуск %s - %s подана", req.FromDate, req.ToDate))
	return id, nil
}

// Action - единственный путь изменения заявки; только PENDING
func (i impl) Action(id, callerID string, callerRole models.UserRole, req leaveapimodels.ActionRequest) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	if !callerRole.IsStaff() {
		if rec.Employee == nil || rec.Employee.ManagerID == nil || *rec.Employee.ManagerID != callerID {
			return ErrForbidden
		}
	}
	affected, err := i.store.UpdateStatusGuarded(id, req.Action, req.Reason, callerID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAlreadyProcessed
	}
	msg := fmt.Sprintf("Заявка на отпуск %s - %s: %s",
		rec.FromDate.Format("02.01.2006"), rec.ToDate.Format("02.01.2006"), req.Action)
	notificationhandler.Instance.Notify(rec.EmployeeID, models.NotifyLeaveActioned, msg)
	i.sendActionEmail(rec, string(req.Action))
	return nil
}

func (i impl) Delete(id, employeeID string) error {
	affected, err := i.store.DeletePendingOwned(id, employeeID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAlreadyProcessed
	}
	return nil
}

func (i impl) Balance(employeeID string, year int) (list []leaveapimodels.BalanceItem, err error) {
	approved, err := i.store.GetApprovedByYear(employeeID, year)
	if err != nil {
		return nil, err
	}
	used := UsedDaysByType(approved)
	for _, leaveType := range []models.LeaveType{models.LeaveCasual, models.LeaveSick, models.LeaveEarned} {
		allocated := models.LeaveAllocation[leaveType]
		item := leaveapimodels.BalanceItem{
			LeaveType: string(leaveType),
			TypeName:  leaveType.ToHuman(),
			Allocated: allocated,
			Used:      used[leaveType],
			Available: allocated - used[leaveType],
		}
		if item.Available < 0 {
			item.Available = 0
		}
		list = append(list, item)
	}
	return list, nil
}

func (i impl) My(employeeID string) (list []leaveapimodels.LeaveItem, err error) {
	recs, err := i.store.GetByEmployee(employeeID)
	if err != nil {
		return nil, err
	}
	return toLeaveItems(recs), nil
}

func (i impl) Pending(callerID string, callerRole models.UserRole) (list []leaveapimodels.LeaveItem, err error) {
	var managerID *string
	if !callerRole.IsStaff() {
		managerID = &callerID
	}
	recs, err := i.store.GetPending(managerID)
	if err != nil {
		return nil, err
	}
	return toLeaveItems(recs), nil
}

// письмо сотруднику о решении, best-effort
func (i impl) sendActionEmail(rec *dbmodels.Leave, action string) {
	emp := rec.Employee
	if emp == nil {
		var err error
		emp, err = i.employeeStore.GetByID(rec.EmployeeID)
		if err != nil || emp == nil {
			return
		}
	}
	subject := "Решение по заявке на отпуск"
	message := fmt.Sprintf("Заявка на отпуск %s - %s: %s",
		rec.FromDate.Format("02.01.2006"), rec.ToDate.Format("02.01.2006"), action)
	if err := smtp.Instance.SendEMail(emp.Email, message, subject); err != nil {
		log.WithError(err).WithField("employee_id", rec.EmployeeID).Error("ошибка отправки письма о решении по заявке")
	}
}

// UsedDaysByType - использованные дни по типам отпуска
func UsedDaysByType(approved []dbmodels.Leave) map[models.LeaveType]int {
	used := map[models.LeaveType]int{}
	for _, rec := range approved {
		used[rec.LeaveType] += rec.Days()
	}
	return used
}

func toLeaveItems(recs []dbmodels.Leave) []leaveapimodels.LeaveItem {
	list := make([]leaveapimodels.LeaveItem, 0, len(recs))
	for _, rec := range recs {
		item := leaveapimodels.LeaveItem{
			ID:           rec.ID,
			EmployeeID:   rec.EmployeeID,
			FromDate:     rec.FromDate.Format("2006-01-02"),
			ToDate:       rec.ToDate.Format("2006-01-02"),
			Days:         rec.Days(),
			LeaveType:    string(rec.LeaveType),
			Status:       string(rec.Status),
			Reason:       rec.Reason,
			ActionReason: rec.ActionReason,
			ActionedBy:   rec.ActionedBy,
		}
		if rec.Employee != nil {
			item.EmployeeName = rec.Employee.GetFullName()
		}
		list = append(list, item)
	}
	return list
}
