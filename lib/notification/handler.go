package notificationhandler

import (
	log "github.com/sirupsen/logrus"

	"hrms-backend/db"
	employeestore "hrms-backend/lib/employee/store"
	notificationstore "hrms-backend/lib/notification/store"
	connectionhub "hrms-backend/lib/ws/hub/connection-hub"
	"hrms-backend/models"
	notificationapimodels "hrms-backend/models/api/notification"
	dbmodels "hrms-backend/models/db"
	wsmodels "hrms-backend/models/ws"
)

// Диспетчер уведомлений: запись в БД и best-effort пуш в ws-канал.
// Ошибки здесь логируются и не возвращаются вызывающему -
// уведомления не должны ломать основную операцию.
type Provider interface {
	Notify(userID string, code models.NotificationCode, message string)
	// NotifyChain - сотрудник, его руководитель и все HR/админы
	NotifyChain(employeeID string, code models.NotificationCode, message string)
	// NotifyManagement - руководитель и все HR/админы, без самого сотрудника
	NotifyManagement(employeeID string, code models.NotificationCode, message string)
	List(userID string) (list []notificationapimodels.NotificationItem, err error)
	UnreadCount(userID string) (int64, error)
	MarkRead(userID, id string) error
	MarkAllRead(userID string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:         notificationstore.NewInstance(db.DB),
		employeeStore: employeestore.NewInstance(db.DB),
	}
}

type impl struct {
	store         notificationstore.Provider
	employeeStore employeestore.Provider
}

func (i impl) Notify(userID string, code models.NotificationCode, message string) {
	logger := log.
		WithField("user_id", userID).
		WithField("event_code", string(code))
	rec, err := i.store.Create(dbmodels.Notification{
		UserID:  userID,
		Code:    code,
		Message: message,
	})
	if err != nil {
		logger.WithError(err).Error("ошибка записи уведомления")
		return
	}
	connectionhub.Instance.SendMessage(wsmodels.ServerMessage{
		ToUserID: userID,
		Event:    models.WsEventNotificationPop,
		ID:       rec.ID,
		Code:     string(rec.Code),
		Msg:      rec.Message,
		Time:     rec.CreatedAt.Format("02.01.2006 15:04:05"),
	})
}

func (i impl) NotifyChain(employeeID string, code models.NotificationCode, message string) {
	for _, userID := range i.chainRecipients(employeeID, true) {
		i.Notify(userID, code, message)
	}
}

func (i impl) NotifyManagement(employeeID string, code models.NotificationCode, message string) {
	for _, userID := range i.chainRecipients(employeeID, false) {
		i.Notify(userID, code, message)
	}
}

func (i impl) List(userID string) (list []notificationapimodels.NotificationItem, err error) {
	recs, err := i.store.GetList(userID, 50)
	if err != nil {
		return nil, err
	}
	list = make([]notificationapimodels.NotificationItem, 0, len(recs))
	for _, rec := range recs {
		list = append(list, notificationapimodels.NotificationItem{
			ID:        rec.ID,
			Code:      string(rec.Code),
			Message:   rec.Message,
			IsRead:    rec.IsRead,
			CreatedAt: rec.CreatedAt.Format("02.01.2006 15:04:05"),
		})
	}
	return list, nil
}

func (i impl) UnreadCount(userID string) (int64, error) {
	return i.store.UnreadCount(userID)
}

func (i impl) MarkRead(userID, id string) error {
	return i.store.MarkRead(userID, id)
}

func (i impl) MarkAllRead(userID string) error {
	return i.store.MarkAllRead(userID)
}

func (i impl) chainRecipients(employeeID string, includeSelf bool) []string {
	logger := log.WithField("employee_id", employeeID)
	emp, err := i.employeeStore.GetByID(employeeID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения сотрудника для рассылки")
		return nil
	}
	if emp == nil {
		logger.Error("сотрудник для рассылки не найден")
		return nil
	}
	staff, err := i.employeeStore.GetByRoles([]models.UserRole{models.UserRoleHR, models.UserRoleAdmin})
	if err != nil {
		logger.WithError(err).Error("ошибка получения списка HR/админов для рассылки")
	}
	staffIDs := make([]string, 0, len(staff))
	for _, rec := range staff {
		staffIDs = append(staffIDs, rec.ID)
	}
	return Recipients(employeeID, emp.ManagerID, staffIDs, includeSelf)
}

// Recipients - список получателей без дублей: сотрудник (опционально),
// его руководитель, HR/админы
func Recipients(employeeID string, managerID *string, staffIDs []string, includeSelf bool) []string {
	seen := map[string]bool{}
	result := []string{}
	add := func(id string) {
		if id == "" || seen[id] {
			return
		}
		seen[id] = true
		result = append(result, id)
	}
	if includeSelf {
		add(employeeID)
	} else {
		seen[employeeID] = true
	}
	if managerID != nil {
		add(*managerID)
	}
	for _, id := range staffIDs {
		add(id)
	}
	return result
}
