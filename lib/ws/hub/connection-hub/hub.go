package connectionhub

import (
	"sync"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"

	"hrms-backend/db"
	notificationstore "hrms-backend/lib/notification/store"
	"hrms-backend/models"
	wsmodels "hrms-backend/models/ws"
)

// Реестр ws-соединений по идентификатору пользователя.
// Доставка best-effort: если соединения нет, событие просто не пушится,
// уведомление остаётся в БД для последующего опроса.
type Provider interface {
	AddClient(userID string, conn *websocket.Conn) (sessionID string)
	DeleteClient(userID, sessionID string)
	SendMessage(msg wsmodels.ServerMessage)
	IsConnected(userID string) bool
}

var Instance Provider

func Init() {
	Instance = &impl{
		clients: map[string]clientSession{},
		store:   notificationstore.NewInstance(db.DB),
	}
}

type impl struct {
	mu      sync.Mutex
	clients map[string]clientSession //map[userID]
	store   notificationstore.Provider
}

func (i *impl) AddClient(userID string, conn *websocket.Conn) (sessionID string) {
	i.mu.Lock()
	oldSess, ok := i.clients[userID]
	if ok {
		oldSess.stop()
	}
	sess := newSession(conn)
	i.clients[userID] = sess
	i.mu.Unlock()
	go i.sendUnread(userID)
	return sess.id
}

func (i *impl) DeleteClient(userID, sessionID string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	sess, ok := i.clients[userID]
	if !ok || sess.id != sessionID {
		// слот уже занят новой сессией этого пользователя
		return
	}
	delete(i.clients, userID)
	sess.stop()
}

func (i *impl) SendMessage(msg wsmodels.ServerMessage) {
	i.mu.Lock()
	defer i.mu.Unlock()
	sess, ok := i.clients[msg.ToUserID]
	if !ok {
		return
	}
	select {
	case sess.sendCh <- msg:
	default:
		// буфер переполнен, событие не пушим: уведомление остаётся в БД
	}
}

func (i *impl) IsConnected(userID string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	sess, ok := i.clients[userID]
	if !ok || sess.conn == nil || sess.conn.Conn == nil {
		return false
	}
	return true
}

// при подключении отправляем накопившиеся непрочитанные уведомления
func (i *impl) sendUnread(userID string) {
	logger := log.WithField("user_id", userID)
	list, err := i.store.GetUnread(userID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения непрочитанных уведомлений")
		return
	}
	for _, item := range list {
		if !i.IsConnected(userID) {
			return
		}
		i.SendMessage(wsmodels.ServerMessage{
			ToUserID: userID,
			Event:    models.WsEventNotificationPop,
			ID:       item.ID,
			Code:     string(item.Code),
			Msg:      item.Message,
			Time:     item.CreatedAt.Format("02.01.2006 15:04:05"),
		})
	}
}
