package connectionhub

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"
	wsmodels "hrms-backend/models/ws"
)

type fakeNotificationStore struct{}

func (fakeNotificationStore) Create(rec dbmodels.Notification) (dbmodels.Notification, error) {
	return rec, nil
}
func (fakeNotificationStore) GetList(string, int) ([]dbmodels.Notification, error) { return nil, nil }
func (fakeNotificationStore) GetUnread(string) ([]dbmodels.Notification, error)    { return nil, nil }
func (fakeNotificationStore) UnreadCount(string) (int64, error)                    { return 0, nil }
func (fakeNotificationStore) MarkRead(string, string) error                        { return nil }
func (fakeNotificationStore) MarkAllRead(string) error                             { return nil }

func newTestHub() *impl {
	return &impl{
		clients: map[string]clientSession{},
		store:   fakeNotificationStore{},
	}
}

func TestConnectionHub(t *testing.T) {
	msg := wsmodels.ServerMessage{
		ToUserID: "user-1",
		Event:    models.WsEventNotificationPop,
	}

	t.Run(`отправка одновременно с отключением не падает`, func(t *testing.T) {
		hub := newTestHub()
		sessionID := hub.AddClient("user-1", nil)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				hub.SendMessage(msg)
			}
		}()
		go func() {
			defer wg.Done()
			hub.DeleteClient("user-1", sessionID)
		}()
		wg.Wait()

		hub.SendMessage(msg)
		require.False(t, hub.IsConnected("user-1"))
	})

	t.Run(`отложенное отключение старого соединения не снимает новую сессию`, func(t *testing.T) {
		hub := newTestHub()
		oldSessionID := hub.AddClient("user-1", nil)
		newSessionID := hub.AddClient("user-1", nil)

		hub.DeleteClient("user-1", oldSessionID)

		hub.mu.Lock()
		sess, ok := hub.clients["user-1"]
		hub.mu.Unlock()
		require.True(t, ok)
		require.Equal(t, newSessionID, sess.id)

		hub.DeleteClient("user-1", newSessionID)
		hub.mu.Lock()
		_, ok = hub.clients["user-1"]
		hub.mu.Unlock()
		require.False(t, ok)
	})

	t.Run(`отправка без соединения не блокирует и не падает`, func(t *testing.T) {
		hub := newTestHub()
		hub.SendMessage(msg)
		require.False(t, hub.IsConnected("user-1"))
	})

	t.Run(`переполненный буфер событий не блокирует отправителя`, func(t *testing.T) {
		hub := newTestHub()
		sessionID := hub.AddClient("user-1", nil)
		hub.mu.Lock()
		sess := hub.clients["user-1"]
		hub.mu.Unlock()
		// останавливаем читающий цикл, чтобы буфер заполнился
		sess.stop()
		for j := 0; j < cap(sess.sendCh)+10; j++ {
			hub.SendMessage(msg)
		}
		hub.DeleteClient("user-1", sessionID)
	})
}
