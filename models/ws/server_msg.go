package wsmodels

type ServerMessage struct {
	ToUserID string `json:"-"`
	Event    string `json:"event"`      // код события (notification_pop)
	ID       string `json:"id"`         // идентификатор уведомления
	Code     string `json:"type"`       // код уведомления
	Msg      string `json:"message"`    // текст уведомления
	Time     string `json:"created_at"` // время события
}
