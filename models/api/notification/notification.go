package notificationapimodels

type NotificationItem struct {
	ID        string `json:"id"`
	Code      string `json:"type"`
	Message   string `json:"message"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}
