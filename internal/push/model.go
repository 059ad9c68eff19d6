package push

import "time"

type DeviceToken struct {
	Token     string    `json:"token"`
	UserID    *int      `json:"user_id,omitempty"`
	Platform  string    `json:"platform"`
	CreatedAt time.Time `json:"created_at"`
}

type RegisterRequest struct {
	Token    string `json:"token"`
	Platform string `json:"platform"`
}

// RelayMessage is one notification as the relay's HTTP API expects it.
type RelayMessage struct {
	To    []string          `json:"to"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}
