package models

import "time"

// MaxChatMessageLen caps chat messages client-side, matching the backend.
const MaxChatMessageLen = 500

type ChatMessage struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Avatar    string    `json:"avatar"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
