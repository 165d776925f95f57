package models

import "time"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type ChatMessage struct {
	ID        string `json:"id" bson:"id"`
	SessionID string `json:"session_id" bson:"session_id"`
	Role      string `json:"role" bson:"role"`
	Content   string `json:"content" bson:"content"`
	CreatedAt string `json:"created_at" bson:"created_at"`
}

func NewChatMessage(sessionID, role, content string, newID func() string, now func() time.Time) *ChatMessage {
	return &ChatMessage{
		ID:        newID(),
		SessionID: sessionID,
		Role:      role,
		Content:   content,
		CreatedAt: ISOTime(now()),
	}
}
