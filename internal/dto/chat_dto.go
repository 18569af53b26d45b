package dto

import (
	"time"

	"studylink/internal/domain"
)

// ChatRequest is the POST body of the chat resource, discriminated by
// Action ("send" or "unread_count").
type ChatRequest struct {
	Action     string `json:"action"`
	ReceiverID string `json:"receiver_id,omitempty"`
	Message    string `json:"message,omitempty"`
}

// ChatMessageView is one message in a thread listing.
type ChatMessageView struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	Message    string    `json:"message"`
	IsRead     bool      `json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
	SenderName string    `json:"sender_name"`
}

// ThreadResponse lists a bidirectional conversation oldest first.
type ThreadResponse struct {
	Messages []ChatMessageView `json:"messages"`
}

// SendMessageResponse acknowledges a sent chat message.
type SendMessageResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"message_id"`
}

// UnreadCountResponse carries the number of unread messages addressed to
// the caller.
type UnreadCountResponse struct {
	UnreadCount int `json:"unread_count"`
}

// NewChatMessageView builds the wire projection of a chat message.
func NewChatMessageView(m *domain.ChatMessage) ChatMessageView {
	return ChatMessageView{
		ID:         m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Message:    m.Message,
		IsRead:     m.IsRead,
		CreatedAt:  m.CreatedAt,
		SenderName: m.SenderName,
	}
}
