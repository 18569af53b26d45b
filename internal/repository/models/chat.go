package models

import "time"

// ChatMessage represents a row of the chat_messages table. SenderName is
// populated by the thread listing join.
type ChatMessage struct {
	ID         string    `db:"id"` // ULID
	SenderID   string    `db:"sender_id"`
	ReceiverID string    `db:"receiver_id"`
	Message    string    `db:"message"`
	IsRead     bool      `db:"is_read"`
	CreatedAt  time.Time `db:"created_at"`
	SenderName string    `db:"sender_name"`
}
