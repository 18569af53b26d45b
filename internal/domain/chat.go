package domain

import (
	"context"
	"time"
)

// ChatMessage is a directed message between two users. Read-state flips
// only when the receiver fetches the thread.
type ChatMessage struct {
	ID         string
	SenderID   string
	ReceiverID string
	Message    string
	IsRead     bool
	CreatedAt  time.Time
	SenderName string
}

// ChatRepository defines the interface for chat message persistence.
type ChatRepository interface {
	InsertMessage(ctx context.Context, msg *ChatMessage) error
	// GetThread returns the bidirectional conversation between two users
	// ordered by creation time ascending.
	GetThread(ctx context.Context, userID, otherUserID string) ([]ChatMessage, error)
	// MarkThreadRead marks all unread messages from senderID to receiverID
	// as read. Idempotent.
	MarkThreadRead(ctx context.Context, receiverID, senderID string) error
	CountUnread(ctx context.Context, receiverID string) (int, error)
}
