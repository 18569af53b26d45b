package repository

import (
	"context"
	"fmt"

	"studylink/internal/domain"
	"studylink/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// ChatRepositoryImpl implements domain.ChatRepository using PostgreSQL.
type ChatRepositoryImpl struct {
	db DBTX
}

// NewChatRepository creates a new instance of ChatRepositoryImpl.
func NewChatRepository(db *sqlx.DB) domain.ChatRepository {
	return &ChatRepositoryImpl{db: db}
}

func (r *ChatRepositoryImpl) InsertMessage(ctx context.Context, msg *domain.ChatMessage) error {
	executor := GetExecutor(ctx, r.db)

	query := `
		INSERT INTO chat_messages (id, sender_id, receiver_id, message, is_read, created_at)
		VALUES (:id, :sender_id, :receiver_id, :message, FALSE, :created_at)`

	_, err := executor.NamedExecContext(ctx, query, map[string]interface{}{
		"id":          msg.ID,
		"sender_id":   msg.SenderID,
		"receiver_id": msg.ReceiverID,
		"message":     msg.Message,
		"created_at":  msg.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to insert chat message: %w", err)
	}
	return nil
}

func (r *ChatRepositoryImpl) GetThread(ctx context.Context, userID, otherUserID string) ([]domain.ChatMessage, error) {
	executor := GetExecutor(ctx, r.db)

	var rows []models.ChatMessage
	query := `
		SELECT m.id, m.sender_id, m.receiver_id, m.message, m.is_read, m.created_at,
		       u.full_name AS sender_name
		FROM chat_messages m
		JOIN users u ON u.id = m.sender_id
		WHERE (m.sender_id = $1 AND m.receiver_id = $2)
		   OR (m.sender_id = $2 AND m.receiver_id = $1)
		ORDER BY m.created_at ASC`
	if err := executor.SelectContext(ctx, &rows, query, userID, otherUserID); err != nil {
		return nil, fmt.Errorf("failed to get chat thread: %w", err)
	}

	messages := make([]domain.ChatMessage, 0, len(rows))
	for i := range rows {
		messages = append(messages, *toDomainChatMessage(&rows[i]))
	}
	return messages, nil
}

func (r *ChatRepositoryImpl) MarkThreadRead(ctx context.Context, receiverID, senderID string) error {
	executor := GetExecutor(ctx, r.db)

	query := `
		UPDATE chat_messages
		SET is_read = TRUE
		WHERE receiver_id = $1 AND sender_id = $2 AND is_read = FALSE`
	if _, err := executor.ExecContext(ctx, query, receiverID, senderID); err != nil {
		return fmt.Errorf("failed to mark thread read: %w", err)
	}
	return nil
}

func (r *ChatRepositoryImpl) CountUnread(ctx context.Context, receiverID string) (int, error) {
	executor := GetExecutor(ctx, r.db)

	var count int
	query := `
		SELECT COUNT(*)
		FROM chat_messages
		WHERE receiver_id = $1 AND is_read = FALSE`
	if err := executor.GetContext(ctx, &count, query, receiverID); err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}
	return count, nil
}

func toDomainChatMessage(m *models.ChatMessage) *domain.ChatMessage {
	return &domain.ChatMessage{
		ID:         m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Message:    m.Message,
		IsRead:     m.IsRead,
		CreatedAt:  m.CreatedAt,
		SenderName: m.SenderName,
	}
}
