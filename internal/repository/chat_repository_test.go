package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"studylink/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatRepository_InsertMessage(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewChatRepository(db)
	defer db.Close()

	msg := &domain.ChatMessage{
		ID:         "msg-1",
		SenderID:   "sender-1",
		ReceiverID: "receiver-1",
		Message:    "lesson at five",
		CreatedAt:  time.Now().UTC(),
	}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO chat_messages (id, sender_id, receiver_id, message, is_read, created_at)`)).
		WithArgs(msg.ID, msg.SenderID, msg.ReceiverID, msg.Message, msg.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.InsertMessage(context.Background(), msg)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChatRepository_GetThread(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewChatRepository(db)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "sender_id", "receiver_id", "message", "is_read", "created_at", "sender_name"}).
		AddRow("m1", "other", "me", "hi", true, now.Add(-time.Minute), "Other User").
		AddRow("m2", "me", "other", "hello", false, now, "Me Myself")

	mock.ExpectQuery(`SELECT m.id, m.sender_id, m.receiver_id, m.message, m.is_read, m.created_at,[\s\S]*FROM chat_messages m[\s\S]*ORDER BY m.created_at ASC`).
		WithArgs("me", "other").
		WillReturnRows(rows)

	messages, err := repo.GetThread(context.Background(), "me", "other")

	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "Other User", messages[0].SenderName)
	assert.True(t, messages[0].IsRead)
	assert.Equal(t, "m2", messages[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChatRepository_GetThread_Empty(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewChatRepository(db)
	defer db.Close()

	mock.ExpectQuery(`SELECT m.id, m.sender_id`).
		WithArgs("me", "stranger").
		WillReturnRows(sqlmock.NewRows([]string{"id", "sender_id", "receiver_id", "message", "is_read", "created_at", "sender_name"}))

	messages, err := repo.GetThread(context.Background(), "me", "stranger")

	require.NoError(t, err)
	assert.NotNil(t, messages)
	assert.Empty(t, messages)
}

func TestChatRepository_MarkThreadRead(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewChatRepository(db)
	defer db.Close()

	mock.ExpectExec(`UPDATE chat_messages\s+SET is_read = TRUE\s+WHERE receiver_id = \$1 AND sender_id = \$2 AND is_read = FALSE`).
		WithArgs("me", "other").
		WillReturnResult(sqlmock.NewResult(0, 3))

	err := repo.MarkThreadRead(context.Background(), "me", "other")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChatRepository_CountUnread(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewChatRepository(db)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\)\s+FROM chat_messages\s+WHERE receiver_id = \$1 AND is_read = FALSE`).
		WithArgs("me").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.CountUnread(context.Background(), "me")

	require.NoError(t, err)
	assert.Equal(t, 4, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
