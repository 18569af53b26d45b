package models

import (
	"database/sql"
	"time"
)

// User represents a row of the users table.
type User struct {
	ID           string    `db:"id"` // ULID
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	FullName     string    `db:"full_name"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

// UserProgress represents a row of the user_progress table. The three
// log columns are jsonb.
type UserProgress struct {
	UserID          string        `db:"user_id"`
	TestResults     TestResultLog `db:"test_results"`
	CompletedTopics TopicList     `db:"completed_topics"`
	ViewedLectures  LectureLog    `db:"viewed_lectures"`
	LastActivity    sql.NullTime  `db:"last_activity"`
}
