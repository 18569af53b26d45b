package models

import (
	"database/sql"
	"time"
)

// TeacherMessage represents a row of the teacher_messages table.
type TeacherMessage struct {
	ID        string    `db:"id"` // ULID
	TeacherID string    `db:"teacher_id"`
	StudentID string    `db:"student_id"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
}

// StudentRow is the roster projection: a student joined with their
// progress logs.
type StudentRow struct {
	ID              string        `db:"id"`
	Email           string        `db:"email"`
	FullName        string        `db:"full_name"`
	CreatedAt       time.Time     `db:"created_at"`
	TestResults     TestResultLog `db:"test_results"`
	CompletedTopics TopicList     `db:"completed_topics"`
	LastActivity    sql.NullTime  `db:"last_activity"`
}
