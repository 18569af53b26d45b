package models

import (
	"database/sql"
	"time"
)

// LearningMaterial represents a row of the learning_materials table.
// TeacherName is populated by the student-facing listing join.
type LearningMaterial struct {
	ID          string         `db:"id"` // ULID
	TeacherID   string         `db:"teacher_id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Content     sql.NullString `db:"content"`
	FileURL     sql.NullString `db:"file_url"`
	FileType    sql.NullString `db:"file_type"`
	FileSize    sql.NullInt64  `db:"file_size"`
	Category    sql.NullString `db:"category"`
	CreatedAt   time.Time      `db:"created_at"`
	TeacherName sql.NullString `db:"teacher_name"`
}

// MaterialStatus represents a row of the material_statuses table.
// Student columns are populated by the per-material listing join.
type MaterialStatus struct {
	ID             string         `db:"id"` // ULID
	MaterialID     string         `db:"material_id"`
	StudentID      string         `db:"student_id"`
	Status         string         `db:"status"`
	TeacherComment sql.NullString `db:"teacher_comment"`
	ReviewedAt     sql.NullTime   `db:"reviewed_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
	StudentName    sql.NullString `db:"student_name"`
	StudentEmail   sql.NullString `db:"student_email"`
}
