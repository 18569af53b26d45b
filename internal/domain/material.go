package domain

import (
	"context"
	"time"
)

// LearningMaterial is either inline text content or an uploaded file
// reference, owned by one teacher.
type LearningMaterial struct {
	ID          string
	TeacherID   string
	Title       string
	Description string
	Content     string
	FileURL     string
	FileType    string
	FileSize    int64
	Category    string
	CreatedAt   time.Time
	// TeacherName is populated on student-facing listings only.
	TeacherName string
}

// MaterialStatus tracks one student's review state for one material.
// Status values are caller-driven free strings; no transition set is
// enforced server-side.
type MaterialStatus struct {
	ID             string
	MaterialID     string
	StudentID      string
	Status         string
	TeacherComment string
	ReviewedAt     *time.Time
	UpdatedAt      time.Time
	StudentName    string
	StudentEmail   string
}

// MaterialRepository defines the interface for learning material
// persistence.
type MaterialRepository interface {
	InsertMaterial(ctx context.Context, m *LearningMaterial) error
	ListByTeacher(ctx context.Context, teacherID string) ([]LearningMaterial, error)
	// ListForStudent returns materials of every teacher the student is
	// enrolled with, including the teacher display name.
	ListForStudent(ctx context.Context, studentID string) ([]LearningMaterial, error)
	// DeleteMaterial removes a material scoped to (id, teacherID) and
	// reports how many rows matched. Zero is not an error.
	DeleteMaterial(ctx context.Context, materialID, teacherID string) (int64, error)
	GetMaterialOwner(ctx context.Context, materialID string) (string, error)
	UpsertStatus(ctx context.Context, s *MaterialStatus) error
	ListStatusesByMaterial(ctx context.Context, materialID string) ([]MaterialStatus, error)
}
