package domain

import (
	"context"
	"time"
)

// Teacher is the student-facing projection of a teacher account.
type Teacher struct {
	ID       string
	FullName string
	Email    string
}

// StudentSummary is the teacher-facing roster entry with progress
// aggregates derived from the student's test log.
type StudentSummary struct {
	ID             string
	FullName       string
	Email          string
	CreatedAt      time.Time
	TestsCompleted int
	AverageScore   float64
	LastActivity   *time.Time
}

// StudentDetail extends the summary with the full logs.
type StudentDetail struct {
	StudentSummary
	TestResults     []TestResult
	CompletedTopics []string
}

// TeacherMessage is a one-directional broadcast from teacher to student.
type TeacherMessage struct {
	ID        string
	TeacherID string
	StudentID string
	Message   string
	CreatedAt time.Time
}

// EnrollmentRepository manages the teacher-student many-to-many link and
// the teacher-side views derived from it.
type EnrollmentRepository interface {
	// AddStudent links a student to a teacher. Inserting an existing pair
	// is a no-op.
	AddStudent(ctx context.Context, teacherID, studentID string) error
	ListTeachersForStudent(ctx context.Context, studentID string) ([]Teacher, error)
	ListStudents(ctx context.Context) ([]StudentDetail, error)
	// GetStudentDetail returns nil when the id does not exist or does not
	// belong to a student account.
	GetStudentDetail(ctx context.Context, studentID string) (*StudentDetail, error)
	InsertTeacherMessage(ctx context.Context, msg *TeacherMessage) error
}
