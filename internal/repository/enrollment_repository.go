package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"studylink/internal/domain"
	"studylink/internal/repository/models"
	"studylink/internal/util"

	"github.com/jmoiron/sqlx"
)

// EnrollmentRepositoryImpl implements domain.EnrollmentRepository using
// PostgreSQL.
type EnrollmentRepositoryImpl struct {
	db DBTX
}

// NewEnrollmentRepository creates a new instance of EnrollmentRepositoryImpl.
func NewEnrollmentRepository(db *sqlx.DB) domain.EnrollmentRepository {
	return &EnrollmentRepositoryImpl{db: db}
}

func (r *EnrollmentRepositoryImpl) AddStudent(ctx context.Context, teacherID, studentID string) error {
	executor := GetExecutor(ctx, r.db)

	query := `
		INSERT INTO teacher_students (teacher_id, student_id)
		VALUES ($1, $2)
		ON CONFLICT (teacher_id, student_id) DO NOTHING`
	if _, err := executor.ExecContext(ctx, query, teacherID, studentID); err != nil {
		return fmt.Errorf("failed to add student: %w", err)
	}
	return nil
}

func (r *EnrollmentRepositoryImpl) ListTeachersForStudent(ctx context.Context, studentID string) ([]domain.Teacher, error) {
	executor := GetExecutor(ctx, r.db)

	var rows []models.User
	query := `
		SELECT u.id, u.full_name, u.email
		FROM teacher_students ts
		JOIN users u ON u.id = ts.teacher_id
		WHERE ts.student_id = $1 AND u.role = 'teacher'
		ORDER BY u.full_name ASC`
	if err := executor.SelectContext(ctx, &rows, query, studentID); err != nil {
		return nil, fmt.Errorf("failed to list teachers: %w", err)
	}

	teachers := make([]domain.Teacher, 0, len(rows))
	for i := range rows {
		teachers = append(teachers, domain.Teacher{
			ID:       rows[i].ID,
			FullName: rows[i].FullName,
			Email:    rows[i].Email,
		})
	}
	return teachers, nil
}

func (r *EnrollmentRepositoryImpl) ListStudents(ctx context.Context) ([]domain.StudentDetail, error) {
	executor := GetExecutor(ctx, r.db)

	var rows []models.StudentRow
	query := `
		SELECT u.id, u.email, u.full_name, u.created_at,
		       up.test_results, up.completed_topics, up.last_activity
		FROM users u
		LEFT JOIN user_progress up ON u.id = up.user_id
		WHERE u.role = 'student'
		ORDER BY u.created_at DESC`
	if err := executor.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}

	students := make([]domain.StudentDetail, 0, len(rows))
	for i := range rows {
		students = append(students, *toDomainStudentDetail(&rows[i]))
	}
	return students, nil
}

func (r *EnrollmentRepositoryImpl) GetStudentDetail(ctx context.Context, studentID string) (*domain.StudentDetail, error) {
	executor := GetExecutor(ctx, r.db)

	var row models.StudentRow
	query := `
		SELECT u.id, u.email, u.full_name, u.created_at,
		       up.test_results, up.completed_topics, up.last_activity
		FROM users u
		LEFT JOIN user_progress up ON u.id = up.user_id
		WHERE u.id = $1 AND u.role = 'student'`
	if err := executor.GetContext(ctx, &row, query, studentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get student detail: %w", err)
	}
	return toDomainStudentDetail(&row), nil
}

func (r *EnrollmentRepositoryImpl) InsertTeacherMessage(ctx context.Context, msg *domain.TeacherMessage) error {
	executor := GetExecutor(ctx, r.db)

	query := `
		INSERT INTO teacher_messages (id, teacher_id, student_id, message, created_at)
		VALUES (:id, :teacher_id, :student_id, :message, :created_at)`

	_, err := executor.NamedExecContext(ctx, query, &models.TeacherMessage{
		ID:        msg.ID,
		TeacherID: msg.TeacherID,
		StudentID: msg.StudentID,
		Message:   msg.Message,
		CreatedAt: msg.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to insert teacher message: %w", err)
	}
	return nil
}

func toDomainStudentDetail(row *models.StudentRow) *domain.StudentDetail {
	detail := &domain.StudentDetail{
		StudentSummary: domain.StudentSummary{
			ID:           row.ID,
			FullName:     row.FullName,
			Email:        row.Email,
			CreatedAt:    row.CreatedAt,
			LastActivity: util.NullTimeToPtr(row.LastActivity),
		},
		TestResults:     row.TestResults,
		CompletedTopics: row.CompletedTopics,
	}
	progress := domain.UserProgress{TestResults: row.TestResults}
	detail.TestsCompleted = progress.TestsCompleted()
	detail.AverageScore = progress.AverageScore()
	return detail
}
