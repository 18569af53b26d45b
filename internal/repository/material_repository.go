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

// MaterialRepositoryImpl implements domain.MaterialRepository using
// PostgreSQL.
type MaterialRepositoryImpl struct {
	db DBTX
}

// NewMaterialRepository creates a new instance of MaterialRepositoryImpl.
func NewMaterialRepository(db *sqlx.DB) domain.MaterialRepository {
	return &MaterialRepositoryImpl{db: db}
}

func (r *MaterialRepositoryImpl) InsertMaterial(ctx context.Context, m *domain.LearningMaterial) error {
	executor := GetExecutor(ctx, r.db)

	query := `
		INSERT INTO learning_materials
			(id, teacher_id, title, description, content, file_url, file_type, file_size, category, created_at)
		VALUES
			(:id, :teacher_id, :title, :description, :content, :file_url, :file_type, :file_size, :category, :created_at)`

	_, err := executor.NamedExecContext(ctx, query, fromDomainMaterial(m))
	if err != nil {
		return fmt.Errorf("failed to insert material: %w", err)
	}
	return nil
}

func (r *MaterialRepositoryImpl) ListByTeacher(ctx context.Context, teacherID string) ([]domain.LearningMaterial, error) {
	executor := GetExecutor(ctx, r.db)

	var rows []models.LearningMaterial
	query := `
		SELECT id, teacher_id, title, description, content, file_url, file_type, file_size, category, created_at
		FROM learning_materials
		WHERE teacher_id = $1
		ORDER BY created_at DESC`
	if err := executor.SelectContext(ctx, &rows, query, teacherID); err != nil {
		return nil, fmt.Errorf("failed to list materials by teacher: %w", err)
	}
	return toDomainMaterials(rows), nil
}

func (r *MaterialRepositoryImpl) ListForStudent(ctx context.Context, studentID string) ([]domain.LearningMaterial, error) {
	executor := GetExecutor(ctx, r.db)

	var rows []models.LearningMaterial
	query := `
		SELECT m.id, m.teacher_id, m.title, m.description, m.content, m.file_url,
		       m.file_type, m.file_size, m.category, m.created_at,
		       u.full_name AS teacher_name
		FROM learning_materials m
		JOIN teacher_students ts ON ts.teacher_id = m.teacher_id
		JOIN users u ON u.id = m.teacher_id
		WHERE ts.student_id = $1
		ORDER BY m.created_at DESC`
	if err := executor.SelectContext(ctx, &rows, query, studentID); err != nil {
		return nil, fmt.Errorf("failed to list materials for student: %w", err)
	}
	return toDomainMaterials(rows), nil
}

func (r *MaterialRepositoryImpl) DeleteMaterial(ctx context.Context, materialID, teacherID string) (int64, error) {
	executor := GetExecutor(ctx, r.db)

	res, err := executor.ExecContext(ctx,
		`DELETE FROM learning_materials WHERE id = $1 AND teacher_id = $2`,
		materialID, teacherID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete material: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read delete result: %w", err)
	}
	return affected, nil
}

func (r *MaterialRepositoryImpl) GetMaterialOwner(ctx context.Context, materialID string) (string, error) {
	executor := GetExecutor(ctx, r.db)

	var teacherID string
	query := `SELECT teacher_id FROM learning_materials WHERE id = $1`
	if err := executor.GetContext(ctx, &teacherID, query, materialID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.NewNotFoundError("material")
		}
		return "", fmt.Errorf("failed to get material owner: %w", err)
	}
	return teacherID, nil
}

func (r *MaterialRepositoryImpl) UpsertStatus(ctx context.Context, s *domain.MaterialStatus) error {
	executor := GetExecutor(ctx, r.db)

	query := `
		INSERT INTO material_statuses
			(id, material_id, student_id, status, teacher_comment, reviewed_at, updated_at)
		VALUES
			(:id, :material_id, :student_id, :status, :teacher_comment, :reviewed_at, :updated_at)
		ON CONFLICT (material_id, student_id) DO UPDATE SET
			status = EXCLUDED.status,
			teacher_comment = EXCLUDED.teacher_comment,
			reviewed_at = EXCLUDED.reviewed_at,
			updated_at = EXCLUDED.updated_at`

	_, err := executor.NamedExecContext(ctx, query, &models.MaterialStatus{
		ID:             s.ID,
		MaterialID:     s.MaterialID,
		StudentID:      s.StudentID,
		Status:         s.Status,
		TeacherComment: util.StringToNullString(s.TeacherComment),
		ReviewedAt:     util.PtrToNullTime(s.ReviewedAt),
		UpdatedAt:      s.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert material status: %w", err)
	}
	return nil
}

func (r *MaterialRepositoryImpl) ListStatusesByMaterial(ctx context.Context, materialID string) ([]domain.MaterialStatus, error) {
	executor := GetExecutor(ctx, r.db)

	var rows []models.MaterialStatus
	query := `
		SELECT s.id, s.material_id, s.student_id, s.status, s.teacher_comment,
		       s.reviewed_at, s.updated_at,
		       u.full_name AS student_name, u.email AS student_email
		FROM material_statuses s
		JOIN users u ON u.id = s.student_id
		WHERE s.material_id = $1
		ORDER BY s.updated_at DESC`
	if err := executor.SelectContext(ctx, &rows, query, materialID); err != nil {
		return nil, fmt.Errorf("failed to list material statuses: %w", err)
	}

	statuses := make([]domain.MaterialStatus, 0, len(rows))
	for i := range rows {
		statuses = append(statuses, *toDomainMaterialStatus(&rows[i]))
	}
	return statuses, nil
}

func fromDomainMaterial(m *domain.LearningMaterial) *models.LearningMaterial {
	return &models.LearningMaterial{
		ID:          m.ID,
		TeacherID:   m.TeacherID,
		Title:       m.Title,
		Description: util.StringToNullString(m.Description),
		Content:     util.StringToNullString(m.Content),
		FileURL:     util.StringToNullString(m.FileURL),
		FileType:    util.StringToNullString(m.FileType),
		FileSize:    util.Int64ToNullInt64(m.FileSize),
		Category:    util.StringToNullString(m.Category),
		CreatedAt:   m.CreatedAt,
	}
}

func toDomainMaterial(m *models.LearningMaterial) *domain.LearningMaterial {
	return &domain.LearningMaterial{
		ID:          m.ID,
		TeacherID:   m.TeacherID,
		Title:       m.Title,
		Description: m.Description.String,
		Content:     m.Content.String,
		FileURL:     m.FileURL.String,
		FileType:    m.FileType.String,
		FileSize:    m.FileSize.Int64,
		Category:    m.Category.String,
		CreatedAt:   m.CreatedAt,
		TeacherName: m.TeacherName.String,
	}
}

func toDomainMaterials(rows []models.LearningMaterial) []domain.LearningMaterial {
	materials := make([]domain.LearningMaterial, 0, len(rows))
	for i := range rows {
		materials = append(materials, *toDomainMaterial(&rows[i]))
	}
	return materials
}

func toDomainMaterialStatus(m *models.MaterialStatus) *domain.MaterialStatus {
	return &domain.MaterialStatus{
		ID:             m.ID,
		MaterialID:     m.MaterialID,
		StudentID:      m.StudentID,
		Status:         m.Status,
		TeacherComment: m.TeacherComment.String,
		ReviewedAt:     util.NullTimeToPtr(m.ReviewedAt),
		UpdatedAt:      m.UpdatedAt,
		StudentName:    m.StudentName.String,
		StudentEmail:   m.StudentEmail.String,
	}
}
