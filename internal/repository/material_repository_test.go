package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"studylink/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialRepository_InsertMaterial(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewMaterialRepository(db)
	defer db.Close()

	material := &domain.LearningMaterial{
		ID:        "m1",
		TeacherID: "t1",
		Title:     "Quadratic equations",
		Content:   "notes",
		FileType:  "text/plain",
		FileSize:  5,
		Category:  "Математика",
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectExec(`INSERT INTO learning_materials`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.InsertMaterial(context.Background(), material)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMaterialRepository_ListByTeacher(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewMaterialRepository(db)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "teacher_id", "title", "description", "content", "file_url", "file_type", "file_size", "category", "created_at"}).
		AddRow("m1", "t1", "Own material", nil, "notes", nil, "text/plain", int64(5), "Общее", time.Now())

	mock.ExpectQuery(`SELECT id, teacher_id, title, description, content, file_url, file_type, file_size, category, created_at\s+FROM learning_materials\s+WHERE teacher_id = \$1\s+ORDER BY created_at DESC`).
		WithArgs("t1").
		WillReturnRows(rows)

	materials, err := repo.ListByTeacher(context.Background(), "t1")

	require.NoError(t, err)
	require.Len(t, materials, 1)
	assert.Equal(t, "Own material", materials[0].Title)
	// NULL description reads as the empty string in the domain model.
	assert.Equal(t, "", materials[0].Description)
	assert.Equal(t, int64(5), materials[0].FileSize)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMaterialRepository_ListForStudent_IncludesTeacherName(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewMaterialRepository(db)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "teacher_id", "title", "description", "content", "file_url", "file_type", "file_size", "category", "created_at", "teacher_name"}).
		AddRow("m2", "t1", "Enrolled material", nil, nil, "https://cdn.example.com/m2.pdf", "application/pdf", int64(1024), "Общее", time.Now(), "Ada Teacher")

	mock.ExpectQuery(`FROM learning_materials m\s+JOIN teacher_students ts ON ts.teacher_id = m.teacher_id\s+JOIN users u ON u.id = m.teacher_id\s+WHERE ts.student_id = \$1`).
		WithArgs("s1").
		WillReturnRows(rows)

	materials, err := repo.ListForStudent(context.Background(), "s1")

	require.NoError(t, err)
	require.Len(t, materials, 1)
	assert.Equal(t, "Ada Teacher", materials[0].TeacherName)
	assert.Equal(t, "https://cdn.example.com/m2.pdf", materials[0].FileURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMaterialRepository_DeleteMaterial(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewMaterialRepository(db)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM learning_materials WHERE id = \$1 AND teacher_id = \$2`).
		WithArgs("m1", "t1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.DeleteMaterial(context.Background(), "m1", "t1")

	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMaterialRepository_DeleteMaterial_NotOwned(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewMaterialRepository(db)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM learning_materials`).
		WithArgs("m1", "someone-else").
		WillReturnResult(sqlmock.NewResult(0, 0))

	affected, err := repo.DeleteMaterial(context.Background(), "m1", "someone-else")

	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}

func TestMaterialRepository_GetMaterialOwner_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewMaterialRepository(db)
	defer db.Close()

	mock.ExpectQuery(`SELECT teacher_id FROM learning_materials WHERE id = \$1`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetMaterialOwner(context.Background(), "ghost")

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeNotFound, domainErr.Code)
}

func TestMaterialRepository_UpsertStatus(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewMaterialRepository(db)
	defer db.Close()

	now := time.Now().UTC()
	status := &domain.MaterialStatus{
		ID:             "st1",
		MaterialID:     "m1",
		StudentID:      "s1",
		Status:         "reviewed",
		TeacherComment: "well done",
		ReviewedAt:     &now,
		UpdatedAt:      now,
	}

	mock.ExpectExec(`INSERT INTO material_statuses[\s\S]*ON CONFLICT \(material_id, student_id\) DO UPDATE SET[\s\S]*status = EXCLUDED.status`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpsertStatus(context.Background(), status)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMaterialRepository_ListStatusesByMaterial(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewMaterialRepository(db)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "material_id", "student_id", "status", "teacher_comment", "reviewed_at", "updated_at", "student_name", "student_email"}).
		AddRow("st1", "m1", "s1", "reviewed", "well done", now, now, "One", "one@example.com").
		AddRow("st2", "m1", "s2", "pending", nil, nil, now, "Two", "two@example.com")

	mock.ExpectQuery(`FROM material_statuses s\s+JOIN users u ON u.id = s.student_id\s+WHERE s.material_id = \$1\s+ORDER BY s.updated_at DESC`).
		WithArgs("m1").
		WillReturnRows(rows)

	statuses, err := repo.ListStatusesByMaterial(context.Background(), "m1")

	require.NoError(t, err)
	require.Len(t, statuses, 2)
	assert.Equal(t, "One", statuses[0].StudentName)
	assert.Equal(t, "well done", statuses[0].TeacherComment)
	require.NotNil(t, statuses[0].ReviewedAt)
	assert.Equal(t, "", statuses[1].TeacherComment)
	assert.Nil(t, statuses[1].ReviewedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}
