package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"studylink/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a new sqlx.DB instance and sqlmock for repository testing.
func setupTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	return sqlxDB, mock
}

func TestUserRepository_CreateUser_Success(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewUserRepository(db)
	defer db.Close()

	user := &domain.User{
		ID:           "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		Email:        "new@example.com",
		PasswordHash: "$2a$10$hash",
		FullName:     "New User",
		Role:         domain.RoleStudent,
		CreatedAt:    time.Now().UTC(),
	}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users (id, email, password_hash, full_name, role, created_at)`)).
		WithArgs(user.ID, user.Email, user.PasswordHash, user.FullName, string(user.Role), user.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateUser(context.Background(), user)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateUser_DuplicateEmail(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewUserRepository(db)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO users`).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "users_email_key"})

	err := repo.CreateUser(context.Background(), &domain.User{
		ID:    "dup-id",
		Email: "taken@example.com",
	})

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeConflict, domainErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetUserByID_Success(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewUserRepository(db)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "full_name", "role", "created_at"}).
		AddRow("user-1", "a@example.com", "hash", "A User", "teacher", now)

	mock.ExpectQuery(`SELECT id, email, password_hash, full_name, role, created_at\s+FROM users\s+WHERE id = \$1`).
		WithArgs("user-1").
		WillReturnRows(rows)

	user, err := repo.GetUserByID(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, domain.RoleTeacher, user.Role)
	assert.True(t, now.Equal(user.CreatedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetUserByID_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewUserRepository(db)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, email, password_hash, full_name, role, created_at\s+FROM users\s+WHERE id = \$1`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetUserByID(context.Background(), "ghost")

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeNotFound, domainErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetUserByEmail_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewUserRepository(db)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, email, password_hash, full_name, role, created_at\s+FROM users\s+WHERE email = \$1`).
		WithArgs("nobody@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetUserByEmail(context.Background(), "nobody@example.com")

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeNotFound, domainErr.Code)
}

func TestUserRepository_GetUserRole(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewUserRepository(db)
	defer db.Close()

	mock.ExpectQuery(`SELECT role FROM users WHERE id = \$1`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"role"}).AddRow("student"))

	role, err := repo.GetUserRole(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, domain.RoleStudent, role)
	assert.NoError(t, mock.ExpectationsWereMet())
}
