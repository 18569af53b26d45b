package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"studylink/internal/domain"
	"studylink/internal/repository/models"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
)

const pgUniqueViolation = "23505"

// UserRepositoryImpl implements domain.UserRepository using PostgreSQL.
type UserRepositoryImpl struct {
	db DBTX
}

// NewUserRepository creates a new instance of UserRepositoryImpl.
func NewUserRepository(db *sqlx.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) CreateUser(ctx context.Context, user *domain.User) error {
	executor := GetExecutor(ctx, r.db)

	query := `
		INSERT INTO users (id, email, password_hash, full_name, role, created_at)
		VALUES (:id, :email, :password_hash, :full_name, :role, :created_at)`

	_, err := executor.NamedExecContext(ctx, query, fromDomainUser(user))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.NewConflictError("email already registered")
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *UserRepositoryImpl) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	executor := GetExecutor(ctx, r.db)

	var m models.User
	query := `
		SELECT id, email, password_hash, full_name, role, created_at
		FROM users
		WHERE id = $1`
	if err := executor.GetContext(ctx, &m, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("user")
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return toDomainUser(&m), nil
}

func (r *UserRepositoryImpl) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	executor := GetExecutor(ctx, r.db)

	var m models.User
	query := `
		SELECT id, email, password_hash, full_name, role, created_at
		FROM users
		WHERE email = $1`
	if err := executor.GetContext(ctx, &m, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("user")
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return toDomainUser(&m), nil
}

func (r *UserRepositoryImpl) GetUserRole(ctx context.Context, userID string) (domain.Role, error) {
	executor := GetExecutor(ctx, r.db)

	var role string
	if err := executor.GetContext(ctx, &role, `SELECT role FROM users WHERE id = $1`, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.NewNotFoundError("user")
		}
		return "", fmt.Errorf("failed to get user role: %w", err)
	}
	return domain.Role(role), nil
}

func fromDomainUser(u *domain.User) *models.User {
	return &models.User{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FullName:     u.FullName,
		Role:         string(u.Role),
		CreatedAt:    u.CreatedAt,
	}
}

func toDomainUser(m *models.User) *domain.User {
	return &domain.User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		FullName:     m.FullName,
		Role:         domain.Role(m.Role),
		CreatedAt:    m.CreatedAt,
	}
}
