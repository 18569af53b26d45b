package domain

import (
	"context"
	"time"
)

// Role gates which operations a user may perform.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

// ValidRole reports whether s names a known role.
func ValidRole(s string) bool {
	return s == string(RoleStudent) || s == string(RoleTeacher)
}

// User represents a registered account.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	Role         Role
	CreatedAt    time.Time
}

// Validate checks the fields required before persisting a user.
func (u *User) Validate() error {
	if u.Email == "" {
		return ValidationErrors{NewMissingFieldError("email")}
	}
	if u.PasswordHash == "" {
		return ValidationErrors{NewMissingFieldError("password")}
	}
	if u.FullName == "" {
		return ValidationErrors{NewMissingFieldError("full_name")}
	}
	if !ValidRole(string(u.Role)) {
		return ValidationErrors{NewInvalidFormatError("role", string(u.Role))}
	}
	return nil
}

// UserRepository defines the interface for user data persistence.
type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, userID string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	// GetUserRole is the cheap role lookup the authorization gate runs on
	// every protected request.
	GetUserRole(ctx context.Context, userID string) (Role, error)
}
