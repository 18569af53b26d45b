package dto

import (
	"time"

	"studylink/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims defines the custom claims for JWT. Role is deliberately not
// part of the token; the gate loads it from the store on every request.
type AuthClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// AuthRequest is the POST body of the auth resource, discriminated by
// Action ("register" or "login").
type AuthRequest struct {
	Action   string `json:"action"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role,omitempty"`
}

// UserView is the public projection of a user returned alongside tokens.
type UserView struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse is returned by register (201) and login (200).
type AuthResponse struct {
	Token string   `json:"token"`
	User  UserView `json:"user"`
}

// ProfileView joins the user projection with the progress logs. Null logs
// are rendered as empty collections.
type ProfileView struct {
	ID              string                 `json:"id"`
	Email           string                 `json:"email"`
	FullName        string                 `json:"full_name"`
	Role            string                 `json:"role"`
	CreatedAt       time.Time              `json:"created_at"`
	TestResults     []domain.TestResult    `json:"test_results"`
	CompletedTopics []string               `json:"completed_topics"`
	ViewedLectures  []domain.ViewedLecture `json:"viewed_lectures"`
	LastActivity    *time.Time             `json:"last_activity"`
}

// ProfileResponse wraps the profile view under the "user" key.
type ProfileResponse struct {
	User ProfileView `json:"user"`
}

// NewUserView builds the wire projection of a domain user.
func NewUserView(u *domain.User) UserView {
	return UserView{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}
