package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studylink/internal/config"
	"studylink/internal/domain"
	"studylink/internal/dto"
	"studylink/internal/logger"
	"studylink/internal/util"
	"studylink/internal/validation"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidJWTToken = errors.New("invalid jwt token")

// AuthService defines the interface for authentication operations.
type AuthService interface {
	Register(ctx context.Context, req *dto.AuthRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.AuthRequest) (*dto.AuthResponse, error)
	GetProfile(ctx context.Context, userID string) (*dto.ProfileResponse, error)
	ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
	CreateJWT(ctx context.Context, user *domain.User) (string, error)
	// GetUserRole resolves the caller's current role from the store. The
	// token deliberately carries no role claim, so a role change takes
	// effect on the next request.
	GetUserRole(ctx context.Context, userID string) (domain.Role, error)
}

type authServiceImpl struct {
	userRepo     domain.UserRepository
	progressRepo domain.ProgressRepository
	txManager    domain.TransactionManager
	validator    *validation.Validator
	appConfig    *config.Config
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(
	userRepo domain.UserRepository,
	progressRepo domain.ProgressRepository,
	txManager domain.TransactionManager,
	validator *validation.Validator,
	appConfig *config.Config,
) AuthService {
	return &authServiceImpl{
		userRepo:     userRepo,
		progressRepo: progressRepo,
		txManager:    txManager,
		validator:    validator,
		appConfig:    appConfig,
	}
}

func (s *authServiceImpl) Register(ctx context.Context, req *dto.AuthRequest) (*dto.AuthResponse, error) {
	appLogger := logger.Get()

	email := validation.NormalizeEmail(req.Email)
	if errs := s.validator.ValidateRegisterRequest(email, req.Password, req.FullName, req.Role); len(errs) > 0 {
		return nil, errs
	}

	role := domain.Role(req.Role)
	if req.Role == "" {
		role = domain.RoleStudent
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		ID:           util.NewULID(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}

	// The account and its empty progress row are created together so a
	// progress write never races an account that half-exists.
	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.userRepo.CreateUser(txCtx, user); err != nil {
			return err
		}
		return s.progressRepo.CreateEmptyProgress(txCtx, user.ID)
	})
	if err != nil {
		return nil, err
	}

	token, err := s.CreateJWT(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to create token: %w", err)
	}

	appLogger.Info("user registered",
		zap.String("userID", user.ID),
		zap.String("role", string(user.Role)))

	return &dto.AuthResponse{Token: token, User: dto.NewUserView(user)}, nil
}

func (s *authServiceImpl) Login(ctx context.Context, req *dto.AuthRequest) (*dto.AuthResponse, error) {
	email := validation.NormalizeEmail(req.Email)
	if errs := s.validator.ValidateLoginRequest(email, req.Password); len(errs) > 0 {
		return nil, errs
	}

	// Unknown email and wrong password produce the same response, so the
	// endpoint cannot be used to enumerate accounts.
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) && domainErr.Code == domain.CodeNotFound {
			return nil, domain.NewUnauthenticatedError("invalid email or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.NewUnauthenticatedError("invalid email or password")
	}

	token, err := s.CreateJWT(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to create token: %w", err)
	}

	return &dto.AuthResponse{Token: token, User: dto.NewUserView(user)}, nil
}

func (s *authServiceImpl) GetProfile(ctx context.Context, userID string) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	progress, err := s.progressRepo.GetProgressByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := dto.ProfileView{
		ID:              user.ID,
		Email:           user.Email,
		FullName:        user.FullName,
		Role:            string(user.Role),
		CreatedAt:       user.CreatedAt,
		TestResults:     progress.TestResults,
		CompletedTopics: progress.CompletedTopics,
		ViewedLectures:  progress.ViewedLectures,
		LastActivity:    progress.LastActivity,
	}
	if view.TestResults == nil {
		view.TestResults = []domain.TestResult{}
	}
	if view.CompletedTopics == nil {
		view.CompletedTopics = []string{}
	}
	if view.ViewedLectures == nil {
		view.ViewedLectures = []domain.ViewedLecture{}
	}

	return &dto.ProfileResponse{User: view}, nil
}

func (s *authServiceImpl) CreateJWT(ctx context.Context, user *domain.User) (string, error) {
	now := time.Now()
	claims := dto.AuthClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.appConfig.JWT.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   user.ID,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.appConfig.JWT.SecretKey))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func (s *authServiceImpl) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	appLogger := logger.Get()
	token, err := jwt.ParseWithClaims(tokenString, &dto.AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.appConfig.JWT.SecretKey), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			appLogger.Warn("JWT token expired",
				zap.Error(err),
				zap.String("token_snippet", tokenString[:min(len(tokenString), 20)]+"..."))
		} else {
			appLogger.Warn("JWT validation failed",
				zap.Error(err),
				zap.String("token_snippet", tokenString[:min(len(tokenString), 20)]+"..."))
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidJWTToken, err)
	}

	if claims, ok := token.Claims.(*dto.AuthClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidJWTToken
}

func (s *authServiceImpl) GetUserRole(ctx context.Context, userID string) (domain.Role, error) {
	return s.userRepo.GetUserRole(ctx, userID)
}
