package service

import (
	"context"
	"strings"
	"time"

	"studylink/internal/domain"
	"studylink/internal/dto"
)

// ProgressService defines the interface for learning progress writes and
// the student-facing teacher roster.
type ProgressService interface {
	SaveTestResult(ctx context.Context, userID string, req *dto.ProgressRequest) (*dto.SuccessResponse, error)
	SaveCompletedTopic(ctx context.Context, userID string, req *dto.ProgressRequest) (*dto.SuccessResponse, error)
	MarkLectureViewed(ctx context.Context, userID string, req *dto.ProgressRequest) (*dto.SuccessResponse, error)
	GetTeachers(ctx context.Context, studentID string) (*dto.TeachersResponse, error)
}

type progressServiceImpl struct {
	progressRepo   domain.ProgressRepository
	enrollmentRepo domain.EnrollmentRepository
}

// NewProgressService creates a new instance of ProgressService.
func NewProgressService(progressRepo domain.ProgressRepository, enrollmentRepo domain.EnrollmentRepository) ProgressService {
	return &progressServiceImpl{
		progressRepo:   progressRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

func (s *progressServiceImpl) SaveTestResult(ctx context.Context, userID string, req *dto.ProgressRequest) (*dto.SuccessResponse, error) {
	if strings.TrimSpace(req.Topic) == "" {
		return nil, domain.ValidationErrors{domain.NewMissingFieldError("topic")}
	}

	result := domain.TestResult{
		Topic:          req.Topic,
		Score:          req.Score,
		TotalQuestions: req.TotalQuestions,
		CorrectAnswers: req.CorrectAnswers,
		Date:           time.Now().UTC(),
	}
	if err := s.progressRepo.AppendTestResult(ctx, userID, result); err != nil {
		return nil, err
	}
	return &dto.SuccessResponse{Success: true}, nil
}

func (s *progressServiceImpl) SaveCompletedTopic(ctx context.Context, userID string, req *dto.ProgressRequest) (*dto.SuccessResponse, error) {
	if strings.TrimSpace(req.Topic) == "" {
		return nil, domain.ValidationErrors{domain.NewMissingFieldError("topic")}
	}

	if err := s.progressRepo.AddCompletedTopic(ctx, userID, req.Topic); err != nil {
		return nil, err
	}
	return &dto.SuccessResponse{Success: true}, nil
}

func (s *progressServiceImpl) MarkLectureViewed(ctx context.Context, userID string, req *dto.ProgressRequest) (*dto.SuccessResponse, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, domain.ValidationErrors{domain.NewMissingFieldError("title")}
	}

	lecture := domain.ViewedLecture{
		Title:    req.Title,
		Duration: req.Duration,
		ViewedAt: time.Now().UTC(),
	}
	if err := s.progressRepo.UpsertViewedLecture(ctx, userID, lecture); err != nil {
		return nil, err
	}
	return &dto.SuccessResponse{Success: true}, nil
}

func (s *progressServiceImpl) GetTeachers(ctx context.Context, studentID string) (*dto.TeachersResponse, error) {
	teachers, err := s.enrollmentRepo.ListTeachersForStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	views := make([]dto.TeacherView, 0, len(teachers))
	for _, t := range teachers {
		views = append(views, dto.TeacherView{ID: t.ID, FullName: t.FullName, Email: t.Email})
	}
	return &dto.TeachersResponse{Teachers: views}, nil
}
