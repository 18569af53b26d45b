package service

import (
	"context"
	"errors"
	"time"

	"studylink/internal/domain"
	"studylink/internal/dto"
	"studylink/internal/logger"
	"studylink/internal/util"
	"studylink/internal/validation"

	"go.uber.org/zap"
)

// TeacherService defines the interface for the teacher-only surface:
// roster views, enrollment, broadcasts and material review states.
type TeacherService interface {
	ListStudents(ctx context.Context) (*dto.StudentsResponse, error)
	GetStudent(ctx context.Context, studentID string) (*dto.StudentDetailResponse, error)
	SendMessage(ctx context.Context, teacherID string, req *dto.TeacherRequest) (*dto.TeacherMessageResponse, error)
	AddStudent(ctx context.Context, teacherID string, req *dto.TeacherRequest) (*dto.SuccessResponse, error)
	UpdateMaterialStatus(ctx context.Context, teacherID string, req *dto.TeacherRequest) (*dto.SuccessResponse, error)
	GetMaterialStatuses(ctx context.Context, teacherID string, req *dto.TeacherRequest) (*dto.MaterialStatusesResponse, error)
}

type teacherServiceImpl struct {
	userRepo       domain.UserRepository
	enrollmentRepo domain.EnrollmentRepository
	materialRepo   domain.MaterialRepository
	validator      *validation.Validator
}

// NewTeacherService creates a new instance of TeacherService.
func NewTeacherService(
	userRepo domain.UserRepository,
	enrollmentRepo domain.EnrollmentRepository,
	materialRepo domain.MaterialRepository,
	validator *validation.Validator,
) TeacherService {
	return &teacherServiceImpl{
		userRepo:       userRepo,
		enrollmentRepo: enrollmentRepo,
		materialRepo:   materialRepo,
		validator:      validator,
	}
}

func (s *teacherServiceImpl) ListStudents(ctx context.Context) (*dto.StudentsResponse, error) {
	students, err := s.enrollmentRepo.ListStudents(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]dto.StudentSummaryView, 0, len(students))
	for i := range students {
		views = append(views, dto.NewStudentSummaryView(&students[i]))
	}
	return &dto.StudentsResponse{Students: views}, nil
}

func (s *teacherServiceImpl) GetStudent(ctx context.Context, studentID string) (*dto.StudentDetailResponse, error) {
	detail, err := s.enrollmentRepo.GetStudentDetail(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.NewNotFoundError("student not found")
	}

	view := dto.NewStudentDetailView(detail)
	return &dto.StudentDetailResponse{Student: view}, nil
}

func (s *teacherServiceImpl) SendMessage(ctx context.Context, teacherID string, req *dto.TeacherRequest) (*dto.TeacherMessageResponse, error) {
	if errs := s.validator.ValidateTeacherMessageRequest(req.StudentID, req.Message); len(errs) > 0 {
		return nil, errs
	}

	detail, err := s.enrollmentRepo.GetStudentDetail(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.NewNotFoundError("student not found")
	}

	msg := &domain.TeacherMessage{
		ID:        util.NewULID(),
		TeacherID: teacherID,
		StudentID: req.StudentID,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.enrollmentRepo.InsertTeacherMessage(ctx, msg); err != nil {
		return nil, err
	}

	return &dto.TeacherMessageResponse{Success: true, MessageID: msg.ID, SentAt: msg.CreatedAt}, nil
}

func (s *teacherServiceImpl) AddStudent(ctx context.Context, teacherID string, req *dto.TeacherRequest) (*dto.SuccessResponse, error) {
	email := validation.NormalizeEmail(req.Email)
	if email == "" {
		return nil, domain.ValidationErrors{domain.NewMissingFieldError("email")}
	}

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) && domainErr.Code == domain.CodeNotFound {
			return nil, domain.NewNotFoundError("student with this email not found")
		}
		return nil, err
	}
	if user.Role != domain.RoleStudent {
		return nil, domain.NewNotFoundError("student with this email not found")
	}

	// Re-adding an already linked student is a no-op.
	if err := s.enrollmentRepo.AddStudent(ctx, teacherID, user.ID); err != nil {
		return nil, err
	}

	logger.Get().Info("student enrolled",
		zap.String("teacherID", teacherID),
		zap.String("studentID", user.ID))

	return &dto.SuccessResponse{Success: true, Message: "student added"}, nil
}

func (s *teacherServiceImpl) UpdateMaterialStatus(ctx context.Context, teacherID string, req *dto.TeacherRequest) (*dto.SuccessResponse, error) {
	if errs := s.validator.ValidateMaterialStatusRequest(req.MaterialID, req.StudentID, req.Status); len(errs) > 0 {
		return nil, errs
	}
	if err := s.requireOwnership(ctx, teacherID, req.MaterialID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	status := &domain.MaterialStatus{
		ID:             util.NewULID(),
		MaterialID:     req.MaterialID,
		StudentID:      req.StudentID,
		Status:         req.Status,
		TeacherComment: req.TeacherComment,
		ReviewedAt:     &now,
		UpdatedAt:      now,
	}
	if err := s.materialRepo.UpsertStatus(ctx, status); err != nil {
		return nil, err
	}

	return &dto.SuccessResponse{Success: true}, nil
}

func (s *teacherServiceImpl) GetMaterialStatuses(ctx context.Context, teacherID string, req *dto.TeacherRequest) (*dto.MaterialStatusesResponse, error) {
	if req.MaterialID == "" {
		return nil, domain.ValidationErrors{domain.NewMissingFieldError("material_id")}
	}
	if err := s.requireOwnership(ctx, teacherID, req.MaterialID); err != nil {
		return nil, err
	}

	statuses, err := s.materialRepo.ListStatusesByMaterial(ctx, req.MaterialID)
	if err != nil {
		return nil, err
	}

	views := make([]dto.MaterialStatusView, 0, len(statuses))
	for i := range statuses {
		st := &statuses[i]
		views = append(views, dto.MaterialStatusView{
			ID:             st.ID,
			MaterialID:     st.MaterialID,
			StudentID:      st.StudentID,
			StudentName:    st.StudentName,
			StudentEmail:   st.StudentEmail,
			Status:         st.Status,
			TeacherComment: st.TeacherComment,
			ReviewedAt:     st.ReviewedAt,
			UpdatedAt:      st.UpdatedAt,
		})
	}
	return &dto.MaterialStatusesResponse{Statuses: views}, nil
}

// requireOwnership answers not-found for both unknown and non-owned
// materials, so the response does not reveal which one it was.
func (s *teacherServiceImpl) requireOwnership(ctx context.Context, teacherID, materialID string) error {
	owner, err := s.materialRepo.GetMaterialOwner(ctx, materialID)
	if err != nil {
		return err
	}
	if owner != teacherID {
		return domain.NewNotFoundError("material not found")
	}
	return nil
}
