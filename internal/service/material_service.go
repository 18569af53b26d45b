package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"studylink/internal/domain"
	"studylink/internal/dto"
	"studylink/internal/logger"
	"studylink/internal/util"
	"studylink/internal/validation"

	"go.uber.org/zap"
)

const (
	// DefaultCategory groups materials created without an explicit one.
	DefaultCategory = "Общее"

	inlineContentType  = "text/plain"
	fallbackExtension  = "bin"
	fallbackUploadType = "application/octet-stream"
)

// MaterialService defines the interface for learning material operations.
type MaterialService interface {
	// List returns the caller's materials: own ones for a teacher, the
	// enrolled teachers' ones for a student.
	List(ctx context.Context, userID string, role domain.Role) (*dto.MaterialsResponse, error)
	Create(ctx context.Context, teacherID string, req *dto.MaterialRequest) (*dto.CreateMaterialResponse, error)
	Upload(ctx context.Context, teacherID string, req *dto.MaterialRequest) (*dto.CreateMaterialResponse, error)
	Delete(ctx context.Context, teacherID, materialID string) (*dto.DeleteMaterialResponse, error)
}

type materialServiceImpl struct {
	materialRepo domain.MaterialRepository
	fileStore    domain.FileStore
	validator    *validation.Validator
}

// NewMaterialService creates a new instance of MaterialService.
func NewMaterialService(materialRepo domain.MaterialRepository, fileStore domain.FileStore, validator *validation.Validator) MaterialService {
	return &materialServiceImpl{
		materialRepo: materialRepo,
		fileStore:    fileStore,
		validator:    validator,
	}
}

func (s *materialServiceImpl) List(ctx context.Context, userID string, role domain.Role) (*dto.MaterialsResponse, error) {
	var (
		materials []domain.LearningMaterial
		err       error
	)
	if role == domain.RoleTeacher {
		materials, err = s.materialRepo.ListByTeacher(ctx, userID)
	} else {
		materials, err = s.materialRepo.ListForStudent(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	views := make([]dto.MaterialView, 0, len(materials))
	for i := range materials {
		views = append(views, dto.NewMaterialView(&materials[i]))
	}
	return &dto.MaterialsResponse{Materials: views}, nil
}

func (s *materialServiceImpl) Create(ctx context.Context, teacherID string, req *dto.MaterialRequest) (*dto.CreateMaterialResponse, error) {
	if errs := s.validator.ValidateCreateMaterialRequest(req.Title, req.Content); len(errs) > 0 {
		return nil, errs
	}

	material := &domain.LearningMaterial{
		ID:          util.NewULID(),
		TeacherID:   teacherID,
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		FileType:    inlineContentType,
		FileSize:    int64(len(req.Content)),
		Category:    categoryOrDefault(req.Category),
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.materialRepo.InsertMaterial(ctx, material); err != nil {
		return nil, err
	}

	return &dto.CreateMaterialResponse{Success: true, MaterialID: material.ID}, nil
}

func (s *materialServiceImpl) Upload(ctx context.Context, teacherID string, req *dto.MaterialRequest) (*dto.CreateMaterialResponse, error) {
	if errs := s.validator.ValidateUploadMaterialRequest(req.Title, req.FileBase64, req.FileName); len(errs) > 0 {
		return nil, errs
	}

	data, err := base64.StdEncoding.DecodeString(req.FileBase64)
	if err != nil {
		return nil, domain.NewInvalidInputError("file_base64 is not valid base64")
	}

	contentType := req.FileType
	if contentType == "" {
		contentType = fallbackUploadType
	}

	// The stored key never reuses the client's file name; only its
	// extension survives.
	key := fmt.Sprintf("materials/%s.%s", util.NewULID(), extensionOf(req.FileName))
	fileURL, err := s.fileStore.Upload(ctx, key, contentType, data)
	if err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	material := &domain.LearningMaterial{
		ID:          util.NewULID(),
		TeacherID:   teacherID,
		Title:       req.Title,
		Description: req.Description,
		FileURL:     fileURL,
		FileType:    contentType,
		FileSize:    int64(len(data)),
		Category:    categoryOrDefault(req.Category),
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.materialRepo.InsertMaterial(ctx, material); err != nil {
		return nil, err
	}

	return &dto.CreateMaterialResponse{Success: true, MaterialID: material.ID, FileURL: fileURL}, nil
}

func (s *materialServiceImpl) Delete(ctx context.Context, teacherID, materialID string) (*dto.DeleteMaterialResponse, error) {
	if strings.TrimSpace(materialID) == "" {
		return nil, domain.ValidationErrors{domain.NewMissingFieldError("id")}
	}

	affected, err := s.materialRepo.DeleteMaterial(ctx, materialID, teacherID)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		// Deleting a material the caller does not own reports success
		// without revealing whether the id exists.
		logger.Get().Debug("delete matched no owned material",
			zap.String("materialID", materialID),
			zap.String("teacherID", teacherID))
	}

	return &dto.DeleteMaterialResponse{Success: true}, nil
}

func categoryOrDefault(category string) string {
	if strings.TrimSpace(category) == "" {
		return DefaultCategory
	}
	return category
}

func extensionOf(fileName string) string {
	ext := strings.TrimPrefix(filepath.Ext(fileName), ".")
	if ext == "" {
		return fallbackExtension
	}
	return strings.ToLower(ext)
}
