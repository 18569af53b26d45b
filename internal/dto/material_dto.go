package dto

import (
	"time"

	"studylink/internal/domain"
)

// MaterialRequest is the POST body of the materials resource,
// discriminated by Action ("create" for inline text, "upload" for a
// base64 file payload).
type MaterialRequest struct {
	Action      string `json:"action"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Content     string `json:"content,omitempty"`
	Category    string `json:"category,omitempty"`
	FileBase64  string `json:"file_base64,omitempty"`
	FileName    string `json:"file_name,omitempty"`
	FileType    string `json:"file_type,omitempty"`
}

// MaterialView is one material in a listing. TeacherName appears on the
// student-facing listing only.
type MaterialView struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content,omitempty"`
	FileURL     string    `json:"file_url"`
	FileType    string    `json:"file_type"`
	FileSize    int64     `json:"file_size"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	TeacherName string    `json:"teacher_name,omitempty"`
}

// MaterialsResponse lists materials newest first.
type MaterialsResponse struct {
	Materials []MaterialView `json:"materials"`
}

// CreateMaterialResponse acknowledges a created or uploaded material.
type CreateMaterialResponse struct {
	Success    bool   `json:"success"`
	MaterialID string `json:"material_id"`
	FileURL    string `json:"file_url,omitempty"`
}

// DeleteMaterialResponse acknowledges a delete request. Success is
// reported even when no owned row matched.
type DeleteMaterialResponse struct {
	Success bool `json:"success"`
}

// NewMaterialView builds the wire projection of a material.
func NewMaterialView(m *domain.LearningMaterial) MaterialView {
	return MaterialView{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Content:     m.Content,
		FileURL:     m.FileURL,
		FileType:    m.FileType,
		FileSize:    m.FileSize,
		Category:    m.Category,
		CreatedAt:   m.CreatedAt,
		TeacherName: m.TeacherName,
	}
}
