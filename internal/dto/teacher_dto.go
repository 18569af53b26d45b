package dto

import (
	"time"

	"studylink/internal/domain"
	"studylink/internal/util"
)

// TeacherRequest is the POST body of the teacher resource, discriminated
// by Action ("send_message", "add_student", "update_material_status" or
// "get_material_statuses").
type TeacherRequest struct {
	Action         string `json:"action"`
	StudentID      string `json:"student_id,omitempty"`
	Message        string `json:"message,omitempty"`
	Email          string `json:"email,omitempty"`
	MaterialID     string `json:"material_id,omitempty"`
	Status         string `json:"status,omitempty"`
	TeacherComment string `json:"teacher_comment,omitempty"`
}

// StudentSummaryView is one roster entry with progress aggregates.
type StudentSummaryView struct {
	ID             string     `json:"id"`
	FullName       string     `json:"full_name"`
	Email          string     `json:"email"`
	TestsCompleted int        `json:"tests_completed"`
	AverageScore   float64    `json:"average_score"`
	LastActivity   *time.Time `json:"last_activity"`
}

// StudentsResponse lists all students visible to the teacher.
type StudentsResponse struct {
	Students []StudentSummaryView `json:"students"`
}

// StudentDetailView extends the summary with the full logs.
type StudentDetailView struct {
	ID              string              `json:"id"`
	FullName        string              `json:"full_name"`
	Email           string              `json:"email"`
	CreatedAt       time.Time           `json:"created_at"`
	TestsCompleted  int                 `json:"tests_completed"`
	AverageScore    float64             `json:"average_score"`
	TestResults     []domain.TestResult `json:"test_results"`
	CompletedTopics []string            `json:"completed_topics"`
	LastActivity    *time.Time          `json:"last_activity"`
}

// StudentDetailResponse wraps a single student view.
type StudentDetailResponse struct {
	Student StudentDetailView `json:"student"`
}

// TeacherMessageResponse acknowledges a broadcast message to a student.
type TeacherMessageResponse struct {
	Success   bool      `json:"success"`
	MessageID string    `json:"message_id"`
	SentAt    time.Time `json:"sent_at"`
}

// MaterialStatusView is one student's review state for a material.
type MaterialStatusView struct {
	ID             string     `json:"id"`
	MaterialID     string     `json:"material_id"`
	StudentID      string     `json:"student_id"`
	StudentName    string     `json:"student_name"`
	StudentEmail   string     `json:"student_email"`
	Status         string     `json:"status"`
	TeacherComment string     `json:"teacher_comment,omitempty"`
	ReviewedAt     *time.Time `json:"reviewed_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// MaterialStatusesResponse lists review states for one material.
type MaterialStatusesResponse struct {
	Statuses []MaterialStatusView `json:"statuses"`
}

// NewStudentSummaryView builds the roster projection with rounded
// aggregates.
func NewStudentSummaryView(s *domain.StudentDetail) StudentSummaryView {
	return StudentSummaryView{
		ID:             s.ID,
		FullName:       s.FullName,
		Email:          s.Email,
		TestsCompleted: s.TestsCompleted,
		AverageScore:   util.RoundToOneDecimal(s.AverageScore),
		LastActivity:   s.LastActivity,
	}
}

// NewStudentDetailView builds the detail projection with rounded
// aggregates and null logs rendered as empty collections.
func NewStudentDetailView(s *domain.StudentDetail) StudentDetailView {
	results := s.TestResults
	if results == nil {
		results = []domain.TestResult{}
	}
	topics := s.CompletedTopics
	if topics == nil {
		topics = []string{}
	}
	return StudentDetailView{
		ID:              s.ID,
		FullName:        s.FullName,
		Email:           s.Email,
		CreatedAt:       s.CreatedAt,
		TestsCompleted:  s.TestsCompleted,
		AverageScore:    util.RoundToOneDecimal(s.AverageScore),
		TestResults:     results,
		CompletedTopics: topics,
		LastActivity:    s.LastActivity,
	}
}
