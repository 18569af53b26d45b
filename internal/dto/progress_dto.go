package dto

// ProgressRequest is the POST body of the progress resource,
// discriminated by Action ("save_test_result", "save_completed_topic" or
// "mark_lecture_viewed").
type ProgressRequest struct {
	Action         string  `json:"action"`
	Topic          string  `json:"topic,omitempty"`
	Score          float64 `json:"score,omitempty"`
	TotalQuestions int     `json:"total_questions,omitempty"`
	CorrectAnswers int     `json:"correct_answers,omitempty"`
	Title          string  `json:"title,omitempty"`
	Duration       string  `json:"duration,omitempty"`
}

// SuccessResponse is the generic acknowledgement for progress writes.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// TeacherView is the student-facing projection of an enrolled teacher.
type TeacherView struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// TeachersResponse lists the teachers enrolled with the calling student.
type TeachersResponse struct {
	Teachers []TeacherView `json:"teachers"`
}
