package validation

import (
	"regexp"
	"strings"

	"studylink/internal/domain"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// NormalizeEmail applies the canonical form used for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateRegisterRequest validates the register action body.
func (v *Validator) ValidateRegisterRequest(email, password, fullName, role string) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if email == "" {
		errs = append(errs, domain.NewMissingFieldError("email"))
	} else if !emailPattern.MatchString(email) {
		errs = append(errs, domain.NewInvalidFormatError("email", email))
	}

	if password == "" {
		errs = append(errs, domain.NewMissingFieldError("password"))
	}

	if strings.TrimSpace(fullName) == "" {
		errs = append(errs, domain.NewMissingFieldError("full_name"))
	}

	if role != "" && !domain.ValidRole(role) {
		errs = append(errs, domain.NewInvalidFormatError("role", role))
	}

	return errs
}

// ValidateLoginRequest validates the login action body.
func (v *Validator) ValidateLoginRequest(email, password string) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if email == "" {
		errs = append(errs, domain.NewMissingFieldError("email"))
	}
	if password == "" {
		errs = append(errs, domain.NewMissingFieldError("password"))
	}

	return errs
}

// ValidateSendChatRequest validates the chat send action body.
func (v *Validator) ValidateSendChatRequest(receiverID, message string) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if strings.TrimSpace(receiverID) == "" {
		errs = append(errs, domain.NewMissingFieldError("receiver_id"))
	}
	if strings.TrimSpace(message) == "" {
		errs = append(errs, domain.NewMissingFieldError("message"))
	}

	return errs
}

// ValidateCreateMaterialRequest validates the inline-text create action.
func (v *Validator) ValidateCreateMaterialRequest(title, content string) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if strings.TrimSpace(title) == "" {
		errs = append(errs, domain.NewMissingFieldError("title"))
	}
	if strings.TrimSpace(content) == "" {
		errs = append(errs, domain.NewMissingFieldError("content"))
	}

	return errs
}

// ValidateUploadMaterialRequest validates the binary upload action.
func (v *Validator) ValidateUploadMaterialRequest(title, fileBase64, fileName string) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if strings.TrimSpace(title) == "" {
		errs = append(errs, domain.NewMissingFieldError("title"))
	}
	if fileBase64 == "" {
		errs = append(errs, domain.NewMissingFieldError("file_base64"))
	}
	if fileName == "" {
		errs = append(errs, domain.NewMissingFieldError("file_name"))
	}

	return errs
}

// ValidateTeacherMessageRequest validates the teacher send_message action.
func (v *Validator) ValidateTeacherMessageRequest(studentID, message string) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if strings.TrimSpace(studentID) == "" {
		errs = append(errs, domain.NewMissingFieldError("student_id"))
	}
	if strings.TrimSpace(message) == "" {
		errs = append(errs, domain.NewMissingFieldError("message"))
	}

	return errs
}

// ValidateMaterialStatusRequest validates the update_material_status
// action. Status stays a free string; only presence is checked.
func (v *Validator) ValidateMaterialStatusRequest(materialID, studentID, status string) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if strings.TrimSpace(materialID) == "" {
		errs = append(errs, domain.NewMissingFieldError("material_id"))
	}
	if strings.TrimSpace(studentID) == "" {
		errs = append(errs, domain.NewMissingFieldError("student_id"))
	}
	if strings.TrimSpace(status) == "" {
		errs = append(errs, domain.NewMissingFieldError("status"))
	}

	return errs
}
