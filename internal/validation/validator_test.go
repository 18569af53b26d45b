package validation

import (
	"testing"

	"studylink/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", NormalizeEmail("  User@Example.COM "))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func fieldSet(errs domain.ValidationErrors) map[string]bool {
	fields := make(map[string]bool, len(errs))
	for _, e := range errs {
		fields[e.Field] = true
	}
	return fields
}

func TestValidateRegisterRequest(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateRegisterRequest("a@example.com", "password123", "A User", "student"))
	assert.Empty(t, v.ValidateRegisterRequest("a@example.com", "password123", "A User", ""))

	errs := v.ValidateRegisterRequest("", "", "", "")
	fields := fieldSet(errs)
	assert.True(t, fields["email"])
	assert.True(t, fields["password"])
	assert.True(t, fields["full_name"])

	errs = v.ValidateRegisterRequest("not-an-email", "password123", "A User", "admin")
	fields = fieldSet(errs)
	assert.True(t, fields["email"])
	assert.True(t, fields["role"])
	require.Len(t, errs, 2)
}

func TestValidateLoginRequest(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateLoginRequest("a@example.com", "password123"))

	errs := v.ValidateLoginRequest("", "")
	assert.Len(t, errs, 2)
}

func TestValidateSendChatRequest(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateSendChatRequest("u1", "hello"))

	errs := v.ValidateSendChatRequest("  ", "")
	fields := fieldSet(errs)
	assert.True(t, fields["receiver_id"])
	assert.True(t, fields["message"])
}

func TestValidateUploadMaterialRequest(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateUploadMaterialRequest("Homework", "aGVsbG8=", "hw.pdf"))

	errs := v.ValidateUploadMaterialRequest("", "", "")
	assert.Len(t, errs, 3)
}

func TestValidateMaterialStatusRequest(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateMaterialStatusRequest("m1", "s1", "reviewed"))

	errs := v.ValidateMaterialStatusRequest("m1", "", "")
	fields := fieldSet(errs)
	assert.False(t, fields["material_id"])
	assert.True(t, fields["student_id"])
	assert.True(t, fields["status"])
}
