package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/creative-network/internal/pkg/apperror"
)

type sampleInput struct {
	Title    string   `json:"title" validate:"required,min=3,max=100"`
	Type     string   `json:"type" validate:"required,jobtype"`
	Link     *string  `json:"applicationUrl" validate:"omitempty,url"`
	Skills   []string `json:"skills" validate:"max=2,dive,notblank"`
	Category string   `json:"category" validate:"omitempty,servicecategory"`
}

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	require.Equal(t, apperror.ErrCodeValidation, appErr.Code)
	return appErr.Fields
}

func TestValidate_OK(t *testing.T) {
	link := "https://example.com/apply"
	err := Struct(sampleInput{Title: "Designer", Type: "Contract", Link: &link, Skills: []string{"Figma"}, Category: "Other"})
	assert.NoError(t, err)
}

func TestValidate_FieldErrorsUseJSONNames(t *testing.T) {
	link := "not a url"
	err := Struct(sampleInput{Title: "ab", Type: "Gig", Link: &link, Skills: []string{"a", "b", "c"}})

	fields := fieldsOf(t, err)
	assert.Contains(t, fields, "title")
	assert.Contains(t, fields, "type")
	assert.Contains(t, fields, "applicationUrl")
	assert.Contains(t, fields, "skills")
}

func TestValidate_BlankItemInSlice(t *testing.T) {
	err := Struct(sampleInput{Title: "Designer", Type: "Contract", Skills: []string{"Go", "  "}})

	fields := fieldsOf(t, err)
	assert.Contains(t, fields, "skills[1]")
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("secret123"))
	assert.Error(t, ValidatePassword("short1"))
	assert.Error(t, ValidatePassword(strings.Repeat("a", 10)))
	assert.Error(t, ValidatePassword("1234567890"))
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 50, ClampLimit(0, 50))
	assert.Equal(t, 10, ClampLimit(10, 50))
	assert.Equal(t, MaxListLimit, ClampLimit(1000, 50))
}
