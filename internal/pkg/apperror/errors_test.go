package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUnauthorized_CoversMissingActorAndForeignResource(t *testing.T) {
	assert.True(t, IsUnauthorized(ErrUnauthorized))
	assert.True(t, IsUnauthorized(ErrForbidden))
	assert.True(t, IsUnauthorized(fmt.Errorf("wrapped: %w", ErrForbidden)))
	assert.False(t, IsUnauthorized(ErrPostNotFound))
	assert.False(t, IsUnauthorized(errors.New("plain")))
}

func TestValidation_CarriesFields(t *testing.T) {
	err := Validation(map[string]string{"title": "слишком коротко", "content": "обязательно"})

	assert.True(t, IsValidation(err))
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus)
	assert.Equal(t, "VALIDATION_ERROR: некорректные входные данные [content: обязательно; title: слишком коротко]", err.Error())
}

func TestNotProvisioned_MapsToServiceUnavailable(t *testing.T) {
	err := NotProvisioned("notifications")

	assert.True(t, IsNotProvisioned(err))
	assert.Equal(t, http.StatusServiceUnavailable, err.HTTPStatus)
}

func TestWrap_KeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, ErrCodeDatabaseError, "не удалось получить пост")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus)
}
