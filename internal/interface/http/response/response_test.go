package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/creative-network/internal/pkg/apperror"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func run(t *testing.T, fn func(c *gin.Context)) (int, Response) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)
	fn(c)
	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestError_ValidationCarriesFields(t *testing.T) {
	code, body := run(t, func(c *gin.Context) {
		Error(c, apperror.FieldError("title", "обязательное поле"))
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Equal(t, map[string]string{"title": "обязательное поле"}, body.Error.Fields)
}

func TestError_HidesInternalCause(t *testing.T) {
	code, body := run(t, func(c *gin.Context) {
		Error(c, apperror.Wrap(errors.New("pq: connection refused"), apperror.ErrCodeDatabaseError, "не удалось получить пост"))
	})
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "не удалось получить пост", body.Error.Message)

	code, body = run(t, func(c *gin.Context) { Error(c, errors.New("boom")) })
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.NotContains(t, body.Error.Message, "boom")
}

func TestError_StatusByCode(t *testing.T) {
	cases := map[error]int{
		apperror.ErrForbidden:             http.StatusForbidden,
		apperror.ErrUnauthorized:          http.StatusUnauthorized,
		apperror.ErrPostNotFound:          http.StatusNotFound,
		apperror.ErrEmailTaken:            http.StatusConflict,
		apperror.NotProvisioned("events"): http.StatusServiceUnavailable,
	}
	for err, want := range cases {
		code, _ := run(t, func(c *gin.Context) { Error(c, err) })
		assert.Equal(t, want, code, err.Error())
	}
}

func TestCreated(t *testing.T) {
	code, body := run(t, func(c *gin.Context) { Created(c, map[string]string{"id": "1"}) })
	assert.Equal(t, http.StatusCreated, code)
	assert.True(t, body.Success)
}
