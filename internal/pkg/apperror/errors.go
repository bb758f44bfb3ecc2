package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

type ErrorCode string

const (
	ErrCodeNotFound       ErrorCode = "NOT_FOUND"
	ErrCodeUnauthorized   ErrorCode = "UNAUTHORIZED"
	ErrCodeForbidden      ErrorCode = "FORBIDDEN"
	ErrCodeBadRequest     ErrorCode = "BAD_REQUEST"
	ErrCodeConflict       ErrorCode = "CONFLICT"
	ErrCodeInternal       ErrorCode = "INTERNAL_ERROR"
	ErrCodeValidation     ErrorCode = "VALIDATION_ERROR"
	ErrCodeDatabaseError  ErrorCode = "DATABASE_ERROR"
	ErrCodeNotProvisioned ErrorCode = "NOT_PROVISIONED"
)

type AppError struct {
	Code       ErrorCode
	Message    string
	HTTPStatus int
	Cause      error
	// Fields содержит ошибки по полям для VALIDATION_ERROR (ключ — json-имя поля).
	Fields map[string]string
}

func (e *AppError) Error() string {
	msg := e.Message
	if len(e.Fields) > 0 {
		msg = fmt.Sprintf("%s [%s]", msg, formatFields(e.Fields))
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
	}
}

func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
		Cause:      err,
	}
}

// Validation создаёт ошибку валидации с сообщениями по полям.
func Validation(fields map[string]string) *AppError {
	return &AppError{
		Code:       ErrCodeValidation,
		Message:    "некорректные входные данные",
		HTTPStatus: http.StatusBadRequest,
		Fields:     fields,
	}
}

// FieldError — ошибка валидации одного поля.
func FieldError(field, message string) *AppError {
	return Validation(map[string]string{field: message})
}

// NotProvisioned сообщает, что функциональность ещё не развёрнута в хранилище.
func NotProvisioned(feature string) *AppError {
	return New(ErrCodeNotProvisioned, fmt.Sprintf("функция %q пока недоступна", feature))
}

func codeToHTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeForbidden:
		return http.StatusForbidden
	case ErrCodeBadRequest, ErrCodeValidation:
		return http.StatusBadRequest
	case ErrCodeConflict:
		return http.StatusConflict
	case ErrCodeNotProvisioned:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func hasCode(err error, codes ...ErrorCode) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return false
	}
	for _, code := range codes {
		if appErr.Code == code {
			return true
		}
	}
	return false
}

func IsNotFound(err error) bool {
	return hasCode(err, ErrCodeNotFound)
}

func IsForbidden(err error) bool {
	return hasCode(err, ErrCodeForbidden)
}

func IsValidation(err error) bool {
	return hasCode(err, ErrCodeValidation)
}

// IsUnauthorized возвращает true и для отсутствующего пользователя, и для чужого ресурса.
func IsUnauthorized(err error) bool {
	return hasCode(err, ErrCodeUnauthorized, ErrCodeForbidden)
}

func IsConflict(err error) bool {
	return hasCode(err, ErrCodeConflict)
}

func IsNotProvisioned(err error) bool {
	return hasCode(err, ErrCodeNotProvisioned)
}

func formatFields(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fields[k])
	}
	return strings.Join(parts, "; ")
}

var (
	ErrUserNotFound          = New(ErrCodeNotFound, "пользователь не найден")
	ErrPostNotFound          = New(ErrCodeNotFound, "пост не найден")
	ErrCommentNotFound       = New(ErrCodeNotFound, "комментарий не найден")
	ErrConversationNotFound  = New(ErrCodeNotFound, "беседа не найдена")
	ErrNotificationNotFound  = New(ErrCodeNotFound, "уведомление не найдено")
	ErrJobNotFound           = New(ErrCodeNotFound, "вакансия не найдена")
	ErrEventNotFound         = New(ErrCodeNotFound, "событие не найдено")
	ErrPortfolioItemNotFound = New(ErrCodeNotFound, "работа портфолио не найдена")
	ErrMoodBoardNotFound     = New(ErrCodeNotFound, "мудборд не найден")
	ErrServiceNotFound       = New(ErrCodeNotFound, "услуга не найдена")
	ErrUnauthorized          = New(ErrCodeUnauthorized, "требуется авторизация")
	ErrForbidden             = New(ErrCodeForbidden, "недостаточно прав")
	ErrInvalidCredentials    = New(ErrCodeUnauthorized, "неверные учетные данные")
	ErrEmailTaken            = New(ErrCodeConflict, "email уже зарегистрирован")
	ErrConversationExists    = New(ErrCodeConflict, "беседа уже существует")
)
