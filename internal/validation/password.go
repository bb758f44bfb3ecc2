package validation

import (
	"unicode"
	"unicode/utf8"

	"github.com/ignatzorin/creative-network/internal/pkg/apperror"
)

// ValidatePassword проверяет пароль на соответствие требованиям безопасности:
// не короче MinPasswordLength, есть буквы и цифры.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return apperror.FieldError("password", "пароль должен быть не менее 8 символов")
	}

	var hasLetter, hasNumber bool
	for _, char := range password {
		switch {
		case unicode.IsLetter(char):
			hasLetter = true
		case unicode.IsNumber(char):
			hasNumber = true
		}
	}

	if !hasLetter || !hasNumber {
		return apperror.FieldError("password", "пароль должен содержать буквы и цифры")
	}
	return nil
}
