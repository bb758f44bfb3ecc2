package session

import (
	"github.com/google/uuid"

	"github.com/ignatzorin/creative-network/internal/pkg/apperror"
)

// Actor — текущий пользователь запроса. Передаётся в use case явно.
type Actor struct {
	ID    uuid.UUID
	Email string
	Image *string
}

// Authenticated возвращает false для nil или анонимного актора.
func (a *Actor) Authenticated() bool {
	return a != nil && a.ID != uuid.Nil
}

// Is сообщает, совпадает ли актор с пользователем.
func (a *Actor) Is(userID uuid.UUID) bool {
	return a.Authenticated() && a.ID == userID
}

// UserID возвращает идентификатор или uuid.Nil для анонима.
func (a *Actor) UserID() uuid.UUID {
	if a == nil {
		return uuid.Nil
	}
	return a.ID
}

// Require возвращает ErrUnauthorized для анонимного актора.
func Require(a *Actor) error {
	if !a.Authenticated() {
		return apperror.ErrUnauthorized
	}
	return nil
}
