package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/ignatzorin/creative-network/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdateProfile(ctx context.Context, user *entity.User) error
	// ListExcept возвращает пользователей, кроме excludeID, от новых к старым.
	ListExcept(ctx context.Context, excludeID uuid.UUID, limit int) ([]*entity.User, error)
}
