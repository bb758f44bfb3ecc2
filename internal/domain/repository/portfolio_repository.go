package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/ignatzorin/creative-network/internal/domain/entity"
)

type PortfolioRepository interface {
	Create(ctx context.Context, item *entity.PortfolioItem) error
	Update(ctx context.Context, item *entity.PortfolioItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PortfolioItem, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PortfolioItem, error)
	// MaxOrder возвращает nil, если у пользователя ещё нет работ.
	MaxOrder(ctx context.Context, userID uuid.UUID) (*int, error)
}

type MoodBoardRepository interface {
	Create(ctx context.Context, board *entity.MoodBoard) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MoodBoard, error)
	// ListByOwner заполняет ItemCount и до previewSize первых элементов.
	ListByOwner(ctx context.Context, ownerID uuid.UUID, previewSize int) ([]*entity.MoodBoard, error)
	// AddItem сохраняет элемент и обновляет updated_at доски.
	AddItem(ctx context.Context, item *entity.MoodBoardItem) error
	MaxItemOrder(ctx context.Context, moodBoardID uuid.UUID) (*int, error)
	BoardsContainingPost(ctx context.Context, ownerID, postID uuid.UUID) ([]uuid.UUID, error)
}
