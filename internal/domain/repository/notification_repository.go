package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/ignatzorin/creative-network/internal/domain/entity"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *entity.Notification) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)
	// ListByRecipient возвращает новые первыми, с данными отправителя и получателя.
	ListByRecipient(ctx context.Context, recipientID uuid.UUID, limit int) ([]*entity.Notification, error)
	CountUnread(ctx context.Context, recipientID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int64, error)
}

// RealtimePublisher доставляет события подключённым клиентам. Доставка не гарантируется.
type RealtimePublisher interface {
	Publish(userID uuid.UUID, event string, data any)
}
