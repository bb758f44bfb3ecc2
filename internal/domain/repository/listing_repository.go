package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/ignatzorin/creative-network/internal/domain/entity"
)

type JobRepository interface {
	Create(ctx context.Context, job *entity.Job) error
	Update(ctx context.Context, job *entity.Job) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Job, error)
	List(ctx context.Context, limit int) ([]*entity.Job, error)
}

type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	Update(ctx context.Context, event *entity.Event) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	// List упорядочен по дате начала.
	List(ctx context.Context, limit int) ([]*entity.Event, error)
}

type ServiceRepository interface {
	Create(ctx context.Context, svc *entity.Service) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*entity.Service, error)
}
