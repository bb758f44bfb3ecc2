package offering

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/ignatzorin/creative-network/internal/domain/capability"
	"github.com/ignatzorin/creative-network/internal/domain/entity"
	"github.com/ignatzorin/creative-network/internal/domain/repository"
	"github.com/ignatzorin/creative-network/internal/domain/session"
	"github.com/ignatzorin/creative-network/internal/domain/valueobject"
	"github.com/ignatzorin/creative-network/internal/logger"
	"github.com/ignatzorin/creative-network/internal/pkg/apperror"
	"github.com/ignatzorin/creative-network/internal/validation"
)

type ServiceInput struct {
	Title       string  `json:"title" validate:"notblank,min=3,max=100"`
	Description string  `json:"description" validate:"notblank,min=10,max=2000"`
	PriceRange  string  `json:"priceRange" validate:"notblank,min=3,max=50"`
	Category    *string `json:"category" validate:"omitempty,servicecategory"`
}

func notProvisioned() error {
	return apperror.NotProvisioned(string(capability.Services))
}

type CreateServiceUseCase struct {
	services repository.ServiceRepository
	features capability.Set
}

func NewCreateServiceUseCase(services repository.ServiceRepository, features capability.Set) *CreateServiceUseCase {
	return &CreateServiceUseCase{services: services, features: features}
}

func (uc *CreateServiceUseCase) Execute(ctx context.Context, actor *session.Actor, input ServiceInput) (*entity.Service, error) {
	if err := session.Require(actor); err != nil {
		return nil, err
	}
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if !uc.features.Enabled(capability.Services) {
		return nil, notProvisioned()
	}

	var category *valueobject.ServiceCategory
	if input.Category != nil && *input.Category != "" {
		c := valueobject.ServiceCategory(*input.Category)
		category = &c
	}

	svc := entity.NewService(
		actor.ID,
		strings.TrimSpace(input.Title),
		strings.TrimSpace(input.Description),
		strings.TrimSpace(input.PriceRange),
		category,
	)
	if err := uc.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

type ListByProviderUseCase struct {
	services repository.ServiceRepository
	features capability.Set
}

func NewListByProviderUseCase(services repository.ServiceRepository, features capability.Set) *ListByProviderUseCase {
	return &ListByProviderUseCase{services: services, features: features}
}

func (uc *ListByProviderUseCase) Execute(ctx context.Context, providerID uuid.UUID) []*entity.Service {
	if !uc.features.Enabled(capability.Services) {
		return []*entity.Service{}
	}

	list, err := uc.services.ListByProvider(ctx, providerID)
	if err != nil {
		logger.Log.WithError(err).WithField("provider_id", providerID).Warn("не удалось получить услуги")
		return []*entity.Service{}
	}
	if list == nil {
		return []*entity.Service{}
	}
	return list
}

type DeleteServiceUseCase struct {
	services repository.ServiceRepository
	features capability.Set
}

func NewDeleteServiceUseCase(services repository.ServiceRepository, features capability.Set) *DeleteServiceUseCase {
	return &DeleteServiceUseCase{services: services, features: features}
}

func (uc *DeleteServiceUseCase) Execute(ctx context.Context, actor *session.Actor, id uuid.UUID) error {
	if err := session.Require(actor); err != nil {
		return err
	}
	if !uc.features.Enabled(capability.Services) {
		return notProvisioned()
	}

	svc, err := uc.services.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !svc.IsOwnedBy(actor.ID) {
		return apperror.ErrForbidden
	}
	return uc.services.Delete(ctx, id)
}

type UseCases struct {
	Create     *CreateServiceUseCase
	ByProvider *ListByProviderUseCase
	Delete     *DeleteServiceUseCase
}

func New(services repository.ServiceRepository, features capability.Set) UseCases {
	return UseCases{
		Create:     NewCreateServiceUseCase(services, features),
		ByProvider: NewListByProviderUseCase(services, features),
		Delete:     NewDeleteServiceUseCase(services, features),
	}
}
