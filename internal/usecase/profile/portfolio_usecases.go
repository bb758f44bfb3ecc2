package profile

import (
	"context"

	"github.com/google/uuid"

	"github.com/ignatzorin/creative-network/internal/domain/entity"
	"github.com/ignatzorin/creative-network/internal/domain/repository"
	"github.com/ignatzorin/creative-network/internal/domain/session"
	"github.com/ignatzorin/creative-network/internal/pkg/apperror"
	"github.com/ignatzorin/creative-network/internal/validation"
)

type PortfolioInput struct {
	ImageURL    string  `json:"imageUrl" validate:"required,url"`
	Title       *string `json:"title" validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Order       *int    `json:"order" validate:"omitnil,gte=0"`
}

func (in PortfolioInput) validate() error {
	if err := validation.Struct(in); err != nil {
		return err
	}
	if validation.IsDataURL(in.ImageURL) && len(in.ImageURL) > validation.MaxInlineImageBytes {
		return apperror.FieldError("imageUrl", "изображение слишком большое, максимум 300 КБ")
	}
	return nil
}

func (in PortfolioInput) details() entity.PortfolioDetails {
	return entity.PortfolioDetails{ImageURL: in.ImageURL, Title: in.Title, Description: in.Description}
}

type CreatePortfolioItemUseCase struct {
	portfolio repository.PortfolioRepository
}

func NewCreatePortfolioItemUseCase(portfolio repository.PortfolioRepository) *CreatePortfolioItemUseCase {
	return &CreatePortfolioItemUseCase{portfolio: portfolio}
}

// Execute ставит работу в конец, если порядок не указан явно.
func (uc *CreatePortfolioItemUseCase) Execute(ctx context.Context, actor *session.Actor, input PortfolioInput) (*entity.PortfolioItem, error) {
	if err := session.Require(actor); err != nil {
		return nil, err
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	var order int
	if input.Order != nil {
		order = *input.Order
	} else {
		highest, err := uc.portfolio.MaxOrder(ctx, actor.ID)
		if err != nil {
			return nil, err
		}
		order = entity.NextOrder(highest)
	}

	item := entity.NewPortfolioItem(actor.ID, input.details(), order)
	if err := uc.portfolio.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

type UpdatePortfolioItemUseCase struct {
	portfolio repository.PortfolioRepository
}

func NewUpdatePortfolioItemUseCase(portfolio repository.PortfolioRepository) *UpdatePortfolioItemUseCase {
	return &UpdatePortfolioItemUseCase{portfolio: portfolio}
}

func (uc *UpdatePortfolioItemUseCase) Execute(ctx context.Context, actor *session.Actor, id uuid.UUID, input PortfolioInput) (*entity.PortfolioItem, error) {
	if err := session.Require(actor); err != nil {
		return nil, err
	}

	item, err := uc.portfolio.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !item.IsOwnedBy(actor.ID) {
		return nil, apperror.ErrForbidden
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	item.Apply(input.details())
	if input.Order != nil {
		item.Order = *input.Order
	}
	if err := uc.portfolio.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

type DeletePortfolioItemUseCase struct {
	portfolio repository.PortfolioRepository
}

func NewDeletePortfolioItemUseCase(portfolio repository.PortfolioRepository) *DeletePortfolioItemUseCase {
	return &DeletePortfolioItemUseCase{portfolio: portfolio}
}

func (uc *DeletePortfolioItemUseCase) Execute(ctx context.Context, actor *session.Actor, id uuid.UUID) error {
	if err := session.Require(actor); err != nil {
		return err
	}

	item, err := uc.portfolio.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !item.IsOwnedBy(actor.ID) {
		return apperror.ErrForbidden
	}
	return uc.portfolio.Delete(ctx, id)
}

type ListPortfolioUseCase struct {
	portfolio repository.PortfolioRepository
}

func NewListPortfolioUseCase(portfolio repository.PortfolioRepository) *ListPortfolioUseCase {
	return &ListPortfolioUseCase{portfolio: portfolio}
}

func (uc *ListPortfolioUseCase) Execute(ctx context.Context, userID uuid.UUID) []*entity.PortfolioItem {
	return listPortfolio(ctx, uc.portfolio, userID)
}
