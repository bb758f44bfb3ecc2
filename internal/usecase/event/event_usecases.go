package event

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/creative-network/internal/domain/capability"
	"github.com/ignatzorin/creative-network/internal/domain/entity"
	"github.com/ignatzorin/creative-network/internal/domain/repository"
	"github.com/ignatzorin/creative-network/internal/domain/session"
	"github.com/ignatzorin/creative-network/internal/logger"
	"github.com/ignatzorin/creative-network/internal/pkg/apperror"
	"github.com/ignatzorin/creative-network/internal/validation"
)

type EventInput struct {
	Title       string     `json:"title" validate:"notblank,min=3,max=100"`
	Description string     `json:"description" validate:"notblank,min=10,max=2000"`
	ImageURL    *string    `json:"imageUrl" validate:"omitempty,url"`
	Location    string     `json:"location" validate:"notblank,min=3,max=200"`
	Address     *string    `json:"address" validate:"omitempty,max=500"`
	Latitude    *float64   `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude   *float64   `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	StartDate   time.Time  `json:"startDate" validate:"required"`
	EndDate     *time.Time `json:"endDate"`
	Category    *string    `json:"category" validate:"omitempty,max=50"`
}

func (in EventInput) details() entity.EventDetails {
	return entity.EventDetails{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		ImageURL:    in.ImageURL,
		Location:    strings.TrimSpace(in.Location),
		Address:     in.Address,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Category:    in.Category,
	}
}

func notProvisioned() error {
	return apperror.NotProvisioned(string(capability.Events))
}

type CreateEventUseCase struct {
	events   repository.EventRepository
	features capability.Set
}

func NewCreateEventUseCase(events repository.EventRepository, features capability.Set) *CreateEventUseCase {
	return &CreateEventUseCase{events: events, features: features}
}

func (uc *CreateEventUseCase) Execute(ctx context.Context, actor *session.Actor, input EventInput) (*entity.Event, error) {
	if err := session.Require(actor); err != nil {
		return nil, err
	}
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if !uc.features.Enabled(capability.Events) {
		return nil, notProvisioned()
	}

	event, err := entity.NewEvent(actor.ID, input.details())
	if err != nil {
		return nil, err
	}
	if err := uc.events.Create(ctx, event); err != nil {
		return nil, err
	}
	return uc.events.FindByID(ctx, event.ID)
}

type UpdateEventUseCase struct {
	events   repository.EventRepository
	features capability.Set
}

func NewUpdateEventUseCase(events repository.EventRepository, features capability.Set) *UpdateEventUseCase {
	return &UpdateEventUseCase{events: events, features: features}
}

func (uc *UpdateEventUseCase) Execute(ctx context.Context, actor *session.Actor, id uuid.UUID, input EventInput) (*entity.Event, error) {
	if err := session.Require(actor); err != nil {
		return nil, err
	}
	if !uc.features.Enabled(capability.Events) {
		return nil, notProvisioned()
	}

	event, err := uc.events.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !event.IsOwnedBy(actor.ID) {
		return nil, apperror.ErrForbidden
	}
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	if err := event.Apply(input.details()); err != nil {
		return nil, err
	}
	if err := uc.events.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

type DeleteEventUseCase struct {
	events   repository.EventRepository
	features capability.Set
}

func NewDeleteEventUseCase(events repository.EventRepository, features capability.Set) *DeleteEventUseCase {
	return &DeleteEventUseCase{events: events, features: features}
}

func (uc *DeleteEventUseCase) Execute(ctx context.Context, actor *session.Actor, id uuid.UUID) error {
	if err := session.Require(actor); err != nil {
		return err
	}
	if !uc.features.Enabled(capability.Events) {
		return notProvisioned()
	}

	event, err := uc.events.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !event.IsOwnedBy(actor.ID) {
		return apperror.ErrForbidden
	}
	return uc.events.Delete(ctx, id)
}

type ListEventsUseCase struct {
	events   repository.EventRepository
	features capability.Set
}

func NewListEventsUseCase(events repository.EventRepository, features capability.Set) *ListEventsUseCase {
	return &ListEventsUseCase{events: events, features: features}
}

// Execute возвращает события по дате начала, при ошибке пустой список.
func (uc *ListEventsUseCase) Execute(ctx context.Context, limit int) []*entity.Event {
	if !uc.features.Enabled(capability.Events) {
		return []*entity.Event{}
	}

	events, err := uc.events.List(ctx, validation.ClampLimit(limit, validation.DefaultListLimit))
	if err != nil {
		logger.Log.WithError(err).Warn("не удалось получить события")
		return []*entity.Event{}
	}
	if events == nil {
		return []*entity.Event{}
	}
	return events
}

type GetEventUseCase struct {
	events   repository.EventRepository
	features capability.Set
}

func NewGetEventUseCase(events repository.EventRepository, features capability.Set) *GetEventUseCase {
	return &GetEventUseCase{events: events, features: features}
}

func (uc *GetEventUseCase) Execute(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	if !uc.features.Enabled(capability.Events) {
		return nil, apperror.ErrEventNotFound
	}
	return uc.events.FindByID(ctx, id)
}

type UseCases struct {
	Create *CreateEventUseCase
	Update *UpdateEventUseCase
	Delete *DeleteEventUseCase
	List   *ListEventsUseCase
	Get    *GetEventUseCase
}

func New(events repository.EventRepository, features capability.Set) UseCases {
	return UseCases{
		Create: NewCreateEventUseCase(events, features),
		Update: NewUpdateEventUseCase(events, features),
		Delete: NewDeleteEventUseCase(events, features),
		List:   NewListEventsUseCase(events, features),
		Get:    NewGetEventUseCase(events, features),
	}
}
