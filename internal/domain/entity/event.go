package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/creative-network/internal/pkg/apperror"
)

type Event struct {
	ID          uuid.UUID
	OrganizerID uuid.UUID
	Title       string
	Description string
	ImageURL    *string
	Location    string
	Address     *string
	Latitude    *float64
	Longitude   *float64
	StartDate   time.Time
	EndDate     *time.Time
	Category    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Organizer *UserSummary
}

type EventDetails struct {
	Title       string
	Description string
	ImageURL    *string
	Location    string
	Address     *string
	Latitude    *float64
	Longitude   *float64
	StartDate   time.Time
	EndDate     *time.Time
	Category    *string
}

func NewEvent(organizerID uuid.UUID, d EventDetails) (*Event, error) {
	now := time.Now()
	e := &Event{ID: uuid.New(), OrganizerID: organizerID, CreatedAt: now}
	if err := e.Apply(d); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Event) Apply(d EventDetails) error {
	if d.EndDate != nil && d.EndDate.Before(d.StartDate) {
		return apperror.FieldError("endDate", "окончание не может быть раньше начала")
	}
	e.Title = d.Title
	e.Description = d.Description
	e.ImageURL = normalizeOptional(d.ImageURL)
	e.Location = d.Location
	e.Address = normalizeOptional(d.Address)
	e.Latitude = d.Latitude
	e.Longitude = d.Longitude
	e.StartDate = d.StartDate
	e.EndDate = d.EndDate
	e.Category = normalizeOptional(d.Category)
	e.UpdatedAt = time.Now()
	return nil
}

func (e *Event) IsOwnedBy(userID uuid.UUID) bool {
	return e.OrganizerID == userID
}
