package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/creative-network/internal/domain/entity"
	"github.com/ignatzorin/creative-network/internal/domain/valueobject"
)

type JobResponse struct {
	ID             uuid.UUID            `json:"id"`
	PostedByID     uuid.UUID            `json:"postedById"`
	Title          string               `json:"title"`
	Description    string               `json:"description"`
	Company        *string              `json:"company"`
	Location       *string              `json:"location"`
	Type           valueobject.JobType  `json:"type"`
	Compensation   *string              `json:"compensation"`
	ApplicationURL *string              `json:"applicationUrl"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
	PostedBy       *UserSummaryResponse `json:"postedBy"`
}

type EventResponse struct {
	ID          uuid.UUID            `json:"id"`
	OrganizerID uuid.UUID            `json:"organizerId"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	ImageURL    *string              `json:"imageUrl"`
	Location    string               `json:"location"`
	Address     *string              `json:"address"`
	Latitude    *float64             `json:"latitude"`
	Longitude   *float64             `json:"longitude"`
	StartDate   time.Time            `json:"startDate"`
	EndDate     *time.Time           `json:"endDate"`
	Category    *string              `json:"category"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
	Organizer   *UserSummaryResponse `json:"organizer"`
}

type ServiceResponse struct {
	ID          uuid.UUID                    `json:"id"`
	ProviderID  uuid.UUID                    `json:"providerId"`
	Title       string                       `json:"title"`
	Description string                       `json:"description"`
	PriceRange  string                       `json:"priceRange"`
	Category    *valueobject.ServiceCategory `json:"category"`
	IsActive    bool                         `json:"isActive"`
	CreatedAt   time.Time                    `json:"createdAt"`
}

type PortfolioResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	ImageURL    string    `json:"imageUrl"`
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
}

func ToJobResponse(j *entity.Job) JobResponse {
	return JobResponse{
		ID:             j.ID,
		PostedByID:     j.PostedByID,
		Title:          j.Title,
		Description:    j.Description,
		Company:        j.Company,
		Location:       j.Location,
		Type:           j.Type,
		Compensation:   j.Compensation,
		ApplicationURL: j.ApplicationURL,
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      j.UpdatedAt,
		PostedBy:       ToUserSummary(j.PostedBy),
	}
}

func ToJobResponses(jobs []*entity.Job) []JobResponse {
	result := make([]JobResponse, len(jobs))
	for i, j := range jobs {
		result[i] = ToJobResponse(j)
	}
	return result
}

func ToEventResponse(e *entity.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		OrganizerID: e.OrganizerID,
		Title:       e.Title,
		Description: e.Description,
		ImageURL:    e.ImageURL,
		Location:    e.Location,
		Address:     e.Address,
		Latitude:    e.Latitude,
		Longitude:   e.Longitude,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Category:    e.Category,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
		Organizer:   ToUserSummary(e.Organizer),
	}
}

func ToEventResponses(events []*entity.Event) []EventResponse {
	result := make([]EventResponse, len(events))
	for i, e := range events {
		result[i] = ToEventResponse(e)
	}
	return result
}

func ToServiceResponse(s *entity.Service) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		ProviderID:  s.ProviderID,
		Title:       s.Title,
		Description: s.Description,
		PriceRange:  s.PriceRange,
		Category:    s.Category,
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
	}
}

func ToServiceResponses(services []*entity.Service) []ServiceResponse {
	result := make([]ServiceResponse, len(services))
	for i, s := range services {
		result[i] = ToServiceResponse(s)
	}
	return result
}

func ToPortfolioResponse(p *entity.PortfolioItem) PortfolioResponse {
	return PortfolioResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		ImageURL:    p.ImageURL,
		Title:       p.Title,
		Description: p.Description,
		Order:       p.Order,
		CreatedAt:   p.CreatedAt,
	}
}

func ToPortfolioResponses(items []*entity.PortfolioItem) []PortfolioResponse {
	result := make([]PortfolioResponse, len(items))
	for i, p := range items {
		result[i] = ToPortfolioResponse(p)
	}
	return result
}
