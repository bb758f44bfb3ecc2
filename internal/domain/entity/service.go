package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/creative-network/internal/domain/valueobject"
)

// Service — услуга, которую пользователь предлагает в профиле.
type Service struct {
	ID          uuid.UUID
	ProviderID  uuid.UUID
	Title       string
	Description string
	PriceRange  string
	Category    *valueobject.ServiceCategory
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewService(providerID uuid.UUID, title, description, priceRange string, category *valueobject.ServiceCategory) *Service {
	now := time.Now()
	return &Service{
		ID:          uuid.New(),
		ProviderID:  providerID,
		Title:       title,
		Description: description,
		PriceRange:  priceRange,
		Category:    category,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (s *Service) IsOwnedBy(userID uuid.UUID) bool {
	return s.ProviderID == userID
}
