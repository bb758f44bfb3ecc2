package entity

import (
	"time"

	"github.com/google/uuid"
)

type PortfolioItem struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	ImageURL    string
	Title       *string
	Description *string
	Order       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type PortfolioDetails struct {
	ImageURL    string
	Title       *string
	Description *string
}

func NewPortfolioItem(userID uuid.UUID, d PortfolioDetails, order int) *PortfolioItem {
	now := time.Now()
	item := &PortfolioItem{ID: uuid.New(), UserID: userID, Order: order, CreatedAt: now}
	item.Apply(d)
	return item
}

func (p *PortfolioItem) Apply(d PortfolioDetails) {
	p.ImageURL = d.ImageURL
	p.Title = normalizeOptional(d.Title)
	p.Description = normalizeOptional(d.Description)
	p.UpdatedAt = time.Now()
}

func (p *PortfolioItem) IsOwnedBy(userID uuid.UUID) bool {
	return p.UserID == userID
}

// NextOrder возвращает max+1, первая позиция получает 1.
func NextOrder(maxOrder *int) int {
	if maxOrder == nil {
		return 1
	}
	return *maxOrder + 1
}
