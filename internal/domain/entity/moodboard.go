package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type MoodBoard struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Description *string
	IsPublic    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	ItemCount    int
	PreviewItems []*MoodBoardItem
}

func NewMoodBoard(ownerID uuid.UUID, title string, description *string, isPublic bool) *MoodBoard {
	now := time.Now()
	return &MoodBoard{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       strings.TrimSpace(title),
		Description: normalizeOptional(description),
		IsPublic:    isPublic,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (m *MoodBoard) IsOwnedBy(userID uuid.UUID) bool {
	return m.OwnerID == userID
}

// MoodBoardItem ссылается на пост, работу портфолио или просто изображение.
type MoodBoardItem struct {
	ID              uuid.UUID
	MoodBoardID     uuid.UUID
	PostID          *uuid.UUID
	PortfolioItemID *uuid.UUID
	ImageURL        *string
	Order           int
	CreatedAt       time.Time
}

func NewMoodBoardItem(moodBoardID uuid.UUID, postID, portfolioItemID *uuid.UUID, imageURL *string, order int) *MoodBoardItem {
	return &MoodBoardItem{
		ID:              uuid.New(),
		MoodBoardID:     moodBoardID,
		PostID:          postID,
		PortfolioItemID: portfolioItemID,
		ImageURL:        normalizeOptional(imageURL),
		Order:           order,
		CreatedAt:       time.Now(),
	}
}
