package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/creative-network/internal/domain/entity"
)

type MoodBoardItemResponse struct {
	ID              uuid.UUID  `json:"id"`
	MoodBoardID     uuid.UUID  `json:"moodBoardId"`
	PostID          *uuid.UUID `json:"postId"`
	PortfolioItemID *uuid.UUID `json:"portfolioItemId"`
	ImageURL        *string    `json:"imageUrl"`
	Order           int        `json:"order"`
	CreatedAt       time.Time  `json:"createdAt"`
}

type MoodBoardResponse struct {
	ID           uuid.UUID               `json:"id"`
	Title        string                  `json:"title"`
	Description  *string                 `json:"description"`
	IsPublic     bool                    `json:"isPublic"`
	ItemCount    int                     `json:"itemCount"`
	PreviewItems []MoodBoardItemResponse `json:"previewItems"`
	CreatedAt    time.Time               `json:"createdAt"`
	UpdatedAt    time.Time               `json:"updatedAt"`
}

func ToMoodBoardItemResponse(item *entity.MoodBoardItem) MoodBoardItemResponse {
	return MoodBoardItemResponse{
		ID:              item.ID,
		MoodBoardID:     item.MoodBoardID,
		PostID:          item.PostID,
		PortfolioItemID: item.PortfolioItemID,
		ImageURL:        item.ImageURL,
		Order:           item.Order,
		CreatedAt:       item.CreatedAt,
	}
}

func ToMoodBoardResponse(b *entity.MoodBoard) MoodBoardResponse {
	preview := make([]MoodBoardItemResponse, len(b.PreviewItems))
	for i, item := range b.PreviewItems {
		preview[i] = ToMoodBoardItemResponse(item)
	}
	return MoodBoardResponse{
		ID:           b.ID,
		Title:        b.Title,
		Description:  b.Description,
		IsPublic:     b.IsPublic,
		ItemCount:    b.ItemCount,
		PreviewItems: preview,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func ToMoodBoardResponses(boards []*entity.MoodBoard) []MoodBoardResponse {
	result := make([]MoodBoardResponse, len(boards))
	for i, b := range boards {
		result[i] = ToMoodBoardResponse(b)
	}
	return result
}
