package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/creative-network/internal/domain/entity"
)

type PostResponse struct {
	ID           uuid.UUID            `json:"id"`
	AuthorID     uuid.UUID            `json:"authorId"`
	Content      *string              `json:"content"`
	ImageURL     *string              `json:"imageUrl"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
	Author       *UserSummaryResponse `json:"author"`
	LikeCount    int                  `json:"likeCount"`
	CommentCount int                  `json:"commentCount"`
}

type CommentResponse struct {
	ID        uuid.UUID            `json:"id"`
	PostID    uuid.UUID            `json:"postId"`
	UserID    uuid.UUID            `json:"userId"`
	Content   string               `json:"content"`
	CreatedAt time.Time            `json:"createdAt"`
	User      *UserSummaryResponse `json:"user"`
}

type LikeCountsRequest struct {
	PostIDs []uuid.UUID `json:"postIds"`
}

type BookmarkResponse struct {
	Bookmarked bool `json:"bookmarked"`
}

func ToPostResponse(p *entity.Post) PostResponse {
	return PostResponse{
		ID:           p.ID,
		AuthorID:     p.AuthorID,
		Content:      p.Content,
		ImageURL:     p.ImageURL,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		Author:       ToUserSummary(p.Author),
		LikeCount:    p.LikeCount,
		CommentCount: p.CommentCount,
	}
}

func ToPostResponses(posts []*entity.Post) []PostResponse {
	result := make([]PostResponse, len(posts))
	for i, p := range posts {
		result[i] = ToPostResponse(p)
	}
	return result
}

func ToCommentResponse(c *entity.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		PostID:    c.PostID,
		UserID:    c.UserID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		User:      ToUserSummary(c.User),
	}
}

func ToCommentResponses(comments []*entity.Comment) []CommentResponse {
	result := make([]CommentResponse, len(comments))
	for i, c := range comments {
		result[i] = ToCommentResponse(c)
	}
	return result
}

// ToCountMap переводит ключи в строки для JSON-объекта.
func ToCountMap(counts map[uuid.UUID]int) map[string]int {
	result := make(map[string]int, len(counts))
	for id, n := range counts {
		result[id.String()] = n
	}
	return result
}

func ToFlagMap(flags map[uuid.UUID]bool) map[string]bool {
	result := make(map[string]bool, len(flags))
	for id, v := range flags {
		result[id.String()] = v
	}
	return result
}
