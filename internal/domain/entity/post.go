package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/creative-network/internal/pkg/apperror"
)

type Post struct {
	ID        uuid.UUID
	AuthorID  uuid.UUID
	Content   *string
	ImageURL  *string
	CreatedAt time.Time
	UpdatedAt time.Time

	Author       *UserSummary
	LikeCount    int
	CommentCount int
}

func errEmptyPost() error {
	return apperror.FieldError("content", "пост должен содержать текст или изображение")
}

func NewPost(authorID uuid.UUID, content, imageURL *string) (*Post, error) {
	content, imageURL = normalizeOptional(content), normalizeOptional(imageURL)
	if content == nil && imageURL == nil {
		return nil, errEmptyPost()
	}
	now := time.Now()
	return &Post{
		ID:        uuid.New(),
		AuthorID:  authorID,
		Content:   content,
		ImageURL:  imageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update заменяет текст и изображение целиком, правило «хотя бы одно» сохраняется.
func (p *Post) Update(content, imageURL *string) error {
	content, imageURL = normalizeOptional(content), normalizeOptional(imageURL)
	if content == nil && imageURL == nil {
		return errEmptyPost()
	}
	p.Content = content
	p.ImageURL = imageURL
	p.UpdatedAt = time.Now()
	return nil
}

func (p *Post) IsOwnedBy(userID uuid.UUID) bool {
	return p.AuthorID == userID
}
