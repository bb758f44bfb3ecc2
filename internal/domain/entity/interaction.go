package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/creative-network/internal/pkg/apperror"
)

// Like и Bookmark уникальны для пары (пост, пользователь).
type Like struct {
	ID        uuid.UUID
	PostID    uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time
}

func NewLike(postID, userID uuid.UUID) *Like {
	return &Like{ID: uuid.New(), PostID: postID, UserID: userID, CreatedAt: time.Now()}
}

type Bookmark struct {
	ID        uuid.UUID
	PostID    uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time
}

func NewBookmark(postID, userID uuid.UUID) *Bookmark {
	return &Bookmark{ID: uuid.New(), PostID: postID, UserID: userID, CreatedAt: time.Now()}
}

type Comment struct {
	ID        uuid.UUID
	PostID    uuid.UUID
	UserID    uuid.UUID
	Content   string
	CreatedAt time.Time

	User *UserSummary
}

func NewComment(postID, userID uuid.UUID, content string) (*Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperror.FieldError("content", "комментарий не может быть пустым")
	}
	return &Comment{
		ID:        uuid.New(),
		PostID:    postID,
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now(),
	}, nil
}

func (c *Comment) IsOwnedBy(userID uuid.UUID) bool {
	return c.UserID == userID
}
