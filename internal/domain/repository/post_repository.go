package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/ignatzorin/creative-network/internal/domain/entity"
)

type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error
	Update(ctx context.Context, post *entity.Post) error
	Delete(ctx context.Context, id uuid.UUID) error
	// FindByID возвращает пост с автором и счётчиками.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error)
	List(ctx context.Context, limit int) ([]*entity.Post, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID, limit int) ([]*entity.Post, error)
	ListBookmarkedBy(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Post, error)
	CountByAuthors(ctx context.Context, authorIDs []uuid.UUID) (map[uuid.UUID]int, error)
}

type LikeRepository interface {
	// Add возвращает false, если отметка уже существовала.
	Add(ctx context.Context, like *entity.Like) (bool, error)
	Remove(ctx context.Context, postID, userID uuid.UUID) (bool, error)
	Exists(ctx context.Context, postID, userID uuid.UUID) (bool, error)
	Count(ctx context.Context, postID uuid.UUID) (int, error)
	CountByPosts(ctx context.Context, postIDs []uuid.UUID) (map[uuid.UUID]int, error)
}

type BookmarkRepository interface {
	Add(ctx context.Context, bookmark *entity.Bookmark) (bool, error)
	Remove(ctx context.Context, postID, userID uuid.UUID) (bool, error)
	Exists(ctx context.Context, postID, userID uuid.UUID) (bool, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByPost(ctx context.Context, postID uuid.UUID) ([]*entity.Comment, error)
}
