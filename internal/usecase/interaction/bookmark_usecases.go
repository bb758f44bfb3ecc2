package interaction

import (
	"context"

	"github.com/google/uuid"

	"github.com/ignatzorin/creative-network/internal/domain/entity"
	"github.com/ignatzorin/creative-network/internal/domain/repository"
	"github.com/ignatzorin/creative-network/internal/domain/session"
	"github.com/ignatzorin/creative-network/internal/logger"
	"github.com/ignatzorin/creative-network/internal/validation"
)

type ToggleBookmarkUseCase struct {
	posts     repository.PostRepository
	bookmarks repository.BookmarkRepository
}

func NewToggleBookmarkUseCase(posts repository.PostRepository, bookmarks repository.BookmarkRepository) *ToggleBookmarkUseCase {
	return &ToggleBookmarkUseCase{posts: posts, bookmarks: bookmarks}
}

// Execute возвращает состояние закладки после переключения.
func (uc *ToggleBookmarkUseCase) Execute(ctx context.Context, actor *session.Actor, postID uuid.UUID) (bool, error) {
	if err := session.Require(actor); err != nil {
		return false, err
	}
	if _, err := uc.posts.FindByID(ctx, postID); err != nil {
		return false, err
	}

	exists, err := uc.bookmarks.Exists(ctx, postID, actor.ID)
	if err != nil {
		return false, err
	}
	if exists {
		_, err = uc.bookmarks.Remove(ctx, postID, actor.ID)
		return false, err
	}

	if _, err := uc.bookmarks.Add(ctx, entity.NewBookmark(postID, actor.ID)); err != nil {
		return false, err
	}
	return true, nil
}

type BookmarkStatusUseCase struct {
	bookmarks repository.BookmarkRepository
}

func NewBookmarkStatusUseCase(bookmarks repository.BookmarkRepository) *BookmarkStatusUseCase {
	return &BookmarkStatusUseCase{bookmarks: bookmarks}
}

func (uc *BookmarkStatusUseCase) Execute(ctx context.Context, actor *session.Actor, postID uuid.UUID) bool {
	if !actor.Authenticated() {
		return false
	}
	exists, err := uc.bookmarks.Exists(ctx, postID, actor.ID)
	if err != nil {
		logger.Log.WithError(err).WithField("post_id", postID).Warn("не удалось проверить закладку")
		return false
	}
	return exists
}

type ListBookmarkedPostsUseCase struct {
	posts repository.PostRepository
}

func NewListBookmarkedPostsUseCase(posts repository.PostRepository) *ListBookmarkedPostsUseCase {
	return &ListBookmarkedPostsUseCase{posts: posts}
}

func (uc *ListBookmarkedPostsUseCase) Execute(ctx context.Context, actor *session.Actor, limit int) ([]*entity.Post, error) {
	if err := session.Require(actor); err != nil {
		return nil, err
	}

	posts, err := uc.posts.ListBookmarkedBy(ctx, actor.ID, validation.ClampLimit(limit, validation.DefaultListLimit))
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", actor.ID).Warn("не удалось получить закладки")
		return []*entity.Post{}, nil
	}
	if posts == nil {
		posts = []*entity.Post{}
	}
	return posts, nil
}
