package post

import (
	"context"

	"github.com/google/uuid"

	"github.com/ignatzorin/creative-network/internal/domain/entity"
	"github.com/ignatzorin/creative-network/internal/domain/repository"
	"github.com/ignatzorin/creative-network/internal/domain/session"
	"github.com/ignatzorin/creative-network/internal/logger"
	"github.com/ignatzorin/creative-network/internal/pkg/apperror"
	"github.com/ignatzorin/creative-network/internal/validation"
)

// PostInput — текст и изображение поста. Хотя бы одно должно быть заполнено.
type PostInput struct {
	Content  *string `json:"content" validate:"omitempty,max=1000"`
	ImageURL *string `json:"imageUrl" validate:"omitempty,url"`
}

type CreatePostUseCase struct {
	posts repository.PostRepository
}

func NewCreatePostUseCase(posts repository.PostRepository) *CreatePostUseCase {
	return &CreatePostUseCase{posts: posts}
}

// Execute создаёт пост от имени актора. Автор берётся только из сессии.
func (uc *CreatePostUseCase) Execute(ctx context.Context, actor *session.Actor, input PostInput) (*entity.Post, error) {
	if err := session.Require(actor); err != nil {
		return nil, err
	}
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	post, err := entity.NewPost(actor.ID, input.Content, input.ImageURL)
	if err != nil {
		return nil, err
	}
	if err := uc.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return uc.posts.FindByID(ctx, post.ID)
}

type UpdatePostUseCase struct {
	posts repository.PostRepository
}

func NewUpdatePostUseCase(posts repository.PostRepository) *UpdatePostUseCase {
	return &UpdatePostUseCase{posts: posts}
}

// Execute проверяет владельца до валидации тела.
func (uc *UpdatePostUseCase) Execute(ctx context.Context, actor *session.Actor, id uuid.UUID, input PostInput) (*entity.Post, error) {
	if err := session.Require(actor); err != nil {
		return nil, err
	}

	post, err := uc.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !post.IsOwnedBy(actor.ID) {
		return nil, apperror.ErrForbidden
	}

	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if err := post.Update(input.Content, input.ImageURL); err != nil {
		return nil, err
	}
	if err := uc.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

type DeletePostUseCase struct {
	posts repository.PostRepository
}

func NewDeletePostUseCase(posts repository.PostRepository) *DeletePostUseCase {
	return &DeletePostUseCase{posts: posts}
}

func (uc *DeletePostUseCase) Execute(ctx context.Context, actor *session.Actor, id uuid.UUID) error {
	if err := session.Require(actor); err != nil {
		return err
	}

	post, err := uc.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !post.IsOwnedBy(actor.ID) {
		return apperror.ErrForbidden
	}
	return uc.posts.Delete(ctx, id)
}

type FeedUseCase struct {
	posts repository.PostRepository
}

func NewFeedUseCase(posts repository.PostRepository) *FeedUseCase {
	return &FeedUseCase{posts: posts}
}

// Execute возвращает последние посты с авторами и счётчиками.
func (uc *FeedUseCase) Execute(ctx context.Context, limit int) ([]*entity.Post, error) {
	posts, err := uc.posts.List(ctx, validation.ClampLimit(limit, validation.DefaultFeedLimit))
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []*entity.Post{}
	}
	return posts, nil
}

type GetPostUseCase struct {
	posts repository.PostRepository
}

func NewGetPostUseCase(posts repository.PostRepository) *GetPostUseCase {
	return &GetPostUseCase{posts: posts}
}

func (uc *GetPostUseCase) Execute(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	return uc.posts.FindByID(ctx, id)
}

type ListByAuthorUseCase struct {
	posts repository.PostRepository
}

func NewListByAuthorUseCase(posts repository.PostRepository) *ListByAuthorUseCase {
	return &ListByAuthorUseCase{posts: posts}
}

func (uc *ListByAuthorUseCase) Execute(ctx context.Context, authorID uuid.UUID, limit int) []*entity.Post {
	posts, err := uc.posts.ListByAuthor(ctx, authorID, validation.ClampLimit(limit, validation.DefaultListLimit))
	if err != nil {
		logger.Log.WithError(err).WithField("author_id", authorID).Warn("не удалось получить посты пользователя")
		return []*entity.Post{}
	}
	if posts == nil {
		return []*entity.Post{}
	}
	return posts
}

type UseCases struct {
	Create   *CreatePostUseCase
	Update   *UpdatePostUseCase
	Delete   *DeletePostUseCase
	Feed     *FeedUseCase
	Get      *GetPostUseCase
	ByAuthor *ListByAuthorUseCase
}

func New(posts repository.PostRepository) UseCases {
	return UseCases{
		Create:   NewCreatePostUseCase(posts),
		Update:   NewUpdatePostUseCase(posts),
		Delete:   NewDeletePostUseCase(posts),
		Feed:     NewFeedUseCase(posts),
		Get:      NewGetPostUseCase(posts),
		ByAuthor: NewListByAuthorUseCase(posts),
	}
}
