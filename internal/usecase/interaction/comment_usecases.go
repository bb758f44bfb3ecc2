package interaction

import (
	"context"

	"github.com/google/uuid"

	"github.com/ignatzorin/creative-network/internal/domain/capability"
	"github.com/ignatzorin/creative-network/internal/domain/entity"
	"github.com/ignatzorin/creative-network/internal/domain/repository"
	"github.com/ignatzorin/creative-network/internal/domain/session"
	"github.com/ignatzorin/creative-network/internal/domain/valueobject"
	"github.com/ignatzorin/creative-network/internal/logger"
	"github.com/ignatzorin/creative-network/internal/pkg/apperror"
	"github.com/ignatzorin/creative-network/internal/usecase/notification"
	"github.com/ignatzorin/creative-network/internal/validation"
)

type CreateCommentInput struct {
	PostID  uuid.UUID `json:"postId" validate:"required"`
	Content string    `json:"content" validate:"notblank,max=1000"`
}

type CreateCommentUseCase struct {
	posts    repository.PostRepository
	comments repository.CommentRepository
	users    repository.UserRepository
	notifier Notifier
	features capability.Set
}

func NewCreateCommentUseCase(posts repository.PostRepository, comments repository.CommentRepository, users repository.UserRepository, notifier Notifier, features capability.Set) *CreateCommentUseCase {
	return &CreateCommentUseCase{posts: posts, comments: comments, users: users, notifier: notifier, features: features}
}

func (uc *CreateCommentUseCase) Execute(ctx context.Context, actor *session.Actor, input CreateCommentInput) (*entity.Comment, error) {
	if err := session.Require(actor); err != nil {
		return nil, err
	}
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if !uc.features.Enabled(capability.Comments) {
		return nil, apperror.NotProvisioned(string(capability.Comments))
	}

	post, err := uc.posts.FindByID(ctx, input.PostID)
	if err != nil {
		return nil, err
	}

	comment, err := entity.NewComment(post.ID, actor.ID, input.Content)
	if err != nil {
		return nil, err
	}
	if err := uc.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	if author, err := uc.users.FindByID(ctx, actor.ID); err == nil {
		summary := author.Summary()
		comment.User = &summary
	} else {
		comment.User = &entity.UserSummary{ID: actor.ID, Image: actor.Image}
	}

	sender := actor.ID
	uc.notifier.Notify(ctx, notification.Draft{
		Type:        valueobject.NotificationComment,
		RecipientID: post.AuthorID,
		SenderID:    &sender,
		PostID:      &post.ID,
	})
	return comment, nil
}

type ListCommentsUseCase struct {
	comments repository.CommentRepository
	features capability.Set
}

func NewListCommentsUseCase(comments repository.CommentRepository, features capability.Set) *ListCommentsUseCase {
	return &ListCommentsUseCase{comments: comments, features: features}
}

// Execute возвращает комментарии от старых к новым, при ошибке пустой список.
func (uc *ListCommentsUseCase) Execute(ctx context.Context, postID uuid.UUID) []*entity.Comment {
	if !uc.features.Enabled(capability.Comments) {
		return []*entity.Comment{}
	}

	list, err := uc.comments.ListByPost(ctx, postID)
	if err != nil {
		logger.Log.WithError(err).WithField("post_id", postID).Warn("не удалось получить комментарии")
		return []*entity.Comment{}
	}
	if list == nil {
		return []*entity.Comment{}
	}
	return list
}

type DeleteCommentUseCase struct {
	comments repository.CommentRepository
	features capability.Set
}

func NewDeleteCommentUseCase(comments repository.CommentRepository, features capability.Set) *DeleteCommentUseCase {
	return &DeleteCommentUseCase{comments: comments, features: features}
}

func (uc *DeleteCommentUseCase) Execute(ctx context.Context, actor *session.Actor, id uuid.UUID) error {
	if err := session.Require(actor); err != nil {
		return err
	}
	if !uc.features.Enabled(capability.Comments) {
		return apperror.NotProvisioned(string(capability.Comments))
	}

	comment, err := uc.comments.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !comment.IsOwnedBy(actor.ID) {
		return apperror.ErrForbidden
	}
	return uc.comments.Delete(ctx, id)
}
