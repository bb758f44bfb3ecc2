package interaction

import (
	"context"

	"github.com/google/uuid"

	"github.com/ignatzorin/creative-network/internal/domain/entity"
	"github.com/ignatzorin/creative-network/internal/domain/repository"
	"github.com/ignatzorin/creative-network/internal/domain/session"
	"github.com/ignatzorin/creative-network/internal/domain/valueobject"
	"github.com/ignatzorin/creative-network/internal/logger"
	"github.com/ignatzorin/creative-network/internal/usecase/notification"
)

// Notifier создаёт уведомления без возврата ошибок.
type Notifier interface {
	Notify(ctx context.Context, d notification.Draft)
}

// LikeState — состояние отметки «нравится» для пользователя.
type LikeState struct {
	Liked bool `json:"liked"`
	Count int  `json:"count"`
}

type ToggleLikeUseCase struct {
	posts    repository.PostRepository
	likes    repository.LikeRepository
	notifier Notifier
}

func NewToggleLikeUseCase(posts repository.PostRepository, likes repository.LikeRepository, notifier Notifier) *ToggleLikeUseCase {
	return &ToggleLikeUseCase{posts: posts, likes: likes, notifier: notifier}
}

// Execute переключает отметку. Уведомление автору отправляется только
// если строка действительно вставлена.
func (uc *ToggleLikeUseCase) Execute(ctx context.Context, actor *session.Actor, postID uuid.UUID) (LikeState, error) {
	if err := session.Require(actor); err != nil {
		return LikeState{}, err
	}

	post, err := uc.posts.FindByID(ctx, postID)
	if err != nil {
		return LikeState{}, err
	}

	exists, err := uc.likes.Exists(ctx, postID, actor.ID)
	if err != nil {
		return LikeState{}, err
	}

	state := LikeState{}
	if exists {
		if _, err := uc.likes.Remove(ctx, postID, actor.ID); err != nil {
			return LikeState{}, err
		}
	} else {
		inserted, err := uc.likes.Add(ctx, entity.NewLike(postID, actor.ID))
		if err != nil {
			return LikeState{}, err
		}
		state.Liked = true
		if inserted {
			sender := actor.ID
			uc.notifier.Notify(ctx, notification.Draft{
				Type:        valueobject.NotificationLike,
				RecipientID: post.AuthorID,
				SenderID:    &sender,
				PostID:      &post.ID,
			})
		}
	}

	if state.Count, err = uc.likes.Count(ctx, postID); err != nil {
		return LikeState{}, err
	}
	return state, nil
}

type LikeStatusUseCase struct {
	likes repository.LikeRepository
}

func NewLikeStatusUseCase(likes repository.LikeRepository) *LikeStatusUseCase {
	return &LikeStatusUseCase{likes: likes}
}

// Execute не возвращает ошибок: при сбое хранилища отдаётся нулевое состояние.
func (uc *LikeStatusUseCase) Execute(ctx context.Context, actor *session.Actor, postID uuid.UUID) LikeState {
	count, err := uc.likes.Count(ctx, postID)
	if err != nil {
		logger.Log.WithError(err).WithField("post_id", postID).Warn("не удалось посчитать отметки")
		return LikeState{}
	}

	state := LikeState{Count: count}
	if !actor.Authenticated() {
		return state
	}

	liked, err := uc.likes.Exists(ctx, postID, actor.ID)
	if err != nil {
		logger.Log.WithError(err).WithField("post_id", postID).Warn("не удалось проверить отметку")
		return state
	}
	state.Liked = liked
	return state
}

type LikeCountsUseCase struct {
	likes repository.LikeRepository
}

func NewLikeCountsUseCase(likes repository.LikeRepository) *LikeCountsUseCase {
	return &LikeCountsUseCase{likes: likes}
}

// Execute возвращает число отметок для каждого поста, включая нулевые.
func (uc *LikeCountsUseCase) Execute(ctx context.Context, postIDs []uuid.UUID) map[uuid.UUID]int {
	out := make(map[uuid.UUID]int, len(postIDs))
	if len(postIDs) == 0 {
		return out
	}
	for _, id := range postIDs {
		out[id] = 0
	}

	counts, err := uc.likes.CountByPosts(ctx, postIDs)
	if err != nil {
		logger.Log.WithError(err).Warn("не удалось посчитать отметки постов")
		return out
	}
	for id, n := range counts {
		out[id] = n
	}
	return out
}
