package follow

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
)

// Notifier создаёт уведомления без возврата ошибок.
type Notifier interface {
	Notify(ctx context.Context, d notification.Draft)
}

type FollowUseCase struct {
	follows  repository.FollowRepository
	users    repository.UserRepository
	notifier Notifier
	features capability.Set
}

func NewFollowUseCase(follows repository.FollowRepository, users repository.UserRepository, notifier Notifier, features capability.Set) *FollowUseCase {
	return &FollowUseCase{follows: follows, users: users, notifier: notifier, features: features}
}

// Execute идемпотентен: повторная подписка успешна и возвращает created=false.
// Уведомление connect отправляется только при создании ребра.
func (uc *FollowUseCase) Execute(ctx context.Context, actor *session.Actor, targetID uuid.UUID) (bool, error) {
	if err := session.Require(actor); err != nil {
		return false, err
	}

	edge, err := entity.NewFollow(actor.ID, targetID)
	if err != nil {
		return false, err
	}

	if !uc.features.Enabled(capability.Follows) {
		return false, apperror.NotProvisioned(string(capability.Follows))
	}

	if _, err := uc.users.FindByID(ctx, targetID); err != nil {
		return false, err
	}

	exists, err := uc.follows.Exists(ctx, actor.ID, targetID)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	created, err := uc.follows.Create(ctx, edge)
	if err != nil {
		return false, err
	}

	if created {
		sender := actor.ID
		uc.notifier.Notify(ctx, notification.Draft{
			Type:        valueobject.NotificationConnect,
			RecipientID: targetID,
			SenderID:    &sender,
		})
	}
	return created, nil
}

type UnfollowUseCase struct {
	follows  repository.FollowRepository
	features capability.Set
}

func NewUnfollowUseCase(follows repository.FollowRepository, features capability.Set) *UnfollowUseCase {
	return &UnfollowUseCase{follows: follows, features: features}
}

// Execute удаляет ребро, если оно есть. Отсутствие ребра не ошибка.
func (uc *UnfollowUseCase) Execute(ctx context.Context, actor *session.Actor, targetID uuid.UUID) error {
	if err := session.Require(actor); err != nil {
		return err
	}
	if !uc.features.Enabled(capability.Follows) {
		return apperror.NotProvisioned(string(capability.Follows))
	}
	return uc.follows.Delete(ctx, actor.ID, targetID)
}

type IsFollowingUseCase struct {
	follows  repository.FollowRepository
	features capability.Set
}

func NewIsFollowingUseCase(follows repository.FollowRepository, features capability.Set) *IsFollowingUseCase {
	return &IsFollowingUseCase{follows: follows, features: features}
}

func (uc *IsFollowingUseCase) Execute(ctx context.Context, actor *session.Actor, targetID uuid.UUID) bool {
	if !actor.Authenticated() || !uc.features.Enabled(capability.Follows) {
		return false
	}

	exists, err := uc.follows.Exists(ctx, actor.ID, targetID)
	if err != nil {
		logger.Log.WithError(err).Warn("не удалось проверить подписку")
		return false
	}
	return exists
}

type FollowStatusesUseCase struct {
	follows  repository.FollowRepository
	features capability.Set
}

func NewFollowStatusesUseCase(follows repository.FollowRepository, features capability.Set) *FollowStatusesUseCase {
	return &FollowStatusesUseCase{follows: follows, features: features}
}

// Execute возвращает флаг подписки для каждого id. Для анонима и пустого списка
// запрос не выполняется и возвращается пустая карта.
func (uc *FollowStatusesUseCase) Execute(ctx context.Context, actor *session.Actor, targetIDs []uuid.UUID) map[uuid.UUID]bool {
	statuses := make(map[uuid.UUID]bool, len(targetIDs))
	if !actor.Authenticated() || len(targetIDs) == 0 || !uc.features.Enabled(capability.Follows) {
		return statuses
	}

	unique := make([]uuid.UUID, 0, len(targetIDs))
	for _, id := range targetIDs {
		if _, seen := statuses[id]; !seen {
			statuses[id] = false
			unique = append(unique, id)
		}
	}

	following, err := uc.follows.FollowingAmong(ctx, actor.ID, unique)
	if err != nil {
		logger.Log.WithError(err).Warn("не удалось получить статусы подписок")
		return map[uuid.UUID]bool{}
	}
	for _, id := range following {
		statuses[id] = true
	}
	return statuses
}

type FollowCountsUseCase struct {
	follows  repository.FollowRepository
	features capability.Set
}

func NewFollowCountsUseCase(follows repository.FollowRepository, features capability.Set) *FollowCountsUseCase {
	return &FollowCountsUseCase{follows: follows, features: features}
}

// Followers возвращает число подписчиков для каждого пользователя.
func (uc *FollowCountsUseCase) Followers(ctx context.Context, userIDs []uuid.UUID) map[uuid.UUID]int {
	if len(userIDs) == 0 || !uc.features.Enabled(capability.Follows) {
		return map[uuid.UUID]int{}
	}

	counts, err := uc.follows.CountFollowers(ctx, userIDs)
	if err != nil {
		logger.Log.WithError(err).Warn("не удалось посчитать подписчиков")
		return map[uuid.UUID]int{}
	}
	return counts
}

func (uc *FollowCountsUseCase) Following(ctx context.Context, userID uuid.UUID) int {
	if !uc.features.Enabled(capability.Follows) {
		return 0
	}

	count, err := uc.follows.CountFollowing(ctx, userID)
	if err != nil {
		logger.Log.WithError(err).Warn("не удалось посчитать подписки")
		return 0
	}
	return count
}

type UseCases struct {
	Follow   *FollowUseCase
	Unfollow *UnfollowUseCase
	Is       *IsFollowingUseCase
	Statuses *FollowStatusesUseCase
	Counts   *FollowCountsUseCase
}

func New(follows repository.FollowRepository, users repository.UserRepository, notifier Notifier, features capability.Set) UseCases {
	return UseCases{
		Follow:   NewFollowUseCase(follows, users, notifier, features),
		Unfollow: NewUnfollowUseCase(follows, features),
		Is:       NewIsFollowingUseCase(follows, features),
		Statuses: NewFollowStatusesUseCase(follows, features),
		Counts:   NewFollowCountsUseCase(follows, features),
	}
}

// Reader — представление сценариев чтения для других модулей.
type Reader struct {
	uc UseCases
}

func (u UseCases) Reader() Reader {
	return Reader{uc: u}
}

func (r Reader) IsFollowing(ctx context.Context, actor *session.Actor, targetID uuid.UUID) bool {
	return r.uc.Is.Execute(ctx, actor, targetID)
}

func (r Reader) Statuses(ctx context.Context, actor *session.Actor, targetIDs []uuid.UUID) map[uuid.UUID]bool {
	return r.uc.Statuses.Execute(ctx, actor, targetIDs)
}

func (r Reader) Followers(ctx context.Context, userIDs []uuid.UUID) map[uuid.UUID]int {
	return r.uc.Counts.Followers(ctx, userIDs)
}

func (r Reader) Following(ctx context.Context, userID uuid.UUID) int {
	return r.uc.Counts.Following(ctx, userID)
}
