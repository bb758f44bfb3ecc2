package profile

import (
	"context"

	"github.com/google/uuid"

	"github.com/ignatzorin/creative-network/internal/domain/entity"
	"github.com/ignatzorin/creative-network/internal/domain/repository"
	"github.com/ignatzorin/creative-network/internal/domain/session"
	"github.com/ignatzorin/creative-network/internal/logger"
	"github.com/ignatzorin/creative-network/internal/validation"
)

// FollowReader — чтение графа подписок, ошибки уже обработаны внутри.
type FollowReader interface {
	IsFollowing(ctx context.Context, actor *session.Actor, targetID uuid.UUID) bool
	Statuses(ctx context.Context, actor *session.Actor, targetIDs []uuid.UUID) map[uuid.UUID]bool
	Followers(ctx context.Context, userIDs []uuid.UUID) map[uuid.UUID]int
	Following(ctx context.Context, userID uuid.UUID) int
}

// ServiceLister возвращает услуги пользователя, при ошибке пустой список.
type ServiceLister interface {
	Execute(ctx context.Context, providerID uuid.UUID) []*entity.Service
}

// Profile — собственный или публичный профиль.
type Profile struct {
	User        *entity.User
	Portfolio   []*entity.PortfolioItem
	Services    []*entity.Service
	Stats       entity.UserStats
	IsFollowing bool
}

// Person — строка списка людей.
type Person struct {
	User        *entity.User
	Stats       entity.UserStats
	IsFollowing bool
}

func listPortfolio(ctx context.Context, repo repository.PortfolioRepository, userID uuid.UUID) []*entity.PortfolioItem {
	items, err := repo.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", userID).Warn("не удалось получить портфолио")
		return []*entity.PortfolioItem{}
	}
	if items == nil {
		return []*entity.PortfolioItem{}
	}
	return items
}

type MeUseCase struct {
	users     repository.UserRepository
	portfolio repository.PortfolioRepository
}

func NewMeUseCase(users repository.UserRepository, portfolio repository.PortfolioRepository) *MeUseCase {
	return &MeUseCase{users: users, portfolio: portfolio}
}

func (uc *MeUseCase) Execute(ctx context.Context, actor *session.Actor) (*Profile, error) {
	if err := session.Require(actor); err != nil {
		return nil, err
	}

	user, err := uc.users.FindByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	return &Profile{User: user, Portfolio: listPortfolio(ctx, uc.portfolio, user.ID)}, nil
}

// ProfileInput — частичное обновление. Отсутствующие поля не меняются.
type ProfileInput struct {
	Name   *string  `json:"name" validate:"omitnil,notblank,min=2,max=100"`
	Bio    *string  `json:"bio" validate:"omitempty,max=500"`
	Skills []string `json:"skills" validate:"omitempty,max=20,dive,notblank,max=100"`
	Tools  []string `json:"tools" validate:"omitempty,max=20,dive,notblank,max=100"`
}

type UpdateProfileUseCase struct {
	users repository.UserRepository
}

func NewUpdateProfileUseCase(users repository.UserRepository) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{users: users}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, actor *session.Actor, input ProfileInput) (*entity.User, error) {
	if err := session.Require(actor); err != nil {
		return nil, err
	}
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	user, err := uc.users.FindByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	user.ApplyProfile(entity.ProfilePatch{
		Name:   input.Name,
		Bio:    input.Bio,
		Skills: input.Skills,
		Tools:  input.Tools,
	})
	if err := uc.users.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

type PublicProfileUseCase struct {
	users     repository.UserRepository
	posts     repository.PostRepository
	portfolio repository.PortfolioRepository
	services  ServiceLister
	follows   FollowReader
}

func NewPublicProfileUseCase(users repository.UserRepository, posts repository.PostRepository, portfolio repository.PortfolioRepository, services ServiceLister, follows FollowReader) *PublicProfileUseCase {
	return &PublicProfileUseCase{users: users, posts: posts, portfolio: portfolio, services: services, follows: follows}
}

// Execute доступен анонимно: для анонима IsFollowing всегда false.
func (uc *PublicProfileUseCase) Execute(ctx context.Context, viewer *session.Actor, userID uuid.UUID) (*Profile, error) {
	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	p := &Profile{
		User:      user,
		Portfolio: listPortfolio(ctx, uc.portfolio, user.ID),
		Services:  uc.services.Execute(ctx, user.ID),
	}

	if counts, err := uc.posts.CountByAuthors(ctx, []uuid.UUID{user.ID}); err == nil {
		p.Stats.Posts = counts[user.ID]
	} else {
		logger.Log.WithError(err).WithField("user_id", user.ID).Warn("не удалось посчитать посты")
	}
	p.Stats.Followers = uc.follows.Followers(ctx, []uuid.UUID{user.ID})[user.ID]
	p.Stats.Following = uc.follows.Following(ctx, user.ID)
	if !viewer.Is(user.ID) {
		p.IsFollowing = uc.follows.IsFollowing(ctx, viewer, user.ID)
	}
	return p, nil
}

type PeopleUseCase struct {
	users   repository.UserRepository
	posts   repository.PostRepository
	follows FollowReader
}

func NewPeopleUseCase(users repository.UserRepository, posts repository.PostRepository, follows FollowReader) *PeopleUseCase {
	return &PeopleUseCase{users: users, posts: posts, follows: follows}
}

// Execute возвращает всех, кроме зрителя, от новых к старым.
// Число подписок в списке не считается и всегда 0.
func (uc *PeopleUseCase) Execute(ctx context.Context, viewer *session.Actor, limit int) ([]*Person, error) {
	users, err := uc.users.ListExcept(ctx, viewer.UserID(), validation.ClampLimit(limit, validation.DefaultListLimit))
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}

	postCounts, err := uc.posts.CountByAuthors(ctx, ids)
	if err != nil {
		logger.Log.WithError(err).Warn("не удалось посчитать посты людей")
		postCounts = map[uuid.UUID]int{}
	}
	followers := uc.follows.Followers(ctx, ids)
	statuses := uc.follows.Statuses(ctx, viewer, ids)

	people := make([]*Person, 0, len(users))
	for _, u := range users {
		people = append(people, &Person{
			User: u,
			Stats: entity.UserStats{
				Posts:     postCounts[u.ID],
				Followers: followers[u.ID],
			},
			IsFollowing: statuses[u.ID],
		})
	}
	return people, nil
}
