package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/creative-network/internal/domain/entity"
	"github.com/ignatzorin/creative-network/internal/pkg/apperror"
)

type Users struct{ s *Store }

func (s *Store) Users() *Users { return &Users{s: s} }

func (r *Users) Create(ctx context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("users"); err != nil {
		return err
	}
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return apperror.ErrEmailTaken
		}
	}
	cp := *user
	cp.CreatedAt = r.s.stamp(cp.CreatedAt)
	r.s.users[user.ID] = &cp
	return nil
}

func (r *Users) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("users"); err != nil {
		return nil, err
	}
	u, ok := r.s.users[id]
	if !ok {
		return nil, apperror.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *Users) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("users"); err != nil {
		return nil, err
	}
	for _, u := range r.s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperror.ErrUserNotFound
}

func (r *Users) UpdateProfile(ctx context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("users"); err != nil {
		return err
	}
	if _, ok := r.s.users[user.ID]; !ok {
		return apperror.ErrUserNotFound
	}
	cp := *user
	r.s.users[user.ID] = &cp
	return nil
}

func (r *Users) ListExcept(ctx context.Context, excludeID uuid.UUID, limit int) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("users"); err != nil {
		return nil, err
	}
	var out []*entity.User
	for _, u := range r.s.users {
		if u.ID != excludeID {
			cp := *u
			out = append(out, &cp)
		}
	}
	sortByCreatedDesc(out, func(u *entity.User) time.Time { return u.CreatedAt })
	return limitSlice(out, limit), nil
}
