package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/creative-network/internal/pkg/apperror"
)

type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	Image        *string
	Bio          *string
	Skills       []string
	Tools        []string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserSummary — отображаемые поля пользователя, которые подмешиваются к спискам.
type UserSummary struct {
	ID    uuid.UUID
	Name  string
	Image *string
}

func NewUser(email, name, passwordHash string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, apperror.FieldError("email", "email обязателен")
	}
	now := time.Now()
	return &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         strings.TrimSpace(name),
		Skills:       []string{},
		Tools:        []string{},
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Image: u.Image}
}

// ProfilePatch — частичное обновление профиля, nil означает «не менять».
type ProfilePatch struct {
	Name   *string
	Bio    *string
	Skills []string
	Tools  []string
}

func (u *User) ApplyProfile(p ProfilePatch) {
	if p.Name != nil {
		u.Name = strings.TrimSpace(*p.Name)
	}
	if p.Bio != nil {
		u.Bio = normalizeOptional(p.Bio)
	}
	if p.Skills != nil {
		u.Skills = trimAll(p.Skills)
	}
	if p.Tools != nil {
		u.Tools = trimAll(p.Tools)
	}
	u.UpdatedAt = time.Now()
}

// UserStats — агрегаты для публичного профиля и списка людей.
type UserStats struct {
	Posts     int
	Followers int
	Following int
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.TrimSpace(v))
	}
	return out
}

// normalizeOptional превращает пустую строку в nil.
func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
