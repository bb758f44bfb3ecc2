// Package memory содержит in-memory реализации репозиториев для тестов use case.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/creative-network/internal/domain/entity"
)

type pairKey [2]uuid.UUID

// Store — общее состояние всех in-memory репозиториев.
type Store struct {
	mu       sync.Mutex
	failures map[string]error
	last     time.Time

	users         map[uuid.UUID]*entity.User
	posts         map[uuid.UUID]*entity.Post
	likes         map[pairKey]*entity.Like
	bookmarks     map[pairKey]*entity.Bookmark
	comments      map[uuid.UUID]*entity.Comment
	follows       map[pairKey]*entity.Follow
	notifications map[uuid.UUID]*entity.Notification
	conversations map[uuid.UUID]*entity.Conversation
	messages      map[uuid.UUID]*entity.Message
	jobs          map[uuid.UUID]*entity.Job
	events        map[uuid.UUID]*entity.Event
	services      map[uuid.UUID]*entity.Service
	portfolio     map[uuid.UUID]*entity.PortfolioItem
	boards        map[uuid.UUID]*entity.MoodBoard
	boardItems    map[uuid.UUID]*entity.MoodBoardItem
}

func NewStore() *Store {
	return &Store{
		failures:      make(map[string]error),
		users:         make(map[uuid.UUID]*entity.User),
		posts:         make(map[uuid.UUID]*entity.Post),
		likes:         make(map[pairKey]*entity.Like),
		bookmarks:     make(map[pairKey]*entity.Bookmark),
		comments:      make(map[uuid.UUID]*entity.Comment),
		follows:       make(map[pairKey]*entity.Follow),
		notifications: make(map[uuid.UUID]*entity.Notification),
		conversations: make(map[uuid.UUID]*entity.Conversation),
		messages:      make(map[uuid.UUID]*entity.Message),
		jobs:          make(map[uuid.UUID]*entity.Job),
		events:        make(map[uuid.UUID]*entity.Event),
		services:      make(map[uuid.UUID]*entity.Service),
		portfolio:     make(map[uuid.UUID]*entity.PortfolioItem),
		boards:        make(map[uuid.UUID]*entity.MoodBoard),
		boardItems:    make(map[uuid.UUID]*entity.MoodBoardItem),
	}
}

// Fail заставляет все операции репозитория name возвращать err (nil снимает ошибку).
// Имена: users, posts, likes, bookmarks, comments, follows, notifications,
// conversations, messages, jobs, events, services, portfolio, moodboards.
func (s *Store) Fail(name string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failures, name)
		return
	}
	s.failures[name] = err
}

func (s *Store) failure(name string) error {
	return s.failures[name]
}

// tick возвращает строго возрастающее время, чтобы сортировки в тестах были детерминированы.
func (s *Store) tick() time.Time {
	now := time.Now()
	if !now.After(s.last) {
		now = s.last.Add(time.Microsecond)
	}
	s.last = now
	return now
}

// stamp сдвигает время создания, если оно совпадает с предыдущим.
func (s *Store) stamp(t time.Time) time.Time {
	if t.After(s.last) {
		s.last = t
		return t
	}
	return s.tick()
}

func (s *Store) summary(id uuid.UUID) *entity.UserSummary {
	u, ok := s.users[id]
	if !ok {
		return &entity.UserSummary{ID: id}
	}
	sum := u.Summary()
	return &sum
}

// AddUser кладёт пользователя напрямую, минуя репозиторий.
func (s *Store) AddUser(name string) *entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, _ := entity.NewUser(uuid.NewString()+"@example.com", name, "hash")
	u.CreatedAt = s.stamp(u.CreatedAt)
	s.users[u.ID] = u
	cp := *u
	return &cp
}

// LikeRows возвращает число строк Like для поста.
func (s *Store) LikeRows(postID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for k := range s.likes {
		if k[0] == postID {
			n++
		}
	}
	return n
}

// NotificationsFor возвращает копии уведомлений получателя.
func (s *Store) NotificationsFor(recipientID uuid.UUID) []entity.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entity.Notification
	for _, n := range s.notifications {
		if n.RecipientID == recipientID {
			out = append(out, *n)
		}
	}
	return out
}

// ConversationCount возвращает число бесед в хранилище.
func (s *Store) ConversationCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conversations)
}

func sortByCreatedDesc[T any](items []T, created func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool { return created(items[i]).After(created(items[j])) })
}

func sortByCreatedAsc[T any](items []T, created func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool { return created(items[i]).Before(created(items[j])) })
}

func limitSlice[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
