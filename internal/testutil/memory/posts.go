package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/creative-network/internal/domain/entity"
	"github.com/ignatzorin/creative-network/internal/pkg/apperror"
)

type Posts struct{ s *Store }

func (s *Store) Posts() *Posts { return &Posts{s: s} }

// hydratePost возвращает копию поста с автором и счётчиками. Вызывается под блокировкой.
func (s *Store) hydratePost(p *entity.Post) *entity.Post {
	cp := *p
	cp.Author = s.summary(p.AuthorID)
	cp.LikeCount, cp.CommentCount = 0, 0
	for k := range s.likes {
		if k[0] == p.ID {
			cp.LikeCount++
		}
	}
	for _, c := range s.comments {
		if c.PostID == p.ID {
			cp.CommentCount++
		}
	}
	return &cp
}

func (r *Posts) Create(ctx context.Context, post *entity.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("posts"); err != nil {
		return err
	}
	cp := *post
	cp.CreatedAt = r.s.stamp(cp.CreatedAt)
	r.s.posts[post.ID] = &cp
	return nil
}

func (r *Posts) Update(ctx context.Context, post *entity.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("posts"); err != nil {
		return err
	}
	existing, ok := r.s.posts[post.ID]
	if !ok {
		return apperror.ErrPostNotFound
	}
	existing.Content, existing.ImageURL, existing.UpdatedAt = post.Content, post.ImageURL, post.UpdatedAt
	return nil
}

func (r *Posts) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("posts"); err != nil {
		return err
	}
	if _, ok := r.s.posts[id]; !ok {
		return apperror.ErrPostNotFound
	}
	delete(r.s.posts, id)
	for k := range r.s.likes {
		if k[0] == id {
			delete(r.s.likes, k)
		}
	}
	for k := range r.s.bookmarks {
		if k[0] == id {
			delete(r.s.bookmarks, k)
		}
	}
	for cid, c := range r.s.comments {
		if c.PostID == id {
			delete(r.s.comments, cid)
		}
	}
	return nil
}

func (r *Posts) FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("posts"); err != nil {
		return nil, err
	}
	p, ok := r.s.posts[id]
	if !ok {
		return nil, apperror.ErrPostNotFound
	}
	return r.s.hydratePost(p), nil
}

func (r *Posts) list(limit int, keep func(*entity.Post) bool) ([]*entity.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("posts"); err != nil {
		return nil, err
	}
	var out []*entity.Post
	for _, p := range r.s.posts {
		if keep(p) {
			out = append(out, r.s.hydratePost(p))
		}
	}
	sortByCreatedDesc(out, func(p *entity.Post) time.Time { return p.CreatedAt })
	return limitSlice(out, limit), nil
}

func (r *Posts) List(ctx context.Context, limit int) ([]*entity.Post, error) {
	return r.list(limit, func(*entity.Post) bool { return true })
}

func (r *Posts) ListByAuthor(ctx context.Context, authorID uuid.UUID, limit int) ([]*entity.Post, error) {
	return r.list(limit, func(p *entity.Post) bool { return p.AuthorID == authorID })
}

// ListBookmarkedBy упорядочен по времени поста, а не закладки.
func (r *Posts) ListBookmarkedBy(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Post, error) {
	return r.list(limit, func(p *entity.Post) bool {
		_, ok := r.s.bookmarks[pairKey{p.ID, userID}]
		return ok
	})
}

func (r *Posts) CountByAuthors(ctx context.Context, authorIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("posts"); err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]int)
	for _, id := range authorIDs {
		for _, p := range r.s.posts {
			if p.AuthorID == id {
				out[id]++
			}
		}
	}
	return out, nil
}
