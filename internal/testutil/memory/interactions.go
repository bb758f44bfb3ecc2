package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/creative-network/internal/domain/entity"
	"github.com/ignatzorin/creative-network/internal/pkg/apperror"
)

type Likes struct{ s *Store }

func (s *Store) Likes() *Likes { return &Likes{s: s} }

func (r *Likes) Add(ctx context.Context, like *entity.Like) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("likes"); err != nil {
		return false, err
	}
	key := pairKey{like.PostID, like.UserID}
	if _, ok := r.s.likes[key]; ok {
		return false, nil
	}
	cp := *like
	r.s.likes[key] = &cp
	return true, nil
}

func (r *Likes) Remove(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("likes"); err != nil {
		return false, err
	}
	key := pairKey{postID, userID}
	if _, ok := r.s.likes[key]; !ok {
		return false, nil
	}
	delete(r.s.likes, key)
	return true, nil
}

func (r *Likes) Exists(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("likes"); err != nil {
		return false, err
	}
	_, ok := r.s.likes[pairKey{postID, userID}]
	return ok, nil
}

func (r *Likes) Count(ctx context.Context, postID uuid.UUID) (int, error) {
	counts, err := r.CountByPosts(ctx, []uuid.UUID{postID})
	if err != nil {
		return 0, err
	}
	return counts[postID], nil
}

func (r *Likes) CountByPosts(ctx context.Context, postIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("likes"); err != nil {
		return nil, err
	}
	wanted := make(map[uuid.UUID]bool, len(postIDs))
	for _, id := range postIDs {
		wanted[id] = true
	}
	out := make(map[uuid.UUID]int)
	for k := range r.s.likes {
		if wanted[k[0]] {
			out[k[0]]++
		}
	}
	return out, nil
}

type Bookmarks struct{ s *Store }

func (s *Store) Bookmarks() *Bookmarks { return &Bookmarks{s: s} }

func (r *Bookmarks) Add(ctx context.Context, bookmark *entity.Bookmark) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("bookmarks"); err != nil {
		return false, err
	}
	key := pairKey{bookmark.PostID, bookmark.UserID}
	if _, ok := r.s.bookmarks[key]; ok {
		return false, nil
	}
	cp := *bookmark
	r.s.bookmarks[key] = &cp
	return true, nil
}

func (r *Bookmarks) Remove(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("bookmarks"); err != nil {
		return false, err
	}
	key := pairKey{postID, userID}
	if _, ok := r.s.bookmarks[key]; !ok {
		return false, nil
	}
	delete(r.s.bookmarks, key)
	return true, nil
}

func (r *Bookmarks) Exists(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("bookmarks"); err != nil {
		return false, err
	}
	_, ok := r.s.bookmarks[pairKey{postID, userID}]
	return ok, nil
}

type Comments struct{ s *Store }

func (s *Store) Comments() *Comments { return &Comments{s: s} }

func (r *Comments) Create(ctx context.Context, comment *entity.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("comments"); err != nil {
		return err
	}
	cp := *comment
	cp.CreatedAt = r.s.stamp(cp.CreatedAt)
	r.s.comments[comment.ID] = &cp
	return nil
}

func (r *Comments) FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("comments"); err != nil {
		return nil, err
	}
	c, ok := r.s.comments[id]
	if !ok {
		return nil, apperror.ErrCommentNotFound
	}
	cp := *c
	cp.User = r.s.summary(c.UserID)
	return &cp, nil
}

func (r *Comments) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("comments"); err != nil {
		return err
	}
	if _, ok := r.s.comments[id]; !ok {
		return apperror.ErrCommentNotFound
	}
	delete(r.s.comments, id)
	return nil
}

func (r *Comments) ListByPost(ctx context.Context, postID uuid.UUID) ([]*entity.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("comments"); err != nil {
		return nil, err
	}
	var out []*entity.Comment
	for _, c := range r.s.comments {
		if c.PostID == postID {
			cp := *c
			cp.User = r.s.summary(c.UserID)
			out = append(out, &cp)
		}
	}
	sortByCreatedAsc(out, func(c *entity.Comment) time.Time { return c.CreatedAt })
	return out, nil
}
