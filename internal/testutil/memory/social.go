package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/creative-network/internal/domain/entity"
	"github.com/ignatzorin/creative-network/internal/pkg/apperror"
)

type Follows struct{ s *Store }

func (s *Store) Follows() *Follows { return &Follows{s: s} }

func (r *Follows) Create(ctx context.Context, follow *entity.Follow) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("follows"); err != nil {
		return false, err
	}
	key := pairKey{follow.FollowerID, follow.FollowingID}
	if _, ok := r.s.follows[key]; ok {
		return false, nil
	}
	cp := *follow
	r.s.follows[key] = &cp
	return true, nil
}

func (r *Follows) Delete(ctx context.Context, followerID, followingID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("follows"); err != nil {
		return err
	}
	delete(r.s.follows, pairKey{followerID, followingID})
	return nil
}

func (r *Follows) Exists(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("follows"); err != nil {
		return false, err
	}
	_, ok := r.s.follows[pairKey{followerID, followingID}]
	return ok, nil
}

func (r *Follows) FollowingAmong(ctx context.Context, followerID uuid.UUID, targetIDs []uuid.UUID) ([]uuid.UUID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("follows"); err != nil {
		return nil, err
	}
	var out []uuid.UUID
	for _, id := range targetIDs {
		if _, ok := r.s.follows[pairKey{followerID, id}]; ok {
			out = append(out, id)
		}
	}
	return out, nil
}

func (r *Follows) CountFollowers(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("follows"); err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]int)
	for _, id := range userIDs {
		for k := range r.s.follows {
			if k[1] == id {
				out[id]++
			}
		}
	}
	return out, nil
}

func (r *Follows) CountFollowing(ctx context.Context, userID uuid.UUID) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("follows"); err != nil {
		return 0, err
	}
	n := 0
	for k := range r.s.follows {
		if k[0] == userID {
			n++
		}
	}
	return n, nil
}

type Notifications struct{ s *Store }

func (s *Store) Notifications() *Notifications { return &Notifications{s: s} }

func (r *Notifications) Create(ctx context.Context, n *entity.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("notifications"); err != nil {
		return err
	}
	cp := *n
	cp.CreatedAt = r.s.stamp(cp.CreatedAt)
	r.s.notifications[n.ID] = &cp
	return nil
}

func (s *Store) hydrateNotification(n *entity.Notification) *entity.Notification {
	cp := *n
	cp.Recipient = s.summary(n.RecipientID)
	if n.SenderID != nil {
		cp.Sender = s.summary(*n.SenderID)
	}
	return &cp
}

func (r *Notifications) FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("notifications"); err != nil {
		return nil, err
	}
	n, ok := r.s.notifications[id]
	if !ok {
		return nil, apperror.ErrNotificationNotFound
	}
	return r.s.hydrateNotification(n), nil
}

func (r *Notifications) ListByRecipient(ctx context.Context, recipientID uuid.UUID, limit int) ([]*entity.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("notifications"); err != nil {
		return nil, err
	}
	var out []*entity.Notification
	for _, n := range r.s.notifications {
		if n.RecipientID == recipientID {
			out = append(out, r.s.hydrateNotification(n))
		}
	}
	sortByCreatedDesc(out, func(n *entity.Notification) time.Time { return n.CreatedAt })
	return limitSlice(out, limit), nil
}

func (r *Notifications) CountUnread(ctx context.Context, recipientID uuid.UUID) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("notifications"); err != nil {
		return 0, err
	}
	n := 0
	for _, item := range r.s.notifications {
		if item.RecipientID == recipientID && !item.Read {
			n++
		}
	}
	return n, nil
}

func (r *Notifications) MarkRead(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("notifications"); err != nil {
		return err
	}
	n, ok := r.s.notifications[id]
	if !ok {
		return apperror.ErrNotificationNotFound
	}
	n.Read = true
	return nil
}

func (r *Notifications) MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("notifications"); err != nil {
		return 0, err
	}
	var changed int64
	for _, n := range r.s.notifications {
		if n.RecipientID == recipientID && !n.Read {
			n.Read = true
			changed++
		}
	}
	return changed, nil
}
