package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/creative-network/internal/pkg/apperror"
)

// Follow — направленное ребро графа подписок.
type Follow struct {
	ID          uuid.UUID
	FollowerID  uuid.UUID
	FollowingID uuid.UUID
	CreatedAt   time.Time
}

func NewFollow(followerID, followingID uuid.UUID) (*Follow, error) {
	if followerID == followingID {
		return nil, apperror.FieldError("userId", "нельзя подписаться на себя")
	}
	return &Follow{
		ID:          uuid.New(),
		FollowerID:  followerID,
		FollowingID: followingID,
		CreatedAt:   time.Now(),
	}, nil
}
