package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/ignatzorin/creative-network/internal/domain/entity"
)

type FollowRepository interface {
	// Create возвращает false, если ребро уже было.
	Create(ctx context.Context, follow *entity.Follow) (bool, error)
	Delete(ctx context.Context, followerID, followingID uuid.UUID) error
	Exists(ctx context.Context, followerID, followingID uuid.UUID) (bool, error)
	// FollowingAmong возвращает те targetIDs, на которые подписан followerID.
	FollowingAmong(ctx context.Context, followerID uuid.UUID, targetIDs []uuid.UUID) ([]uuid.UUID, error)
	CountFollowers(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]int, error)
	CountFollowing(ctx context.Context, userID uuid.UUID) (int, error)
}
