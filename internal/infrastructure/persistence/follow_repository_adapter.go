package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/creative-network/internal/domain/entity"
	"github.com/ignatzorin/creative-network/internal/pkg/apperror"
	"github.com/ignatzorin/creative-network/internal/repository/common"
)

type FollowRepositoryAdapter struct {
	db *sqlx.DB
}

func NewFollowRepositoryAdapter(db *sqlx.DB) *FollowRepositoryAdapter {
	return &FollowRepositoryAdapter{db: db}
}

func (r *FollowRepositoryAdapter) Create(ctx context.Context, follow *entity.Follow) (bool, error) {
	query := `INSERT INTO follows (id, follower_id, following_id, created_at) VALUES ($1, $2, $3, $4)
		ON CONFLICT (follower_id, following_id) DO NOTHING`
	res, err := r.db.ExecContext(ctx, query, follow.ID, follow.FollowerID, follow.FollowingID, follow.CreatedAt)
	if err != nil {
		if common.IsForeignKeyViolation(err) {
			return false, apperror.ErrUserNotFound
		}
		return false, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось оформить подписку")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось оформить подписку")
	}
	return n > 0, nil
}

// Delete не считает отсутствие подписки ошибкой.
func (r *FollowRepositoryAdapter) Delete(ctx context.Context, followerID, followingID uuid.UUID) error {
	query := `DELETE FROM follows WHERE follower_id = $1 AND following_id = $2`
	if _, err := r.db.ExecContext(ctx, query, followerID, followingID); err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось отменить подписку")
	}
	return nil
}

func (r *FollowRepositoryAdapter) Exists(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM follows WHERE follower_id = $1 AND following_id = $2)`
	if err := r.db.GetContext(ctx, &exists, query, followerID, followingID); err != nil {
		return false, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось проверить подписку")
	}
	return exists, nil
}

func (r *FollowRepositoryAdapter) FollowingAmong(ctx context.Context, followerID uuid.UUID, targetIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(targetIDs) == 0 {
		return nil, nil
	}
	var ids []uuid.UUID
	query := `SELECT following_id FROM follows WHERE follower_id = $1 AND following_id = ANY($2::uuid[])`
	if err := r.db.SelectContext(ctx, &ids, query, followerID, uuidArray(targetIDs)); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить подписки")
	}
	return ids, nil
}

func (r *FollowRepositoryAdapter) CountFollowers(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	if len(userIDs) == 0 {
		return map[uuid.UUID]int{}, nil
	}
	var rows []countRow
	query := `SELECT following_id AS key, COUNT(*) AS count FROM follows
		WHERE following_id = ANY($1::uuid[]) GROUP BY following_id`
	if err := r.db.SelectContext(ctx, &rows, query, uuidArray(userIDs)); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось посчитать подписчиков")
	}
	return countMap(rows), nil
}

func (r *FollowRepositoryAdapter) CountFollowing(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM follows WHERE follower_id = $1`, userID); err != nil {
		return 0, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось посчитать подписки")
	}
	return count, nil
}
