package persistence

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/creative-network/internal/domain/entity"
	"github.com/ignatzorin/creative-network/internal/pkg/apperror"
	"github.com/ignatzorin/creative-network/internal/repository/common"
)

// pairTable хранит уникальные пары (пост, пользователь): лайки и закладки.
type pairTable struct {
	db    *sqlx.DB
	table string
	noun  string
}

// insert возвращает false, если пара уже была. Конкурентные вставки
// разрешаются уникальным индексом.
func (t pairTable) insert(ctx context.Context, id, postID, userID uuid.UUID, createdAt time.Time) (bool, error) {
	query := `INSERT INTO ` + t.table + ` (id, post_id, user_id, created_at) VALUES ($1, $2, $3, $4)
		ON CONFLICT (post_id, user_id) DO NOTHING`
	res, err := t.db.ExecContext(ctx, query, id, postID, userID, createdAt)
	if err != nil {
		if common.IsForeignKeyViolation(err) {
			return false, apperror.ErrPostNotFound
		}
		return false, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось сохранить "+t.noun)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось сохранить "+t.noun)
	}
	return n > 0, nil
}

func (t pairTable) remove(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	res, err := t.db.ExecContext(ctx, `DELETE FROM `+t.table+` WHERE post_id = $1 AND user_id = $2`, postID, userID)
	if err != nil {
		return false, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось удалить "+t.noun)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось удалить "+t.noun)
	}
	return n > 0, nil
}

func (t pairTable) exists(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM ` + t.table + ` WHERE post_id = $1 AND user_id = $2)`
	if err := t.db.GetContext(ctx, &exists, query, postID, userID); err != nil {
		return false, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось проверить "+t.noun)
	}
	return exists, nil
}

type LikeRepositoryAdapter struct {
	pairs pairTable
}

func NewLikeRepositoryAdapter(db *sqlx.DB) *LikeRepositoryAdapter {
	return &LikeRepositoryAdapter{pairs: pairTable{db: db, table: "likes", noun: "лайк"}}
}

func (r *LikeRepositoryAdapter) Add(ctx context.Context, like *entity.Like) (bool, error) {
	return r.pairs.insert(ctx, like.ID, like.PostID, like.UserID, like.CreatedAt)
}

func (r *LikeRepositoryAdapter) Remove(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	return r.pairs.remove(ctx, postID, userID)
}

func (r *LikeRepositoryAdapter) Exists(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	return r.pairs.exists(ctx, postID, userID)
}

func (r *LikeRepositoryAdapter) Count(ctx context.Context, postID uuid.UUID) (int, error) {
	var count int
	if err := r.pairs.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM likes WHERE post_id = $1`, postID); err != nil {
		return 0, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось посчитать лайки")
	}
	return count, nil
}

func (r *LikeRepositoryAdapter) CountByPosts(ctx context.Context, postIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	if len(postIDs) == 0 {
		return map[uuid.UUID]int{}, nil
	}
	var rows []countRow
	query := `SELECT post_id AS key, COUNT(*) AS count FROM likes
		WHERE post_id = ANY($1::uuid[]) GROUP BY post_id`
	if err := r.pairs.db.SelectContext(ctx, &rows, query, uuidArray(postIDs)); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось посчитать лайки")
	}
	return countMap(rows), nil
}

type BookmarkRepositoryAdapter struct {
	pairs pairTable
}

func NewBookmarkRepositoryAdapter(db *sqlx.DB) *BookmarkRepositoryAdapter {
	return &BookmarkRepositoryAdapter{pairs: pairTable{db: db, table: "bookmarks", noun: "закладку"}}
}

func (r *BookmarkRepositoryAdapter) Add(ctx context.Context, bookmark *entity.Bookmark) (bool, error) {
	return r.pairs.insert(ctx, bookmark.ID, bookmark.PostID, bookmark.UserID, bookmark.CreatedAt)
}

func (r *BookmarkRepositoryAdapter) Remove(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	return r.pairs.remove(ctx, postID, userID)
}

func (r *BookmarkRepositoryAdapter) Exists(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	return r.pairs.exists(ctx, postID, userID)
}

type CommentRepositoryAdapter struct {
	db *sqlx.DB
}

func NewCommentRepositoryAdapter(db *sqlx.DB) *CommentRepositoryAdapter {
	return &CommentRepositoryAdapter{db: db}
}

const selectComment = `SELECT c.id, c.post_id, c.user_id, c.content, c.created_at,
		u.name AS user_name, u.image AS user_image
	FROM comments c
	JOIN users u ON u.id = c.user_id`

func (r *CommentRepositoryAdapter) Create(ctx context.Context, comment *entity.Comment) error {
	query := `INSERT INTO comments (id, post_id, user_id, content, created_at) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, comment.ID, comment.PostID, comment.UserID, comment.Content, comment.CreatedAt)
	if err != nil {
		if common.IsForeignKeyViolation(err) {
			return apperror.ErrPostNotFound
		}
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось создать комментарий")
	}
	return nil
}

func (r *CommentRepositoryAdapter) FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	var row commentRow
	if err := r.db.GetContext(ctx, &row, selectComment+` WHERE c.id = $1`, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.ErrCommentNotFound
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить комментарий")
	}
	return row.toEntity(), nil
}

func (r *CommentRepositoryAdapter) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось удалить комментарий")
	}
	return requireAffected(res, apperror.ErrCommentNotFound)
}

func (r *CommentRepositoryAdapter) ListByPost(ctx context.Context, postID uuid.UUID) ([]*entity.Comment, error) {
	var rows []commentRow
	if err := r.db.SelectContext(ctx, &rows, selectComment+` WHERE c.post_id = $1 ORDER BY c.created_at ASC`, postID); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить комментарии")
	}
	result := make([]*entity.Comment, len(rows))
	for i := range rows {
		result[i] = rows[i].toEntity()
	}
	return result, nil
}

type commentRow struct {
	ID        uuid.UUID      `db:"id"`
	PostID    uuid.UUID      `db:"post_id"`
	UserID    uuid.UUID      `db:"user_id"`
	Content   string         `db:"content"`
	CreatedAt time.Time      `db:"created_at"`
	UserName  string         `db:"user_name"`
	UserImage sql.NullString `db:"user_image"`
}

func (c *commentRow) toEntity() *entity.Comment {
	return &entity.Comment{
		ID:        c.ID,
		PostID:    c.PostID,
		UserID:    c.UserID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		User:      summaryRow{ID: c.UserID, Name: c.UserName, Image: c.UserImage}.toEntity(),
	}
}
