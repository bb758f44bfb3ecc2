package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/creative-network/internal/domain/capability"
	"github.com/ignatzorin/creative-network/internal/domain/entity"
	"github.com/ignatzorin/creative-network/internal/pkg/apperror"
)

type PostRepositoryAdapter struct {
	db         *sqlx.DB
	selectPost string
}

// NewPostRepositoryAdapter собирает запрос выборки один раз: без таблицы
// комментариев счётчик всегда равен нулю.
func NewPostRepositoryAdapter(db *sqlx.DB, features capability.Set) *PostRepositoryAdapter {
	commentCount := `(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id)`
	if !features.Enabled(capability.Comments) {
		commentCount = `0`
	}
	return &PostRepositoryAdapter{
		db: db,
		selectPost: fmt.Sprintf(`SELECT p.id, p.author_id, p.content, p.image_url, p.created_at, p.updated_at,
			u.name AS author_name, u.image AS author_image,
			(SELECT COUNT(*) FROM likes l WHERE l.post_id = p.id) AS like_count,
			%s AS comment_count
		FROM posts p
		JOIN users u ON u.id = p.author_id`, commentCount),
	}
}

func (r *PostRepositoryAdapter) Create(ctx context.Context, post *entity.Post) error {
	query := `INSERT INTO posts (id, author_id, content, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, post.ID, post.AuthorID, post.Content, post.ImageURL, post.CreatedAt, post.UpdatedAt)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось создать пост")
	}
	return nil
}

func (r *PostRepositoryAdapter) Update(ctx context.Context, post *entity.Post) error {
	query := `UPDATE posts SET content = $2, image_url = $3, updated_at = $4 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, post.ID, post.Content, post.ImageURL, post.UpdatedAt)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось обновить пост")
	}
	return requireAffected(res, apperror.ErrPostNotFound)
}

// Delete удаляет пост; лайки, закладки и комментарии уходят каскадом.
func (r *PostRepositoryAdapter) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось удалить пост")
	}
	return requireAffected(res, apperror.ErrPostNotFound)
}

func (r *PostRepositoryAdapter) FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	var row postRow
	if err := r.db.GetContext(ctx, &row, r.selectPost+` WHERE p.id = $1`, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.ErrPostNotFound
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить пост")
	}
	return row.toEntity(), nil
}

func (r *PostRepositoryAdapter) List(ctx context.Context, limit int) ([]*entity.Post, error) {
	return r.selectPosts(ctx, r.selectPost+` ORDER BY p.created_at DESC LIMIT $1`, limit)
}

func (r *PostRepositoryAdapter) ListByAuthor(ctx context.Context, authorID uuid.UUID, limit int) ([]*entity.Post, error) {
	return r.selectPosts(ctx, r.selectPost+` WHERE p.author_id = $1 ORDER BY p.created_at DESC LIMIT $2`, authorID, limit)
}

// ListBookmarkedBy упорядочен по времени добавления закладки.
func (r *PostRepositoryAdapter) ListBookmarkedBy(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Post, error) {
	query := r.selectPost + ` JOIN bookmarks b ON b.post_id = p.id
		WHERE b.user_id = $1 ORDER BY b.created_at DESC LIMIT $2`
	return r.selectPosts(ctx, query, userID, limit)
}

func (r *PostRepositoryAdapter) CountByAuthors(ctx context.Context, authorIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	if len(authorIDs) == 0 {
		return map[uuid.UUID]int{}, nil
	}
	var rows []countRow
	query := `SELECT author_id AS key, COUNT(*) AS count FROM posts
		WHERE author_id = ANY($1::uuid[]) GROUP BY author_id`
	if err := r.db.SelectContext(ctx, &rows, query, uuidArray(authorIDs)); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось посчитать посты")
	}
	return countMap(rows), nil
}

func (r *PostRepositoryAdapter) selectPosts(ctx context.Context, query string, args ...interface{}) ([]*entity.Post, error) {
	var rows []postRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить посты")
	}
	result := make([]*entity.Post, len(rows))
	for i := range rows {
		result[i] = rows[i].toEntity()
	}
	return result, nil
}

type postRow struct {
	ID           uuid.UUID      `db:"id"`
	AuthorID     uuid.UUID      `db:"author_id"`
	Content      sql.NullString `db:"content"`
	ImageURL     sql.NullString `db:"image_url"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
	AuthorName   string         `db:"author_name"`
	AuthorImage  sql.NullString `db:"author_image"`
	LikeCount    int            `db:"like_count"`
	CommentCount int            `db:"comment_count"`
}

func (p *postRow) toEntity() *entity.Post {
	return &entity.Post{
		ID:           p.ID,
		AuthorID:     p.AuthorID,
		Content:      nullString(p.Content),
		ImageURL:     nullString(p.ImageURL),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		Author:       summaryRow{ID: p.AuthorID, Name: p.AuthorName, Image: p.AuthorImage}.toEntity(),
		LikeCount:    p.LikeCount,
		CommentCount: p.CommentCount,
	}
}
