package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/creative-network/internal/domain/entity"
	"github.com/ignatzorin/creative-network/internal/pkg/apperror"
	"github.com/ignatzorin/creative-network/internal/repository/common"
)

type PortfolioRepositoryAdapter struct {
	db *sqlx.DB
}

func NewPortfolioRepositoryAdapter(db *sqlx.DB) *PortfolioRepositoryAdapter {
	return &PortfolioRepositoryAdapter{db: db}
}

func (r *PortfolioRepositoryAdapter) Create(ctx context.Context, item *entity.PortfolioItem) error {
	query := `INSERT INTO portfolio_items (id, user_id, image_url, title, description, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecContext(ctx, query, item.ID, item.UserID, item.ImageURL, item.Title, item.Description,
		item.Order, item.CreatedAt, item.UpdatedAt)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось добавить работу в портфолио")
	}
	return nil
}

func (r *PortfolioRepositoryAdapter) Update(ctx context.Context, item *entity.PortfolioItem) error {
	query := `UPDATE portfolio_items SET image_url = $2, title = $3, description = $4, sort_order = $5, updated_at = $6
		WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, item.ID, item.ImageURL, item.Title, item.Description, item.Order, item.UpdatedAt)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось обновить работу портфолио")
	}
	return requireAffected(res, apperror.ErrPortfolioItemNotFound)
}

func (r *PortfolioRepositoryAdapter) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM portfolio_items WHERE id = $1`, id)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось удалить работу портфолио")
	}
	return requireAffected(res, apperror.ErrPortfolioItemNotFound)
}

func (r *PortfolioRepositoryAdapter) FindByID(ctx context.Context, id uuid.UUID) (*entity.PortfolioItem, error) {
	row, err := common.GetByID[portfolioRow](ctx, r.db, "portfolio_items", id, apperror.ErrPortfolioItemNotFound)
	if err != nil {
		if errors.Is(err, apperror.ErrPortfolioItemNotFound) {
			return nil, err
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить работу портфолио")
	}
	return row.toEntity(), nil
}

func (r *PortfolioRepositoryAdapter) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PortfolioItem, error) {
	var rows []portfolioRow
	query := `SELECT * FROM portfolio_items WHERE user_id = $1 ORDER BY sort_order ASC, created_at ASC`
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить портфолио")
	}
	result := make([]*entity.PortfolioItem, len(rows))
	for i := range rows {
		result[i] = rows[i].toEntity()
	}
	return result, nil
}

func (r *PortfolioRepositoryAdapter) MaxOrder(ctx context.Context, userID uuid.UUID) (*int, error) {
	var highest sql.NullInt64
	if err := r.db.GetContext(ctx, &highest, `SELECT MAX(sort_order) FROM portfolio_items WHERE user_id = $1`, userID); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить порядок портфолио")
	}
	return nullInt(highest), nil
}

type portfolioRow struct {
	ID          uuid.UUID      `db:"id"`
	UserID      uuid.UUID      `db:"user_id"`
	ImageURL    string         `db:"image_url"`
	Title       sql.NullString `db:"title"`
	Description sql.NullString `db:"description"`
	SortOrder   int            `db:"sort_order"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (p *portfolioRow) toEntity() *entity.PortfolioItem {
	return &entity.PortfolioItem{
		ID:          p.ID,
		UserID:      p.UserID,
		ImageURL:    p.ImageURL,
		Title:       nullString(p.Title),
		Description: nullString(p.Description),
		Order:       p.SortOrder,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func nullInt(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}
