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

type MoodBoardRepositoryAdapter struct {
	db *sqlx.DB
}

func NewMoodBoardRepositoryAdapter(db *sqlx.DB) *MoodBoardRepositoryAdapter {
	return &MoodBoardRepositoryAdapter{db: db}
}

func (r *MoodBoardRepositoryAdapter) Create(ctx context.Context, board *entity.MoodBoard) error {
	query := `INSERT INTO mood_boards (id, owner_id, title, description, is_public, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query, board.ID, board.OwnerID, board.Title, board.Description,
		board.IsPublic, board.CreatedAt, board.UpdatedAt)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось создать мудборд")
	}
	return nil
}

func (r *MoodBoardRepositoryAdapter) FindByID(ctx context.Context, id uuid.UUID) (*entity.MoodBoard, error) {
	row, err := common.GetByID[moodBoardRow](ctx, r.db, "mood_boards", id, apperror.ErrMoodBoardNotFound)
	if err != nil {
		if errors.Is(err, apperror.ErrMoodBoardNotFound) {
			return nil, err
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить мудборд")
	}
	return row.toEntity(), nil
}

// ListByOwner читает доски и их превью двумя запросами.
func (r *MoodBoardRepositoryAdapter) ListByOwner(ctx context.Context, ownerID uuid.UUID, previewSize int) ([]*entity.MoodBoard, error) {
	var rows []moodBoardListRow
	query := `SELECT b.*, (SELECT COUNT(*) FROM mood_board_items i WHERE i.mood_board_id = b.id) AS item_count
		FROM mood_boards b
		WHERE b.owner_id = $1
		ORDER BY b.updated_at DESC`
	if err := r.db.SelectContext(ctx, &rows, query, ownerID); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить мудборды")
	}
	if len(rows) == 0 {
		return []*entity.MoodBoard{}, nil
	}

	boards := make([]*entity.MoodBoard, len(rows))
	byID := make(map[uuid.UUID]*entity.MoodBoard, len(rows))
	ids := make([]uuid.UUID, len(rows))
	for i := range rows {
		b := rows[i].moodBoardRow.toEntity()
		b.ItemCount = rows[i].ItemCount
		b.PreviewItems = []*entity.MoodBoardItem{}
		boards[i], byID[b.ID], ids[i] = b, b, b.ID
	}

	if previewSize <= 0 {
		return boards, nil
	}
	var items []moodBoardItemRow
	previewQuery := `SELECT id, mood_board_id, post_id, portfolio_item_id, image_url, sort_order, created_at
		FROM (
			SELECT i.*, ROW_NUMBER() OVER (PARTITION BY i.mood_board_id ORDER BY i.sort_order, i.created_at) AS rn
			FROM mood_board_items i
			WHERE i.mood_board_id = ANY($1::uuid[])
		) ranked
		WHERE rn <= $2
		ORDER BY mood_board_id, sort_order, created_at`
	if err := r.db.SelectContext(ctx, &items, previewQuery, uuidArray(ids), previewSize); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить элементы мудбордов")
	}
	for i := range items {
		if b, ok := byID[items[i].MoodBoardID]; ok {
			b.PreviewItems = append(b.PreviewItems, items[i].toEntity())
		}
	}
	return boards, nil
}

func (r *MoodBoardRepositoryAdapter) AddItem(ctx context.Context, item *entity.MoodBoardItem) error {
	err := common.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		insert := `INSERT INTO mood_board_items (id, mood_board_id, post_id, portfolio_item_id, image_url, sort_order, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`
		if _, err := tx.ExecContext(ctx, insert, item.ID, item.MoodBoardID, item.PostID, item.PortfolioItemID,
			item.ImageURL, item.Order, item.CreatedAt); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, `UPDATE mood_boards SET updated_at = $2 WHERE id = $1`, item.MoodBoardID, item.CreatedAt)
		if err != nil {
			return err
		}
		return requireAffected(res, apperror.ErrMoodBoardNotFound)
	})
	if err != nil {
		if errors.Is(err, apperror.ErrMoodBoardNotFound) || common.IsForeignKeyViolation(err) {
			return apperror.ErrMoodBoardNotFound
		}
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось добавить элемент в мудборд")
	}
	return nil
}

func (r *MoodBoardRepositoryAdapter) MaxItemOrder(ctx context.Context, moodBoardID uuid.UUID) (*int, error) {
	var highest sql.NullInt64
	query := `SELECT MAX(sort_order) FROM mood_board_items WHERE mood_board_id = $1`
	if err := r.db.GetContext(ctx, &highest, query, moodBoardID); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить порядок мудборда")
	}
	return nullInt(highest), nil
}

func (r *MoodBoardRepositoryAdapter) BoardsContainingPost(ctx context.Context, ownerID, postID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	query := `SELECT DISTINCT b.id FROM mood_boards b
		JOIN mood_board_items i ON i.mood_board_id = b.id
		WHERE b.owner_id = $1 AND i.post_id = $2`
	if err := r.db.SelectContext(ctx, &ids, query, ownerID, postID); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось проверить сохранение поста")
	}
	return ids, nil
}

type moodBoardRow struct {
	ID          uuid.UUID      `db:"id"`
	OwnerID     uuid.UUID      `db:"owner_id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	IsPublic    bool           `db:"is_public"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (m *moodBoardRow) toEntity() *entity.MoodBoard {
	return &entity.MoodBoard{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Title:       m.Title,
		Description: nullString(m.Description),
		IsPublic:    m.IsPublic,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

type moodBoardListRow struct {
	moodBoardRow
	ItemCount int `db:"item_count"`
}

type moodBoardItemRow struct {
	ID              uuid.UUID      `db:"id"`
	MoodBoardID     uuid.UUID      `db:"mood_board_id"`
	PostID          uuid.NullUUID  `db:"post_id"`
	PortfolioItemID uuid.NullUUID  `db:"portfolio_item_id"`
	ImageURL        sql.NullString `db:"image_url"`
	SortOrder       int            `db:"sort_order"`
	CreatedAt       time.Time      `db:"created_at"`
}

func (i *moodBoardItemRow) toEntity() *entity.MoodBoardItem {
	return &entity.MoodBoardItem{
		ID:              i.ID,
		MoodBoardID:     i.MoodBoardID,
		PostID:          nullUUID(i.PostID),
		PortfolioItemID: nullUUID(i.PortfolioItemID),
		ImageURL:        nullString(i.ImageURL),
		Order:           i.SortOrder,
		CreatedAt:       i.CreatedAt,
	}
}
