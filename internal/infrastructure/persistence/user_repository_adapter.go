package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/ignatzorin/creative-network/internal/domain/entity"
	"github.com/ignatzorin/creative-network/internal/pkg/apperror"
	"github.com/ignatzorin/creative-network/internal/repository/common"
)

type UserRepositoryAdapter struct {
	db *sqlx.DB
}

func NewUserRepositoryAdapter(db *sqlx.DB) *UserRepositoryAdapter {
	return &UserRepositoryAdapter{db: db}
}

func (r *UserRepositoryAdapter) Create(ctx context.Context, user *entity.User) error {
	query := `INSERT INTO users (id, email, name, image, bio, skills, tools, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecContext(ctx, query, user.ID, user.Email, user.Name, user.Image, user.Bio,
		pq.StringArray(user.Skills), pq.StringArray(user.Tools), user.PasswordHash, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		if common.IsUniqueViolation(err) {
			return apperror.ErrEmailTaken
		}
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось создать пользователя")
	}
	return nil
}

func (r *UserRepositoryAdapter) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	row, err := common.GetByID[userRow](ctx, r.db, "users", id, apperror.ErrUserNotFound)
	if err != nil {
		return nil, r.wrapLookup(err)
	}
	return row.toEntity(), nil
}

func (r *UserRepositoryAdapter) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	row, err := common.GetByField[userRow](ctx, r.db, "users", "email", email, apperror.ErrUserNotFound)
	if err != nil {
		return nil, r.wrapLookup(err)
	}
	return row.toEntity(), nil
}

func (r *UserRepositoryAdapter) UpdateProfile(ctx context.Context, user *entity.User) error {
	query := `UPDATE users SET name = $2, bio = $3, skills = $4, tools = $5, updated_at = $6 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, user.ID, user.Name, user.Bio,
		pq.StringArray(user.Skills), pq.StringArray(user.Tools), user.UpdatedAt)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось обновить профиль")
	}
	return requireAffected(res, apperror.ErrUserNotFound)
}

func (r *UserRepositoryAdapter) ListExcept(ctx context.Context, excludeID uuid.UUID, limit int) ([]*entity.User, error) {
	var rows []userRow
	query := `SELECT * FROM users WHERE id <> $1 ORDER BY created_at DESC LIMIT $2`
	if err := r.db.SelectContext(ctx, &rows, query, excludeID, limit); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить пользователей")
	}
	result := make([]*entity.User, len(rows))
	for i := range rows {
		result[i] = rows[i].toEntity()
	}
	return result, nil
}

func (r *UserRepositoryAdapter) wrapLookup(err error) error {
	if errors.Is(err, apperror.ErrUserNotFound) {
		return err
	}
	return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить пользователя")
}

type userRow struct {
	ID           uuid.UUID      `db:"id"`
	Email        string         `db:"email"`
	Name         string         `db:"name"`
	Image        sql.NullString `db:"image"`
	Bio          sql.NullString `db:"bio"`
	Skills       pq.StringArray `db:"skills"`
	Tools        pq.StringArray `db:"tools"`
	PasswordHash string         `db:"password_hash"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

func (u *userRow) toEntity() *entity.User {
	skills, tools := []string(u.Skills), []string(u.Tools)
	if skills == nil {
		skills = []string{}
	}
	if tools == nil {
		tools = []string{}
	}
	return &entity.User{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Image:        nullString(u.Image),
		Bio:          nullString(u.Bio),
		Skills:       skills,
		Tools:        tools,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// requireAffected превращает UPDATE/DELETE без затронутых строк в notFound.
func requireAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить число изменённых строк")
	}
	if n == 0 {
		return notFound
	}
	return nil
}
