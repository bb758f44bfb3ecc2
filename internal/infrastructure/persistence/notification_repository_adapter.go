package persistence

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/creative-network/internal/domain/entity"
	"github.com/ignatzorin/creative-network/internal/domain/valueobject"
	"github.com/ignatzorin/creative-network/internal/pkg/apperror"
)

type NotificationRepositoryAdapter struct {
	db *sqlx.DB
}

func NewNotificationRepositoryAdapter(db *sqlx.DB) *NotificationRepositoryAdapter {
	return &NotificationRepositoryAdapter{db: db}
}

const selectNotification = `SELECT n.id, n.type, n.recipient_id, n.sender_id, n.post_id, n.metadata, n.read, n.created_at,
		r.name AS recipient_name, r.image AS recipient_image,
		s.id AS sender_ref, s.name AS sender_name, s.image AS sender_image
	FROM notifications n
	JOIN users r ON r.id = n.recipient_id
	LEFT JOIN users s ON s.id = n.sender_id`

func (r *NotificationRepositoryAdapter) Create(ctx context.Context, n *entity.Notification) error {
	query := `INSERT INTO notifications (id, type, recipient_id, sender_id, post_id, metadata, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecContext(ctx, query, n.ID, string(n.Type), n.RecipientID, n.SenderID, n.PostID, n.Metadata, n.Read, n.CreatedAt)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось создать уведомление")
	}
	return nil
}

func (r *NotificationRepositoryAdapter) FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	var row notificationRow
	if err := r.db.GetContext(ctx, &row, selectNotification+` WHERE n.id = $1`, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.ErrNotificationNotFound
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить уведомление")
	}
	return row.toEntity(), nil
}

func (r *NotificationRepositoryAdapter) ListByRecipient(ctx context.Context, recipientID uuid.UUID, limit int) ([]*entity.Notification, error) {
	var rows []notificationRow
	query := selectNotification + ` WHERE n.recipient_id = $1 ORDER BY n.created_at DESC LIMIT $2`
	if err := r.db.SelectContext(ctx, &rows, query, recipientID, limit); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить уведомления")
	}
	result := make([]*entity.Notification, len(rows))
	for i := range rows {
		result[i] = rows[i].toEntity()
	}
	return result, nil
}

func (r *NotificationRepositoryAdapter) CountUnread(ctx context.Context, recipientID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM notifications WHERE recipient_id = $1 AND read = FALSE`
	if err := r.db.GetContext(ctx, &count, query, recipientID); err != nil {
		return 0, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось посчитать уведомления")
	}
	return count, nil
}

func (r *NotificationRepositoryAdapter) MarkRead(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `UPDATE notifications SET read = TRUE WHERE id = $1`, id)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось отметить уведомление")
	}
	return requireAffected(res, apperror.ErrNotificationNotFound)
}

func (r *NotificationRepositoryAdapter) MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE notifications SET read = TRUE WHERE recipient_id = $1 AND read = FALSE`, recipientID)
	if err != nil {
		return 0, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось отметить уведомления")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось отметить уведомления")
	}
	return n, nil
}

type notificationRow struct {
	ID             uuid.UUID      `db:"id"`
	Type           string         `db:"type"`
	RecipientID    uuid.UUID      `db:"recipient_id"`
	SenderID       uuid.NullUUID  `db:"sender_id"`
	PostID         uuid.NullUUID  `db:"post_id"`
	Metadata       sql.NullString `db:"metadata"`
	Read           bool           `db:"read"`
	CreatedAt      time.Time      `db:"created_at"`
	RecipientName  string         `db:"recipient_name"`
	RecipientImage sql.NullString `db:"recipient_image"`
	SenderRef      uuid.NullUUID  `db:"sender_ref"`
	SenderName     sql.NullString `db:"sender_name"`
	SenderImage    sql.NullString `db:"sender_image"`
}

func (n *notificationRow) toEntity() *entity.Notification {
	return &entity.Notification{
		ID:          n.ID,
		Type:        valueobject.NotificationType(n.Type),
		RecipientID: n.RecipientID,
		SenderID:    nullUUID(n.SenderID),
		PostID:      nullUUID(n.PostID),
		Metadata:    nullString(n.Metadata),
		Read:        n.Read,
		CreatedAt:   n.CreatedAt,
		Sender:      nullableSummary(n.SenderRef, n.SenderName, n.SenderImage),
		Recipient:   summaryRow{ID: n.RecipientID, Name: n.RecipientName, Image: n.RecipientImage}.toEntity(),
	}
}
