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

type ConversationRepositoryAdapter struct {
	db *sqlx.DB
}

func NewConversationRepositoryAdapter(db *sqlx.DB) *ConversationRepositoryAdapter {
	return &ConversationRepositoryAdapter{db: db}
}

const selectConversation = `SELECT c.id, c.user1_id, c.user2_id, c.created_at, c.updated_at,
		u1.name AS user1_name, u1.image AS user1_image,
		u2.name AS user2_name, u2.image AS user2_image
	FROM conversations c
	JOIN users u1 ON u1.id = c.user1_id
	JOIN users u2 ON u2.id = c.user2_id`

// Create полагается на уникальный индекс по неупорядоченной паре:
// проигравший в гонке получает ErrConversationExists.
func (r *ConversationRepositoryAdapter) Create(ctx context.Context, conv *entity.Conversation) error {
	query := `INSERT INTO conversations (id, user1_id, user2_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, conv.ID, conv.User1ID, conv.User2ID, conv.CreatedAt, conv.UpdatedAt)
	if err != nil {
		if common.IsUniqueViolation(err) {
			return apperror.ErrConversationExists
		}
		if common.IsForeignKeyViolation(err) {
			return apperror.ErrUserNotFound
		}
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось создать беседу")
	}
	return nil
}

func (r *ConversationRepositoryAdapter) FindByID(ctx context.Context, id uuid.UUID) (*entity.Conversation, error) {
	var c conversationRow
	if err := r.db.GetContext(ctx, &c, selectConversation+` WHERE c.id = $1`, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.ErrConversationNotFound
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить беседу")
	}
	return c.toEntity(), nil
}

func (r *ConversationRepositoryAdapter) FindByPair(ctx context.Context, userA, userB uuid.UUID) (*entity.Conversation, error) {
	var c conversationRow
	query := selectConversation + `
		WHERE LEAST(c.user1_id, c.user2_id) = LEAST($1::uuid, $2::uuid)
		  AND GREATEST(c.user1_id, c.user2_id) = GREATEST($1::uuid, $2::uuid)`
	if err := r.db.GetContext(ctx, &c, query, userA, userB); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить беседу")
	}
	return c.toEntity(), nil
}

func (r *ConversationRepositoryAdapter) ListPreviews(ctx context.Context, userID uuid.UUID) ([]*entity.ConversationPreview, error) {
	var rows []conversationPreviewRow
	query := `SELECT c.id, c.user1_id, c.user2_id, c.created_at, c.updated_at,
			u1.name AS user1_name, u1.image AS user1_image,
			u2.name AS user2_name, u2.image AS user2_image,
			m.id AS last_id, m.sender_id AS last_sender_id, m.content AS last_content,
			m.read AS last_read, m.created_at AS last_created_at,
			(SELECT COUNT(*) FROM messages um
				WHERE um.conversation_id = c.id AND um.sender_id <> $1 AND um.read = FALSE) AS unread_count
		FROM conversations c
		JOIN users u1 ON u1.id = c.user1_id
		JOIN users u2 ON u2.id = c.user2_id
		LEFT JOIN LATERAL (
			SELECT id, sender_id, content, read, created_at FROM messages
			WHERE conversation_id = c.id
			ORDER BY created_at DESC
			LIMIT 1
		) m ON TRUE
		WHERE c.user1_id = $1 OR c.user2_id = $1
		ORDER BY c.updated_at DESC`
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить беседы")
	}

	result := make([]*entity.ConversationPreview, len(rows))
	for i := range rows {
		conv := rows[i].conversationRow.toEntity()
		preview := &entity.ConversationPreview{
			Conversation: conv,
			OtherUser:    conv.OtherUser(userID),
			UnreadCount:  rows[i].UnreadCount,
		}
		if rows[i].LastID.Valid {
			preview.LatestMessage = &entity.Message{
				ID:             rows[i].LastID.UUID,
				ConversationID: conv.ID,
				SenderID:       rows[i].LastSenderID.UUID,
				Content:        rows[i].LastContent.String,
				Read:           rows[i].LastRead.Bool,
				CreatedAt:      rows[i].LastCreatedAt.Time,
			}
		}
		result[i] = preview
	}
	return result, nil
}

type conversationRow struct {
	ID         uuid.UUID      `db:"id"`
	User1ID    uuid.UUID      `db:"user1_id"`
	User2ID    uuid.UUID      `db:"user2_id"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at"`
	User1Name  string         `db:"user1_name"`
	User1Image sql.NullString `db:"user1_image"`
	User2Name  string         `db:"user2_name"`
	User2Image sql.NullString `db:"user2_image"`
}

func (c *conversationRow) toEntity() *entity.Conversation {
	return &entity.Conversation{
		ID:        c.ID,
		User1ID:   c.User1ID,
		User2ID:   c.User2ID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		User1:     summaryRow{ID: c.User1ID, Name: c.User1Name, Image: c.User1Image}.toEntity(),
		User2:     summaryRow{ID: c.User2ID, Name: c.User2Name, Image: c.User2Image}.toEntity(),
	}
}

type conversationPreviewRow struct {
	conversationRow
	LastID        uuid.NullUUID  `db:"last_id"`
	LastSenderID  uuid.NullUUID  `db:"last_sender_id"`
	LastContent   sql.NullString `db:"last_content"`
	LastRead      sql.NullBool   `db:"last_read"`
	LastCreatedAt sql.NullTime   `db:"last_created_at"`
	UnreadCount   int            `db:"unread_count"`
}

type MessageRepositoryAdapter struct {
	db *sqlx.DB
}

func NewMessageRepositoryAdapter(db *sqlx.DB) *MessageRepositoryAdapter {
	return &MessageRepositoryAdapter{db: db}
}

func (r *MessageRepositoryAdapter) Append(ctx context.Context, msg *entity.Message) error {
	err := common.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		insert := `INSERT INTO messages (id, conversation_id, sender_id, content, read, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)`
		if _, err := tx.ExecContext(ctx, insert, msg.ID, msg.ConversationID, msg.SenderID, msg.Content, msg.Read, msg.CreatedAt); err != nil {
			if common.IsForeignKeyViolation(err) {
				return apperror.ErrConversationNotFound
			}
			return err
		}
		_, err := tx.ExecContext(ctx, `UPDATE conversations SET updated_at = $2 WHERE id = $1`, msg.ConversationID, msg.CreatedAt)
		return err
	})
	if err != nil {
		if errors.Is(err, apperror.ErrConversationNotFound) {
			return apperror.ErrConversationNotFound
		}
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось отправить сообщение")
	}
	return nil
}

func (r *MessageRepositoryAdapter) ListByConversation(ctx context.Context, conversationID uuid.UUID) ([]*entity.Message, error) {
	var rows []messageRow
	query := `SELECT m.id, m.conversation_id, m.sender_id, m.content, m.read, m.created_at,
			u.name AS sender_name, u.image AS sender_image
		FROM messages m
		JOIN users u ON u.id = m.sender_id
		WHERE m.conversation_id = $1
		ORDER BY m.created_at ASC`
	if err := r.db.SelectContext(ctx, &rows, query, conversationID); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить сообщения")
	}
	result := make([]*entity.Message, len(rows))
	for i := range rows {
		result[i] = rows[i].toEntity()
	}
	return result, nil
}

func (r *MessageRepositoryAdapter) MarkReadFor(ctx context.Context, conversationID, readerID uuid.UUID) (int64, error) {
	query := `UPDATE messages SET read = TRUE
		WHERE conversation_id = $1 AND sender_id <> $2 AND read = FALSE`
	res, err := r.db.ExecContext(ctx, query, conversationID, readerID)
	if err != nil {
		return 0, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось отметить сообщения")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось отметить сообщения")
	}
	return n, nil
}

func (r *MessageRepositoryAdapter) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM messages m
		JOIN conversations c ON c.id = m.conversation_id
		WHERE (c.user1_id = $1 OR c.user2_id = $1) AND m.sender_id <> $1 AND m.read = FALSE`
	if err := r.db.GetContext(ctx, &count, query, userID); err != nil {
		return 0, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось посчитать сообщения")
	}
	return count, nil
}

type messageRow struct {
	ID             uuid.UUID      `db:"id"`
	ConversationID uuid.UUID      `db:"conversation_id"`
	SenderID       uuid.UUID      `db:"sender_id"`
	Content        string         `db:"content"`
	Read           bool           `db:"read"`
	CreatedAt      time.Time      `db:"created_at"`
	SenderName     string         `db:"sender_name"`
	SenderImage    sql.NullString `db:"sender_image"`
}

func (m *messageRow) toEntity() *entity.Message {
	return &entity.Message{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		Content:        m.Content,
		Read:           m.Read,
		CreatedAt:      m.CreatedAt,
		Sender:         summaryRow{ID: m.SenderID, Name: m.SenderName, Image: m.SenderImage}.toEntity(),
	}
}
