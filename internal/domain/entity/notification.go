package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/creative-network/internal/domain/valueobject"
)

type Notification struct {
	ID          uuid.UUID
	Type        valueobject.NotificationType
	RecipientID uuid.UUID
	SenderID    *uuid.UUID
	PostID      *uuid.UUID
	Metadata    *string
	Read        bool
	CreatedAt   time.Time

	Sender    *UserSummary
	Recipient *UserSummary
}

// NewNotification возвращает nil, если отправитель совпадает с получателем.
func NewNotification(t valueobject.NotificationType, recipientID uuid.UUID, senderID, postID *uuid.UUID, metadata *string) *Notification {
	if senderID != nil && *senderID == recipientID {
		return nil
	}
	return &Notification{
		ID:          uuid.New(),
		Type:        t,
		RecipientID: recipientID,
		SenderID:    senderID,
		PostID:      postID,
		Metadata:    metadata,
		CreatedAt:   time.Now(),
	}
}

func (n *Notification) IsRecipient(userID uuid.UUID) bool {
	return n.RecipientID == userID
}

// MarkRead монотонен: прочитанное уведомление не возвращается в непрочитанные.
func (n *Notification) MarkRead() {
	n.Read = true
}
