package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/creative-network/internal/pkg/apperror"
)

// Conversation — беседа неупорядоченной пары пользователей.
type Conversation struct {
	ID        uuid.UUID
	User1ID   uuid.UUID
	User2ID   uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time

	User1 *UserSummary
	User2 *UserSummary
}

func NewConversation(initiatorID, otherID uuid.UUID) (*Conversation, error) {
	if initiatorID == otherID {
		return nil, apperror.FieldError("userId", "нельзя начать беседу с самим собой")
	}
	now := time.Now()
	return &Conversation{
		ID:        uuid.New(),
		User1ID:   initiatorID,
		User2ID:   otherID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (c *Conversation) IsParticipant(userID uuid.UUID) bool {
	return c.User1ID == userID || c.User2ID == userID
}

// OtherParticipant возвращает собеседника userID.
func (c *Conversation) OtherParticipant(userID uuid.UUID) uuid.UUID {
	if c.User1ID == userID {
		return c.User2ID
	}
	return c.User1ID
}

// OtherUser возвращает отображаемые поля собеседника, если они загружены.
func (c *Conversation) OtherUser(userID uuid.UUID) *UserSummary {
	if c.User1ID == userID {
		return c.User2
	}
	return c.User1
}

// Participant возвращает отображаемые поля самого userID.
func (c *Conversation) Participant(userID uuid.UUID) *UserSummary {
	if c.User1ID == userID {
		return c.User1
	}
	return c.User2
}

type Message struct {
	ID             uuid.UUID
	ConversationID uuid.UUID
	SenderID       uuid.UUID
	Content        string
	Read           bool
	CreatedAt      time.Time

	Sender *UserSummary
}

func NewMessage(conversationID, senderID uuid.UUID, content string) (*Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperror.FieldError("content", "сообщение не может быть пустым")
	}
	return &Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Content:        content,
		CreatedAt:      time.Now(),
	}, nil
}

func (m *Message) IsOwnedBy(userID uuid.UUID) bool {
	return m.SenderID == userID
}

// ConversationPreview — строка списка бесед.
type ConversationPreview struct {
	Conversation  *Conversation
	OtherUser     *UserSummary
	LatestMessage *Message
	UnreadCount   int
}

// Thread — беседа с сообщениями в хронологическом порядке.
type Thread struct {
	Conversation *Conversation
	Messages     []*Message
}
