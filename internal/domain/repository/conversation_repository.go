package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/ignatzorin/creative-network/internal/domain/entity"
)

type ConversationRepository interface {
	Create(ctx context.Context, conv *entity.Conversation) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Conversation, error)
	// FindByPair ищет беседу в обоих порядках участников, nil если её нет.
	FindByPair(ctx context.Context, userA, userB uuid.UUID) (*entity.Conversation, error)
	// ListPreviews упорядочен по updated_at убыванию.
	ListPreviews(ctx context.Context, userID uuid.UUID) ([]*entity.ConversationPreview, error)
}

type MessageRepository interface {
	// Append сохраняет сообщение и сдвигает updated_at беседы в одной транзакции.
	Append(ctx context.Context, msg *entity.Message) error
	ListByConversation(ctx context.Context, conversationID uuid.UUID) ([]*entity.Message, error)
	// MarkReadFor помечает прочитанными сообщения собеседника readerID.
	MarkReadFor(ctx context.Context, conversationID, readerID uuid.UUID) (int64, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
}
