package conversation

import (
	"context"

	"github.com/google/uuid"

	"github.com/ignatzorin/creative-network/internal/domain/capability"
	"github.com/ignatzorin/creative-network/internal/domain/entity"
	"github.com/ignatzorin/creative-network/internal/domain/repository"
	"github.com/ignatzorin/creative-network/internal/domain/session"
	"github.com/ignatzorin/creative-network/internal/logger"
	"github.com/ignatzorin/creative-network/internal/pkg/apperror"
	"github.com/ignatzorin/creative-network/internal/validation"
)

// Realtime-события модуля сообщений.
const (
	EventMessageNew       = "message:new"
	EventConversationRead = "conversation:read"
)

func notProvisioned() error {
	return apperror.NotProvisioned(string(capability.Messaging))
}

// participantConversation загружает беседу и проверяет, что актор в ней участвует.
func participantConversation(ctx context.Context, repo repository.ConversationRepository, actor *session.Actor, id uuid.UUID) (*entity.Conversation, error) {
	conv, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !conv.IsParticipant(actor.ID) {
		return nil, apperror.ErrForbidden
	}
	return conv, nil
}

type GetOrCreateConversationUseCase struct {
	convRepo repository.ConversationRepository
	users    repository.UserRepository
	features capability.Set
}

func NewGetOrCreateConversationUseCase(convRepo repository.ConversationRepository, users repository.UserRepository, features capability.Set) *GetOrCreateConversationUseCase {
	return &GetOrCreateConversationUseCase{convRepo: convRepo, users: users, features: features}
}

// Execute ищет беседу пары в обоих порядках и создаёт (actor, other), если её нет.
func (uc *GetOrCreateConversationUseCase) Execute(ctx context.Context, actor *session.Actor, otherID uuid.UUID) (*entity.Conversation, error) {
	if err := session.Require(actor); err != nil {
		return nil, err
	}
	if otherID == uuid.Nil {
		return nil, apperror.FieldError("userId", "обязательное поле")
	}

	conv, err := entity.NewConversation(actor.ID, otherID)
	if err != nil {
		return nil, err
	}

	if !uc.features.Enabled(capability.Messaging) {
		return nil, notProvisioned()
	}

	if _, err := uc.users.FindByID(ctx, otherID); err != nil {
		return nil, err
	}

	existing, err := uc.convRepo.FindByPair(ctx, actor.ID, otherID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	if err := uc.convRepo.Create(ctx, conv); err != nil {
		if !apperror.IsConflict(err) {
			return nil, err
		}
		// Параллельный запрос уже создал беседу этой пары.
		existing, err = uc.convRepo.FindByPair(ctx, actor.ID, otherID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, apperror.ErrConversationNotFound
		}
		return existing, nil
	}

	return uc.convRepo.FindByID(ctx, conv.ID)
}

// SendMessageInput — тело нового сообщения.
type SendMessageInput struct {
	ConversationID uuid.UUID `json:"conversationId" validate:"required"`
	Content        string    `json:"content" validate:"notblank,max=2000"`
}

type SendMessageUseCase struct {
	convRepo  repository.ConversationRepository
	msgRepo   repository.MessageRepository
	publisher repository.RealtimePublisher
	features  capability.Set
}

func NewSendMessageUseCase(convRepo repository.ConversationRepository, msgRepo repository.MessageRepository, publisher repository.RealtimePublisher, features capability.Set) *SendMessageUseCase {
	return &SendMessageUseCase{convRepo: convRepo, msgRepo: msgRepo, publisher: publisher, features: features}
}

func (uc *SendMessageUseCase) Execute(ctx context.Context, actor *session.Actor, input SendMessageInput) (*entity.Message, error) {
	if err := session.Require(actor); err != nil {
		return nil, err
	}
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if !uc.features.Enabled(capability.Messaging) {
		return nil, notProvisioned()
	}

	conv, err := participantConversation(ctx, uc.convRepo, actor, input.ConversationID)
	if err != nil {
		return nil, err
	}

	msg, err := entity.NewMessage(conv.ID, actor.ID, input.Content)
	if err != nil {
		return nil, err
	}

	if err := uc.msgRepo.Append(ctx, msg); err != nil {
		return nil, err
	}
	msg.Sender = conv.Participant(actor.ID)

	if uc.publisher != nil {
		uc.publisher.Publish(conv.OtherParticipant(actor.ID), EventMessageNew, MessagePayload(msg))
	}
	return msg, nil
}

// MessagePayload — представление сообщения для realtime-канала.
func MessagePayload(m *entity.Message) map[string]any {
	payload := map[string]any{
		"id":             m.ID,
		"conversationId": m.ConversationID,
		"senderId":       m.SenderID,
		"content":        m.Content,
		"read":           m.Read,
		"createdAt":      m.CreatedAt,
	}
	if m.Sender != nil {
		payload["sender"] = map[string]any{"id": m.Sender.ID, "name": m.Sender.Name, "image": m.Sender.Image}
	}
	return payload
}

type LoadThreadUseCase struct {
	convRepo repository.ConversationRepository
	msgRepo  repository.MessageRepository
	features capability.Set
}

func NewLoadThreadUseCase(convRepo repository.ConversationRepository, msgRepo repository.MessageRepository, features capability.Set) *LoadThreadUseCase {
	return &LoadThreadUseCase{convRepo: convRepo, msgRepo: msgRepo, features: features}
}

// Execute только читает: статус прочтения не меняется.
func (uc *LoadThreadUseCase) Execute(ctx context.Context, actor *session.Actor, id uuid.UUID) (*entity.Thread, error) {
	if err := session.Require(actor); err != nil {
		return nil, err
	}
	if !uc.features.Enabled(capability.Messaging) {
		return nil, apperror.ErrConversationNotFound
	}

	conv, err := participantConversation(ctx, uc.convRepo, actor, id)
	if err != nil {
		return nil, err
	}

	messages, err := uc.msgRepo.ListByConversation(ctx, conv.ID)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []*entity.Message{}
	}
	return &entity.Thread{Conversation: conv, Messages: messages}, nil
}

type MarkThreadReadUseCase struct {
	convRepo  repository.ConversationRepository
	msgRepo   repository.MessageRepository
	publisher repository.RealtimePublisher
	features  capability.Set
}

func NewMarkThreadReadUseCase(convRepo repository.ConversationRepository, msgRepo repository.MessageRepository, publisher repository.RealtimePublisher, features capability.Set) *MarkThreadReadUseCase {
	return &MarkThreadReadUseCase{convRepo: convRepo, msgRepo: msgRepo, publisher: publisher, features: features}
}

// Execute помечает прочитанными входящие сообщения и возвращает их число.
func (uc *MarkThreadReadUseCase) Execute(ctx context.Context, actor *session.Actor, id uuid.UUID) (int64, error) {
	if err := session.Require(actor); err != nil {
		return 0, err
	}
	if !uc.features.Enabled(capability.Messaging) {
		return 0, notProvisioned()
	}

	conv, err := participantConversation(ctx, uc.convRepo, actor, id)
	if err != nil {
		return 0, err
	}
	return uc.markRead(ctx, actor, conv)
}

func (uc *MarkThreadReadUseCase) markRead(ctx context.Context, actor *session.Actor, conv *entity.Conversation) (int64, error) {
	marked, err := uc.msgRepo.MarkReadFor(ctx, conv.ID, actor.ID)
	if err != nil {
		return 0, err
	}

	if marked > 0 && uc.publisher != nil {
		uc.publisher.Publish(conv.OtherParticipant(actor.ID), EventConversationRead, map[string]any{
			"conversationId": conv.ID,
			"readerId":       actor.ID,
			"count":          marked,
		})
	}
	return marked, nil
}

type OpenConversationUseCase struct {
	load *LoadThreadUseCase
	mark *MarkThreadReadUseCase
}

func NewOpenConversationUseCase(load *LoadThreadUseCase, mark *MarkThreadReadUseCase) *OpenConversationUseCase {
	return &OpenConversationUseCase{load: load, mark: mark}
}

// Execute загружает беседу и отмечает входящие прочитанными.
// Возвращаемые сообщения отражают состояние после отметки.
func (uc *OpenConversationUseCase) Execute(ctx context.Context, actor *session.Actor, id uuid.UUID) (*entity.Thread, error) {
	thread, err := uc.load.Execute(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	marked, err := uc.mark.markRead(ctx, actor, thread.Conversation)
	if err != nil {
		logger.Log.WithError(err).WithField("conversation_id", id).Warn("не удалось отметить сообщения прочитанными")
		return thread, nil
	}
	if marked > 0 {
		for _, m := range thread.Messages {
			if m.SenderID != actor.ID {
				m.Read = true
			}
		}
	}
	return thread, nil
}

type ListConversationsUseCase struct {
	convRepo repository.ConversationRepository
	features capability.Set
}

func NewListConversationsUseCase(convRepo repository.ConversationRepository, features capability.Set) *ListConversationsUseCase {
	return &ListConversationsUseCase{convRepo: convRepo, features: features}
}

func (uc *ListConversationsUseCase) Execute(ctx context.Context, actor *session.Actor) []*entity.ConversationPreview {
	if !actor.Authenticated() || !uc.features.Enabled(capability.Messaging) {
		return []*entity.ConversationPreview{}
	}

	previews, err := uc.convRepo.ListPreviews(ctx, actor.ID)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", actor.ID).Warn("не удалось получить беседы")
		return []*entity.ConversationPreview{}
	}
	if previews == nil {
		return []*entity.ConversationPreview{}
	}
	return previews
}

type UnreadTotalUseCase struct {
	msgRepo  repository.MessageRepository
	features capability.Set
}

func NewUnreadTotalUseCase(msgRepo repository.MessageRepository, features capability.Set) *UnreadTotalUseCase {
	return &UnreadTotalUseCase{msgRepo: msgRepo, features: features}
}

func (uc *UnreadTotalUseCase) Execute(ctx context.Context, actor *session.Actor) int {
	if !actor.Authenticated() || !uc.features.Enabled(capability.Messaging) {
		return 0
	}

	count, err := uc.msgRepo.CountUnread(ctx, actor.ID)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", actor.ID).Warn("не удалось посчитать непрочитанные сообщения")
		return 0
	}
	return count
}

type UseCases struct {
	GetOrCreate *GetOrCreateConversationUseCase
	Send        *SendMessageUseCase
	Load        *LoadThreadUseCase
	MarkRead    *MarkThreadReadUseCase
	Open        *OpenConversationUseCase
	List        *ListConversationsUseCase
	Unread      *UnreadTotalUseCase
}

func New(convRepo repository.ConversationRepository, msgRepo repository.MessageRepository, users repository.UserRepository, publisher repository.RealtimePublisher, features capability.Set) UseCases {
	load := NewLoadThreadUseCase(convRepo, msgRepo, features)
	mark := NewMarkThreadReadUseCase(convRepo, msgRepo, publisher, features)
	return UseCases{
		GetOrCreate: NewGetOrCreateConversationUseCase(convRepo, users, features),
		Send:        NewSendMessageUseCase(convRepo, msgRepo, publisher, features),
		Load:        load,
		MarkRead:    mark,
		Open:        NewOpenConversationUseCase(load, mark),
		List:        NewListConversationsUseCase(convRepo, features),
		Unread:      NewUnreadTotalUseCase(msgRepo, features),
	}
}
