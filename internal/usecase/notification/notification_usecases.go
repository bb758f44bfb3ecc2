package notification

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/creative-network/internal/domain/capability"
	"github.com/ignatzorin/creative-network/internal/domain/entity"
	"github.com/ignatzorin/creative-network/internal/domain/repository"
	"github.com/ignatzorin/creative-network/internal/domain/session"
	"github.com/ignatzorin/creative-network/internal/domain/valueobject"
	"github.com/ignatzorin/creative-network/internal/logger"
	"github.com/ignatzorin/creative-network/internal/pkg/apperror"
	"github.com/ignatzorin/creative-network/internal/validation"
)

// EventNew отправляется получателю через websocket после сохранения уведомления.
const EventNew = "notification:new"

// Draft описывает уведомление, которое нужно создать.
type Draft struct {
	Type        valueobject.NotificationType
	RecipientID uuid.UUID
	SenderID    *uuid.UUID
	PostID      *uuid.UUID
	Metadata    *string
}

type CreateNotificationUseCase struct {
	repo      repository.NotificationRepository
	publisher repository.RealtimePublisher
	features  capability.Set
}

func NewCreateNotificationUseCase(repo repository.NotificationRepository, publisher repository.RealtimePublisher, features capability.Set) *CreateNotificationUseCase {
	return &CreateNotificationUseCase{repo: repo, publisher: publisher, features: features}
}

// Execute возвращает nil без ошибки, если отправитель совпадает с получателем
// или таблица уведомлений ещё не развёрнута.
func (uc *CreateNotificationUseCase) Execute(ctx context.Context, d Draft) (*entity.Notification, error) {
	if !d.Type.IsValid() {
		return nil, apperror.FieldError("type", "неизвестный тип уведомления")
	}

	n := entity.NewNotification(d.Type, d.RecipientID, d.SenderID, d.PostID, d.Metadata)
	if n == nil {
		return nil, nil
	}

	if !uc.features.Enabled(capability.Notifications) {
		logger.Log.WithField("type", d.Type).Debug("уведомления не развёрнуты, пропускаем")
		return nil, nil
	}

	if err := uc.repo.Create(ctx, n); err != nil {
		return nil, err
	}

	if uc.publisher != nil {
		uc.publisher.Publish(n.RecipientID, EventNew, Payload(n))
	}
	return n, nil
}

// Payload — представление уведомления для realtime-канала.
func Payload(n *entity.Notification) map[string]any {
	return map[string]any{
		"id":        n.ID,
		"type":      n.Type,
		"senderId":  n.SenderID,
		"postId":    n.PostID,
		"metadata":  n.Metadata,
		"read":      n.Read,
		"createdAt": n.CreatedAt,
	}
}

// Notifier — побочный канал мутаций: ошибки логируются и не возвращаются вызывающему.
type Notifier struct {
	create *CreateNotificationUseCase
}

func NewNotifier(create *CreateNotificationUseCase) *Notifier {
	return &Notifier{create: create}
}

func (n *Notifier) Notify(ctx context.Context, d Draft) {
	if _, err := n.create.Execute(ctx, d); err != nil {
		logger.Log.WithError(err).WithFields(logrus.Fields{
			"type":         d.Type,
			"recipient_id": d.RecipientID,
		}).Warn("не удалось создать уведомление")
	}
}

type ListNotificationsUseCase struct {
	repo     repository.NotificationRepository
	features capability.Set
}

func NewListNotificationsUseCase(repo repository.NotificationRepository, features capability.Set) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{repo: repo, features: features}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, actor *session.Actor, limit int) ([]*entity.Notification, error) {
	if !actor.Authenticated() || !uc.features.Enabled(capability.Notifications) {
		return []*entity.Notification{}, nil
	}

	list, err := uc.repo.ListByRecipient(ctx, actor.ID, validation.ClampLimit(limit, validation.DefaultListLimit))
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", actor.ID).Warn("не удалось получить уведомления")
		return []*entity.Notification{}, nil
	}
	return list, nil
}

type UnreadCountUseCase struct {
	repo     repository.NotificationRepository
	features capability.Set
}

func NewUnreadCountUseCase(repo repository.NotificationRepository, features capability.Set) *UnreadCountUseCase {
	return &UnreadCountUseCase{repo: repo, features: features}
}

func (uc *UnreadCountUseCase) Execute(ctx context.Context, actor *session.Actor) int {
	if !actor.Authenticated() || !uc.features.Enabled(capability.Notifications) {
		return 0
	}

	count, err := uc.repo.CountUnread(ctx, actor.ID)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", actor.ID).Warn("не удалось посчитать непрочитанные уведомления")
		return 0
	}
	return count
}

type MarkAsReadUseCase struct {
	repo     repository.NotificationRepository
	features capability.Set
}

func NewMarkAsReadUseCase(repo repository.NotificationRepository, features capability.Set) *MarkAsReadUseCase {
	return &MarkAsReadUseCase{repo: repo, features: features}
}

func (uc *MarkAsReadUseCase) Execute(ctx context.Context, actor *session.Actor, id uuid.UUID) error {
	if err := session.Require(actor); err != nil {
		return err
	}
	if !uc.features.Enabled(capability.Notifications) {
		return apperror.NotProvisioned(string(capability.Notifications))
	}

	n, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !n.IsRecipient(actor.ID) {
		return apperror.ErrForbidden
	}
	if n.Read {
		return nil
	}

	n.MarkRead()
	return uc.repo.MarkRead(ctx, n.ID)
}

type MarkAllAsReadUseCase struct {
	repo     repository.NotificationRepository
	features capability.Set
}

func NewMarkAllAsReadUseCase(repo repository.NotificationRepository, features capability.Set) *MarkAllAsReadUseCase {
	return &MarkAllAsReadUseCase{repo: repo, features: features}
}

// Execute возвращает количество уведомлений, ставших прочитанными.
func (uc *MarkAllAsReadUseCase) Execute(ctx context.Context, actor *session.Actor) (int64, error) {
	if err := session.Require(actor); err != nil {
		return 0, err
	}
	if !uc.features.Enabled(capability.Notifications) {
		return 0, apperror.NotProvisioned(string(capability.Notifications))
	}
	return uc.repo.MarkAllRead(ctx, actor.ID)
}

// UseCases собирает сценарии модуля уведомлений.
type UseCases struct {
	Create   *CreateNotificationUseCase
	Notifier *Notifier
	List     *ListNotificationsUseCase
	Unread   *UnreadCountUseCase
	MarkRead *MarkAsReadUseCase
	MarkAll  *MarkAllAsReadUseCase
}

func New(repo repository.NotificationRepository, publisher repository.RealtimePublisher, features capability.Set) UseCases {
	create := NewCreateNotificationUseCase(repo, publisher, features)
	return UseCases{
		Create:   create,
		Notifier: NewNotifier(create),
		List:     NewListNotificationsUseCase(repo, features),
		Unread:   NewUnreadCountUseCase(repo, features),
		MarkRead: NewMarkAsReadUseCase(repo, features),
		MarkAll:  NewMarkAllAsReadUseCase(repo, features),
	}
}
