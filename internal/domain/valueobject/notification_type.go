package valueobject

import (
	"github.com/ignatzorin/creative-network/internal/pkg/apperror"
)

type NotificationType string

const (
	NotificationLike    NotificationType = "like"
	NotificationComment NotificationType = "comment"
	NotificationConnect NotificationType = "connect"
	// NotificationInsight несёт непрозрачный metadata, сервер его не разбирает.
	NotificationInsight NotificationType = "insight"
)

func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationLike, NotificationComment, NotificationConnect, NotificationInsight:
		return true
	}
	return false
}

func ParseNotificationType(s string) (NotificationType, error) {
	t := NotificationType(s)
	if !t.IsValid() {
		return "", apperror.FieldError("type", "неизвестный тип уведомления")
	}
	return t, nil
}
