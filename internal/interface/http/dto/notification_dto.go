package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/creative-network/internal/domain/entity"
	"github.com/ignatzorin/creative-network/internal/domain/valueobject"
	"github.com/ignatzorin/creative-network/internal/usecase/notification"
)

type NotificationResponse struct {
	ID        uuid.UUID                    `json:"id"`
	Type      valueobject.NotificationType `json:"type"`
	SenderID  *uuid.UUID                   `json:"senderId"`
	PostID    *uuid.UUID                   `json:"postId"`
	Metadata  *string                      `json:"metadata"`
	Read      bool                         `json:"read"`
	CreatedAt time.Time                    `json:"createdAt"`
	Sender    *UserSummaryResponse         `json:"sender"`
}

type NotificationGroupResponse struct {
	Bucket notification.Bucket    `json:"bucket"`
	Label  string                 `json:"label"`
	Items  []NotificationResponse `json:"items"`
}

type UnreadCountResponse struct {
	Count int `json:"count"`
}

func ToNotificationResponse(n *entity.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Type:      n.Type,
		SenderID:  n.SenderID,
		PostID:    n.PostID,
		Metadata:  n.Metadata,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
		Sender:    ToUserSummary(n.Sender),
	}
}

func ToNotificationResponses(list []*entity.Notification) []NotificationResponse {
	result := make([]NotificationResponse, len(list))
	for i, n := range list {
		result[i] = ToNotificationResponse(n)
	}
	return result
}

func ToNotificationGroups(groups []notification.Group) []NotificationGroupResponse {
	result := make([]NotificationGroupResponse, len(groups))
	for i, g := range groups {
		result[i] = NotificationGroupResponse{
			Bucket: g.Bucket,
			Label:  g.Label,
			Items:  ToNotificationResponses(g.Items),
		}
	}
	return result
}
