package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/creative-network/internal/interface/http/dto"
	"github.com/ignatzorin/creative-network/internal/interface/http/response"
	"github.com/ignatzorin/creative-network/internal/usecase/notification"
)

type NotificationHandler struct {
	notifications notification.UseCases
	now           func() time.Time
}

func NewNotificationHandler(notifications notification.UseCases) *NotificationHandler {
	return &NotificationHandler{notifications: notifications, now: time.Now}
}

// List с grouped=true отдаёт группы по давности вместо плоского списка.
func (h *NotificationHandler) List(c *gin.Context) {
	list, err := h.notifications.List.Execute(c.Request.Context(), actorOf(c), parseIntQuery(c, "limit", 0))
	if err != nil {
		response.Error(c, err)
		return
	}

	if c.Query("grouped") == "true" {
		response.Success(c, dto.ToNotificationGroups(notification.GroupByRecency(h.now(), list)))
		return
	}
	response.Success(c, dto.ToNotificationResponses(list))
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	count := h.notifications.Unread.Execute(c.Request.Context(), actorOf(c))
	response.Success(c, dto.UnreadCountResponse{Count: count})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.notifications.MarkRead.Execute(c.Request.Context(), actorOf(c), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"read": true})
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	updated, err := h.notifications.MarkAll.Execute(c.Request.Context(), actorOf(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.MarkReadResponse{Updated: updated})
}
