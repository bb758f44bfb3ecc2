package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/creative-network/internal/interface/http/dto"
	"github.com/ignatzorin/creative-network/internal/interface/http/response"
	"github.com/ignatzorin/creative-network/internal/usecase/follow"
)

type FollowHandler struct {
	follows follow.UseCases
}

func NewFollowHandler(follows follow.UseCases) *FollowHandler {
	return &FollowHandler{follows: follows}
}

func (h *FollowHandler) Follow(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	created, err := h.follows.Follow.Execute(c.Request.Context(), actorOf(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"following": true, "created": created})
}

func (h *FollowHandler) Unfollow(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.follows.Unfollow.Execute(c.Request.Context(), actorOf(c), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"following": false})
}

// Statuses для анонима отвечает пустым объектом.
func (h *FollowHandler) Statuses(c *gin.Context) {
	var req dto.FollowStatusesRequest
	if !bindJSON(c, &req) {
		return
	}
	statuses := h.follows.Statuses.Execute(c.Request.Context(), actorOf(c), req.UserIDs)
	response.Success(c, dto.ToFlagMap(statuses))
}
