package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ignatzorin/creative-network/internal/interface/http/dto"
	"github.com/ignatzorin/creative-network/internal/interface/http/response"
	"github.com/ignatzorin/creative-network/internal/usecase/conversation"
)

type ConversationHandler struct {
	conversations conversation.UseCases
}

func NewConversationHandler(conversations conversation.UseCases) *ConversationHandler {
	return &ConversationHandler{conversations: conversations}
}

func (h *ConversationHandler) List(c *gin.Context) {
	previews := h.conversations.List.Execute(c.Request.Context(), actorOf(c))
	response.Success(c, dto.ToPreviewResponses(previews))
}

func (h *ConversationHandler) Start(c *gin.Context) {
	var req dto.StartConversationRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.UserID == uuid.Nil {
		response.BadRequest(c, "userId обязателен")
		return
	}

	conv, err := h.conversations.GetOrCreate.Execute(c.Request.Context(), actorOf(c), req.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToConversationResponse(conv))
}

// Open отдаёт переписку и помечает входящие сообщения прочитанными.
func (h *ConversationHandler) Open(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	thread, err := h.conversations.Open.Execute(c.Request.Context(), actorOf(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToThreadResponse(thread))
}

// Messages только читает переписку, статус прочтения не меняется.
func (h *ConversationHandler) Messages(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	thread, err := h.conversations.Load.Execute(c.Request.Context(), actorOf(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToMessageResponses(thread.Messages))
}

func (h *ConversationHandler) Send(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.SendMessageRequest
	if !bindJSON(c, &req) {
		return
	}

	msg, err := h.conversations.Send.Execute(c.Request.Context(), actorOf(c), conversation.SendMessageInput{
		ConversationID: id,
		Content:        req.Content,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.ToMessageResponse(msg))
}

func (h *ConversationHandler) MarkRead(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	updated, err := h.conversations.MarkRead.Execute(c.Request.Context(), actorOf(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.MarkReadResponse{Updated: updated})
}

func (h *ConversationHandler) UnreadCount(c *gin.Context) {
	count := h.conversations.Unread.Execute(c.Request.Context(), actorOf(c))
	response.Success(c, dto.UnreadCountResponse{Count: count})
}
