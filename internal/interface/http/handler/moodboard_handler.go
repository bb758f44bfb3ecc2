package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/creative-network/internal/interface/http/dto"
	"github.com/ignatzorin/creative-network/internal/interface/http/response"
	"github.com/ignatzorin/creative-network/internal/usecase/moodboard"
)

type MoodBoardHandler struct {
	boards moodboard.UseCases
}

func NewMoodBoardHandler(boards moodboard.UseCases) *MoodBoardHandler {
	return &MoodBoardHandler{boards: boards}
}

func (h *MoodBoardHandler) List(c *gin.Context) {
	boards := h.boards.List.Execute(c.Request.Context(), actorOf(c))
	response.Success(c, dto.ToMoodBoardResponses(boards))
}

func (h *MoodBoardHandler) Create(c *gin.Context) {
	var req moodboard.CreateMoodBoardInput
	if !bindJSON(c, &req) {
		return
	}

	board, err := h.boards.Create.Execute(c.Request.Context(), actorOf(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.ToMoodBoardResponse(board))
}

func (h *MoodBoardHandler) AddItem(c *gin.Context) {
	var req moodboard.AddItemInput
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.boards.AddItem.Execute(c.Request.Context(), actorOf(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.ToMoodBoardItemResponse(item))
}

func (h *MoodBoardHandler) Saved(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	response.Success(c, h.boards.IsSaved.Execute(c.Request.Context(), actorOf(c), id))
}
