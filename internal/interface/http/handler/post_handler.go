package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/creative-network/internal/interface/http/dto"
	"github.com/ignatzorin/creative-network/internal/interface/http/response"
	"github.com/ignatzorin/creative-network/internal/usecase/interaction"
	"github.com/ignatzorin/creative-network/internal/usecase/post"
)

// PostHandler обслуживает посты, лайки, закладки и комментарии.
type PostHandler struct {
	posts        post.UseCases
	interactions interaction.UseCases
}

func NewPostHandler(posts post.UseCases, interactions interaction.UseCases) *PostHandler {
	return &PostHandler{posts: posts, interactions: interactions}
}

func (h *PostHandler) Feed(c *gin.Context) {
	posts, err := h.posts.Feed.Execute(c.Request.Context(), parseIntQuery(c, "limit", 0))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToPostResponses(posts))
}

func (h *PostHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	p, err := h.posts.Get.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToPostResponse(p))
}

func (h *PostHandler) Create(c *gin.Context) {
	var req post.PostInput
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.posts.Create.Execute(c.Request.Context(), actorOf(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.ToPostResponse(p))
}

func (h *PostHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req post.PostInput
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.posts.Update.Execute(c.Request.Context(), actorOf(c), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToPostResponse(p))
}

func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.posts.Delete.Execute(c.Request.Context(), actorOf(c), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

func (h *PostHandler) ToggleLike(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	state, err := h.interactions.ToggleLike.Execute(c.Request.Context(), actorOf(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, state)
}

// LikeStatus доступен анонимно: liked=false, счётчик настоящий.
func (h *PostHandler) LikeStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	response.Success(c, h.interactions.LikeStatus.Execute(c.Request.Context(), actorOf(c), id))
}

func (h *PostHandler) LikeCounts(c *gin.Context) {
	var req dto.LikeCountsRequest
	if !bindJSON(c, &req) {
		return
	}
	counts := h.interactions.LikeCounts.Execute(c.Request.Context(), req.PostIDs)
	response.Success(c, dto.ToCountMap(counts))
}

func (h *PostHandler) ToggleBookmark(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	bookmarked, err := h.interactions.ToggleBookmark.Execute(c.Request.Context(), actorOf(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.BookmarkResponse{Bookmarked: bookmarked})
}

func (h *PostHandler) BookmarkStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	bookmarked := h.interactions.BookmarkStatus.Execute(c.Request.Context(), actorOf(c), id)
	response.Success(c, dto.BookmarkResponse{Bookmarked: bookmarked})
}

func (h *PostHandler) Bookmarks(c *gin.Context) {
	posts, err := h.interactions.Bookmarked.Execute(c.Request.Context(), actorOf(c), parseIntQuery(c, "limit", 0))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToPostResponses(posts))
}

func (h *PostHandler) Comments(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	comments := h.interactions.ListComments.Execute(c.Request.Context(), id)
	response.Success(c, dto.ToCommentResponses(comments))
}

func (h *PostHandler) CreateComment(c *gin.Context) {
	var req interaction.CreateCommentInput
	if !bindJSON(c, &req) {
		return
	}

	comment, err := h.interactions.CreateComment.Execute(c.Request.Context(), actorOf(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.ToCommentResponse(comment))
}

func (h *PostHandler) DeleteComment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.interactions.DeleteComment.Execute(c.Request.Context(), actorOf(c), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
