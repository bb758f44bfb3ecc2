package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/creative-network/internal/interface/http/dto"
	"github.com/ignatzorin/creative-network/internal/interface/http/response"
	"github.com/ignatzorin/creative-network/internal/usecase/offering"
	"github.com/ignatzorin/creative-network/internal/usecase/post"
	"github.com/ignatzorin/creative-network/internal/usecase/profile"
)

// ProfileHandler обслуживает собственный профиль, публичные профили и портфолио.
type ProfileHandler struct {
	profiles profile.UseCases
	posts    post.UseCases
	services offering.UseCases
}

func NewProfileHandler(profiles profile.UseCases, posts post.UseCases, services offering.UseCases) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, posts: posts, services: services}
}

func (h *ProfileHandler) Me(c *gin.Context) {
	p, err := h.profiles.Me.Execute(c.Request.Context(), actorOf(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToProfileResponse(p, true))
}

func (h *ProfileHandler) UpdateMe(c *gin.Context) {
	var req profile.ProfileInput
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.profiles.Update.Execute(c.Request.Context(), actorOf(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToOwnUser(user))
}

func (h *ProfileHandler) Public(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	actor := actorOf(c)
	p, err := h.profiles.Public.Execute(c.Request.Context(), actor, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToProfileResponse(p, actor.Is(id)))
}

func (h *ProfileHandler) People(c *gin.Context) {
	people, err := h.profiles.People.Execute(c.Request.Context(), actorOf(c), parseIntQuery(c, "limit", 0))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToPersonResponses(people))
}

func (h *ProfileHandler) UserPosts(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	posts := h.posts.ByAuthor.Execute(c.Request.Context(), id, parseIntQuery(c, "limit", 0))
	response.Success(c, dto.ToPostResponses(posts))
}

func (h *ProfileHandler) UserPortfolio(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	items := h.profiles.ListItems.Execute(c.Request.Context(), id)
	response.Success(c, dto.ToPortfolioResponses(items))
}

func (h *ProfileHandler) UserServices(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	services := h.services.ByProvider.Execute(c.Request.Context(), id)
	response.Success(c, dto.ToServiceResponses(services))
}

func (h *ProfileHandler) CreatePortfolioItem(c *gin.Context) {
	var req profile.PortfolioInput
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.profiles.CreateItem.Execute(c.Request.Context(), actorOf(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.ToPortfolioResponse(item))
}

func (h *ProfileHandler) UpdatePortfolioItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req profile.PortfolioInput
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.profiles.UpdateItem.Execute(c.Request.Context(), actorOf(c), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToPortfolioResponse(item))
}

func (h *ProfileHandler) DeletePortfolioItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.profiles.DeleteItem.Execute(c.Request.Context(), actorOf(c), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
