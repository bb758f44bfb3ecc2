package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/creative-network/internal/interface/http/response"
	"github.com/ignatzorin/creative-network/internal/service"
)

// SeedHandler обрабатывает запросы для генерации демонстрационных данных.
type SeedHandler struct {
	seedService *service.SeedService
}

func NewSeedHandler(seedService *service.SeedService) *SeedHandler {
	return &SeedHandler{seedService: seedService}
}

// Seed генерирует данные.
// POST /api/seed?users=10&posts=3
func (h *SeedHandler) Seed(c *gin.Context) {
	numUsers := parseIntQuery(c, "users", 10)
	postsPerUser := parseIntQuery(c, "posts", 3)
	if numUsers < 1 || numUsers > 200 || postsPerUser < 0 || postsPerUser > 20 {
		response.BadRequest(c, "users должен быть от 1 до 200, posts от 0 до 20")
		return
	}

	accounts, err := h.seedService.SeedData(c.Request.Context(), numUsers, postsPerUser)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"accounts": accounts})
}
