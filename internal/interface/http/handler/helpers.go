package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ignatzorin/creative-network/internal/domain/session"
	"github.com/ignatzorin/creative-network/internal/http/middleware"
	"github.com/ignatzorin/creative-network/internal/interface/http/response"
)

// actorOf возвращает актора запроса; nil для анонима.
func actorOf(c *gin.Context) *session.Actor {
	return middleware.CurrentActor(c)
}

// parseIDParam отвечает 400 и возвращает false, если параметр не UUID.
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.BadRequest(c, "некорректный идентификатор "+name)
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON отвечает 400 при нечитаемом теле. Валидация полей выполняется в use case.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.BadRequest(c, "некорректное тело запроса")
		return false
	}
	return true
}

func parseIntQuery(c *gin.Context, key string, defaultValue int) int {
	valueStr := c.Query(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}
