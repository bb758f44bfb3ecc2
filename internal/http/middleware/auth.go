package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/creative-network/internal/domain/session"
	"github.com/ignatzorin/creative-network/internal/interface/http/response"
)

// ContextActorKey — ключ gin.Context, под которым лежит *session.Actor.
const ContextActorKey = "actor"

// TokenParser проверяет access токен.
type TokenParser interface {
	ParseAccess(token string) (*session.Actor, error)
}

// AuthMiddleware требует валидный Bearer токен.
func AuthMiddleware(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c)
		if !ok {
			response.Unauthorized(c, "требуется авторизация")
			return
		}

		actor, err := tokens.ParseAccess(raw)
		if err != nil {
			response.Unauthorized(c, "токен невалиден")
			return
		}

		c.Set(ContextActorKey, actor)
		c.Next()
	}
}

// OptionalAuth кладёт актора, если токен валиден, иначе пропускает запрос анонимно.
func OptionalAuth(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw, ok := bearerToken(c); ok {
			if actor, err := tokens.ParseAccess(raw); err == nil {
				c.Set(ContextActorKey, actor)
			}
		}
		c.Next()
	}
}

// CurrentActor возвращает актора запроса или nil для анонима.
func CurrentActor(c *gin.Context) *session.Actor {
	raw, exists := c.Get(ContextActorKey)
	if !exists {
		return nil
	}
	actor, _ := raw.(*session.Actor)
	return actor
}

func bearerToken(c *gin.Context) (string, bool) {
	auth := c.GetHeader("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return "", false
	}
	raw := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	return raw, raw != ""
}
