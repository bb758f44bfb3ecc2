package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/creative-network/internal/interface/http/response"
)

// ErrorHandler отвечает по последней ошибке из c.Errors, если хэндлер сам ничего не записал.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}
		response.Error(c, c.Errors.Last().Err)
	}
}
