package middleware

import (
	"log/slog"

	"camp-signup/internal/global/response"

	"github.com/gin-gonic/gin"
)

func Recovery(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer response.Recovery(c, log)
		c.Next()
	}
}
