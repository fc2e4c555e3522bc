package ping

import (
	"net/http"

	"camp-signup/internal/global/response"

	"github.com/gin-gonic/gin"
)

func (p *ModulePing) InitRouter(r *gin.RouterGroup) {
	// 根路径只用于存活探测，返回空响应体
	r.GET("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{
			"message": "pong",
			"version": "1.0.0",
		})
	})
}
