package camper

import (
	"github.com/gin-gonic/gin"
)

func (p *ModuleCamper) InitRouter(r *gin.RouterGroup) {
	camperGroup := r.Group("/campers")
	{
		camperGroup.GET("", ListCampers)
		camperGroup.GET("/:id", GetCamper)
		camperGroup.POST("", CreateCamper)
		camperGroup.PATCH("/:id", UpdateCamper)
	}
}
