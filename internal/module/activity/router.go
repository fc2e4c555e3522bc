package activity

import (
	"github.com/gin-gonic/gin"
)

func (p *ModuleActivity) InitRouter(r *gin.RouterGroup) {
	activityGroup := r.Group("/activities")
	{
		activityGroup.GET("", ListActivities)

		// 删除全部活动
		activityGroup.DELETE("", DeleteActivities)

		activityGroup.DELETE("/:id", DeleteActivity)
	}
}
