package activity

import (
	"net/http"

	"camp-signup/internal/global/database"
	"camp-signup/internal/global/response"
	"camp-signup/internal/model"
	"camp-signup/tools"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ListActivities 获取活动列表，不含报名记录
func ListActivities(c *gin.Context) {
	var activities []model.Activity
	if err := database.DB.Order("id").Find(&activities).Error; err != nil {
		log.Error("获取活动列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("获取活动列表成功", "count", len(activities))
	response.Success(c, http.StatusOK, model.NewActivitySummaries(activities))
}

// DeleteActivities 删除全部活动及其报名记录
func DeleteActivities(c *gin.Context) {
	var removed int64
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.Signup{}).Error; err != nil {
			return err
		}
		result := tx.Where("1 = 1").Delete(&model.Activity{})
		removed = result.RowsAffected
		return result.Error
	})
	if err != nil {
		log.Error("删除全部活动失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("全部活动已删除", "count", removed)
	response.NoContent(c)
}

// DeleteActivity 删除单个活动，其报名记录在同一事务中删除
func DeleteActivity(c *gin.Context) {
	id, err := tools.ParamID(c, "id")
	if err != nil {
		log.Warn("活动ID不合法", "id", c.Param("id"))
		response.Fail(c, response.ErrActivityNotFound)
		return
	}

	var signups int64
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var activity model.Activity
		if err := tx.First(&activity, id).Error; err != nil {
			return err
		}
		result := tx.Where("activity_id = ?", activity.ID).Delete(&model.Signup{})
		if result.Error != nil {
			return result.Error
		}
		signups = result.RowsAffected
		return tx.Delete(&activity).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("活动不存在", "id", id)
			response.Fail(c, response.ErrActivityNotFound)
			return
		}
		log.Error("删除活动失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("活动删除成功", "id", id, "signups", signups)
	response.NoContent(c)
}
