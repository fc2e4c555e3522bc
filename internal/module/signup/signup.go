package signup

import (
	"net/http"

	"camp-signup/internal/global/database"
	"camp-signup/internal/global/logger"
	"camp-signup/internal/global/response"
	"camp-signup/internal/model"
	"camp-signup/tools"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateSignup 创建报名记录，营员和活动必须已存在
func CreateSignup(c *gin.Context) {
	var req model.SignupInput
	if err := tools.BindJSON(c, &req); err != nil {
		log.Warn("绑定创建报名请求失败", "error", err)
		response.Fail(c, response.ErrInvalidData.WithOrigin(err))
		return
	}

	signup, err := model.NewSignup(req)
	if err != nil {
		log.Warn("报名数据校验失败", "error", err)
		response.Fail(c, err)
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var camper model.Camper
		if err := tx.First(&camper, signup.CamperID).Error; err != nil {
			return err
		}
		var activity model.Activity
		if err := tx.First(&activity, signup.ActivityID).Error; err != nil {
			return err
		}
		if err := tx.Create(signup).Error; err != nil {
			return err
		}
		signup.Camper, signup.Activity = &camper, &activity
		return nil
	})
	if err != nil {
		log.Warn("创建报名失败", "error", err,
			"camper_id", signup.CamperID,
			"activity_id", signup.ActivityID,
		)
		response.Fail(c, response.ErrInvalidData.WithOrigin(err))
		return
	}

	logger.WithContext(log, c).Info("报名创建成功",
		"id", signup.ID,
		"camper_id", signup.CamperID,
		"activity_id", signup.ActivityID,
		"time", signup.Time,
	)
	response.Success(c, http.StatusCreated, model.NewSignupDetail(signup))
}
