package camper

import (
	"net/http"

	"camp-signup/internal/global/database"
	"camp-signup/internal/global/logger"
	"camp-signup/internal/global/response"
	"camp-signup/internal/model"
	"camp-signup/tools"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ListCampers 获取营员列表，不含报名记录
func ListCampers(c *gin.Context) {
	var campers []model.Camper
	if err := database.DB.Order("id").Find(&campers).Error; err != nil {
		log.Error("获取营员列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("获取营员列表成功", "count", len(campers))
	response.Success(c, http.StatusOK, model.NewCamperSummaries(campers))
}

// GetCamper 获取单个营员详情，包含报名记录及对应活动
func GetCamper(c *gin.Context) {
	id, err := tools.ParamID(c, "id")
	if err != nil {
		log.Warn("营员ID不合法", "id", c.Param("id"))
		response.Fail(c, response.ErrCamperNotFound)
		return
	}

	var camper model.Camper
	err = database.DB.
		Preload("Signups", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Signups.Activity").
		First(&camper, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("营员不存在", "id", id)
			response.Fail(c, response.ErrCamperNotFound)
			return
		}
		log.Error("查询营员失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, http.StatusOK, model.NewCamperDetail(&camper))
}

// CreateCamper 创建营员，name 与 age 在赋值时校验
func CreateCamper(c *gin.Context) {
	var req model.CamperInput
	if err := tools.BindJSON(c, &req); err != nil {
		log.Warn("绑定创建营员请求失败", "error", err)
		response.Fail(c, response.ErrInvalidData.WithOrigin(err))
		return
	}

	camper, err := model.NewCamper(req)
	if err != nil {
		log.Warn("营员数据校验失败", "error", err)
		response.Fail(c, err)
		return
	}

	if err := database.DB.Create(camper).Error; err != nil {
		log.Error("创建营员失败", "error", err, "name", camper.Name)
		response.Fail(c, response.ErrInvalidData.WithOrigin(err))
		return
	}

	logger.WithContext(log, c).Info("营员创建成功", "id", camper.ID, "name", camper.Name)
	response.Success(c, http.StatusCreated, model.NewCamperSummary(camper))
}

// UpdateCamper 部分更新营员；任一字段不合法则整个请求不生效
func UpdateCamper(c *gin.Context) {
	id, err := tools.ParamID(c, "id")
	if err != nil {
		log.Warn("营员ID不合法", "id", c.Param("id"))
		response.Fail(c, response.ErrCamperNotFound)
		return
	}

	// 请求体的错误在确认营员存在之后才返回
	var req model.CamperInput
	bindErr := tools.BindStrictJSON(c, &req)

	var camper model.Camper
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&camper, id).Error; err != nil {
			return err
		}
		if bindErr != nil {
			return response.ErrInvalidCamper.WithOrigin(bindErr)
		}
		if err := req.Apply(&camper); err != nil {
			return err
		}
		return tx.Save(&camper).Error
	})
	if err != nil {
		var ve *model.ValidationError
		var e *response.Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			log.Warn("营员不存在", "id", id)
			response.Fail(c, response.ErrCamperNotFound)
		case errors.As(err, &ve), errors.As(err, &e):
			log.Warn("营员更新被拒绝", "error", err, "id", id)
			response.Fail(c, err)
		default:
			log.Error("更新营员失败", "error", err, "id", id)
			response.Fail(c, response.ErrInvalidCamper.WithOrigin(err))
		}
		return
	}

	log.Info("营员更新成功", "id", camper.ID, "name", camper.Name, "age", camper.Age)
	response.Success(c, http.StatusAccepted, model.NewCamperSummary(&camper))
}
