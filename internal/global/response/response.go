package response

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"camp-signup/internal/model"

	"github.com/gin-gonic/gin"
)

// Success 以给定状态码返回 JSON
func Success(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// NoContent 返回 204，不带响应体
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Fail 返回 {"error": msg}；非 *Error 的错误按 From 归类
func Fail(c *gin.Context, err error) {
	e := From(err)
	c.Set(ErrorContextKey, e)
	c.AbortWithStatusJSON(e.Status, gin.H{"error": e.Message})
}

// From 将任意错误映射为 *Error：校验错误保留提示，其余一律视为无效数据
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	var ve *model.ValidationError
	if errors.As(err, &ve) {
		return ErrValidation.WithMessage(ve.Message).WithOrigin(err)
	}
	return ErrInvalidData.WithOrigin(err)
}

// Recovery 捕获 panic 并返回 500，panic 内容只写日志
func Recovery(c *gin.Context, log *slog.Logger) {
	r := recover()
	if r == nil {
		return
	}
	err, ok := r.(error)
	if !ok {
		err = fmt.Errorf("%v", r)
	}
	e := ErrInternal.WithOrigin(err)
	log.Error("panic recovered",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"error", e.Origin,
	)
	if c.Writer.Written() {
		c.Abort()
		return
	}
	Fail(c, e)
}
