package tools

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
)

var (
	errEmptyBody    = errors.New("invalid request")
	errNotObject    = errors.New("request body must be a JSON object")
	errTrailingData = errors.New("unexpected data after JSON object")
)

func PanicOnErr(err error) {
	if err != nil {
		panic(err)
	}
}

// BindJSON 请求体必须恰好是一个 JSON 对象，未知字段忽略
func BindJSON(c *gin.Context, obj any) error {
	return bindObject(c, obj, false)
}

// BindStrictJSON 与 BindJSON 相同，但请求体中出现未知字段时返回错误
func BindStrictJSON(c *gin.Context, obj any) error {
	return bindObject(c, obj, true)
}

func bindObject(c *gin.Context, obj any, strict bool) error {
	if c.Request == nil || c.Request.Body == nil {
		return errEmptyBody
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return err
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return errEmptyBody
	}
	// null、数组和标量都不是合法的请求体
	if body[0] != '{' {
		return errNotObject
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	if strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(obj); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}

// ParamID 解析路径参数中的正整数 ID
func ParamID(c *gin.Context, key string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(key), 10, 0)
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, errors.New("id must be positive")
	}
	return uint(id), nil
}
