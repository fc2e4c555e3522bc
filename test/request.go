package test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"camp-signup/config"
	"camp-signup/internal/global/database"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Raw 原样作为请求体发送，用于构造非法 JSON
type Raw string

// NewDB 为单个测试创建内存 sqlite 并替换 database.DB，测试结束后关闭并还原
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := config.Default()
	cfg.Mode = config.ModeRelease
	cfg.Database = config.Database{Driver: config.DriverSqlite, DSN: ":memory:"}

	db, err := database.Open(cfg)
	require.NoErrorf(t, err, "database.Open failed: %s", err)
	require.NoError(t, database.Migrate(db))

	prev := database.DB
	database.DB = db
	t.Cleanup(func() {
		database.DB = prev
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// NewRouter 返回测试模式下的 gin.Engine
func NewRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func DoRequest(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case Raw:
		reader = bytes.NewBufferString(string(b))
	default:
		requestBytes, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(requestBytes)
	}
	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// Decode 将响应体解码到 T
func Decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), &v), "body: %s", w.Body.String())
	return v
}
