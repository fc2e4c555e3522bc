package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"camp-signup/config"
	"camp-signup/internal/global/database"
	"camp-signup/internal/global/logger"
	"camp-signup/internal/global/middleware"
	"camp-signup/internal/module"

	"github.com/gin-gonic/gin"
)

var log *slog.Logger

func Init() {
	config.Init()
	log = logger.New("Server")

	database.Init()

	InitModules()
}

// InitModules 初始化各模块的 logger 等依赖，不涉及配置与数据库
func InitModules() {
	if log == nil {
		log = logger.New("Server")
	}
	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Module: %s", m.GetName()))
		m.Init()
	}
}

// NewEngine 组装中间件与全部模块路由
func NewEngine() *gin.Engine {
	cfg := config.Get()
	gin.SetMode(string(cfg.Mode))
	r := gin.New()

	switch cfg.Mode {
	case config.ModeRelease:
		r.Use(middleware.Logger(logger.Get()))
	case config.ModeDebug:
		r.Use(gin.Logger())
	}
	r.Use(middleware.Cors())
	r.Use(middleware.Recovery(logger.Get()))

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Router: %s", m.GetName()))
		m.InitRouter(r.Group("/" + cfg.Prefix))
	}
	return r
}

// Run 启动 HTTP 服务，ctx 结束后在配置的超时内优雅关闭
func Run(ctx context.Context) error {
	cfg := config.Get()
	srv := &http.Server{
		Addr:    cfg.Host + ":" + cfg.Port,
		Handler: NewEngine(),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", "addr", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Info("Shutting down HTTP server", "timeout", cfg.Shutdown.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Shutdown)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	return nil
}
