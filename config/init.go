package config

import (
	"errors"
	"os"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

// EnvPrefix 环境变量前缀，例如 CAMP_PORT、CAMP_DATABASE_DRIVER
const EnvPrefix = "CAMP"

var (
	instance *Config
	mu       sync.RWMutex
)

// Default 返回未经任何配置覆盖时的默认配置
func Default() *Config {
	return &Config{
		Host:     "",
		Port:     "5555",
		Mode:     ModeDebug,
		Shutdown: 5 * time.Second,
		Database: Database{
			Driver: DriverSqlite,
			DSN:    "app.db",
		},
		Log: Log{
			Level:      "info",
			MaxSize:    100,
			MaxBackups: 3,
			MaxAge:     28,
		},
	}
}

// Init 依次加载默认值、config.yaml、环境变量
func Init() {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	Set(cfg)
}

// Load 读取配置但不替换全局实例
func Load() (*Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	} else if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, err
	}

	// 兼容旧部署使用的 DB_URI / PORT
	if uri := os.Getenv("DB_URI"); uri != "" {
		cfg.Database.Driver, cfg.Database.DSN = ParseURI(uri)
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	return cfg, nil
}

// Get 获取全局配置，未初始化时返回默认配置
func Get() *Config {
	mu.RLock()
	cfg := instance
	mu.RUnlock()
	if cfg != nil {
		return cfg
	}

	mu.Lock()
	defer mu.Unlock()
	if instance == nil {
		instance = Default()
	}
	return instance
}

func Set(cfg *Config) {
	mu.Lock()
	instance = cfg
	mu.Unlock()
}
