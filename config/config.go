package config

import "time"

type Mode string

const (
	ModeDebug   Mode = "debug"
	ModeRelease Mode = "release"
)

type Config struct {
	Host     string        `envconfig:"HOST" mapstructure:"host"`
	Port     string        `envconfig:"PORT" mapstructure:"port"`
	Prefix   string        `envconfig:"PREFIX" mapstructure:"prefix"`
	Mode     Mode          `envconfig:"MODE" mapstructure:"mode"`
	Shutdown time.Duration `envconfig:"SHUTDOWN_TIMEOUT" mapstructure:"shutdown_timeout"` // 优雅关闭等待时间
	Database Database      `envconfig:"DATABASE" mapstructure:"database"`
	Log      Log           `envconfig:"LOG" mapstructure:"log"`
}

type Driver string

const (
	DriverSqlite Driver = "sqlite"
	DriverMysql  Driver = "mysql"
)

type Database struct {
	Driver Driver `envconfig:"DRIVER" mapstructure:"driver"`
	// DSN 直接给出的连接串，优先于 Mysql 中的分项配置
	DSN   string `envconfig:"DSN" mapstructure:"dsn"`
	Mysql Mysql  `envconfig:"MYSQL" mapstructure:"mysql"`
}

type Mysql struct {
	Host     string `envconfig:"HOST" mapstructure:"host"`
	Port     string `envconfig:"PORT" mapstructure:"port"`
	Username string `envconfig:"USERNAME" mapstructure:"username"`
	Password string `envconfig:"PASSWORD" mapstructure:"password"`
	DBName   string `envconfig:"DB_NAME" mapstructure:"db_name"`
}

type Log struct {
	FilePath   string `envconfig:"FILE_PATH" mapstructure:"file_path"`     // 日志文件路径
	Level      string `envconfig:"LEVEL"   mapstructure:"level"`           // 日志级别：debug, info, warn, error
	MaxSize    int    `envconfig:"MAX_SIZE" mapstructure:"max_size"`       // 日志文件最大大小（MB）
	MaxBackups int    `envconfig:"MAX_BACKUPS" mapstructure:"max_backups"` // 保留的旧日志文件数
	MaxAge     int    `envconfig:"MAX_AGE" mapstructure:"max_age"`         // 日志文件保留天数
	Compress   bool   `envconfig:"COMPRESS" mapstructure:"compress"`       // 是否压缩旧日志文件
}
