package database

import (
	"fmt"

	"camp-signup/config"
	"camp-signup/internal/model"
	"camp-signup/tools"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var DB *gorm.DB

func Init() {
	db, err := Open(config.Get())
	tools.PanicOnErr(err)
	tools.PanicOnErr(Migrate(db))
	DB = db
}

// Open 按配置选择驱动并建立连接，不做迁移
func Open(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg.Database)
	if err != nil {
		return nil, err
	}

	gormConfig := &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: true}, // 表名 camper / activity / signup
	}
	switch cfg.Mode {
	case config.ModeDebug:
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	case config.ModeRelease:
		gormConfig.Logger = logger.Discard
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, err
	}
	if cfg.Database.Driver == config.DriverSqlite || cfg.Database.Driver == "" {
		// 单连接：内存库在多连接下各自独立，PRAGMA 也只对当前连接生效
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
		// sqlite 默认不检查外键
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, err
		}
	}
	return db, nil
}

func Dialector(cfg config.Database) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverSqlite, "":
		return sqlite.Open(cfg.DSN), nil
	case config.DriverMysql:
		return mysql.Open(MysqlDSN(cfg)), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// MysqlDSN 优先使用直接配置的 DSN，否则由分项配置拼出
func MysqlDSN(cfg config.Database) string {
	if cfg.DSN != "" {
		return cfg.DSN
	}
	c := mysqldriver.NewConfig()
	c.User = cfg.Mysql.Username
	c.Passwd = cfg.Mysql.Password
	c.Net = "tcp"
	c.Addr = cfg.Mysql.Host + ":" + cfg.Mysql.Port
	c.DBName = cfg.Mysql.DBName
	c.ParseTime = true
	c.Params = map[string]string{"charset": "utf8mb4"}
	return c.FormatDSN()
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(model.Models()...)
}
