package config

import (
	"net"
	"net/url"
	"strings"

	"github.com/go-sql-driver/mysql"
)

const defaultMysqlPort = "3306"

// ParseURI 将 sqlite:///path 或 mysql://user:pw@host:port/db 形式的连接串拆成驱动与 DSN
// 不带 scheme 的连接串按 sqlite 文件路径处理
func ParseURI(uri string) (Driver, string) {
	scheme, rest, ok := strings.Cut(uri, "://")
	if !ok {
		return DriverSqlite, uri
	}
	scheme = strings.ToLower(scheme)
	// mysql+pymysql:// 之类的写法只看方言部分
	dialect, _, _ := strings.Cut(scheme, "+")
	switch dialect {
	case "mysql", "mariadb":
		return DriverMysql, mysqlDSN(uri, rest)
	case "sqlite", "sqlite3":
		// sqlite:///app.db 为相对路径，sqlite:////tmp/app.db 为绝对路径
		if strings.HasPrefix(rest, "/") {
			rest = rest[1:]
		}
		if rest == "" {
			rest = ":memory:"
		}
		return DriverSqlite, rest
	default:
		return Driver(scheme), rest
	}
}

// mysqlDSN 把 URL 形式的连接串转成 go-sql-driver 的 DSN
// 已经是 DSN 写法的（如 user:pw@tcp(host:3306)/db）原样返回
func mysqlDSN(uri, rest string) string {
	if _, err := mysql.ParseDSN(rest); err == nil && strings.Contains(rest, "(") {
		return rest
	}
	u, err := url.Parse(uri)
	if err != nil || u.Host == "" {
		return rest
	}

	c := mysql.NewConfig()
	c.Net = "tcp"
	if u.User != nil {
		c.User = u.User.Username()
		c.Passwd, _ = u.User.Password()
	}
	port := u.Port()
	if port == "" {
		port = defaultMysqlPort
	}
	c.Addr = net.JoinHostPort(u.Hostname(), port)
	c.DBName = strings.TrimPrefix(u.Path, "/")
	c.ParseTime = true
	c.Params = map[string]string{"charset": "utf8mb4"}
	for key, values := range u.Query() {
		if len(values) > 0 {
			c.Params[key] = values[len(values)-1]
		}
	}
	return c.FormatDSN()
}
