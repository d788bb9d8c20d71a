package database

import (
	"fmt"
	"net/url"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"

	"wisenkap/internal/config"
)

// Supported drivers.
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// Config holds database configuration
type Config struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	Path     string
}

// NewConfig derives the database configuration from the application configuration.
func NewConfig(app *config.Config) (*Config, error) {
	cfg := &Config{
		Driver:   app.DBDriver,
		Host:     app.DBHost,
		Port:     app.DBPort,
		User:     app.DBUser,
		Password: app.DBPassword,
		DBName:   app.DBName,
		SSLMode:  app.DBSSLMode,
		Path:     app.DBPath,
	}

	switch cfg.Driver {
	case DriverPostgres, DriverMySQL, DriverSQLite:
		return cfg, nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (use postgres, mysql or sqlite)", cfg.Driver)
	}
}

// DSN returns the driver-specific connection string used by GORM.
func (c *Config) DSN() string {
	switch c.Driver {
	case DriverMySQL:
		return c.mysqlConfig().FormatDSN()
	case DriverSQLite:
		return c.Path
	default:
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
	}
}

// MigrationURL returns the golang-migrate database URL. SQLite schemas are
// managed with GORM's AutoMigrate and have no migration URL.
func (c *Config) MigrationURL() (string, error) {
	switch c.Driver {
	case DriverPostgres:
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(c.User, c.Password),
			Host:     c.Host + ":" + c.Port,
			Path:     "/" + c.DBName,
			RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
		}
		return u.String(), nil
	case DriverMySQL:
		mc := c.mysqlConfig()
		mc.MultiStatements = true
		return "mysql://" + mc.FormatDSN(), nil
	default:
		return "", fmt.Errorf("driver %q does not use SQL migrations", c.Driver)
	}
}

func (c *Config) mysqlConfig() *mysqldriver.Config {
	mc := mysqldriver.NewConfig()
	mc.User = c.User
	mc.Passwd = c.Password
	mc.Net = "tcp"
	mc.Addr = c.Host + ":" + c.Port
	mc.DBName = c.DBName
	mc.ParseTime = true
	mc.Loc = time.UTC
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc
}
