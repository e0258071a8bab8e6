// Package config loads the dialect and connection settings used to run
// compiled statements.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	mysqldrv "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	"github.com/microsoft/go-mssqldb/msdsn"
	"github.com/spf13/viper"

	"github.com/zoobzio/relq"
	"github.com/zoobzio/relq/mssql"
	"github.com/zoobzio/relq/mysql"
	"github.com/zoobzio/relq/postgres"
	"github.com/zoobzio/relq/sqlite"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "RELQ"

// Log levels accepted in log_level.
const (
	LogLevelDev  = "dev"
	LogLevelProd = "prod"
)

// ErrUnknownDialect is returned for a dialect name no builder exists for.
var ErrUnknownDialect = errors.New("unknown dialect")

// Config holds the dialect, connection and logging settings.
type Config struct {
	DialectName string `mapstructure:"dialect"`
	DSN         string `mapstructure:"dsn"`
	LogLevel    string `mapstructure:"log_level"`
}

// Load reads configuration with precedence env > config file > defaults.
// path may be empty, in which case only defaults and environment apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	cfg.DialectName = strings.ToLower(strings.TrimSpace(cfg.DialectName))
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("dialect", "postgres")
	v.SetDefault("dsn", "")
	v.SetDefault("log_level", LogLevelProd)
}

// Validate checks the dialect name and parses the DSN with the driver for
// that dialect.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case LogLevelDev, LogLevelProd:
	default:
		return fmt.Errorf("log_level must be %q or %q, got %q", LogLevelDev, LogLevelProd, c.LogLevel)
	}
	if c.DSN == "" {
		return errors.New("dsn is required")
	}
	switch c.DialectName {
	case "postgres":
		if _, err := pgx.ParseConfig(c.DSN); err != nil {
			return fmt.Errorf("invalid postgres dsn: %w", err)
		}
	case "mysql":
		if _, err := mysqldrv.ParseDSN(c.DSN); err != nil {
			return fmt.Errorf("invalid mysql dsn: %w", err)
		}
	case "mssql":
		if _, err := msdsn.Parse(c.DSN); err != nil {
			return fmt.Errorf("invalid mssql dsn: %w", err)
		}
	case "sqlite":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDialect, c.DialectName)
	}
	return nil
}

// Dialect returns the builder for the configured dialect.
func (c *Config) Dialect() (relq.Dialect, error) {
	switch c.DialectName {
	case "postgres":
		return postgres.New(), nil
	case "mysql":
		return mysql.New(), nil
	case "sqlite":
		return sqlite.New(), nil
	case "mssql":
		return mssql.New(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDialect, c.DialectName)
}

// DriverName returns the database/sql driver name for the dialect. The
// driver package itself must be imported by the caller.
func (c *Config) DriverName() (string, error) {
	switch c.DialectName {
	case "postgres":
		return "pgx", nil
	case "mysql":
		return "mysql", nil
	case "sqlite":
		return "sqlite", nil
	case "mssql":
		return "sqlserver", nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDialect, c.DialectName)
}
