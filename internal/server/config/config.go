// Package config handles configuration for the server component,
// including defaults, environment variables, and command-line flags.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrMissingSecret is returned by LoadConfig when no JWT signing secret is
// configured. The server must not start without one.
var ErrMissingSecret = errors.New("config: JWT secret is not set (BOOKSTORE_JWT_SECRET)")

// Config holds runtime settings for the bookstore server.
//
// Fields:
//   - EndpointAddr: bind address for the public HTTP endpoint.
//   - DBHost / DBPort / DBUsername / DBPassword / DBName: PostgreSQL
//     connection settings, assembled into a DSN by DatabaseDSN().
//   - SecretKey: HMAC secret for signing JWTs (HS256). Required.
//   - TokenValidityDuration: access token lifetime.
//   - DBMaxOpenConns / DBMaxIdleConns / DBConnMaxIdleTime: connection pool
//     limits applied to the sql.DB handle.
type Config struct {
	EndpointAddr          string
	DBHost                string
	DBPort                string
	DBUsername            string
	DBPassword            string
	DBName                string
	SecretKey             string
	TokenValidityDuration time.Duration
	DBMaxOpenConns        int
	DBMaxIdleConns        int
	DBConnMaxIdleTime     time.Duration
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
// The JWT secret deliberately has no default.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8000"
	c.DBHost = "localhost"
	c.DBPort = "5432"
	c.DBUsername = "root"
	c.DBPassword = "0101"
	c.DBName = "bookstore"
	c.TokenValidityDuration = 4 * time.Hour
	c.DBMaxOpenConns = 10
	c.DBMaxIdleConns = 2
	c.DBConnMaxIdleTime = 300 * time.Second
}

// DatabaseDSN assembles a pgx-compatible PostgreSQL DSN from the DB* fields.
// The connect timeout is part of the DSN so that every pooled connection
// inherits it.
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable&connect_timeout=10",
		c.DBUsername, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from environment variables and finally from command-line flags.
//
// It fails with ErrMissingSecret when no signing secret was provided through
// any source.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	if cfg.SecretKey == "" {
		return nil, ErrMissingSecret
	}
	return cfg, nil
}
