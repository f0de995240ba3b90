package config

import (
	"os"
	"strconv"
	"time"
)

// Environment variable names. The BOOKSTORE_ prefix keeps them clear of other
// services sharing the host.
const (
	EnvEndpointAddr  = "BOOKSTORE_ADDR"
	EnvDBHost        = "BOOKSTORE_DB_HOST"
	EnvDBPort        = "BOOKSTORE_DB_PORT"
	EnvDBUsername    = "BOOKSTORE_DB_USERNAME"
	EnvDBPassword    = "BOOKSTORE_DB_PASSWORD"
	EnvDBName        = "BOOKSTORE_DB_DATABASE"
	EnvJWTSecret     = "BOOKSTORE_JWT_SECRET"
	EnvTokenValidity = "BOOKSTORE_TOKEN_VALIDITY_MINUTES"
)

// parseEnv overlays Config fields from environment variables. Unset variables
// leave the current value untouched.
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv(EnvEndpointAddr); ok {
		config.EndpointAddr = v
	}
	if v, ok := os.LookupEnv(EnvDBHost); ok {
		config.DBHost = v
	}
	if v, ok := os.LookupEnv(EnvDBPort); ok {
		config.DBPort = v
	}
	if v, ok := os.LookupEnv(EnvDBUsername); ok {
		config.DBUsername = v
	}
	if v, ok := os.LookupEnv(EnvDBPassword); ok {
		config.DBPassword = v
	}
	if v, ok := os.LookupEnv(EnvDBName); ok {
		config.DBName = v
	}
	if v, ok := os.LookupEnv(EnvJWTSecret); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv(EnvTokenValidity); ok {
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			config.TokenValidityDuration = time.Duration(minutes) * time.Minute
		}
	}
}
