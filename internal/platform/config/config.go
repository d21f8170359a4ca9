package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Storage backends for the record maps.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr        string `env:"RECORDKEEPER_ADDR" envDefault:":8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	Auth    Auth
	Storage Storage
	Redis   RedisConfig
}

// Auth configures account token validation.
type Auth struct {
	JWTSigningKey string        `env:"JWT_SIGNING_KEY" envDefault:"dev-secret-key-change-in-production"`
	Issuer        string        `env:"JWT_ISSUER" envDefault:"recordkeeper"`
	TokenTTL      time.Duration `env:"TOKEN_TTL" envDefault:"15m"`
}

// Storage selects where record maps live.
type Storage struct {
	Backend    string `env:"STORAGE_BACKEND" envDefault:"memory"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"recordkeeper.db"`
}

// RedisConfig configures the shared Redis record backend.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	PoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"10"`
}

// FromEnv loads an optional .env file, then builds a Server config from
// environment variables so main stays lean.
func FromEnv() (Server, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Server{}, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

// Parse builds a Server config from the current environment only.
func Parse() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	switch cfg.Storage.Backend {
	case BackendMemory, BackendSQLite, BackendRedis:
	default:
		return Server{}, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
	if cfg.Auth.TokenTTL <= 0 {
		return Server{}, fmt.Errorf("TOKEN_TTL must be positive")
	}
	return cfg, nil
}
