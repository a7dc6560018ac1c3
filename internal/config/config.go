package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	BasePath string

	DatabaseURL string
	DB          DBConfig

	ServiceName     string
	OTLPEndpoint    string
	ShutdownTimeout time.Duration
}

type DBConfig struct {
	Driver      string
	MaxOpen     int
	MaxIdle     int
	MaxLifetime time.Duration
	AutoMigrate bool
}

// Load reads .env when present, then the process environment.
func Load() (Config, error) {
	// a missing .env is fine, real deployments use the environment
	_ = godotenv.Load()

	return FromEnv()
}

func FromEnv() (Config, error) {
	maxOpen, err := getint("DB_MAX_OPEN", 25)
	if err != nil {
		return Config{}, err
	}
	maxIdle, err := getint("DB_MAX_IDLE", 25)
	if err != nil {
		return Config{}, err
	}
	lifetime, err := getint("DB_MAX_LIFETIME", 300) // seconds
	if err != nil {
		return Config{}, err
	}
	autoMigrate, err := strconv.ParseBool(getenv("DB_AUTO_MIGRATE", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("config: DB_AUTO_MIGRATE: %w", err)
	}
	shutdown, err := time.ParseDuration(getenv("SHUTDOWN_TIMEOUT", "5s"))
	if err != nil {
		return Config{}, fmt.Errorf("config: SHUTDOWN_TIMEOUT: %w", err)
	}

	driver := getenv("DB_DRIVER", "pgx")
	if driver != "pgx" && driver != "postgres" {
		return Config{}, fmt.Errorf("config: DB_DRIVER must be pgx or postgres, got %q", driver)
	}

	return Config{
		Port:        getenv("PORT", "4000"),
		BasePath:    normalizeBasePath(getenv("BASE_PATH", "/api/v1/posts")),
		DatabaseURL: getenv("DATABASE_URL", ""),
		DB: DBConfig{
			Driver:      driver,
			MaxOpen:     maxOpen,
			MaxIdle:     maxIdle,
			MaxLifetime: time.Duration(lifetime) * time.Second,
			AutoMigrate: autoMigrate,
		},
		ServiceName:     getenv("SERVICE_NAME", "posts-api"),
		OTLPEndpoint:    getenv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		ShutdownTimeout: shutdown,
	}, nil
}

func normalizeBasePath(p string) string {
	p = "/" + strings.Trim(p, "/")
	return p
}

// helper to read env with default
func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getint(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return n, nil
}
