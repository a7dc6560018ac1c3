package db

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	semconv "go.opentelemetry.io/otel/semconv/v1.20.0"

	"github.com/vaughan-dsouza/posts-api/internal/config"
)

func Connect(dsn string, cfg config.DBConfig) (*sqlx.DB, error) {
	var db *sqlx.DB

	switch cfg.Driver {
	case "postgres":
		connector, err := pq.NewConnector(dsn)
		if err != nil {
			return nil, fmt.Errorf("db: failed to parse DSN: %w", err)
		}
		db = sqlx.NewDb(otelsql.OpenDB(connector, otelsql.WithAttributes(semconv.DBSystemPostgreSQL)), "postgres")

	default:
		// Parse DSN → pgx config struct
		pgxCfg, err := pgx.ParseConfig(dsn)
		if err != nil {
			return nil, fmt.Errorf("db: failed to parse DSN: %w", err)
		}

		// Fail fast on startup if PG is unreachable
		pgxCfg.ConnectTimeout = 5 * time.Second

		// every query gets a span through otelsql
		sqlDB := otelsql.OpenDB(stdlib.GetConnector(*pgxCfg), otelsql.WithAttributes(semconv.DBSystemPostgreSQL))
		db = sqlx.NewDb(sqlDB, "pgx")
	}

	// ---- Connection Pool Settings ----
	db.SetMaxOpenConns(cfg.MaxOpen)
	db.SetMaxIdleConns(cfg.MaxIdle)
	db.SetConnMaxLifetime(cfg.MaxLifetime)

	// ---- Connectivity Check ----
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("db: failed to connect to Postgres: %w", err)
	}

	// ---- Health Check Query ----
	var tmp int
	if err := db.QueryRow("SELECT 1").Scan(&tmp); err != nil {
		db.Close()
		return nil, fmt.Errorf("db: health check failed: %w", err)
	}

	return db, nil
}
