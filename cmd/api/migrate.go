package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/vaughan-dsouza/posts-api/internal/config"
	"github.com/vaughan-dsouza/posts-api/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down|status]",
	Short:     "Run database migrations",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down", "status"},
	RunE:      runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}

	dbConn, err := db.Connect(cfg.DatabaseURL, cfg.DB)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	return db.Migrate(cmd.Context(), dbConn.DB, args[0])
}
