package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"

	"github.com/vaughan-dsouza/posts-api/internal/config"
	"github.com/vaughan-dsouza/posts-api/internal/db"
	"github.com/vaughan-dsouza/posts-api/internal/handlers"
	"github.com/vaughan-dsouza/posts-api/internal/middleware"
	"github.com/vaughan-dsouza/posts-api/internal/store"
	"github.com/vaughan-dsouza/posts-api/internal/tracing"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.OTLPEndpoint != "" {
		shutdown, err := tracing.Init(ctx, cfg.ServiceName, version)
		if err != nil {
			return err
		}
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()
			if err := shutdown(sctx); err != nil {
				log.Printf("tracing shutdown: %v", err)
			}
		}()
	}

	s, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: newRouter(cfg, handlers.NewHandler(s)),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s (posts at %s)", srv.Addr, cfg.BasePath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}
	log.Println("shutting down server...")

	sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return err
	}

	log.Println("server exited")
	return nil
}

// openStore connects to Postgres when DATABASE_URL is set and falls back to
// an in-memory store otherwise.
func openStore(ctx context.Context, cfg config.Config) (store.Store, func(), error) {
	if cfg.DatabaseURL == "" {
		log.Println("DATABASE_URL not set, using in-memory store")
		return store.NewMemoryStore(), func() {}, nil
	}

	dbConn, err := db.Connect(cfg.DatabaseURL, cfg.DB)
	if err != nil {
		return nil, nil, err
	}

	if cfg.DB.AutoMigrate {
		if err := db.Migrate(ctx, dbConn.DB, "up"); err != nil {
			dbConn.Close()
			return nil, nil, err
		}
	}

	return store.NewPostgresStore(dbConn), func() { dbConn.Close() }, nil
}

func newRouter(cfg config.Config, h *handlers.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Tracing(otel.GetTracerProvider()))

	r.Get("/healthz", h.Health)
	handlers.RegisterPostRoutes(r, cfg.BasePath, h.Posts)

	return r
}
