package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/consultant-scheduler/internal/audit"
	"github.com/BruksfildServices01/consultant-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/consultant-scheduler/internal/db"
	"github.com/BruksfildServices01/consultant-scheduler/internal/logging"
	"github.com/BruksfildServices01/consultant-scheduler/internal/routes"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "err", err)
		os.Exit(1)
	}
}

// run owns every resource, so all exits go through the deferred cleanup.
func run() error {
	cfg := config.Load()
	logger := logging.New("consultant-scheduler", cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return err
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := dbpkg.Close(db); err != nil {
			logger.Warn("failed to close database", "err", err)
		}
	}()

	auditDispatcher := audit.NewDispatcher(audit.New(db))
	// drain pending audit events after the last request finished
	defer auditDispatcher.Close()

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, auditDispatcher)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("server running", "addr", cfg.Addr(), "operator_timezone", cfg.OperatorTimezone)
	if err := serve(ctx, srv); err != nil {
		return err
	}

	logger.Info("server stopped")
	return nil
}

// serve runs srv until ctx is cancelled or the listener fails. A listener
// error is returned to the caller; cancellation shuts the server down.
func serve(ctx context.Context, srv *http.Server) error {
	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err, ok := <-serveErr:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "err", err)
	}
	return nil
}
