// Package main provides the entry point for the HTTP server.
package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmakerhq/dmaker/internal/config"
	"github.com/dmakerhq/dmaker/internal/database"
	"github.com/dmakerhq/dmaker/internal/database/migrate"
	developerRouter "github.com/dmakerhq/dmaker/internal/developer/router"
	"github.com/dmakerhq/dmaker/internal/health"
	"github.com/dmakerhq/dmaker/internal/middleware"
	"github.com/dmakerhq/dmaker/pkg/logger"
)

func main() {
	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zapLogger, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()

	gin.SetMode(cfg.GinMode)

	db, err := database.New()
	if err != nil {
		zapLogger.Fatalw("failed to connect to database", "error", err)
	}
	defer func() {
		if closeErr := database.Close(db); closeErr != nil {
			zapLogger.Errorw("failed to close database", "error", closeErr)
		}
	}()

	if err := migrate.Migrate(db); err != nil {
		zapLogger.Fatalw("failed to apply migrations", "error", err)
	}

	r := gin.New()
	r.Use(middleware.Recovery(zapLogger))
	r.Use(middleware.Logger(zapLogger))

	healthHandler := health.New(db, zapLogger)
	r.GET("/health", healthHandler.Check)

	developerRouter.RegisterRoutes(r, db, cfg.Developer, zapLogger)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	zapLogger.Infow("starting server", "address", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		zapLogger.Fatalw("failed to start server", "error", err)
	}
}
