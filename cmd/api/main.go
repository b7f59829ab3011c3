package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"samaritans-api/config"
	_ "samaritans-api/docs" // Swagger docs
	authHTTP "samaritans-api/internal/auth/delivery/http"
	"samaritans-api/internal/db"
	"samaritans-api/internal/httpserver"
	itemUC "samaritans-api/internal/item/usecase"
	"samaritans-api/internal/sweeper"
	"samaritans-api/pkg/log"
)

// @title       Samaritans API
// @description Donation matching between samaritan donors and recipient organizations.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Samaritans API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	database, err := db.Open(cfg.Database.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer database.Close()

	if err := db.EnsureSchema(database); err != nil {
		logger.Error(ctx, "Failed to apply schema: ", err)
		return
	}

	// 4. HTTP server with all domains wired
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		DB:          database,
		JWTSecret:   cfg.JWT.Secret,
		Cookie: authHTTP.CookieConfig{
			Domain: cfg.Cookie.Domain,
			Secure: cfg.Cookie.Secure,
		},
		Item: itemUC.Config{
			OfferTTL:        cfg.Item.OfferTTL,
			ReservationTTL:  cfg.Item.ReservationTTL,
			DefaultRadiusKm: cfg.Item.DefaultRadiusKm,
			ItemsPerPage:    cfg.Item.ItemsPerPage,
			ViewCacheTTL:    cfg.Item.ViewCacheTTL,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Background expiry sweeper
	go sweeper.New(httpServer.SweeperStore(), cfg.Item.SweepInterval, logger).Run(ctx)

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
