package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"shareit/config"
	_ "shareit/docs" // swagger docs registration
	bookingHTTP "shareit/internal/booking/delivery/http"
	bookingPostgres "shareit/internal/booking/repository/postgres"
	bookingUC "shareit/internal/booking/usecase"
	"shareit/internal/httpserver"
	itemHTTP "shareit/internal/item/delivery/http"
	itemPostgres "shareit/internal/item/repository/postgres"
	itemUC "shareit/internal/item/usecase"
	"shareit/internal/middleware"
	requestHTTP "shareit/internal/request/delivery/http"
	requestPostgres "shareit/internal/request/repository/postgres"
	requestUC "shareit/internal/request/usecase"
	userHTTP "shareit/internal/user/delivery/http"
	userPostgres "shareit/internal/user/repository/postgres"
	userUC "shareit/internal/user/usecase"
	"shareit/pkg/log"
	"shareit/pkg/postgres"
)

// @title       ShareIt API
// @description Item sharing service: users, items, bookings, requests, and comments.
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

	logger.Info(ctx, "Starting ShareIt API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres
	pool, err := postgres.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Postgres: ", err)
		return
	}
	defer pool.Close()

	// 4. Repositories
	userRepo := userPostgres.New(pool, logger)
	itemRepo := itemPostgres.New(pool, logger)
	bookingRepo := bookingPostgres.New(pool, logger)
	requestRepo := requestPostgres.New(pool, logger)

	// 5. Middlewares
	mw := middleware.New(logger, userRepo, cfg)

	// 6. UseCases
	usersUC := userUC.New(userRepo, mw, logger)
	itemsUC := itemUC.New(itemRepo, userRepo, requestRepo, logger)
	bookingsUC := bookingUC.New(bookingRepo, itemRepo, logger)
	requestsUC := requestUC.New(requestRepo, logger)

	// 7. HTTP delivery
	userHandler := userHTTP.New(logger, usersUC)
	itemHandler := itemHTTP.New(logger, itemsUC)
	bookingHandler := bookingHTTP.New(logger, bookingsUC)
	requestHandler := requestHTTP.New(logger, requestsUC)

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		Middleware:     mw,
		UserHandler:    userHandler,
		ItemHandler:    itemHandler,
		BookingHandler: bookingHandler,
		RequestHandler: requestHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
