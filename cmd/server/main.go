package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/segyhp/consignment-engine/internal/cache"
	"github.com/segyhp/consignment-engine/internal/config"
	"github.com/segyhp/consignment-engine/internal/handler"
	"github.com/segyhp/consignment-engine/internal/logger"
	"github.com/segyhp/consignment-engine/internal/repository"
	"github.com/segyhp/consignment-engine/internal/service"
	"github.com/segyhp/consignment-engine/internal/settlement"
	"github.com/segyhp/consignment-engine/pkg/response"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()
	zap.ReplaceGlobals(zlog)

	// Initialize database
	db, err := initDB(cfg)
	if err != nil {
		zlog.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	// Initialize Redis
	redisClient := initRedis(cfg)
	defer redisClient.Close()

	// Initialize repositories
	settingsRepo := repository.NewSettingsRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	itemRepo := repository.NewItemRepository(db)
	earningRepo := repository.NewEarningRepository(db)
	rentalRepo := repository.NewRentalRepository(db)
	cubbyRepo := repository.NewCubbyRepository(db)

	// Initialize services
	openDays := service.NewOpenDaysProvider(
		settingsRepo,
		cache.NewRedisCache(redisClient, "consignment:"),
		cfg.GetOpenDaysCacheTTL(),
		zlog.Named("open_days"),
	)
	rentalService := service.NewRentalService(rentalRepo, cubbyRepo, openDays, cfg.Business.MaxRentalOpenDays, zlog.Named("rentals"))
	saleService := service.NewSaleService(saleRepo, itemRepo, earningRepo,
		settlement.NewEngine(cfg.GetDefaultCommissionRate()), zlog.Named("sales"))
	payoutService := service.NewPayoutService(earningRepo, zlog.Named("payouts"))
	settingsService := service.NewSettingsService(settingsRepo, openDays, openDays, zlog.Named("settings"))

	// Setup routes
	middlewares := []mux.MiddlewareFunc{response.LoggingMiddleware(zlog.Named("http"))}
	if cfg.IsDevelopment() {
		middlewares = append(middlewares, response.CORSMiddleware)
	}
	router := handler.NewRouter(handler.Handlers{
		Health:   handler.NewHealthHandler(db, redisClient, cfg.GetHealthTimeout()),
		Rental:   handler.NewRentalHandler(rentalService),
		Sale:     handler.NewSaleHandler(saleService),
		Payout:   handler.NewPayoutHandler(payoutService),
		Settings: handler.NewSettingsHandler(settingsService),
	}, middlewares...)

	// Start server
	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		zlog.Info("server starting", zap.String("addr", server.Addr), zap.String("env", cfg.Server.Env))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		zlog.Error("server forced to shutdown", zap.Error(err))
		return
	}

	zlog.Info("server exited")
}

func initDB(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	return db, nil
}

func initRedis(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}
