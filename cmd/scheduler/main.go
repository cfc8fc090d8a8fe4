package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/segyhp/consignment-engine/internal/cache"
	"github.com/segyhp/consignment-engine/internal/config"
	"github.com/segyhp/consignment-engine/internal/logger"
	"github.com/segyhp/consignment-engine/internal/repository"
	"github.com/segyhp/consignment-engine/internal/service"
)

const jobTimeout = 2 * time.Minute

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
	zlog = zlog.Named("scheduler")

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		zlog.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	openDays := service.NewOpenDaysProvider(
		repository.NewSettingsRepository(db),
		cache.NewRedisCache(redisClient, "consignment:"),
		cfg.GetOpenDaysCacheTTL(),
		zlog,
	)
	rentals := service.NewRentalService(
		repository.NewRentalRepository(db),
		repository.NewCubbyRepository(db),
		openDays,
		cfg.Business.MaxRentalOpenDays,
		zlog,
	)

	c := cron.New(
		cron.WithSeconds(),
		cron.WithLocation(cfg.GetSchedulerLocation()),
		cron.WithChain(cron.Recover(cron.PrintfLogger(zap.NewStdLog(zlog)))),
	)

	setupCronJobs(c, cfg, rentals, openDays, zlog)

	c.Start()
	zlog.Info("scheduler started", zap.Int("jobs", len(c.Entries())))

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down scheduler")
	<-c.Stop().Done()
	zlog.Info("scheduler stopped")
}

func setupCronJobs(c *cron.Cron, cfg *config.Config, rentals *service.RentalService, openDays *service.OpenDaysProvider, zlog *zap.Logger) {
	// Nightly job closing rentals whose last open day has passed
	_, err := c.AddFunc(cfg.Scheduler.RentalExpirySpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		if _, err := rentals.ExpireRentals(ctx, time.Now().In(cfg.GetSchedulerLocation())); err != nil {
			zlog.Error("rental expiry job failed", zap.Error(err))
		}
	})
	if err != nil {
		zlog.Error("scheduling rental expiry job failed", zap.String("spec", cfg.Scheduler.RentalExpirySpec), zap.Error(err))
	}

	// Keep the cached open-days schedule warm
	refreshSpec := "@every " + cfg.GetSchedulerInterval().String()
	_, err = c.AddFunc(refreshSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		if err := openDays.Refresh(ctx); err != nil {
			zlog.Warn("open days cache refresh failed", zap.Error(err))
		}
	})
	if err != nil {
		zlog.Error("scheduling open days refresh failed", zap.String("spec", refreshSpec), zap.Error(err))
	}

	zlog.Info("cron jobs scheduled")
}
