// Package main is the entry point for the catalogue-service API.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"catalogue-service/internal/app/service"
	"catalogue-service/internal/config"
	"catalogue-service/internal/domain"
	"catalogue-service/internal/infra/postgres"
	"catalogue-service/internal/infra/postgres/migrations"
	rediscache "catalogue-service/internal/infra/redis"
	"catalogue-service/internal/infra/tmdb"
	"catalogue-service/internal/logger"
	"catalogue-service/internal/transport/httpserver"
	"catalogue-service/internal/validator"
	"catalogue-service/pkg/locker"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(
		logger.Config{
			Level:  cfg.Logger.Level,
			Format: cfg.Logger.Format,
			Output: cfg.Logger.Output,
		},
		logger.SentryConfig{
			Enabled:     cfg.Sentry.Enabled,
			DSN:         cfg.Sentry.DSN,
			Environment: cfg.Sentry.Environment,
			SampleRate:  cfg.Sentry.SampleRate,
		},
	)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting catalogue-service",
		zap.String("env", cfg.App.Env),
		zap.Int("port", cfg.App.Port),
	)

	// Connect to database
	db, err := postgres.NewConnection(
		postgres.Config{
			Host:         cfg.Database.Host,
			Port:         cfg.Database.Port,
			Name:         cfg.Database.Name,
			User:         cfg.Database.User,
			Password:     cfg.Database.Password,
			SSLMode:      cfg.Database.SSLMode,
			MaxOpenConns: cfg.Database.MaxOpenConns,
			MaxIdleConns: cfg.Database.MaxIdleConns,
			MaxLifetime:  cfg.Database.MaxLifetime,
		},
		log.Logger,
	)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() { _ = postgres.Close(db) }()

	// Run migrations
	if err := migrations.Run(db); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}
	log.Info("database migrations completed")

	// Create repositories
	contentRepo := postgres.NewContentRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)

	// Create metadata provider client
	metadata := tmdb.New(
		tmdb.Config{
			BaseURL:      cfg.TMDB.BaseURL,
			ImageBaseURL: cfg.TMDB.ImageBaseURL,
			APIKey:       cfg.TMDB.APIKey,
			Language:     cfg.TMDB.Language,
			Region:       cfg.TMDB.Region,
			Timeout:      cfg.TMDB.Timeout,
			Retry: tmdb.RetryConfig{
				MaxAttempts: cfg.TMDB.Retry.MaxAttempts,
				WaitTime:    cfg.TMDB.Retry.WaitTime,
				MaxWaitTime: cfg.TMDB.Retry.MaxWaitTime,
			},
			CB: tmdb.CBConfig{
				MaxRequests:  cfg.TMDB.CB.MaxRequests,
				Interval:     cfg.TMDB.CB.Interval,
				Timeout:      cfg.TMDB.CB.Timeout,
				FailureRatio: cfg.TMDB.CB.FailureRatio,
			},
		},
		log.Logger,
	)

	// Connect to Redis (optional). Without it the service runs with no
	// list cache and no distributed ingestion lock.
	var (
		cache      domain.Cache
		distLocker locker.DistributedLocker
	)
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("failed to connect to Redis", zap.Error(err))
		}
		defer func() { _ = redisClient.Close() }()
		log.Info("connected to Redis",
			zap.String("host", cfg.Redis.Host),
			zap.Int("port", cfg.Redis.Port),
		)

		distLocker = locker.NewRedisLocker(redisClient, log.Logger)

		if cfg.Cache.Enabled {
			cache = rediscache.NewCache(redisClient, log.Logger, cfg.Cache.KeyPrefix)
			log.Info("cache enabled",
				zap.Duration("list_ttl", cfg.Cache.ListTTL),
				zap.String("key_prefix", cfg.Cache.KeyPrefix),
			)
		} else {
			log.Info("cache disabled")
		}
	} else {
		log.Info("redis disabled, running without cache and ingestion lock")
	}

	// Create services
	contentSvc := service.NewContentService(
		contentRepo,
		categoryRepo,
		metadata,
		service.ContentServiceConfig{
			Locker:   distLocker,
			Cache:    cache,
			CacheTTL: cfg.Cache.ListTTL,
			LockTTL:  cfg.Ingest.LockTTL,
		},
		log.Logger,
	)
	categorySvc := service.NewCategoryService(categoryRepo, contentRepo, cache, cfg.Cache.ListTTL, log.Logger)

	// Create validator
	v := validator.New()

	// Create HTTP server
	server := httpserver.NewServer(
		httpserver.ServerConfig{
			Port:      cfg.App.Port,
			BodyLimit: 1024 * 1024, // 1MB
			APIKey:    cfg.Auth.APIKey,
		},
		contentSvc,
		categorySvc,
		db,
		v,
		log.Logger,
	)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info("shutdown signal received")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.App.ShutdownWithContext(ctx); err != nil {
			log.Error("server shutdown error", zap.Error(err))
		}
	}()

	// Start server
	if err := server.Start(cfg.App.Port); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
