package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/marketscope-service/internal/config"
	httpDelivery "github.com/marketscope-service/internal/delivery/http"
	"github.com/marketscope-service/internal/delivery/http/handler"
	"github.com/marketscope-service/internal/domain/repository"
	"github.com/marketscope-service/internal/infrastructure/gemini"
	"github.com/marketscope-service/internal/pkg/logger"
	"github.com/marketscope-service/internal/repository/memory"
	"github.com/marketscope-service/internal/repository/postgres"
	"github.com/marketscope-service/internal/repository/redis"
	"github.com/marketscope-service/internal/repository/storage"
	"github.com/marketscope-service/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting MarketScope Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("storage_backend", cfg.Storage.Backend),
	)

	// 3. Connect to the configured key-value backend
	kv, closeKV, err := newKVRepository(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize storage backend", zap.Error(err))
	}
	defer closeKV()

	// 4. Initialize collection store and seed data
	store := storage.NewStore(kv, log, cfg.Storage.KeyPrefix, cfg.Survey.DefaultQuarterlyTarget)

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := store.Init(initCtx); err != nil {
		log.Fatal("Failed to initialize data store", zap.Error(err))
	}
	log.Info("Data store initialized")

	// 5. Initialize external clients
	narrativeClient := gemini.NewClient(&cfg.Gemini, log)

	// 6. Initialize Use Cases
	parkUC := usecase.NewParkUseCase(store, log)
	surveyUC := usecase.NewSurveyUseCase(store, log)
	trendUC := usecase.NewTrendUseCase(store, log)
	statsUC := usecase.NewStatsUseCase(store, log)
	analysisUC := usecase.NewAnalysisUseCase(store, narrativeClient, log)
	settingsUC := usecase.NewSettingsUseCase(store, log)
	backupUC := usecase.NewBackupUseCase(store, log)

	log.Info("Use cases initialized")

	// 7. Initialize Handlers
	parkHandler := handler.NewParkHandler(parkUC, log)
	surveyHandler := handler.NewSurveyHandler(surveyUC, log)
	trendHandler := handler.NewTrendHandler(trendUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)
	analysisHandler := handler.NewAnalysisHandler(analysisUC, log)
	settingsHandler := handler.NewSettingsHandler(settingsUC, log)
	backupHandler := handler.NewBackupHandler(backupUC, log)

	// 8. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		parkHandler,
		surveyHandler,
		trendHandler,
		statsHandler,
		analysisHandler,
		settingsHandler,
		backupHandler,
	)

	// 9. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 10. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// 11. Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}

// newKVRepository подключает key-value хранилище по настройке Storage.Backend
// и возвращает функцию освобождения соединения
func newKVRepository(cfg *config.Config, log *zap.Logger) (repository.KVRepository, func(), error) {
	switch cfg.Storage.Backend {
	case "redis":
		redisClient, err := redis.New(&cfg.Redis, log)
		if err != nil {
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := redisClient.Health(ctx); err != nil {
			redisClient.Close()
			return nil, nil, fmt.Errorf("redis health check: %w", err)
		}
		log.Info("Redis connected")

		closeFn := func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}
		return redis.NewKVRepository(redisClient), closeFn, nil

	case "postgres":
		db, err := postgres.New(&cfg.Database, log)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Health(ctx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("postgres health check: %w", err)
		}
		log.Info("PostgreSQL connected")

		kv, err := postgres.NewKVRepository(db)
		if err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("prepare kv schema: %w", err)
		}

		closeFn := func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close PostgreSQL connection", zap.Error(err))
			}
		}
		return kv, closeFn, nil

	case "memory":
		log.Warn("Using in-memory storage, data will not survive restart")
		return memory.NewKVRepository(), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend: %q", cfg.Storage.Backend)
	}
}
