package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/shenikar/sinkhole_navigator/internal/config"
	v1 "github.com/shenikar/sinkhole_navigator/internal/handler/http/v1"
	"github.com/shenikar/sinkhole_navigator/internal/metrics"
	"github.com/shenikar/sinkhole_navigator/internal/planner"
	"github.com/shenikar/sinkhole_navigator/internal/repository"
	"github.com/shenikar/sinkhole_navigator/internal/service"
	"github.com/shenikar/sinkhole_navigator/internal/webhook"
	"github.com/shenikar/sinkhole_navigator/pkg/logger"
	"github.com/shenikar/sinkhole_navigator/pkg/postgres"
	redisclient "github.com/shenikar/sinkhole_navigator/pkg/redis"

	_ "github.com/shenikar/sinkhole_navigator/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 5 * time.Second

// @title Sinkhole Navigator API
// @version 1.0
// @description Safe walking routes that detour around known sinkhole risk areas.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, nil)

	// Контекст для graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatalf("Application stopped with error: %v", err)
	}
	log.Info("Server gracefully stopped")
}

func run(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	// Запуск миграций
	log.Info("Running database migrations...")
	if err := postgres.RunMigrations(cfg.DatabaseURL, "file://migrations"); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}
	log.Info("Database migrations applied successfully")

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, redisclient.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return err
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Метрики
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.NewCollector(registry)

	// Вебхуки
	webhookPublisher := webhook.NewRedisWebhookPublisher(redisClient)
	webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)

	// Инициализация репозиториев
	hazardRepo := repository.NewHazardRepository(dbpool, redisClient)
	historyRepo := repository.NewHistoryRepository(dbpool)

	// Планировщик маршрутов
	routePlanner := planner.New(log, planner.Options{
		WalkingSpeedMetersPerMinute: cfg.WalkingSpeedMetersPerMinute,
		Proximity:                   planner.ProximityMode(cfg.ProximityMode),
	})

	// Инициализация сервисов
	hazardService := service.NewHazardService(hazardRepo, log)
	navigationService := service.NewNavigationService(hazardRepo, historyRepo, routePlanner, webhookPublisher, collector, log, cfg)

	// Инициализация хэндлеров
	handler := v1.NewHandler(hazardService, navigationService, log, cfg)

	// Настройка Gin роутера
	router := gin.New()
	router.Use(gin.Recovery(), collector.Middleware())
	handler.RegisterRoutes(router.Group("/api/v1"))

	router.GET("/metrics", gin.WrapH(collector.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Infof("HTTP server started on port %s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error starting HTTP server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return webhookWorker.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("Received shutdown signal, shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
