package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/courtside/sports-platform/cache"
	"github.com/courtside/sports-platform/config"
	"github.com/courtside/sports-platform/db"
	"github.com/courtside/sports-platform/handlers"
	"github.com/courtside/sports-platform/repositories"
	api "github.com/courtside/sports-platform/routes"
	"github.com/courtside/sports-platform/services"
	"github.com/courtside/sports-platform/storage"
	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
)

func main() {
	// Настройка логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	// Подключение к базе данных
	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	// Кэш: Redis, если задан адрес, иначе no-op.
	var cacheClient cache.Cache
	if cfg.RedisAddr != "" {
		cacheClient, err = cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Error("failed to connect to redis", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("redis cache initialized", slog.String("addr", cfg.RedisAddr))
	} else {
		cacheClient = cache.NewNoopCache()
		logger.Info("redis not configured, caching disabled")
	}

	// Хранилище логотипов (Cloudflare R2), если сконфигурировано.
	var uploader storage.FileUploader
	if cfg.R2Configured() {
		uploader, err = storage.NewCloudflareR2Uploader(storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 uploader initialized")
	} else {
		logger.Info("R2 not configured, logo storage disabled")
	}

	// Инициализация репозиториев
	teamRepo := repositories.NewPostgresTeamRepository(dbConn)
	leagueRepo := repositories.NewPostgresLeagueRepository(dbConn)
	membershipRepo := repositories.NewPostgresMembershipRepository(dbConn)
	contentRepo := repositories.NewPostgresContentRepository(dbConn)
	onboardingRepo := repositories.NewPostgresOnboardingRepository(dbConn)
	logger.Info("repositories initialized")

	// Инициализация сервисов
	searchService := services.NewSearchService(teamRepo, membershipRepo, cacheClient, uploader, logger)
	teamService := services.NewTeamService(teamRepo, membershipRepo, cacheClient, uploader, logger)
	leagueService := services.NewLeagueService(leagueRepo, teamRepo, membershipRepo, uploader, logger)
	contentService := services.NewContentService(contentRepo, services.NewRegexClassifier())
	onboardingService := services.NewOnboardingService(onboardingRepo)
	logger.Info("services initialized")

	// Инициализация обработчиков HTTP
	teamHandler := handlers.NewTeamHandler(searchService, teamService)
	leagueHandler := handlers.NewLeagueHandler(leagueService)
	contentHandler := handlers.NewContentHandler(contentService)
	onboardingHandler := handlers.NewOnboardingHandler(onboardingService)
	logger.Info("HTTP handlers initialized")

	// Настройка маршрутизатора
	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		teamHandler,
		leagueHandler,
		contentHandler,
		onboardingHandler,
		[]byte(cfg.JWTSecretKey),
	)
	logger.Info("routes configured")

	// Настройка и запуск HTTP-сервера
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	// Ожидание сигнала завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		} else {
			logger.Info("server stopped gracefully")
		}
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		} else {
			logger.Info("server shutdown complete")
		}
	}
	logger.Info("application exited")
}
