package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/pixelnova/projecthub/internal/api"
	"github.com/pixelnova/projecthub/internal/core/domain"
	"github.com/pixelnova/projecthub/internal/core/service"
	"github.com/pixelnova/projecthub/internal/infrastructure/ai"
	"github.com/pixelnova/projecthub/internal/infrastructure/config"
	redisdb "github.com/pixelnova/projecthub/internal/infrastructure/db/redis"
	"github.com/pixelnova/projecthub/internal/infrastructure/repository"
	"github.com/pixelnova/projecthub/internal/infrastructure/store"
	"github.com/pixelnova/projecthub/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load(slog.Default())

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Optional Redis (AI prompt cache) ---
	var rdb *redis.Client
	var promptCache service.PromptCache
	if cfg.Redis.Addr != "" {
		client, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer client.Close()
		rdb = client
		promptCache = redisdb.NewPromptCache(client)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("AI prompt cache enabled")
	}

	// --- Stores and repositories ---
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.DataDir).Msg("data directory unavailable")
	}
	userRepo := repository.NewUserRepository(store.NewFileStore[domain.User](cfg.DataDir, "users"))
	projectRepo := repository.NewProjectRepository(store.NewFileStore[domain.Project](cfg.DataDir, "projects"))

	// --- Services ---
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokenService, log)
	projectService := service.NewProjectService(projectRepo, log)
	generator := ai.NewClient(ai.Config{
		BaseURL: cfg.DeepSeek.BaseURL,
		APIKey:  cfg.DeepSeek.APIKey,
		Model:   cfg.DeepSeek.Model,
		Timeout: cfg.DeepSeek.Timeout,
	})
	aiService := service.NewAIService(generator, promptCache, log)

	// --- Router ---
	e := api.NewRouter(
		api.RouterConfig{
			AllowedOrigins: cfg.AllowedOrigins,
			StaticDir:      cfg.StaticDir,
			DataDir:        cfg.DataDir,
			Metrics:        true,
		},
		api.Dependencies{
			Auth:     authService,
			Tokens:   tokenService,
			Projects: projectService,
			AI:       aiService,
			Redis:    rdb,
		},
		log,
	)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: e,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
