package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skillsync-backend/config"
	v1 "skillsync-backend/internal/delivery/http/v1"
	"skillsync-backend/internal/domain"
	"skillsync-backend/internal/generation"
	"skillsync-backend/internal/repository/memory"
	"skillsync-backend/internal/repository/redisstore"
	"skillsync-backend/internal/usecase"
	"skillsync-backend/pkg/logger"
	"skillsync-backend/pkg/redis"
	"skillsync-backend/pkg/storage"

	"github.com/go-playground/validator/v10"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting skillsync backend", "port", cfg.Port)

	// 3. Setup Document Store
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Error("Failed to connect to document store", "error", err)
		os.Exit(1)
	}
	defer redis.Close()

	// 4. Setup Gemini Client
	ctx := context.Background()
	genClient, err := generation.NewClient(ctx, generation.Config{
		APIKey:     cfg.GeminiAPIKey,
		TextModel:  cfg.GeminiTextModel,
		TTSModel:   cfg.GeminiTTSModel,
		VideoModel: cfg.GeminiVideoModel,
		Voice:      cfg.GeminiVoice,
	})
	if err != nil {
		logger.Log.Error("Failed to create generation client", "error", err)
		os.Exit(1)
	}

	// 5. Setup Repositories
	freelancerRepo := redisstore.NewFreelancerRepository(redis.Client())
	chatRepo := redisstore.NewChatRepository(redis.Client())
	jobRepo := memory.NewJobRepository()

	// 6. Optional video rehost target
	var uploader domain.MediaUploader
	if s3cfg := storage.NewConfigFromEnv(); s3cfg.IsConfigured() {
		up, err := storage.NewUploader(ctx, s3cfg)
		if err != nil {
			logger.Log.Warn("S3 uploader unavailable, video resumes fall back to placeholder URL", "error", err)
		} else {
			uploader = up
		}
	} else {
		logger.Log.Warn("S3 rehosting not configured - generated videos degrade to the fallback URL")
	}

	// 7. Setup UseCases
	validate := validator.New()
	profileUC := usecase.NewProfileUsecase(freelancerRepo, validate)
	jobUC := usecase.NewJobUsecase(jobRepo, freelancerRepo, genClient)
	matchUC := usecase.NewMatchUsecase(freelancerRepo, jobRepo, genClient)
	chatUC := usecase.NewChatUsecase(chatRepo, freelancerRepo, genClient)
	skillUC := usecase.NewSkillUsecase(genClient)
	videoUC := usecase.NewVideoUsecase(freelancerRepo, genClient, genClient, uploader, usecase.VideoConfig{
		PollInterval:    cfg.VideoPollInterval,
		PollTimeout:     cfg.VideoPollTimeout,
		FallbackURL:     cfg.VideoFallbackURL,
		PropagateErrors: cfg.VideoPropagateErrors,
	})

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ProfileUC: profileUC,
		JobUC:     jobUC,
		MatchUC:   matchUC,
		ChatUC:    chatUC,
		SkillUC:   skillUC,
		VideoUC:   videoUC,
		Config:    cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
