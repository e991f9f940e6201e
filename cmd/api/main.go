package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"

	"kakao-support-chatbot/config"
	"kakao-support-chatbot/internal/chat"
	adminHTTP "kakao-support-chatbot/internal/chat/delivery/http"
	kakaoDelivery "kakao-support-chatbot/internal/chat/delivery/kakao"
	"kakao-support-chatbot/internal/chat/repository"
	memoryRepo "kakao-support-chatbot/internal/chat/repository/memory"
	redisRepo "kakao-support-chatbot/internal/chat/repository/redis"
	"kakao-support-chatbot/internal/chat/usecase"
	"kakao-support-chatbot/internal/httpserver"
	"kakao-support-chatbot/internal/middleware"
	"kakao-support-chatbot/pkg/engine"
	"kakao-support-chatbot/pkg/kakao"
	"kakao-support-chatbot/pkg/log"
)

const (
	redisPingTimeout = 3 * time.Second
	sweepInterval    = time.Hour
)

// @title       Kakao Support Chatbot API
// @description Kakao webhook relay for the government support program recommendation engine.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

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

	logger.Info(ctx, "Starting Kakao Support Chatbot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Engine URL: %s", cfg.Engine.URL)

	// 3. Session repository: Redis when reachable, in-process otherwise.
	sessionTTL := time.Duration(cfg.Redis.TTLSeconds) * time.Second
	repo := buildSessionRepository(ctx, logger, cfg, sessionTTL)

	// 4. Recommendation engine client
	engineClient := engine.NewClient(cfg.Engine.URL, time.Duration(cfg.Engine.TimeoutSeconds)*time.Second)

	// 5. Kakao push client (optional; only direct sends need it)
	var sender chat.DirectSender
	if cfg.Kakao.APIKey != "" {
		sender = kakao.NewClient(cfg.Kakao.APIKey, cfg.Kakao.APIURL)
		logger.Info(ctx, "Kakao push API configured")
	} else {
		logger.Warn(ctx, "KAKAO_API_KEY not set, direct message sending disabled")
	}

	// 6. Chat use case
	chatUC := usecase.New(logger, repo, engineClient, sender, cfg.Validation.DeniedTerms)

	// 7. Delivery handlers
	kakaoHandler := kakaoDelivery.New(logger, chatUC)
	adminHandler := adminHTTP.New(logger, chatUC, cfg.Environment.Name)

	// 8. Middleware
	mw := middleware.New(logger, cfg.RateLimit.PerMin)

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		ChatUseCase:  chatUC,
		KakaoHandler: kakaoHandler,
		AdminHandler: adminHandler,
		Middleware:   mw,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// buildSessionRepository picks the session backend once at startup. A
// configured Redis that does not answer a ping falls back to memory
// rather than failing the boot: the webhook must keep answering even
// when the store is down.
func buildSessionRepository(ctx context.Context, logger log.Logger, cfg *config.Config, ttl time.Duration) repository.SessionRepository {
	if cfg.Redis.URL != "" {
		opts, err := goredis.ParseURL(cfg.Redis.URL)
		if err != nil {
			logger.Warnf(ctx, "Invalid REDIS_URL %q: %v, using in-memory sessions", cfg.Redis.URL, err)
		} else {
			rdb := goredis.NewClient(opts)
			pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
			defer cancel()
			if err := rdb.Ping(pingCtx).Err(); err != nil {
				logger.Warnf(ctx, "Redis unreachable: %v, using in-memory sessions", err)
			} else {
				logger.Info(ctx, "Redis session store connected")
				return redisRepo.New(logger, rdb, ttl)
			}
		}
	} else {
		logger.Info(ctx, "REDIS_URL not set, using in-memory sessions")
	}

	repo := memoryRepo.New(logger)
	go runSessionSweeper(ctx, logger, repo, ttl)
	return repo
}

// runSessionSweeper expires idle in-memory sessions on an hourly tick.
// Redis handles expiry itself via key TTLs.
func runSessionSweeper(ctx context.Context, logger log.Logger, repo *memoryRepo.Repository, maxAge time.Duration) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := repo.CleanupExpired(maxAge); removed > 0 {
				logger.Infof(ctx, "Session sweep removed %d expired sessions", removed)
			}
		}
	}
}
