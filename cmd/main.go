package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanRulev/finquest.git/internal/api"
	"github.com/DanRulev/finquest.git/internal/bot"
	"github.com/DanRulev/finquest.git/internal/config"
	"github.com/DanRulev/finquest.git/internal/events"
	"github.com/DanRulev/finquest.git/internal/repository"
	"github.com/DanRulev/finquest.git/internal/scheduler"
	"github.com/DanRulev/finquest.git/internal/service"
	"github.com/DanRulev/finquest.git/internal/storage/cache"
	"github.com/DanRulev/finquest.git/internal/storage/db"
	redisstore "github.com/DanRulev/finquest.git/internal/storage/redis"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

type publisher interface {
	service.PublisherI
	Close() error
}

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func setupPublisher(cfg config.EventsConfig, logger *zap.Logger) publisher {
	if !cfg.Enabled {
		return events.NopPublisher{}
	}

	pub, err := events.NewRabbitMQPublisher(cfg)
	if err != nil {
		logger.Fatal("failed init events publisher", zap.Error(err))
	}
	return pub
}

func setupLeaderboardCache(ctx context.Context, cfg *config.Config, memory *cache.Cache, logger *zap.Logger) service.LeaderboardCacheI {
	if cfg.Leaderboard.Cache != "redis" {
		return memory
	}

	client, err := redisstore.NewClient(ctx, cfg.Redis)
	if err != nil {
		logger.Fatal("failed init redis", zap.Error(err))
	}
	return redisstore.NewLeaderboardCache(client, cfg.Redis.TTL)
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := db.InitDB(cfg.DB)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}
	defer conn.Close()

	repos := repository.NewRepository(conn)

	pub := setupPublisher(cfg.Events, logger)
	defer pub.Close()

	memory := cache.NewCache()
	board := setupLeaderboardCache(ctx, cfg, memory, logger)

	services := service.InitServices(repos, pub, board, cfg.Leaderboard.Limit, logger)

	jobs := scheduler.New(services.LeaderboardS, cfg.Leaderboard.RefreshInterval, cfg.App.Timeout, logger)
	if err := jobs.Start(); err != nil {
		logger.Fatal("failed start scheduler", zap.Error(err))
	}
	defer jobs.Stop()

	if cfg.HTTP.Enabled {
		handler := api.NewHandler(services, conn, cfg.App.Timeout)
		server := api.NewServer(cfg.HTTP.Addr, api.NewRouter(handler, logger), logger)

		go func() {
			if err := server.Start(); err != nil {
				logger.Error("http server stopped", zap.Error(err))
				stop()
			}
		}()

		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				logger.Error("failed shutdown http server", zap.Error(err))
			}
		}()
	}

	handler, err := bot.NewTelegramAPI(cfg.BotToken, cfg.Env, services, memory, cfg.App.Timeout, logger)
	if err != nil {
		logger.Fatal(err.Error())
		return
	}

	logger.Info("finquest started", zap.String("env", cfg.Env))
	handler.Start(ctx)
	logger.Info("finquest stopped")
}
