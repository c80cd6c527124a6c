package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/DanRulev/finquest.git/internal/config"
	"github.com/DanRulev/finquest.git/internal/models"
	"github.com/redis/go-redis/v9"
)

const leaderboardKey = "finquest:leaderboard"

// LeaderboardCache keeps the latest leaderboard snapshot in Redis so every
// replica serves the same ranking.
type LeaderboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

func NewLeaderboardCache(client *redis.Client, ttl time.Duration) *LeaderboardCache {
	return &LeaderboardCache{
		client: client,
		ttl:    ttl,
	}
}

func (l *LeaderboardCache) SaveLeaderboard(ctx context.Context, snapshot models.LeaderboardSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode leaderboard: %w", err)
	}

	if err := l.client.Set(ctx, leaderboardKey, data, l.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save leaderboard: %w", err)
	}

	return nil
}

func (l *LeaderboardCache) Leaderboard(ctx context.Context) (models.LeaderboardSnapshot, bool, error) {
	data, err := l.client.Get(ctx, leaderboardKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.LeaderboardSnapshot{}, false, nil
		}
		return models.LeaderboardSnapshot{}, false, fmt.Errorf("failed to read leaderboard: %w", err)
	}

	var snapshot models.LeaderboardSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return models.LeaderboardSnapshot{}, false, fmt.Errorf("failed to decode leaderboard: %w", err)
	}

	return snapshot, true, nil
}
