package service

import (
	"context"
	"time"

	"github.com/DanRulev/finquest.git/internal/models"
	"go.uber.org/zap"
)

const defaultLeaderboardLimit = 10

type LeaderboardS struct {
	profiles ProfileRI
	cache    LeaderboardCacheI
	limit    int
	log      *zap.Logger
}

func NewLeaderboardService(profiles ProfileRI, cache LeaderboardCacheI, limit int, log *zap.Logger) *LeaderboardS {
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	return &LeaderboardS{
		profiles: profiles,
		cache:    cache,
		limit:    limit,
		log:      log,
	}
}

// Refresh reads the top profiles, ranks them and stores the snapshot.
// A cache write failure is logged and the fresh snapshot is still returned.
func (l *LeaderboardS) Refresh(ctx context.Context) (models.LeaderboardSnapshot, error) {
	entries, err := l.profiles.TopUsersByXP(ctx, l.limit)
	if err != nil {
		l.log.Warn("failed to get top users", zap.Int("limit", l.limit), zap.Error(err))
		return models.LeaderboardSnapshot{}, err
	}

	for i := range entries {
		entries[i].Rank = i + 1
	}

	snapshot := models.LeaderboardSnapshot{
		Entries:     entries,
		RefreshedAt: time.Now().UTC(),
	}

	if err := l.cache.SaveLeaderboard(ctx, snapshot); err != nil {
		l.log.Warn("failed to cache leaderboard", zap.Error(err))
	}

	return snapshot, nil
}

func (l *LeaderboardS) Leaderboard(ctx context.Context) (models.LeaderboardSnapshot, error) {
	snapshot, ok, err := l.cache.Leaderboard(ctx)
	if err != nil {
		l.log.Warn("failed to read cached leaderboard", zap.Error(err))
	}
	if err == nil && ok {
		return snapshot, nil
	}

	return l.Refresh(ctx)
}
