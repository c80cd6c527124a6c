package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/DanRulev/finquest.git/internal/models"
	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

type LeaderboardRefresher interface {
	Refresh(ctx context.Context) (models.LeaderboardSnapshot, error)
}

// Scheduler periodically rebuilds the leaderboard snapshot.
type Scheduler struct {
	scheduler *gocron.Scheduler
	board     LeaderboardRefresher
	interval  time.Duration
	timeout   time.Duration
	log       *zap.Logger
}

func New(board LeaderboardRefresher, interval, timeout time.Duration, log *zap.Logger) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()

	return &Scheduler{
		scheduler: s,
		board:     board,
		interval:  interval,
		timeout:   timeout,
		log:       log,
	}
}

// Start schedules the refresh job and runs it in the background. The first
// run happens immediately.
func (s *Scheduler) Start() error {
	if _, err := s.scheduler.Every(s.interval).Do(s.refreshLeaderboard); err != nil {
		return fmt.Errorf("failed to schedule leaderboard refresh: %w", err)
	}

	s.scheduler.StartAsync()
	return nil
}

func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) refreshLeaderboard() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	snapshot, err := s.board.Refresh(ctx)
	if err != nil {
		s.log.Warn("leaderboard refresh failed", zap.Error(err))
		return
	}

	s.log.Debug("leaderboard refreshed", zap.Int("entries", len(snapshot.Entries)))
}
