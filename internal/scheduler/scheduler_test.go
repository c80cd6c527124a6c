package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/DanRulev/finquest.git/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingRefresher struct {
	calls atomic.Int32
	err   error
}

func (c *countingRefresher) Refresh(ctx context.Context) (models.LeaderboardSnapshot, error) {
	c.calls.Add(1)
	if _, ok := ctx.Deadline(); !ok {
		return models.LeaderboardSnapshot{}, errors.New("refresh without deadline")
	}
	return models.LeaderboardSnapshot{}, c.err
}

func TestScheduler_RefreshesPeriodically(t *testing.T) {
	t.Parallel()

	board := &countingRefresher{}
	s := New(board, 50*time.Millisecond, time.Second, zap.NewNop())

	require.NoError(t, s.Start())
	defer s.Stop()

	assert.Eventually(t, func() bool {
		return board.calls.Load() >= 2
	}, 3*time.Second, 10*time.Millisecond)
}

func TestScheduler_RefreshFailureKeepsRunning(t *testing.T) {
	t.Parallel()

	board := &countingRefresher{err: errors.New("db down")}
	s := New(board, 50*time.Millisecond, time.Second, zap.NewNop())

	require.NoError(t, s.Start())
	defer s.Stop()

	assert.Eventually(t, func() bool {
		return board.calls.Load() >= 2
	}, 3*time.Second, 10*time.Millisecond)
}
