package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DanRulev/finquest.git/internal/models"
	mock_service "github.com/DanRulev/finquest.git/internal/service/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newLeaderboardServiceMock(t *testing.T, ctrl *gomock.Controller, limit int, setupMock func(*mock_service.MockRepositoryI, *mock_service.MockLeaderboardCacheI)) *LeaderboardS {
	repo := mock_service.NewMockRepositoryI(ctrl)
	cache := mock_service.NewMockLeaderboardCacheI(ctrl)
	if setupMock != nil {
		setupMock(repo, cache)
	}

	return NewLeaderboardService(repo, cache, limit, zap.NewNop())
}

func topUsers() []models.LeaderboardEntry {
	return []models.LeaderboardEntry{
		{UserID: 4, Username: "dave", XP: 70},
		{UserID: 2, Username: "bob", XP: 50},
		{UserID: 3, Username: "carol", XP: 50},
	}
}

func TestLeaderboardS_Refresh(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_service.MockRepositoryI, *mock_service.MockLeaderboardCacheI)
		wantErr bool
	}{
		{
			name: "ranks follow store order",
			f: func(mri *mock_service.MockRepositoryI, mlc *mock_service.MockLeaderboardCacheI) {
				mri.EXPECT().TopUsersByXP(gomock.Any(), 10).Return(topUsers(), nil)
				mlc.EXPECT().SaveLeaderboard(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "cache failure still returns snapshot",
			f: func(mri *mock_service.MockRepositoryI, mlc *mock_service.MockLeaderboardCacheI) {
				mri.EXPECT().TopUsersByXP(gomock.Any(), 10).Return(topUsers(), nil)
				mlc.EXPECT().SaveLeaderboard(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
			},
		},
		{
			name: "store error",
			f: func(mri *mock_service.MockRepositoryI, _ *mock_service.MockLeaderboardCacheI) {
				mri.EXPECT().TopUsersByXP(gomock.Any(), 10).Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			board := newLeaderboardServiceMock(t, ctrl, 0, tt.f)

			got, err := board.Refresh(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Len(t, got.Entries, 3)
			for i, e := range got.Entries {
				assert.Equal(t, i+1, e.Rank)
				if i > 0 {
					assert.GreaterOrEqual(t, got.Entries[i-1].XP, e.XP)
				}
			}
			assert.Equal(t, int64(4), got.Entries[0].UserID)
			assert.False(t, got.RefreshedAt.IsZero())
		})
	}
}

func TestLeaderboardS_Leaderboard(t *testing.T) {
	t.Parallel()

	cached := models.LeaderboardSnapshot{
		Entries:     []models.LeaderboardEntry{{Rank: 1, UserID: 9, XP: 100}},
		RefreshedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name      string
		f         func(*mock_service.MockRepositoryI, *mock_service.MockLeaderboardCacheI)
		wantFirst int64
	}{
		{
			name: "served from cache",
			f: func(_ *mock_service.MockRepositoryI, mlc *mock_service.MockLeaderboardCacheI) {
				mlc.EXPECT().Leaderboard(gomock.Any()).Return(cached, true, nil)
			},
			wantFirst: 9,
		},
		{
			name: "cold cache refreshes",
			f: func(mri *mock_service.MockRepositoryI, mlc *mock_service.MockLeaderboardCacheI) {
				mlc.EXPECT().Leaderboard(gomock.Any()).Return(models.LeaderboardSnapshot{}, false, nil)
				mri.EXPECT().TopUsersByXP(gomock.Any(), 5).Return(topUsers(), nil)
				mlc.EXPECT().SaveLeaderboard(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantFirst: 4,
		},
		{
			name: "cache error refreshes",
			f: func(mri *mock_service.MockRepositoryI, mlc *mock_service.MockLeaderboardCacheI) {
				mlc.EXPECT().Leaderboard(gomock.Any()).Return(models.LeaderboardSnapshot{}, false, errors.New("redis down"))
				mri.EXPECT().TopUsersByXP(gomock.Any(), 5).Return(topUsers(), nil)
				mlc.EXPECT().SaveLeaderboard(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
			},
			wantFirst: 4,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			board := newLeaderboardServiceMock(t, ctrl, 5, tt.f)

			got, err := board.Leaderboard(context.Background())
			require.NoError(t, err)
			require.NotEmpty(t, got.Entries)
			assert.Equal(t, tt.wantFirst, got.Entries[0].UserID)
		})
	}
}
