package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DanRulev/finquest.git/internal/api/dto"
	"github.com/DanRulev/finquest.git/internal/api/middleware"
	mock_api "github.com/DanRulev/finquest.git/internal/api/mock"
	"github.com/DanRulev/finquest.git/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouterMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_api.MockServiceI, *mock_api.MockPingerI)) *gin.Engine {
	service := mock_api.NewMockServiceI(ctrl)
	db := mock_api.NewMockPingerI(ctrl)
	if setupMock != nil {
		setupMock(service, db)
	}

	return NewRouter(NewHandler(service, db, time.Second), zap.NewNop())
}

func TestRouter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		f          func(*mock_api.MockServiceI, *mock_api.MockPingerI)
		wantStatus int
		assertBody func(*testing.T, []byte)
	}{
		{
			name: "health ok",
			path: "/health",
			f: func(_ *mock_api.MockServiceI, mp *mock_api.MockPingerI) {
				mp.EXPECT().PingContext(gomock.Any()).Return(nil)
			},
			wantStatus: http.StatusOK,
			assertBody: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"status":"ok","service":"finquest"}`, string(body))
			},
		},
		{
			name: "health db down",
			path: "/health",
			f: func(_ *mock_api.MockServiceI, mp *mock_api.MockPingerI) {
				mp.EXPECT().PingContext(gomock.Any()).Return(errors.New("connection refused"))
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name: "leaderboard",
			path: "/leaderboard",
			f: func(ms *mock_api.MockServiceI, _ *mock_api.MockPingerI) {
				ms.EXPECT().Leaderboard(gomock.Any()).Return(models.LeaderboardSnapshot{
					Entries: []models.LeaderboardEntry{
						{Rank: 1, UserID: 4, Username: "dave", XP: 70},
						{Rank: 2, UserID: 2, Username: "bob", XP: 50},
					},
					RefreshedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
				}, nil)
			},
			wantStatus: http.StatusOK,
			assertBody: func(t *testing.T, body []byte) {
				var got dto.LeaderboardDTO
				require.NoError(t, json.Unmarshal(body, &got))
				require.Len(t, got.Entries, 2)
				assert.Equal(t, 1, got.Entries[0].Rank)
				assert.Equal(t, "dave", got.Entries[0].Username)
			},
		},
		{
			name: "empty leaderboard is an empty list",
			path: "/leaderboard",
			f: func(ms *mock_api.MockServiceI, _ *mock_api.MockPingerI) {
				ms.EXPECT().Leaderboard(gomock.Any()).Return(models.LeaderboardSnapshot{}, nil)
			},
			wantStatus: http.StatusOK,
			assertBody: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), `"entries":[]`)
			},
		},
		{
			name: "leaderboard failure",
			path: "/leaderboard",
			f: func(ms *mock_api.MockServiceI, _ *mock_api.MockPingerI) {
				ms.EXPECT().Leaderboard(gomock.Any()).Return(models.LeaderboardSnapshot{}, errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
			assertBody: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"error":"Internal Server Error","message":"failed to get leaderboard"}`, string(body))
			},
		},
		{
			name: "profile",
			path: "/users/42/profile",
			f: func(ms *mock_api.MockServiceI, _ *mock_api.MockPingerI) {
				ms.EXPECT().Profile(gomock.Any(), int64(42)).Return(models.ProfileSummary{
					Profile:          models.Profile{ID: 42, Username: "alice", XP: 60},
					CompletedLessons: 2,
					TotalLessons:     3,
				}, nil)
			},
			wantStatus: http.StatusOK,
			assertBody: func(t *testing.T, body []byte) {
				var got dto.ProfileDTO
				require.NoError(t, json.Unmarshal(body, &got))
				assert.Equal(t, dto.ProfileDTO{
					ID: 42, Username: "alice", XP: 60, Level: 2, XPToNextLevel: 40, LevelProgress: 20,
					CompletedLessons: 2, TotalLessons: 3,
				}, got)
			},
		},
		{
			name: "profile not found",
			path: "/users/42/profile",
			f: func(ms *mock_api.MockServiceI, _ *mock_api.MockPingerI) {
				ms.EXPECT().Profile(gomock.Any(), int64(42)).Return(models.ProfileSummary{}, models.ErrProfileNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "invalid user id",
			path:       "/users/abc/profile",
			wantStatus: http.StatusBadRequest,
			assertBody: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"error":"Bad Request","message":"invalid user id"}`, string(body))
			},
		},
		{
			name: "lessons",
			path: "/users/42/lessons",
			f: func(ms *mock_api.MockServiceI, _ *mock_api.MockPingerI) {
				ms.EXPECT().Lessons(gomock.Any(), int64(42)).Return([]models.LessonView{
					{Lesson: models.Lesson{ID: 1, Title: "Saving", XP: 10, QuestionCount: 2}, Number: 1, IsCompleted: true},
					{Lesson: models.Lesson{ID: 2, Title: "Budgeting"}, Number: 2},
					{Lesson: models.Lesson{ID: 3, Title: "Investing", XP: 30}, Number: 3, IsLocked: true},
				}, nil)
			},
			wantStatus: http.StatusOK,
			assertBody: func(t *testing.T, body []byte) {
				var got []dto.LessonDTO
				require.NoError(t, json.Unmarshal(body, &got))
				require.Len(t, got, 3)
				assert.True(t, got[0].IsCompleted)
				assert.Equal(t, models.DefaultLessonXP, got[1].XP)
				assert.True(t, got[2].IsLocked)
			},
		},
		{
			name:       "unknown route",
			path:       "/nope",
			wantStatus: http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			router := newRouterMock(t, ctrl, tt.f)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			_, err := uuid.Parse(w.Header().Get(middleware.RequestIDHeader))
			assert.NoError(t, err)
			if tt.assertBody != nil {
				tt.assertBody(t, w.Body.Bytes())
			}
		})
	}
}

func TestRouter_RequestIDPropagated(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := newRouterMock(t, ctrl, func(_ *mock_api.MockServiceI, mp *mock_api.MockPingerI) {
		mp.EXPECT().PingContext(gomock.Any()).Return(nil)
	})

	id := uuid.NewString()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(middleware.RequestIDHeader, id)
	router.ServeHTTP(w, req)

	assert.Equal(t, id, w.Header().Get(middleware.RequestIDHeader))
}

func TestErrorHandler_Panic(t *testing.T) {
	t.Parallel()

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.ErrorHandler(zap.NewNop()))
	router.GET("/boom", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, w.Body.String())
}
