package service

import (
	"context"

	"github.com/DanRulev/finquest.git/internal/models"
	"go.uber.org/zap"
)

type LessonRI interface {
	ListLessons(ctx context.Context) ([]models.Lesson, error)
	Lesson(ctx context.Context, lessonID int64) (models.Lesson, error)
	ListQuestions(ctx context.Context, lessonID int64) ([]models.Question, error)
	LessonPages(ctx context.Context, lessonID int64) ([]models.LessonPage, error)
}

type ProgressRI interface {
	CompletedLessonIDs(ctx context.Context, userID int64) (models.CompletedSet, error)
	IsLessonCompleted(ctx context.Context, userID, lessonID int64) (bool, error)
	UserXP(ctx context.Context, userID int64) (int, error)
	CompleteLesson(ctx context.Context, userID, lessonID int64, xp int) (models.CompletionResult, error)
}

type ProfileRI interface {
	EnsureProfile(ctx context.Context, userID int64, username string) error
	Profile(ctx context.Context, userID int64) (models.Profile, error)
	TopUsersByXP(ctx context.Context, limit int) ([]models.LeaderboardEntry, error)
}

type RepositoryI interface {
	LessonRI
	ProgressRI
	ProfileRI
}

type PublisherI interface {
	PublishLessonCompleted(ctx context.Context, event models.LessonCompletedEvent) error
}

type LeaderboardCacheI interface {
	SaveLeaderboard(ctx context.Context, snapshot models.LeaderboardSnapshot) error
	Leaderboard(ctx context.Context) (models.LeaderboardSnapshot, bool, error)
}

type Service struct {
	*LessonS
	*ProfileS
	*LeaderboardS
}

func InitServices(repo RepositoryI, pub PublisherI, board LeaderboardCacheI, boardLimit int, log *zap.Logger) *Service {
	return &Service{
		LessonS:      NewLessonService(repo, repo, pub, log),
		ProfileS:     NewProfileService(repo, repo, repo, log),
		LeaderboardS: NewLeaderboardService(repo, board, boardLimit, log),
	}
}
