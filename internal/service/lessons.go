package service

import (
	"context"
	"fmt"
	"time"

	"github.com/DanRulev/finquest.git/internal/models"
	"github.com/DanRulev/finquest.git/internal/progression"
	"go.uber.org/zap"
)

type LessonS struct {
	lessons  LessonRI
	progress ProgressRI
	pub      PublisherI
	log      *zap.Logger
}

func NewLessonService(lessons LessonRI, progress ProgressRI, pub PublisherI, log *zap.Logger) *LessonS {
	return &LessonS{
		lessons:  lessons,
		progress: progress,
		pub:      pub,
		log:      log,
	}
}

// Lessons returns every lesson in display order with the user's
// completion and lock state.
func (l *LessonS) Lessons(ctx context.Context, userID int64) ([]models.LessonView, error) {
	lessons, err := l.lessons.ListLessons(ctx)
	if err != nil {
		l.log.Warn("failed to list lessons", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}

	completed, err := l.progress.CompletedLessonIDs(ctx, userID)
	if err != nil {
		l.log.Warn("failed to get completed lessons", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}

	return progression.ResolveLessons(lessons, completed), nil
}

// StartLesson resolves the lock state from a fresh read of the user's
// progress and returns a session waiting for the first answer.
func (l *LessonS) StartLesson(ctx context.Context, userID, lessonID int64) (*progression.Session, error) {
	views, err := l.Lessons(ctx, userID)
	if err != nil {
		return nil, err
	}

	view, ok := progression.FindLesson(views, lessonID)
	if !ok {
		return nil, models.ErrLessonNotFound
	}
	if view.IsLocked {
		return nil, models.ErrLessonLocked
	}

	questions, err := l.lessons.ListQuestions(ctx, lessonID)
	if err != nil {
		l.log.Warn("failed to list questions", zap.Int64("user_id", userID), zap.Int64("lesson_id", lessonID), zap.Error(err))
		return nil, err
	}

	session := progression.NewSession()
	if err := session.Start(view, questions); err != nil {
		return nil, err
	}

	return session, nil
}

func (l *LessonS) LessonPages(ctx context.Context, lessonID int64) ([]models.LessonPage, error) {
	pages, err := l.lessons.LessonPages(ctx, lessonID)
	if err != nil {
		l.log.Warn("failed to list lesson pages", zap.Int64("lesson_id", lessonID), zap.Error(err))
		return nil, err
	}

	return pages, nil
}

// Finalize awards the lesson's XP at most once. A lesson that is already
// completed yields an unawarded result carrying the current total.
func (l *LessonS) Finalize(ctx context.Context, userID int64, lesson models.Lesson) (models.CompletionResult, error) {
	done, err := l.progress.IsLessonCompleted(ctx, userID, lesson.ID)
	if err != nil {
		l.log.Warn("failed to check completion", zap.Int64("user_id", userID), zap.Int64("lesson_id", lesson.ID), zap.Error(err))
		return models.CompletionResult{}, err
	}

	if done {
		total, err := l.progress.UserXP(ctx, userID)
		if err != nil {
			l.log.Warn("failed to get user xp", zap.Int64("user_id", userID), zap.Error(err))
			return models.CompletionResult{}, err
		}
		return models.CompletionResult{LessonID: lesson.ID, TotalXP: total}, nil
	}

	res, err := l.progress.CompleteLesson(ctx, userID, lesson.ID, lesson.RewardXP())
	if err != nil {
		l.log.Warn("failed to complete lesson", zap.Int64("user_id", userID), zap.Int64("lesson_id", lesson.ID), zap.Error(err))
		return models.CompletionResult{}, fmt.Errorf("complete lesson %d: %w", lesson.ID, err)
	}

	if res.Awarded {
		event := models.LessonCompletedEvent{
			UserID:      userID,
			LessonID:    lesson.ID,
			XPAwarded:   res.XPAwarded,
			TotalXP:     res.TotalXP,
			CompletedAt: time.Now().UTC(),
		}
		if err := l.pub.PublishLessonCompleted(ctx, event); err != nil {
			l.log.Warn("failed to publish lesson completed event", zap.Int64("user_id", userID), zap.Int64("lesson_id", lesson.ID), zap.Error(err))
		}
	}

	return res, nil
}
