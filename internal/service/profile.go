package service

import (
	"context"

	"github.com/DanRulev/finquest.git/internal/models"
	"go.uber.org/zap"
)

type ProfileS struct {
	profiles ProfileRI
	progress ProgressRI
	lessons  LessonRI
	log      *zap.Logger
}

func NewProfileService(profiles ProfileRI, progress ProgressRI, lessons LessonRI, log *zap.Logger) *ProfileS {
	return &ProfileS{
		profiles: profiles,
		progress: progress,
		lessons:  lessons,
		log:      log,
	}
}

func (p *ProfileS) EnsureProfile(ctx context.Context, userID int64, username string) error {
	if err := p.profiles.EnsureProfile(ctx, userID, username); err != nil {
		p.log.Warn("failed to save profile", zap.Int64("user_id", userID), zap.Error(err))
		return err
	}
	return nil
}

func (p *ProfileS) Profile(ctx context.Context, userID int64) (models.ProfileSummary, error) {
	profile, err := p.profiles.Profile(ctx, userID)
	if err != nil {
		p.log.Warn("failed to get profile", zap.Int64("user_id", userID), zap.Error(err))
		return models.ProfileSummary{}, err
	}

	lessons, err := p.lessons.ListLessons(ctx)
	if err != nil {
		p.log.Warn("failed to list lessons", zap.Int64("user_id", userID), zap.Error(err))
		return models.ProfileSummary{}, err
	}

	completed, err := p.progress.CompletedLessonIDs(ctx, userID)
	if err != nil {
		p.log.Warn("failed to get completed lessons", zap.Int64("user_id", userID), zap.Error(err))
		return models.ProfileSummary{}, err
	}

	summary := models.ProfileSummary{
		Profile:      profile,
		TotalLessons: len(lessons),
	}
	for _, lesson := range lessons {
		if completed.Has(lesson.ID) {
			summary.CompletedLessons++
		}
	}

	return summary, nil
}
