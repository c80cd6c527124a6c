package bot

import (
	"database/sql"
	"testing"

	"github.com/DanRulev/finquest.git/internal/models"
	"github.com/stretchr/testify/assert"
)

func sqlString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

func TestLessonLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		view models.LessonView
		want string
	}{
		{
			name: "available",
			view: models.LessonView{Lesson: models.Lesson{Title: "Saving"}, Number: 1},
			want: "▶️ 1. Saving",
		},
		{
			name: "completed",
			view: models.LessonView{Lesson: models.Lesson{Title: "Saving"}, Number: 1, IsCompleted: true},
			want: "✅ 1. Saving",
		},
		{
			name: "locked",
			view: models.LessonView{Lesson: models.Lesson{Title: "Saving"}, Number: 2, IsLocked: true},
			want: "🔒 2. Saving",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, lessonLabel(tt.view))
		})
	}
}

func TestFormatLessons(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "📚 No lessons yet. Check back soon!", formatLessons(nil))

	got := formatLessons([]models.LessonView{
		{Lesson: models.Lesson{Title: "Saving", Description: "Pay yourself first", Difficulty: models.DifficultyEasy, XP: 10, QuestionCount: 2}, Number: 1},
		{Lesson: models.Lesson{Title: "Taxes", Difficulty: models.DifficultyHard}, Number: 2, IsLocked: true},
	})
	assert.Contains(t, got, "▶️ 1. Saving · easy · 10 XP\n   Pay yourself first\n")
	assert.Contains(t, got, "🔒 2. Taxes (coming soon)\n")
}

func TestFormatCompletion(t *testing.T) {
	t.Parallel()

	lesson := models.Lesson{Title: "Saving"}

	assert.Equal(t, "🎉 Level completed! +20 XP earned!\n\nSaving is done. Total XP: 30",
		formatCompletion(lesson, models.CompletionResult{Awarded: true, XPAwarded: 20, TotalXP: 30}))
	assert.Equal(t, "You already completed this lesson (no additional XP earned)\n\nTotal XP: 30",
		formatCompletion(lesson, models.CompletionResult{TotalXP: 30}))
}

func TestFormatProfile(t *testing.T) {
	t.Parallel()

	got := formatProfile(models.ProfileSummary{
		Profile:          models.Profile{ID: 7, XP: 60},
		CompletedLessons: 2,
		TotalLessons:     5,
	})

	assert.Equal(t, "👤 Learner #7\n\n⭐ XP: 60\n🎯 Level: 2 (20%)\n📈 40 XP to level 3\n📚 Completed lessons: 2/5", got)
}

func TestFormatLeaderboard(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "🏆 No learners yet. Be the first!", formatLeaderboard(models.LeaderboardSnapshot{}))

	got := formatLeaderboard(models.LeaderboardSnapshot{Entries: []models.LeaderboardEntry{
		{Rank: 1, UserID: 4, Username: "dave", XP: 70},
		{Rank: 2, UserID: 2, Username: "bob", XP: 50},
		{Rank: 3, UserID: 3, Username: "carol", XP: 50},
		{Rank: 4, UserID: 5, XP: 10},
	}})
	assert.Equal(t, "🏆 Leaderboard\n🥇 dave: 70 XP\n🥈 bob: 50 XP\n🥉 carol: 50 XP\n4. Learner #5: 10 XP", got)
}
