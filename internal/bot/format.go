package bot

import (
	"fmt"
	"strings"

	"github.com/DanRulev/finquest.git/internal/models"
	"github.com/DanRulev/finquest.git/internal/progression"
)

func lessonLabel(v models.LessonView) string {
	icon := "▶️"
	switch {
	case v.IsCompleted:
		icon = "✅"
	case v.IsLocked:
		icon = "🔒"
	}
	return fmt.Sprintf("%s %d. %s", icon, v.Number, v.Title)
}

func formatLessons(views []models.LessonView) string {
	if len(views) == 0 {
		return "📚 No lessons yet. Check back soon!"
	}

	var sb strings.Builder
	sb.WriteString("📚 Lessons\n\n")

	for _, v := range views {
		sb.WriteString(lessonLabel(v))
		if v.QuestionCount == 0 {
			sb.WriteString(" (coming soon)")
		} else {
			fmt.Fprintf(&sb, " · %s · %d XP", v.Difficulty, v.RewardXP())
		}
		sb.WriteString("\n")
		if v.Description != "" {
			sb.WriteString("   ")
			sb.WriteString(v.Description)
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\nPick a lesson to start.")

	return sb.String()
}

func formatPage(lessonTitle string, page models.LessonPage, n, total int) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "📖 %s (%d/%d)\n\n", lessonTitle, n, total)
	if page.Title != "" {
		sb.WriteString(page.Title)
		sb.WriteString("\n\n")
	}
	sb.WriteString(strings.Join(page.Content, "\n\n"))

	return sb.String()
}

func formatQuestion(session *progression.Session, question models.Question) string {
	return fmt.Sprintf("❓ Question %d/%d\n\n%s", session.Index()+1, session.QuestionCount(), question.Title)
}

func formatFeedback(session *progression.Session, question models.Question, selected string, correct bool) string {
	var sb strings.Builder

	sb.WriteString(formatQuestion(session, question))
	sb.WriteString("\n\nYour answer: ")
	sb.WriteString(selected)
	sb.WriteString("\n\n")

	if correct {
		sb.WriteString("✅ Correct!")
	} else {
		sb.WriteString("❌ Incorrect. Try again.")
	}

	if question.Explanation.Valid && question.Explanation.String != "" {
		sb.WriteString("\n\n💡 ")
		sb.WriteString(question.Explanation.String)
	}

	return sb.String()
}

func formatCompletion(lesson models.Lesson, res models.CompletionResult) string {
	if res.Awarded {
		return fmt.Sprintf("🎉 Level completed! +%d XP earned!\n\n%s is done. Total XP: %d", res.XPAwarded, lesson.Title, res.TotalXP)
	}
	return fmt.Sprintf("You already completed this lesson (no additional XP earned)\n\nTotal XP: %d", res.TotalXP)
}

func formatProfile(summary models.ProfileSummary) string {
	name := summary.Username
	if name == "" {
		name = fmt.Sprintf("Learner #%d", summary.ID)
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "👤 %s\n\n", name)
	fmt.Fprintf(&sb, "⭐ XP: %d\n", summary.XP)
	fmt.Fprintf(&sb, "🎯 Level: %d (%d%%)\n", summary.Level(), summary.LevelProgress())
	fmt.Fprintf(&sb, "📈 %d XP to level %d\n", summary.XPToNextLevel(), summary.Level()+1)
	fmt.Fprintf(&sb, "📚 Completed lessons: %d/%d", summary.CompletedLessons, summary.TotalLessons)

	return sb.String()
}

var medals = []string{"🥇", "🥈", "🥉"}

func formatLeaderboard(snapshot models.LeaderboardSnapshot) string {
	if len(snapshot.Entries) == 0 {
		return "🏆 No learners yet. Be the first!"
	}

	var sb strings.Builder
	sb.WriteString("🏆 Leaderboard\n")

	for _, e := range snapshot.Entries {
		name := e.Username
		if name == "" {
			name = fmt.Sprintf("Learner #%d", e.UserID)
		}
		prefix := fmt.Sprintf("%d.", e.Rank)
		if e.Rank >= 1 && e.Rank <= len(medals) {
			prefix = medals[e.Rank-1]
		}
		fmt.Fprintf(&sb, "\n%s %s: %d XP", prefix, name, e.XP)
	}

	return sb.String()
}
