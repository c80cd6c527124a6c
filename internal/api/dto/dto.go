package dto

import (
	"net/http"
	"time"

	"github.com/DanRulev/finquest.git/internal/models"
	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func JsonError(c *gin.Context, status int, message ...string) {
	msg := ""
	if len(message) > 0 {
		msg = message[0]
	}

	c.JSON(status, ErrorResponse{
		Error:   http.StatusText(status),
		Message: msg,
	})
}

type ProfileDTO struct {
	ID               int64  `json:"id"`
	Username         string `json:"username"`
	XP               int    `json:"xp"`
	Level            int    `json:"level"`
	XPToNextLevel    int    `json:"xp_to_next_level"`
	LevelProgress    int    `json:"level_progress"`
	CompletedLessons int    `json:"completed_lessons"`
	TotalLessons     int    `json:"total_lessons"`
}

func NewProfileDTO(s models.ProfileSummary) ProfileDTO {
	return ProfileDTO{
		ID:               s.ID,
		Username:         s.Username,
		XP:               s.XP,
		Level:            s.Level(),
		XPToNextLevel:    s.XPToNextLevel(),
		LevelProgress:    s.LevelProgress(),
		CompletedLessons: s.CompletedLessons,
		TotalLessons:     s.TotalLessons,
	}
}

type LessonDTO struct {
	ID            int64             `json:"id"`
	Number        int               `json:"number"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	Difficulty    models.Difficulty `json:"difficulty"`
	XP            int               `json:"xp"`
	QuestionCount int               `json:"question_count"`
	IsCompleted   bool              `json:"is_completed"`
	IsLocked      bool              `json:"is_locked"`
}

func NewLessonDTOs(views []models.LessonView) []LessonDTO {
	out := make([]LessonDTO, 0, len(views))
	for _, v := range views {
		out = append(out, LessonDTO{
			ID:            v.ID,
			Number:        v.Number,
			Title:         v.Title,
			Description:   v.Description,
			Difficulty:    v.Difficulty,
			XP:            v.RewardXP(),
			QuestionCount: v.QuestionCount,
			IsCompleted:   v.IsCompleted,
			IsLocked:      v.IsLocked,
		})
	}
	return out
}

type LeaderboardDTO struct {
	Entries     []models.LeaderboardEntry `json:"entries"`
	RefreshedAt time.Time                 `json:"refreshed_at"`
}

func NewLeaderboardDTO(s models.LeaderboardSnapshot) LeaderboardDTO {
	entries := s.Entries
	if entries == nil {
		entries = []models.LeaderboardEntry{}
	}
	return LeaderboardDTO{
		Entries:     entries,
		RefreshedAt: s.RefreshedAt,
	}
}
