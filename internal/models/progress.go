package models

import "time"

const XPPerLevel = 50

type Profile struct {
	ID        int64     `db:"id" json:"id"`
	Username  string    `db:"username" json:"username"`
	XP        int       `db:"xp" json:"xp"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

func (p Profile) Level() int {
	return p.XP/XPPerLevel + 1
}

func (p Profile) XPToNextLevel() int {
	return XPPerLevel - p.XP%XPPerLevel
}

// LevelProgress is the percentage of the current level already earned.
func (p Profile) LevelProgress() int {
	return p.XP % XPPerLevel * 100 / XPPerLevel
}

type ProfileSummary struct {
	Profile
	CompletedLessons int `json:"completed_lessons"`
	TotalLessons     int `json:"total_lessons"`
}

type CompletionRecord struct {
	UserID      int64     `db:"user_id"`
	LessonID    int64     `db:"lesson_id"`
	CompletedAt time.Time `db:"completed_at"`
}

type CompletedSet map[int64]struct{}

func NewCompletedSet(ids ...int64) CompletedSet {
	set := make(CompletedSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func (c CompletedSet) Has(lessonID int64) bool {
	_, ok := c[lessonID]
	return ok
}

type CompletionResult struct {
	LessonID  int64
	Awarded   bool
	XPAwarded int
	TotalXP   int
}

type LeaderboardEntry struct {
	Rank     int    `db:"-" json:"rank"`
	UserID   int64  `db:"id" json:"user_id"`
	Username string `db:"username" json:"username"`
	XP       int    `db:"xp" json:"xp"`
}

type LeaderboardSnapshot struct {
	Entries     []LeaderboardEntry `json:"entries"`
	RefreshedAt time.Time          `json:"refreshed_at"`
}

type LessonCompletedEvent struct {
	UserID      int64     `json:"user_id"`
	LessonID    int64     `json:"lesson_id"`
	XPAwarded   int       `json:"xp_awarded"`
	TotalXP     int       `json:"total_xp"`
	CompletedAt time.Time `json:"completed_at"`
}
