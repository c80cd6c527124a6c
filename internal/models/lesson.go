package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// DefaultLessonXP is awarded for lessons stored without a positive reward.
const DefaultLessonXP = 5

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

type Lesson struct {
	ID            int64      `db:"id" json:"id"`
	Title         string     `db:"title" json:"title"`
	Description   string     `db:"description" json:"description"`
	Difficulty    Difficulty `db:"difficulty" json:"difficulty"`
	XP            int        `db:"xp" json:"xp"`
	Order         int        `db:"order_index" json:"order"`
	QuestionCount int        `db:"question_count" json:"question_count"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
}

func (l Lesson) RewardXP() int {
	if l.XP <= 0 {
		return DefaultLessonXP
	}
	return l.XP
}

// LessonView is a lesson as seen by one user.
type LessonView struct {
	Lesson
	Number      int  `json:"number"`
	IsCompleted bool `json:"is_completed"`
	IsLocked    bool `json:"is_locked"`
}

// Options is an ordered list of strings stored as a JSON array.
type Options []string

func (o Options) Value() (driver.Value, error) {
	if o == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(o))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (o *Options) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*o = Options{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("options: unsupported type %T", src)
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return fmt.Errorf("options: %w", err)
	}
	*o = list
	return nil
}

type Question struct {
	ID            int64          `db:"id" json:"id"`
	LessonID      int64          `db:"lesson_id" json:"lesson_id"`
	Title         string         `db:"title" json:"title"`
	Options       Options        `db:"options" json:"options"`
	CorrectAnswer string         `db:"correct_answer" json:"-"`
	Explanation   sql.NullString `db:"explanation" json:"-"`
}

var (
	errNoOptions       = errors.New("question has no options")
	errAnswerNotOption = errors.New("correct answer must match exactly one option")
)

// Validate reports content errors that would make the question unanswerable.
func (q Question) Validate() error {
	if len(q.Options) == 0 {
		return errNoOptions
	}
	matches := 0
	for _, opt := range q.Options {
		if opt == q.CorrectAnswer {
			matches++
		}
	}
	if matches != 1 {
		return errAnswerNotOption
	}
	return nil
}

type LessonPage struct {
	ID       int64   `db:"id"`
	LessonID int64   `db:"lesson_id"`
	Order    int     `db:"order_index"`
	Title    string  `db:"title"`
	Content  Options `db:"content"`
}
