package repository

import (
	"context"
	"fmt"

	"github.com/DanRulev/finquest.git/internal/models"
)

// ContentR writes lesson content. It is used by the importer, usually on top
// of a transaction.
type ContentR struct {
	db QueryI
}

func NewContentRepository(db QueryI) *ContentR {
	return &ContentR{db: db}
}

// UpsertLesson inserts a lesson or updates the one occupying the same order
// position and returns its id.
func (c *ContentR) UpsertLesson(ctx context.Context, lesson models.Lesson) (int64, error) {
	query := `
		INSERT INTO lessons (title, description, difficulty, xp, order_index)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (order_index) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			difficulty = EXCLUDED.difficulty,
			xp = EXCLUDED.xp
		RETURNING id`

	var id int64
	err := c.db.GetContext(ctx, &id, query,
		lesson.Title, lesson.Description, string(lesson.Difficulty), lesson.XP, lesson.Order)
	if err != nil {
		return 0, fmt.Errorf("failed to save lesson %q: %w", lesson.Title, err)
	}

	return id, nil
}

func (c *ContentR) ReplaceQuestions(ctx context.Context, lessonID int64, questions []models.Question) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM questions WHERE lesson_id = $1`, lessonID); err != nil {
		return fmt.Errorf("failed to clear questions of lesson %d: %w", lessonID, err)
	}

	query := `
		INSERT INTO questions (lesson_id, title, options, correct_answer, explanation)
		VALUES ($1, $2, $3, $4, $5)`

	for _, q := range questions {
		_, err := c.db.ExecContext(ctx, query, lessonID, q.Title, q.Options, q.CorrectAnswer, q.Explanation)
		if err != nil {
			return fmt.Errorf("failed to save question %q: %w", q.Title, err)
		}
	}

	return nil
}

func (c *ContentR) ReplacePages(ctx context.Context, lessonID int64, pages []models.LessonPage) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM lesson_content WHERE lesson_id = $1`, lessonID); err != nil {
		return fmt.Errorf("failed to clear content of lesson %d: %w", lessonID, err)
	}

	query := `
		INSERT INTO lesson_content (lesson_id, order_index, title, content)
		VALUES ($1, $2, $3, $4)`

	for _, p := range pages {
		_, err := c.db.ExecContext(ctx, query, lessonID, p.Order, p.Title, p.Content)
		if err != nil {
			return fmt.Errorf("failed to save page %q: %w", p.Title, err)
		}
	}

	return nil
}
