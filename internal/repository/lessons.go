package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DanRulev/finquest.git/internal/models"
)

const lessonColumns = `
	l.id, l.title, l.description, l.difficulty, l.xp, l.order_index, l.created_at,
	(SELECT COUNT(*) FROM questions q WHERE q.lesson_id = l.id) AS question_count`

type LessonsR struct {
	db QueryI
}

func NewLessonsRepository(db QueryI) *LessonsR {
	return &LessonsR{db: db}
}

func (l *LessonsR) ListLessons(ctx context.Context) ([]models.Lesson, error) {
	query := `SELECT ` + lessonColumns + `
		FROM lessons l
		ORDER BY l.order_index, l.id`

	lessons := make([]models.Lesson, 0)
	if err := l.db.SelectContext(ctx, &lessons, query); err != nil {
		return nil, fmt.Errorf("failed to list lessons: %w", err)
	}

	return lessons, nil
}

func (l *LessonsR) Lesson(ctx context.Context, lessonID int64) (models.Lesson, error) {
	query := `SELECT ` + lessonColumns + `
		FROM lessons l
		WHERE l.id = $1`

	var lesson models.Lesson
	err := l.db.GetContext(ctx, &lesson, query, lessonID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Lesson{}, models.ErrLessonNotFound
		}
		return models.Lesson{}, fmt.Errorf("failed to get lesson %d: %w", lessonID, err)
	}

	return lesson, nil
}

func (l *LessonsR) ListQuestions(ctx context.Context, lessonID int64) ([]models.Question, error) {
	query := `
		SELECT id, lesson_id, title, options, correct_answer, explanation
		FROM questions
		WHERE lesson_id = $1
		ORDER BY id`

	questions := make([]models.Question, 0)
	if err := l.db.SelectContext(ctx, &questions, query, lessonID); err != nil {
		return nil, fmt.Errorf("failed to list questions for lesson %d: %w", lessonID, err)
	}

	return questions, nil
}

func (l *LessonsR) LessonPages(ctx context.Context, lessonID int64) ([]models.LessonPage, error) {
	query := `
		SELECT id, lesson_id, order_index, title, content
		FROM lesson_content
		WHERE lesson_id = $1
		ORDER BY order_index, id`

	pages := make([]models.LessonPage, 0)
	if err := l.db.SelectContext(ctx, &pages, query, lessonID); err != nil {
		return nil, fmt.Errorf("failed to list content for lesson %d: %w", lessonID, err)
	}

	return pages, nil
}
