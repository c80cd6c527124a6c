package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DanRulev/finquest.git/internal/models"
)

type ProgressR struct {
	db QueryI
	tx TxStarter
}

func NewProgressRepository(db QueryI, tx TxStarter) *ProgressR {
	return &ProgressR{
		db: db,
		tx: tx,
	}
}

func (p *ProgressR) CompletedLessonIDs(ctx context.Context, userID int64) (models.CompletedSet, error) {
	query := `SELECT lesson_id FROM completed_lessons WHERE user_id = $1`

	var ids []int64
	if err := p.db.SelectContext(ctx, &ids, query, userID); err != nil {
		return nil, fmt.Errorf("failed to get completed lessons for user %d: %w", userID, err)
	}

	return models.NewCompletedSet(ids...), nil
}

func (p *ProgressR) IsLessonCompleted(ctx context.Context, userID, lessonID int64) (bool, error) {
	query := `SELECT COUNT(*) FROM completed_lessons WHERE user_id = $1 AND lesson_id = $2`

	var count int
	if err := p.db.GetContext(ctx, &count, query, userID, lessonID); err != nil {
		return false, fmt.Errorf("failed to check completion of lesson %d: %w", lessonID, err)
	}

	return count > 0, nil
}

func (p *ProgressR) UserXP(ctx context.Context, userID int64) (int, error) {
	return userXP(ctx, p.db, userID)
}

func (p *ProgressR) AddUserXP(ctx context.Context, userID int64, delta int) (int, error) {
	return addUserXP(ctx, p.db, userID, delta)
}

func (p *ProgressR) RecordCompletion(ctx context.Context, userID, lessonID int64) (bool, error) {
	return recordCompletion(ctx, p.db, userID, lessonID)
}

// CompleteLesson records the completion and credits xp in one transaction.
// When the completion already exists nothing is written and Awarded is false.
func (p *ProgressR) CompleteLesson(ctx context.Context, userID, lessonID int64, xp int) (models.CompletionResult, error) {
	result := models.CompletionResult{LessonID: lessonID}

	tx, err := p.tx.BeginTxx(ctx, nil)
	if err != nil {
		return result, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	current, err := userXP(ctx, tx, userID)
	if err != nil {
		return result, err
	}

	inserted, err := recordCompletion(ctx, tx, userID, lessonID)
	if err != nil {
		return result, err
	}

	result.TotalXP = current
	if inserted {
		result.TotalXP, err = addUserXP(ctx, tx, userID, xp)
		if err != nil {
			return models.CompletionResult{LessonID: lessonID}, err
		}
		result.Awarded = true
		result.XPAwarded = xp
	}

	if err := tx.Commit(); err != nil {
		return models.CompletionResult{LessonID: lessonID}, fmt.Errorf("failed to commit lesson completion: %w", err)
	}

	return result, nil
}

func userXP(ctx context.Context, q QueryI, userID int64) (int, error) {
	query := `SELECT xp FROM profiles WHERE id = $1`

	var xp int
	err := q.GetContext(ctx, &xp, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, models.ErrProfileNotFound
		}
		return 0, fmt.Errorf("failed to get xp for user %d: %w", userID, err)
	}

	return xp, nil
}

func addUserXP(ctx context.Context, q QueryI, userID int64, delta int) (int, error) {
	query := `
		UPDATE profiles
		SET xp = xp + $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
		RETURNING xp`

	var total int
	err := q.GetContext(ctx, &total, query, delta, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, models.ErrProfileNotFound
		}
		return 0, fmt.Errorf("failed to update xp for user %d: %w", userID, err)
	}

	return total, nil
}

func recordCompletion(ctx context.Context, q QueryI, userID, lessonID int64) (bool, error) {
	query := `
		INSERT INTO completed_lessons (user_id, lesson_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, lesson_id) DO NOTHING`

	res, err := q.ExecContext(ctx, query, userID, lessonID)
	if err != nil {
		return false, fmt.Errorf("failed to record completion of lesson %d: %w", lessonID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to record completion of lesson %d: %w", lessonID, err)
	}

	return n > 0, nil
}
