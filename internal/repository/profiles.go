package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DanRulev/finquest.git/internal/models"
)

type ProfilesR struct {
	db QueryI
}

func NewProfilesRepository(db QueryI) *ProfilesR {
	return &ProfilesR{db: db}
}

func (p *ProfilesR) EnsureProfile(ctx context.Context, userID int64, username string) error {
	query := `
		INSERT INTO profiles (id, username)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET
			username = EXCLUDED.username,
			updated_at = CURRENT_TIMESTAMP`

	if _, err := p.db.ExecContext(ctx, query, userID, username); err != nil {
		return fmt.Errorf("failed to save profile %d: %w", userID, err)
	}

	return nil
}

func (p *ProfilesR) Profile(ctx context.Context, userID int64) (models.Profile, error) {
	query := `SELECT id, username, xp, created_at, updated_at FROM profiles WHERE id = $1`

	var profile models.Profile
	err := p.db.GetContext(ctx, &profile, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Profile{}, models.ErrProfileNotFound
		}
		return models.Profile{}, fmt.Errorf("failed to get profile %d: %w", userID, err)
	}

	return profile, nil
}

// TopUsersByXP returns at most limit profiles, highest XP first. Ties are
// broken by profile id so the order is stable between refreshes.
func (p *ProfilesR) TopUsersByXP(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	query := `
		SELECT id, username, xp
		FROM profiles
		ORDER BY xp DESC, id ASC
		LIMIT $1`

	entries := make([]models.LeaderboardEntry, 0, limit)
	if err := p.db.SelectContext(ctx, &entries, query, limit); err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	return entries, nil
}
