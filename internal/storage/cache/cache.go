package cache

import (
	"context"
	"sync"

	"github.com/DanRulev/finquest.git/internal/models"
	"github.com/DanRulev/finquest.git/internal/progression"
)

type Cache struct {
	mu          sync.Mutex
	sessions    map[int64]*progression.Session
	leaderboard *models.LeaderboardSnapshot
}

func NewCache() *Cache {
	return &Cache{
		sessions: make(map[int64]*progression.Session),
	}
}

func (c *Cache) SetSession(userID int64, session *progression.Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions[userID] = session
}

func (c *Cache) GetSession(userID int64) (*progression.Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	session, exists := c.sessions[userID]
	return session, exists
}

func (c *Cache) DeleteSession(userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, userID)
}

func (c *Cache) SaveLeaderboard(_ context.Context, snapshot models.LeaderboardSnapshot) error {
	entries := make([]models.LeaderboardEntry, len(snapshot.Entries))
	copy(entries, snapshot.Entries)
	snapshot.Entries = entries

	c.mu.Lock()
	defer c.mu.Unlock()
	c.leaderboard = &snapshot
	return nil
}

func (c *Cache) Leaderboard(_ context.Context) (models.LeaderboardSnapshot, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.leaderboard == nil {
		return models.LeaderboardSnapshot{}, false, nil
	}
	snapshot := *c.leaderboard
	snapshot.Entries = append([]models.LeaderboardEntry(nil), c.leaderboard.Entries...)
	return snapshot, true, nil
}
