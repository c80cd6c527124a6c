package repository

import (
	"context"
	"testing"

	"github.com/DanRulev/finquest.git/internal/models"
	"github.com/DanRulev/finquest.git/internal/storage/db"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	conn, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, db.InitSchema(context.Background(), conn, db.DriverSQLite))

	return conn
}

func seedLesson(t *testing.T, conn *sqlx.DB, lesson models.Lesson, questions ...models.Question) int64 {
	t.Helper()

	ctx := context.Background()
	content := NewContentRepository(conn)

	id, err := content.UpsertLesson(ctx, lesson)
	require.NoError(t, err)
	require.NoError(t, content.ReplaceQuestions(ctx, id, questions))

	return id
}

func seedProfile(t *testing.T, conn *sqlx.DB, userID int64, username string, xp int) {
	t.Helper()

	_, err := conn.Exec(`INSERT INTO profiles (id, username, xp) VALUES ($1, $2, $3)`, userID, username, xp)
	require.NoError(t, err)
}
