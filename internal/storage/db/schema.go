package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type table struct {
	name     string
	postgres string
	sqlite   string
}

var tables = []table{
	{
		name: "profiles",
		postgres: `
			CREATE TABLE IF NOT EXISTS profiles (
				id BIGINT PRIMARY KEY,
				username TEXT NOT NULL DEFAULT '',
				xp INTEGER NOT NULL DEFAULT 0 CHECK (xp >= 0),
				created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX IF NOT EXISTS idx_profiles_xp ON profiles(xp DESC);`,
		sqlite: `
			CREATE TABLE IF NOT EXISTS profiles (
				id INTEGER PRIMARY KEY,
				username TEXT NOT NULL DEFAULT '',
				xp INTEGER NOT NULL DEFAULT 0 CHECK (xp >= 0),
				created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX IF NOT EXISTS idx_profiles_xp ON profiles(xp DESC);`,
	},
	{
		name: "lessons",
		postgres: `
			CREATE TABLE IF NOT EXISTS lessons (
				id BIGSERIAL PRIMARY KEY,
				title TEXT NOT NULL,
				description TEXT NOT NULL DEFAULT '',
				difficulty VARCHAR(10) NOT NULL CHECK (difficulty IN ('easy', 'medium', 'hard')),
				xp INTEGER NOT NULL CHECK (xp > 0),
				order_index INTEGER NOT NULL UNIQUE,
				created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
			);`,
		sqlite: `
			CREATE TABLE IF NOT EXISTS lessons (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				title TEXT NOT NULL,
				description TEXT NOT NULL DEFAULT '',
				difficulty TEXT NOT NULL CHECK (difficulty IN ('easy', 'medium', 'hard')),
				xp INTEGER NOT NULL CHECK (xp > 0),
				order_index INTEGER NOT NULL UNIQUE,
				created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
			);`,
	},
	{
		name: "questions",
		postgres: `
			CREATE TABLE IF NOT EXISTS questions (
				id BIGSERIAL PRIMARY KEY,
				lesson_id BIGINT NOT NULL REFERENCES lessons(id) ON DELETE CASCADE,
				title TEXT NOT NULL,
				options JSONB NOT NULL DEFAULT '[]',
				correct_answer TEXT NOT NULL,
				explanation TEXT,
				created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX IF NOT EXISTS idx_questions_lesson_id ON questions(lesson_id);`,
		sqlite: `
			CREATE TABLE IF NOT EXISTS questions (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				lesson_id INTEGER NOT NULL REFERENCES lessons(id) ON DELETE CASCADE,
				title TEXT NOT NULL,
				options TEXT NOT NULL DEFAULT '[]',
				correct_answer TEXT NOT NULL,
				explanation TEXT,
				created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX IF NOT EXISTS idx_questions_lesson_id ON questions(lesson_id);`,
	},
	{
		name: "lesson_content",
		postgres: `
			CREATE TABLE IF NOT EXISTS lesson_content (
				id BIGSERIAL PRIMARY KEY,
				lesson_id BIGINT NOT NULL REFERENCES lessons(id) ON DELETE CASCADE,
				order_index INTEGER NOT NULL DEFAULT 0,
				title TEXT NOT NULL,
				content JSONB NOT NULL DEFAULT '[]',
				created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX IF NOT EXISTS idx_lesson_content_lesson_id ON lesson_content(lesson_id);`,
		sqlite: `
			CREATE TABLE IF NOT EXISTS lesson_content (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				lesson_id INTEGER NOT NULL REFERENCES lessons(id) ON DELETE CASCADE,
				order_index INTEGER NOT NULL DEFAULT 0,
				title TEXT NOT NULL,
				content TEXT NOT NULL DEFAULT '[]',
				created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX IF NOT EXISTS idx_lesson_content_lesson_id ON lesson_content(lesson_id);`,
	},
	{
		name: "completed_lessons",
		postgres: `
			CREATE TABLE IF NOT EXISTS completed_lessons (
				id BIGSERIAL PRIMARY KEY,
				user_id BIGINT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
				lesson_id BIGINT NOT NULL REFERENCES lessons(id) ON DELETE CASCADE,
				completed_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
				UNIQUE (user_id, lesson_id)
			);`,
		sqlite: `
			CREATE TABLE IF NOT EXISTS completed_lessons (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				user_id INTEGER NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
				lesson_id INTEGER NOT NULL REFERENCES lessons(id) ON DELETE CASCADE,
				completed_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
				UNIQUE (user_id, lesson_id)
			);`,
	},
}

// InitSchema creates the tables the application needs if they don't exist.
func InitSchema(ctx context.Context, db *sqlx.DB, driver string) error {
	for _, t := range tables {
		query := t.postgres
		if driver == DriverSQLite {
			query = t.sqlite
		}

		if _, err := db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to create %s table: %w", t.name, err)
		}
	}

	return nil
}
