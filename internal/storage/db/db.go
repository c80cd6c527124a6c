package db

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/DanRulev/finquest.git/internal/config"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/jmoiron/sqlx"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

func InitDB(cfg config.DBConfig) (*sqlx.DB, error) {
	var (
		db  *sqlx.DB
		err error
	)

	switch cfg.Driver {
	case DriverPostgres:
		db, err = openPostgres(cfg)
	case DriverSQLite:
		db, err = OpenSQLite(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed db ping: %w", err)
	}

	if err := InitSchema(ctx, db, cfg.Driver); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func openPostgres(cfg config.DBConfig) (*sqlx.DB, error) {
	if cfg.Conn.Host == "" || cfg.Conn.Name == "" || cfg.Conn.User == "" {
		return nil, fmt.Errorf("postgres connection requires host, name and user")
	}

	ssl := cfg.Conn.SSL
	if ssl == "" {
		ssl = "disable"
	}

	dsn := fmt.Sprintf("host=%v port=%v dbname=%v user=%v password=%v sslmode=%v",
		cfg.Conn.Host, cfg.Conn.Port, cfg.Conn.Name, cfg.Conn.User, cfg.Conn.Password, ssl)
	db, err := sqlx.Open(DriverPostgres, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed open db connect: %w", err)
	}

	db.SetMaxOpenConns(cfg.Cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Cfg.ConnMaxLifeTime)
	db.SetConnMaxIdleTime(cfg.Cfg.ConnMaxIdleTime)

	return db, nil
}

// OpenSQLite opens a single-connection SQLite database. ":memory:" is
// accepted and yields a private in-memory database.
func OpenSQLite(path string) (*sqlx.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := sqlx.Open(DriverSQLite, path)
	if err != nil {
		return nil, fmt.Errorf("failed open db connect: %w", err)
	}

	// SQLite doesn't support multiple writers
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}
