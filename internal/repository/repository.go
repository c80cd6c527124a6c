package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

type QueryI interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type TxStarter interface {
	BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
}

type DBI interface {
	QueryI
	TxStarter
}

type Repository struct {
	*LessonsR
	*ProgressR
	*ProfilesR
}

func NewRepository(db DBI) Repository {
	return Repository{
		LessonsR:  NewLessonsRepository(db),
		ProgressR: NewProgressRepository(db, db),
		ProfilesR: NewProfilesRepository(db),
	}
}
