// Package storage opens the sqlite-backed bun database sql blocks execute
// against. No schema is defined here; the caller owns the statements and the
// tables they touch.
package storage

import (
	"context"
	"database/sql"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/mattn/go-sqlite3"
)

// Executor is the narrow query surface sql block execution needs. *bun.DB
// satisfies it, as does *sql.DB, so tests and hosts can supply either.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Open builds a bun DB over a sqlite DSN.
func Open(dsn string) (*bun.DB, error) {
	sqldb, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	return bun.NewDB(sqldb, sqlitedialect.New()), nil
}
