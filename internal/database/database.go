// Package database opens the journey store and brings its schema up to date.
// Postgres is used for DATABASE_URL values with a postgres scheme; anything
// else is treated as a SQLite location.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // registers "sqlite" driver for database/sql

	"github.com/pkordes/mileage-logbook/migrations"
)

// Driver names the store backend selected by a DATABASE_URL.
type Driver string

const (
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
)

// DriverFor reports which backend url selects.
func DriverFor(url string) Driver {
	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		return DriverPostgres
	}
	return DriverSQLite
}

// OpenPostgres connects a pool, verifies it, and applies pending migrations.
// The caller owns the returned pool.
func OpenPostgres(ctx context.Context, url string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("database.OpenPostgres: create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database.OpenPostgres: ping: %w", err)
	}

	// goose drives database/sql, so wrap the pool rather than opening a second one.
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := Migrate(ctx, goose.DialectPostgres, db, migrations.Postgres); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database.OpenPostgres: %w", err)
	}
	return pool, nil
}

// OpenSQLite opens the SQLite database named by url and applies pending
// migrations. url may carry a sqlite:// prefix; ":memory:" gives a private
// in-memory database.
func OpenSQLite(ctx context.Context, url string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", sqliteDSN(url))
	if err != nil {
		return nil, fmt.Errorf("database.OpenSQLite: open: %w", err)
	}
	// One connection keeps an in-memory database alive and matches SQLite's
	// single writer.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database.OpenSQLite: ping: %w", err)
	}
	if err := Migrate(ctx, goose.DialectSQLite3, db, migrations.SQLite); err != nil {
		db.Close()
		return nil, fmt.Errorf("database.OpenSQLite: %w", err)
	}
	return db, nil
}

// Migrate applies every pending migration in fsys.
func Migrate(ctx context.Context, dialect goose.Dialect, db *sql.DB, fsys fs.FS) error {
	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("create goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

func sqliteDSN(url string) string {
	path := strings.TrimPrefix(url, "sqlite://")
	if path == ":memory:" || strings.HasPrefix(path, "file:") {
		return path
	}
	return path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}
