// Package testutil provides shared helpers for store integration tests.
// Postgres helpers skip the test when TEST_DATABASE_URL is not set, so the
// suite runs without a database server. SQLite helpers always run against a
// private in-memory database.
package testutil

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/jackc/pgx/v5"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql

	"github.com/pkordes/mileage-logbook/internal/database"
)

// PostgresDSNEnv names the variable that opts into Postgres tests.
const PostgresDSNEnv = "TEST_DATABASE_URL"

// NewPostgresTx opens a migrated pool against TEST_DATABASE_URL and returns a
// transaction on it. The transaction is rolled back and the pool closed when
// the test finishes, so each test sees an isolated journeys table.
func NewPostgresTx(t *testing.T) pgx.Tx {
	t.Helper()
	ctx := context.Background()

	pool, err := database.OpenPostgres(ctx, postgresDSN(t))
	if err != nil {
		t.Fatalf("testutil.NewPostgresTx: %v", err)
	}
	t.Cleanup(pool.Close)

	tx, err := pool.Begin(ctx)
	if err != nil {
		t.Fatalf("testutil.NewPostgresTx: begin: %v", err)
	}
	t.Cleanup(func() { _ = tx.Rollback(context.Background()) })
	return tx
}

// NewPostgresSQLDB opens an unmigrated *sql.DB on TEST_DATABASE_URL through
// the pgx driver, for tests that drive goose directly.
func NewPostgresSQLDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("pgx", postgresDSN(t))
	if err != nil {
		t.Fatalf("testutil.NewPostgresSQLDB: open: %v", err)
	}
	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		t.Fatalf("testutil.NewPostgresSQLDB: ping: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// MigratePostgres brings the TEST_DATABASE_URL schema up to date. It is meant
// for TestMain, where no *testing.T exists, and is a no-op when the variable
// is unset.
func MigratePostgres() error {
	dsn := os.Getenv(PostgresDSNEnv)
	if dsn == "" {
		return nil
	}
	pool, err := database.OpenPostgres(context.Background(), dsn)
	if err != nil {
		return err
	}
	pool.Close()
	return nil
}

// NewSQLite opens a migrated in-memory SQLite database that is closed when
// the test finishes. Every call gets its own database.
func NewSQLite(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.OpenSQLite(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("testutil.NewSQLite: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

func postgresDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv(PostgresDSNEnv)
	if dsn == "" {
		t.Skip(PostgresDSNEnv + " not set; skipping Postgres test")
	}
	return dsn
}
