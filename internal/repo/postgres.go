package repo

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/mileage-logbook/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, *pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test. Begin on a
// pgx.Tx opens a savepoint, so Save stays atomic either way.
type db interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	CopyFrom(ctx context.Context, table pgx.Identifier, columns []string, src pgx.CopyFromSource) (int64, error)
}

// pgJourneyRepo is the Postgres implementation of JourneyRepo.
type pgJourneyRepo struct {
	db       db
	settings settings
}

// NewPostgresJourneyRepo constructs a JourneyRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewPostgresJourneyRepo(db db, opts ...Option) JourneyRepo {
	return &pgJourneyRepo{db: db, settings: newSettings(opts)}
}

// Load reads the collection ordered by its saved position.
func (r *pgJourneyRepo) Load(ctx context.Context) ([]domain.Journey, error) {
	q := `SELECT ` + strings.Join(columns, ", ") + ` FROM journeys ORDER BY seq`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.JourneyRepo.Load: %w", err)
	}
	defer rows.Close()

	journeys := []domain.Journey{}
	for rows.Next() {
		s, err := scanPostgres(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.JourneyRepo.Load: scan: %w", err)
		}
		journeys = append(journeys, s.migrate(r.settings.fuelPrice))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.JourneyRepo.Load: rows: %w", err)
	}
	return journeys, nil
}

// Save deletes every row and bulk-copies journeys back inside one transaction.
func (r *pgJourneyRepo) Save(ctx context.Context, journeys []domain.Journey) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repo.JourneyRepo.Save: begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM journeys`); err != nil {
		return fmt.Errorf("repo.JourneyRepo.Save: clear: %w", err)
	}

	src := pgx.CopyFromSlice(len(journeys), func(i int) ([]any, error) {
		values := row(journeys[i], i)
		values[0] = pgtype.UUID{Bytes: journeys[i].ID, Valid: true}
		values[2] = pgtype.Date{Time: domain.DateOnly(journeys[i].Date), Valid: true}
		return values, nil
	})
	if _, err := tx.CopyFrom(ctx, pgx.Identifier{"journeys"}, columns, src); err != nil {
		return fmt.Errorf("repo.JourneyRepo.Save: copy: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("repo.JourneyRepo.Save: commit: %w", err)
	}
	return nil
}

// scanPostgres maps a single row into a storedJourney, handling the UUID,
// date, and nullable column conversions.
func scanPostgres(rows pgx.Rows) (storedJourney, error) {
	var (
		s    storedJourney
		id   pgtype.UUID
		date pgtype.Date
		seq  int
	)
	err := rows.Scan(&id, &seq, &date, &s.StartedAt, &s.StartReading, &s.EndReading, &s.Distance,
		&s.Purpose, &s.FuelConsumption, &s.Category, &s.Tags, &s.FuelPrice, &s.Cost, &s.StartOffset)
	if err != nil {
		return storedJourney{}, err
	}
	s.ID = uuid.UUID(id.Bytes)
	s.Date = date.Time
	return s, nil
}
