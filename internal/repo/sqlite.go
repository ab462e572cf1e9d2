package repo

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/mileage-logbook/internal/domain"
)

const (
	sqliteDate = "2006-01-02"
	sqliteTime = time.RFC3339Nano
)

type sqliteJourneyRepo struct {
	db       *sql.DB
	settings settings
}

// NewSQLiteJourneyRepo constructs a JourneyRepo backed by a SQLite database
// that has had its migrations applied.
func NewSQLiteJourneyRepo(db *sql.DB, opts ...Option) JourneyRepo {
	return &sqliteJourneyRepo{db: db, settings: newSettings(opts)}
}

func (r *sqliteJourneyRepo) Load(ctx context.Context) ([]domain.Journey, error) {
	q := `SELECT ` + strings.Join(columns, ", ") + ` FROM journeys ORDER BY seq`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.JourneyRepo.Load: %w", err)
	}
	defer rows.Close()

	journeys := []domain.Journey{}
	for rows.Next() {
		s, err := scanSQLite(rows)
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

func (r *sqliteJourneyRepo) Save(ctx context.Context, journeys []domain.Journey) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("repo.JourneyRepo.Save: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM journeys`); err != nil {
		return fmt.Errorf("repo.JourneyRepo.Save: clear: %w", err)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO journeys (`+strings.Join(columns, ", ")+`) VALUES (`+placeholders+`)`)
	if err != nil {
		return fmt.Errorf("repo.JourneyRepo.Save: prepare: %w", err)
	}
	defer stmt.Close()

	for i, j := range journeys {
		values := row(j, i)
		values[0] = j.ID.String()
		values[2] = domain.DateOnly(j.Date).Format(sqliteDate)
		values[3] = j.StartedAt.UTC().Format(sqliteTime)
		if _, err := stmt.ExecContext(ctx, values...); err != nil {
			return fmt.Errorf("repo.JourneyRepo.Save: insert %s: %w", j.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("repo.JourneyRepo.Save: commit: %w", err)
	}
	return nil
}

// scanSQLite maps a row stored with text ids and timestamps into a storedJourney.
func scanSQLite(rows *sql.Rows) (storedJourney, error) {
	var (
		s                 storedJourney
		id, date, started string
		seq               int
		fuel, price, cost sql.NullFloat64
		category, tags    sql.NullString
		offset            sql.NullInt64
	)
	err := rows.Scan(&id, &seq, &date, &started, &s.StartReading, &s.EndReading, &s.Distance,
		&s.Purpose, &fuel, &category, &tags, &price, &cost, &offset)
	if err != nil {
		return storedJourney{}, err
	}

	if s.ID, err = uuid.Parse(id); err != nil {
		return storedJourney{}, fmt.Errorf("parse id %q: %w", id, err)
	}
	if s.Date, err = time.Parse(sqliteDate, date); err != nil {
		return storedJourney{}, fmt.Errorf("parse date %q: %w", date, err)
	}
	if s.StartedAt, err = time.Parse(sqliteTime, started); err != nil {
		return storedJourney{}, fmt.Errorf("parse started_at %q: %w", started, err)
	}
	s.FuelConsumption = nullFloat(fuel)
	s.FuelPrice = nullFloat(price)
	s.Cost = nullFloat(cost)
	s.Category = nullString(category)
	s.Tags = nullString(tags)
	if offset.Valid {
		off := int(offset.Int64)
		s.StartOffset = &off
	}
	return s, nil
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}
