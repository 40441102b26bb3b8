package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmolina/ritmo/internal/db"
	"github.com/dmolina/ritmo/internal/domain"
)

// SQLiteCheckInRepo implements CheckInRepo using a SQLite database.
type SQLiteCheckInRepo struct {
	db db.DBTX
}

// NewSQLiteCheckInRepo creates a new SQLiteCheckInRepo.
func NewSQLiteCheckInRepo(conn db.DBTX) *SQLiteCheckInRepo {
	return &SQLiteCheckInRepo{db: conn}
}

func (r *SQLiteCheckInRepo) Upsert(ctx context.Context, c *domain.CheckIn) error {
	query := `INSERT OR REPLACE INTO checkins (date, mood, energy, stress) VALUES (?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, c.Date, c.Mood, c.Energy, c.Stress); err != nil {
		return fmt.Errorf("upserting check-in: %w", err)
	}
	return nil
}

func (r *SQLiteCheckInRepo) GetByDate(ctx context.Context, date string) (*domain.CheckIn, error) {
	query := `SELECT date, mood, energy, stress FROM checkins WHERE date = ?`
	row := r.db.QueryRowContext(ctx, query, date)

	var c domain.CheckIn
	err := row.Scan(&c.Date, &c.Mood, &c.Energy, &c.Stress)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("check-in %s: %w", date, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning check-in: %w", err)
	}
	return &c, nil
}

func (r *SQLiteCheckInRepo) ListRange(ctx context.Context, startDate, endDate string) ([]*domain.CheckIn, error) {
	query := `SELECT date, mood, energy, stress FROM checkins
		WHERE date >= ? AND date <= ? ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("listing check-ins: %w", err)
	}
	defer rows.Close()

	var checkins []*domain.CheckIn
	for rows.Next() {
		var c domain.CheckIn
		if err := rows.Scan(&c.Date, &c.Mood, &c.Energy, &c.Stress); err != nil {
			return nil, fmt.Errorf("scanning check-in row: %w", err)
		}
		checkins = append(checkins, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating check-ins: %w", err)
	}
	return checkins, nil
}
