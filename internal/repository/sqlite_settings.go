package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmolina/ritmo/internal/db"
	"github.com/dmolina/ritmo/internal/domain"
)

// SQLiteSettingsRepo implements SettingsRepo using a SQLite database.
// A single row with id 'default' holds the settings.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

// NewSQLiteSettingsRepo creates a new SQLiteSettingsRepo.
func NewSQLiteSettingsRepo(conn db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: conn}
}

func (r *SQLiteSettingsRepo) Get(ctx context.Context) (*domain.Settings, error) {
	query := `SELECT daily_reflection_enabled FROM settings WHERE id = 'default'`
	row := r.db.QueryRowContext(ctx, query)

	var reflection int
	err := row.Scan(&reflection)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("settings: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning settings: %w", err)
	}
	return &domain.Settings{DailyReflectionEnabled: intToBool(reflection)}, nil
}

func (r *SQLiteSettingsRepo) Upsert(ctx context.Context, s *domain.Settings) error {
	query := `INSERT OR REPLACE INTO settings (id, daily_reflection_enabled) VALUES ('default', ?)`
	if _, err := r.db.ExecContext(ctx, query, boolToInt(s.DailyReflectionEnabled)); err != nil {
		return fmt.Errorf("upserting settings: %w", err)
	}
	return nil
}
