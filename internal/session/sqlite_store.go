package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmolina/ritmo/internal/db"
	"github.com/dmolina/ritmo/internal/domain"
)

// SQLiteStore persists planning sessions as one JSON document per row.
// Sessions are replaced wholesale on every step, so a document column
// keeps the schema stable while the session shape evolves.
type SQLiteStore struct {
	db db.DBTX
}

// NewSQLiteStore creates a session store backed by the given connection.
func NewSQLiteStore(conn db.DBTX) *SQLiteStore {
	return &SQLiteStore{db: conn}
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (*domain.PlanningSession, error) {
	query := `SELECT document FROM planning_sessions WHERE id = ?`
	row := s.db.QueryRowContext(ctx, query, id)

	var doc string
	err := row.Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning planning session: %w", err)
	}

	var ps domain.PlanningSession
	if err := json.Unmarshal([]byte(doc), &ps); err != nil {
		return nil, fmt.Errorf("decoding planning session %s: %w", id, err)
	}
	return &ps, nil
}

func (s *SQLiteStore) Put(ctx context.Context, ps *domain.PlanningSession) error {
	if ps == nil || ps.ID == "" {
		return fmt.Errorf("session must have an id")
	}
	doc, err := json.Marshal(ps)
	if err != nil {
		return fmt.Errorf("encoding planning session: %w", err)
	}
	query := `INSERT OR REPLACE INTO planning_sessions (id, stage, document, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err = s.db.ExecContext(ctx, query,
		ps.ID,
		string(ps.Stage),
		string(doc),
		ps.CreatedAt.UTC().Format(time.RFC3339),
		ps.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("storing planning session: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM planning_sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting planning session: %w", err)
	}
	return nil
}
