package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmolina/ritmo/internal/db"
	"github.com/dmolina/ritmo/internal/domain"
)

// SQLiteBlockRepo implements BlockRepo using a SQLite database.
type SQLiteBlockRepo struct {
	db db.DBTX
}

// NewSQLiteBlockRepo creates a new SQLiteBlockRepo.
func NewSQLiteBlockRepo(conn db.DBTX) *SQLiteBlockRepo {
	return &SQLiteBlockRepo{db: conn}
}

const blockColumns = `id, start_at, end_at, category, type, planned_min, actual_min, interrupted, completed, created_at`

func (r *SQLiteBlockRepo) Create(ctx context.Context, b *domain.Block) error {
	query := `INSERT INTO blocks (` + blockColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		b.ID,
		b.Start.UTC().Format(time.RFC3339),
		b.End.UTC().Format(time.RFC3339),
		b.Category,
		string(b.Type),
		b.PlannedMin,
		nullableIntToValue(b.ActualMin),
		boolToInt(b.Interrupted),
		boolToInt(b.Completed),
		b.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting block: %w", err)
	}
	return nil
}

func (r *SQLiteBlockRepo) GetByID(ctx context.Context, id string) (*domain.Block, error) {
	query := `SELECT ` + blockColumns + ` FROM blocks WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	b, err := scanBlock(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("block %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning block: %w", err)
	}
	return b, nil
}

func (r *SQLiteBlockRepo) ListRange(ctx context.Context, start, end time.Time) ([]*domain.Block, error) {
	query := `SELECT ` + blockColumns + ` FROM blocks
		WHERE (start_at >= ? AND start_at <= ?) OR (end_at >= ? AND end_at <= ?)
		ORDER BY start_at`
	s := start.UTC().Format(time.RFC3339)
	e := end.UTC().Format(time.RFC3339)
	rows, err := r.db.QueryContext(ctx, query, s, e, s, e)
	if err != nil {
		return nil, fmt.Errorf("listing blocks: %w", err)
	}
	defer rows.Close()

	var blocks []*domain.Block
	for rows.Next() {
		b, err := scanBlock(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning block row: %w", err)
		}
		blocks = append(blocks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating blocks: %w", err)
	}
	return blocks, nil
}

func (r *SQLiteBlockRepo) Update(ctx context.Context, b *domain.Block) error {
	query := `UPDATE blocks SET start_at = ?, end_at = ?, category = ?, type = ?,
		planned_min = ?, actual_min = ?, interrupted = ?, completed = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		b.Start.UTC().Format(time.RFC3339),
		b.End.UTC().Format(time.RFC3339),
		b.Category,
		string(b.Type),
		b.PlannedMin,
		nullableIntToValue(b.ActualMin),
		boolToInt(b.Interrupted),
		boolToInt(b.Completed),
		b.ID,
	)
	if err != nil {
		return fmt.Errorf("updating block: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("block %s: %w", b.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteBlockRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM blocks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting block: %w", err)
	}
	return nil
}

// scanBlock works for both *sql.Row and *sql.Rows via the scan callback.
func scanBlock(scan func(dest ...any) error) (*domain.Block, error) {
	var b domain.Block
	var startStr, endStr, typStr, createdStr string
	var actualMin sql.NullInt64
	var interrupted, completed int

	err := scan(
		&b.ID, &startStr, &endStr, &b.Category, &typStr,
		&b.PlannedMin, &actualMin, &interrupted, &completed, &createdStr,
	)
	if err != nil {
		return nil, err
	}

	b.Type = domain.BlockType(typStr)
	b.Interrupted = intToBool(interrupted)
	b.Completed = intToBool(completed)
	if actualMin.Valid {
		v := int(actualMin.Int64)
		b.ActualMin = &v
	}
	if b.Start, err = time.Parse(time.RFC3339, startStr); err != nil {
		return nil, fmt.Errorf("parsing start: %w", err)
	}
	if b.End, err = time.Parse(time.RFC3339, endStr); err != nil {
		return nil, fmt.Errorf("parsing end: %w", err)
	}
	if b.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &b, nil
}
