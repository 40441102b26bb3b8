package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/dmolina/ritmo/internal/db"
	"github.com/dmolina/ritmo/internal/domain"
)

// SQLiteFeedbackRepo implements FeedbackRepo using a SQLite database.
type SQLiteFeedbackRepo struct {
	db db.DBTX
}

// NewSQLiteFeedbackRepo creates a new SQLiteFeedbackRepo.
func NewSQLiteFeedbackRepo(conn db.DBTX) *SQLiteFeedbackRepo {
	return &SQLiteFeedbackRepo{db: conn}
}

const feedbackColumns = `id, block_id, task_id, feeling, note, completed_at`

func (r *SQLiteFeedbackRepo) Create(ctx context.Context, f *domain.CompletionFeedback) error {
	query := `INSERT INTO completion_feedback (` + feedbackColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		f.ID,
		f.BlockID,
		f.TaskID,
		int(f.Feeling),
		f.Note,
		f.CompletedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting feedback: %w", err)
	}
	return nil
}

func (r *SQLiteFeedbackRepo) ListByBlock(ctx context.Context, blockID string) ([]*domain.CompletionFeedback, error) {
	query := `SELECT ` + feedbackColumns + ` FROM completion_feedback
		WHERE block_id = ? ORDER BY completed_at`
	return r.query(ctx, query, blockID)
}

func (r *SQLiteFeedbackRepo) ListByTask(ctx context.Context, taskID string) ([]*domain.CompletionFeedback, error) {
	query := `SELECT ` + feedbackColumns + ` FROM completion_feedback
		WHERE task_id = ? ORDER BY completed_at`
	return r.query(ctx, query, taskID)
}

func (r *SQLiteFeedbackRepo) ListRange(ctx context.Context, start, end time.Time) ([]*domain.CompletionFeedback, error) {
	query := `SELECT ` + feedbackColumns + ` FROM completion_feedback
		WHERE completed_at >= ? AND completed_at <= ? ORDER BY completed_at`
	return r.query(ctx, query,
		start.UTC().Format(time.RFC3339),
		end.UTC().Format(time.RFC3339),
	)
}

func (r *SQLiteFeedbackRepo) query(ctx context.Context, query string, args ...any) ([]*domain.CompletionFeedback, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing feedback: %w", err)
	}
	defer rows.Close()

	var out []*domain.CompletionFeedback
	for rows.Next() {
		var f domain.CompletionFeedback
		var feeling int
		var completedStr string
		if err := rows.Scan(&f.ID, &f.BlockID, &f.TaskID, &feeling, &f.Note, &completedStr); err != nil {
			return nil, fmt.Errorf("scanning feedback row: %w", err)
		}
		f.Feeling = domain.Feeling(feeling)
		if f.CompletedAt, err = time.Parse(time.RFC3339, completedStr); err != nil {
			return nil, fmt.Errorf("parsing completed_at: %w", err)
		}
		out = append(out, &f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating feedback: %w", err)
	}
	return out, nil
}
