package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"poke_explorer/internal/models"

	"github.com/google/uuid"
)

type HistorySQLite struct {
	db *sql.DB
}

func NewHistorySQLite(db *sql.DB) *HistorySQLite { return &HistorySQLite{db: db} }

var _ History = (*HistorySQLite)(nil)

const (
	insertHistorySQL = `INSERT INTO search_history (id, user_id, term, searched_at) VALUES (?, ?, ?, ?)`

	// rowid breaks ties between entries written in the same nanosecond.
	selectHistoryByUserSQL = `SELECT id, user_id, term, searched_at FROM search_history WHERE user_id = ? ORDER BY searched_at DESC, rowid DESC LIMIT ?`
)

// Append inserts a new entry. If ID or Timestamp are empty, they’re set.
func (r *HistorySQLite) Append(ctx context.Context, e models.SearchHistoryEntry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}

	_, err := r.db.ExecContext(ctx, insertHistorySQL,
		e.ID,
		e.UserID,
		strings.ToLower(strings.TrimSpace(e.Term)),
		e.Timestamp.UTC().UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("insert search history for user %q: %w", e.UserID, err)
	}
	return nil
}

// ListByUser returns the newest entries for userID, at most limit of them.
func (r *HistorySQLite) ListByUser(ctx context.Context, userID string, limit int) ([]models.SearchHistoryEntry, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("list search history for user %q: %w", userID, ErrInvalidLimit)
	}
	rows, err := r.db.QueryContext(ctx, selectHistoryByUserSQL, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("select search history for user %q: %w", userID, err)
	}
	defer rows.Close()

	out := make([]models.SearchHistoryEntry, 0, limit)
	for rows.Next() {
		var (
			e  models.SearchHistoryEntry
			ns int64
		)
		if err := rows.Scan(&e.ID, &e.UserID, &e.Term, &ns); err != nil {
			return nil, fmt.Errorf("scan search history row: %w", err)
		}
		e.Timestamp = time.Unix(0, ns).UTC()
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
