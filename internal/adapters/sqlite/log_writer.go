package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/qbank/internal/ctxutil"
	"github.com/example/qbank/internal/ports/secondary"
)

// ActivityEntry is one row of the session activity log.
type ActivityEntry struct {
	ID         int
	Actor      string
	EntityType string
	EntityID   int
	Action     string
	CreatedAt  string
}

// LogWriterAdapter implements secondary.LogWriter with the activity_log table.
type LogWriterAdapter struct {
	db *sql.DB
}

// NewLogWriterAdapter creates a new LogWriterAdapter.
func NewLogWriterAdapter(db *sql.DB) *LogWriterAdapter {
	return &LogWriterAdapter{db: db}
}

// LogCreate logs a create operation for an entity.
func (w *LogWriterAdapter) LogCreate(ctx context.Context, entityType string, entityID int) error {
	return w.writeLog(ctx, entityType, entityID, "create")
}

// LogUpdate logs an update operation for an entity.
func (w *LogWriterAdapter) LogUpdate(ctx context.Context, entityType string, entityID int) error {
	return w.writeLog(ctx, entityType, entityID, "update")
}

// LogDelete logs a delete operation for an entity.
func (w *LogWriterAdapter) LogDelete(ctx context.Context, entityType string, entityID int) error {
	return w.writeLog(ctx, entityType, entityID, "delete")
}

// writeLog writes a log entry attributed to the actor found in ctx.
func (w *LogWriterAdapter) writeLog(ctx context.Context, entityType string, entityID int, action string) error {
	actor := ctxutil.ActorFromContext(ctx)

	_, err := w.db.ExecContext(ctx,
		"INSERT INTO activity_log (actor, entity_type, entity_id, action) VALUES (?, ?, ?, ?)",
		actor, entityType, entityID, action,
	)
	if err != nil {
		return fmt.Errorf("failed to write activity log: %w", err)
	}
	return nil
}

// List returns the most recent entries first, at most limit of them.
// A limit of zero or less returns every entry.
func (w *LogWriterAdapter) List(ctx context.Context, limit int) ([]ActivityEntry, error) {
	query := "SELECT id, actor, entity_type, entity_id, action, created_at FROM activity_log ORDER BY id DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := w.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity log: %w", err)
	}
	defer rows.Close()

	var entries []ActivityEntry
	for rows.Next() {
		var (
			entry     ActivityEntry
			createdAt time.Time
		)
		if err := rows.Scan(&entry.ID, &entry.Actor, &entry.EntityType, &entry.EntityID, &entry.Action, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity log: %w", err)
		}
		entry.CreatedAt = createdAt.Format(time.RFC3339)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list activity log: %w", err)
	}

	return entries, nil
}

// Ensure LogWriterAdapter implements the interface
var _ secondary.LogWriter = (*LogWriterAdapter)(nil)
