package secondary

import "context"

// LogWriter defines the interface for writing activity log entries.
// Implementations extract the origin of the change from context.
type LogWriter interface {
	// LogCreate logs a create operation for an entity.
	LogCreate(ctx context.Context, entityType string, entityID int) error

	// LogUpdate logs an update operation for an entity.
	LogUpdate(ctx context.Context, entityType string, entityID int) error

	// LogDelete logs a delete operation for an entity.
	LogDelete(ctx context.Context, entityType string, entityID int) error
}
