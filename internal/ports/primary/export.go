package primary

import "context"

// ExportService defines the primary port for writing the collection to a file.
type ExportService interface {
	// Export writes a snapshot of the collection to path and returns the
	// path that was written. An empty path selects the configured default.
	Export(ctx context.Context, path string) (string, error)
}
