// Package secondary defines the secondary ports (driven adapters) for the application.
package secondary

import "context"

// QuestionFileStore defines the secondary port for one-shot file transfers
// between the session and the user's filesystem.
type QuestionFileStore interface {
	// Load reads and syntactically decodes a file into a generic value.
	// It performs no schema validation.
	Load(ctx context.Context, path string) (any, error)

	// Save encodes value in a human-readable form and writes it to path.
	Save(ctx context.Context, path string, value any) error
}
