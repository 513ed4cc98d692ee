package primary

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/example/qbank/internal/models"
)

// ErrStaleImport is returned by Apply when a newer import has been started
// since the result's ticket was issued.
var ErrStaleImport = errors.New("import superseded by a newer request")

// ImportService defines the primary port for importing question files.
// Reads are tagged with a token; only the most recent read may be applied.
type ImportService interface {
	// Begin registers a new import of path and supersedes any pending one.
	Begin(path string) ImportTicket

	// Read loads and shape-checks the file named by the ticket. It does not
	// touch the collection and may run off the UI goroutine.
	Read(ctx context.Context, ticket ImportTicket) ImportResult

	// Apply merges a completed read into the collection if it is still current.
	Apply(ctx context.Context, result ImportResult) (*ImportQuestionsResponse, error)

	// ImportFile runs Begin, Read and Apply in sequence.
	ImportFile(ctx context.Context, path string) (*ImportQuestionsResponse, error)
}

// ImportTicket identifies one import request.
type ImportTicket struct {
	Token uuid.UUID
	Path  string
}

// ImportResult is the outcome of reading an import file.
type ImportResult struct {
	Ticket ImportTicket
	Drafts []models.Draft
	Err    error
}
