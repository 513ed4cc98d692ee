package app

import (
	"context"
	"errors"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/example/qbank/internal/codec"
	corequestion "github.com/example/qbank/internal/core/question"
	"github.com/example/qbank/internal/ctxutil"
	"github.com/example/qbank/internal/ports/primary"
	"github.com/example/qbank/internal/ports/secondary"
)

// ErrStaleImport is returned by Apply for a superseded ticket.
var ErrStaleImport = primary.ErrStaleImport

// ImportServiceImpl implements the ImportService interface.
type ImportServiceImpl struct {
	files     secondary.QuestionFileStore
	questions primary.QuestionService
	strict    bool

	mu      sync.Mutex
	pending uuid.UUID
}

// NewImportService creates a new ImportService with injected dependencies.
// With strict set, every record is validated before the batch is accepted.
func NewImportService(
	files secondary.QuestionFileStore,
	questions primary.QuestionService,
	strict bool,
) *ImportServiceImpl {
	return &ImportServiceImpl{
		files:     files,
		questions: questions,
		strict:    strict,
	}
}

// Begin registers a new import and supersedes any pending one.
func (s *ImportServiceImpl) Begin(path string) primary.ImportTicket {
	ticket := primary.ImportTicket{Token: uuid.New(), Path: path}

	s.mu.Lock()
	s.pending = ticket.Token
	s.mu.Unlock()

	return ticket
}

// Read loads the ticket's file and maps it to drafts. It never touches the
// collection so it may run concurrently with other session operations.
func (s *ImportServiceImpl) Read(ctx context.Context, ticket primary.ImportTicket) primary.ImportResult {
	result := primary.ImportResult{Ticket: ticket}

	value, err := s.files.Load(ctx, ticket.Path)
	if err != nil {
		result.Err = err
		return result
	}

	drafts, err := codec.DecodeBatch(value)
	if err != nil {
		result.Err = err
		return result
	}

	if s.strict {
		if err := corequestion.ValidateBatch(drafts); err != nil {
			result.Err = err
			return result
		}
	}

	result.Drafts = drafts
	return result
}

// Apply merges a completed read into the collection. Results from a
// superseded ticket are discarded with ErrStaleImport.
func (s *ImportServiceImpl) Apply(ctx context.Context, result primary.ImportResult) (*primary.ImportQuestionsResponse, error) {
	s.mu.Lock()
	if result.Ticket.Token == uuid.Nil || result.Ticket.Token != s.pending {
		s.mu.Unlock()
		return nil, ErrStaleImport
	}
	s.pending = uuid.Nil
	s.mu.Unlock()

	if result.Err != nil {
		return nil, result.Err
	}

	ctx = ctxutil.WithActor(ctx, "import:"+filepath.Base(result.Ticket.Path))
	return s.questions.ImportQuestions(ctx, result.Drafts)
}

// ImportFile runs a complete import synchronously.
func (s *ImportServiceImpl) ImportFile(ctx context.Context, path string) (*primary.ImportQuestionsResponse, error) {
	ticket := s.Begin(path)
	return s.Apply(ctx, s.Read(ctx, ticket))
}

// IsStale reports whether err means an import result was superseded.
func IsStale(err error) bool {
	return errors.Is(err, ErrStaleImport)
}

// Ensure ImportServiceImpl implements the interface
var _ primary.ImportService = (*ImportServiceImpl)(nil)
