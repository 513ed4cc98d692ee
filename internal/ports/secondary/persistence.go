// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"
	"errors"

	"github.com/example/qbank/internal/models"
)

// ErrNotFound is wrapped by repositories when a lookup matches nothing.
var ErrNotFound = errors.New("not found")

// QuestionRepository defines the secondary port for the session's question storage.
// Implementations keep insertion order and live only as long as the session.
type QuestionRepository interface {
	// GetNextID returns 1 + the highest stored id, or 1 when empty.
	GetNextID(ctx context.Context) (int, error)

	// Append stores questions at the end of the sequence, all or nothing.
	Append(ctx context.Context, questions ...models.Question) error

	// Replace overwrites the question with the same id in place.
	// It reports whether a question matched.
	Replace(ctx context.Context, question models.Question) (bool, error)

	// Delete removes the question with the given id and reports whether one matched.
	Delete(ctx context.Context, id int) (bool, error)

	// GetByID retrieves a question by its id.
	GetByID(ctx context.Context, id int) (*models.Question, error)

	// List returns all questions in insertion order.
	List(ctx context.Context) ([]models.Question, error)
}
