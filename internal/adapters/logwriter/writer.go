// Package logwriter implements secondary.LogWriter on top of a log.Logger.
package logwriter

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/example/qbank/internal/ctxutil"
	"github.com/example/qbank/internal/ports/secondary"
)

// Writer writes one line per activity event and remembers the last one.
type Writer struct {
	logger *log.Logger

	mu   sync.Mutex
	last string
}

// New creates a Writer logging to out. A nil out only keeps Last.
func New(out io.Writer) *Writer {
	if out == nil {
		out = io.Discard
	}
	return &Writer{logger: log.New(out, "qbank: ", log.LstdFlags)}
}

// LogCreate logs a create operation for an entity.
func (w *Writer) LogCreate(ctx context.Context, entityType string, entityID int) error {
	return w.write(ctx, "created", entityType, entityID)
}

// LogUpdate logs an update operation for an entity.
func (w *Writer) LogUpdate(ctx context.Context, entityType string, entityID int) error {
	return w.write(ctx, "updated", entityType, entityID)
}

// LogDelete logs a delete operation for an entity.
func (w *Writer) LogDelete(ctx context.Context, entityType string, entityID int) error {
	return w.write(ctx, "deleted", entityType, entityID)
}

// Last returns the most recent event line, or "" before any event.
func (w *Writer) Last() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.last
}

func (w *Writer) write(ctx context.Context, verb, entityType string, entityID int) error {
	line := fmt.Sprintf("%s %s %d (%s)", verb, entityType, entityID, ctxutil.ActorFromContext(ctx))

	w.mu.Lock()
	w.last = line
	w.mu.Unlock()

	w.logger.Print(line)
	return nil
}

// Ensure Writer implements the interface
var _ secondary.LogWriter = (*Writer)(nil)
