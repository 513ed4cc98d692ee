package logwriter

import (
	"context"
	"errors"

	"github.com/example/qbank/internal/ports/secondary"
)

// Tee fans every event out to several writers. Nil writers are skipped.
type Tee []secondary.LogWriter

// LogCreate logs a create operation to every writer.
func (t Tee) LogCreate(ctx context.Context, entityType string, entityID int) error {
	return t.each(func(w secondary.LogWriter) error { return w.LogCreate(ctx, entityType, entityID) })
}

// LogUpdate logs an update operation to every writer.
func (t Tee) LogUpdate(ctx context.Context, entityType string, entityID int) error {
	return t.each(func(w secondary.LogWriter) error { return w.LogUpdate(ctx, entityType, entityID) })
}

// LogDelete logs a delete operation to every writer.
func (t Tee) LogDelete(ctx context.Context, entityType string, entityID int) error {
	return t.each(func(w secondary.LogWriter) error { return w.LogDelete(ctx, entityType, entityID) })
}

// each keeps going after a failure and joins the errors.
func (t Tee) each(fn func(secondary.LogWriter) error) error {
	var errs []error
	for _, w := range t {
		if w == nil {
			continue
		}
		if err := fn(w); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Ensure Tee implements the interface
var _ secondary.LogWriter = Tee(nil)
