// Package memory contains in-process implementations of repository interfaces.
package memory

import (
	"context"
	"fmt"
	"sync"

	corequestion "github.com/example/qbank/internal/core/question"
	"github.com/example/qbank/internal/models"
	"github.com/example/qbank/internal/ports/secondary"
)

// QuestionRepository implements secondary.QuestionRepository with an ordered slice.
type QuestionRepository struct {
	mu        sync.RWMutex
	questions []models.Question
}

// NewQuestionRepository creates an empty in-memory question repository.
func NewQuestionRepository() *QuestionRepository {
	return &QuestionRepository{}
}

// GetNextID scans the stored ids on every call.
func (r *QuestionRepository) GetNextID(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]int, len(r.questions))
	for i, q := range r.questions {
		ids[i] = q.ID
	}
	return corequestion.NextID(ids), nil
}

// Append stores questions at the end of the sequence.
func (r *QuestionRepository) Append(ctx context.Context, questions ...models.Question) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to append questions: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, q := range questions {
		r.questions = append(r.questions, q.Clone())
	}
	return nil
}

// Replace overwrites the question with the same id in place.
func (r *QuestionRepository) Replace(ctx context.Context, question models.Question) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.questions {
		if r.questions[i].ID == question.ID {
			r.questions[i] = question.Clone()
			return true, nil
		}
	}
	return false, nil
}

// Delete removes the question with the given id without reordering the rest.
func (r *QuestionRepository) Delete(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.questions {
		if r.questions[i].ID == id {
			r.questions = append(r.questions[:i:i], r.questions[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// GetByID retrieves a copy of a question by its id.
func (r *QuestionRepository) GetByID(ctx context.Context, id int) (*models.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, q := range r.questions {
		if q.ID == id {
			clone := q.Clone()
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("question %d %w", id, secondary.ErrNotFound)
}

// List returns deep copies of all questions in insertion order.
func (r *QuestionRepository) List(ctx context.Context) ([]models.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Question, len(r.questions))
	for i, q := range r.questions {
		out[i] = q.Clone()
	}
	return out, nil
}

// Ensure QuestionRepository implements the interface
var _ secondary.QuestionRepository = (*QuestionRepository)(nil)
