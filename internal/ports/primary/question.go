package primary

import (
	"context"

	"github.com/example/qbank/internal/models"
)

// QuestionService defines the primary port for the session's question collection.
// Every method that changes the collection returns the resulting snapshot.
type QuestionService interface {
	// NextID returns the id the next added question would receive.
	NextID(ctx context.Context) (int, error)

	// AddQuestion appends a new question with a fresh id.
	AddQuestion(ctx context.Context, draft models.Draft) (*AddQuestionResponse, error)

	// UpdateQuestion replaces the question with the same id. Absent ids are ignored.
	UpdateQuestion(ctx context.Context, question models.Question) ([]models.Question, error)

	// DeleteQuestion removes the question with the given id. Absent ids are ignored.
	DeleteQuestion(ctx context.Context, id int) ([]models.Question, error)

	// ImportQuestions appends a batch with reassigned contiguous ids.
	ImportQuestions(ctx context.Context, drafts []models.Draft) (*ImportQuestionsResponse, error)

	// GetQuestion retrieves a copy of one question.
	GetQuestion(ctx context.Context, id int) (*models.Question, error)

	// ListQuestions returns a snapshot of the collection in insertion order.
	ListQuestions(ctx context.Context) ([]models.Question, error)
}

// AddQuestionResponse contains the result of adding a question.
type AddQuestionResponse struct {
	Question  models.Question
	Questions []models.Question
}

// ImportQuestionsResponse contains the result of a bulk import.
type ImportQuestionsResponse struct {
	Imported  []models.Question
	Questions []models.Question
}
