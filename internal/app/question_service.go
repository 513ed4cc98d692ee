package app

import (
	"context"
	"fmt"

	corequestion "github.com/example/qbank/internal/core/question"
	"github.com/example/qbank/internal/models"
	"github.com/example/qbank/internal/ports/primary"
	"github.com/example/qbank/internal/ports/secondary"
)

// ErrQuestionNotFound is returned by GetQuestion for an unknown id.
var ErrQuestionNotFound = secondary.ErrNotFound

const entityQuestion = "question"

// QuestionServiceImpl implements the QuestionService interface.
// It is the only owner of the session's question collection.
type QuestionServiceImpl struct {
	questionRepo secondary.QuestionRepository
	logWriter    secondary.LogWriter
}

// NewQuestionService creates a new QuestionService with injected dependencies.
func NewQuestionService(
	questionRepo secondary.QuestionRepository,
	logWriter secondary.LogWriter,
) *QuestionServiceImpl {
	return &QuestionServiceImpl{
		questionRepo: questionRepo,
		logWriter:    logWriter,
	}
}

// NextID returns the id the next added question would receive.
// It is recomputed from the stored ids on every call, an O(n) scan.
func (s *QuestionServiceImpl) NextID(ctx context.Context) (int, error) {
	id, err := s.questionRepo.GetNextID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to generate question ID: %w", err)
	}
	return id, nil
}

// AddQuestion appends a new question with a fresh id.
func (s *QuestionServiceImpl) AddQuestion(ctx context.Context, draft models.Draft) (*primary.AddQuestionResponse, error) {
	nextID, err := s.NextID(ctx)
	if err != nil {
		return nil, err
	}

	question := draft.Clone().WithID(nextID)
	if err := s.questionRepo.Append(ctx, question); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}
	s.logCreate(ctx, question.ID)

	snapshot, err := s.ListQuestions(ctx)
	if err != nil {
		return nil, err
	}

	return &primary.AddQuestionResponse{
		Question:  question.Clone(),
		Questions: snapshot,
	}, nil
}

// UpdateQuestion replaces the question with the same id in place.
// An unknown id leaves the collection unchanged and is not an error.
func (s *QuestionServiceImpl) UpdateQuestion(ctx context.Context, question models.Question) ([]models.Question, error) {
	found, err := s.questionRepo.Replace(ctx, question.Clone())
	if err != nil {
		return nil, fmt.Errorf("failed to update question: %w", err)
	}
	if found && s.logWriter != nil {
		_ = s.logWriter.LogUpdate(ctx, entityQuestion, question.ID)
	}

	return s.ListQuestions(ctx)
}

// DeleteQuestion removes the question with the given id.
// An unknown id leaves the collection unchanged and is not an error.
func (s *QuestionServiceImpl) DeleteQuestion(ctx context.Context, id int) ([]models.Question, error) {
	found, err := s.questionRepo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete question: %w", err)
	}
	if found && s.logWriter != nil {
		_ = s.logWriter.LogDelete(ctx, entityQuestion, id)
	}

	return s.ListQuestions(ctx)
}

// ImportQuestions appends a batch. The start id is computed once and the
// records receive contiguous ids in input order; incoming ids are ignored.
func (s *QuestionServiceImpl) ImportQuestions(ctx context.Context, drafts []models.Draft) (*primary.ImportQuestionsResponse, error) {
	start, err := s.NextID(ctx)
	if err != nil {
		return nil, err
	}

	ids := corequestion.ImportIDs(start, len(drafts))
	imported := make([]models.Question, len(drafts))
	for i, draft := range drafts {
		imported[i] = draft.Clone().WithID(ids[i])
	}

	if len(imported) > 0 {
		if err := s.questionRepo.Append(ctx, imported...); err != nil {
			return nil, fmt.Errorf("failed to import questions: %w", err)
		}
		for _, q := range imported {
			s.logCreate(ctx, q.ID)
		}
	}

	snapshot, err := s.ListQuestions(ctx)
	if err != nil {
		return nil, err
	}

	return &primary.ImportQuestionsResponse{
		Imported:  imported,
		Questions: snapshot,
	}, nil
}

// GetQuestion retrieves a copy of one question.
func (s *QuestionServiceImpl) GetQuestion(ctx context.Context, id int) (*models.Question, error) {
	return s.questionRepo.GetByID(ctx, id)
}

// ListQuestions returns a snapshot of the collection in insertion order.
func (s *QuestionServiceImpl) ListQuestions(ctx context.Context) ([]models.Question, error) {
	questions, err := s.questionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return questions, nil
}

// Helper methods

func (s *QuestionServiceImpl) logCreate(ctx context.Context, id int) {
	if s.logWriter == nil {
		return
	}
	_ = s.logWriter.LogCreate(ctx, entityQuestion, id)
}

// Ensure QuestionServiceImpl implements the interface
var _ primary.QuestionService = (*QuestionServiceImpl)(nil)
