package app

import (
	"context"
	"fmt"

	"github.com/example/qbank/internal/codec"
	"github.com/example/qbank/internal/ports/primary"
	"github.com/example/qbank/internal/ports/secondary"
)

// ExportServiceImpl implements the ExportService interface.
type ExportServiceImpl struct {
	files       secondary.QuestionFileStore
	questions   primary.QuestionService
	defaultPath string
}

// NewExportService creates a new ExportService. An empty defaultPath falls
// back to codec.DefaultFilename.
func NewExportService(
	files secondary.QuestionFileStore,
	questions primary.QuestionService,
	defaultPath string,
) *ExportServiceImpl {
	if defaultPath == "" {
		defaultPath = codec.DefaultFilename
	}
	return &ExportServiceImpl{
		files:       files,
		questions:   questions,
		defaultPath: defaultPath,
	}
}

// Export writes the current snapshot to path.
func (s *ExportServiceImpl) Export(ctx context.Context, path string) (string, error) {
	if path == "" {
		path = s.defaultPath
	}

	questions, err := s.questions.ListQuestions(ctx)
	if err != nil {
		return "", err
	}

	if err := s.files.Save(ctx, path, questions); err != nil {
		return "", fmt.Errorf("failed to export questions: %w", err)
	}
	return path, nil
}

// Ensure ExportServiceImpl implements the interface
var _ primary.ExportService = (*ExportServiceImpl)(nil)
