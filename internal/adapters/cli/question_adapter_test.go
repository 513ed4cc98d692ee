package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"

	corequestion "github.com/example/qbank/internal/core/question"
	"github.com/example/qbank/internal/models"
	"github.com/example/qbank/internal/ports/primary"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// mockQuestionService implements primary.QuestionService for testing
type mockQuestionService struct {
	listQuestionsFn func(ctx context.Context) ([]models.Question, error)
	getQuestionFn   func(ctx context.Context, id int) (*models.Question, error)
}

func (m *mockQuestionService) NextID(ctx context.Context) (int, error) {
	return 1, nil
}

func (m *mockQuestionService) AddQuestion(ctx context.Context, draft models.Draft) (*primary.AddQuestionResponse, error) {
	return nil, errors.New("not implemented in adapter")
}

func (m *mockQuestionService) UpdateQuestion(ctx context.Context, question models.Question) ([]models.Question, error) {
	return nil, errors.New("not implemented in adapter")
}

func (m *mockQuestionService) DeleteQuestion(ctx context.Context, id int) ([]models.Question, error) {
	return nil, errors.New("not implemented in adapter")
}

func (m *mockQuestionService) ImportQuestions(ctx context.Context, drafts []models.Draft) (*primary.ImportQuestionsResponse, error) {
	return nil, errors.New("not implemented in adapter")
}

func (m *mockQuestionService) GetQuestion(ctx context.Context, id int) (*models.Question, error) {
	if m.getQuestionFn != nil {
		return m.getQuestionFn(ctx, id)
	}
	q := sampleQuestion(id)
	return &q, nil
}

func (m *mockQuestionService) ListQuestions(ctx context.Context) ([]models.Question, error) {
	if m.listQuestionsFn != nil {
		return m.listQuestionsFn(ctx)
	}
	return []models.Question{}, nil
}

// mockImportService implements primary.ImportService for testing
type mockImportService struct {
	importFileFn func(ctx context.Context, path string) (*primary.ImportQuestionsResponse, error)
	lastPath     string
}

func (m *mockImportService) Begin(path string) primary.ImportTicket {
	return primary.ImportTicket{Path: path}
}

func (m *mockImportService) Read(ctx context.Context, ticket primary.ImportTicket) primary.ImportResult {
	return primary.ImportResult{Ticket: ticket}
}

func (m *mockImportService) Apply(ctx context.Context, result primary.ImportResult) (*primary.ImportQuestionsResponse, error) {
	return nil, errors.New("not implemented in adapter")
}

func (m *mockImportService) ImportFile(ctx context.Context, path string) (*primary.ImportQuestionsResponse, error) {
	m.lastPath = path
	if m.importFileFn != nil {
		return m.importFileFn(ctx, path)
	}
	return &primary.ImportQuestionsResponse{}, nil
}

// mockExportService implements primary.ExportService for testing
type mockExportService struct {
	exportFn func(ctx context.Context, path string) (string, error)
}

func (m *mockExportService) Export(ctx context.Context, path string) (string, error) {
	if m.exportFn != nil {
		return m.exportFn(ctx, path)
	}
	if path == "" {
		path = "questions.json"
	}
	return path, nil
}

func sampleQuestion(id int) models.Question {
	return models.Question{
		ID: id,
		Translations: models.Translations{
			PtBR: models.Translation{Text: "Qual é a capital?", Options: []string{"Lisboa", "Brasília"}, Explanation: "Desde 1960"},
			EN:   models.Translation{Text: "What is the capital?", Options: []string{"Lisbon", "Brasília"}},
		},
		CorrectAnswers: []int{1},
		MinAnswers:     1,
		MaxAnswers:     1,
	}
}

func newTestAdapter() (*QuestionAdapter, *mockQuestionService, *mockImportService, *mockExportService, *bytes.Buffer) {
	questions := &mockQuestionService{}
	imports := &mockImportService{}
	exports := &mockExportService{}
	out := &bytes.Buffer{}
	return NewQuestionAdapter(questions, imports, exports, out), questions, imports, exports, out
}

func TestQuestionAdapter_ListEmpty(t *testing.T) {
	adapter, _, _, _, out := newTestAdapter()

	if err := adapter.List(context.Background()); err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if !strings.Contains(out.String(), "No questions added yet") {
		t.Errorf("expected empty hint, got %q", out.String())
	}
}

func TestQuestionAdapter_List(t *testing.T) {
	adapter, questions, _, _, out := newTestAdapter()
	questions.listQuestionsFn = func(ctx context.Context) ([]models.Question, error) {
		multi := sampleQuestion(2)
		multi.CorrectAnswers = []int{0, 1}
		multi.MaxAnswers = 2
		return []models.Question{sampleQuestion(1), multi}, nil
	}

	if err := adapter.List(context.Background()); err != nil {
		t.Fatalf("List failed: %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "Total Questions: 2") {
		t.Errorf("missing total in %q", output)
	}
	if !strings.Contains(output, "Qual é a capital?") {
		t.Errorf("missing pt-BR text in %q", output)
	}
	if !strings.Contains(output, "1,2") {
		t.Errorf("expected 1-based correct answers in %q", output)
	}
}

func TestQuestionAdapter_ListError(t *testing.T) {
	adapter, questions, _, _, _ := newTestAdapter()
	questions.listQuestionsFn = func(ctx context.Context) ([]models.Question, error) {
		return nil, errors.New("database locked")
	}

	if err := adapter.List(context.Background()); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestQuestionAdapter_Show(t *testing.T) {
	adapter, _, _, _, out := newTestAdapter()

	if err := adapter.Show(context.Background(), 3); err != nil {
		t.Fatalf("Show failed: %v", err)
	}

	output := out.String()
	for _, want := range []string{"Question: 3", "[pt-BR] Qual é a capital?", "[en] What is the capital?", "✓ 2. Brasília", "Explanation: Desde 1960"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
	if strings.Contains(output, "✓ 1. Lisboa") {
		t.Errorf("wrong option marked correct:\n%s", output)
	}
}

func TestQuestionAdapter_ShowNotFound(t *testing.T) {
	adapter, questions, _, _, _ := newTestAdapter()
	questions.getQuestionFn = func(ctx context.Context, id int) (*models.Question, error) {
		return nil, errors.New("not found")
	}

	if err := adapter.Show(context.Background(), 9); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestQuestionAdapter_Import(t *testing.T) {
	adapter, _, imports, _, out := newTestAdapter()
	imports.importFileFn = func(ctx context.Context, path string) (*primary.ImportQuestionsResponse, error) {
		return &primary.ImportQuestionsResponse{
			Imported: []models.Question{sampleQuestion(5), sampleQuestion(6), sampleQuestion(7)},
		}, nil
	}

	if err := adapter.Import(context.Background(), "bank.json"); err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if imports.lastPath != "bank.json" {
		t.Errorf("expected path bank.json, got %q", imports.lastPath)
	}
	if !strings.Contains(out.String(), "✓ Imported 3 questions from bank.json (ids 5-7)") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestQuestionAdapter_ImportEmptyFile(t *testing.T) {
	adapter, _, _, _, out := newTestAdapter()

	if err := adapter.Import(context.Background(), "empty.json"); err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if !strings.Contains(out.String(), "No questions in empty.json") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestQuestionAdapter_Export(t *testing.T) {
	adapter, questions, _, _, out := newTestAdapter()
	questions.listQuestionsFn = func(ctx context.Context) ([]models.Question, error) {
		return []models.Question{sampleQuestion(1)}, nil
	}

	if err := adapter.Export(context.Background(), ""); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if !strings.Contains(out.String(), "✓ Exported 1 questions to questions.json") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestQuestionAdapter_ValidateReportsIssues(t *testing.T) {
	adapter, _, imports, _, out := newTestAdapter()
	imports.importFileFn = func(ctx context.Context, path string) (*primary.ImportQuestionsResponse, error) {
		return nil, &corequestion.ValidationError{Issues: []corequestion.Issue{
			{Field: "[0].minAnswers", Message: "must be at least 1"},
			{Field: "[1].translations.pt-BR.text", Message: "is required"},
		}}
	}

	err := adapter.Validate(context.Background(), "bad.json")
	if err == nil || !strings.Contains(err.Error(), "2 validation issues") {
		t.Fatalf("expected issue count error, got %v", err)
	}
	if !strings.Contains(out.String(), "✗ [0].minAnswers: must be at least 1") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestQuestionAdapter_ValidateSuccess(t *testing.T) {
	adapter, _, imports, _, out := newTestAdapter()
	imports.importFileFn = func(ctx context.Context, path string) (*primary.ImportQuestionsResponse, error) {
		return &primary.ImportQuestionsResponse{Imported: []models.Question{sampleQuestion(1)}}, nil
	}

	if err := adapter.Validate(context.Background(), "good.json"); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if !strings.Contains(out.String(), "✓ good.json: 1 questions valid") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate short = %q", got)
	}
	if got := truncate("linha\num texto longo", 8); got != "linha u…" {
		t.Errorf("truncate long = %q", got)
	}
}
