package app

import (
	"context"
	"errors"
	"sync"

	"github.com/example/qbank/internal/models"
	"github.com/example/qbank/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// Ensure mocks implement the interfaces
var (
	_ secondary.QuestionRepository = (*mockQuestionRepository)(nil)
	_ secondary.LogWriter          = (*mockLogWriter)(nil)
	_ secondary.QuestionFileStore  = (*mockFileStore)(nil)
)

// mockQuestionRepository implements secondary.QuestionRepository for testing.
// It only exists to inject failures; behaviour tests use the memory adapter.
type mockQuestionRepository struct {
	questions  []models.Question
	nextIDErr  error
	appendErr  error
	replaceErr error
	deleteErr  error
	listErr    error
}

func newMockQuestionRepository() *mockQuestionRepository {
	return &mockQuestionRepository{}
}

func (m *mockQuestionRepository) GetNextID(ctx context.Context) (int, error) {
	if m.nextIDErr != nil {
		return 0, m.nextIDErr
	}
	next := 1
	for _, q := range m.questions {
		if q.ID >= next {
			next = q.ID + 1
		}
	}
	return next, nil
}

func (m *mockQuestionRepository) Append(ctx context.Context, questions ...models.Question) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.questions = append(m.questions, questions...)
	return nil
}

func (m *mockQuestionRepository) Replace(ctx context.Context, question models.Question) (bool, error) {
	if m.replaceErr != nil {
		return false, m.replaceErr
	}
	for i := range m.questions {
		if m.questions[i].ID == question.ID {
			m.questions[i] = question
			return true, nil
		}
	}
	return false, nil
}

func (m *mockQuestionRepository) Delete(ctx context.Context, id int) (bool, error) {
	if m.deleteErr != nil {
		return false, m.deleteErr
	}
	for i := range m.questions {
		if m.questions[i].ID == id {
			m.questions = append(m.questions[:i], m.questions[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *mockQuestionRepository) GetByID(ctx context.Context, id int) (*models.Question, error) {
	for _, q := range m.questions {
		if q.ID == id {
			found := q
			return &found, nil
		}
	}
	return nil, secondary.ErrNotFound
}

func (m *mockQuestionRepository) List(ctx context.Context) ([]models.Question, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return append([]models.Question(nil), m.questions...), nil
}

// logEntry records one call made to mockLogWriter.
type logEntry struct {
	action   string
	entityID int
}

// mockLogWriter implements secondary.LogWriter for testing.
type mockLogWriter struct {
	mu      sync.Mutex
	entries []logEntry
	err     error
}

func newMockLogWriter() *mockLogWriter {
	return &mockLogWriter{}
}

func (m *mockLogWriter) LogCreate(ctx context.Context, entityType string, entityID int) error {
	return m.record("create", entityID)
}

func (m *mockLogWriter) LogUpdate(ctx context.Context, entityType string, entityID int) error {
	return m.record("update", entityID)
}

func (m *mockLogWriter) LogDelete(ctx context.Context, entityType string, entityID int) error {
	return m.record("delete", entityID)
}

func (m *mockLogWriter) record(action string, entityID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, logEntry{action: action, entityID: entityID})
	return m.err
}

func (m *mockLogWriter) actions() []logEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]logEntry(nil), m.entries...)
}

// mockFileStore implements secondary.QuestionFileStore for testing.
// Load blocks on gate when one is registered for the path.
type mockFileStore struct {
	mu      sync.Mutex
	values  map[string]any
	errs    map[string]error
	gates   map[string]chan struct{}
	saved   map[string]any
	saveErr error
}

func newMockFileStore() *mockFileStore {
	return &mockFileStore{
		values: make(map[string]any),
		errs:   make(map[string]error),
		gates:  make(map[string]chan struct{}),
		saved:  make(map[string]any),
	}
}

func (m *mockFileStore) Load(ctx context.Context, path string) (any, error) {
	m.mu.Lock()
	gate := m.gates[path]
	m.mu.Unlock()
	if gate != nil {
		<-gate
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.errs[path]; err != nil {
		return nil, err
	}
	value, ok := m.values[path]
	if !ok {
		return nil, errors.New("no such file")
	}
	return value, nil
}

func (m *mockFileStore) Save(ctx context.Context, path string, value any) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved[path] = value
	return nil
}

// ============================================================================
// Fixtures
// ============================================================================

// newTestDraft builds a valid two-option draft whose pt-BR text is label.
func newTestDraft(label string) models.Draft {
	return models.Draft{
		Translations: models.Translations{
			PtBR: models.Translation{Text: label, Options: []string{"A", "B"}, Explanation: "porque"},
			EN:   models.Translation{Text: label + " (en)", Options: []string{"A", "B"}, Explanation: "because"},
		},
		CorrectAnswers: []int{0},
		MinAnswers:     1,
		MaxAnswers:     1,
	}
}

// rawQuestion is the generic decoded form of one question file element.
func rawQuestion(label string) map[string]any {
	return map[string]any{
		"id": 99,
		"translations": map[string]any{
			"pt-BR": map[string]any{"text": label, "options": []any{"A", "B"}, "explanation": ""},
			"en":    map[string]any{"text": label + " (en)", "options": []any{"A", "B"}, "explanation": ""},
		},
		"correctAnswers": []any{0},
		"minAnswers":     1,
		"maxAnswers":     1,
	}
}

func questionIDs(questions []models.Question) []int {
	ids := make([]int, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}
	return ids
}
