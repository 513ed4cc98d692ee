package app

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/example/qbank/internal/adapters/memory"
	"github.com/example/qbank/internal/codec"
	corequestion "github.com/example/qbank/internal/core/question"
	"github.com/example/qbank/internal/ctxutil"
	"github.com/example/qbank/internal/ports/primary"
)

func newTestImportService(strict bool) (*ImportServiceImpl, *QuestionServiceImpl, *mockFileStore) {
	files := newMockFileStore()
	questions := NewQuestionService(memory.NewQuestionRepository(), nil)
	return NewImportService(files, questions, strict), questions, files
}

func TestImportFile_AppendsWithContiguousIDs(t *testing.T) {
	svc, questions, files := newTestImportService(false)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_, _ = questions.AddQuestion(ctx, newTestDraft("existing"))
	}
	files.values["batch.json"] = []any{rawQuestion("a"), rawQuestion("b"), rawQuestion("c")}

	resp, err := svc.ImportFile(ctx, "batch.json")
	if err != nil {
		t.Fatalf("ImportFile failed: %v", err)
	}

	if got := questionIDs(resp.Imported); !reflect.DeepEqual(got, []int{5, 6, 7}) {
		t.Errorf("imported ids = %v, want [5 6 7]", got)
	}
	if len(resp.Questions) != 7 {
		t.Errorf("expected 7 questions, got %d", len(resp.Questions))
	}
}

func TestImportFile_ErrorsLeaveCollectionUnchanged(t *testing.T) {
	readErr := &codec.ReadError{Path: "missing.json", Err: errors.New("no such file or directory")}
	parseErr := &codec.ParseError{Format: codec.FormatJSON, Err: errors.New("unexpected end of JSON input")}

	tests := []struct {
		name   string
		setup  func(files *mockFileStore)
		target any
	}{
		{
			name:   "read failure",
			setup:  func(files *mockFileStore) { files.errs["f.json"] = readErr },
			target: new(*codec.ReadError),
		},
		{
			name:   "parse failure",
			setup:  func(files *mockFileStore) { files.errs["f.json"] = parseErr },
			target: new(*codec.ParseError),
		},
		{
			name:   "object instead of array",
			setup:  func(files *mockFileStore) { files.values["f.json"] = map[string]any{"id": 1} },
			target: new(*codec.ShapeError),
		},
		{
			name: "element with wrong type",
			setup: func(files *mockFileStore) {
				files.values["f.json"] = []any{rawQuestion("ok"), "not a question"}
			},
			target: new(*codec.ShapeError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, questions, files := newTestImportService(false)
			ctx := context.Background()
			_, _ = questions.AddQuestion(ctx, newTestDraft("kept"))
			tt.setup(files)

			_, err := svc.ImportFile(ctx, "f.json")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.As(err, tt.target) {
				t.Errorf("error %v (%T) does not match %T", err, err, tt.target)
			}

			snapshot, _ := questions.ListQuestions(ctx)
			if got := questionIDs(snapshot); !reflect.DeepEqual(got, []int{1}) {
				t.Errorf("collection changed: %v", got)
			}
		})
	}
}

func TestImportFile_EmptyArrayIsNoOp(t *testing.T) {
	svc, _, files := newTestImportService(false)
	files.values["empty.json"] = []any{}

	resp, err := svc.ImportFile(context.Background(), "empty.json")
	if err != nil {
		t.Fatalf("ImportFile failed: %v", err)
	}
	if len(resp.Imported) != 0 || len(resp.Questions) != 0 {
		t.Errorf("expected nothing imported, got %+v", resp)
	}
}

func TestImportFile_SchemaLessByDefault(t *testing.T) {
	svc, _, files := newTestImportService(false)
	files.values["loose.json"] = []any{map[string]any{"minAnswers": 0}}

	resp, err := svc.ImportFile(context.Background(), "loose.json")
	if err != nil {
		t.Fatalf("ImportFile failed: %v", err)
	}
	if len(resp.Imported) != 1 || resp.Imported[0].MinAnswers != 0 {
		t.Errorf("expected the loose record to be accepted as-is, got %+v", resp.Imported)
	}
}

// Strict mode is a deliberate deviation from the schema-less default.
func TestImportFile_StrictRejectsInvalidRecord(t *testing.T) {
	svc, questions, files := newTestImportService(true)
	files.values["loose.json"] = []any{rawQuestion("ok"), map[string]any{"minAnswers": 0}}

	_, err := svc.ImportFile(context.Background(), "loose.json")
	var validationErr *corequestion.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	snapshot, _ := questions.ListQuestions(context.Background())
	if len(snapshot) != 0 {
		t.Errorf("expected empty collection, got %d", len(snapshot))
	}
}

func TestApply_DiscardsSupersededRead(t *testing.T) {
	svc, questions, files := newTestImportService(false)
	ctx := context.Background()
	files.values["old.json"] = []any{rawQuestion("old")}
	files.values["new.json"] = []any{rawQuestion("new"), rawQuestion("newer")}

	oldTicket := svc.Begin("old.json")
	newTicket := svc.Begin("new.json")

	oldResult := svc.Read(ctx, oldTicket)
	if _, err := svc.Apply(ctx, oldResult); !IsStale(err) {
		t.Fatalf("expected ErrStaleImport, got %v", err)
	}

	resp, err := svc.Apply(ctx, svc.Read(ctx, newTicket))
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if got := questionIDs(resp.Questions); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Errorf("ids = %v, want [1 2]", got)
	}

	// A ticket is applied at most once.
	if _, err := svc.Apply(ctx, svc.Read(ctx, newTicket)); !IsStale(err) {
		t.Errorf("expected second apply to be stale, got %v", err)
	}

	snapshot, _ := questions.ListQuestions(ctx)
	if len(snapshot) != 2 || snapshot[0].Translations.PtBR.Text != "new" {
		t.Errorf("unexpected collection %+v", snapshot)
	}
}

func TestApply_SlowReadCompletingLateIsDiscarded(t *testing.T) {
	svc, questions, files := newTestImportService(false)
	ctx := context.Background()
	files.values["slow.json"] = []any{rawQuestion("slow")}
	files.values["fast.json"] = []any{rawQuestion("fast")}
	gate := make(chan struct{})
	files.gates["slow.json"] = gate

	slowTicket := svc.Begin("slow.json")
	done := make(chan primary.ImportResult)
	go func() {
		done <- svc.Read(ctx, slowTicket)
	}()

	if _, err := svc.ImportFile(ctx, "fast.json"); err != nil {
		t.Fatalf("ImportFile failed: %v", err)
	}

	close(gate)
	if _, err := svc.Apply(ctx, <-done); !errors.Is(err, ErrStaleImport) {
		t.Fatalf("expected ErrStaleImport, got %v", err)
	}

	snapshot, _ := questions.ListQuestions(ctx)
	if len(snapshot) != 1 || snapshot[0].Translations.PtBR.Text != "fast" {
		t.Errorf("unexpected collection %+v", snapshot)
	}
}

func TestApply_ZeroTicketIsStale(t *testing.T) {
	svc, _, _ := newTestImportService(false)

	if _, err := svc.Apply(context.Background(), primary.ImportResult{}); !IsStale(err) {
		t.Errorf("expected ErrStaleImport, got %v", err)
	}
}

func TestApply_AttributesActivityToFile(t *testing.T) {
	files := newMockFileStore()
	files.values["/tmp/bank/questions.yaml"] = []any{rawQuestion("a")}
	var actors []string
	recorder := &actorRecorder{record: func(actor string) { actors = append(actors, actor) }}
	svc := NewImportService(files, NewQuestionService(memory.NewQuestionRepository(), recorder), false)

	if _, err := svc.ImportFile(context.Background(), "/tmp/bank/questions.yaml"); err != nil {
		t.Fatalf("ImportFile failed: %v", err)
	}
	if !reflect.DeepEqual(actors, []string{"import:questions.yaml"}) {
		t.Errorf("actors = %v", actors)
	}
}

// actorRecorder captures the actor attached to each logged event.
type actorRecorder struct {
	record func(actor string)
}

func (r *actorRecorder) LogCreate(ctx context.Context, entityType string, entityID int) error {
	r.record(ctxutil.ActorFromContext(ctx))
	return nil
}

func (r *actorRecorder) LogUpdate(ctx context.Context, entityType string, entityID int) error {
	r.record(ctxutil.ActorFromContext(ctx))
	return nil
}

func (r *actorRecorder) LogDelete(ctx context.Context, entityType string, entityID int) error {
	r.record(ctxutil.ActorFromContext(ctx))
	return nil
}
