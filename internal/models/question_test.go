package models

import (
	"reflect"
	"testing"
)

func sampleQuestion() Question {
	return Question{
		ID: 3,
		Translations: Translations{
			PtBR: Translation{Text: "Qual?", Options: []string{"a", "b"}, Explanation: "porque"},
			EN:   Translation{Text: "Which?", Options: []string{"a", "b"}, Explanation: "because"},
		},
		CorrectAnswers: []int{1},
		MinAnswers:     1,
		MaxAnswers:     1,
	}
}

func TestQuestion_CloneDoesNotAlias(t *testing.T) {
	original := sampleQuestion()
	clone := original.Clone()

	clone.Translations.PtBR.Options[0] = "changed"
	clone.Translations.EN.Options[1] = "changed"
	clone.CorrectAnswers[0] = 0

	if !reflect.DeepEqual(original, sampleQuestion()) {
		t.Errorf("original was modified through its clone: %+v", original)
	}
}

func TestQuestion_CloneKeepsNilSlices(t *testing.T) {
	clone := Question{ID: 1}.Clone()
	if clone.CorrectAnswers != nil || clone.Translations.PtBR.Options != nil {
		t.Errorf("expected nil slices to stay nil, got %+v", clone)
	}
}

func TestDraft_WithIDRoundTrip(t *testing.T) {
	q := sampleQuestion()
	back := q.Draft().WithID(q.ID)
	if !reflect.DeepEqual(q, back) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", back, q)
	}
}

func TestNewDraft(t *testing.T) {
	draft := NewDraft()
	if len(draft.Translations.PtBR.Options) != 1 || len(draft.Translations.EN.Options) != 1 {
		t.Errorf("expected one blank option per language, got %+v", draft.Translations)
	}
	if draft.MinAnswers != 1 || draft.MaxAnswers != 1 {
		t.Errorf("expected min and max of 1, got %d/%d", draft.MinAnswers, draft.MaxAnswers)
	}
	if draft.CorrectAnswers == nil || len(draft.CorrectAnswers) != 0 {
		t.Errorf("expected an empty answer key, got %v", draft.CorrectAnswers)
	}
}

func TestTranslations_Translation(t *testing.T) {
	tr := sampleQuestion().Translations
	tests := []struct {
		lang string
		want string
	}{
		{lang: LangPtBR, want: "Qual?"},
		{lang: LangEN, want: "Which?"},
		{lang: "fr", want: "Qual?"},
	}
	for _, tt := range tests {
		if got := tr.Translation(tt.lang).Text; got != tt.want {
			t.Errorf("Translation(%q) = %q, want %q", tt.lang, got, tt.want)
		}
	}
}

func TestQuestion_IsCorrect(t *testing.T) {
	q := sampleQuestion()
	if !q.IsCorrect(1) || q.IsCorrect(0) || q.IsCorrect(5) {
		t.Errorf("unexpected answer key evaluation for %v", q.CorrectAnswers)
	}
}
