package models

// Language tags used as keys of Translations in the persisted file format.
const (
	LangPtBR = "pt-BR"
	LangEN   = "en"
)

// Translation is one language's rendering of a question.
type Translation struct {
	Text        string   `json:"text" yaml:"text"`
	Options     []string `json:"options" yaml:"options"`
	Explanation string   `json:"explanation" yaml:"explanation"`
}

// Translations holds the two required renderings of a question.
type Translations struct {
	PtBR Translation `json:"pt-BR" yaml:"pt-BR"`
	EN   Translation `json:"en" yaml:"en"`
}

// Question is a bilingual multiple-choice item.
// CorrectAnswers are 0-based indices into the options of both translations.
type Question struct {
	ID             int          `json:"id" yaml:"id"`
	Translations   Translations `json:"translations" yaml:"translations"`
	CorrectAnswers []int        `json:"correctAnswers" yaml:"correctAnswers"`
	MinAnswers     int          `json:"minAnswers" yaml:"minAnswers"`
	MaxAnswers     int          `json:"maxAnswers" yaml:"maxAnswers"`
}

// Draft is a question payload that has not been assigned an id yet.
type Draft struct {
	Translations   Translations `json:"translations" yaml:"translations"`
	CorrectAnswers []int        `json:"correctAnswers" yaml:"correctAnswers"`
	MinAnswers     int          `json:"minAnswers" yaml:"minAnswers"`
	MaxAnswers     int          `json:"maxAnswers" yaml:"maxAnswers"`
}

// NewDraft returns the payload a blank form starts from: one empty option
// per translation and a single required answer.
func NewDraft() Draft {
	return Draft{
		Translations: Translations{
			PtBR: Translation{Options: []string{""}},
			EN:   Translation{Options: []string{""}},
		},
		CorrectAnswers: []int{},
		MinAnswers:     1,
		MaxAnswers:     1,
	}
}

// WithID attaches an id to the draft.
func (d Draft) WithID(id int) Question {
	return Question{
		ID:             id,
		Translations:   d.Translations,
		CorrectAnswers: d.CorrectAnswers,
		MinAnswers:     d.MinAnswers,
		MaxAnswers:     d.MaxAnswers,
	}
}

// Draft drops the id of the question.
func (q Question) Draft() Draft {
	return Draft{
		Translations:   q.Translations,
		CorrectAnswers: q.CorrectAnswers,
		MinAnswers:     q.MinAnswers,
		MaxAnswers:     q.MaxAnswers,
	}
}

// Translation returns the rendering for a language tag, falling back to pt-BR.
func (t Translations) Translation(lang string) Translation {
	if lang == LangEN {
		return t.EN
	}
	return t.PtBR
}

// Clone returns a deep copy so callers can never alias the collection's slices.
func (q Question) Clone() Question {
	q.Translations.PtBR = q.Translations.PtBR.Clone()
	q.Translations.EN = q.Translations.EN.Clone()
	q.CorrectAnswers = cloneInts(q.CorrectAnswers)
	return q
}

// Clone returns a deep copy of the draft.
func (d Draft) Clone() Draft {
	return d.WithID(0).Clone().Draft()
}

// Clone returns a deep copy of the translation.
func (t Translation) Clone() Translation {
	if t.Options != nil {
		t.Options = append([]string(nil), t.Options...)
	}
	return t
}

// IsCorrect reports whether the 0-based option index is part of the answer key.
func (q Question) IsCorrect(index int) bool {
	for _, answer := range q.CorrectAnswers {
		if answer == index {
			return true
		}
	}
	return false
}

func cloneInts(values []int) []int {
	if values == nil {
		return nil
	}
	return append([]int(nil), values...)
}
