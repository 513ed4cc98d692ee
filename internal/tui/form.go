package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	corequestion "github.com/example/qbank/internal/core/question"
	"github.com/example/qbank/internal/models"
)

// formLanguages lists the translations in form order.
var formLanguages = [2]string{models.LangPtBR, models.LangEN}

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldOption
	fieldExplanation
	fieldCorrect
	fieldMin
	fieldMax
)

// fieldRef addresses one input of the form.
type fieldRef struct {
	kind   fieldKind
	lang   int
	option int
}

type translationInputs struct {
	text        textinput.Model
	options     []textinput.Model
	explanation textinput.Model
}

// form edits one question. Answers are typed 1-based and stored 0-based.
type form struct {
	editing bool
	id      int

	langs   [2]translationInputs
	correct textinput.Model
	min     textinput.Model
	max     textinput.Model

	focus int
	err   string
}

// newForm builds a form for a new question.
func newForm() form {
	return formFromDraft(models.NewDraft(), 0, false)
}

// editForm builds a form pre-filled with an existing question.
func editForm(q models.Question) form {
	return formFromDraft(q.Draft(), q.ID, true)
}

func formFromDraft(draft models.Draft, id int, editing bool) form {
	f := form{editing: editing, id: id}
	for i, lang := range formLanguages {
		translation := draft.Translations.Translation(lang)
		inputs := translationInputs{
			text:        newInput("Question text", translation.Text),
			explanation: newInput("Explanation", translation.Explanation),
		}
		for _, option := range translation.Options {
			inputs.options = append(inputs.options, newInput("Option", option))
		}
		f.langs[i] = inputs
	}

	f.correct = newInput("e.g., 1,2,3", corequestion.FormatAnswerList(corequestion.ToOneBased(draft.CorrectAnswers)))
	f.min = newInput("1", strconv.Itoa(orOne(draft.MinAnswers)))
	f.max = newInput("1", strconv.Itoa(orOne(draft.MaxAnswers)))
	f.setFocus(0)
	return f
}

func newInput(placeholder, value string) textinput.Model {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = placeholder
	input.CharLimit = 0
	input.Width = 60
	input.SetValue(value)
	return input
}

// orOne maps an unset count to the form default.
func orOne(n int) int {
	if n == 0 {
		return 1
	}
	return n
}

// fields enumerates the inputs in focus order.
func (f *form) fields() []fieldRef {
	var refs []fieldRef
	for lang := range f.langs {
		refs = append(refs, fieldRef{kind: fieldText, lang: lang})
		for option := range f.langs[lang].options {
			refs = append(refs, fieldRef{kind: fieldOption, lang: lang, option: option})
		}
		refs = append(refs, fieldRef{kind: fieldExplanation, lang: lang})
	}
	return append(refs,
		fieldRef{kind: fieldCorrect},
		fieldRef{kind: fieldMin},
		fieldRef{kind: fieldMax},
	)
}

func (f *form) input(ref fieldRef) *textinput.Model {
	switch ref.kind {
	case fieldText:
		return &f.langs[ref.lang].text
	case fieldOption:
		return &f.langs[ref.lang].options[ref.option]
	case fieldExplanation:
		return &f.langs[ref.lang].explanation
	case fieldCorrect:
		return &f.correct
	case fieldMin:
		return &f.min
	default:
		return &f.max
	}
}

func (f *form) focused() fieldRef {
	return f.fields()[f.focus]
}

// setFocus moves focus to index i, clamped to the field range.
func (f *form) setFocus(i int) tea.Cmd {
	refs := f.fields()
	if i < 0 {
		i = 0
	}
	if i >= len(refs) {
		i = len(refs) - 1
	}
	for _, ref := range refs {
		f.input(ref).Blur()
	}
	f.focus = i
	return f.input(refs[i]).Focus()
}

func (f *form) next() tea.Cmd { return f.setFocus(f.focus + 1) }
func (f *form) prev() tea.Cmd { return f.setFocus(f.focus - 1) }

func (f *form) onLastField() bool {
	return f.focus == len(f.fields())-1
}

// addOption appends an empty option to the translation holding focus.
func (f *form) addOption() tea.Cmd {
	ref := f.focused()
	if ref.kind != fieldText && ref.kind != fieldOption && ref.kind != fieldExplanation {
		return nil
	}
	f.langs[ref.lang].options = append(f.langs[ref.lang].options, newInput("Option", ""))

	target := fieldRef{kind: fieldOption, lang: ref.lang, option: len(f.langs[ref.lang].options) - 1}
	for i, candidate := range f.fields() {
		if candidate == target {
			return f.setFocus(i)
		}
	}
	return nil
}

// removeOption deletes the focused option and renumbers the typed answers.
func (f *form) removeOption() tea.Cmd {
	ref := f.focused()
	if ref.kind != fieldOption {
		return nil
	}

	answers := corequestion.ParseAnswerList(f.correct.Value(), len(f.langs[0].options))
	answers = corequestion.RemoveOptionAnswers(answers, ref.option)
	f.correct.SetValue(corequestion.FormatAnswerList(answers))

	options := f.langs[ref.lang].options
	f.langs[ref.lang].options = append(options[:ref.option:ref.option], options[ref.option+1:]...)
	return f.setFocus(f.focus)
}

// update forwards a message to the focused input.
func (f *form) update(msg tea.Msg) tea.Cmd {
	input := f.input(f.focused())
	updated, cmd := input.Update(msg)
	*input = updated
	return cmd
}

// draft reads the form into a draft. Correct answers are checked against
// the pt-BR option count; invalid entries are dropped.
func (f *form) draft() models.Draft {
	var translations [2]models.Translation
	for i, inputs := range f.langs {
		options := make([]string, len(inputs.options))
		for j, option := range inputs.options {
			options[j] = option.Value()
		}
		translations[i] = models.Translation{
			Text:        inputs.text.Value(),
			Options:     options,
			Explanation: inputs.explanation.Value(),
		}
	}

	answers := corequestion.ParseAnswerList(f.correct.Value(), len(f.langs[0].options))
	return models.Draft{
		Translations: models.Translations{
			PtBR: translations[0],
			EN:   translations[1],
		},
		CorrectAnswers: corequestion.ToZeroBased(answers),
		MinAnswers:     atoi(f.min.Value()),
		MaxAnswers:     atoi(f.max.Value()),
	}
}

// validate runs the submit guard and records its reason.
func (f *form) validate(draft models.Draft) bool {
	result := corequestion.CanSubmit(corequestion.SubmitContext{
		MinAnswers: draft.MinAnswers,
		MaxAnswers: draft.MaxAnswers,
	})
	f.err = result.Reason
	return result.Allowed
}

func atoi(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return n
}
