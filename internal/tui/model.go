// Package tui implements the interactive authoring session on Bubble Tea.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/example/qbank/internal/codec"
	corequestion "github.com/example/qbank/internal/core/question"
	"github.com/example/qbank/internal/models"
	"github.com/example/qbank/internal/ports/primary"
)

// Activity reports the most recent collection event.
type Activity interface {
	Last() string
}

// Services are the session services the UI drives.
type Services struct {
	Questions primary.QuestionService
	Imports   primary.ImportService
	Exports   primary.ExportService
	Activity  Activity
}

// Options configures the UI model.
type Options struct {
	NoColor bool
	// ImportPath is imported as soon as the program starts.
	ImportPath string
	// ExportPath pre-fills the save prompt.
	ExportPath string
}

type mode int

const (
	modeList mode = iota
	modeForm
	modeConfirmDelete
	modeImportPrompt
	modeExportPrompt
)

// Model is the question bank UI.
type Model struct {
	ctx      context.Context
	services Services

	questions []models.Question
	cursor    int
	expanded  map[int]bool

	mode   mode
	form   form
	prompt textinput.Model

	status     string
	statusErr  bool
	importPath string
	exportPath string
	noColor    bool
	width      int
}

// importReadMsg carries a completed file read back to the UI goroutine.
type importReadMsg struct {
	result primary.ImportResult
}

// NewModel constructs a UI model over the session's current collection.
func NewModel(ctx context.Context, services Services, opts Options) (Model, error) {
	questions, err := services.Questions.ListQuestions(ctx)
	if err != nil {
		return Model{}, err
	}

	exportPath := opts.ExportPath
	if exportPath == "" {
		exportPath = codec.DefaultFilename
	}
	prompt := textinput.New()
	prompt.Prompt = "> "
	prompt.Width = 60

	return Model{
		ctx:        ctx,
		services:   services,
		questions:  questions,
		expanded:   map[int]bool{},
		prompt:     prompt,
		importPath: opts.ImportPath,
		exportPath: exportPath,
		noColor:    opts.NoColor,
	}, nil
}

// Init starts the initial import, if one was requested.
func (m Model) Init() tea.Cmd {
	if m.importPath == "" {
		return nil
	}
	return m.startImport(m.importPath)
}

// Update handles key presses and completed imports.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		return m, nil
	case importReadMsg:
		return m.applyImport(typed.result), nil
	case tea.KeyMsg:
		if typed.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeForm:
			return m.updateForm(typed)
		case modeConfirmDelete:
			return m.updateConfirmDelete(typed)
		case modeImportPrompt, modeExportPrompt:
			return m.updatePrompt(typed)
		default:
			return m.updateList(typed)
		}
	}
	return m, nil
}

// View renders the current screen.
func (m Model) View() string {
	switch m.mode {
	case modeForm:
		return renderForm(m)
	case modeImportPrompt, modeExportPrompt:
		return renderPrompt(m)
	default:
		return renderList(m)
	}
}

// Questions returns the snapshot currently on screen.
func (m Model) Questions() []models.Question {
	return m.questions
}

// Status returns the status line and whether it reports an error.
func (m Model) Status() (string, bool) {
	return m.status, m.statusErr
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.listKeys()
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.questions)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.Add):
		m.form = newForm()
		m.mode = modeForm
		m.clearStatus()
	case key.Matches(msg, keys.Edit):
		selected, ok := m.selected()
		if !ok {
			return m, nil
		}
		q, err := m.services.Questions.GetQuestion(m.ctx, selected.ID)
		if err != nil {
			m.setError(fmt.Sprintf("Error loading question %d: %v", selected.ID, err))
			return m, nil
		}
		m.form = editForm(*q)
		m.mode = modeForm
		m.clearStatus()
	case key.Matches(msg, keys.Delete):
		if _, ok := m.selected(); ok {
			m.mode = modeConfirmDelete
		}
	case key.Matches(msg, keys.Expand):
		if selected, ok := m.selected(); ok {
			m.expanded[selected.ID] = !m.expanded[selected.ID]
		}
	case key.Matches(msg, keys.Save):
		m.openPrompt(modeExportPrompt, m.exportPath)
	case key.Matches(msg, keys.Import):
		m.openPrompt(modeImportPrompt, "")
	}
	return m, nil
}

// listKeys disables save while the collection is empty.
func (m Model) listKeys() listKeys {
	keys := defaultListKeys
	keys.Save.SetEnabled(len(m.questions) > 0)
	hasSelection := len(m.questions) > 0
	keys.Edit.SetEnabled(hasSelection)
	keys.Delete.SetEnabled(hasSelection)
	keys.Expand.SetEnabled(hasSelection)
	return keys
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := defaultFormKeys
	switch {
	case key.Matches(msg, keys.Cancel):
		m.mode = modeList
		return m, nil
	case key.Matches(msg, keys.Submit):
		return m.submitForm()
	case msg.String() == "enter" && m.form.onLastField():
		return m.submitForm()
	case key.Matches(msg, keys.Next):
		return m, m.form.next()
	case key.Matches(msg, keys.Prev):
		return m, m.form.prev()
	case key.Matches(msg, keys.AddOption):
		return m, m.form.addOption()
	case key.Matches(msg, keys.RemoveOption):
		return m, m.form.removeOption()
	}
	return m, m.form.update(msg)
}

// submitForm adds a new question or replaces the one being edited.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	draft := m.form.draft()
	if !m.form.validate(draft) {
		return m, nil
	}

	if m.form.editing {
		snapshot, err := m.services.Questions.UpdateQuestion(m.ctx, draft.WithID(m.form.id))
		if err != nil {
			m.setError(fmt.Sprintf("Error saving question: %v", err))
			return m, nil
		}
		m.questions = snapshot
		m.setStatus(fmt.Sprintf("Updated question %d", m.form.id))
	} else {
		resp, err := m.services.Questions.AddQuestion(m.ctx, draft)
		if err != nil {
			m.setError(fmt.Sprintf("Error saving question: %v", err))
			return m, nil
		}
		m.questions = resp.Questions
		m.cursor = len(m.questions) - 1
		m.setStatus(fmt.Sprintf("Added question %d", resp.Question.ID))
	}

	m.mode = modeList
	return m, nil
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = modeList
	if !key.Matches(msg, defaultPromptKeys.Yes) {
		return m, nil
	}

	selected, ok := m.selected()
	if !ok {
		return m, nil
	}
	snapshot, err := m.services.Questions.DeleteQuestion(m.ctx, selected.ID)
	if err != nil {
		m.setError(fmt.Sprintf("Error deleting question: %v", err))
		return m, nil
	}
	m.questions = snapshot
	delete(m.expanded, selected.ID)
	if m.cursor >= len(m.questions) && m.cursor > 0 {
		m.cursor--
	}
	m.setStatus(fmt.Sprintf("Deleted question %d", selected.ID))
	return m, nil
}

func (m *Model) openPrompt(target mode, value string) {
	m.prompt.SetValue(value)
	m.prompt.CursorEnd()
	m.prompt.Focus()
	m.mode = target
	m.clearStatus()
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := defaultPromptKeys
	switch {
	case key.Matches(msg, keys.Cancel):
		m.prompt.Blur()
		m.mode = modeList
		return m, nil
	case key.Matches(msg, keys.Confirm):
		path := m.prompt.Value()
		target := m.mode
		m.prompt.Blur()
		m.mode = modeList
		if target == modeExportPrompt {
			return m.export(path), nil
		}
		if path == "" {
			return m, nil
		}
		m.setStatus("Importing " + path + "…")
		return m, m.startImport(path)
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// startImport registers the import and reads the file off the UI goroutine.
func (m Model) startImport(path string) tea.Cmd {
	imports := m.services.Imports
	ticket := imports.Begin(path)
	ctx := m.ctx
	return func() tea.Msg {
		return importReadMsg{result: imports.Read(ctx, ticket)}
	}
}

// applyImport merges a finished read. Superseded reads are dropped silently.
func (m Model) applyImport(result primary.ImportResult) Model {
	resp, err := m.services.Imports.Apply(m.ctx, result)
	if errors.Is(err, primary.ErrStaleImport) {
		return m
	}
	if err != nil {
		m.setError(importErrorMessage(err))
		return m
	}

	m.questions = resp.Questions
	m.setStatus(fmt.Sprintf("Imported %d questions from %s", len(resp.Imported), result.Ticket.Path))
	return m
}

func (m Model) export(path string) Model {
	written, err := m.services.Exports.Export(m.ctx, path)
	if err != nil {
		m.setError("Error saving file: " + err.Error())
		return m
	}
	m.exportPath = written
	m.setStatus(fmt.Sprintf("Saved %d questions to %s", len(m.questions), written))
	return m
}

// importErrorMessage maps import failures to the messages shown to authors.
func importErrorMessage(err error) string {
	var (
		readErr       *codec.ReadError
		shapeErr      *codec.ShapeError
		validationErr *corequestion.ValidationError
	)
	switch {
	case errors.As(err, &readErr):
		return "Error reading file: " + readErr.Err.Error()
	case errors.As(err, &shapeErr) && shapeErr.Index < 0:
		return "Invalid file format. Expected an array of questions."
	case errors.As(err, &shapeErr):
		return fmt.Sprintf("Invalid file format. Question %d: %v", shapeErr.Index+1, shapeErr.Err)
	case errors.As(err, &validationErr):
		return validationErr.Error()
	default:
		return "Error reading file: " + err.Error()
	}
}

func (m Model) selected() (models.Question, bool) {
	if m.cursor < 0 || m.cursor >= len(m.questions) {
		return models.Question{}, false
	}
	return m.questions[m.cursor], true
}

func (m *Model) setStatus(text string) {
	m.status = text
	m.statusErr = false
}

func (m *Model) setError(text string) {
	m.status = text
	m.statusErr = true
}

func (m *Model) clearStatus() {
	m.status = ""
	m.statusErr = false
}
