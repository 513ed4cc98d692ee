package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/example/qbank/internal/models"
)

var (
	colorTitle   = lipgloss.Color("33")
	colorMuted   = lipgloss.Color("242")
	colorCorrect = lipgloss.Color("34")
	colorError   = lipgloss.Color("196")
	colorCursor  = lipgloss.Color("212")
)

var languageTitles = map[string]string{
	models.LangPtBR: "Portuguese (BR)",
	models.LangEN:   "English",
}

// renderList renders the question list with its header and footer.
func renderList(m Model) string {
	sections := []string{
		stylize("Question Manager", m.noColor, colorTitle, true),
		stylize(fmt.Sprintf("Total Questions: %d", len(m.questions)), m.noColor, colorMuted, false),
		"",
	}

	if len(m.questions) == 0 {
		sections = append(sections, stylize(
			"No questions added yet. Press a to add a question, or i to import existing questions.",
			m.noColor, colorMuted, false,
		))
	}
	for i, q := range m.questions {
		sections = append(sections, renderRow(q, i == m.cursor, m.noColor))
		if m.expanded[q.ID] {
			sections = append(sections, renderDetail(q, m.noColor))
		}
	}

	sections = append(sections, "")
	if m.mode == modeConfirmDelete {
		if selected, ok := m.selected(); ok {
			sections = append(sections, stylize(fmt.Sprintf("Delete question %d? (y/n)", selected.ID), m.noColor, colorError, true))
		}
	}
	sections = append(sections, renderStatus(m), renderFooter(m))

	keys := m.listKeys()
	sections = append(sections, stylize(
		helpLine(keys.Up, keys.Down, keys.Add, keys.Edit, keys.Delete, keys.Expand, keys.Save, keys.Import, keys.Quit),
		m.noColor, colorMuted, false,
	))
	return lipgloss.JoinVertical(lipgloss.Left, compact(sections)...)
}

// renderRow renders the one-line summary of a question.
func renderRow(q models.Question, selected bool, noColor bool) string {
	marker := "  "
	if selected {
		marker = stylize("› ", noColor, colorCursor, true)
	}
	badges := fmt.Sprintf("Min: %d  Max: %d  Correct: %s", q.MinAnswers, q.MaxAnswers, correctList(q))
	return marker + fmt.Sprintf("ID: %d  ", q.ID) + q.Translations.PtBR.Text + "  " + stylize(badges, noColor, colorMuted, false)
}

// renderDetail renders both translations with correct options highlighted.
func renderDetail(q models.Question, noColor bool) string {
	var b strings.Builder
	for _, lang := range formLanguages {
		translation := q.Translations.Translation(lang)
		b.WriteString("    " + stylize(languageTitles[lang], noColor, colorTitle, true) + "\n")
		b.WriteString("    " + translation.Text + "\n")
		for i, option := range translation.Options {
			line := fmt.Sprintf("      %d. %s", i+1, option)
			if q.IsCorrect(i) {
				line = stylize(line+" ✓", noColor, colorCorrect, false)
			}
			b.WriteString(line + "\n")
		}
		if translation.Explanation != "" {
			b.WriteString("    " + stylize(translation.Explanation, noColor, colorMuted, false) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderForm renders the question form.
func renderForm(m Model) string {
	f := m.form
	title := "New question"
	if f.editing {
		title = fmt.Sprintf("Edit question %d", f.id)
	}
	sections := []string{stylize(title, m.noColor, colorTitle, true), ""}

	for i, lang := range formLanguages {
		inputs := f.langs[i]
		sections = append(sections,
			stylize(languageTitles[lang]+" Translation", m.noColor, colorTitle, true),
			"  Question Text",
			"    "+inputs.text.View(),
			"  Options",
		)
		for j, option := range inputs.options {
			sections = append(sections, fmt.Sprintf("    %d. %s", j+1, option.View()))
		}
		sections = append(sections,
			"  Explanation",
			"    "+inputs.explanation.View(),
			"",
		)
	}

	sections = append(sections,
		stylize("Answer Settings", m.noColor, colorTitle, true),
		"  Minimum Answers  "+f.min.View(),
		"  Maximum Answers  "+f.max.View(),
		"  Correct Answers (Option Numbers)",
		"    "+f.correct.View(),
		stylize("    Enter the option numbers (1-based) separated by commas", m.noColor, colorMuted, false),
		"",
	)
	if f.err != "" {
		sections = append(sections, stylize(f.err, m.noColor, colorError, false))
	}

	keys := defaultFormKeys
	sections = append(sections, stylize(
		helpLine(keys.Next, keys.Prev, keys.AddOption, keys.RemoveOption, keys.Submit, keys.Cancel),
		m.noColor, colorMuted, false,
	))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderPrompt renders the file path prompt.
func renderPrompt(m Model) string {
	title := "Import questions from:"
	if m.mode == modeExportPrompt {
		title = "Save questions to:"
	}
	keys := defaultPromptKeys
	return lipgloss.JoinVertical(lipgloss.Left,
		stylize(title, m.noColor, colorTitle, true),
		m.prompt.View(),
		"",
		stylize(helpLine(keys.Confirm, keys.Cancel), m.noColor, colorMuted, false),
	)
}

func renderStatus(m Model) string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return stylize(m.status, m.noColor, colorError, false)
	}
	return stylize(m.status, m.noColor, colorCorrect, false)
}

// renderFooter renders the last activity line.
func renderFooter(m Model) string {
	if m.services.Activity == nil {
		return ""
	}
	last := m.services.Activity.Last()
	if last == "" {
		return ""
	}
	return stylize("Last activity: "+last, m.noColor, colorMuted, false)
}

func correctList(q models.Question) string {
	parts := make([]string, len(q.CorrectAnswers))
	for i, answer := range q.CorrectAnswers {
		parts[i] = fmt.Sprint(answer + 1)
	}
	return strings.Join(parts, ", ")
}

// compact drops empty lines produced by optional sections, keeping spacers
// that sit between non-empty ones.
func compact(lines []string) []string {
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		if line == "" && (i == len(lines)-1 || lines[i+1] == "") {
			continue
		}
		out = append(out, line)
	}
	return out
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color, bold bool) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Bold(bold).Render(text)
}
