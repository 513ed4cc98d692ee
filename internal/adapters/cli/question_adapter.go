// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle argument parsing, output formatting,
// but delegate business logic to services.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	corequestion "github.com/example/qbank/internal/core/question"
	"github.com/example/qbank/internal/models"
	"github.com/example/qbank/internal/ports/primary"
)

const textWidth = 48

// QuestionAdapter is a thin adapter that translates CLI operations to the
// session services. It depends only on the primary ports, enabling easy
// testing with mocks.
type QuestionAdapter struct {
	questions primary.QuestionService
	imports   primary.ImportService
	exports   primary.ExportService
	out       io.Writer
}

// NewQuestionAdapter creates a new QuestionAdapter with the given services.
func NewQuestionAdapter(
	questions primary.QuestionService,
	imports primary.ImportService,
	exports primary.ExportService,
	out io.Writer,
) *QuestionAdapter {
	return &QuestionAdapter{
		questions: questions,
		imports:   imports,
		exports:   exports,
		out:       out,
	}
}

// Import loads a question file into the session.
func (a *QuestionAdapter) Import(ctx context.Context, path string) error {
	resp, err := a.imports.ImportFile(ctx, path)
	if err != nil {
		return err
	}

	if len(resp.Imported) == 0 {
		fmt.Fprintf(a.out, "%s No questions in %s\n", yellow("!"), path)
		return nil
	}
	first, last := resp.Imported[0].ID, resp.Imported[len(resp.Imported)-1].ID
	fmt.Fprintf(a.out, "%s Imported %d questions from %s (ids %d-%d)\n", green("✓"), len(resp.Imported), path, first, last)
	return nil
}

// Export writes the session to path.
func (a *QuestionAdapter) Export(ctx context.Context, path string) error {
	written, err := a.exports.Export(ctx, path)
	if err != nil {
		return err
	}

	questions, err := a.questions.ListQuestions(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s Exported %d questions to %s\n", green("✓"), len(questions), written)
	return nil
}

// List prints the collection as a table.
func (a *QuestionAdapter) List(ctx context.Context) error {
	questions, err := a.questions.ListQuestions(ctx)
	if err != nil {
		return fmt.Errorf("failed to list questions: %w", err)
	}

	if len(questions) == 0 {
		fmt.Fprintln(a.out, "No questions added yet")
		return nil
	}

	fmt.Fprintf(a.out, "\nTotal Questions: %d\n\n", len(questions))
	fmt.Fprintf(a.out, "%-5s %-4s %-4s %-10s %s\n", "ID", "MIN", "MAX", "CORRECT", "TEXT (pt-BR)")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────")
	for _, q := range questions {
		correct := corequestion.FormatAnswerList(corequestion.ToOneBased(q.CorrectAnswers))
		if correct == "" {
			correct = "-"
		}
		fmt.Fprintf(a.out, "%-5d %-4d %-4d %-10s %s\n", q.ID, q.MinAnswers, q.MaxAnswers, correct, truncate(q.Translations.PtBR.Text, textWidth))
	}
	fmt.Fprintln(a.out)

	return nil
}

// Show displays both translations of a single question.
func (a *QuestionAdapter) Show(ctx context.Context, id int) error {
	q, err := a.questions.GetQuestion(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get question: %w", err)
	}

	fmt.Fprintf(a.out, "\nQuestion: %d\n", q.ID)
	fmt.Fprintf(a.out, "Answers: min %d, max %d\n", q.MinAnswers, q.MaxAnswers)
	for _, lang := range []string{models.LangPtBR, models.LangEN} {
		translation := q.Translations.Translation(lang)
		fmt.Fprintf(a.out, "\n[%s] %s\n", lang, translation.Text)
		for i, option := range translation.Options {
			marker := " "
			if q.IsCorrect(i) {
				marker = green("✓")
			}
			fmt.Fprintf(a.out, "  %s %d. %s\n", marker, i+1, option)
		}
		if translation.Explanation != "" {
			fmt.Fprintf(a.out, "  Explanation: %s\n", translation.Explanation)
		}
	}
	fmt.Fprintln(a.out)

	return nil
}

// Validate imports path with strict checking and reports every issue.
// The import service must have been built in strict mode.
func (a *QuestionAdapter) Validate(ctx context.Context, path string) error {
	resp, err := a.imports.ImportFile(ctx, path)

	var validationErr *corequestion.ValidationError
	if errors.As(err, &validationErr) {
		for _, issue := range validationErr.Issues {
			fmt.Fprintf(a.out, "%s %s: %s\n", red("✗"), issue.Field, issue.Message)
		}
		return fmt.Errorf("%s: %d validation issues", path, len(validationErr.Issues))
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s %s: %d questions valid\n", green("✓"), path, len(resp.Imported))
	return nil
}

func truncate(text string, width int) string {
	text = strings.ReplaceAll(text, "\n", " ")
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	return string(runes[:width-1]) + "…"
}

func green(s string) string  { return color.New(color.FgGreen).Sprint(s) }
func yellow(s string) string { return color.New(color.FgYellow).Sprint(s) }
func red(s string) string    { return color.New(color.FgRed).Sprint(s) }
