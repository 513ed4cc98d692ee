package question

import (
	"fmt"
	"strings"

	"github.com/example/qbank/internal/models"
)

// Issue captures a validation problem in a question record.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	prefix string
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	if collector.prefix != "" {
		field = collector.prefix + "." + field
	}
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// Validate checks the answer-key invariants that the collection does not
// enforce on its own. The check is strict: records the schema-less import
// accepts may fail it.
func Validate(draft models.Draft) error {
	collector := &issueCollector{}
	validateInto(collector, draft)
	return collector.result()
}

// ValidateBatch validates every record and reports issues by index.
func ValidateBatch(drafts []models.Draft) error {
	collector := &issueCollector{}
	for i, draft := range drafts {
		collector.prefix = fmt.Sprintf("[%d]", i)
		validateInto(collector, draft)
	}
	return collector.result()
}

func validateInto(collector *issueCollector, draft models.Draft) {
	pt := draft.Translations.PtBR
	en := draft.Translations.EN

	if strings.TrimSpace(pt.Text) == "" {
		collector.add("translations.pt-BR.text", "is required")
	}
	if strings.TrimSpace(en.Text) == "" {
		collector.add("translations.en.text", "is required")
	}
	if len(pt.Options) == 0 {
		collector.add("translations.pt-BR.options", "must include at least one entry")
	}
	if len(en.Options) == 0 {
		collector.add("translations.en.options", "must include at least one entry")
	}
	if len(pt.Options) != len(en.Options) {
		collector.add("translations", fmt.Sprintf("option count mismatch (pt-BR %d, en %d)", len(pt.Options), len(en.Options)))
	}

	optionCount := min(len(pt.Options), len(en.Options))
	seen := map[int]struct{}{}
	for i, answer := range draft.CorrectAnswers {
		field := fmt.Sprintf("correctAnswers[%d]", i)
		if answer < 0 || answer >= optionCount {
			collector.add(field, fmt.Sprintf("index %d is out of range", answer))
			continue
		}
		if _, dup := seen[answer]; dup {
			collector.add(field, fmt.Sprintf("duplicate index %d", answer))
		}
		seen[answer] = struct{}{}
	}

	if guard := CanSubmit(SubmitContext{MinAnswers: draft.MinAnswers, MaxAnswers: draft.MaxAnswers}); !guard.Allowed {
		collector.add("minAnswers/maxAnswers", guard.Reason)
	}
	if optionCount > 0 && draft.MaxAnswers > optionCount {
		collector.add("maxAnswers", fmt.Sprintf("exceeds option count %d", optionCount))
	}
}
