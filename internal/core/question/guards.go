// Package question contains the pure business logic for question operations.
// Guards are pure functions that evaluate preconditions without side effects.
package question

import (
	"fmt"
	"strconv"
	"strings"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// NextID returns the identifier the next created question receives.
// It is 1 for an empty collection and 1 + max(ids) otherwise. The value is
// derived from the current ids on every call, so deleting the highest id
// frees it for reuse.
func NextID(ids []int) int {
	maxID := 0
	for _, id := range ids {
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}

// ImportIDs returns count contiguous ids starting at start, in input order.
func ImportIDs(start, count int) []int {
	if count <= 0 {
		return nil
	}
	ids := make([]int, count)
	for i := range ids {
		ids[i] = start + i
	}
	return ids
}

// SubmitContext provides context for the form submit guard.
type SubmitContext struct {
	MinAnswers int
	MaxAnswers int
}

// CanSubmit evaluates whether the question form may be submitted.
// Rules:
// - minAnswers must be at least 1
// - maxAnswers must not be below minAnswers
func CanSubmit(ctx SubmitContext) GuardResult {
	if ctx.MinAnswers < 1 {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("minimum answers must be at least 1 (got %d)", ctx.MinAnswers),
		}
	}

	if ctx.MaxAnswers < ctx.MinAnswers {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("maximum answers (%d) cannot be less than minimum answers (%d)", ctx.MaxAnswers, ctx.MinAnswers),
		}
	}

	return GuardResult{Allowed: true}
}

// ParseAnswerList parses a comma separated list of 1-based option numbers as
// typed by the author. Blank, non-numeric and out-of-range entries are dropped.
func ParseAnswerList(input string, optionCount int) []int {
	answers := []int{}
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 || n > optionCount {
			continue
		}
		answers = append(answers, n)
	}
	return answers
}

// FormatAnswerList renders 1-based option numbers the way ParseAnswerList reads them.
func FormatAnswerList(answers []int) string {
	parts := make([]string, len(answers))
	for i, n := range answers {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

// RemoveOptionAnswers adjusts 1-based answers after the option at 0-based
// index removed is deleted: that answer is dropped and later answers shift down.
func RemoveOptionAnswers(answers []int, removed int) []int {
	removedNumber := removed + 1
	adjusted := []int{}
	for _, n := range answers {
		switch {
		case n == removedNumber:
			continue
		case n > removedNumber:
			adjusted = append(adjusted, n-1)
		default:
			adjusted = append(adjusted, n)
		}
	}
	return adjusted
}

// ToZeroBased converts 1-based option numbers to 0-based indices.
func ToZeroBased(answers []int) []int {
	out := make([]int, len(answers))
	for i, n := range answers {
		out[i] = n - 1
	}
	return out
}

// ToOneBased converts 0-based indices to the 1-based numbers shown to authors.
func ToOneBased(answers []int) []int {
	out := make([]int, len(answers))
	for i, n := range answers {
		out[i] = n + 1
	}
	return out
}
