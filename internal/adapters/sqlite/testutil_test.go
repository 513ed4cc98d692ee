// Package sqlite_test contains integration tests for SQLite repositories.
//
// Every test database comes from db.Open, so tests run against the
// authoritative session schema.
package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/example/qbank/internal/db"
	"github.com/example/qbank/internal/models"
)

// setupTestDB creates an in-memory session database with the schema applied.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := db.Open(context.Background())
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// newTestQuestion builds a question whose pt-BR text is the given label.
func newTestQuestion(id int, label string) models.Question {
	return models.Question{
		ID: id,
		Translations: models.Translations{
			PtBR: models.Translation{Text: label, Options: []string{"sim", "não"}, Explanation: "pt"},
			EN:   models.Translation{Text: label + " (en)", Options: []string{"yes", "no"}, Explanation: "en"},
		},
		CorrectAnswers: []int{0},
		MinAnswers:     1,
		MaxAnswers:     1,
	}
}

func listIDs(t *testing.T, questions []models.Question) []int {
	t.Helper()
	ids := make([]int, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}
	return ids
}
