// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/example/qbank/internal/models"
	"github.com/example/qbank/internal/ports/secondary"
)

// QuestionRepository implements secondary.QuestionRepository with SQLite.
// Translations and answer keys are stored as JSON text columns.
type QuestionRepository struct {
	db *sql.DB
}

// NewQuestionRepository creates a new SQLite question repository.
func NewQuestionRepository(db *sql.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// GetNextID returns the next available question ID.
func (r *QuestionRepository) GetNextID(ctx context.Context) (int, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(id), 0) FROM questions",
	).Scan(&maxID)
	if err != nil {
		return 0, fmt.Errorf("failed to get next question ID: %w", err)
	}

	return maxID + 1, nil
}

// Append persists questions at the end of the sequence in one transaction.
func (r *QuestionRepository) Append(ctx context.Context, questions ...models.Question) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO questions (id, translations, correct_answers, min_answers, max_answers) VALUES (?, ?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, q := range questions {
		translations, answers, err := encodeColumns(q)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, q.ID, translations, answers, q.MinAnswers, q.MaxAnswers); err != nil {
			return fmt.Errorf("failed to create question %d: %w", q.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit questions: %w", err)
	}
	return nil
}

// Replace overwrites every field of the question with the same id.
func (r *QuestionRepository) Replace(ctx context.Context, question models.Question) (bool, error) {
	translations, answers, err := encodeColumns(question)
	if err != nil {
		return false, err
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE questions SET translations = ?, correct_answers = ?, min_answers = ?, max_answers = ? WHERE id = ?",
		translations, answers, question.MinAnswers, question.MaxAnswers, question.ID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update question: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	return rowsAffected > 0, nil
}

// Delete removes a question from the session.
func (r *QuestionRepository) Delete(ctx context.Context, id int) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM questions WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete question: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	return rowsAffected > 0, nil
}

// GetByID retrieves a question by its ID.
func (r *QuestionRepository) GetByID(ctx context.Context, id int) (*models.Question, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, translations, correct_answers, min_answers, max_answers FROM questions WHERE id = ?",
		id,
	)

	q, err := scanQuestion(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("question %d %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get question: %w", err)
	}
	return q, nil
}

// List retrieves all questions in insertion order.
func (r *QuestionRepository) List(ctx context.Context) ([]models.Question, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, translations, correct_answers, min_answers, max_answers FROM questions ORDER BY position ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, *q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	return questions, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuestion(row rowScanner) (*models.Question, error) {
	var (
		q            models.Question
		translations string
		answers      string
	)
	if err := row.Scan(&q.ID, &translations, &answers, &q.MinAnswers, &q.MaxAnswers); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(translations), &q.Translations); err != nil {
		return nil, fmt.Errorf("failed to decode translations of question %d: %w", q.ID, err)
	}
	if err := json.Unmarshal([]byte(answers), &q.CorrectAnswers); err != nil {
		return nil, fmt.Errorf("failed to decode answers of question %d: %w", q.ID, err)
	}
	return &q, nil
}

func encodeColumns(q models.Question) (string, string, error) {
	translations, err := json.Marshal(q.Translations)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode translations of question %d: %w", q.ID, err)
	}
	answers, err := json.Marshal(q.CorrectAnswers)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode answers of question %d: %w", q.ID, err)
	}
	return string(translations), string(answers), nil
}

// Ensure QuestionRepository implements the interface
var _ secondary.QuestionRepository = (*QuestionRepository)(nil)
