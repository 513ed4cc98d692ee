// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/qbank/internal/codec"
	"github.com/example/qbank/internal/ports/secondary"
)

// QuestionFileAdapter implements secondary.QuestionFileStore on the local filesystem.
// The encoding is chosen from each path's extension.
type QuestionFileAdapter struct {
	baseDir string
}

// NewQuestionFileAdapter creates a file adapter. Relative paths resolve
// against baseDir; an empty baseDir means the process working directory.
func NewQuestionFileAdapter(baseDir string) *QuestionFileAdapter {
	return &QuestionFileAdapter{baseDir: baseDir}
}

// Load reads path and decodes its contents. Read failures are reported as
// *codec.ReadError and malformed contents as *codec.ParseError.
func (a *QuestionFileAdapter) Load(ctx context.Context, path string) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, &codec.ReadError{Path: path, Err: err}
	}

	data, err := os.ReadFile(a.resolve(path))
	if err != nil {
		return nil, &codec.ReadError{Path: path, Err: err}
	}

	return codec.Parse(data, codec.FormatForPath(path))
}

// Save writes the encoding of value to path. The data is written to a
// temporary sibling first and renamed into place.
func (a *QuestionFileAdapter) Save(ctx context.Context, path string, value any) error {
	if path == "" {
		path = codec.DefaultFilename
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := codec.Marshal(value, codec.FormatForPath(path))
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	target := a.resolve(path)
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(target)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", path, err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}

	return nil
}

func (a *QuestionFileAdapter) resolve(path string) string {
	if a.baseDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(a.baseDir, path)
}

// Ensure QuestionFileAdapter implements the interface
var _ secondary.QuestionFileStore = (*QuestionFileAdapter)(nil)
