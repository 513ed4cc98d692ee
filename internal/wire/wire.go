// Package wire provides dependency injection for the qbank application.
// Each Session is built explicitly and owned by its caller; nothing is global.
package wire

import (
	"context"
	"database/sql"
	"io"

	cliadapter "github.com/example/qbank/internal/adapters/cli"
	"github.com/example/qbank/internal/adapters/filesystem"
	"github.com/example/qbank/internal/adapters/logwriter"
	"github.com/example/qbank/internal/adapters/memory"
	"github.com/example/qbank/internal/adapters/sqlite"
	"github.com/example/qbank/internal/app"
	"github.com/example/qbank/internal/config"
	"github.com/example/qbank/internal/db"
	"github.com/example/qbank/internal/ports/primary"
	"github.com/example/qbank/internal/ports/secondary"
)

// Options carries the per-process settings that are not part of Config.
type Options struct {
	// BaseDir resolves relative file paths. Empty means the working directory.
	BaseDir string
	// LogOutput receives one line per activity event. Nil discards them.
	LogOutput io.Writer
}

// Session is one authoring session: a collection plus the services over it.
type Session struct {
	Config    *config.Config
	Questions primary.QuestionService
	Imports   primary.ImportService
	Exports   primary.ExportService
	Files     secondary.QuestionFileStore

	// Activity remembers the latest event for status displays.
	Activity *logwriter.Writer
	// ActivityLog is the activity table of the sqlite store, nil otherwise.
	ActivityLog *sqlite.LogWriterAdapter

	database *sql.DB
}

// NewSession builds a session for cfg. A nil cfg uses config.DefaultConfig.
func NewSession(ctx context.Context, cfg *config.Config, opts Options) (*Session, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logOutput := opts.LogOutput
	if logOutput == nil {
		logOutput = io.Discard
	}

	session := &Session{
		Config:   cfg,
		Files:    filesystem.NewQuestionFileAdapter(opts.BaseDir),
		Activity: logwriter.New(logOutput),
	}

	// Create repository adapters (secondary ports)
	var (
		questionRepo secondary.QuestionRepository
		logWriter    secondary.LogWriter = session.Activity
	)
	switch cfg.Store {
	case config.StoreSQLite:
		database, err := db.Open(ctx)
		if err != nil {
			return nil, err
		}
		session.database = database
		session.ActivityLog = sqlite.NewLogWriterAdapter(database)
		questionRepo = sqlite.NewQuestionRepository(database)
		logWriter = logwriter.Tee{session.ActivityLog, session.Activity}
	default:
		questionRepo = memory.NewQuestionRepository()
	}

	// Create services (primary ports implementation)
	questions := app.NewQuestionService(questionRepo, logWriter)
	session.Questions = questions
	session.Imports = app.NewImportService(session.Files, questions, cfg.StrictImport)
	session.Exports = app.NewExportService(session.Files, questions, cfg.ExportFile)

	return session, nil
}

// QuestionAdapter returns a new QuestionAdapter writing to out.
// Each call creates a new adapter (adapters are stateless translators).
func (s *Session) QuestionAdapter(out io.Writer) *cliadapter.QuestionAdapter {
	return cliadapter.NewQuestionAdapter(s.Questions, s.Imports, s.Exports, out)
}

// Close releases the session database, if any. The collection is gone afterwards.
func (s *Session) Close() error {
	if s.database == nil {
		return nil
	}
	err := s.database.Close()
	s.database = nil
	return err
}
