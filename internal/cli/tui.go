package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/example/qbank/internal/tui"
)

// isTerminal reports whether a stream is a TTY.
var isTerminal = defaultIsTerminal

// TUICmd returns the interactive session command
func TUICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Start an interactive authoring session",
		Long: `Start an interactive session to add, edit, delete and review questions.
The session is held in memory only: press s to save before quitting.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(cmd.InOrStdin()) || !isTerminal(cmd.OutOrStdout()) {
				return fmt.Errorf("qbank tui requires an interactive terminal\nHint: use qbank list, merge or convert for scripted use")
			}

			importPath, _ := cmd.Flags().GetString("import")

			session, err := openSession(cmd, nil)
			if err != nil {
				return err
			}
			defer session.Close()

			return tui.Run(cmd.Context(), tui.Services{
				Questions: session.Questions,
				Imports:   session.Imports,
				Exports:   session.Exports,
				Activity:  session.Activity,
			}, tui.Options{
				NoColor:    session.Config.NoColor,
				ImportPath: importPath,
				ExportPath: session.Config.ExportFile,
			}, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().String("import", "", "Question file to import when the session starts")
	return cmd
}

// defaultIsTerminal inspects a stream for TTY support.
func defaultIsTerminal(stream any) bool {
	if file, ok := stream.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := stream.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}
