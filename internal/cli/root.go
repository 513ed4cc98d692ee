// Package cli implements the qbank command tree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/qbank/internal/version"
)

// RootCmd returns the qbank root command with every subcommand attached.
func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "qbank",
		Short:   "qbank - bilingual question bank authoring",
		Version: version.String(),
		Long: `qbank authors bilingual (pt-BR / en) multiple-choice questions.
All questions live in memory for the session; save them to a file before quitting.`,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("dir", "", "Directory holding .qbank/config.json; relative paths resolve here (default: working directory)")
	flags.String("store", "", "Session store: memory or sqlite (overrides config)")
	flags.Bool("strict", false, "Validate every imported record (overrides config)")
	flags.Bool("no-color", false, "Disable colored output (overrides config)")
	flags.BoolP("verbose", "v", false, "Log collection activity to stderr")

	// Interactive session
	rootCmd.AddCommand(TUICmd())

	// One-shot file commands
	rootCmd.AddCommand(ListCmd())
	rootCmd.AddCommand(ShowCmd())
	rootCmd.AddCommand(MergeCmd())
	rootCmd.AddCommand(ConvertCmd())
	rootCmd.AddCommand(ValidateCmd())

	// Setup
	rootCmd.AddCommand(InitCmd())

	return rootCmd
}
