package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/qbank/internal/config"
)

// ListCmd returns the list command
func ListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list FILE",
		Short: "List the questions in a file",
		Long:  "Import FILE into a fresh session and print its questions. Ids are shown as assigned by the import.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := openSession(cmd, nil)
			if err != nil {
				return err
			}
			defer session.Close()

			if _, err := session.Imports.ImportFile(cmd.Context(), args[0]); err != nil {
				return err
			}
			return session.QuestionAdapter(cmd.OutOrStdout()).List(cmd.Context())
		},
	}
}

// ShowCmd returns the show command
func ShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show FILE ID",
		Short: "Show one question of a file in detail",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid question id %q", args[1])
			}

			session, err := openSession(cmd, nil)
			if err != nil {
				return err
			}
			defer session.Close()

			if _, err := session.Imports.ImportFile(cmd.Context(), args[0]); err != nil {
				return err
			}
			return session.QuestionAdapter(cmd.OutOrStdout()).Show(cmd.Context(), id)
		},
	}
}

// MergeCmd returns the merge command
func MergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "merge OUTPUT SOURCE...",
		Short: "Merge question files into one",
		Long: `Import every SOURCE in order into one session and save it to OUTPUT.
Each source is appended with contiguous ids after the questions before it.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := openSession(cmd, nil)
			if err != nil {
				return err
			}
			defer session.Close()

			adapter := session.QuestionAdapter(cmd.OutOrStdout())
			for _, source := range args[1:] {
				if err := adapter.Import(cmd.Context(), source); err != nil {
					return err
				}
			}
			return adapter.Export(cmd.Context(), args[0])
		},
	}
}

// ConvertCmd returns the convert command
func ConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert SOURCE OUTPUT",
		Short: "Re-encode a question file as JSON or YAML",
		Long: `Import SOURCE into a fresh session and save it to OUTPUT.
The formats follow the file extensions (.yaml/.yml for YAML, anything else JSON).
Ids are reassigned from 1.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := openSession(cmd, nil)
			if err != nil {
				return err
			}
			defer session.Close()

			adapter := session.QuestionAdapter(cmd.OutOrStdout())
			if err := adapter.Import(cmd.Context(), args[0]); err != nil {
				return err
			}
			return adapter.Export(cmd.Context(), args[1])
		},
	}
}

// ValidateCmd returns the validate command
func ValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check every question in a file against the answer-key rules",
		Long: `Validate FILE strictly: both translations need text and the same number of
options, correct answers must name existing options, and 1 <= min <= max <= options.
Exits non-zero when any issue is found.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := openSession(cmd, func(cfg *config.Config) {
				cfg.StrictImport = true
			})
			if err != nil {
				return err
			}
			defer session.Close()

			return session.QuestionAdapter(cmd.OutOrStdout()).Validate(cmd.Context(), args[0])
		},
	}
}
