package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/qbank/internal/config"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a qbank configuration file",
		Long: `Write .qbank/config.json in the working directory (or --dir).
The --store, --strict and --no-color flags are recorded in the file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			exportFile, _ := cmd.Flags().GetString("export-file")

			dir, err := workDir(cmd)
			if err != nil {
				return err
			}
			path := config.Path(dir)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config already exists at %s\nHint: use --force to overwrite", path)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("failed to check config: %w", err)
			}

			cfg, _, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if exportFile != "" {
				cfg.ExportFile = exportFile
			}
			cfg.Version = config.CurrentVersion

			if err := config.SaveConfig(dir, cfg); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s Config written to %s\n", color.New(color.FgGreen).Sprint("✓"), path)
			fmt.Fprintf(out, "  Store: %s\n", cfg.Store)
			fmt.Fprintf(out, "  Export file: %s\n", cfg.ExportFile)
			fmt.Fprintf(out, "  Strict import: %t\n", cfg.StrictImport)
			return nil
		},
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing config")
	cmd.Flags().String("export-file", "", "Default file for saving the session")
	return cmd
}
