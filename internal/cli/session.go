package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/qbank/internal/config"
	"github.com/example/qbank/internal/wire"
)

// workDir returns the --dir flag or the process working directory.
func workDir(cmd *cobra.Command) (string, error) {
	dir, _ := cmd.Flags().GetString("dir")
	if dir != "" {
		return dir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return wd, nil
}

// loadConfig reads .qbank/config.json and applies the command-line overrides.
// Only flags that were set explicitly override the file.
func loadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	dir, err := workDir(cmd)
	if err != nil {
		return nil, "", err
	}

	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return nil, "", err
	}

	flags := cmd.Flags()
	if flags.Changed("store") {
		cfg.Store, _ = flags.GetString("store")
	}
	if flags.Changed("strict") {
		cfg.StrictImport, _ = flags.GetBool("strict")
	}
	if flags.Changed("no-color") {
		cfg.NoColor, _ = flags.GetBool("no-color")
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}

	if cfg.NoColor {
		color.NoColor = true
	}
	return cfg, dir, nil
}

// openSession builds a fresh session. adjust, if non-nil, may change the
// configuration first. The caller must Close the session.
func openSession(cmd *cobra.Command, adjust func(*config.Config)) (*wire.Session, error) {
	cfg, dir, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if adjust != nil {
		adjust(cfg)
	}

	opts := wire.Options{BaseDir: dir}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		opts.LogOutput = cmd.ErrOrStderr()
	}

	session, err := wire.NewSession(cmd.Context(), cfg, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}
	return session, nil
}
