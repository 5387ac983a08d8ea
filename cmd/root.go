// Package cmd implements the tododash CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/glanceworks/tododash/internal/avatar"
	"github.com/glanceworks/tododash/internal/clierr"
	"github.com/glanceworks/tododash/internal/config"
	"github.com/glanceworks/tododash/internal/fetch"
	"github.com/glanceworks/tododash/internal/output"
)

// version is set at build time via ldflags.
var version = "dev"

// Global flags.
var (
	flagJSON     bool
	flagTable    bool
	flagCompact  bool
	flagDir      string
	flagInstance string
	flagNoColor  bool
)

var rootCmd = &cobra.Command{
	Use:   "tododash",
	Short: "Terminal dashboard for Todoist tasks",
	Long: `tododash shows your Todoist tasks grouped for at-a-glance viewing.
Run tododash to open the dashboard; use 'tododash serve' to run the
admin API that the setup UI talks to.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runDashboard,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		// .env is optional; used to seed TODOIST_TOKEN for account add.
		_ = godotenv.Load()
		if flagNoColor || os.Getenv("NO_COLOR") != "" {
			output.DisableColor()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagTable, "table", false, "output as table")
	rootCmd.PersistentFlags().BoolVar(&flagCompact, "compact", false, "compact one-line-per-record output")
	rootCmd.PersistentFlags().BoolVar(&flagCompact, "oneline", false, "alias for --compact")
	rootCmd.PersistentFlags().StringVar(&flagDir, "dir", "", "path to instance storage directory")
	rootCmd.PersistentFlags().StringVar(&flagInstance, "instance", "default", "dashboard instance id")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable color output")
}

// Execute runs the root command.
func Execute() {
	_, err := rootCmd.ExecuteC()
	if err == nil {
		return
	}

	// SilentError exits with its code and no output.
	var silent *clierr.SilentError
	if errors.As(err, &silent) {
		os.Exit(silent.Code)
	}

	// Determine if JSON mode is active.
	jsonMode := flagJSON
	if !jsonMode {
		jsonMode = os.Getenv("TODODASH_OUTPUT") == "json"
	}

	if jsonMode {
		var cliErr *clierr.Error
		if errors.As(err, &cliErr) {
			output.JSONError(os.Stdout, cliErr.Code, cliErr.Message, cliErr.Details)
			os.Exit(cliErr.ExitCode())
		}
		// Unknown errors are reported as INTERNAL_ERROR.
		output.JSONError(os.Stdout, clierr.InternalError, err.Error(), nil)
		os.Exit(2) //nolint:mnd // exit code 2 for internal errors
	}

	// Non-JSON mode: print to stderr.
	fmt.Fprintln(os.Stderr, err)
	var cliErr *clierr.Error
	if errors.As(err, &cliErr) {
		os.Exit(cliErr.ExitCode())
	}
	os.Exit(1)
}

// resolveDir returns the instance storage directory: the --dir flag when
// set, otherwise ~/.config/tododash.
func resolveDir() (string, error) {
	if flagDir != "" {
		return flagDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", config.DefaultDir), nil
}

// outputFormat returns the detected output format from flags/env.
func outputFormat() output.Format {
	return output.Detect(flagJSON, flagTable, flagCompact)
}

// newFetcher builds a fetcher whose avatar cache lives inside the
// instance storage directory.
func newFetcher(dir string) *fetch.Fetcher {
	avatars := avatar.NewCache(filepath.Join(dir, "avatars"))
	return fetch.New(fetch.NewCache(), fetch.WithAvatars(avatars))
}
