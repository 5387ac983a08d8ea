package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/glanceworks/tododash/internal/account"
	"github.com/glanceworks/tododash/internal/agg"
	"github.com/glanceworks/tododash/internal/config"
	"github.com/glanceworks/tododash/internal/output"
)

// Per-command overrides for the stored settings.
var (
	flagGroupBy    groupByValue
	flagMaxEntries int
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Fetch and print the aggregated task view once",
	Long:  `Fetches all configured accounts, runs one aggregation pass, and prints the display sequence.`,
	RunE:  runTasks,
}

func init() {
	tasksCmd.Flags().Var(&flagGroupBy, "group-by", "grouping strategy: project, date, priority, none")
	tasksCmd.Flags().IntVar(&flagMaxEntries, "max-entries", 0, "override the global entry cap")
	rootCmd.AddCommand(tasksCmd)
}

func runTasks(cmd *cobra.Command, _ []string) error {
	dir, err := resolveDir()
	if err != nil {
		return err
	}

	accounts, err := account.NewStore(dir, flagInstance).Load()
	if err != nil {
		return err
	}
	settings, err := config.Load(dir, flagInstance)
	if err != nil {
		return err
	}
	if flagGroupBy != "" {
		settings.GroupBy = string(flagGroupBy)
	}
	if flagMaxEntries > 0 {
		settings.MaximumEntries = flagMaxEntries
	}

	now := time.Now()
	inputs := newFetcher(dir).FetchAll(cmd.Context(), accounts)
	view, err := agg.Build(inputs, settings, now)
	if err != nil {
		return err
	}

	switch outputFormat() {
	case output.FormatJSON:
		return output.JSON(os.Stdout, view)
	case output.FormatCompact:
		output.ItemsCompact(os.Stdout, view.Items)
	default:
		output.Items(os.Stdout, view.Items, settings, now)
		output.Legend(os.Stdout, view.Legend, settings)
	}
	return nil
}
