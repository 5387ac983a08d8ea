package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/glanceworks/tododash/internal/config"
	"github.com/glanceworks/tododash/internal/output"
)

var (
	flagSetGroupBy       groupByValue
	flagSetMaxEntries    int
	flagSetDayLimit      int
	flagSetDateFormat    string
	flagSetShowCompleted bool
	flagSetHideOverdue   bool
	flagSetHideDividers  bool
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change instance settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change settings",
	Long: `Changes settings for the selected instance. Only flags that are
given are changed; field-level invalid values fall back to defaults.`,
	RunE: runSettingsSet,
}

func init() {
	settingsSetCmd.Flags().Var(&flagSetGroupBy, "group-by", "grouping strategy: project, date, priority, none")
	settingsSetCmd.Flags().IntVar(&flagSetMaxEntries, "max-entries", 0, "global entry cap")
	settingsSetCmd.Flags().IntVar(&flagSetDayLimit, "day-limit", 0, "maximum number of date groups")
	settingsSetCmd.Flags().StringVar(&flagSetDateFormat, "date-format", "", "Go reference layout for due dates")
	settingsSetCmd.Flags().BoolVar(&flagSetShowCompleted, "show-completed", false, "include completed tasks")
	settingsSetCmd.Flags().BoolVar(&flagSetHideOverdue, "hide-overdue", false, "exclude overdue tasks")
	settingsSetCmd.Flags().BoolVar(&flagSetHideDividers, "hide-dividers", false, "omit group headers")

	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(_ *cobra.Command, _ []string) error {
	dir, err := resolveDir()
	if err != nil {
		return err
	}
	settings, err := config.Load(dir, flagInstance)
	if err != nil {
		return err
	}
	return output.JSON(os.Stdout, settings)
}

func runSettingsSet(cmd *cobra.Command, _ []string) error {
	dir, err := resolveDir()
	if err != nil {
		return err
	}
	settings, err := config.Load(dir, flagInstance)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("group-by") {
		settings.GroupBy = string(flagSetGroupBy)
	}
	if cmd.Flags().Changed("max-entries") {
		settings.MaximumEntries = flagSetMaxEntries
	}
	if cmd.Flags().Changed("day-limit") {
		settings.DayLimit = flagSetDayLimit
	}
	if cmd.Flags().Changed("date-format") {
		settings.DateFormat = flagSetDateFormat
	}
	if cmd.Flags().Changed("show-completed") {
		settings.ShowCompleted = flagSetShowCompleted
	}
	if cmd.Flags().Changed("hide-overdue") {
		v := !flagSetHideOverdue
		settings.ShowOverdue = &v
	}
	if cmd.Flags().Changed("hide-dividers") {
		v := !flagSetHideDividers
		settings.ShowDividers = &v
	}

	if err := config.Save(dir, flagInstance, settings); err != nil {
		return err
	}
	return output.JSON(os.Stdout, settings)
}
