package cmd

import (
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/glanceworks/tododash/internal/account"
	"github.com/glanceworks/tododash/internal/config"
	"github.com/glanceworks/tododash/internal/output"
)

var initCmd = &cobra.Command{
	Use:   "init [INSTANCE]",
	Short: "Create a dashboard instance",
	Long: `Creates a new dashboard instance: an empty accounts file and a settings
file with every option at its default. Without an INSTANCE argument a
random instance id is minted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, args []string) error {
	instanceID := uuid.NewString()
	if len(args) == 1 {
		instanceID = args[0]
	}

	dir, err := resolveDir()
	if err != nil {
		return err
	}

	store := account.NewStore(dir, instanceID)
	if err := store.Save([]account.Account{}); err != nil {
		return err
	}
	if err := config.Save(dir, instanceID, config.NewDefault()); err != nil {
		return err
	}

	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, map[string]string{
			"instance": instanceID,
			"dir":      dir,
		})
	}
	output.Messagef(os.Stdout, "initialized instance %s in %s", instanceID, dir)
	return nil
}
