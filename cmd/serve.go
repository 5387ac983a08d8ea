package cmd

import (
	"github.com/spf13/cobra"

	"github.com/glanceworks/tododash/internal/server"
)

var flagServeAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the admin API server",
	Long: `Runs the HTTP admin API for managing accounts, settings, and project
selection. The server operates on the same instance directory as the
dashboard, so changes take effect on the next refresh.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServeAddr, "addr", ":8200", "listen address")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	dir, err := resolveDir()
	if err != nil {
		return err
	}
	return server.New(dir, newFetcher(dir)).Run(flagServeAddr)
}
