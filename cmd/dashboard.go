package cmd

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/glanceworks/tododash/internal/tui"
	"github.com/glanceworks/tododash/internal/watcher"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the task dashboard",
	Long:  `Opens the live terminal dashboard for the selected instance.`,
	RunE:  runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(_ *cobra.Command, _ []string) error {
	dir, err := resolveDir()
	if err != nil {
		return err
	}

	fetcher := newFetcher(dir)
	model := tui.NewDashboard(dir, flagInstance, fetcher)
	p := tea.NewProgram(model, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go startDashboardWatcher(ctx, model, p)

	_, err = p.Run()
	return err
}

func startDashboardWatcher(ctx context.Context, model *tui.Dashboard, p *tea.Program) {
	w, err := watcher.New(model.WatchPaths(), func() {
		p.Send(tui.ReloadMsg{})
	})
	if err != nil {
		return // non-fatal: dashboard works without live reload
	}
	defer w.Close()
	w.Run(ctx, nil)
}
