// Package tui implements the terminal dashboard for tododash instances.
package tui

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/glanceworks/tododash/internal/account"
	"github.com/glanceworks/tododash/internal/agg"
	"github.com/glanceworks/tododash/internal/config"
	"github.com/glanceworks/tododash/internal/fetch"
	"github.com/glanceworks/tododash/internal/output"
)

// Layout constants.
const (
	chromeLines = 3 // title bar, blank line, status bar
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// ReloadMsg asks the dashboard to refetch, e.g. after the watcher sees an
// account or settings change.
type ReloadMsg struct{}

// tickMsg fires on the poll interval.
type tickMsg time.Time

// viewMsg delivers a completed aggregation pass along with the settings
// it was built under. Settings travel in the message because commands run
// off the update loop and must not mutate the model directly.
type viewMsg struct {
	view     agg.View
	settings *config.Settings
	when     time.Time
}

// errMsg delivers a failed refresh.
type errMsg struct{ err error }

// Dashboard is the top-level bubbletea model.
type Dashboard struct {
	dir        string
	instanceID string
	fetcher    *fetch.Fetcher

	spin     spinner.Model
	view     agg.View
	settings *config.Settings
	fetching bool
	updated  time.Time
	err      error

	width  int
	height int
	scroll int

	now func() time.Time // clock; defaults to time.Now
}

// NewDashboard creates a dashboard for the given instance directory and id.
func NewDashboard(dir, instanceID string, fetcher *fetch.Fetcher) *Dashboard {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return &Dashboard{
		dir:        dir,
		instanceID: instanceID,
		fetcher:    fetcher,
		spin:       sp,
		settings:   config.NewDefault(),
		now:        time.Now,
	}
}

// SetNow overrides the clock (for testing).
func (d *Dashboard) SetNow(fn func() time.Time) { d.now = fn }

// WatchPaths returns the paths the file watcher should monitor.
func (d *Dashboard) WatchPaths() []string {
	return []string{d.dir}
}

// Init implements tea.Model.
func (d *Dashboard) Init() tea.Cmd {
	d.fetching = true
	return tea.Batch(d.spin.Tick, d.refreshCmd())
}

// Update implements tea.Model.
func (d *Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return d.handleKey(msg)
	case tea.WindowSizeMsg:
		d.width = msg.Width
		d.height = msg.Height
		return d, nil
	case ReloadMsg:
		return d.startRefresh()
	case tickMsg:
		model, cmd := d.startRefresh()
		return model, tea.Batch(cmd, d.tickCmd())
	case viewMsg:
		d.fetching = false
		d.err = nil
		d.view = msg.view
		d.settings = msg.settings
		d.updated = msg.when
		return d, nil
	case errMsg:
		d.fetching = false
		d.err = msg.err
		return d, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		d.spin, cmd = d.spin.Update(msg)
		return d, cmd
	}
	return d, nil
}

func (d *Dashboard) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, key.NewBinding(key.WithKeys("q", "ctrl+c"))):
		return d, tea.Quit
	case key.Matches(msg, key.NewBinding(key.WithKeys("r"))):
		return d.startRefresh()
	case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
		if d.scroll > 0 {
			d.scroll--
		}
	case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
		d.scroll++
	case key.Matches(msg, key.NewBinding(key.WithKeys("g"))):
		d.scroll = 0
	}
	return d, nil
}

func (d *Dashboard) startRefresh() (tea.Model, tea.Cmd) {
	if d.fetching {
		return d, nil
	}
	d.fetching = true
	return d, tea.Batch(d.spin.Tick, d.refreshCmd())
}

// refreshCmd loads accounts and settings from disk, fetches every account,
// and runs an aggregation pass.
func (d *Dashboard) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		accounts, err := account.NewStore(d.dir, d.instanceID).Load()
		if err != nil {
			return errMsg{err}
		}
		settings, err := config.Load(d.dir, d.instanceID)
		if err != nil {
			return errMsg{err}
		}

		now := d.now()
		inputs := d.fetcher.FetchAll(context.Background(), accounts)
		view, err := agg.Build(inputs, settings, now)
		if err != nil {
			return errMsg{err}
		}
		return viewMsg{view: view, settings: settings, when: now}
	}
}

func (d *Dashboard) tickCmd() tea.Cmd {
	return tea.Tick(time.Duration(d.settings.Interval())*time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// View implements tea.Model.
func (d *Dashboard) View() string {
	if d.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(d.titleBar())
	b.WriteString("\n\n")
	b.WriteString(d.body())
	b.WriteString("\n")
	b.WriteString(d.statusBar())
	return b.String()
}

func (d *Dashboard) titleBar() string {
	title := "tododash"
	if d.fetching {
		title += " " + d.spin.View()
	}
	return titleStyle.Render(title)
}

// body renders the current display sequence and legend through the shared
// output renderer, then windows the lines to the scroll offset.
func (d *Dashboard) body() string {
	var buf bytes.Buffer
	output.Items(&buf, d.view.Items, d.settings, d.now())
	output.Legend(&buf, d.view.Legend, d.settings)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	visible := d.height - chromeLines
	if visible < 1 {
		visible = 1
	}

	maxScroll := len(lines) - visible
	if maxScroll < 0 {
		maxScroll = 0
	}
	if d.scroll > maxScroll {
		d.scroll = maxScroll
	}

	end := d.scroll + visible
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[d.scroll:end], "\n")
}

func (d *Dashboard) statusBar() string {
	if d.err != nil {
		return errStyle.Render("error: " + d.err.Error())
	}

	status := "r refresh · j/k scroll · q quit"
	if !d.updated.IsZero() {
		status = fmt.Sprintf("updated %s · %s", d.updated.Format("15:04:05"), status)
	}
	return statusStyle.Render(status)
}
