package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/glanceworks/tododash/internal/agg"
	"github.com/glanceworks/tododash/internal/config"
	"github.com/glanceworks/tododash/internal/todoist"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	overdueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	todayStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))
	legendStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	// Priority colors matching the fixed 1..4 urgency palette.
	priorityStyles = map[int]lipgloss.Style{
		1: lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5252")).Bold(true),
		2: lipgloss.NewStyle().Foreground(lipgloss.Color("#ffc107")),
		3: lipgloss.NewStyle().Foreground(lipgloss.Color("#4caf50")),
		4: lipgloss.NewStyle().Foreground(lipgloss.Color("#9e9e9e")),
	}

	colorized = true
)

// DisableColor strips all styling from rendered output.
func DisableColor() {
	headerStyle = lipgloss.NewStyle()
	dimStyle = lipgloss.NewStyle()
	overdueStyle = lipgloss.NewStyle()
	todayStyle = lipgloss.NewStyle()
	legendStyle = lipgloss.NewStyle()
	priorityStyles = map[int]lipgloss.Style{
		1: lipgloss.NewStyle(),
		2: lipgloss.NewStyle(),
		3: lipgloss.NewStyle(),
		4: lipgloss.NewStyle(),
	}
	colorized = false
}

// Items renders the display sequence as an indented task listing with
// group headers.
func Items(w io.Writer, items []agg.Item, s *config.Settings, now time.Time) {
	if len(items) == 0 {
		fmt.Fprintln(w, dimStyle.Render("No tasks."))
		return
	}

	for _, item := range items {
		if item.Kind == agg.ItemHeader {
			fmt.Fprintln(w, renderHeader(item.Header, s))
			continue
		}
		fmt.Fprintln(w, "  "+renderTask(item.Task, s, now))
	}
}

// Legend renders the project legend below the task listing.
func Legend(w io.Writer, legend []agg.LegendEntry, s *config.Settings) {
	if len(legend) == 0 || !s.Legend() {
		return
	}

	names := make([]string, len(legend))
	for i, entry := range legend {
		names[i] = projectStyle(entry.Color, s).Render(entry.Name)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, legendStyle.Render("Projects: ")+strings.Join(names, dimStyle.Render(" · ")))
}

func renderHeader(h *agg.Header, s *config.Settings) string {
	title := fmt.Sprintf("%s (%d)", h.Title, h.Count)
	switch {
	case h.Kind == agg.HeaderDate && h.Key == agg.DateKeyOverdue:
		return overdueStyle.Render(title)
	case h.Kind == agg.HeaderProject:
		return headerStyle.Inherit(projectStyle(h.Color, s)).Render(title)
	default:
		return headerStyle.Render(title)
	}
}

func renderTask(t *agg.Task, s *config.Settings, now time.Time) string {
	var b strings.Builder

	if style, ok := priorityStyles[t.Priority]; ok && t.Priority < 4 {
		b.WriteString(style.Render(fmt.Sprintf("P%d", t.Priority)))
		b.WriteString(" ")
	}

	content := t.Content
	if limit := s.TitleLimit(); len(content) > limit {
		if limit > 3 {
			content = content[:limit-3] + "..."
		} else {
			content = content[:limit]
		}
	}
	if t.Completed {
		content = dimStyle.Render(content)
	}
	b.WriteString(content)

	if due := dueLabel(t, s, now); due != "" {
		b.WriteString("  ")
		b.WriteString(due)
	}

	if t.Project.ID != agg.NoProjectID {
		b.WriteString("  ")
		b.WriteString(projectStyle(t.Project.Color, s).Render(t.Project.Name))
	}

	if t.Attribution.Account != "" && t.Attribution.Account != "Todoist" {
		b.WriteString(dimStyle.Render(" [" + t.Attribution.Account + "]"))
	}

	return b.String()
}

// dueLabel formats a task's due descriptor: Today, Tomorrow, or the
// configured date layout, with the time appended when one is set.
func dueLabel(t *agg.Task, s *config.Settings, now time.Time) string {
	if t.Due == nil {
		return ""
	}

	var label string
	switch agg.BucketOf(t, now) {
	case agg.BucketToday:
		label = "Today"
	case agg.BucketTomorrow:
		label = "Tomorrow"
	default:
		label = t.Due.Date.Format(s.Layout())
	}
	if t.Due.HasTime {
		label += " " + t.Due.At.Format("15:04")
	}

	switch agg.BucketOf(t, now) {
	case agg.BucketOverdue:
		return overdueStyle.Render(label)
	case agg.BucketToday:
		return todayStyle.Render(label)
	default:
		return dimStyle.Render(label)
	}
}

// projectStyle resolves a palette color name into a foreground style.
func projectStyle(color string, s *config.Settings) lipgloss.Style {
	if !colorized {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(todoist.ColorHex(color, s.Accent())))
}
