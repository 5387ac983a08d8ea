package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glanceworks/tododash/internal/agg"
	"github.com/glanceworks/tododash/internal/config"
	"github.com/glanceworks/tododash/internal/fetch"
)

func newTestDashboard(t *testing.T) *Dashboard {
	t.Helper()
	d := NewDashboard(t.TempDir(), "default", fetch.New(fetch.NewCache()))
	d.SetNow(func() time.Time {
		return time.Date(2026, 3, 4, 15, 0, 0, 0, time.UTC)
	})
	return d
}

func TestDashboardQuitKeys(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		d := newTestDashboard(t)
		var msg tea.KeyMsg
		if k == "ctrl+c" {
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		} else {
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		_, cmd := d.Update(msg)
		if cmd == nil {
			t.Fatalf("%s should produce a quit command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s produced %T, want tea.QuitMsg", k, cmd())
		}
	}
}

func TestDashboardViewMsg(t *testing.T) {
	d := newTestDashboard(t)
	d.fetching = true

	s := config.NewDefault()
	when := time.Date(2026, 3, 4, 15, 0, 0, 0, time.UTC)
	view := agg.View{Items: []agg.Item{
		{Kind: agg.ItemTask, Task: &agg.Task{ID: "1", Content: "water plants", Priority: 4, Project: agg.NoProject}},
	}}

	model, _ := d.Update(viewMsg{view: view, settings: s, when: when})
	got := model.(*Dashboard)

	if got.fetching {
		t.Error("fetching flag should clear")
	}
	if len(got.view.Items) != 1 {
		t.Errorf("view not applied: %+v", got.view)
	}
	if got.updated != when {
		t.Errorf("updated = %s, want %s", got.updated, when)
	}
}

func TestDashboardErrMsg(t *testing.T) {
	d := newTestDashboard(t)
	d.fetching = true

	model, _ := d.Update(errMsg{errors.New("upstream down")})
	got := model.(*Dashboard)

	if got.fetching {
		t.Error("fetching flag should clear")
	}
	if got.err == nil {
		t.Fatal("error not recorded")
	}
	got.width, got.height = 80, 24
	if !strings.Contains(got.View(), "upstream down") {
		t.Error("error missing from rendered view")
	}
}

func TestDashboardScroll(t *testing.T) {
	d := newTestDashboard(t)

	d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	if d.scroll != 2 {
		t.Errorf("scroll = %d, want 2", d.scroll)
	}

	d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	if d.scroll != 1 {
		t.Errorf("scroll = %d, want 1", d.scroll)
	}

	d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	if d.scroll != 0 {
		t.Errorf("scroll = %d, want 0", d.scroll)
	}

	// Never above the top.
	d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	if d.scroll != 0 {
		t.Errorf("scroll = %d, want 0", d.scroll)
	}
}

func TestDashboardRefreshSingleFlight(t *testing.T) {
	d := newTestDashboard(t)
	d.fetching = true

	_, cmd := d.Update(ReloadMsg{})
	if cmd != nil {
		t.Error("refresh while fetching should be a no-op")
	}
}

func TestDashboardViewBeforeSize(t *testing.T) {
	d := newTestDashboard(t)
	if got := d.View(); got != "Loading..." {
		t.Errorf("got %q", got)
	}
}
