package agg

import (
	"errors"
	"time"

	"github.com/glanceworks/tododash/internal/account"
	"github.com/glanceworks/tododash/internal/config"
	"github.com/glanceworks/tododash/internal/todoist"
)

// ErrNoSettings marks a pass invoked without a settings object. Field-level
// settings problems repair to defaults; a missing object is the one
// configuration failure that must not silently produce output.
var ErrNoSettings = errors.New("aggregation requires settings")

// Input is the fully materialized fetch result for one account. The fetch
// collaborator resolves all accounts before the core runs; the core never
// observes partial results.
type Input struct {
	Account  account.Account
	Tasks    []todoist.RawTask
	Projects []todoist.RawProject
	Profile  *todoist.RawProfile
}

// View is the output of one aggregation pass.
type View struct {
	Items  []Item        `json:"items"`
	Legend []LegendEntry `json:"legend"`
}

// Build runs the full pipeline over the merged accounts: normalize,
// filter, sort, group, sequence, legend. Pure: same inputs, settings, and
// reference instant always yield a byte-identical View.
func Build(inputs []Input, s *config.Settings, now time.Time) (View, error) {
	if s == nil {
		return View{}, ErrNoSettings
	}

	var tasks []*Task
	for _, in := range inputs {
		for _, raw := range in.Tasks {
			tasks = append(tasks, Normalize(raw, in.Projects, in.Account, in.Profile))
		}
	}

	return BuildFromTasks(tasks, s, now)
}

// BuildFromTasks runs the pipeline over already-normalized records, in
// input order.
func BuildFromTasks(tasks []*Task, s *config.Settings, now time.Time) (View, error) {
	if s == nil {
		return View{}, ErrNoSettings
	}

	visible := Filter(tasks, s, now)
	SortTasks(visible, s.Ordering())
	groups := BuildGroups(visible, s, now)
	items := Sequence(groups, s)

	return View{Items: items, Legend: BuildLegend(items)}, nil
}
