package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/glanceworks/tododash/internal/filelock"
)

const fileMode = 0o600

// Sentinel errors.
var (
	// ErrInvalid marks a settings file that is not a mapping at all.
	// Field-level problems never produce it; those repair to defaults.
	ErrInvalid = errors.New("invalid settings")
)

// Settings holds every recognized view option for one dashboard instance.
// The zero value is usable: accessors repair absent or out-of-range fields
// to their documented defaults.
//
// JSON tags match the admin API payloads; YAML tags follow the on-disk
// settings file.
type Settings struct {
	GroupBy          string         `yaml:"group_by,omitempty" json:"groupBy,omitempty"`
	SortBy           string         `yaml:"sort_by,omitempty" json:"sortBy,omitempty"`
	MaximumEntries   int            `yaml:"maximum_entries,omitempty" json:"maximumEntries,omitempty"`
	ProjectLimits    map[string]int `yaml:"project_limits,omitempty" json:"projectLimits,omitempty"`
	SelectedProjects []string       `yaml:"selected_projects,omitempty" json:"selectedProjects,omitempty"`
	ShowCompleted    bool           `yaml:"show_completed,omitempty" json:"showCompleted,omitempty"`
	ShowOverdue      *bool          `yaml:"show_overdue,omitempty" json:"showOverdue,omitempty"`
	ShowDividers     *bool          `yaml:"show_dividers,omitempty" json:"showDividers,omitempty"`
	ShowLegend       *bool          `yaml:"show_legend,omitempty" json:"showLegend,omitempty"`
	DayLimit         int            `yaml:"day_limit,omitempty" json:"dayLimit,omitempty"`
	DateFormat       string         `yaml:"date_format,omitempty" json:"dateFormat,omitempty"`
	MaxTitleLength   int            `yaml:"max_title_length,omitempty" json:"maxTitleLength,omitempty"`
	ThemeColor       string         `yaml:"theme_color,omitempty" json:"themeColor,omitempty"`
	UpdateInterval   int            `yaml:"update_interval,omitempty" json:"updateInterval,omitempty"`
}

// NewDefault creates Settings with every option at its default.
func NewDefault() *Settings {
	return &Settings{
		GroupBy:        DefaultGroupBy,
		SortBy:         DefaultSortBy,
		MaximumEntries: DefaultMaximumEntries,
		ShowOverdue:    boolPtr(true),
		ShowDividers:   boolPtr(true),
		ShowLegend:     boolPtr(true),
		DayLimit:       DefaultDayLimit,
		DateFormat:     DefaultDateFormat,
		MaxTitleLength: DefaultMaxTitleLength,
		ThemeColor:     DefaultThemeColor,
		UpdateInterval: DefaultUpdateInterval,
	}
}

// Grouping returns the effective grouping strategy. An unset value falls
// back to the default; an unrecognized value falls back to "none".
func (s *Settings) Grouping() string {
	if s.GroupBy == "" {
		return DefaultGroupBy
	}
	for _, v := range groupByValues {
		if s.GroupBy == v {
			return s.GroupBy
		}
	}
	return GroupByNone
}

// Ordering returns the effective task ordering. Anything other than
// "priority" means the default due-date ordering.
func (s *Settings) Ordering() string {
	if s.SortBy == SortByPriority {
		return SortByPriority
	}
	return SortByDate
}

// Entries returns the effective global entry cap (minimum 1).
func (s *Settings) Entries() int {
	if s.MaximumEntries < 1 {
		return DefaultMaximumEntries
	}
	return s.MaximumEntries
}

// GroupLimit returns the per-group cap for the given group key: the
// configured project limit when one exists, otherwise the global cap.
func (s *Settings) GroupLimit(key string) int {
	if limit, ok := s.ProjectLimits[key]; ok && limit > 0 {
		return limit
	}
	return s.Entries()
}

// ProjectSelected reports whether the given project id passes the
// selected-projects allow-list. An empty list selects everything.
func (s *Settings) ProjectSelected(id string) bool {
	if len(s.SelectedProjects) == 0 {
		return true
	}
	for _, p := range s.SelectedProjects {
		if p == id {
			return true
		}
	}
	return false
}

// Overdue reports whether overdue tasks are shown (default true).
func (s *Settings) Overdue() bool {
	return s.ShowOverdue == nil || *s.ShowOverdue
}

// Dividers reports whether group headers are emitted (default true).
func (s *Settings) Dividers() bool {
	return s.ShowDividers == nil || *s.ShowDividers
}

// Legend reports whether the project legend is rendered (default true).
func (s *Settings) Legend() bool {
	return s.ShowLegend == nil || *s.ShowLegend
}

// Days returns the effective date-group cap (minimum 1).
func (s *Settings) Days() int {
	if s.DayLimit < 1 {
		return DefaultDayLimit
	}
	return s.DayLimit
}

// Layout returns the Go reference layout for due-date display.
func (s *Settings) Layout() string {
	if s.DateFormat == "" {
		return DefaultDateFormat
	}
	return s.DateFormat
}

// TitleLimit returns the effective content truncation length.
func (s *Settings) TitleLimit() int {
	if s.MaxTitleLength < 1 {
		return DefaultMaxTitleLength
	}
	return s.MaxTitleLength
}

// Accent returns the theme color.
func (s *Settings) Accent() string {
	if s.ThemeColor == "" {
		return DefaultThemeColor
	}
	return s.ThemeColor
}

// Interval returns the effective poll interval in seconds (minimum 30).
func (s *Settings) Interval() int {
	if s.UpdateInterval < MinUpdateInterval {
		return DefaultUpdateInterval
	}
	return s.UpdateInterval
}

// Normalize rewrites field-level problems in place so the serialized form
// matches what the accessors report. Negative or zero project limits are
// dropped rather than kept as dead keys.
func (s *Settings) Normalize() {
	s.GroupBy = s.Grouping()
	s.SortBy = s.Ordering()
	s.MaximumEntries = s.Entries()
	s.DayLimit = s.Days()
	s.DateFormat = s.Layout()
	s.MaxTitleLength = s.TitleLimit()
	s.ThemeColor = s.Accent()
	s.UpdateInterval = s.Interval()
	for id, limit := range s.ProjectLimits {
		if limit < 1 {
			delete(s.ProjectLimits, id)
		}
	}
}

// settingsFile returns the settings path for an instance within dir.
func settingsFile(dir, instanceID string) string {
	return filepath.Join(dir, instanceID+"-settings.yml")
}

// Load reads the settings for an instance. A missing file yields defaults;
// a file that does not parse as a mapping fails with ErrInvalid.
func Load(dir, instanceID string) (*Settings, error) {
	data, err := os.ReadFile(settingsFile(dir, instanceID)) //nolint:gosec // instance path from trusted dir
	if err != nil {
		if os.IsNotExist(err) {
			return NewDefault(), nil
		}
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	s.Normalize()
	return &s, nil
}

// Save writes the settings for an instance, creating dir if needed.
// Writes are serialized with an advisory lock so the admin server and a
// running dashboard do not clobber each other.
func Save(dir, instanceID string, s *Settings) error {
	const dirMode = 0o750
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return fmt.Errorf("creating instance directory: %w", err)
	}

	s.Normalize()
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}

	path := settingsFile(dir, instanceID)
	unlock, err := filelock.Lock(path + ".lock")
	if err != nil {
		return fmt.Errorf("locking settings: %w", err)
	}
	defer unlock() //nolint:errcheck // release is best-effort

	return os.WriteFile(path, data, fileMode)
}
