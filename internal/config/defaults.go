// Package config handles per-instance dashboard settings.
package config

// Grouping strategy names.
const (
	GroupByProject  = "project"
	GroupByDate     = "date"
	GroupByPriority = "priority"
	GroupByNone     = "none"
)

// Task ordering names.
const (
	SortByDate     = "date"
	SortByPriority = "priority"
)

const (
	// DefaultDir is the default instance directory name under ~/.config.
	DefaultDir = "tododash"

	// DefaultGroupBy is the grouping strategy used when none is set.
	DefaultGroupBy = GroupByProject
	// DefaultSortBy is the ordering applied before grouping.
	DefaultSortBy = SortByDate
	// DefaultMaximumEntries caps the rendered display sequence.
	DefaultMaximumEntries = 10
	// DefaultDayLimit caps the number of date groups emitted.
	DefaultDayLimit = 7
	// DefaultDateFormat is the Go reference layout for due-date display.
	DefaultDateFormat = "Jan 2"
	// DefaultMaxTitleLength truncates task content in rendered output.
	DefaultMaxTitleLength = 50
	// DefaultThemeColor is the fallback accent color.
	DefaultThemeColor = "#e84c3d"
	// DefaultSymbol marks tasks from accounts without their own symbol.
	DefaultSymbol = "task"

	// DefaultUpdateInterval is the poll interval in seconds.
	DefaultUpdateInterval = 60
	// MinUpdateInterval is the lowest accepted poll interval in seconds.
	MinUpdateInterval = 30
)

// groupByValues lists the recognized grouping strategies.
var groupByValues = []string{GroupByProject, GroupByDate, GroupByPriority, GroupByNone}

// ValidGroupByValues returns the recognized --group-by strategy names.
func ValidGroupByValues() []string {
	return append([]string{}, groupByValues...)
}

// boolPtr returns a pointer to the given bool value.
func boolPtr(v bool) *bool { return &v }
