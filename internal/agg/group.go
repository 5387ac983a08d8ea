package agg

import (
	"sort"
	"time"

	"github.com/glanceworks/tododash/internal/config"
	"github.com/glanceworks/tododash/internal/date"
)

// BuildGroups partitions a filtered, pre-sorted task collection into
// ordered groups per the configured strategy, applying the per-group
// capacity (projectLimits[key], else maximumEntries) to each group before
// the global cap is applied downstream. The two-stage limiting keeps one
// noisy group from starving groups emitted after it.
func BuildGroups(tasks []*Task, s *config.Settings, now time.Time) []Group {
	switch s.Grouping() {
	case config.GroupByProject:
		return groupByProject(tasks, s)
	case config.GroupByDate:
		return groupByDate(tasks, s, now)
	case config.GroupByPriority:
		return groupByPriority(tasks, s)
	default:
		return groupFlat(tasks, s)
	}
}

// groupByProject partitions by project id. Groups appear in the order their
// first task appears in the pre-sorted input, so the group holding the
// earliest-due task overall comes first. The selected-projects allow-list
// applies to this strategy only.
func groupByProject(tasks []*Task, s *config.Settings) []Group {
	index := make(map[string]int)
	var groups []Group

	for _, t := range tasks {
		id := t.Project.ID
		if !s.ProjectSelected(id) {
			continue
		}
		i, ok := index[id]
		if !ok {
			i = len(groups)
			index[id] = i
			groups = append(groups, Group{Header: &Header{
				Kind:  HeaderProject,
				Key:   id,
				Title: t.Project.Name,
				Color: t.Project.Color,
			}})
		}
		groups[i].Tasks = append(groups[i].Tasks, t)
	}

	return capGroups(groups, s)
}

// groupByDate partitions dated tasks by exact due day. Overdue tasks are
// pulled into a distinguished bucket emitted first; due-less tasks form a
// distinguished bucket emitted last. Date-keyed groups in between are
// ascending and capped at dayLimit.
func groupByDate(tasks []*Task, s *config.Settings, now time.Time) []Group {
	var overdue, nodate []*Task
	byDay := make(map[string][]*Task)

	for _, t := range tasks {
		switch BucketOf(t, now) {
		case BucketNone:
			nodate = append(nodate, t)
		case BucketOverdue:
			overdue = append(overdue, t)
		default:
			key := t.Due.Date.String()
			byDay[key] = append(byDay[key], t)
		}
	}

	// YYYY-MM-DD keys sort lexicographically in chronological order.
	days := make([]string, 0, len(byDay))
	for key := range byDay {
		days = append(days, key)
	}
	sort.Strings(days)
	if len(days) > s.Days() {
		days = days[:s.Days()]
	}

	groups := make([]Group, 0, len(days)+2)
	if len(overdue) > 0 {
		groups = append(groups, Group{
			Header: &Header{Kind: HeaderDate, Key: DateKeyOverdue, Title: "Overdue"},
			Tasks:  overdue,
		})
	}
	for _, key := range days {
		groups = append(groups, Group{
			Header: &Header{Kind: HeaderDate, Key: key, Title: dayTitle(key, now)},
			Tasks:  byDay[key],
		})
	}
	if len(nodate) > 0 {
		groups = append(groups, Group{
			Header: &Header{Kind: HeaderDate, Key: DateKeyNoDate, Title: "No Due Date"},
			Tasks:  nodate,
		})
	}

	return capGroups(groups, s)
}

// priorityTitles indexes display titles by priority level.
var priorityTitles = map[int]string{
	1: "Priority 1 (High)",
	2: "Priority 2 (Medium)",
	3: "Priority 3 (Low)",
	4: "Priority 4 (None)",
}

// groupByPriority partitions into the four fixed priority buckets, emitted
// in ascending numeric order (1 = highest urgency first). Empty buckets
// produce no group.
func groupByPriority(tasks []*Task, s *config.Settings) []Group {
	buckets := make(map[int][]*Task, maxPriority)
	for _, t := range tasks {
		buckets[t.Priority] = append(buckets[t.Priority], t)
	}

	var groups []Group
	for p := minPriority; p <= maxPriority; p++ {
		if len(buckets[p]) == 0 {
			continue
		}
		groups = append(groups, Group{
			Header: &Header{Kind: HeaderPriority, Key: priorityKey(p), Title: priorityTitles[p]},
			Tasks:  buckets[p],
		})
	}

	return capGroups(groups, s)
}

// groupFlat wraps all tasks in a single headerless group.
func groupFlat(tasks []*Task, s *config.Settings) []Group {
	if len(tasks) == 0 {
		return nil
	}
	return capGroups([]Group{{Tasks: tasks}}, s)
}

// capGroups trims each group to its capacity and records the emitted
// member count on the header.
func capGroups(groups []Group, s *config.Settings) []Group {
	for i := range groups {
		key := ""
		if groups[i].Header != nil {
			key = groups[i].Header.Key
		}
		limit := s.GroupLimit(key)
		if len(groups[i].Tasks) > limit {
			groups[i].Tasks = groups[i].Tasks[:limit]
		}
		if groups[i].Header != nil {
			groups[i].Header.Count = len(groups[i].Tasks)
		}
	}
	return groups
}

func priorityKey(p int) string {
	return string(rune('0' + p))
}

// dayTitle names a date group: Today, Tomorrow, or the weekday name.
func dayTitle(key string, now time.Time) string {
	d, err := date.Parse(key)
	if err != nil {
		return key
	}
	today := date.FromTime(now)
	switch {
	case d.Equal(today.Time):
		return "Today"
	case d.Equal(today.AddDays(1).Time):
		return "Tomorrow"
	default:
		return d.Format("Monday")
	}
}
