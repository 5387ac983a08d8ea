package agg

import (
	"sort"
	"time"

	"github.com/glanceworks/tododash/internal/config"
	"github.com/glanceworks/tododash/internal/date"
)

// Bucket is a task's temporal classification relative to a reference instant.
type Bucket string

// Temporal buckets.
const (
	BucketNone     Bucket = "none"
	BucketOverdue  Bucket = "overdue"
	BucketToday    Bucket = "today"
	BucketTomorrow Bucket = "tomorrow"
	BucketFuture   Bucket = "future"
)

// BucketOf classifies a task by calendar day. Due-less tasks are always
// BucketNone; a completed task is never overdue.
func BucketOf(t *Task, now time.Time) Bucket {
	if t.Due == nil {
		return BucketNone
	}

	today := date.FromTime(now)
	due := t.Due.Date
	switch {
	case due.Before(today.Time) && !t.Completed:
		return BucketOverdue
	case due.Equal(today.Time):
		return BucketToday
	case due.Equal(today.AddDays(1).Time):
		return BucketTomorrow
	default:
		return BucketFuture
	}
}

// Visible reports whether a task passes the completed-task and overdue
// visibility filters. Due-less tasks are never treated as overdue, so
// overdue filtering cannot hide them.
func Visible(t *Task, s *config.Settings, now time.Time) bool {
	if t.Completed && !s.ShowCompleted {
		return false
	}
	if !s.Overdue() && t.Due != nil && t.Due.Date.Before(date.FromTime(now).Time) {
		return false
	}
	return true
}

// Filter returns the tasks visible under the given settings, preserving
// input order.
func Filter(tasks []*Task, s *config.Settings, now time.Time) []*Task {
	result := make([]*Task, 0, len(tasks))
	for _, t := range tasks {
		if Visible(t, s, now) {
			result = append(result, t)
		}
	}
	return result
}

// SortTasks orders tasks ascending by due date, comparing full timestamps
// only when a time-of-day is present. Due-less tasks sort after all dated
// tasks. With the "priority" ordering, urgency comes first and the due
// date breaks ties. Remaining ties keep stable input order, never id or
// content.
func SortTasks(tasks []*Task, sortBy string) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if sortBy == config.SortByPriority && a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		return dueLess(a, b)
	})
}

func dueLess(a, b *Task) bool {
	if a.Due == nil || b.Due == nil {
		return a.Due != nil && b.Due == nil
	}
	return a.Due.Before(b.Due)
}
