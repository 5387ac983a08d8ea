package agg

import (
	"github.com/glanceworks/tododash/internal/account"
	"github.com/glanceworks/tododash/internal/date"
	"github.com/glanceworks/tododash/internal/todoist"
)

const (
	minPriority = 1
	maxPriority = 4
)

// Normalize converts one raw upstream task into a canonical record. It
// never fails: missing optional fields default rather than dropping the
// task, an unresolvable project reference resolves to the synthetic
// no-project bucket, and the priority is clamped into 1..4 (4 = none).
func Normalize(raw todoist.RawTask, projects []todoist.RawProject, acct account.Account, profile *todoist.RawProfile) *Task {
	t := &Task{
		ID:          raw.ID,
		Content:     raw.Content,
		Description: raw.Description,
		Priority:    normalizePriority(raw.Priority),
		Completed:   raw.Completed,
		Project:     resolveProject(raw.ProjectID, projects),
		Attribution: Attribution{
			Account:  acct.DisplayName(),
			Color:    acct.Color,
			Category: acct.Category,
			Symbol:   acct.Symbol,
		},
	}

	if raw.Due != nil {
		// A malformed due descriptor degrades to due-less, never to a
		// rejected record.
		due, err := date.ParseDue(raw.Due.Date, raw.Due.Datetime)
		if err == nil {
			t.Due = due
		}
	}

	if profile != nil {
		t.Responsible = profile.FullName
		t.AvatarURL = profile.AvatarURL
	}

	return t
}

func normalizePriority(p int) int {
	if p < minPriority || p > maxPriority {
		return maxPriority
	}
	return p
}

func resolveProject(id string, projects []todoist.RawProject) Project {
	if id == "" {
		return NoProject
	}
	for _, p := range projects {
		if p.ID == id {
			return Project{ID: p.ID, Name: p.Name, Color: p.Color}
		}
	}
	return NoProject
}
