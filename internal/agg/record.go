// Package agg builds the render-ready display sequence from raw upstream
// task data: normalization, temporal classification, grouping, limiting,
// and legend construction. Every transform is pure; a pass never mutates
// its inputs and two passes over the same data produce identical output.
package agg

import "github.com/glanceworks/tododash/internal/date"

// NoProjectID is the synthetic project id for tasks without one.
const NoProjectID = "no_project"

// NoProject is the synthetic project bucket for unresolvable references.
var NoProject = Project{ID: NoProjectID, Name: "Inbox", Color: "grey"}

// Project is the resolved project reference carried on a task record.
// Color is a palette name, resolved to hex only at render time.
type Project struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// Attribution identifies the account a task came from.
type Attribution struct {
	Account  string `json:"account"`
	Color    string `json:"color,omitempty"`
	Category string `json:"category,omitempty"`
	Symbol   string `json:"symbol,omitempty"`
}

// Task is the canonical task record. It is immutable within a pass and
// rebuilt from raw upstream data on every refresh cycle.
type Task struct {
	ID          string      `json:"id"`
	Content     string      `json:"content"`
	Description string      `json:"description,omitempty"`
	Due         *date.Due   `json:"due,omitempty"`
	Priority    int         `json:"priority"` // 1 highest .. 4 none
	Completed   bool        `json:"completed,omitempty"`
	Project     Project     `json:"project"`
	Attribution Attribution `json:"attribution"`
	Responsible string      `json:"responsible,omitempty"`
	AvatarURL   string      `json:"avatar_url,omitempty"`
}

// ItemKind discriminates display items.
type ItemKind string

// Display item kinds.
const (
	ItemTask   ItemKind = "task"
	ItemHeader ItemKind = "header"
)

// HeaderKind discriminates group headers.
type HeaderKind string

// Group header kinds.
const (
	HeaderProject  HeaderKind = "project"
	HeaderDate     HeaderKind = "date"
	HeaderPriority HeaderKind = "priority"
)

// Distinguished date-group keys.
const (
	DateKeyOverdue = "overdue"
	DateKeyNoDate  = "nodate"
)

// Header carries a group's identity and its emitted member count.
type Header struct {
	Kind  HeaderKind `json:"kind"`
	Key   string     `json:"key"`
	Title string     `json:"title"`
	Color string     `json:"color,omitempty"` // palette name for project headers
	Count int        `json:"count"`
}

// Item is one unit of the display sequence: a task or a group header.
type Item struct {
	Kind   ItemKind `json:"kind"`
	Task   *Task    `json:"task,omitempty"`
	Header *Header  `json:"header,omitempty"`
}

// Group is an ordered partition of tasks with an optional header.
// The flat strategy produces a single headerless group.
type Group struct {
	Header *Header
	Tasks  []*Task
}

// LegendEntry is one distinct project referenced by a display sequence.
type LegendEntry struct {
	ProjectID string `json:"projectId"`
	Name      string `json:"projectName"`
	Color     string `json:"projectColor,omitempty"`
}
