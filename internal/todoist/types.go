// Package todoist implements a minimal client for the Todoist REST v2 API.
package todoist

// RawDue is the due object of the REST v2 task payload.
type RawDue struct {
	Date     string `json:"date"`               // YYYY-MM-DD
	Datetime string `json:"datetime,omitempty"` // RFC 3339, present when a time is set
	String   string `json:"string,omitempty"`
}

// RawTask is one task payload as delivered by /rest/v2/tasks.
type RawTask struct {
	ID          string  `json:"id"`
	Content     string  `json:"content"`
	Description string  `json:"description,omitempty"`
	ProjectID   string  `json:"project_id,omitempty"`
	Priority    int     `json:"priority,omitempty"`
	Completed   bool    `json:"is_completed,omitempty"`
	Due         *RawDue `json:"due,omitempty"`
	Assignee    string  `json:"assignee_id,omitempty"`
}

// RawProject is one project payload as delivered by /rest/v2/projects.
type RawProject struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"` // palette name, not a hex value
}

// RawProfile is the user payload of /rest/v2/user.
type RawProfile struct {
	ID        string `json:"id"`
	FullName  string `json:"full_name,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}
