// Package account handles upstream account credentials and their
// per-instance file store.
package account

// Account represents one credentialed Todoist identity. The token is a
// secret: log output must always go through Redacted.
type Account struct {
	Token    string `json:"token"`
	Name     string `json:"name"`
	Color    string `json:"color,omitempty"`
	Category string `json:"category,omitempty"`
	Symbol   string `json:"symbol,omitempty"`
}

// Redacted returns an abbreviated token safe for logs ("abcde…").
func (a Account) Redacted() string {
	const visible = 5
	if len(a.Token) <= visible {
		return "…"
	}
	return a.Token[:visible] + "…"
}

// DisplayName returns the account name, defaulting to "Todoist".
func (a Account) DisplayName() string {
	if a.Name == "" {
		return "Todoist"
	}
	return a.Name
}
