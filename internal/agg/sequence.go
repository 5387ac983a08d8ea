package agg

import "github.com/glanceworks/tododash/internal/config"

// Sequence flattens ordered groups into the final display sequence: each
// group's header (when dividers are enabled and the group has an identity)
// followed by its member tasks. The whole sequence is then truncated to
// maximumEntries; headers count toward the cap, so the bound covers the
// total rendered volume rather than only task rows.
func Sequence(groups []Group, s *config.Settings) []Item {
	var items []Item
	for _, g := range groups {
		if g.Header != nil && s.Dividers() {
			items = append(items, Item{Kind: ItemHeader, Header: g.Header})
		}
		for _, t := range g.Tasks {
			items = append(items, Item{Kind: ItemTask, Task: t})
		}
	}

	if limit := s.Entries(); len(items) > limit {
		items = items[:limit]
	}
	return items
}
