package agg

// BuildLegend derives the distinct projects referenced by a display
// sequence, one entry per project id in first-encountered order. The
// synthetic no-project bucket is not a real project and is omitted, as is
// the legend itself when no project is referenced.
func BuildLegend(items []Item) []LegendEntry {
	seen := make(map[string]bool)
	var legend []LegendEntry

	for _, item := range items {
		if item.Kind != ItemTask {
			continue
		}
		p := item.Task.Project
		if p.ID == NoProjectID || seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		legend = append(legend, LegendEntry{ProjectID: p.ID, Name: p.Name, Color: p.Color})
	}
	return legend
}
