package output

import (
	"fmt"
	"io"

	"github.com/glanceworks/tododash/internal/agg"
)

// ItemsCompact renders one line per display item, unstyled, for piping
// into other tools. Headers are prefixed with "#".
func ItemsCompact(w io.Writer, items []agg.Item) {
	for _, item := range items {
		if item.Kind == agg.ItemHeader {
			fmt.Fprintf(w, "# %s|%s|%d\n", item.Header.Kind, item.Header.Key, item.Header.Count)
			continue
		}
		t := item.Task
		due := ""
		if t.Due != nil {
			due = t.Due.Date.String()
		}
		fmt.Fprintf(w, "%s|p%d|%s|%s|%s\n", t.ID, t.Priority, due, t.Project.ID, t.Content)
	}
}
