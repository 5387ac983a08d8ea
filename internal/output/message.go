package output

import (
	"fmt"
	"io"
)

// Messagef writes a formatted one-line status message.
func Messagef(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format+"\n", args...)
}
