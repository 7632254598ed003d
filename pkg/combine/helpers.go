package combine

import (
	"fmt"
	"io"
	"strings"
)

// Assemble drops empty slots and joins the remaining blocks with a newline,
// keeping slot order.
func Assemble(slots []string) string {
	blocks := make([]string, 0, len(slots))
	for _, s := range slots {
		if s != "" {
			blocks = append(blocks, s)
		}
	}
	return strings.Join(blocks, "\n")
}

// Emit writes text and a trailing newline to w in a single write. Empty text
// writes nothing.
func Emit(w io.Writer, text string) error {
	if text == "" {
		return nil
	}
	if _, err := io.WriteString(w, text+"\n"); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
