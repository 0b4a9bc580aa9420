package common

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// FitWidth collapses s to a single line no wider than width cells, ending
// with an ellipsis when cut. A non-positive width leaves s untouched.
func FitWidth(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	if width <= 0 || ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}
