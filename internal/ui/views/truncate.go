package views

import "github.com/mattn/go-runewidth"

const ellipsis = "…"

// Truncate shortens s to at most width display columns, marking the cut
// with an ellipsis. Wide runes (CJK, emoji) count as two columns.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return ellipsis
	}
	return runewidth.Truncate(s, width, ellipsis)
}
