// Package utils holds small string helpers shared by the commands and the
// table renderer.
package utils

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DisplayWidth returns the number of terminal cells val occupies. Wide
// characters such as CJK ideographs count as 2.
func DisplayWidth(val string) int {
	return runewidth.StringWidth(val)
}

// ToWidth pads val with spaces to width terminal cells. Values that are
// already as wide, and non-positive widths, leave val unchanged.
func ToWidth(val string, width int) string {
	if width <= 0 {
		return val
	}
	current := DisplayWidth(val)
	if current >= width {
		return val
	}
	return val + strings.Repeat(" ", width-current)
}

// Truncate shortens val to at most width cells, ending with "…" when cut.
func Truncate(val string, width int) string {
	if width <= 0 || DisplayWidth(val) <= width {
		return val
	}
	return runewidth.Truncate(val, width, "…")
}

// AlignRight left-pads val with spaces to width terminal cells.
func AlignRight(val string, width int) string {
	return runewidth.FillLeft(val, width)
}
