package picker

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Label is the default row view: a single line of text centered in its box.
type Label struct {
	Text string
}

// Render centers the text on the middle line of a width×height box,
// truncating with an ellipsis when it does not fit.
func (l *Label) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	text := runewidth.Truncate(l.Text, width, "…")
	pad := width - runewidth.StringWidth(text)
	line := strings.Repeat(" ", pad/2) + text + strings.Repeat(" ", pad-pad/2)

	blank := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = blank
	}
	lines[(height-1)/2] = line
	return strings.Join(lines, "\n")
}
