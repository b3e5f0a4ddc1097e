package markdown

import (
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"
	"github.com/miosa/osa-wheel/style"
)

// Block is a row view whose text is markdown. Rendered output is cached per
// width and glamour style, since glamour is far too slow to run on every
// frame.
type Block struct {
	mu     sync.Mutex
	source string
	width  int
	style  string
	lines  []string
}

// NewBlock returns a view for src.
func NewBlock(src string) *Block {
	return &Block{source: src}
}

// SetSource replaces the markdown text, as when the view is recycled for
// another row.
func (b *Block) SetSource(src string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if src == b.source {
		return
	}
	b.source = src
	b.lines = nil
}

// Source returns the markdown text.
func (b *Block) Source() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.source
}

// Render draws the block into width×height. Line breaks in the source are
// kept, and glamour's document margins are trimmed so short snippets line up
// with plain labels.
func (b *Block) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if name := styleName(); b.lines == nil || b.width != width || b.style != name {
		b.lines = trimBlank(strings.Split(render(b.source, width, true), "\n"))
		b.width, b.style = width, name
	}
	out := make([]string, height)
	copy(out, b.lines)
	return strings.Join(out, "\n")
}

// styleName picks the glamour palette matching the active theme.
func styleName() string {
	switch {
	case style.IsMono():
		return "notty"
	case style.IsDark():
		return "dark"
	default:
		return "light"
	}
}

func trimBlank(lines []string) []string {
	for len(lines) > 0 && strings.TrimSpace(ansi.Strip(lines[0])) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(ansi.Strip(lines[len(lines)-1])) == "" {
		lines = lines[:len(lines)-1]
	}

	// Lines open with SGR sequences, so the shared margin is measured on the
	// stripped text and cut by cells.
	margin := -1
	for _, l := range lines {
		plain := ansi.Strip(l)
		if strings.TrimSpace(plain) == "" {
			continue
		}
		lead := len(plain) - len(strings.TrimLeft(plain, " "))
		if margin < 0 || lead < margin {
			margin = lead
		}
	}
	if margin > 0 {
		for i, l := range lines {
			lines[i] = ansi.TruncateLeft(l, margin, "")
		}
	}
	return lines
}
