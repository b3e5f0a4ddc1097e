// Package markdown renders markdown with glamour in the active theme's
// palette.
package markdown

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// defaultWrap is the wrap width of Render.
const defaultWrap = 100

type rendererKey struct {
	style        string
	width        int
	keepNewlines bool
}

var (
	renderersMu sync.Mutex
	renderers   = map[rendererKey]*glamour.TermRenderer{}
)

// renderer returns a cached glamour renderer for the current theme and width.
// With keepNewlines, line breaks inside a paragraph survive reflow.
func renderer(width int, keepNewlines bool) (*glamour.TermRenderer, error) {
	k := rendererKey{style: styleName(), width: width, keepNewlines: keepNewlines}
	renderersMu.Lock()
	defer renderersMu.Unlock()
	if r, ok := renderers[k]; ok {
		return r, nil
	}
	opts := []glamour.TermRendererOption{
		glamour.WithStandardStyle(k.style),
		glamour.WithWordWrap(width),
	}
	if keepNewlines {
		opts = append(opts, glamour.WithPreservedNewLines())
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, err
	}
	renderers[k] = r
	return r, nil
}

// Render converts markdown text to styled ANSI output. Blank input and
// renderer failures return md unchanged.
func Render(md string) string {
	return RenderWidth(md, defaultWrap)
}

// RenderWidth renders md wrapped at width cells.
func RenderWidth(md string, width int) string {
	return render(md, width, false)
}

func render(md string, width int, keepNewlines bool) string {
	if strings.TrimSpace(md) == "" {
		return md
	}
	r, err := renderer(width, keepNewlines)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	// glamour adds trailing newlines; trim for inline display.
	return strings.TrimRight(out, "\n")
}
