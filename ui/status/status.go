// Package status renders the two-line footer under the picker: the current
// selection (or the last error) and a key help line.
package status

import (
	"strings"

	"charm.land/bubbles/v2/key"
	"github.com/miosa/osa-wheel/style"
	"github.com/miosa/osa-wheel/ui/common"
)

// maxValueWidth caps one column's value in the selection line.
const maxValueWidth = 16

// Entry is one column in the selection line.
type Entry struct {
	Label string
	Value string
}

// Model is the status bar state. Drive it via setter methods; it has no
// Update loop.
type Model struct {
	entries   []Entry
	highlight int
	err       error
	keys      []key.Binding
	pill      string
}

// New returns an empty status bar.
func New() Model {
	return Model{highlight: -1}
}

// SetSelection replaces the selection line. The entry at highlight is drawn
// in the signal color; pass -1 for none.
func (m *Model) SetSelection(entries []Entry, highlight int) {
	m.entries = entries
	m.highlight = highlight
}

// SetError shows err instead of the selection until cleared with nil.
func (m *Model) SetError(err error) { m.err = err }

// SetPosition shows the focused column's row on the right of the selection
// line.
func (m *Model) SetPosition(row, rows int) { m.pill = PositionPill(row, rows) }

// SetKeys sets the bindings listed on the help line.
func (m *Model) SetKeys(bindings ...key.Binding) { m.keys = bindings }

// Plain is the selection as "label value" pairs without styling, for the
// clipboard.
func (m Model) Plain() string {
	parts := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		parts = append(parts, strings.TrimSpace(e.Label+" "+e.Value))
	}
	return strings.Join(parts, ", ")
}

// View renders both lines, each truncated to width.
func (m Model) View(width int) string {
	return " " + m.line(width) + "\n " + common.KeyHelp(m.keys...)
}

func (m Model) line(width int) string {
	if m.err != nil {
		return style.ErrorText.Render("✘ ") +
			style.WarnText.Render(common.Truncate(m.err.Error(), max(width-4, 10)))
	}
	parts := make([]string, 0, len(m.entries))
	for i, e := range m.entries {
		value := common.Truncate(strings.Join(strings.Fields(e.Value), " "), maxValueWidth)
		vs := style.StatusValue
		if i == m.highlight {
			vs = style.StatusSignal
		}
		label := ""
		if e.Label != "" {
			label = style.StatusKey.Render(e.Label + " ")
		}
		parts = append(parts, label+vs.Render(value))
	}
	out := strings.Join(parts, style.HelpSeparator.Render("  ·  "))
	if m.pill != "" {
		out += style.HelpSeparator.Render("  ·  ") + m.pill
	}
	return out
}
