package picker

import (
	"math"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/miosa/osa-wheel/style"
	"github.com/miosa/osa-wheel/ui/common"
	"github.com/miosa/osa-wheel/ui/wheel"
)

// View renders the columns side by side. Rows fade with their distance from
// the selection line; the band under it is highlighted when the selection
// indicator is on.
func (m Model) View() string {
	if len(m.wheels) == 0 || m.height <= 0 {
		return ""
	}
	cols := make([]string, 0, 3*len(m.wheels))
	for c, w := range m.wheels {
		if c > 0 && m.gap > 0 {
			cols = append(cols, blankColumn(m.gap, m.height))
		}
		cols = append(cols, m.renderColumn(c, w))
		if m.rail {
			cols = append(cols, common.Rail(m.height, w.Rows(), w.Offset(), w.Extent()))
		}
	}
	out := lipgloss.JoinHorizontal(lipgloss.Top, cols...)
	if pad := m.leftPad(); pad > 0 {
		margin := strings.Repeat(" ", pad)
		lines := strings.Split(out, "\n")
		for i := range lines {
			lines[i] = margin + lines[i]
		}
		out = strings.Join(lines, "\n")
	}
	return out
}

func (m Model) renderColumn(c int, w *wheel.Wheel) string {
	width := m.columnWidth(c)
	extent := w.Extent()
	lineH := max(int(math.Round(extent)), 1)
	anchor := w.Anchor()
	inBand := func(line int) bool {
		return m.showsIndicator && line >= anchor && line < anchor+lineH
	}

	lines := make([]string, m.height)
	blank := strings.Repeat(" ", width)
	for i := range lines {
		if inBand(i) {
			lines[i] = style.PickerBand.Render(blank)
		} else {
			lines[i] = blank
		}
	}

	top := w.Top()
	sel := w.SelectedDisplay()
	reach := float64(m.height) / 2
	for _, s := range w.Slots() {
		y := int(math.Round(float64(s.Display)*extent - top))
		if y >= m.height || y+lineH <= 0 {
			continue
		}
		var body []string
		if s.View != nil {
			body = strings.Split(s.View.Render(width, lineH), "\n")
		}

		var st lipgloss.Style
		switch {
		case s.Display == sel && m.focused && c == m.focus && len(m.wheels) > 1:
			st = style.PickerFocus
		case s.Display == sel:
			st = style.PickerSelected
		default:
			dist := float64(s.Display)*extent - w.Offset()
			st = style.PickerRow.Foreground(style.RowColor(dist, reach))
		}

		for i := 0; i < lineH; i++ {
			ly := y + i
			if ly < 0 || ly >= m.height {
				continue
			}
			var text string
			if i < len(body) {
				text = body[i]
			}
			ls := st
			if inBand(ly) {
				ls = ls.Inherit(style.PickerBand)
			}
			lines[ly] = ls.Render(fit(text, width))
		}
	}
	return strings.Join(lines, "\n")
}

// fit truncates or pads s to exactly width cells.
func fit(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

func blankColumn(width, height int) string {
	line := style.PickerGap.Render(strings.Repeat(" ", width))
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
