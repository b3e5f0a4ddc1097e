package wheel

import (
	"math"
	"slices"
)

// Slot is a materialized row: one on-screen instance of a logical row at a
// particular display index.
type Slot struct {
	Display int
	Row     int
	View    View
}

// ---------------------------------------------------------------------------
// Viewport
// ---------------------------------------------------------------------------

// SetViewport updates the number of visible lines and re-materializes the
// window.
func (w *Wheel) SetViewport(lines int) {
	if lines < 0 {
		lines = 0
	}
	w.viewport = lines
	w.layout()
}

// Viewport is the number of visible lines.
func (w *Wheel) Viewport() int { return w.viewport }

// Anchor is the line, counted from the top of the viewport, where the
// selected row's band begins.
func (w *Wheel) Anchor() int {
	if w.anchor >= 0 {
		return w.anchor
	}
	a := int(math.Floor((float64(w.viewport) - w.extent) / 2))
	if a < 0 {
		return 0
	}
	return a
}

// Top is the content offset shown on the first viewport line.
func (w *Wheel) Top() float64 {
	return w.offset - float64(w.Anchor())
}

// Window returns the inclusive display range that must be materialized:
// the rows intersecting the viewport padded by overscan on both sides. ok is
// false when nothing can be shown.
func (w *Wheel) Window() (first, last int, ok bool) {
	if w.rows == 0 || w.viewport <= 0 {
		return 0, -1, false
	}
	top := w.Top()
	first = int(math.Floor(top/w.extent)) - w.overscan
	last = int(math.Ceil((top+float64(w.viewport))/w.extent)) + w.overscan
	return first, last, true
}

// visibleRange is Window without the overscan padding and without the row
// that only touches the bottom edge.
func (w *Wheel) visibleRange() (first, last int, ok bool) {
	if w.rows == 0 || w.viewport <= 0 {
		return 0, -1, false
	}
	top := w.Top()
	first = int(math.Floor(top / w.extent))
	last = int(math.Ceil((top+float64(w.viewport))/w.extent)) - 1
	return first, last, true
}

// ---------------------------------------------------------------------------
// Slots
// ---------------------------------------------------------------------------

// Slots returns a copy of the materialized slots ordered by display index.
func (w *Wheel) Slots() []Slot {
	return slices.Clone(w.slots)
}

// SlotAt returns the slot materialized for a display index.
func (w *Wheel) SlotAt(display int) (Slot, bool) {
	if len(w.slots) == 0 {
		return Slot{}, false
	}
	i := display - w.slots[0].Display
	if i < 0 || i >= len(w.slots) {
		return Slot{}, false
	}
	return w.slots[i], true
}

// ViewForRow returns the view of the visible slot showing row that is closest
// to the selection line, or nil when no such slot is on screen.
func (w *Wheel) ViewForRow(row int) View {
	first, last, ok := w.visibleRange()
	if !ok || row < 0 || row >= w.rows {
		return nil
	}
	sel := w.selectedDisplay()
	var best View
	bestDist := -1
	for d := first; d <= last; d++ {
		s, ok := w.SlotAt(d)
		if !ok || s.Row != row {
			continue
		}
		dist := d - sel
		if dist < 0 {
			dist = -dist
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = s.View, dist
		}
	}
	return best
}

// layout brings the slot set in line with the current window: slots that
// left are released, slots that entered are materialized, the rest are kept.
func (w *Wheel) layout() {
	first, last, ok := w.Window()
	if !ok {
		w.releaseAll()
		return
	}
	if n := len(w.slots); n > 0 && w.slots[0].Display == first && w.slots[n-1].Display == last {
		return
	}

	for i := len(w.slots) - 1; i >= 0; i-- {
		if s := w.slots[i]; s.Display < first || s.Display > last {
			w.release(s)
		}
	}

	next := make([]Slot, 0, last-first+1)
	for d := first; d <= last; d++ {
		if s, ok := w.SlotAt(d); ok {
			next = append(next, s)
			continue
		}
		next = append(next, w.materialize(d))
	}
	w.slots = next
}

// materialize builds the slot for a display index, offering a pooled view to
// the content provider. A view the provider declines is dropped, never
// released again.
func (w *Wheel) materialize(display int) Slot {
	row := LogicalIndex(display, w.rows)
	v := w.pool.Acquire(w.component)
	if w.content != nil {
		v = w.content(row, v)
	}
	return Slot{Display: display, Row: row, View: v}
}

func (w *Wheel) release(s Slot) {
	w.pool.Release(w.component, s.View)
}

// releaseAll empties the slot set back to front, so the pool hands views out
// again in the original display order.
func (w *Wheel) releaseAll() {
	for i := len(w.slots) - 1; i >= 0; i-- {
		w.release(w.slots[i])
	}
	w.slots = nil
}
