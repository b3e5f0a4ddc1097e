package picker

import (
	"math"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/miosa/osa-wheel/ui/anim"
	"github.com/miosa/osa-wheel/ui/wheel"
)

// Update handles frame ticks, keys for the focused column, and mouse
// gestures on the column under the pointer. Settled selections come back as
// msg.RowSelected commands after the delegate has been told.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case anim.TickMsg:
		return m.handleTick(msg)

	case tea.KeyPressMsg:
		if !m.focused {
			return m, nil
		}
		m.handleKey(msg)

	case tea.MouseClickMsg:
		if msg.Button == tea.MouseLeft {
			m.beginDrag(msg.X, msg.Y)
		}

	case tea.MouseMotionMsg:
		m.dragTo(msg.Y)

	case tea.MouseReleaseMsg:
		m.endDrag()

	case tea.MouseWheelMsg:
		m.handleWheel(msg)

	default:
		return m, nil
	}

	cmds := m.drain()
	cmds = append(cmds, m.Animate())
	return m, tea.Batch(cmds...)
}

func (m Model) handleTick(t anim.TickMsg) (Model, tea.Cmd) {
	dt, ok := m.ticker.Advance(t)
	if !ok {
		return m, nil
	}
	moving := false
	for _, w := range m.wheels {
		if w.Tick(dt) {
			moving = true
		}
	}
	cmds := m.drain()
	if moving {
		cmds = append(cmds, m.ticker.Next())
	} else {
		m.ticker.Stop()
	}
	return m, tea.Batch(cmds...)
}

// drain turns settle notifications collected since the last call into
// commands.
func (m *Model) drain() []tea.Cmd {
	if len(m.relay.pending) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(m.relay.pending))
	for _, sel := range m.relay.pending {
		cmds = append(cmds, func() tea.Msg { return sel })
	}
	m.relay.pending = m.relay.pending[:0]
	return cmds
}

// ---------------------------------------------------------------------------
// Keys
// ---------------------------------------------------------------------------

func (m *Model) handleKey(k tea.KeyPressMsg) {
	if len(m.wheels) == 0 {
		return
	}
	switch {
	case key.Matches(k, m.keys.PrevComponent):
		m.focus = (m.focus - 1 + len(m.wheels)) % len(m.wheels)
		return
	case key.Matches(k, m.keys.NextComponent):
		m.focus = (m.focus + 1) % len(m.wheels)
		return
	}

	w := m.wheels[m.focus]
	n := w.Rows()
	if n == 0 {
		return
	}
	switch {
	case key.Matches(k, m.keys.PrevRow):
		m.step(w, -1)
	case key.Matches(k, m.keys.NextRow):
		m.step(w, 1)
	case key.Matches(k, m.keys.PageUp):
		m.step(w, -m.pageRows(w))
	case key.Matches(k, m.keys.PageDown):
		m.step(w, m.pageRows(w))
	case key.Matches(k, m.keys.First):
		_ = w.SelectRow(0, true)
	case key.Matches(k, m.keys.Last):
		_ = w.SelectRow(n-1, true)
	}
}

// step animates n rows away from where the column is headed, so repeated
// presses during an animation accumulate.
func (m *Model) step(w *wheel.Wheel, n int) {
	rows := w.Rows()
	target := ((w.TargetRow()+n)%rows + rows) % rows
	_ = w.SelectRow(target, true)
}

// pageRows is the number of whole rows visible in a column, less one.
func (m Model) pageRows(w *wheel.Wheel) int {
	return max(int(float64(m.height)/w.Extent())-1, 1)
}

// ---------------------------------------------------------------------------
// Mouse
// ---------------------------------------------------------------------------

func (m *Model) beginDrag(x, y int) {
	c, ok := m.componentAt(x, y)
	if !ok {
		return
	}
	w := m.wheels[c]
	if w.Rows() == 0 {
		return
	}
	m.focus = c
	w.BeginDrag()
	m.drag = &dragState{
		component: c,
		line:      y - m.originY,
		lastY:     y,
		at:        m.now(),
	}
}

func (m *Model) dragTo(y int) {
	d := m.drag
	if d == nil || y == d.lastY {
		return
	}
	now := m.now()
	// Content follows the pointer: dragging down reveals earlier rows.
	m.wheels[d.component].DragBy(-float64(y-d.lastY), now.Sub(d.at))
	d.lastY, d.at, d.moved = y, now, true
}

func (m *Model) endDrag() {
	d := m.drag
	if d == nil {
		return
	}
	m.drag = nil
	w := m.wheels[d.component]
	if d.moved {
		w.EndDrag()
		return
	}
	// A click without motion picks the row under the pointer.
	w.EndDrag()
	display := wheel.DisplayIndex(w.Top()+float64(d.line), w.Extent())
	if display != w.SelectedDisplay() {
		_ = w.SelectRow(wheel.LogicalIndex(display, w.Rows()), true)
	}
}

func (m *Model) handleWheel(e tea.MouseWheelMsg) {
	c, ok := m.componentAt(e.X, e.Y)
	if !ok {
		return
	}
	var dir float64
	switch e.Button {
	case tea.MouseWheelUp:
		dir = -1
	case tea.MouseWheelDown:
		dir = 1
	default:
		return
	}
	w := m.wheels[c]
	if w.Rows() == 0 {
		return
	}
	m.focus = c
	// Enough speed to coast about one row; notches in the same direction
	// stack on whatever speed is left.
	v := dir * wheelNotchRows * w.Extent() * m.friction
	if w.State() == wheel.StateDecelerating && math.Signbit(w.Velocity()) == math.Signbit(v) {
		v += w.Velocity()
	}
	w.Fling(v)
}
