// Package picker provides a multi-column wheel selector for Bubble Tea.
//
// Each column (component) is a cyclic wheel from package wheel. The picker
// owns the wheels, keeps them in step with a DataSource, relays row content
// and selection events to an optional delegate, turns key and mouse input
// into wheel gestures, and renders the columns side by side around a fixed
// selection line.
//
// All state changes happen inside Update; motion continues across frames
// through anim.TickMsg.
package picker

import (
	"fmt"
	"math"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/miosa/osa-wheel/msg"
	"github.com/miosa/osa-wheel/ui/anim"
	"github.com/miosa/osa-wheel/ui/wheel"
)

const (
	// DefaultHeight is the number of visible lines when no size is set.
	DefaultHeight = 5

	// DefaultColumnWidth is used for columns whose delegate width is <= 0.
	DefaultColumnWidth = 12

	// DefaultColumnGap is the number of blank cells between columns.
	DefaultColumnGap = 2

	// wheelNotchRows is how far one mouse wheel notch carries a column.
	wheelNotchRows = 1.0
)

// ---------------------------------------------------------------------------
// Options
// ---------------------------------------------------------------------------

// Option is a functional option for New.
type Option func(*Model)

// WithDelegate installs the delegate. Its capabilities are probed per method;
// see the interfaces in source.go.
func WithDelegate(d any) Option {
	return func(m *Model) { m.delegate = d }
}

// WithSize sets the width (used for centering) and the visible height.
func WithSize(w, h int) Option {
	return func(m *Model) {
		m.width = max(w, 0)
		m.height = max(h, 0)
	}
}

// WithOverscan sets how many rows beyond each edge stay materialized.
func WithOverscan(n int) Option {
	return func(m *Model) {
		if n >= 0 {
			m.overscan = n
		}
	}
}

// WithAnimationDuration sets the length of animated selections.
func WithAnimationDuration(d time.Duration) Option {
	return func(m *Model) {
		if d >= 0 {
			m.duration = d
		}
	}
}

// WithFriction sets the deceleration decay rate, per second.
func WithFriction(f float64) Option {
	return func(m *Model) {
		if f > 0 {
			m.friction = f
		}
	}
}

// WithFPS sets the animation frame rate.
func WithFPS(fps int) Option {
	return func(m *Model) { m.fps = fps }
}

// WithKeyMap replaces the default keybindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) { m.keys = k }
}

// WithShowsSelectionIndicator highlights the selection band.
func WithShowsSelectionIndicator(v bool) Option {
	return func(m *Model) { m.showsIndicator = v }
}

// WithColumnGap sets the number of blank cells between columns.
func WithColumnGap(n int) Option {
	return func(m *Model) {
		if n >= 0 {
			m.gap = n
		}
	}
}

// WithDefaultColumnWidth sets the width used when the delegate reports none.
func WithDefaultColumnWidth(n int) Option {
	return func(m *Model) {
		if n > 0 {
			m.defaultWidth = n
		}
	}
}

// WithRail draws a cyclic position rail to the right of every column.
func WithRail(v bool) Option {
	return func(m *Model) { m.rail = v }
}

// WithClock replaces time.Now for drag velocity sampling.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

// ---------------------------------------------------------------------------
// Relay
// ---------------------------------------------------------------------------

// relay is shared by the model and the closures handed to its wheels, so the
// wheels keep reaching the current delegate across model copies.
type relay struct {
	delegate any
	pending  []msg.RowSelected
}

func (r *relay) content(component int) wheel.ContentFunc {
	return func(row int, reusing wheel.View) wheel.View {
		if p, ok := r.delegate.(ViewProvider); ok {
			return p.ViewForRow(row, component, reusing)
		}
		var title string
		if p, ok := r.delegate.(TitleProvider); ok {
			if t, ok := p.TitleForRow(row, component); ok {
				title = t
			}
		}
		if l, ok := reusing.(*Label); ok {
			l.Text = title
			return l
		}
		return &Label{Text: title}
	}
}

func (r *relay) settled(component int) func(row int) {
	return func(row int) {
		if o, ok := r.delegate.(SelectionObserver); ok {
			o.DidSelectRow(row, component)
		}
		r.pending = append(r.pending, msg.RowSelected{Component: component, Row: row})
	}
}

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

type dragState struct {
	component int
	line      int // pointer line relative to the picker
	lastY     int
	at        time.Time
	moved     bool
}

// Model is the picker. The zero value is not usable; construct with New.
type Model struct {
	source   DataSource
	delegate any
	relay    *relay
	metrics  *Metrics
	pool     *wheel.Pool
	wheels   []*wheel.Wheel

	width, height    int
	originX, originY int

	overscan       int
	duration       time.Duration
	friction       float64
	fps            int
	keys           KeyMap
	showsIndicator bool
	gap            int
	defaultWidth   int
	rail           bool
	now            func() time.Time

	focused bool
	focus   int

	ticker anim.Ticker
	drag   *dragState
}

// New builds a picker over source and loads every component immediately.
func New(source DataSource, opts ...Option) Model {
	m := Model{
		source:       source,
		height:       DefaultHeight,
		overscan:     wheel.DefaultOverscan,
		duration:     wheel.DefaultAnimationDuration,
		friction:     wheel.DefaultFriction,
		keys:         DefaultKeyMap(),
		gap:          DefaultColumnGap,
		defaultWidth: DefaultColumnWidth,
		now:          time.Now,
	}
	for _, o := range opts {
		o(&m)
	}
	m.relay = &relay{delegate: m.delegate}
	m.metrics = NewMetrics(m.delegate)
	m.pool = wheel.NewPool()
	m.ticker = anim.NewTicker(m.fps)
	m.ReloadAllComponents()
	return m
}

// SetSource swaps the data source. Call ReloadAllComponents afterwards.
func (m *Model) SetSource(source DataSource) { m.source = source }

// SetDelegate swaps the delegate and forgets cached row sizes. Call
// ReloadAllComponents afterwards to rebuild row content.
func (m *Model) SetDelegate(d any) {
	m.delegate = d
	m.relay.delegate = d
	m.metrics.SetDelegate(d)
}

// ---------------------------------------------------------------------------
// Loading
// ---------------------------------------------------------------------------

// ReloadAllComponents re-fetches the component count, tears down wheels that
// no longer exist, creates new ones, and reloads rows and metrics for every
// surviving wheel. Every selection returns to row 0.
func (m *Model) ReloadAllComponents() {
	n := 0
	if m.source != nil {
		n = max(m.source.NumberOfComponents(), 0)
	}
	m.metrics.InvalidateAll()

	for c := n; c < len(m.wheels); c++ {
		m.wheels[c].Teardown()
		m.pool.Drop(c)
	}
	if len(m.wheels) > n {
		clear(m.wheels[n:])
		m.wheels = m.wheels[:n]
	}
	for c := range m.wheels {
		m.reload(c)
	}
	for c := len(m.wheels); c < n; c++ {
		m.wheels = append(m.wheels, m.newWheel(c))
	}

	m.drag = nil
	m.ticker.Stop()
	if m.focus >= n {
		m.focus = max(n-1, 0)
	}
}

// ReloadComponent re-fetches the row count and metrics of one component and
// rebuilds its slots. Its selection returns to row 0.
func (m *Model) ReloadComponent(c int) error {
	if _, err := m.wheel(c); err != nil {
		return err
	}
	m.metrics.Invalidate(c)
	m.reload(c)
	if m.drag != nil && m.drag.component == c {
		m.drag = nil
	}
	return nil
}

func (m *Model) reload(c int) {
	size := m.metrics.Size(c)
	m.wheels[c].Reload(m.rowCount(c), size.Height)
}

func (m *Model) newWheel(c int) *wheel.Wheel {
	size := m.metrics.Size(c)
	return wheel.New(m.rowCount(c), size.Height,
		wheel.WithComponent(c),
		wheel.WithPool(m.pool),
		wheel.WithViewport(m.height),
		wheel.WithOverscan(m.overscan),
		wheel.WithFriction(m.friction),
		wheel.WithAnimationDuration(m.duration),
		wheel.WithContent(m.relay.content(c)),
		wheel.WithOnSettle(m.relay.settled(c)),
	)
}

func (m *Model) rowCount(c int) int {
	if m.source == nil {
		return 0
	}
	return max(m.source.NumberOfRows(c), 0)
}

func (m Model) wheel(c int) (*wheel.Wheel, error) {
	if c < 0 || c >= len(m.wheels) {
		return nil, fmt.Errorf("%w: component %d not in [0,%d)", ErrInvalidArgument, c, len(m.wheels))
	}
	return m.wheels[c], nil
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

// NumberOfComponents is the component count cached at the last reload.
func (m Model) NumberOfComponents() int { return len(m.wheels) }

// NumberOfRowsInComponent is the row count cached at the last reload.
func (m Model) NumberOfRowsInComponent(c int) (int, error) {
	w, err := m.wheel(c)
	if err != nil {
		return 0, err
	}
	return w.Rows(), nil
}

// RowSizeForComponent reports the delegate's row size as given, including
// non-positive values.
func (m Model) RowSizeForComponent(c int) (Size, error) {
	if _, err := m.wheel(c); err != nil {
		return Size{}, err
	}
	return m.metrics.Size(c), nil
}

// SelectedRowInComponent is the row nearest the selection line, or -1 when
// the component has no rows.
func (m Model) SelectedRowInComponent(c int) (int, error) {
	w, err := m.wheel(c)
	if err != nil {
		return 0, err
	}
	return w.SelectedRow(), nil
}

// ViewForRow returns the materialized view showing row closest to the
// selection line. It is nil when the row is not on screen, out of range, or
// the delegate supplies no custom views.
func (m Model) ViewForRow(row, c int) (wheel.View, error) {
	w, err := m.wheel(c)
	if err != nil {
		return nil, err
	}
	if _, ok := m.relay.delegate.(ViewProvider); !ok {
		return nil, nil
	}
	return w.ViewForRow(row), nil
}

// ShowsSelectionIndicator reports whether the selection band is highlighted.
func (m Model) ShowsSelectionIndicator() bool { return m.showsIndicator }

// SetShowsSelectionIndicator toggles the selection band highlight.
func (m *Model) SetShowsSelectionIndicator(v bool) { m.showsIndicator = v }

// Rail reports whether each column is followed by a position rail.
func (m Model) Rail() bool { return m.rail }

// SetRail shows or hides the position rails.
func (m *Model) SetRail(v bool) { m.rail = v }

// Moving reports whether any column is coasting or animating.
func (m Model) Moving() bool {
	for _, w := range m.wheels {
		if w.Moving() {
			return true
		}
	}
	return false
}

// KeyMap returns the active keybindings.
func (m Model) KeyMap() KeyMap { return m.keys }

// ---------------------------------------------------------------------------
// Selection
// ---------------------------------------------------------------------------

// SelectRow moves component c to row. Without animation the change is
// immediate and the delegate is not notified. An animated selection settles
// over later frames and notifies on arrival; follow it with Animate when
// calling from outside Update.
func (m *Model) SelectRow(row, c int, animated bool) error {
	w, err := m.wheel(c)
	if err != nil {
		return err
	}
	if row < 0 || row >= w.Rows() {
		return fmt.Errorf("%w: row %d not in [0,%d) for component %d", ErrInvalidArgument, row, w.Rows(), c)
	}
	if m.drag != nil && m.drag.component == c {
		m.drag = nil
	}
	return w.SelectRow(row, animated)
}

// Animate schedules the next frame when a column is moving and no frame is
// already in flight.
func (m *Model) Animate() tea.Cmd {
	if !m.Moving() {
		return nil
	}
	return m.ticker.Start()
}

// ---------------------------------------------------------------------------
// Size & focus
// ---------------------------------------------------------------------------

// SetSize updates the width used for centering and the visible height.
func (m *Model) SetSize(w, h int) {
	m.width = max(w, 0)
	m.height = max(h, 0)
	for _, wh := range m.wheels {
		wh.SetViewport(m.height)
	}
}

// SetOrigin records where the picker's top-left cell sits on screen, so mouse
// coordinates can be mapped onto columns.
func (m *Model) SetOrigin(x, y int) {
	m.originX, m.originY = x, y
}

// Height is the visible height in lines.
func (m Model) Height() int { return m.height }

// Focus enables keyboard input.
func (m *Model) Focus() { m.focused = true }

// Blur disables keyboard input.
func (m *Model) Blur() { m.focused = false }

// Focused reports whether keyboard input is enabled.
func (m Model) Focused() bool { return m.focused }

// FocusedComponent is the column keys act on, or -1 when there are none.
func (m Model) FocusedComponent() int {
	if len(m.wheels) == 0 {
		return -1
	}
	return m.focus
}

// SetFocusedComponent moves keyboard focus to component c.
func (m *Model) SetFocusedComponent(c int) error {
	if _, err := m.wheel(c); err != nil {
		return err
	}
	m.focus = c
	return nil
}

// ---------------------------------------------------------------------------
// Geometry
// ---------------------------------------------------------------------------

// columnWidth is the rendered width of component c in cells.
func (m Model) columnWidth(c int) int {
	w := m.metrics.Size(c).Width
	if w <= 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return m.defaultWidth
	}
	return max(int(math.Round(w)), 1)
}

// naturalWidth is the width of all columns, rails and gaps.
func (m Model) naturalWidth() int {
	total := 0
	for c := range m.wheels {
		if c > 0 {
			total += m.gap
		}
		total += m.columnWidth(c)
		if m.rail {
			total++
		}
	}
	return total
}

// leftPad is the blank margin that centers the columns inside width.
func (m Model) leftPad() int {
	return max((m.width-m.naturalWidth())/2, 0)
}

// componentAt maps a screen cell to the column under it.
func (m Model) componentAt(x, y int) (int, bool) {
	if y < m.originY || y >= m.originY+m.height {
		return 0, false
	}
	x -= m.originX + m.leftPad()
	for c := range m.wheels {
		if c > 0 {
			x -= m.gap
		}
		w := m.columnWidth(c)
		if m.rail {
			w++
		}
		if x >= 0 && x < w {
			return c, true
		}
		x -= w
	}
	return 0, false
}
