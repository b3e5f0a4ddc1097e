// Package wheel implements the scrolling engine behind one picker column: a
// cyclically infinite wheel of rows.
//
// Key properties:
//   - The scroll offset is an unbounded float in content lines. Row d (a
//     display index, any integer) occupies [d*extent, (d+1)*extent) and is
//     selected when the offset sits on its boundary d*extent.
//   - Display indices reduce modulo the row count to logical rows, so the
//     wheel never bounds-checks; it only reduces at render time.
//   - Only rows inside the visible window (plus overscan) are materialized as
//     slots. Slots leaving the window hand their view back to a Pool.
//   - Motion is a small state machine (idle, dragging, decelerating,
//     animating) advanced by Tick. Every time motion stops the offset snaps to
//     the nearest boundary and the selection is committed.
package wheel

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ---------------------------------------------------------------------------
// Public types
// ---------------------------------------------------------------------------

// View is row content that can render itself into a box of cells.
type View interface {
	Render(width, height int) string
}

// ContentFunc supplies the view for a logical row. reusing is a view recycled
// from the pool (possibly nil). Returning a different view discards reusing.
type ContentFunc func(row int, reusing View) View

// State is the motion state of a wheel.
type State int

const (
	StateIdle         State = iota // At rest on a row boundary
	StateDragging                  // Offset follows the pointer
	StateDecelerating              // Coasting on release velocity
	StateAnimating                 // Programmatic selection in flight
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateDecelerating:
		return "decelerating"
	case StateAnimating:
		return "animating"
	default:
		return "unknown"
	}
}

// ErrRowOutOfRange is returned by SelectRow for rows outside [0, rows).
var ErrRowOutOfRange = errors.New("wheel: row out of range")

const (
	// DefaultOverscan is the number of rows materialized beyond each edge.
	DefaultOverscan = 1

	// DefaultFriction is the exponential velocity decay rate, per second.
	DefaultFriction = 4.0

	// DefaultStopBelow is the speed, in row extents per second, under which a
	// coasting wheel stops and snaps.
	DefaultStopBelow = 0.5

	// DefaultAnimationDuration is the length of an animated selection.
	DefaultAnimationDuration = 250 * time.Millisecond

	// velocitySmoothing weights the newest drag sample against the running
	// velocity estimate.
	velocitySmoothing = 0.8
)

// ---------------------------------------------------------------------------
// Options
// ---------------------------------------------------------------------------

// Option is a functional option for New.
type Option func(*Wheel)

// WithComponent sets the component index used to key the pool.
func WithComponent(c int) Option {
	return func(w *Wheel) { w.component = c }
}

// WithPool shares a pool between wheels. Each wheel only touches the bucket
// of its own component.
func WithPool(p *Pool) Option {
	return func(w *Wheel) { w.pool = p }
}

// WithViewport sets the number of visible lines.
func WithViewport(lines int) Option {
	return func(w *Wheel) {
		if lines >= 0 {
			w.viewport = lines
		}
	}
}

// WithAnchor places the selection line's row top this many lines below the
// top of the viewport. A negative value centers it.
func WithAnchor(lines int) Option {
	return func(w *Wheel) { w.anchor = lines }
}

// WithOverscan sets how many rows beyond each viewport edge stay materialized.
func WithOverscan(n int) Option {
	return func(w *Wheel) {
		if n >= 0 {
			w.overscan = n
		}
	}
}

// WithFriction sets the deceleration decay rate, per second.
func WithFriction(f float64) Option {
	return func(w *Wheel) {
		if f > 0 {
			w.friction = f
		}
	}
}

// WithStopBelow sets the stop threshold in row extents per second.
func WithStopBelow(v float64) Option {
	return func(w *Wheel) {
		if v > 0 {
			w.stopBelow = v
		}
	}
}

// WithAnimationDuration sets the length of animated selections.
func WithAnimationDuration(d time.Duration) Option {
	return func(w *Wheel) {
		if d >= 0 {
			w.duration = d
		}
	}
}

// WithContent installs the row view provider.
func WithContent(fn ContentFunc) Option {
	return func(w *Wheel) { w.content = fn }
}

// WithOnSettle installs the callback fired when motion stops on a row that
// differs from the last committed one.
func WithOnSettle(fn func(row int)) Option {
	return func(w *Wheel) { w.onSettle = fn }
}

// ---------------------------------------------------------------------------
// Wheel
// ---------------------------------------------------------------------------

// Wheel is one cyclic column. Construct with New.
type Wheel struct {
	component int
	rows      int
	extent    float64

	viewport int
	anchor   int
	overscan int

	offset    float64
	state     State
	velocity  float64 // lines per second
	friction  float64
	stopBelow float64
	duration  time.Duration
	anim      Animator

	// slots is contiguous and ordered by display index.
	slots    []Slot
	pool     *Pool
	content  ContentFunc
	onSettle func(row int)

	committed int
}

// New builds a wheel with rows rows of the given extent. A non-positive
// extent is treated as one line.
func New(rows int, extent float64, opts ...Option) *Wheel {
	w := &Wheel{
		anchor:    -1,
		overscan:  DefaultOverscan,
		friction:  DefaultFriction,
		stopBelow: DefaultStopBelow,
		duration:  DefaultAnimationDuration,
	}
	for _, o := range opts {
		o(w)
	}
	if w.pool == nil {
		w.pool = NewPool()
	}
	w.reset(rows, extent)
	return w
}

// Reload replaces the row count and extent, clears every slot and returns the
// wheel to row 0 at rest. The committed selection follows silently.
func (w *Wheel) Reload(rows int, extent float64) {
	w.reset(rows, extent)
}

// Teardown releases every slot view to the pool and stops all motion.
func (w *Wheel) Teardown() {
	w.stop()
	w.releaseAll()
}

func (w *Wheel) reset(rows int, extent float64) {
	if rows < 0 {
		rows = 0
	}
	if extent <= 0 || math.IsNaN(extent) || math.IsInf(extent, 0) {
		extent = 1
	}
	w.stop()
	w.releaseAll()
	w.rows = rows
	w.extent = extent
	w.offset = 0
	w.committed = w.SelectedRow()
	w.layout()
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

// Component is the index this wheel keys its pool bucket with.
func (w *Wheel) Component() int { return w.component }

// Rows is the cached row count.
func (w *Wheel) Rows() int { return w.rows }

// Extent is the effective row height in lines.
func (w *Wheel) Extent() float64 { return w.extent }

// Offset is the current scroll offset.
func (w *Wheel) Offset() float64 { return w.offset }

// Period is the offset distance of one full turn of the wheel.
func (w *Wheel) Period() float64 { return float64(w.rows) * w.extent }

// State is the current motion state.
func (w *Wheel) State() State { return w.state }

// Velocity is the current speed in lines per second.
func (w *Wheel) Velocity() float64 { return w.velocity }

// Moving reports whether the wheel needs frame ticks.
func (w *Wheel) Moving() bool {
	return w.state == StateDecelerating || w.state == StateAnimating
}

// SelectedRow is the logical row nearest the selection line right now, or -1
// when the wheel has no rows.
func (w *Wheel) SelectedRow() int {
	if w.rows == 0 {
		return -1
	}
	return LogicalIndex(w.selectedDisplay(), w.rows)
}

// TargetRow is where the wheel is headed: the animation target while
// animating, otherwise SelectedRow.
func (w *Wheel) TargetRow() int {
	if w.rows == 0 {
		return -1
	}
	if w.state == StateAnimating {
		return LogicalIndex(DisplayIndex(w.anim.Target(), w.extent), w.rows)
	}
	return w.SelectedRow()
}

// Committed is the selection last reported on settle.
func (w *Wheel) Committed() int { return w.committed }

// SelectedDisplay is the display index nearest the selection line.
func (w *Wheel) SelectedDisplay() int { return w.selectedDisplay() }

func (w *Wheel) selectedDisplay() int {
	return int(roundHalfAway(w.offset / w.extent))
}

// ---------------------------------------------------------------------------
// Programmatic selection
// ---------------------------------------------------------------------------

// SelectRow moves the wheel to row along the shortest way around. Without
// animation the offset lands on the boundary immediately and the committed
// selection is updated without firing the settle callback. With animation
// the wheel enters StateAnimating and settles through Tick.
func (w *Wheel) SelectRow(row int, animated bool) error {
	if row < 0 || row >= w.rows {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrRowOutOfRange, row, w.rows)
	}
	target := float64(NearestDisplay(w.offset, w.extent, row, w.rows)) * w.extent
	w.velocity = 0
	if !animated {
		w.anim.Cancel()
		w.state = StateIdle
		w.offset = target
		w.committed = row
		w.recenter()
		w.layout()
		return nil
	}
	w.anim.Start(w.offset, target, w.duration)
	w.state = StateAnimating
	return nil
}

// ---------------------------------------------------------------------------
// Gestures
// ---------------------------------------------------------------------------

// BeginDrag starts a touch: any coasting or animation stops dead. Empty
// wheels do not scroll.
func (w *Wheel) BeginDrag() {
	if w.rows == 0 {
		return
	}
	w.anim.Cancel()
	w.velocity = 0
	w.state = StateDragging
}

// DragBy moves the offset by delta lines during a drag. dt is the time since
// the previous sample and feeds the release velocity; zero skips the estimate.
func (w *Wheel) DragBy(delta float64, dt time.Duration) {
	if w.state != StateDragging {
		return
	}
	w.offset += delta
	if dt > 0 {
		v := delta / dt.Seconds()
		w.velocity = velocitySmoothing*v + (1-velocitySmoothing)*w.velocity
	}
	w.layout()
}

// EndDrag releases the touch. Fast releases coast; slow ones snap and settle
// at once.
func (w *Wheel) EndDrag() {
	if w.state != StateDragging {
		return
	}
	if math.Abs(w.velocity) > w.stopSpeed() {
		w.state = StateDecelerating
		return
	}
	w.settle()
}

// Fling is a complete touch with the given release velocity in lines per
// second, as produced by a mouse wheel notch.
func (w *Wheel) Fling(velocity float64) {
	w.BeginDrag()
	if w.state != StateDragging {
		return
	}
	w.velocity = velocity
	w.EndDrag()
}

// Tick advances deceleration or animation by dt. It reports whether the wheel
// is still moving afterwards.
func (w *Wheel) Tick(dt time.Duration) bool {
	switch w.state {
	case StateDecelerating:
		s := dt.Seconds()
		w.offset += w.velocity * s
		w.velocity *= math.Exp(-w.friction * s)
		if math.Abs(w.velocity) < w.stopSpeed() {
			w.settle()
			return false
		}
		w.layout()
		return true
	case StateAnimating:
		off, done := w.anim.Step(dt)
		w.offset = off
		if done {
			w.settle()
			return false
		}
		w.layout()
		return true
	}
	return false
}

func (w *Wheel) stopSpeed() float64 { return w.stopBelow * w.extent }

// settle snaps to the nearest boundary, enters StateIdle and reports a
// changed selection.
func (w *Wheel) settle() {
	w.stop()
	if w.rows > 0 {
		w.offset = float64(w.selectedDisplay()) * w.extent
	}
	w.recenter()
	w.layout()
	row := w.SelectedRow()
	if row == w.committed {
		return
	}
	w.committed = row
	if w.onSettle != nil {
		w.onSettle(row)
	}
}

func (w *Wheel) stop() {
	w.anim.Cancel()
	w.velocity = 0
	w.state = StateIdle
}

// recenter folds the offset back into [0, Period) so it cannot grow without
// bound. Slots shift by the same whole number of turns, which leaves every
// logical row where it was.
func (w *Wheel) recenter() {
	if w.rows == 0 {
		return
	}
	period := w.Period()
	turns := math.Floor(w.offset / period)
	if turns != 0 {
		w.offset -= turns * period
		shift := int(turns) * w.rows
		for i := range w.slots {
			w.slots[i].Display -= shift
		}
	}
	if w.offset < 0 && w.offset > -boundaryEpsilon {
		w.offset = 0
	}
}
