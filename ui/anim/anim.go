// Package anim drives frame-based motion for the wheel picker.
//
// Features:
//   - Frame ticker keyed by a per-owner ID so TickMsg events from one picker
//     never advance another
//   - Real elapsed time between frames, capped so a stalled terminal does not
//     fling a wheel across hundreds of rows on the next frame
//   - Easing curves used by programmatic selection
package anim

import (
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
)

// ---------------------------------------------------------------------------
// Constants & package-level state
// ---------------------------------------------------------------------------

const (
	// DefaultFPS is the frame rate used when a Ticker is built with fps <= 0.
	DefaultFPS = 60

	// maxFrameGap bounds the elapsed time reported for a single frame.
	maxFrameGap = 100 * time.Millisecond
)

// idCounter is a global monotonic counter used to give each Ticker a unique
// ID so TickMsg events don't cross-talk between pickers.
var idCounter atomic.Int64

// ---------------------------------------------------------------------------
// TickMsg
// ---------------------------------------------------------------------------

// TickMsg is sent to the Bubble Tea program every animation frame.
// The ID field ensures that only the intended ticker responds; Tag tells
// frame chains of the same ticker apart so a frame scheduled before Stop is
// not picked up by a later Start.
type TickMsg struct {
	ID   int64
	Tag  int
	Time time.Time
}

// ---------------------------------------------------------------------------
// Ticker
// ---------------------------------------------------------------------------

// Ticker schedules animation frames while something is moving. It follows
// the Bubble Tea component pattern: value receivers for queries, pointer
// receivers for mutators.
type Ticker struct {
	id      int64
	tag     int
	fps     int
	running bool
	last    time.Time
}

// NewTicker creates a stopped Ticker running at fps frames per second.
func NewTicker(fps int) Ticker {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return Ticker{
		id:  idCounter.Add(1),
		fps: fps,
	}
}

// ID returns the identifier carried by this ticker's TickMsg events.
func (t Ticker) ID() int64 { return t.id }

// FPS returns the configured frame rate.
func (t Ticker) FPS() int { return t.fps }

// FrameDuration is the nominal interval between two frames.
func (t Ticker) FrameDuration() time.Duration {
	return time.Second / time.Duration(t.fps)
}

// Running reports whether a frame is currently scheduled.
func (t Ticker) Running() bool { return t.running }

// Start marks the ticker running and returns the command for the first
// frame. It returns nil when a frame is already in flight, so callers can
// invoke it freely after every state change.
func (t *Ticker) Start() tea.Cmd {
	if t.running {
		return nil
	}
	t.running = true
	t.tag++
	t.last = time.Time{}
	return t.Next()
}

// Stop halts the ticker. A TickMsg already in flight is ignored by Advance.
func (t *Ticker) Stop() {
	t.running = false
	t.last = time.Time{}
}

// Advance consumes a TickMsg. It reports the time elapsed since the previous
// frame and whether the message was addressed to this running ticker.
func (t *Ticker) Advance(msg TickMsg) (time.Duration, bool) {
	if msg.ID != t.id || msg.Tag != t.tag || !t.running {
		return 0, false
	}
	dt := t.FrameDuration()
	if !t.last.IsZero() && msg.Time.After(t.last) {
		dt = msg.Time.Sub(t.last)
	}
	if dt > maxFrameGap {
		dt = maxFrameGap
	}
	t.last = msg.Time
	return dt, true
}

// Tag identifies the current frame chain.
func (t Ticker) Tag() int { return t.tag }

// Next returns a tea.Cmd that fires a TickMsg for this ticker after one
// frame duration.
func (t Ticker) Next() tea.Cmd {
	id, tag := t.id, t.tag
	return tea.Tick(t.FrameDuration(), func(now time.Time) tea.Msg {
		return TickMsg{ID: id, Tag: tag, Time: now}
	})
}
