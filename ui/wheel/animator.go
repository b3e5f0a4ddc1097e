package wheel

import (
	"time"

	"github.com/miosa/osa-wheel/ui/anim"
)

// Animator interpolates a wheel offset toward a target with an ease-out
// curve over a fixed duration.
type Animator struct {
	from     float64
	to       float64
	elapsed  time.Duration
	duration time.Duration
	active   bool
}

// Start begins a new interpolation, replacing any in flight.
func (a *Animator) Start(from, to float64, duration time.Duration) {
	a.from = from
	a.to = to
	a.elapsed = 0
	a.duration = duration
	a.active = true
}

// Step advances the interpolation by dt and returns the new offset. done is
// true once the target has been reached; the returned offset is then exactly
// the target.
func (a *Animator) Step(dt time.Duration) (offset float64, done bool) {
	if !a.active {
		return a.to, true
	}
	a.elapsed += dt
	if a.duration <= 0 || a.elapsed >= a.duration {
		a.active = false
		return a.to, true
	}
	t := float64(a.elapsed) / float64(a.duration)
	return anim.Lerp(a.from, a.to, anim.EaseOutCubic(t)), false
}

// Cancel abandons the interpolation where it stands.
func (a *Animator) Cancel() { a.active = false }

// Active reports whether an interpolation is in flight.
func (a Animator) Active() bool { return a.active }

// Target is the offset the current (or last) interpolation ends at.
func (a Animator) Target() float64 { return a.to }
