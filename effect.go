package camfx

import (
	"math"
	"time"
)

// Infinite disables duration-based removal for an effect.
const Infinite = time.Duration(math.MaxInt64)

// Effect is one active visual transformation on a scene node.
//
// Update applies one frame's worth of change. delta is the host frame time
// in milliseconds. Returning false asks the camera to remove the effect
// immediately; Pan and Zoom use this to stop on arrival instead of
// overshooting until their duration runs out.
//
// Lifecycle exposes the effect's embedded Lifetime; embedding the Lifetime
// struct provides it. The accessor is deliberately not named after the
// struct: on an embedder the field named Lifetime would shadow a promoted
// method of the same name.
type Effect interface {
	Update(delta float64) bool
	Lifecycle() *Lifetime
}

// Finisher is the optional end-of-life hook. The camera invokes OnEnd
// exactly once, after the final update and before removal. Shake uses it to
// restore the pivot it captured at construction.
type Finisher interface {
	OnEnd()
}

// Options configures an effect's lifecycle. A zero Duration removes the
// effect on its first tick; Infinite leaves removal to the end condition or
// a manual Camera.Remove. EndCondition receives the tick's delta and ends
// the effect early when it reports true.
type Options struct {
	Duration     time.Duration
	EndCondition func(delta float64) bool
}

// Lifetime tracks when an effect started and last ran, and how much frame
// time it has accumulated. Every concrete effect embeds one; the camera
// stamps the timestamps during Tick.
type Lifetime struct {
	started      time.Time
	lastRan      time.Time
	duration     time.Duration
	endCondition func(delta float64) bool

	// sum of deltas fed through Update, in milliseconds. Interpolating
	// effects derive their progress from this rather than wall time so
	// the math stays deterministic under a virtual clock.
	elapsed float64
}

func newLifetime(opts Options) Lifetime {
	return Lifetime{duration: opts.Duration, endCondition: opts.EndCondition}
}

// Lifecycle satisfies the Effect interface for embedders.
func (l *Lifetime) Lifecycle() *Lifetime { return l }

// Started returns the time of the effect's first tick, zero before it.
// It is set once and never changes.
func (l *Lifetime) Started() time.Time { return l.started }

// LastRan returns the time of the most recent completed update.
func (l *Lifetime) LastRan() time.Time { return l.lastRan }

// Duration returns the configured lifetime.
func (l *Lifetime) Duration() time.Duration { return l.duration }

func (l *Lifetime) advance(delta float64) {
	l.elapsed += delta
}

func (l *Lifetime) durationMS() float64 {
	return float64(l.duration) / float64(time.Millisecond)
}

// fraction is elapsed frame time over the configured duration. Unbounded
// and zero durations report 1 so interpolating effects snap straight to
// their target. The value is not clamped at 1; effects that need a bounded
// progress clamp it themselves.
func (l *Lifetime) fraction() float64 {
	if l.duration == Infinite || l.duration <= 0 {
		return 1
	}
	return l.elapsed / l.durationMS()
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
