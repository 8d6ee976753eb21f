package camfx

import "time"

// Camera holds the active effects and advances them once per externally
// driven tick. Insertion order is iteration order; there is no priority and
// no dedup, so adding the same effect twice is on the caller.
//
// All camera methods must run on the host's render goroutine. Nothing here
// locks; the design assumes a single-threaded frame loop.
type Camera struct {
	effects []Effect

	// swappable for virtual-time tests
	now func() time.Time

	ticking bool
	added   []Effect
	removed []Effect
}

// NewCamera creates an empty effect registry.
func NewCamera() *Camera {
	return &Camera{now: time.Now}
}

// Add appends an effect to the active set. No validation, no upper bound.
// Adding from inside an effect callback during Tick defers the effect to
// the next tick rather than mutating the set mid-pass.
func (c *Camera) Add(e Effect) {
	if e == nil {
		return
	}
	if c.ticking {
		c.added = append(c.added, e)
		return
	}
	c.effects = append(c.effects, e)
}

// Remove drops an effect by identity without running its end hook. Meant
// for manual cancellation only; normal removal happens inside Tick. A
// Remove issued from inside an effect callback during Tick takes effect at
// the end of the pass: the effect gets no further updates this tick.
func (c *Camera) Remove(e Effect) {
	if c.ticking {
		c.removed = append(c.removed, e)
		return
	}
	for i, active := range c.effects {
		if active == e {
			c.effects = append(c.effects[:i], c.effects[i+1:]...)
			return
		}
	}
}

func (c *Camera) removedDuringTick(e Effect) bool {
	for _, r := range c.removed {
		if r == e {
			return true
		}
	}
	return false
}

// Active returns a copy of the current active set, in insertion order.
func (c *Camera) Active() []Effect {
	out := make([]Effect, len(c.effects))
	copy(out, c.effects)
	return out
}

// Tick advances every active effect by delta (frame time in milliseconds)
// and prunes the finished ones. For each effect: stamp the start time on
// its first tick, run its update, then drop it when the update signals
// termination, the duration has elapsed, or the end condition fires. An
// effect's end hook runs exactly once, before it leaves the set.
//
// The next-active set is built in one pass and swapped in afterward, so a
// removal never invalidates the iteration.
func (c *Camera) Tick(delta float64) {
	now := c.now()
	c.ticking = true
	next := make([]Effect, 0, len(c.effects))
	for _, e := range c.effects {
		if c.removedDuringTick(e) {
			continue
		}
		lt := e.Lifecycle()
		if lt.started.IsZero() {
			lt.started = now
		}
		lt.advance(delta)
		if !e.Update(delta) {
			finish(e)
			continue
		}
		lt.lastRan = now
		if now.Sub(lt.started) >= lt.duration || (lt.endCondition != nil && lt.endCondition(delta)) {
			finish(e)
			continue
		}
		next = append(next, e)
	}
	if len(c.removed) > 0 {
		kept := next[:0]
		for _, e := range next {
			if !c.removedDuringTick(e) {
				kept = append(kept, e)
			}
		}
		next = kept
		c.removed = nil
	}
	c.effects = append(next, c.added...)
	c.added = nil
	c.ticking = false
}

func finish(e Effect) {
	if f, ok := e.(Finisher); ok {
		f.OnEnd()
	}
}
