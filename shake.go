package camfx

import "math/rand"

// Shake jitters a node's pivot with two independent uniform offsets in
// [0, intensity) every update. Intensity stays constant for the life of the
// effect; there is no decay. When the effect ends the pivot snaps back to
// the value captured at construction.
type Shake struct {
	Lifetime

	node      Node
	intensity float64

	originX, originY float64
}

// NewShake captures the node's current pivot and shakes around it until the
// configured lifecycle ends the effect.
func NewShake(node Node, intensity float64, opts Options) *Shake {
	x, y := node.Pivot()
	return &Shake{
		Lifetime:  newLifetime(opts),
		node:      node,
		intensity: intensity,
		originX:   x,
		originY:   y,
	}
}

func (s *Shake) Update(delta float64) bool {
	s.node.SetPivot(rand.Float64()*s.intensity, rand.Float64()*s.intensity)
	return true
}

// OnEnd restores the pre-shake pivot.
func (s *Shake) OnEnd() {
	s.node.SetPivot(s.originX, s.originY)
}
