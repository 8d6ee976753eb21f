package camfx

import "math"

// panArrival is how close, in pivot units, both axes must get to the target
// before the pan stops itself.
const panArrival = 5.0

// Pan slides a node's pivot toward a target coordinate at the constant
// speed needed to arrive when the duration elapses. The travel direction
// per axis is fixed at construction. The effect terminates itself once both
// axes are within panArrival of the target, so a pan can finish before its
// duration runs out.
type Pan struct {
	Lifetime

	node             Node
	targetX, targetY float64
	stepX, stepY     float64 // signed pivot units per millisecond
}

// NewPan pans the node's pivot from wherever it is now to (targetX, targetY)
// over the configured duration. A zero or unbounded duration snaps the
// pivot to the target on the first update.
func NewPan(node Node, targetX, targetY float64, opts Options) *Pan {
	p := &Pan{
		Lifetime: newLifetime(opts),
		node:     node,
		targetX:  targetX,
		targetY:  targetY,
	}
	if ms := p.durationMS(); opts.Duration != Infinite && ms > 0 {
		x, y := node.Pivot()
		p.stepX = (targetX - x) / ms
		p.stepY = (targetY - y) / ms
	}
	return p
}

func (p *Pan) Update(delta float64) bool {
	x, y := p.node.Pivot()
	if p.stepX == 0 && p.stepY == 0 {
		p.node.SetPivot(p.targetX, p.targetY)
		return false
	}
	x += p.stepX * delta
	y += p.stepY * delta
	p.node.SetPivot(x, y)
	return math.Abs(p.targetX-x) > panArrival || math.Abs(p.targetY-y) > panArrival
}
