package camfx

import (
	"math"

	"github.com/milk9111/camfx/easing"
)

// zoomArrival is how close both scale axes must get to the target factors
// before the zoom stops itself.
const zoomArrival = 0.01

// Zoom interpolates a node's per-axis scale toward target factors,
// optionally eased. Increments that grow an axis are applied at half rate
// while shrinking increments are applied in full, so zooming in converges
// more slowly than zooming out. The effect terminates itself once both axes
// are within zoomArrival of the target.
type Zoom struct {
	Lifetime

	node             Node
	targetX, targetY float64
	startX, startY   float64
	ease             easing.Func
	prevF            float64
}

// NewZoom scales the node from its current factors to (targetX, targetY)
// over the configured duration. ease may be nil for linear.
func NewZoom(node Node, targetX, targetY float64, ease easing.Func, opts Options) *Zoom {
	if ease == nil {
		ease = easing.Linear
	}
	sx, sy := node.Scale()
	return &Zoom{
		Lifetime: newLifetime(opts),
		node:     node,
		targetX:  targetX,
		targetY:  targetY,
		startX:   sx,
		startY:   sy,
		ease:     ease,
	}
}

func (z *Zoom) Update(delta float64) bool {
	f := z.ease(clamp01(z.fraction()))
	df := f - z.prevF
	z.prevF = f

	sx, sy := z.node.Scale()
	sx += zoomStep((z.targetX - z.startX) * df)
	sy += zoomStep((z.targetY - z.startY) * df)
	z.node.SetScale(sx, sy)

	return math.Abs(z.targetX-sx) > zoomArrival || math.Abs(z.targetY-sy) > zoomArrival
}

// zoomStep halves growing increments but not shrinking ones.
func zoomStep(amount float64) float64 {
	if amount > 0 {
		return amount / 2
	}
	return amount
}
