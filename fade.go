package camfx

import (
	"image/color"
	"math"

	"github.com/milk9111/camfx/easing"
)

// fadeArrival is how close the overlay alpha must get to the target before
// the fade stops itself.
const fadeArrival = 0.01

// Fade drives a node's overlay alpha from its value at construction toward
// a target alpha, holding the overlay tint at a fixed color the whole time.
// Whether it fades in or out falls out of the comparison between target and
// initial alpha. The effect terminates itself once the alpha is within
// fadeArrival of the target.
type Fade struct {
	Lifetime

	node   OverlayNode
	tint   color.Color
	start  float64
	target float64
	ease   easing.Func
}

// NewFade fades the node's overlay to targetAlpha over the configured
// duration, tinted with the given color. ease may be nil for linear.
func NewFade(node OverlayNode, tint color.Color, targetAlpha float64, ease easing.Func, opts Options) *Fade {
	if ease == nil {
		ease = easing.Linear
	}
	return &Fade{
		Lifetime: newLifetime(opts),
		node:     node,
		tint:     tint,
		start:    node.Overlay().Alpha(),
		target:   targetAlpha,
		ease:     ease,
	}
}

func (f *Fade) Update(delta float64) bool {
	ov := f.node.Overlay()
	alpha := f.start + (f.target-f.start)*f.ease(clamp01(f.fraction()))
	ov.SetAlpha(alpha)
	ov.SetTint(f.tint)
	return math.Abs(f.target-alpha) > fadeArrival
}
