package camfx

import "github.com/milk9111/camfx/easing"

// Rotate turns a node by a total angle delta from its angle at
// construction, eased over the configured duration. When the node's pivot
// sits at the origin, construction recenters it on the node's middle so the
// rotation reads as "around center" instead of "around corner".
//
// Only increasing rotations reach the stop angle and terminate themselves;
// a negative angle delta moves the angle away from the stop angle and runs
// until the duration expires.
type Rotate struct {
	Lifetime

	node  Node
	start float64
	total float64
	stop  float64
	ease  easing.Func
}

// NewRotate rotates the node by angleDelta (radians for a scene.Container;
// the unit is whatever the node's angle uses). ease may be nil for linear.
func NewRotate(node Node, angleDelta float64, ease easing.Func, opts Options) *Rotate {
	if ease == nil {
		ease = easing.Linear
	}
	if px, py := node.Pivot(); px == 0 && py == 0 {
		w, h := node.Size()
		node.SetPivot(w/2, h/2)
	}
	start := node.Angle()
	stop := angleDelta
	if stop < 0 {
		stop = -stop
	}
	return &Rotate{
		Lifetime: newLifetime(opts),
		node:     node,
		start:    start,
		total:    angleDelta,
		stop:     start + stop,
		ease:     ease,
	}
}

func (r *Rotate) Update(delta float64) bool {
	f := r.ease(clamp01(r.fraction()))
	angle := r.start + r.total*f
	r.node.SetAngle(angle)
	return angle < r.stop
}
