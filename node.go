package camfx

import "image/color"

// Node is the scene container an effect mutates. The host engine owns the
// node; effects only borrow it and never manage its lifetime.
type Node interface {
	Pivot() (x, y float64)
	SetPivot(x, y float64)
	Scale() (sx, sy float64)
	SetScale(sx, sy float64)
	Angle() float64
	SetAngle(angle float64)
	Size() (w, h float64)
}

// Overlay is a translucent child drawn over a node's content. Fade drives
// its alpha and tint.
type Overlay interface {
	Alpha() float64
	SetAlpha(alpha float64)
	SetTint(c color.Color)
}

// OverlayNode is a Node that can hand out an overlay. Required by Fade.
type OverlayNode interface {
	Node
	Overlay() Overlay
}
