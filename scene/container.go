// Package scene provides an ebiten-backed scene container that camera
// effects can mutate and the host can draw through.
package scene

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/camfx"
)

// Container is a drawable scene node with the transform state the camera
// effects operate on: a pivot offset, per-axis scale, and a rotation angle
// in radians. The host owns the container and draws its world content
// through Draw each frame.
type Container struct {
	pivotX, pivotY float64
	scaleX, scaleY float64
	angle          float64
	w, h           int

	off     *ebiten.Image
	overlay *Overlay
}

var _ camfx.OverlayNode = (*Container)(nil)

// NewContainer creates a container with the given logical size, unit scale,
// zero pivot, and zero angle.
func NewContainer(w, h int) *Container {
	return &Container{w: w, h: h, scaleX: 1, scaleY: 1}
}

func (c *Container) Pivot() (float64, float64) { return c.pivotX, c.pivotY }

func (c *Container) SetPivot(x, y float64) {
	c.pivotX = x
	c.pivotY = y
}

func (c *Container) Scale() (float64, float64) { return c.scaleX, c.scaleY }

func (c *Container) SetScale(sx, sy float64) {
	c.scaleX = sx
	c.scaleY = sy
}

func (c *Container) Angle() float64 { return c.angle }

func (c *Container) SetAngle(angle float64) { c.angle = angle }

func (c *Container) Size() (float64, float64) { return float64(c.w), float64(c.h) }

// Overlay returns the container's overlay child, creating it on first use.
func (c *Container) Overlay() camfx.Overlay {
	if c.overlay == nil {
		c.overlay = newOverlay()
	}
	return c.overlay
}

// Draw renders the world through the container's transform. drawWorld
// receives an offscreen image with the container's logical size; the result
// is drawn onto screen scaled about the container center, rotated by the
// current angle, and shifted opposite the pivot. The overlay, if any effect
// has touched it, is drawn last over the full container area.
func (c *Container) Draw(screen *ebiten.Image, drawWorld func(world *ebiten.Image)) {
	if c.off == nil {
		c.off = ebiten.NewImage(c.w, c.h)
	}

	c.off.Clear()
	if drawWorld != nil {
		drawWorld(c.off)
	}

	halfW := float64(c.w) / 2.0
	halfH := float64(c.h) / 2.0

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	op.GeoM.Translate(-halfW, -halfH)
	op.GeoM.Scale(c.scaleX, c.scaleY)
	op.GeoM.Rotate(c.angle)
	op.GeoM.Translate(halfW, halfH)
	op.GeoM.Translate(-c.pivotX, -c.pivotY)
	screen.DrawImage(c.off, op)

	if c.overlay != nil {
		c.overlay.draw(screen, c.w, c.h)
	}
}

// Recenter places the pivot on the container middle. Rotations read as
// "around center" from this pivot.
func (c *Container) Recenter() {
	c.SetPivot(float64(c.w)/2.0, float64(c.h)/2.0)
}

// NormalizeAngle wraps an angle into [0, 2π). Handy for hosts that keep
// rotating a container indefinitely.
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
