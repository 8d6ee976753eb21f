package scene

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Overlay is the translucent child a Fade effect drives. It holds alpha and
// tint state; the backing 1x1 image is created lazily on first draw so the
// state can be exercised without a graphics context.
type Overlay struct {
	alpha float64
	tint  color.Color

	img *ebiten.Image
}

func newOverlay() *Overlay {
	return &Overlay{tint: color.Black}
}

func (o *Overlay) Alpha() float64 { return o.alpha }

func (o *Overlay) SetAlpha(alpha float64) {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	o.alpha = alpha
}

// Tint returns the current tint color.
func (o *Overlay) Tint() color.Color { return o.tint }

func (o *Overlay) SetTint(c color.Color) {
	if c == nil {
		return
	}
	o.tint = c
}

func (o *Overlay) draw(screen *ebiten.Image, w, h int) {
	if o.alpha <= 0 {
		return
	}
	if o.img == nil {
		o.img = ebiten.NewImage(1, 1)
		o.img.Fill(color.White)
	}

	r, g, b, _ := o.tint.RGBA()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	var cm ebiten.ColorM
	cm.Scale(float64(r)/0xffff, float64(g)/0xffff, float64(b)/0xffff, o.alpha)
	op.ColorM = cm
	screen.DrawImage(o.img, op)
}
