// Package easing provides the elapsed-fraction to eased-fraction functions
// accepted by the interpolating camera effects.
package easing

// Func maps an elapsed fraction in [0, 1] to an eased fraction.
type Func func(t float64) float64

// Linear is the identity and the default for every eased effect.
func Linear(t float64) float64 { return t }

func QuadIn(t float64) float64 { return t * t }

func QuadOut(t float64) float64 { return t * (2 - t) }

func QuadInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// Smoothstep is the cubic ease-in-out used for camera motion.
func Smoothstep(t float64) float64 { return t * t * (3 - 2*t) }

var byName = map[string]Func{
	"linear":      Linear,
	"quad_in":     QuadIn,
	"quad_out":    QuadOut,
	"quad_in_out": QuadInOut,
	"smoothstep":  Smoothstep,
}

// ByName resolves an easing function from its definition-file name.
func ByName(name string) (Func, bool) {
	f, ok := byName[name]
	return f, ok
}
