package camfx

// Custom runs a caller-supplied update behind the standard effect
// lifecycle. Use it for one-off transformations that don't warrant a named
// effect type; the scripted effects in package script are built on it.
type Custom struct {
	Lifetime

	update func(delta float64) bool
	onEnd  func()
}

// NewCustom wraps update in the effect lifecycle. A nil update terminates
// on the first tick. onEnd may be nil.
func NewCustom(update func(delta float64) bool, onEnd func(), opts Options) *Custom {
	return &Custom{
		Lifetime: newLifetime(opts),
		update:   update,
		onEnd:    onEnd,
	}
}

func (c *Custom) Update(delta float64) bool {
	if c.update == nil {
		return false
	}
	return c.update(delta)
}

func (c *Custom) OnEnd() {
	if c.onEnd != nil {
		c.onEnd()
	}
}
