package prefabs

import (
	"fmt"
	"image/color"

	"github.com/milk9111/camfx"
	"github.com/milk9111/camfx/easing"
	"github.com/milk9111/camfx/script"
)

// Build constructs the effect a spec describes, bound to node. Fade
// requires a node that can hand out an overlay.
func Build(spec EffectSpec, node camfx.Node) (camfx.Effect, error) {
	opts := camfx.Options{Duration: spec.duration()}
	if spec.EndCondition != "" {
		cond, err := script.EndCondition([]byte(spec.EndCondition))
		if err != nil {
			return nil, fmt.Errorf("prefabs: %s: %w", spec.Name, err)
		}
		opts.EndCondition = cond
	}

	var ease easing.Func
	if spec.Easing != "" {
		f, ok := easing.ByName(spec.Easing)
		if !ok {
			return nil, fmt.Errorf("prefabs: %s: unknown easing %q", spec.Name, spec.Easing)
		}
		ease = f
	}

	switch spec.Type {
	case "shake":
		return camfx.NewShake(node, spec.Intensity, opts), nil
	case "pan":
		return camfx.NewPan(node, spec.TargetX, spec.TargetY, opts), nil
	case "zoom":
		return camfx.NewZoom(node, spec.TargetX, spec.TargetY, ease, opts), nil
	case "rotate":
		return camfx.NewRotate(node, spec.Angle, ease, opts), nil
	case "fade":
		overlayNode, ok := node.(camfx.OverlayNode)
		if !ok {
			return nil, fmt.Errorf("prefabs: %s: node has no overlay support", spec.Name)
		}
		tint := color.Color(color.Black)
		if spec.Color != nil && spec.Color.Color != nil {
			tint = spec.Color.Color
		}
		return camfx.NewFade(overlayNode, tint, spec.Alpha, ease, opts), nil
	case "script":
		eff, err := script.Effect(node, []byte(spec.Script), opts)
		if err != nil {
			return nil, fmt.Errorf("prefabs: %s: %w", spec.Name, err)
		}
		return eff, nil
	default:
		return nil, fmt.Errorf("prefabs: %s: unknown effect type %q", spec.Name, spec.Type)
	}
}
