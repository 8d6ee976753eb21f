// Package script compiles tengo sources into camera end conditions and
// custom effects, so effect definitions can ship behavior without
// recompiling the host.
package script

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/camfx"
)

const endConditionDispatch = `
__result := done(__state, __delta)
`

// EndCondition compiles a tengo source defining done(state, delta) into a
// predicate usable as camfx.Options.EndCondition. Each call reruns the
// whole program, so top-level script variables reset between calls; state
// that must survive across frames (frame counters and the like) belongs in
// the state map, which round-trips through every call. A runtime error
// inside the script is logged and reported as the condition firing, so a
// broken script ends its effect instead of pinning it forever.
func EndCondition(src []byte) (func(delta float64) bool, error) {
	s := tengo.NewScript(append(append([]byte{}, src...), []byte("\n"+endConditionDispatch)...))
	_ = s.Add("__delta", 0.0)
	_ = s.Add("__state", map[string]any{})
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile end condition: %w", err)
	}

	state := map[string]any{}
	return func(delta float64) bool {
		if err := compiled.Set("__state", state); err != nil {
			log.Printf("script: end condition set state: %v", err)
			return true
		}
		if err := compiled.Set("__delta", delta); err != nil {
			log.Printf("script: end condition set delta: %v", err)
			return true
		}
		if err := compiled.Run(); err != nil {
			log.Printf("script: end condition run: %v", err)
			return true
		}
		if m := compiled.Get("__state").Map(); m != nil {
			state = m
		}
		return compiled.Get("__result").Bool()
	}, nil
}

const effectDispatch = `
__continue := update(__state, __delta)
`

// Effect compiles a tengo source defining update(state, delta) into a
// custom effect on node. state is a map carrying pivot_x, pivot_y, scale_x,
// scale_y, and angle; the script mutates it in place and returns whether
// the effect should keep running. The mutated state is written back to the
// node after every update.
func Effect(node camfx.Node, src []byte, opts camfx.Options) (*camfx.Custom, error) {
	s := tengo.NewScript(append(append([]byte{}, src...), []byte("\n"+effectDispatch)...))
	_ = s.Add("__delta", 0.0)
	_ = s.Add("__state", map[string]any{})
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile effect: %w", err)
	}

	update := func(delta float64) bool {
		px, py := node.Pivot()
		sx, sy := node.Scale()
		state := map[string]any{
			"pivot_x": px,
			"pivot_y": py,
			"scale_x": sx,
			"scale_y": sy,
			"angle":   node.Angle(),
		}
		if err := compiled.Set("__state", state); err != nil {
			log.Printf("script: effect set state: %v", err)
			return false
		}
		if err := compiled.Set("__delta", delta); err != nil {
			log.Printf("script: effect set delta: %v", err)
			return false
		}
		if err := compiled.Run(); err != nil {
			log.Printf("script: effect run: %v", err)
			return false
		}

		out := compiled.Get("__state").Map()
		node.SetPivot(stateNum(out, "pivot_x", px), stateNum(out, "pivot_y", py))
		node.SetScale(stateNum(out, "scale_x", sx), stateNum(out, "scale_y", sy))
		node.SetAngle(stateNum(out, "angle", node.Angle()))

		return compiled.Get("__continue").Bool()
	}

	return camfx.NewCustom(update, nil, opts), nil
}

func stateNum(state map[string]any, key string, fallback float64) float64 {
	switch v := state[key].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	default:
		return fallback
	}
}
