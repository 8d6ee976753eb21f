// Package prefabs loads yaml effect definitions, ships embedded defaults,
// and hot-reloads definition files from disk.
package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/camfx"
)

// EffectSpec is one effect definition. Fields beyond name, type, and
// duration only apply to the types that read them.
type EffectSpec struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"` // shake | pan | zoom | rotate | fade | script

	// lifetime in milliseconds; -1 disables duration-based removal
	Duration float64 `yaml:"duration"`

	Intensity float64    `yaml:"intensity"` // shake
	TargetX   float64    `yaml:"target_x"`  // pan, zoom
	TargetY   float64    `yaml:"target_y"`  // pan, zoom
	Angle     float64    `yaml:"angle"`     // rotate, radians
	Alpha     float64    `yaml:"alpha"`     // fade target
	Color     *YAMLColor `yaml:"color"`     // fade tint
	Easing    string     `yaml:"easing"`    // zoom, rotate, fade

	// inline tengo sources
	EndCondition string `yaml:"end_condition"`
	Script       string `yaml:"script"` // type: script only
}

func (s EffectSpec) duration() time.Duration {
	if s.Duration < 0 {
		return camfx.Infinite
	}
	return time.Duration(s.Duration * float64(time.Millisecond))
}

// LoadSpec parses a single yaml definition.
func LoadSpec(data []byte) (EffectSpec, error) {
	var spec EffectSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return EffectSpec{}, fmt.Errorf("prefabs: unmarshal spec: %w", err)
	}
	if spec.Name == "" {
		return EffectSpec{}, fmt.Errorf("prefabs: spec missing name")
	}
	return spec, nil
}

// YAMLColor parses "#rrggbb" or "#rrggbbaa" strings into a color.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
