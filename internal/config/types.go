package config

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/swatch/internal/token"
)

// PaletteFile is the on-disk form of a token palette.
type PaletteFile struct {
	Name   string                 `yaml:"name" validate:"required,palette_name"`
	Base   string                 `yaml:"base,omitempty" validate:"omitempty,oneof=default"`
	Tokens map[string]*TokenEntry `yaml:"tokens" validate:"required,min=1,dive,keys,token_name,endkeys,required"`
}

// TokenEntry holds one token's light and dark values.
type TokenEntry struct {
	Light *TokenValue `yaml:"light" validate:"required"`
	Dark  *TokenValue `yaml:"dark" validate:"required"`
}

// TokenValue decodes the YAML forms of a token value: "clear", a hex
// color, a two-item gradient list or a number of points.
type TokenValue struct {
	token.Value
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *TokenValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return v.decodeScalar(node)
	case yaml.SequenceNode:
		if len(node.Content) != 2 {
			return fmt.Errorf("line %d: gradient needs exactly two stops, got %d", node.Line, len(node.Content))
		}
		var stops [2]string
		for i, stop := range node.Content {
			if stop.Kind != yaml.ScalarNode || !token.IsHexColor(stop.Value) {
				return fmt.Errorf("line %d: invalid gradient stop %q", stop.Line, stop.Value)
			}
			stops[i] = stop.Value
		}
		v.Value = token.Gradient(stops[0], stops[1])
		return nil
	default:
		return fmt.Errorf("line %d: token value must be a color, gradient, number or clear", node.Line)
	}
}

func (v *TokenValue) decodeScalar(node *yaml.Node) error {
	switch {
	case node.Tag == "!!int" || node.Tag == "!!float":
		points, err := strconv.ParseFloat(node.Value, 64)
		if err != nil || points < 0 {
			return fmt.Errorf("line %d: invalid dimension %q", node.Line, node.Value)
		}
		v.Value = token.Dimension(points)
	case strings.EqualFold(node.Value, "clear"):
		v.Value = token.ClearValue()
	case token.IsHexColor(node.Value):
		v.Value = token.Color(node.Value)
	default:
		return fmt.Errorf("line %d: invalid token value %q", node.Line, node.Value)
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler with the forms UnmarshalYAML accepts.
func (v TokenValue) MarshalYAML() (any, error) {
	switch v.Kind {
	case token.KindClear:
		return "clear", nil
	case token.KindGradient:
		return []string{v.Stops[0], v.Stops[1]}, nil
	case token.KindDimension:
		return v.Dimension, nil
	default:
		return v.Color, nil
	}
}
