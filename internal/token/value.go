package token

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})$`)

// Kind distinguishes the shapes a token value can take.
type Kind int

const (
	KindClear Kind = iota
	KindColor
	KindGradient
	KindDimension
)

func (k Kind) String() string {
	switch k {
	case KindClear:
		return "clear"
	case KindColor:
		return "color"
	case KindGradient:
		return "gradient"
	case KindDimension:
		return "dimension"
	default:
		return "unknown"
	}
}

// Value is an opaque, comparable token value.
type Value struct {
	Kind      Kind
	Color     string
	Stops     [2]string
	Dimension float64
}

// ClearValue is the transparent sentinel.
func ClearValue() Value {
	return Value{Kind: KindClear}
}

// Color builds a solid color value from a #RRGGBB or #RRGGBBAA string.
func Color(hex string) Value {
	return Value{Kind: KindColor, Color: strings.ToUpper(hex)}
}

// Gradient builds a two-stop linear gradient value.
func Gradient(from, to string) Value {
	return Value{Kind: KindGradient, Stops: [2]string{strings.ToUpper(from), strings.ToUpper(to)}}
}

// Dimension builds a numeric value measured in points.
func Dimension(points float64) Value {
	return Value{Kind: KindDimension, Dimension: points}
}

// IsClear reports whether the value paints nothing.
func (v Value) IsClear() bool {
	return v.Kind == KindClear
}

// PrimaryColor returns the color a single-color renderer should use:
// the color itself, or the first stop of a gradient. It is empty otherwise.
func (v Value) PrimaryColor() string {
	switch v.Kind {
	case KindColor:
		return v.Color
	case KindGradient:
		return v.Stops[0]
	default:
		return ""
	}
}

func (v Value) String() string {
	switch v.Kind {
	case KindClear:
		return "clear"
	case KindColor:
		return v.Color
	case KindGradient:
		return fmt.Sprintf("linear(%s, %s)", v.Stops[0], v.Stops[1])
	case KindDimension:
		return strconv.FormatFloat(v.Dimension, 'f', -1, 64) + "pt"
	default:
		return ""
	}
}

// IsHexColor reports whether value is a #RRGGBB or #RRGGBBAA literal.
func IsHexColor(value string) bool {
	return hexColorPattern.MatchString(value)
}
