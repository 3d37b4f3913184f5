package token

import "strings"

// Scheme selects the light or dark partition of a palette.
type Scheme int

const (
	Light Scheme = iota
	Dark
)

// Schemes lists every color scheme in a stable order.
func Schemes() []Scheme {
	return []Scheme{Light, Dark}
}

func (s Scheme) String() string {
	switch s {
	case Light:
		return "light"
	case Dark:
		return "dark"
	default:
		return "unknown"
	}
}

// ParseScheme maps "light" or "dark" (case-insensitive) to a Scheme.
func ParseScheme(value string) (Scheme, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "light":
		return Light, true
	case "dark":
		return Dark, true
	default:
		return Light, false
	}
}
