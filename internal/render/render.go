// Package render paints resolved component styles into terminal output
// with lipgloss. It never re-derives state: every decision it makes comes
// from the resolved tokens it is given.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/swatch/internal/style"
	"github.com/alexisbeaulieu97/swatch/internal/token"
)

// StyleFunc applies one resolved field to a lipgloss style.
type StyleFunc func(lipgloss.Style, style.Resolved) lipgloss.Style

// Color converts a token value to a terminal color. Clear values and
// dimensions have no color; gradients use their first stop and alpha is
// dropped.
func Color(value token.Value) (lipgloss.Color, bool) {
	hex := value.PrimaryColor()
	if hex == "" {
		return "", false
	}
	if len(hex) > 7 {
		hex = hex[:7]
	}
	return lipgloss.Color(hex), true
}

// Background paints the resolved background.
func Background() StyleFunc {
	return func(base lipgloss.Style, resolved style.Resolved) lipgloss.Style {
		if c, ok := Color(resolved.Background.Value); ok {
			return base.Background(c)
		}
		return base
	}
}

// Foreground paints the resolved text color.
func Foreground() StyleFunc {
	return func(base lipgloss.Style, resolved style.Resolved) lipgloss.Style {
		if c, ok := Color(resolved.Text.Value); ok {
			return base.Foreground(c)
		}
		return base
	}
}

// Border draws a border matching the resolved width: none at zero,
// rounded at one point and thick from two points up.
func Border() StyleFunc {
	return func(base lipgloss.Style, resolved style.Resolved) lipgloss.Style {
		width := resolved.BorderWidth.Value.Dimension
		if width <= 0 {
			return base
		}

		border := lipgloss.RoundedBorder()
		if width >= 2 {
			border = lipgloss.ThickBorder()
		}
		base = base.Border(border)
		if c, ok := Color(resolved.Border.Value); ok {
			base = base.BorderForeground(c)
		}
		return base
	}
}

// Compose applies fns in order.
func Compose(base lipgloss.Style, resolved style.Resolved, fns ...StyleFunc) lipgloss.Style {
	for _, fn := range fns {
		base = fn(base, resolved)
	}
	return base
}

// Paint renders label with every resolved field applied. A hidden label
// (clear text) renders as blank space of the same width.
func Paint(label string, resolved style.Resolved) string {
	s := Compose(lipgloss.NewStyle().Padding(0, 1), resolved, Background(), Foreground(), Border())
	if resolved.Text.Value.IsClear() {
		label = strings.Repeat(" ", lipgloss.Width(label))
	}
	return s.Render(label)
}

// Swatch renders a two-cell block of value's color, or a placeholder for
// values without one.
func Swatch(value token.Value) string {
	c, ok := Color(value)
	if !ok {
		return "  "
	}
	return lipgloss.NewStyle().Background(c).Render("  ")
}

// Row joins blocks horizontally, top-aligned, separated by gap spaces.
func Row(gap int, blocks ...string) string {
	return join(lipgloss.JoinHorizontal, lipgloss.Top, gap, strings.Repeat(" ", max(gap, 0)), blocks)
}

// Column joins blocks vertically, left-aligned, separated by gap blank lines.
func Column(gap int, blocks ...string) string {
	return join(lipgloss.JoinVertical, lipgloss.Left, gap, strings.Repeat("\n", max(gap-1, 0)), blocks)
}

func join(fn func(lipgloss.Position, ...string) string, pos lipgloss.Position, gap int, spacer string, blocks []string) string {
	parts := make([]string, 0, len(blocks)*2)
	for _, block := range blocks {
		if block == "" {
			continue
		}
		if len(parts) > 0 && gap > 0 {
			parts = append(parts, spacer)
		}
		parts = append(parts, block)
	}
	if len(parts) == 0 {
		return ""
	}
	return fn(pos, parts...)
}
