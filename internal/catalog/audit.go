package catalog

import (
	"fmt"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/swatch/internal/components"
	"github.com/alexisbeaulieu97/swatch/internal/token"
)

// DefaultMinContrast is the WCAG AA ratio for normal text.
const DefaultMinContrast = 4.5

// Severity ranks audit findings.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// MarshalText renders the severity by name in JSON and YAML output.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Finding is one audit result.
type Finding struct {
	Severity Severity `json:"severity" yaml:"severity"`
	Subject  string   `json:"subject" yaml:"subject"`
	Message  string   `json:"message" yaml:"message"`
	Ratio    float64  `json:"ratio,omitempty" yaml:"ratio,omitempty"`
}

// Report collects the findings of one audit.
type Report struct {
	Palette     string    `json:"palette" yaml:"palette"`
	MinContrast float64   `json:"minContrast" yaml:"minContrast"`
	Checked     int       `json:"checked" yaml:"checked"`
	Findings    []Finding `json:"findings" yaml:"findings"`
}

// Errors counts error findings.
func (r Report) Errors() int { return r.count(SeverityError) }

// Warnings counts warning findings.
func (r Report) Warnings() int { return r.count(SeverityWarning) }

// OK reports whether the audit found no errors.
func (r Report) OK() bool { return r.Errors() == 0 }

func (r Report) count(severity Severity) int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity == severity {
			n++
		}
	}
	return n
}

// Audit checks palette totality and text contrast. Missing tokens are
// errors and stop the audit before any resolution; contrast below
// minContrast is a warning. Disabled entries are not contrast-checked.
func Audit(palette *token.Palette, minContrast float64) Report {
	report := Report{Palette: palette.Name(), MinContrast: minContrast}

	missing := palette.Missing(components.ReferencedNames())
	for _, scheme := range token.Schemes() {
		for _, name := range missing[scheme] {
			report.Findings = append(report.Findings, Finding{
				Severity: SeverityError,
				Subject:  name.String() + "@" + scheme.String(),
				Message:  fmt.Sprintf("token %s is not defined for the %s scheme", name, scheme),
			})
		}
	}
	if len(report.Findings) > 0 {
		return report
	}

	for _, entry := range All(components.NewResolver(palette)) {
		if entry.disabled || !entry.contrast {
			continue
		}
		scheme, _ := token.ParseScheme(entry.Scheme)
		canvas := palette.MustLookup(token.SurfaceColorPrimary, scheme)

		ratio, ok := contrastRatio(entry.resolved.Text.Value, entry.resolved.Background.Value, canvas)
		if !ok {
			continue
		}
		report.Checked++
		if ratio < minContrast {
			report.Findings = append(report.Findings, Finding{
				Severity: SeverityWarning,
				Subject:  entry.Key(),
				Message: fmt.Sprintf("%s on %s has contrast %s, below %s",
					entry.resolved.Text.Token, entry.resolved.Background.Token,
					formatRatio(ratio), formatRatio(minContrast)),
				Ratio: ratio,
			})
		}
	}

	return report
}

func formatRatio(ratio float64) string {
	return strconv.FormatFloat(ratio, 'f', 2, 64) + ":1"
}

// contrastRatio measures foreground against background. A clear
// background shows the canvas; gradients are measured at their weakest
// stop. ok is false when the foreground is clear or not a color.
func contrastRatio(foreground, background, canvas token.Value) (float64, bool) {
	base, ok := opaque(canvas.PrimaryColor(), colorful.Color{R: 1, G: 1, B: 1})
	if !ok {
		return 0, false
	}

	fgHex := foreground.PrimaryColor()
	if foreground.IsClear() || fgHex == "" {
		return 0, false
	}

	var stops []string
	switch {
	case background.IsClear():
		stops = []string{canvas.PrimaryColor()}
	case background.Kind == token.KindGradient:
		stops = background.Stops[:]
	default:
		stops = []string{background.Color}
	}

	worst := 0.0
	for i, stop := range stops {
		bg, ok := opaque(stop, base)
		if !ok {
			return 0, false
		}
		fg, ok := opaque(fgHex, bg)
		if !ok {
			return 0, false
		}
		ratio := wcagContrast(fg, bg)
		if i == 0 || ratio < worst {
			worst = ratio
		}
	}
	return worst, true
}

// opaque parses #RRGGBB or #RRGGBBAA, compositing translucent colors over under.
func opaque(hex string, under colorful.Color) (colorful.Color, bool) {
	if !token.IsHexColor(hex) {
		return colorful.Color{}, false
	}
	c, err := colorful.Hex(hex[:7])
	if err != nil {
		return colorful.Color{}, false
	}
	if len(hex) == 9 {
		alpha, err := strconv.ParseUint(hex[7:], 16, 8)
		if err != nil {
			return colorful.Color{}, false
		}
		c = under.BlendRgb(c, float64(alpha)/255)
	}
	return c, true
}

func luminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func wcagContrast(a, b colorful.Color) float64 {
	la, lb := luminance(a), luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}
