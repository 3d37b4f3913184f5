package components

import (
	"golang.org/x/text/message"

	"github.com/alexisbeaulieu97/swatch/internal/style"
	"github.com/alexisbeaulieu97/swatch/internal/token"
)

// GalleryVariant selects indicator colors for light or dark media behind them.
type GalleryVariant int

const (
	GalleryLight GalleryVariant = iota
	GalleryDark
)

// GalleryVariants lists every gallery variant.
func GalleryVariants() []GalleryVariant {
	return []GalleryVariant{GalleryLight, GalleryDark}
}

func (v GalleryVariant) String() string {
	switch v {
	case GalleryLight:
		return "light"
	case GalleryDark:
		return "dark"
	default:
		return "unknown"
	}
}

// IndicatorState is the state of one page indicator.
type IndicatorState int

const (
	IndicatorDefault IndicatorState = iota
	IndicatorSelected
)

// IndicatorStates lists every indicator state.
func IndicatorStates() []IndicatorState {
	return []IndicatorState{IndicatorDefault, IndicatorSelected}
}

// IndicatorStateFromFlags collapses loose flags into an indicator state.
func IndicatorStateFromFlags(flags style.Flags) IndicatorState {
	if flags.Category(style.Selected) == style.Selected {
		return IndicatorSelected
	}
	return IndicatorDefault
}

func (s IndicatorState) category() style.Category {
	if s == IndicatorSelected {
		return style.Selected
	}
	return style.Default
}

func (s IndicatorState) String() string {
	return s.category().String()
}

// GalleryDescriptor configures one gallery resolution.
type GalleryDescriptor struct {
	Variant       GalleryVariant
	PageCount     int
	SelectedIndex int
}

// GalleryStyle is the resolved style of a gallery's page indicators.
// Background is the indicator dot; Text is the page label.
type GalleryStyle struct {
	Indicator       style.Resolved
	ActiveIndicator style.Resolved
	PageCount       int
	SelectedIndex   int
	PageLabel       string
	ShowsIndicators bool
}

// IndicatorAt returns the style of the indicator at index.
func (s GalleryStyle) IndicatorAt(index int) style.Resolved {
	if index == s.SelectedIndex && s.PageCount > 0 {
		return s.ActiveIndicator
	}
	return s.Indicator
}

// Describe flattens the style for display.
func (s GalleryStyle) Describe() []style.Field {
	fields := append(s.Indicator.DescribeAs("indicator"), s.ActiveIndicator.DescribeAs("activeIndicator")...)
	return append(fields,
		style.ValueField("selectedIndex", itoa(s.SelectedIndex)),
		style.ValueField("pageLabel", s.PageLabel),
		style.ValueField("showsIndicators", boolString(s.ShowsIndicators)),
	)
}

var galleryTable = style.Table[GalleryVariant]{
	GalleryLight: {
		style.Default:  entry(token.BorderColorSecondary, token.Clear, token.BorderWidthNone, token.TextOnSurfaceColorSecondary, token.IconColorPrimary),
		style.Selected: entry(token.TextOnSurfaceColorPrimary, token.Clear, token.BorderWidthNone, token.TextOnSurfaceColorPrimary, token.IconColorPrimary),
	},
	GalleryDark: {
		style.Default:  entry(token.SurfaceColorOverlay, token.Clear, token.BorderWidthNone, token.TextOnSurfaceColorInverse, token.IconColorInverse),
		style.Selected: entry(token.SurfaceColorPrimary, token.Clear, token.BorderWidthNone, token.TextOnSurfaceColorInverse, token.IconColorInverse),
	},
}

// Gallery resolves a gallery descriptor for scheme. The selected index
// is clamped into the page range; an empty gallery selects index 0 and
// has no label.
func (r *Resolver) Gallery(d GalleryDescriptor, scheme token.Scheme) GalleryStyle {
	pages := max(d.PageCount, 0)
	index := 0
	if pages > 0 {
		index = min(max(d.SelectedIndex, 0), pages-1)
	}

	label := ""
	if pages > 0 {
		label = message.NewPrinter(r.format.Language).Sprintf("%d / %d", index+1, pages)
	}

	return GalleryStyle{
		Indicator:       style.Resolve(r.palette, galleryTable, d.Variant, IndicatorDefault.category(), scheme),
		ActiveIndicator: style.Resolve(r.palette, galleryTable, d.Variant, IndicatorSelected.category(), scheme),
		PageCount:       pages,
		SelectedIndex:   index,
		PageLabel:       label,
		ShowsIndicators: pages > 1,
	}
}
