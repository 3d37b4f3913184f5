package components

import (
	"github.com/alexisbeaulieu97/swatch/internal/style"
	"github.com/alexisbeaulieu97/swatch/internal/token"
)

// AccordionVariant selects the visual treatment of an accordion section.
type AccordionVariant int

const (
	AccordionPlain AccordionVariant = iota
	AccordionContained
)

// AccordionVariants lists every accordion variant.
func AccordionVariants() []AccordionVariant {
	return []AccordionVariant{AccordionPlain, AccordionContained}
}

func (v AccordionVariant) String() string {
	switch v {
	case AccordionPlain:
		return "plain"
	case AccordionContained:
		return "contained"
	default:
		return "unknown"
	}
}

// AccordionState is the state of an accordion section.
type AccordionState int

const (
	AccordionCollapsed AccordionState = iota
	AccordionExpanded
	AccordionDisabled
)

// AccordionStates lists every accordion state.
func AccordionStates() []AccordionState {
	return []AccordionState{AccordionCollapsed, AccordionExpanded, AccordionDisabled}
}

// AccordionStateFromFlags treats the selected flag as expanded.
func AccordionStateFromFlags(flags style.Flags) AccordionState {
	switch flags.Category(style.Disabled, style.Selected) {
	case style.Disabled:
		return AccordionDisabled
	case style.Selected:
		return AccordionExpanded
	default:
		return AccordionCollapsed
	}
}

func (s AccordionState) category() style.Category {
	switch s {
	case AccordionExpanded:
		return style.Selected
	case AccordionDisabled:
		return style.Disabled
	default:
		return style.Default
	}
}

func (s AccordionState) String() string {
	switch s {
	case AccordionExpanded:
		return "expanded"
	case AccordionDisabled:
		return "disabled"
	default:
		return "collapsed"
	}
}

// AccordionDescriptor configures one accordion resolution.
type AccordionDescriptor struct {
	Variant AccordionVariant
	State   AccordionState
}

// AccordionStyle is the resolved style of an accordion section header.
// Icon is the chevron tint.
type AccordionStyle struct {
	style.Resolved
	ChevronRotation int
	ShowsContent    bool
}

// Describe flattens the style for display.
func (s AccordionStyle) Describe() []style.Field {
	return append(s.Resolved.Describe(),
		style.ValueField("chevronRotation", itoa(s.ChevronRotation)),
		style.ValueField("showsContent", boolString(s.ShowsContent)),
	)
}

var accordionTable = style.Table[AccordionVariant]{
	AccordionPlain: {
		style.Default:  entry(token.Clear, token.BorderColorSecondary, token.BorderWidthDefault, token.TextOnSurfaceColorPrimary, token.IconColorSecondary),
		style.Selected: entry(token.Clear, token.BorderColorSecondary, token.BorderWidthDefault, token.TextOnSurfaceColorPrimary, token.IconColorPrimary),
		style.Disabled: disabledOutline,
	},
	AccordionContained: {
		style.Default:  entry(token.SurfaceColorSecondary, token.Clear, token.BorderWidthNone, token.TextOnSurfaceColorPrimary, token.IconColorSecondary),
		style.Selected: entry(token.SurfaceColorPrimary, token.BorderColorPrimary, token.BorderWidthDefault, token.TextOnSurfaceColorPrimary, token.IconColorPrimary),
		style.Disabled: disabledFilled,
	},
}

// Accordion resolves an accordion descriptor for scheme.
func (r *Resolver) Accordion(d AccordionDescriptor, scheme token.Scheme) AccordionStyle {
	expanded := d.State == AccordionExpanded
	rotation := 0
	if expanded {
		rotation = 180
	}

	return AccordionStyle{
		Resolved:        style.Resolve(r.palette, accordionTable, d.Variant, d.State.category(), scheme),
		ChevronRotation: rotation,
		ShowsContent:    expanded,
	}
}
