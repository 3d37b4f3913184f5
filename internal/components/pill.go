package components

import (
	"github.com/alexisbeaulieu97/swatch/internal/style"
	"github.com/alexisbeaulieu97/swatch/internal/token"
)

// PillVariant selects the visual treatment of a pill.
type PillVariant int

const (
	PillOutlined PillVariant = iota
	PillFilled
)

// PillVariants lists every pill variant.
func PillVariants() []PillVariant {
	return []PillVariant{PillOutlined, PillFilled}
}

func (v PillVariant) String() string {
	switch v {
	case PillOutlined:
		return "outlined"
	case PillFilled:
		return "filled"
	default:
		return "unknown"
	}
}

// SelectionState is the state of selectable families (Pill, Tile,
// ContentCard, MiniProductCard).
type SelectionState int

const (
	SelectionDefault SelectionState = iota
	SelectionSelected
	SelectionDisabled
)

// SelectionStates lists every selection state.
func SelectionStates() []SelectionState {
	return []SelectionState{SelectionDefault, SelectionSelected, SelectionDisabled}
}

// SelectionStateFromFlags collapses loose flags into a selection state.
func SelectionStateFromFlags(flags style.Flags) SelectionState {
	switch flags.Category(style.Disabled, style.Selected) {
	case style.Disabled:
		return SelectionDisabled
	case style.Selected:
		return SelectionSelected
	default:
		return SelectionDefault
	}
}

func (s SelectionState) category() style.Category {
	switch s {
	case SelectionSelected:
		return style.Selected
	case SelectionDisabled:
		return style.Disabled
	default:
		return style.Default
	}
}

func (s SelectionState) String() string {
	return s.category().String()
}

// PillDescriptor configures one pill resolution. HasBackground only
// affects the outlined variant.
type PillDescriptor struct {
	Variant       PillVariant
	State         SelectionState
	HasBackground bool
}

// PillStyle is the resolved style of a pill.
type PillStyle struct {
	style.Resolved
	CornerRadius   style.Ref
	ShowsCheckmark bool
}

// Describe flattens the style for display.
func (s PillStyle) Describe() []style.Field {
	return append(s.Resolved.Describe(),
		style.RefField("cornerRadius", s.CornerRadius),
		style.ValueField("showsCheckmark", boolString(s.ShowsCheckmark)),
	)
}

var pillTable = style.Table[PillVariant]{
	PillOutlined: {
		style.Default:  entry(token.Clear, token.BorderColorSecondary, token.BorderWidthDefault, token.TextOnSurfaceColorPrimary, token.IconColorPrimary),
		style.Selected: entry(token.Clear, token.BorderColorSelected, token.BorderWidthSelected, token.TextOnSurfaceColorPrimary, token.IconColorPrimary),
		style.Disabled: disabledOutline,
	},
	PillFilled: {
		style.Default:  entry(token.SurfaceColorBlack5, token.Clear, token.BorderWidthNone, token.TextOnSurfaceColorPrimary, token.IconColorPrimary),
		style.Selected: invertedSelection,
		style.Disabled: disabledFilled,
	},
}

// Pill resolves a pill descriptor for scheme.
func (r *Resolver) Pill(d PillDescriptor, scheme token.Scheme) PillStyle {
	tokens := pillTable.Lookup(d.Variant, d.State.category())
	if d.Variant == PillOutlined && d.HasBackground {
		tokens.Background = token.SurfaceColorPrimary
	}

	return PillStyle{
		Resolved:       style.ResolveTokens(r.palette, tokens, scheme),
		CornerRadius:   r.ref(token.CornerRadiusPill, scheme),
		ShowsCheckmark: d.State == SelectionSelected,
	}
}
