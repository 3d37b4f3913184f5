package components

import (
	"github.com/alexisbeaulieu97/swatch/internal/style"
	"github.com/alexisbeaulieu97/swatch/internal/token"
)

// CalloutTone is the semantic meaning of a callout.
type CalloutTone int

const (
	CalloutNeutral CalloutTone = iota
	CalloutInfo
	CalloutSuccess
	CalloutWarning
	CalloutError
)

// CalloutTones lists every tone.
func CalloutTones() []CalloutTone {
	return []CalloutTone{CalloutNeutral, CalloutInfo, CalloutSuccess, CalloutWarning, CalloutError}
}

func (t CalloutTone) String() string {
	switch t {
	case CalloutNeutral:
		return "neutral"
	case CalloutInfo:
		return "info"
	case CalloutSuccess:
		return "success"
	case CalloutWarning:
		return "warning"
	case CalloutError:
		return "error"
	default:
		return "unknown"
	}
}

// glyph is the symbol shown at the leading edge of a callout.
func (t CalloutTone) glyph() string {
	switch t {
	case CalloutInfo:
		return "info.circle"
	case CalloutSuccess:
		return "checkmark.circle"
	case CalloutWarning:
		return "exclamationmark.triangle"
	case CalloutError:
		return "xmark.octagon"
	default:
		return "bell"
	}
}

// CalloutEmphasis selects between a tinted and a solid callout.
type CalloutEmphasis int

const (
	CalloutSubtle CalloutEmphasis = iota
	CalloutBold
)

// CalloutEmphases lists every emphasis.
func CalloutEmphases() []CalloutEmphasis {
	return []CalloutEmphasis{CalloutSubtle, CalloutBold}
}

func (e CalloutEmphasis) String() string {
	if e == CalloutBold {
		return "bold"
	}
	return "subtle"
}

// CalloutVariant is the (tone, emphasis) pair that selects a table row.
type CalloutVariant struct {
	Tone     CalloutTone
	Emphasis CalloutEmphasis
}

// CalloutVariants lists every tone and emphasis combination.
func CalloutVariants() []CalloutVariant {
	variants := make([]CalloutVariant, 0, len(CalloutTones())*len(CalloutEmphases()))
	for _, tone := range CalloutTones() {
		for _, emphasis := range CalloutEmphases() {
			variants = append(variants, CalloutVariant{Tone: tone, Emphasis: emphasis})
		}
	}
	return variants
}

func (v CalloutVariant) String() string {
	return v.Tone.String() + "/" + v.Emphasis.String()
}

// CalloutState is the state of a callout; focused applies while its action has keyboard focus.
type CalloutState int

const (
	CalloutDefault CalloutState = iota
	CalloutFocused
)

// CalloutStates lists every callout state.
func CalloutStates() []CalloutState {
	return []CalloutState{CalloutDefault, CalloutFocused}
}

// CalloutStateFromFlags collapses loose flags into a callout state.
func CalloutStateFromFlags(flags style.Flags) CalloutState {
	if flags.Category(style.Focused) == style.Focused {
		return CalloutFocused
	}
	return CalloutDefault
}

func (s CalloutState) category() style.Category {
	if s == CalloutFocused {
		return style.Focused
	}
	return style.Default
}

func (s CalloutState) String() string {
	return s.category().String()
}

// CalloutDescriptor configures one callout resolution.
type CalloutDescriptor struct {
	Variant CalloutVariant
	State   CalloutState
}

// CalloutStyle is the resolved style of a callout.
type CalloutStyle struct {
	style.Resolved
	Glyph string
}

// Describe flattens the style for display.
func (s CalloutStyle) Describe() []style.Field {
	return append(s.Resolved.Describe(), style.ValueField("glyph", s.Glyph))
}

type toneTokens struct {
	surface token.Name
	border  token.Name
	text    token.Name
	icon    token.Name
}

var calloutToneTokens = map[CalloutTone]toneTokens{
	CalloutNeutral: {surface: token.SurfaceColorSecondary, border: token.BorderColorSecondary, text: token.SurfaceColorInverse, icon: token.IconColorPrimary},
	CalloutInfo:    {surface: token.SurfaceColorInfo, border: token.BorderColorInfo, text: token.TextOnSurfaceColorInfo, icon: token.IconColorInfo},
	CalloutSuccess: {surface: token.SurfaceColorSuccess, border: token.BorderColorSuccess, text: token.TextOnSurfaceColorSuccess, icon: token.IconColorSuccess},
	CalloutWarning: {surface: token.SurfaceColorWarning, border: token.BorderColorWarning, text: token.TextOnSurfaceColorWarning, icon: token.IconColorWarning},
	CalloutError:   {surface: token.SurfaceColorError, border: token.BorderColorError, text: token.TextOnSurfaceColorError, icon: token.IconColorError},
}

// calloutRow derives a row from tone tokens. Bold callouts paint the
// tone's strong color as background and switch content to inverse.
func calloutRow(tone toneTokens, emphasis CalloutEmphasis) style.Row {
	base := entry(tone.surface, tone.border, token.BorderWidthDefault, token.TextOnSurfaceColorPrimary, tone.icon)
	if emphasis == CalloutBold {
		base = entry(tone.text, token.Clear, token.BorderWidthNone, token.TextOnSurfaceColorInverse, token.IconColorInverse)
	}

	focused := base
	focused.Border = token.BorderColorFocused
	focused.BorderWidth = token.BorderWidthSelected

	return style.Row{
		style.Default: base,
		style.Focused: focused,
	}
}

var calloutTable = func() style.Table[CalloutVariant] {
	table := make(style.Table[CalloutVariant], len(CalloutVariants()))
	for _, variant := range CalloutVariants() {
		table[variant] = calloutRow(calloutToneTokens[variant.Tone], variant.Emphasis)
	}
	return table
}()

// Callout resolves a callout descriptor for scheme.
func (r *Resolver) Callout(d CalloutDescriptor, scheme token.Scheme) CalloutStyle {
	return CalloutStyle{
		Resolved: style.Resolve(r.palette, calloutTable, d.Variant, d.State.category(), scheme),
		Glyph:    d.Variant.Tone.glyph(),
	}
}
