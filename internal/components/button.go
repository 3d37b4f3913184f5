package components

import (
	"github.com/alexisbeaulieu97/swatch/internal/style"
	"github.com/alexisbeaulieu97/swatch/internal/token"
)

// ButtonVariant selects the visual treatment of a button.
type ButtonVariant int

const (
	ButtonOrangeFilled ButtonVariant = iota
	ButtonGradientFilled
	ButtonOutlined
	ButtonWhiteFilled
	ButtonBlack5
	ButtonBlack10
	ButtonGhost
)

// ButtonVariants lists every button variant.
func ButtonVariants() []ButtonVariant {
	return []ButtonVariant{ButtonOrangeFilled, ButtonGradientFilled, ButtonOutlined, ButtonWhiteFilled, ButtonBlack5, ButtonBlack10, ButtonGhost}
}

func (v ButtonVariant) String() string {
	switch v {
	case ButtonOrangeFilled:
		return "orangeFilled"
	case ButtonGradientFilled:
		return "gradientFilled"
	case ButtonOutlined:
		return "outlined"
	case ButtonWhiteFilled:
		return "whiteFilled"
	case ButtonBlack5:
		return "black5"
	case ButtonBlack10:
		return "black10"
	case ButtonGhost:
		return "ghost"
	default:
		return "unknown"
	}
}

// ButtonState is the interaction state of a button.
type ButtonState int

const (
	ButtonDefault ButtonState = iota
	ButtonLoading
	ButtonDisabled
)

// ButtonStates lists every button state.
func ButtonStates() []ButtonState {
	return []ButtonState{ButtonDefault, ButtonLoading, ButtonDisabled}
}

// ButtonStateFromFlags collapses loose flags into a button state.
func ButtonStateFromFlags(flags style.Flags) ButtonState {
	switch flags.Category(style.Disabled, style.Loading) {
	case style.Disabled:
		return ButtonDisabled
	case style.Loading:
		return ButtonLoading
	default:
		return ButtonDefault
	}
}

func (s ButtonState) category() style.Category {
	switch s {
	case ButtonLoading:
		return style.Loading
	case ButtonDisabled:
		return style.Disabled
	default:
		return style.Default
	}
}

func (s ButtonState) String() string {
	return s.category().String()
}

// ButtonSize selects the button height.
type ButtonSize int

const (
	ButtonSizeMedium ButtonSize = iota
	ButtonSizeSmall
	ButtonSizeLarge
)

// ButtonSizes lists every button size.
func ButtonSizes() []ButtonSize {
	return []ButtonSize{ButtonSizeSmall, ButtonSizeMedium, ButtonSizeLarge}
}

func (s ButtonSize) String() string {
	switch s {
	case ButtonSizeSmall:
		return "small"
	case ButtonSizeLarge:
		return "large"
	default:
		return "medium"
	}
}

func (s ButtonSize) height() token.Name {
	switch s {
	case ButtonSizeSmall:
		return token.HeightButtonSmall
	case ButtonSizeLarge:
		return token.HeightButtonLarge
	default:
		return token.HeightButtonMedium
	}
}

// ButtonDescriptor configures one button resolution.
type ButtonDescriptor struct {
	Variant   ButtonVariant
	State     ButtonState
	Size      ButtonSize
	FullWidth bool
}

// ButtonStyle is the resolved style of a button.
type ButtonStyle struct {
	style.Resolved
	Height       style.Ref
	CornerRadius style.Ref
	ShowsSpinner bool
	Interactive  bool
	FullWidth    bool
}

// Describe flattens the style for display.
func (s ButtonStyle) Describe() []style.Field {
	return append(s.Resolved.Describe(),
		style.RefField("height", s.Height),
		style.RefField("cornerRadius", s.CornerRadius),
		style.ValueField("showsSpinner", boolString(s.ShowsSpinner)),
		style.ValueField("interactive", boolString(s.Interactive)),
		style.ValueField("fullWidth", boolString(s.FullWidth)),
	)
}

// buttonLoading keeps the variant colors, hides the label and tints the
// spinner with the label color.
func buttonLoading(base style.Tokens) style.Tokens {
	base.Icon = base.Text
	base.Text = token.Clear
	return base
}

func buttonRow(base, disabled style.Tokens) style.Row {
	return style.Row{
		style.Default:  base,
		style.Loading:  buttonLoading(base),
		style.Disabled: disabled,
	}
}

var buttonTable = style.Table[ButtonVariant]{
	ButtonOrangeFilled: buttonRow(
		entry(token.SurfaceColorBrand, token.Clear, token.BorderWidthNone, token.TextOnSurfaceColorInverse, token.IconColorInverse),
		disabledFilled,
	),
	ButtonGradientFilled: buttonRow(
		entry(token.SurfaceColorBrandGradient, token.Clear, token.BorderWidthNone, token.TextOnSurfaceColorInverse, token.IconColorInverse),
		disabledFilled,
	),
	ButtonOutlined: buttonRow(
		entry(token.Clear, token.BorderColorPrimary, token.BorderWidthDefault, token.TextOnSurfaceColorPrimary, token.IconColorPrimary),
		disabledOutline,
	),
	ButtonWhiteFilled: buttonRow(
		entry(token.SurfaceColorPrimary, token.Clear, token.BorderWidthNone, token.TextOnSurfaceColorPrimary, token.IconColorPrimary),
		disabledFilled,
	),
	ButtonBlack5: buttonRow(
		entry(token.SurfaceColorBlack5, token.Clear, token.BorderWidthNone, token.TextOnSurfaceColorPrimary, token.IconColorPrimary),
		disabledFilled,
	),
	ButtonBlack10: buttonRow(
		entry(token.SurfaceColorBlack10, token.Clear, token.BorderWidthNone, token.TextOnSurfaceColorPrimary, token.IconColorPrimary),
		disabledFilled,
	),
	ButtonGhost: buttonRow(
		entry(token.Clear, token.Clear, token.BorderWidthNone, token.TextOnSurfaceColorPrimary, token.IconColorPrimary),
		disabledGhost,
	),
}

// Button resolves a button descriptor for scheme.
func (r *Resolver) Button(d ButtonDescriptor, scheme token.Scheme) ButtonStyle {
	return ButtonStyle{
		Resolved:     style.Resolve(r.palette, buttonTable, d.Variant, d.State.category(), scheme),
		Height:       r.ref(d.Size.height(), scheme),
		CornerRadius: r.ref(token.CornerRadiusMedium, scheme),
		ShowsSpinner: d.State == ButtonLoading,
		Interactive:  d.State == ButtonDefault,
		FullWidth:    d.FullWidth,
	}
}
