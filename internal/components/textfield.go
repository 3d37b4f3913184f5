package components

import (
	"github.com/alexisbeaulieu97/swatch/internal/style"
	"github.com/alexisbeaulieu97/swatch/internal/token"
)

// TextFieldVariant selects the visual treatment of a text input field.
type TextFieldVariant int

const (
	TextFieldOutlined TextFieldVariant = iota
	TextFieldFilled
)

// TextFieldVariants lists every text field variant.
func TextFieldVariants() []TextFieldVariant {
	return []TextFieldVariant{TextFieldOutlined, TextFieldFilled}
}

func (v TextFieldVariant) String() string {
	switch v {
	case TextFieldOutlined:
		return "outlined"
	case TextFieldFilled:
		return "filled"
	default:
		return "unknown"
	}
}

// TextFieldState is the state of a text field. Only the error state
// carries a message; build values with the TextField* constructors.
type TextFieldState struct {
	category style.Category
	message  string
}

// TextFieldDefault is the idle state.
func TextFieldDefault() TextFieldState { return TextFieldState{category: style.Default} }

// TextFieldFocused is the state while the field has input focus.
func TextFieldFocused() TextFieldState { return TextFieldState{category: style.Focused} }

// TextFieldSuccess is the state after the value passed validation.
func TextFieldSuccess() TextFieldState { return TextFieldState{category: style.Success} }

// TextFieldDisabled is the non-interactive state.
func TextFieldDisabled() TextFieldState { return TextFieldState{category: style.Disabled} }

// TextFieldError is the validation failure state with its message.
func TextFieldError(message string) TextFieldState {
	return TextFieldState{category: style.Error, message: message}
}

// TextFieldStates lists one value per state kind, with an empty error message.
func TextFieldStates() []TextFieldState {
	return []TextFieldState{
		TextFieldDefault(),
		TextFieldFocused(),
		TextFieldError(""),
		TextFieldSuccess(),
		TextFieldDisabled(),
	}
}

// TextFieldStateFromFlags collapses loose flags into a text field state;
// message is used only when the error flag wins.
func TextFieldStateFromFlags(flags style.Flags, message string) TextFieldState {
	switch flags.Category(style.Disabled, style.Error, style.Success, style.Focused) {
	case style.Disabled:
		return TextFieldDisabled()
	case style.Error:
		return TextFieldError(message)
	case style.Success:
		return TextFieldSuccess()
	case style.Focused:
		return TextFieldFocused()
	default:
		return TextFieldDefault()
	}
}

// Message returns the error message, empty for other states.
func (s TextFieldState) Message() string { return s.message }

// Category exposes the state's precedence category.
func (s TextFieldState) Category() style.Category { return s.category }

func (s TextFieldState) String() string {
	return s.category.String()
}

// TextFieldDescriptor configures one text field resolution.
type TextFieldDescriptor struct {
	Variant TextFieldVariant
	State   TextFieldState
	Hint    string
}

// TextFieldStyle is the resolved style of a text input field.
// Icon tints the trailing status glyph.
type TextFieldStyle struct {
	style.Resolved
	CornerRadius     style.Ref
	HelperText       string
	HelperColor      style.Ref
	PlaceholderColor style.Ref
	StatusGlyph      string
	Editable         bool
}

// Describe flattens the style for display.
func (s TextFieldStyle) Describe() []style.Field {
	return append(s.Resolved.Describe(),
		style.RefField("cornerRadius", s.CornerRadius),
		style.ValueField("helperText", s.HelperText),
		style.RefField("helperColor", s.HelperColor),
		style.RefField("placeholderColor", s.PlaceholderColor),
		style.ValueField("statusGlyph", s.StatusGlyph),
		style.ValueField("editable", boolString(s.Editable)),
	)
}

var textFieldTable = style.Table[TextFieldVariant]{
	TextFieldOutlined: {
		style.Default:  entry(token.SurfaceColorPrimary, token.BorderColorSecondary, token.BorderWidthDefault, token.TextOnSurfaceColorPrimary, token.IconColorSecondary),
		style.Focused:  entry(token.SurfaceColorPrimary, token.BorderColorFocused, token.BorderWidthSelected, token.TextOnSurfaceColorPrimary, token.IconColorPrimary),
		style.Error:    entry(token.SurfaceColorPrimary, token.BorderColorError, token.BorderWidthSelected, token.TextOnSurfaceColorPrimary, token.IconColorError),
		style.Success:  entry(token.SurfaceColorPrimary, token.BorderColorSuccess, token.BorderWidthDefault, token.TextOnSurfaceColorPrimary, token.IconColorSuccess),
		style.Disabled: entry(token.SurfaceColorDisabled, token.BorderColorDisabled, token.BorderWidthDefault, token.TextOnSurfaceColorDisabled, token.IconColorDisabled),
	},
	TextFieldFilled: {
		style.Default:  entry(token.SurfaceColorBlack5, token.Clear, token.BorderWidthNone, token.TextOnSurfaceColorPrimary, token.IconColorSecondary),
		style.Focused:  entry(token.SurfaceColorBlack5, token.BorderColorFocused, token.BorderWidthDefault, token.TextOnSurfaceColorPrimary, token.IconColorPrimary),
		style.Error:    entry(token.SurfaceColorError, token.BorderColorError, token.BorderWidthDefault, token.TextOnSurfaceColorPrimary, token.IconColorError),
		style.Success:  entry(token.SurfaceColorSuccess, token.BorderColorSuccess, token.BorderWidthDefault, token.TextOnSurfaceColorPrimary, token.IconColorSuccess),
		style.Disabled: disabledFilled,
	},
}

func helperColor(category style.Category) token.Name {
	switch category {
	case style.Error:
		return token.TextOnSurfaceColorError
	case style.Success:
		return token.TextOnSurfaceColorSuccess
	case style.Disabled:
		return token.TextOnSurfaceColorDisabled
	default:
		return token.TextOnSurfaceColorSecondary
	}
}

func statusGlyph(category style.Category) string {
	switch category {
	case style.Error:
		return "exclamationmark.circle"
	case style.Success:
		return "checkmark.circle"
	default:
		return ""
	}
}

// TextField resolves a text field descriptor for scheme. An error
// message replaces the hint as helper text.
func (r *Resolver) TextField(d TextFieldDescriptor, scheme token.Scheme) TextFieldStyle {
	category := d.State.category

	helper := d.Hint
	if category == style.Error && d.State.message != "" {
		helper = d.State.message
	}

	placeholder := token.TextOnSurfaceColorSecondary
	if category == style.Disabled {
		placeholder = token.TextOnSurfaceColorDisabled
	}

	return TextFieldStyle{
		Resolved:         style.Resolve(r.palette, textFieldTable, d.Variant, category, scheme),
		CornerRadius:     r.ref(token.CornerRadiusSmall, scheme),
		HelperText:       helper,
		HelperColor:      r.ref(helperColor(category), scheme),
		PlaceholderColor: r.ref(placeholder, scheme),
		StatusGlyph:      statusGlyph(category),
		Editable:         category != style.Disabled,
	}
}
