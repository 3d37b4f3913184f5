package components

import (
	"strconv"

	"github.com/alexisbeaulieu97/swatch/internal/style"
	"github.com/alexisbeaulieu97/swatch/internal/token"
)

// entry builds a table entry in field order: background, border, border width, text, icon.
func entry(background, border, width, text, icon token.Name) style.Tokens {
	return style.Tokens{
		Background:  background,
		Border:      border,
		BorderWidth: width,
		Text:        text,
		Icon:        icon,
	}
}

// Shared entries reused across families.
var (
	disabledFilled  = entry(token.SurfaceColorDisabled, token.Clear, token.BorderWidthNone, token.TextOnSurfaceColorDisabled, token.IconColorDisabled)
	disabledOutline = entry(token.Clear, token.BorderColorDisabled, token.BorderWidthDefault, token.TextOnSurfaceColorDisabled, token.IconColorDisabled)
	disabledGhost   = entry(token.Clear, token.Clear, token.BorderWidthNone, token.TextOnSurfaceColorDisabled, token.IconColorDisabled)

	// invertedSelection paints the primary text color as background with contrasting text.
	invertedSelection = entry(token.TextOnSurfaceColorPrimary, token.Clear, token.BorderWidthNone, token.SurfaceColorPrimary, token.IconColorInverse)
)

func boolString(value bool) string {
	return strconv.FormatBool(value)
}

func itoa(value int) string {
	return strconv.Itoa(value)
}
