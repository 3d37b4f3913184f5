package token

// Name identifies a design token. The zero value is unset and never resolves.
type Name int

const (
	Unset Name = iota

	Clear

	SurfaceColorPrimary
	SurfaceColorSecondary
	SurfaceColorInverse
	SurfaceColorBrand
	SurfaceColorBrandGradient
	SurfaceColorBlack5
	SurfaceColorBlack10
	SurfaceColorDisabled
	SurfaceColorOverlay
	SurfaceColorInfo
	SurfaceColorSuccess
	SurfaceColorWarning
	SurfaceColorError

	TextOnSurfaceColorPrimary
	TextOnSurfaceColorSecondary
	TextOnSurfaceColorDisabled
	TextOnSurfaceColorInverse
	TextOnSurfaceColorBrand
	TextOnSurfaceColorInfo
	TextOnSurfaceColorSuccess
	TextOnSurfaceColorWarning
	TextOnSurfaceColorError

	BorderColorPrimary
	BorderColorSecondary
	BorderColorSelected
	BorderColorFocused
	BorderColorDisabled
	BorderColorInfo
	BorderColorSuccess
	BorderColorWarning
	BorderColorError

	IconColorPrimary
	IconColorSecondary
	IconColorDisabled
	IconColorInverse
	IconColorBrand
	IconColorInfo
	IconColorSuccess
	IconColorWarning
	IconColorError

	BorderWidthNone
	BorderWidthDefault
	BorderWidthSelected

	CornerRadiusSmall
	CornerRadiusMedium
	CornerRadiusLarge
	CornerRadiusPill

	HeightButtonSmall
	HeightButtonMedium
	HeightButtonLarge

	nameCount
)

var nameStrings = [nameCount]string{
	Unset: "",
	Clear: "clear",

	SurfaceColorPrimary:       "surfaceColorPrimary",
	SurfaceColorSecondary:     "surfaceColorSecondary",
	SurfaceColorInverse:       "surfaceColorInverse",
	SurfaceColorBrand:         "surfaceColorBrand",
	SurfaceColorBrandGradient: "surfaceColorBrandGradient",
	SurfaceColorBlack5:        "surfaceColorBlack5",
	SurfaceColorBlack10:       "surfaceColorBlack10",
	SurfaceColorDisabled:      "surfaceColorDisabled",
	SurfaceColorOverlay:       "surfaceColorOverlay",
	SurfaceColorInfo:          "surfaceColorInfo",
	SurfaceColorSuccess:       "surfaceColorSuccess",
	SurfaceColorWarning:       "surfaceColorWarning",
	SurfaceColorError:         "surfaceColorError",

	TextOnSurfaceColorPrimary:   "textOnSurfaceColorPrimary",
	TextOnSurfaceColorSecondary: "textOnSurfaceColorSecondary",
	TextOnSurfaceColorDisabled:  "textOnSurfaceColorDisabled",
	TextOnSurfaceColorInverse:   "textOnSurfaceColorInverse",
	TextOnSurfaceColorBrand:     "textOnSurfaceColorBrand",
	TextOnSurfaceColorInfo:      "textOnSurfaceColorInfo",
	TextOnSurfaceColorSuccess:   "textOnSurfaceColorSuccess",
	TextOnSurfaceColorWarning:   "textOnSurfaceColorWarning",
	TextOnSurfaceColorError:     "textOnSurfaceColorError",

	BorderColorPrimary:   "borderColorPrimary",
	BorderColorSecondary: "borderColorSecondary",
	BorderColorSelected:  "borderColorSelected",
	BorderColorFocused:   "borderColorFocused",
	BorderColorDisabled:  "borderColorDisabled",
	BorderColorInfo:      "borderColorInfo",
	BorderColorSuccess:   "borderColorSuccess",
	BorderColorWarning:   "borderColorWarning",
	BorderColorError:     "borderColorError",

	IconColorPrimary:   "iconColorPrimary",
	IconColorSecondary: "iconColorSecondary",
	IconColorDisabled:  "iconColorDisabled",
	IconColorInverse:   "iconColorInverse",
	IconColorBrand:     "iconColorBrand",
	IconColorInfo:      "iconColorInfo",
	IconColorSuccess:   "iconColorSuccess",
	IconColorWarning:   "iconColorWarning",
	IconColorError:     "iconColorError",

	BorderWidthNone:     "borderWidthNone",
	BorderWidthDefault:  "borderWidthDefault",
	BorderWidthSelected: "borderWidthSelected",

	CornerRadiusSmall:  "cornerRadiusSmall",
	CornerRadiusMedium: "cornerRadiusMedium",
	CornerRadiusLarge:  "cornerRadiusLarge",
	CornerRadiusPill:   "cornerRadiusPill",

	HeightButtonSmall:  "heightButtonSmall",
	HeightButtonMedium: "heightButtonMedium",
	HeightButtonLarge:  "heightButtonLarge",
}

var nameLookup = func() map[string]Name {
	lookup := make(map[string]Name, nameCount)
	for n := Clear; n < nameCount; n++ {
		lookup[nameStrings[n]] = n
	}
	return lookup
}()

// String returns the canonical camelCase token name.
func (n Name) String() string {
	if n < 0 || n >= nameCount {
		return ""
	}
	return nameStrings[n]
}

// Valid reports whether n is one of the declared token names.
func (n Name) Valid() bool {
	return n > Unset && n < nameCount
}

// ParseName maps a canonical token name back to its Name.
func ParseName(value string) (Name, bool) {
	n, ok := nameLookup[value]
	return n, ok
}

// Names lists every declared token name in declaration order.
func Names() []Name {
	names := make([]Name, 0, nameCount-1)
	for n := Clear; n < nameCount; n++ {
		names = append(names, n)
	}
	return names
}

// IsDimension reports whether n measures a size in points rather than
// painting a color.
func (n Name) IsDimension() bool {
	return n >= BorderWidthNone && n <= HeightButtonLarge
}

// Accepts reports whether a value of kind k may be stored under n.
func (n Name) Accepts(k Kind) bool {
	if n.IsDimension() {
		return k == KindDimension
	}
	return k != KindDimension
}
