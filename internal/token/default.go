package token

// DefaultPaletteName is the name of the built-in reference palette.
const DefaultPaletteName = "default"

type pair struct {
	light Value
	dark  Value
}

func colors(light, dark string) pair {
	return pair{light: Color(light), dark: Color(dark)}
}

func same(value Value) pair {
	return pair{light: value, dark: value}
}

var defaultPairs = map[Name]pair{
	Clear: same(ClearValue()),

	SurfaceColorPrimary:   colors("#FFFFFF", "#000000"),
	SurfaceColorSecondary: colors("#F5F5F5", "#1C1C1E"),
	SurfaceColorInverse:   colors("#111111", "#F5F5F5"),
	SurfaceColorBrand:     colors("#E65C00", "#FF7A1A"),
	SurfaceColorBrandGradient: {
		light: Gradient("#E65C00", "#D4145A"),
		dark:  Gradient("#FF7A1A", "#F0337F"),
	},
	SurfaceColorBlack5:   colors("#F2F2F2", "#0D0D0D"),
	SurfaceColorBlack10:  colors("#E6E6E6", "#1A1A1A"),
	SurfaceColorDisabled: colors("#EDEDED", "#2A2A2A"),
	SurfaceColorOverlay:  colors("#00000099", "#FFFFFF99"),
	SurfaceColorInfo:     colors("#E8F1FD", "#0D2540"),
	SurfaceColorSuccess:  colors("#E7F6EC", "#0E2E1A"),
	SurfaceColorWarning:  colors("#FFF4E0", "#33250A"),
	SurfaceColorError:    colors("#FDECEC", "#3A1212"),

	TextOnSurfaceColorPrimary:   colors("#111111", "#F5F5F5"),
	TextOnSurfaceColorSecondary: colors("#5C5C5C", "#A3A3A3"),
	TextOnSurfaceColorDisabled:  colors("#A8A8A8", "#5C5C5C"),
	TextOnSurfaceColorInverse:   colors("#FFFFFF", "#000000"),
	TextOnSurfaceColorBrand:     colors("#B84A00", "#FF8A33"),
	TextOnSurfaceColorInfo:      colors("#1565C0", "#6AA8F0"),
	TextOnSurfaceColorSuccess:   colors("#1B7F3B", "#5CCB82"),
	TextOnSurfaceColorWarning:   colors("#8A5A00", "#F2B640"),
	TextOnSurfaceColorError:     colors("#C62828", "#F07070"),

	BorderColorPrimary:   colors("#111111", "#F5F5F5"),
	BorderColorSecondary: colors("#D6D6D6", "#3A3A3A"),
	BorderColorSelected:  colors("#111111", "#F5F5F5"),
	BorderColorFocused:   colors("#1565C0", "#6AA8F0"),
	BorderColorDisabled:  colors("#E6E6E6", "#2E2E2E"),
	BorderColorInfo:      colors("#90B8EC", "#2F5C94"),
	BorderColorSuccess:   colors("#8CCB9F", "#2E6B43"),
	BorderColorWarning:   colors("#F0C878", "#7A5A1A"),
	BorderColorError:     colors("#E89A9A", "#8A2E2E"),

	IconColorPrimary:   colors("#111111", "#F5F5F5"),
	IconColorSecondary: colors("#5C5C5C", "#A3A3A3"),
	IconColorDisabled:  colors("#BDBDBD", "#4A4A4A"),
	IconColorInverse:   colors("#FFFFFF", "#000000"),
	IconColorBrand:     colors("#E65C00", "#FF7A1A"),
	IconColorInfo:      colors("#1565C0", "#6AA8F0"),
	IconColorSuccess:   colors("#1B7F3B", "#5CCB82"),
	IconColorWarning:   colors("#8A5A00", "#F2B640"),
	IconColorError:     colors("#C62828", "#F07070"),

	BorderWidthNone:     same(Dimension(0)),
	BorderWidthDefault:  same(Dimension(1)),
	BorderWidthSelected: same(Dimension(2)),

	CornerRadiusSmall:  same(Dimension(4)),
	CornerRadiusMedium: same(Dimension(8)),
	CornerRadiusLarge:  same(Dimension(16)),
	CornerRadiusPill:   same(Dimension(999)),

	HeightButtonSmall:  same(Dimension(32)),
	HeightButtonMedium: same(Dimension(44)),
	HeightButtonLarge:  same(Dimension(52)),
}

var defaultPalette = func() *Palette {
	light := make(map[Name]Value, len(defaultPairs))
	dark := make(map[Name]Value, len(defaultPairs))
	for name, values := range defaultPairs {
		light[name] = values.light
		dark[name] = values.dark
	}
	return NewPalette(DefaultPaletteName, light, dark)
}()

// Default returns the built-in reference palette. It defines every Name.
func Default() *Palette {
	return defaultPalette
}
