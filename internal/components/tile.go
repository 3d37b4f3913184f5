package components

import (
	"github.com/alexisbeaulieu97/swatch/internal/style"
	"github.com/alexisbeaulieu97/swatch/internal/token"
)

// TileVariant selects the visual treatment of a tile.
type TileVariant int

const (
	TileOutlined TileVariant = iota
	TileFilled
	TileGhost
)

// TileVariants lists every tile variant.
func TileVariants() []TileVariant {
	return []TileVariant{TileOutlined, TileFilled, TileGhost}
}

func (v TileVariant) String() string {
	switch v {
	case TileOutlined:
		return "outlined"
	case TileFilled:
		return "filled"
	case TileGhost:
		return "ghost"
	default:
		return "unknown"
	}
}

// TileDescriptor configures one tile resolution.
type TileDescriptor struct {
	Variant TileVariant
	State   SelectionState
}

// TileStyle is the resolved style of a tile.
type TileStyle struct {
	style.Resolved
	CornerRadius style.Ref
}

// Describe flattens the style for display.
func (s TileStyle) Describe() []style.Field {
	return append(s.Resolved.Describe(), style.RefField("cornerRadius", s.CornerRadius))
}

var tileTable = style.Table[TileVariant]{
	TileOutlined: {
		style.Default:  entry(token.Clear, token.BorderColorSecondary, token.BorderWidthDefault, token.TextOnSurfaceColorPrimary, token.IconColorPrimary),
		style.Selected: entry(token.Clear, token.BorderColorSelected, token.BorderWidthSelected, token.TextOnSurfaceColorPrimary, token.IconColorPrimary),
		style.Disabled: disabledOutline,
	},
	TileFilled: {
		style.Default:  entry(token.SurfaceColorSecondary, token.Clear, token.BorderWidthNone, token.TextOnSurfaceColorPrimary, token.IconColorPrimary),
		style.Selected: invertedSelection,
		style.Disabled: disabledFilled,
	},
	TileGhost: {
		style.Default:  entry(token.Clear, token.Clear, token.BorderWidthNone, token.TextOnSurfaceColorPrimary, token.IconColorSecondary),
		style.Selected: entry(token.SurfaceColorBlack5, token.Clear, token.BorderWidthNone, token.TextOnSurfaceColorPrimary, token.IconColorPrimary),
		style.Disabled: disabledGhost,
	},
}

// Tile resolves a tile descriptor for scheme.
func (r *Resolver) Tile(d TileDescriptor, scheme token.Scheme) TileStyle {
	return TileStyle{
		Resolved:     style.Resolve(r.palette, tileTable, d.Variant, d.State.category(), scheme),
		CornerRadius: r.ref(token.CornerRadiusMedium, scheme),
	}
}
