package components

import (
	"github.com/alexisbeaulieu97/swatch/internal/style"
	"github.com/alexisbeaulieu97/swatch/internal/token"
)

// MiniProductCardVariant selects the layout density of a product card.
type MiniProductCardVariant int

const (
	MiniProductCardStandard MiniProductCardVariant = iota
	MiniProductCardCompact
)

// MiniProductCardVariants lists every mini product card variant.
func MiniProductCardVariants() []MiniProductCardVariant {
	return []MiniProductCardVariant{MiniProductCardStandard, MiniProductCardCompact}
}

func (v MiniProductCardVariant) String() string {
	switch v {
	case MiniProductCardStandard:
		return "standard"
	case MiniProductCardCompact:
		return "compact"
	default:
		return "unknown"
	}
}

// MiniProductCardDescriptor configures one product card resolution.
type MiniProductCardDescriptor struct {
	Variant MiniProductCardVariant
	State   SelectionState
	Price   Price
	Badge   Badge
}

// MiniProductCardStyle is the resolved style of a product card.
type MiniProductCardStyle struct {
	style.Resolved
	CornerRadius       style.Ref
	Price              string
	OriginalPrice      string
	PriceColor         style.Ref
	OriginalPriceColor style.Ref
	Strikethrough      bool
	Badge              BadgeStyle
}

// Describe flattens the style for display.
func (s MiniProductCardStyle) Describe() []style.Field {
	fields := append(s.Resolved.Describe(),
		style.RefField("cornerRadius", s.CornerRadius),
		style.ValueField("price", s.Price),
		style.ValueField("originalPrice", s.OriginalPrice),
		style.RefField("priceColor", s.PriceColor),
		style.RefField("originalPriceColor", s.OriginalPriceColor),
		style.ValueField("strikethrough", boolString(s.Strikethrough)),
	)
	return append(fields, s.Badge.describe()...)
}

var miniProductCardTable = style.Table[MiniProductCardVariant]{
	MiniProductCardStandard: {
		style.Default:  entry(token.SurfaceColorPrimary, token.BorderColorSecondary, token.BorderWidthDefault, token.TextOnSurfaceColorPrimary, token.IconColorPrimary),
		style.Selected: entry(token.SurfaceColorPrimary, token.BorderColorSelected, token.BorderWidthSelected, token.TextOnSurfaceColorPrimary, token.IconColorPrimary),
		style.Disabled: disabledOutline,
	},
	MiniProductCardCompact: {
		style.Default:  entry(token.SurfaceColorSecondary, token.Clear, token.BorderWidthNone, token.TextOnSurfaceColorPrimary, token.IconColorSecondary),
		style.Selected: entry(token.SurfaceColorSecondary, token.BorderColorSelected, token.BorderWidthSelected, token.TextOnSurfaceColorPrimary, token.IconColorPrimary),
		style.Disabled: disabledFilled,
	},
}

// priceColors picks the current and original price tokens. Sale prices
// use the error color; disabled cards mute both.
func priceColors(price Price, state SelectionState) (token.Name, token.Name) {
	switch {
	case state == SelectionDisabled:
		return token.TextOnSurfaceColorDisabled, token.TextOnSurfaceColorDisabled
	case price.OnSale():
		return token.TextOnSurfaceColorError, token.TextOnSurfaceColorSecondary
	default:
		return token.TextOnSurfaceColorPrimary, token.TextOnSurfaceColorSecondary
	}
}

// MiniProductCard resolves a product card descriptor for scheme.
func (r *Resolver) MiniProductCard(d MiniProductCardDescriptor, scheme token.Scheme) MiniProductCardStyle {
	category := d.State.category()
	text := FormatPrice(d.Price, r.format)
	priceColor, originalColor := priceColors(d.Price, d.State)

	return MiniProductCardStyle{
		Resolved:           style.Resolve(r.palette, miniProductCardTable, d.Variant, category, scheme),
		CornerRadius:       r.ref(token.CornerRadiusMedium, scheme),
		Price:              text.Price,
		OriginalPrice:      text.OriginalPrice,
		PriceColor:         r.ref(priceColor, scheme),
		OriginalPriceColor: r.ref(originalColor, scheme),
		Strikethrough:      d.Price.OnSale(),
		Badge:              r.badge(d.Badge, category, scheme),
	}
}
