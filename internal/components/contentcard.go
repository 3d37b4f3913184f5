package components

import (
	"github.com/alexisbeaulieu97/swatch/internal/style"
	"github.com/alexisbeaulieu97/swatch/internal/token"
)

// ContentCardVariant selects the visual treatment of a content card.
type ContentCardVariant int

const (
	ContentCardElevated ContentCardVariant = iota
	ContentCardOutlined
	ContentCardFilled
)

// ContentCardVariants lists every content card variant.
func ContentCardVariants() []ContentCardVariant {
	return []ContentCardVariant{ContentCardElevated, ContentCardOutlined, ContentCardFilled}
}

func (v ContentCardVariant) String() string {
	switch v {
	case ContentCardElevated:
		return "elevated"
	case ContentCardOutlined:
		return "outlined"
	case ContentCardFilled:
		return "filled"
	default:
		return "unknown"
	}
}

// ContentCardDescriptor configures one content card resolution.
type ContentCardDescriptor struct {
	Variant ContentCardVariant
	State   SelectionState
	Badge   Badge
}

// ContentCardStyle is the resolved style of a content card.
type ContentCardStyle struct {
	style.Resolved
	CornerRadius style.Ref
	Elevated     bool
	Badge        BadgeStyle
}

// Describe flattens the style for display.
func (s ContentCardStyle) Describe() []style.Field {
	fields := append(s.Resolved.Describe(),
		style.RefField("cornerRadius", s.CornerRadius),
		style.ValueField("elevated", boolString(s.Elevated)),
	)
	return append(fields, s.Badge.describe()...)
}

var contentCardTable = style.Table[ContentCardVariant]{
	ContentCardElevated: {
		style.Default:  entry(token.SurfaceColorPrimary, token.Clear, token.BorderWidthNone, token.TextOnSurfaceColorPrimary, token.IconColorPrimary),
		style.Selected: entry(token.SurfaceColorPrimary, token.BorderColorSelected, token.BorderWidthSelected, token.TextOnSurfaceColorPrimary, token.IconColorPrimary),
		style.Disabled: disabledFilled,
	},
	ContentCardOutlined: {
		style.Default:  entry(token.SurfaceColorPrimary, token.BorderColorSecondary, token.BorderWidthDefault, token.TextOnSurfaceColorPrimary, token.IconColorPrimary),
		style.Selected: entry(token.SurfaceColorPrimary, token.BorderColorSelected, token.BorderWidthSelected, token.TextOnSurfaceColorPrimary, token.IconColorPrimary),
		style.Disabled: disabledOutline,
	},
	ContentCardFilled: {
		style.Default:  entry(token.SurfaceColorSecondary, token.Clear, token.BorderWidthNone, token.TextOnSurfaceColorPrimary, token.IconColorPrimary),
		style.Selected: entry(token.SurfaceColorSecondary, token.BorderColorSelected, token.BorderWidthSelected, token.TextOnSurfaceColorPrimary, token.IconColorPrimary),
		style.Disabled: disabledFilled,
	},
}

// ContentCard resolves a content card descriptor for scheme.
func (r *Resolver) ContentCard(d ContentCardDescriptor, scheme token.Scheme) ContentCardStyle {
	category := d.State.category()

	return ContentCardStyle{
		Resolved:     style.Resolve(r.palette, contentCardTable, d.Variant, category, scheme),
		CornerRadius: r.ref(token.CornerRadiusLarge, scheme),
		Elevated:     d.Variant == ContentCardElevated && d.State != SelectionDisabled,
		Badge:        r.badge(d.Badge, category, scheme),
	}
}
