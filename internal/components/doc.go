// Package components resolves design-system component families into
// renderer-independent styles.
//
// # Overview
//
// Each family (Button, Pill, Tile, Accordion, Callout, ContentCard,
// Gallery, MiniProductCard, TextField) has a closed variant enum, a closed
// state type and a table mapping (variant, state category) to token names.
// A Resolver looks those names up in one token palette for a color scheme:
//
//	r := components.NewResolver(nil) // default palette
//	s := r.Tile(components.TileDescriptor{
//		Variant: components.TileFilled,
//		State:   components.SelectionSelected,
//	}, token.Light)
//
// # States
//
// States are sum types, so a descriptor can never be both disabled and
// loading. Callers holding loose booleans use the XStateFromFlags helpers,
// which apply a single precedence: disabled, loading, selected, error,
// success, focused, default.
//
// # Derived data
//
// Some outputs are not tokens: chevron rotation, badge text, formatted
// prices, gallery page labels, text field helper text. They are pure
// functions of the descriptor and the resolver's FormatContext.
//
// # Concurrency
//
// Tables and palettes are immutable once built. A Resolver may be shared
// between goroutines.
package components
