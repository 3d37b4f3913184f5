package components

import (
	"fmt"
	"sort"

	"github.com/alexisbeaulieu97/swatch/internal/style"
	"github.com/alexisbeaulieu97/swatch/internal/token"
)

type tableInfo struct {
	family   string
	validate func() error
	names    func() []token.Name
}

func describeTable[V comparable](family string, table style.Table[V], variants []V) tableInfo {
	return tableInfo{
		family:   family,
		validate: func() error { return table.Validate(variants) },
		names:    table.Names,
	}
}

func tables() []tableInfo {
	return []tableInfo{
		describeTable("button", buttonTable, ButtonVariants()),
		describeTable("pill", pillTable, PillVariants()),
		describeTable("tile", tileTable, TileVariants()),
		describeTable("accordion", accordionTable, AccordionVariants()),
		describeTable("callout", calloutTable, CalloutVariants()),
		describeTable("contentCard", contentCardTable, ContentCardVariants()),
		describeTable("gallery", galleryTable, GalleryVariants()),
		describeTable("miniProductCard", miniProductCardTable, MiniProductCardVariants()),
		describeTable("textField", textFieldTable, TextFieldVariants()),
		describeTable("badge", badgeTable, []BadgeKind{BadgeNone, BadgeNew, BadgeSale, BadgeCustom}),
	}
}

// derivedNames are read outside the family tables.
var derivedNames = []token.Name{
	token.HeightButtonSmall,
	token.HeightButtonMedium,
	token.HeightButtonLarge,
	token.CornerRadiusSmall,
	token.CornerRadiusMedium,
	token.CornerRadiusLarge,
	token.CornerRadiusPill,
	token.SurfaceColorPrimary,
	token.TextOnSurfaceColorPrimary,
	token.TextOnSurfaceColorSecondary,
	token.TextOnSurfaceColorDisabled,
	token.TextOnSurfaceColorError,
	token.TextOnSurfaceColorSuccess,
}

// ValidateTables checks that every family table is complete.
func ValidateTables() error {
	for _, info := range tables() {
		if err := info.validate(); err != nil {
			return fmt.Errorf("%s table: %w", info.family, err)
		}
	}
	return nil
}

// ReferencedNames lists every token name a resolution can read, sorted.
// A palette defining all of them in both schemes never panics.
func ReferencedNames() []token.Name {
	seen := make(map[token.Name]struct{})
	for _, info := range tables() {
		for _, name := range info.names() {
			seen[name] = struct{}{}
		}
	}
	for _, name := range derivedNames {
		seen[name] = struct{}{}
	}

	names := make([]token.Name, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
