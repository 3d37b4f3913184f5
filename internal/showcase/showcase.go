// Package showcase lays out every catalog entry of a family as painted
// terminal samples.
package showcase

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/swatch/internal/catalog"
	"github.com/alexisbeaulieu97/swatch/internal/components"
	"github.com/alexisbeaulieu97/swatch/internal/render"
	"github.com/alexisbeaulieu97/swatch/internal/token"
)

const captionWidth = 42

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	captionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(captionWidth)
	detailStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
)

var sampleLabels = map[string]string{
	catalog.FamilyButton:          "Add to cart",
	catalog.FamilyPill:            "Filter",
	catalog.FamilyTile:            "Tile",
	catalog.FamilyAccordion:       "Details",
	catalog.FamilyCallout:         "Heads up",
	catalog.FamilyContentCard:     "Card",
	catalog.FamilyGallery:         "Gallery",
	catalog.FamilyMiniProductCard: "Product",
	catalog.FamilyTextField:       "Email",
}

// SampleLabel returns the text painted inside samples of family.
func SampleLabel(family string) string {
	if label, ok := sampleLabels[family]; ok {
		return label
	}
	return family
}

// Title renders the heading shown above a family.
func Title(family string, scheme token.Scheme) string {
	return titleStyle.Render(fmt.Sprintf("%s · %s", family, scheme))
}

// Render paints every entry of family resolved for scheme, one per line,
// each preceded by its variant/state caption.
func Render(r *components.Resolver, family string, scheme token.Scheme) (string, error) {
	entries, err := catalog.Enumerate(r, family)
	if err != nil {
		return "", err
	}

	rows := []string{Title(family, scheme)}
	for _, entry := range entries {
		if entry.Scheme != scheme.String() {
			continue
		}
		rows = append(rows, renderEntry(entry))
	}
	return render.Column(1, rows...), nil
}

func renderEntry(entry catalog.Entry) string {
	caption := captionStyle.Render(Caption(entry))
	sample := render.Paint(SampleLabel(entry.Family), entry.Resolved())
	return render.Row(1, caption, sample, detailStyle.Render(detail(entry)))
}

// Caption names an entry within its family and scheme.
func Caption(entry catalog.Entry) string {
	parts := []string{entry.Variant, entry.State}
	if entry.Aux != "" {
		parts = append(parts, entry.Aux)
	}
	return strings.Join(parts, " / ")
}

// detail surfaces the family-specific text fields (badge, price, helper)
// that the painted sample cannot show.
func detail(entry catalog.Entry) string {
	var parts []string
	for _, field := range entry.Fields {
		if field.Token != "" || field.Value == "" {
			continue
		}
		switch field.Name {
		case "glyph", "badgeText", "price", "originalPrice", "helperText", "pageLabel", "statusGlyph":
			parts = append(parts, field.Value)
		}
	}
	return strings.Join(parts, "  ")
}
