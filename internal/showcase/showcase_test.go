package showcase

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/swatch/internal/catalog"
	"github.com/alexisbeaulieu97/swatch/internal/components"
	"github.com/alexisbeaulieu97/swatch/internal/token"
)

func TestRenderListsEveryEntryOfScheme(t *testing.T) {
	r := components.NewResolver(nil)

	out, err := Render(r, catalog.FamilyTile, token.Dark)
	require.NoError(t, err)

	entries, err := catalog.Enumerate(r, catalog.FamilyTile)
	require.NoError(t, err)

	assert.Contains(t, out, "tile · dark")
	for _, entry := range entries {
		if entry.Scheme != token.Dark.String() {
			continue
		}
		assert.Contains(t, out, Caption(entry))
	}
}

func TestRenderShowsDerivedText(t *testing.T) {
	r := components.NewResolver(nil)

	cards, err := Render(r, catalog.FamilyMiniProductCard, token.Light)
	require.NoError(t, err)
	assert.Contains(t, cards, "$149.99")
	assert.Contains(t, cards, "-28%")

	fields, err := Render(r, catalog.FamilyTextField, token.Light)
	require.NoError(t, err)
	assert.Contains(t, fields, "Invalid value")
	assert.Contains(t, fields, "Helper text")
}

func TestRenderUnknownFamily(t *testing.T) {
	_, err := Render(components.NewResolver(nil), "carousel", token.Light)

	var unknown *catalog.UnknownFamilyError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "carousel", unknown.Family)
}

func TestRenderEveryFamily(t *testing.T) {
	r := components.NewResolver(nil)

	for _, family := range catalog.Families() {
		t.Run(family, func(t *testing.T) {
			out, err := Render(r, family, token.Light)
			require.NoError(t, err)
			assert.Greater(t, lipgloss.Height(out), 2)
			assert.NotEqual(t, family, SampleLabel(family))
		})
	}
}

func TestCaption(t *testing.T) {
	assert.Equal(t, "filled / selected", Caption(catalog.Entry{Variant: "filled", State: "selected"}))
	assert.Equal(t, "outlined / default / background",
		Caption(catalog.Entry{Variant: "outlined", State: "default", Aux: "background"}))
}

func TestTitleNamesFamilyAndScheme(t *testing.T) {
	title := Title(catalog.FamilyButton, token.Light)
	assert.True(t, strings.Contains(title, "button · light"))
}
