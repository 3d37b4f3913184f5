package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/swatch/internal/token"
	swatcherrors "github.com/alexisbeaulieu97/swatch/pkg/errors"
)

type sampleVariant int

const (
	sampleQuiet sampleVariant = iota
	sampleLoud
)

func (v sampleVariant) String() string {
	if v == sampleLoud {
		return "loud"
	}
	return "quiet"
}

var sampleTable = Table[sampleVariant]{
	sampleQuiet: {
		Default: {
			Background:  token.Clear,
			Border:      token.BorderColorSecondary,
			BorderWidth: token.BorderWidthDefault,
			Text:        token.TextOnSurfaceColorPrimary,
			Icon:        token.IconColorPrimary,
		},
		Disabled: {
			Background:  token.Clear,
			Border:      token.BorderColorDisabled,
			BorderWidth: token.BorderWidthDefault,
			Text:        token.TextOnSurfaceColorDisabled,
			Icon:        token.IconColorDisabled,
		},
	},
	sampleLoud: {
		Default: {
			Background:  token.SurfaceColorBrand,
			Border:      token.Clear,
			BorderWidth: token.BorderWidthNone,
			Text:        token.TextOnSurfaceColorInverse,
			Icon:        token.IconColorInverse,
		},
	},
}

func TestFlagsCategoryFollowsPrecedence(t *testing.T) {
	all := Categories()

	tests := []struct {
		name  string
		flags Flags
		want  Category
	}{
		{name: "none", flags: Flags{}, want: Default},
		{name: "disabled beats everything", flags: Flags{Disabled: true, Loading: true, Selected: true, Error: true, Success: true, Focused: true}, want: Disabled},
		{name: "loading beats selected", flags: Flags{Loading: true, Selected: true}, want: Loading},
		{name: "selected beats error", flags: Flags{Selected: true, Error: true}, want: Selected},
		{name: "error beats success", flags: Flags{Error: true, Success: true, Focused: true}, want: Error},
		{name: "success beats focused", flags: Flags{Success: true, Focused: true}, want: Success},
		{name: "focused alone", flags: Flags{Focused: true}, want: Focused},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.flags.Category(all...))
		})
	}
}

func TestFlagsCategorySkipsUnsupported(t *testing.T) {
	flags := Flags{Loading: true, Selected: true}

	assert.Equal(t, Selected, flags.Category(Selected, Disabled))
	assert.Equal(t, Default, flags.Category(Disabled))
	assert.Equal(t, Default, flags.Category())
}

func TestTableLookupFallsBackToDefault(t *testing.T) {
	assert.Equal(t, sampleTable[sampleLoud][Default], sampleTable.Lookup(sampleLoud, Selected))
	assert.Equal(t, sampleTable[sampleQuiet][Disabled], sampleTable.Lookup(sampleQuiet, Disabled))
	assert.Equal(t, Tokens{}, sampleTable.Lookup(sampleVariant(9), Default))
}

func TestTableValidate(t *testing.T) {
	require.NoError(t, sampleTable.Validate([]sampleVariant{sampleQuiet, sampleLoud}))

	missingDefault := Table[sampleVariant]{sampleQuiet: {Disabled: sampleTable[sampleQuiet][Disabled]}}
	assert.ErrorContains(t, missingDefault.Validate([]sampleVariant{sampleQuiet}), "no default entry")

	missingRow := Table[sampleVariant]{}
	assert.ErrorContains(t, missingRow.Validate([]sampleVariant{sampleLoud}), "no row")

	partial := Table[sampleVariant]{sampleQuiet: {Default: {Background: token.Clear}}}
	assert.ErrorContains(t, partial.Validate([]sampleVariant{sampleQuiet}), "unset fields")
}

func TestTableNamesAreUniqueAndSorted(t *testing.T) {
	names := sampleTable.Names()

	assert.Equal(t, token.Clear, names[0])
	seen := map[token.Name]bool{}
	for i, name := range names {
		assert.False(t, seen[name], "duplicate %s", name)
		seen[name] = true
		if i > 0 {
			assert.Less(t, int(names[i-1]), int(name))
		}
	}
	assert.Len(t, names, 12)
}

func TestResolveReadsPalette(t *testing.T) {
	palette := token.Default()

	light := Resolve(palette, sampleTable, sampleLoud, Default, token.Light)
	dark := Resolve(palette, sampleTable, sampleLoud, Default, token.Dark)

	assert.Equal(t, token.SurfaceColorBrand, light.Background.Token)
	assert.Equal(t, token.Color("#E65C00"), light.Background.Value)
	assert.Equal(t, light.Tokens(), dark.Tokens())
	assert.NotEqual(t, light, dark)
	assert.Equal(t, light, Resolve(palette, sampleTable, sampleLoud, Default, token.Light))
}

func TestResolvePanicsOnMissingToken(t *testing.T) {
	palette := token.NewPalette("thin", map[token.Name]token.Value{token.Clear: token.ClearValue()}, nil)

	assert.PanicsWithError(t,
		swatcherrors.NewUnknownTokenError("thin", "borderColorSecondary", "light").Error(),
		func() { Resolve(palette, sampleTable, sampleQuiet, Default, token.Light) },
	)
}

func TestDescribeOrder(t *testing.T) {
	resolved := Resolve(token.Default(), sampleTable, sampleQuiet, Disabled, token.Light)
	fields := resolved.Describe()

	require.Len(t, fields, 5)
	assert.Equal(t, Field{Name: "background", Token: "clear", Value: "clear"}, fields[0])
	assert.Equal(t, "borderColorDisabled", fields[1].Token)
	assert.Equal(t, "1pt", fields[2].Value)
	assert.Equal(t, Field{Name: "ripple", Value: "off"}, ValueField("ripple", "off"))
}

func TestParseEnum(t *testing.T) {
	all := []sampleVariant{sampleQuiet, sampleLoud}

	got, ok := Parse(" LOUD ", all)
	require.True(t, ok)
	assert.Equal(t, sampleLoud, got)

	_, ok = Parse("whisper", all)
	assert.False(t, ok)

	assert.Equal(t, []string{"quiet", "loud"}, Labels(all))
	assert.Equal(t, "unknown", Category(42).String())
}
