package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/swatch/internal/style"
	"github.com/alexisbeaulieu97/swatch/internal/token"
)

func TestButtonTotality(t *testing.T) {
	r := NewResolver(nil)

	for _, scheme := range token.Schemes() {
		for _, variant := range ButtonVariants() {
			for _, state := range ButtonStates() {
				for _, size := range ButtonSizes() {
					d := ButtonDescriptor{Variant: variant, State: state, Size: size}
					require.NotPanics(t, func() { r.Button(d, scheme) }, "%s/%s/%s/%s", variant, state, size, scheme)
				}
			}
		}
	}
}

func TestButtonLoadingHidesLabel(t *testing.T) {
	r := NewResolver(nil)

	for _, variant := range ButtonVariants() {
		base := r.Button(ButtonDescriptor{Variant: variant}, token.Light)
		loading := r.Button(ButtonDescriptor{Variant: variant, State: ButtonLoading}, token.Light)

		assert.Equal(t, base.Background, loading.Background, "%s keeps its background while loading", variant)
		assert.Equal(t, token.Clear, loading.Text.Token, "%s hides its label while loading", variant)
		assert.Equal(t, base.Text.Token, loading.Icon.Token, "%s tints the spinner with its label color", variant)
		assert.True(t, loading.ShowsSpinner)
		assert.False(t, loading.Interactive)
	}
}

func TestButtonDisabled(t *testing.T) {
	r := NewResolver(nil)

	filled := r.Button(ButtonDescriptor{Variant: ButtonOrangeFilled, State: ButtonDisabled}, token.Light)
	assert.Equal(t, token.SurfaceColorDisabled, filled.Background.Token)
	assert.Equal(t, token.TextOnSurfaceColorDisabled, filled.Text.Token)
	assert.False(t, filled.Interactive)
	assert.False(t, filled.ShowsSpinner)

	outlined := r.Button(ButtonDescriptor{Variant: ButtonOutlined, State: ButtonDisabled}, token.Light)
	assert.Equal(t, token.BorderColorDisabled, outlined.Border.Token)
	assert.Equal(t, token.Clear, outlined.Background.Token)
}

func TestButtonDerivedFields(t *testing.T) {
	r := NewResolver(nil)

	tests := []struct {
		size   ButtonSize
		height token.Name
		points float64
	}{
		{ButtonSizeSmall, token.HeightButtonSmall, 32},
		{ButtonSizeMedium, token.HeightButtonMedium, 44},
		{ButtonSizeLarge, token.HeightButtonLarge, 52},
	}

	for _, tt := range tests {
		t.Run(tt.size.String(), func(t *testing.T) {
			s := r.Button(ButtonDescriptor{Variant: ButtonGhost, Size: tt.size, FullWidth: true}, token.Dark)
			assert.Equal(t, tt.height, s.Height.Token)
			assert.Equal(t, tt.points, s.Height.Value.Dimension)
			assert.Equal(t, token.CornerRadiusMedium, s.CornerRadius.Token)
			assert.True(t, s.Interactive)
			assert.True(t, s.FullWidth)
		})
	}
}

func TestButtonGradientCarriesTwoStops(t *testing.T) {
	s := NewResolver(nil).Button(ButtonDescriptor{Variant: ButtonGradientFilled}, token.Light)

	assert.Equal(t, token.KindGradient, s.Background.Value.Kind)
	assert.Equal(t, "#E65C00", s.Background.Value.PrimaryColor())
}

func TestPillHasBackground(t *testing.T) {
	r := NewResolver(nil)

	for _, state := range SelectionStates() {
		plain := r.Pill(PillDescriptor{Variant: PillOutlined, State: state}, token.Light)
		backed := r.Pill(PillDescriptor{Variant: PillOutlined, State: state, HasBackground: true}, token.Light)

		assert.Equal(t, token.SurfaceColorPrimary, backed.Background.Token, "outlined %s should gain a background", state)
		assert.Equal(t, plain.Border, backed.Border)
		assert.Equal(t, plain.Text, backed.Text)

		filled := r.Pill(PillDescriptor{Variant: PillFilled, State: state}, token.Light)
		filledBacked := r.Pill(PillDescriptor{Variant: PillFilled, State: state, HasBackground: true}, token.Light)
		assert.Equal(t, filled, filledBacked, "filled pills ignore HasBackground")
	}
}

func TestPillSelection(t *testing.T) {
	r := NewResolver(nil)

	selected := r.Pill(PillDescriptor{Variant: PillFilled, State: SelectionSelected}, token.Light)
	assert.Equal(t, token.TextOnSurfaceColorPrimary, selected.Background.Token)
	assert.Equal(t, token.SurfaceColorPrimary, selected.Text.Token)
	assert.Equal(t, token.IconColorInverse, selected.Icon.Token)
	assert.True(t, selected.ShowsCheckmark)
	assert.Equal(t, token.CornerRadiusPill, selected.CornerRadius.Token)

	disabled := r.Pill(PillDescriptor{Variant: PillFilled, State: SelectionDisabled}, token.Light)
	assert.False(t, disabled.ShowsCheckmark)
}

func TestTileOutlinedDefault(t *testing.T) {
	s := NewResolver(nil).Tile(TileDescriptor{Variant: TileOutlined, State: SelectionDefault}, token.Light)

	assert.Equal(t, token.Clear, s.Background.Token)
	assert.True(t, s.Background.Value.IsClear())
	assert.Equal(t, token.BorderColorSecondary, s.Border.Token)
	assert.Equal(t, token.TextOnSurfaceColorPrimary, s.Text.Token)
}

func TestTileFilledSelectedInvertsColors(t *testing.T) {
	r := NewResolver(nil)

	base := r.Tile(TileDescriptor{Variant: TileFilled}, token.Light)
	selected := r.Tile(TileDescriptor{Variant: TileFilled, State: SelectionSelected}, token.Light)

	assert.Equal(t, token.TextOnSurfaceColorPrimary, selected.Background.Token)
	assert.Equal(t, token.SurfaceColorPrimary, selected.Text.Token)
	assert.Equal(t, base.Text.Value, selected.Background.Value)
}

func TestTileSelectedAndDisabledMatchesDisabled(t *testing.T) {
	r := NewResolver(nil)

	both := SelectionStateFromFlags(style.Flags{Selected: true, Disabled: true})
	onlyDisabled := SelectionStateFromFlags(style.Flags{Disabled: true})

	for _, variant := range TileVariants() {
		assert.Equal(t,
			r.Tile(TileDescriptor{Variant: variant, State: onlyDisabled}, token.Light),
			r.Tile(TileDescriptor{Variant: variant, State: both}, token.Light),
		)
	}
}

func TestTileOutlinedSchemes(t *testing.T) {
	r := NewResolver(nil)

	light := r.Tile(TileDescriptor{Variant: TileOutlined}, token.Light)
	dark := r.Tile(TileDescriptor{Variant: TileOutlined}, token.Dark)

	assert.Equal(t, light.Tokens(), dark.Tokens())
	assert.NotEqual(t, light, dark)
	assert.NotEqual(t, light.Text.Value, dark.Text.Value)
}

func TestTileCombinationsAreDistinct(t *testing.T) {
	r := NewResolver(nil)

	var styles []TileStyle
	for _, variant := range TileVariants() {
		for _, state := range []SelectionState{SelectionDefault, SelectionSelected} {
			for _, scheme := range token.Schemes() {
				d := TileDescriptor{Variant: variant, State: state}
				require.NotPanics(t, func() { styles = append(styles, r.Tile(d, scheme)) })
			}
		}
	}

	require.Len(t, styles, 12)
	for i := range styles {
		for j := i + 1; j < len(styles); j++ {
			assert.NotEqual(t, styles[i], styles[j], "combinations %d and %d should differ", i, j)
		}
	}
}

func TestTileGhostSelectedGainsBackground(t *testing.T) {
	s := NewResolver(nil).Tile(TileDescriptor{Variant: TileGhost, State: SelectionSelected}, token.Dark)

	assert.Equal(t, token.SurfaceColorBlack5, s.Background.Token)
	assert.Equal(t, "#0D0D0D", s.Background.Value.Color)
}

func TestAccordion(t *testing.T) {
	r := NewResolver(nil)

	tests := []struct {
		state    AccordionState
		rotation int
		content  bool
	}{
		{AccordionCollapsed, 0, false},
		{AccordionExpanded, 180, true},
		{AccordionDisabled, 0, false},
	}

	for _, variant := range AccordionVariants() {
		for _, tt := range tests {
			t.Run(variant.String()+"/"+tt.state.String(), func(t *testing.T) {
				s := r.Accordion(AccordionDescriptor{Variant: variant, State: tt.state}, token.Light)
				assert.Equal(t, tt.rotation, s.ChevronRotation)
				assert.Equal(t, tt.content, s.ShowsContent)
				if tt.state == AccordionDisabled {
					assert.Equal(t, token.TextOnSurfaceColorDisabled, s.Text.Token)
				}
			})
		}
	}
}

func TestCallout(t *testing.T) {
	r := NewResolver(nil)

	for _, variant := range CalloutVariants() {
		for _, state := range CalloutStates() {
			for _, scheme := range token.Schemes() {
				require.NotPanics(t, func() {
					r.Callout(CalloutDescriptor{Variant: variant, State: state}, scheme)
				})
			}
		}
	}

	subtle := r.Callout(CalloutDescriptor{Variant: CalloutVariant{Tone: CalloutInfo}}, token.Light)
	assert.Equal(t, token.SurfaceColorInfo, subtle.Background.Token)
	assert.Equal(t, token.BorderColorInfo, subtle.Border.Token)
	assert.Equal(t, token.IconColorInfo, subtle.Icon.Token)
	assert.Equal(t, "info.circle", subtle.Glyph)

	bold := r.Callout(CalloutDescriptor{Variant: CalloutVariant{Tone: CalloutError, Emphasis: CalloutBold}}, token.Light)
	assert.Equal(t, token.TextOnSurfaceColorError, bold.Background.Token)
	assert.Equal(t, token.TextOnSurfaceColorInverse, bold.Text.Token)
	assert.Equal(t, token.IconColorInverse, bold.Icon.Token)
	assert.Equal(t, "xmark.octagon", bold.Glyph)

	focused := r.Callout(CalloutDescriptor{Variant: CalloutVariant{Tone: CalloutError, Emphasis: CalloutBold}, State: CalloutFocused}, token.Light)
	assert.Equal(t, token.BorderColorFocused, focused.Border.Token)
	assert.Equal(t, token.BorderWidthSelected, focused.BorderWidth.Token)
	assert.Equal(t, bold.Background, focused.Background)
}

func TestCalloutVariantLabels(t *testing.T) {
	variant, ok := style.Parse("warning/bold", CalloutVariants())

	require.True(t, ok)
	assert.Equal(t, CalloutVariant{Tone: CalloutWarning, Emphasis: CalloutBold}, variant)
	assert.Len(t, CalloutVariants(), 10)
}

func TestDescribeListsEveryField(t *testing.T) {
	r := NewResolver(nil)

	fields := r.Button(ButtonDescriptor{Variant: ButtonOutlined}, token.Light).Describe()
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
	}

	assert.Equal(t, []string{
		"background", "border", "borderWidth", "text", "icon",
		"height", "cornerRadius", "showsSpinner", "interactive", "fullWidth",
	}, names)
	assert.Equal(t, "clear", fields[0].Value)
	assert.Equal(t, "borderColorPrimary", fields[1].Token)
}
