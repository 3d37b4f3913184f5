package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/swatch/internal/token"
	swatcherrors "github.com/alexisbeaulieu97/swatch/pkg/errors"
)

func TestValidatePaletteFile(t *testing.T) {
	t.Parallel()

	color := func(hex string) *TokenValue { return &TokenValue{token.Color(hex)} }

	cases := []struct {
		name      string
		file      *PaletteFile
		wantField string
	}{
		{
			name:      "nil file",
			file:      nil,
			wantField: "palette",
		},
		{
			name: "valid",
			file: &PaletteFile{
				Name:   "ok",
				Tokens: map[string]*TokenEntry{"surfaceColorPrimary": {Light: color("#FFFFFF"), Dark: color("#000000")}},
			},
		},
		{
			name: "bad palette name",
			file: &PaletteFile{
				Name:   "Has Spaces",
				Tokens: map[string]*TokenEntry{"surfaceColorPrimary": {Light: color("#FFFFFF"), Dark: color("#000000")}},
			},
			wantField: "name",
		},
		{
			name: "unsupported base",
			file: &PaletteFile{
				Name:   "ok",
				Base:   "material",
				Tokens: map[string]*TokenEntry{"surfaceColorPrimary": {Light: color("#FFFFFF"), Dark: color("#000000")}},
			},
			wantField: "base",
		},
		{
			name:      "no tokens",
			file:      &PaletteFile{Name: "empty"},
			wantField: "tokens",
		},
		{
			name: "nil entry",
			file: &PaletteFile{
				Name:   "ok",
				Tokens: map[string]*TokenEntry{"surfaceColorPrimary": nil},
			},
			wantField: "tokens[surfaceColorPrimary]",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := ValidatePaletteFile(tc.file)
			if tc.wantField == "" {
				require.NoError(t, err)
				return
			}

			var validationErr *swatcherrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.wantField, validationErr.Field)
		})
	}
}

func TestValidatorInstanceIsShared(t *testing.T) {
	t.Parallel()

	assert.Same(t, validatorInstance(), validatorInstance())
}
