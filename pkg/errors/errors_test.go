package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("did not find expected key")
	err := NewParseError("palette.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "palette.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "palette.yaml:12")
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("tokens.surfaceColorPrimary.light", "invalid color", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "tokens.surfaceColorPrimary.light", validationErr.Field)
	require.Contains(t, validationErr.Message, "invalid color")
	require.Equal(t, "validation error: tokens.surfaceColorPrimary.light: invalid color", err.Error())
}

func TestUnknownTokenErrorNamesTokenAndScheme(t *testing.T) {
	t.Parallel()

	err := NewUnknownTokenError("brand", "borderColorFocused", "dark")

	var unknown *UnknownTokenError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "borderColorFocused", unknown.Token)
	require.Equal(t, "unknown token borderColorFocused for dark scheme in palette brand", err.Error())
}

func TestUnknownTokenErrorReportsUnsetName(t *testing.T) {
	t.Parallel()

	err := NewUnknownTokenError("", "", "light")
	require.Equal(t, "unknown token <unset> for light scheme", err.Error())
}

func TestNilReceiversAreSafe(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	var unknown *UnknownTokenError

	require.Empty(t, parseErr.Error())
	require.Nil(t, parseErr.Unwrap())
	require.Empty(t, validationErr.Error())
	require.Nil(t, validationErr.Unwrap())
	require.Empty(t, unknown.Error())
}
