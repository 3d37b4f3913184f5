package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShowcaseSingleFamily(t *testing.T) {
	stdout, err := executeCommand(t, "showcase", "callout", "--scheme", "dark")
	require.NoError(t, err)

	require.Contains(t, stdout, "callout · dark")
	require.Contains(t, stdout, "warning/bold / focused")
	require.NotContains(t, stdout, "button · dark")
}

func TestShowcaseAllFamilies(t *testing.T) {
	stdout, err := executeCommand(t, "showcase")
	require.NoError(t, err)

	require.Contains(t, stdout, "button · light")
	require.Contains(t, stdout, "textField · light")
}

func TestShowcaseErrors(t *testing.T) {
	_, err := executeCommand(t, "showcase", "carousel")
	require.Error(t, err)
	require.Contains(t, err.Error(), `family "carousel"`)

	_, err = executeCommand(t, "showcase", "--interactive")
	require.Error(t, err)
	require.True(t, errors.Is(err, errNotTerminal))
}
