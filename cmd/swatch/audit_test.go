package main

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/swatch/internal/catalog"
)

func TestAuditDefaultPalette(t *testing.T) {
	stdout, err := executeCommand(t, "audit", "--min-contrast", "1")
	require.NoError(t, err)
	require.Contains(t, stdout, "palette default:")
	require.Contains(t, stdout, "0 error(s), 0 warning(s)")
}

func TestAuditJSONReport(t *testing.T) {
	stdout, err := executeCommand(t, "audit", "--format", "json", "--min-contrast", "2.5")
	require.NoError(t, err)

	var report struct {
		Palette     string  `json:"palette"`
		MinContrast float64 `json:"minContrast"`
		Checked     int     `json:"checked"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	require.Equal(t, "default", report.Palette)
	require.Equal(t, 2.5, report.MinContrast)
	require.Positive(t, report.Checked)
}

func TestAuditFlagsLowContrast(t *testing.T) {
	// Brand surface matching the inverse text color makes filled buttons unreadable.
	path := writeFile(t, t.TempDir(), "palette.yaml", brandPalette("#FFFFFF", "#000000"))

	stdout, err := executeCommand(t, "--palette", path, "audit")
	require.NoError(t, err)
	require.Contains(t, stdout, "warning button/orangeFilled/default")
	require.Contains(t, stdout, "below 4.50:1")

	_, err = executeCommand(t, "--palette", path, "audit", "--strict")
	require.Error(t, err)
	require.True(t, errors.Is(err, errAuditFailed))
	require.Contains(t, err.Error(), "contrast warning(s) in brand")
}

func TestAuditUsesSettingsMinContrast(t *testing.T) {
	dir := t.TempDir()
	palette := writeFile(t, dir, "palette.yaml", brandPalette("#FFFFFF", "#000000"))
	settings := writeFile(t, dir, "config.yaml", "min_contrast: 1\n")

	// No ratio falls below 1:1, so the strict audit passes.
	stdout, err := executeCommand(t, "--config", settings, "--palette", palette, "audit", "--strict")
	require.NoError(t, err)
	require.Contains(t, stdout, "0 warning(s)")

	_, err = executeCommand(t, "--config", settings, "--palette", palette, "audit", "--strict",
		"--min-contrast", "4.5")
	require.Error(t, err)
	require.Equal(t, 4.5, catalog.DefaultMinContrast)
}
