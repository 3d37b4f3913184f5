package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command with an isolated settings file and
// returns everything written to stdout.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	settings := writeFile(t, t.TempDir(), "config.yaml", "log_level: info\n")
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(append([]string{"--config", settings}, args...))

	err := root.Execute()
	return stdout.String(), err
}

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

// brandPalette overrides the brand surface on top of the built-in palette.
func brandPalette(light, dark string) string {
	return "name: brand\nbase: default\ntokens:\n  surfaceColorBrand: {light: \"" + light + "\", dark: \"" + dark + "\"}\n"
}
