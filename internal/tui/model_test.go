package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/swatch/internal/catalog"
	"github.com/alexisbeaulieu97/swatch/internal/components"
	"github.com/alexisbeaulieu97/swatch/internal/token"
)

func newTestModel(family string) Model {
	return NewModel(components.NewResolver(nil), family, token.Light)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelOpensRequestedFamily(t *testing.T) {
	m := newTestModel(catalog.FamilyCallout)

	require.Equal(t, catalog.FamilyCallout, m.Family())
	require.Equal(t, token.Light, m.Scheme())
	require.NoError(t, m.Err())
	require.Nil(t, m.Init())
}

func TestNewModelFallsBackToFirstFamily(t *testing.T) {
	m := newTestModel("carousel")
	require.Equal(t, catalog.Families()[0], m.Family())
}

func TestUpdateCyclesFamilies(t *testing.T) {
	families := catalog.Families()
	m := newTestModel(families[len(families)-1])

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Nil(t, cmd)
	m = updated.(Model)
	require.Equal(t, families[0], m.Family())

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = updated.(Model)
	require.Equal(t, families[len(families)-1], m.Family())

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = updated.(Model)
	require.Equal(t, families[len(families)-2], m.Family())
}

func TestUpdateTogglesScheme(t *testing.T) {
	m := newTestModel(catalog.FamilyButton)

	updated, _ := m.Update(runes("s"))
	m = updated.(Model)
	require.Equal(t, token.Dark, m.Scheme())

	updated, _ = m.Update(runes("s"))
	m = updated.(Model)
	require.Equal(t, token.Light, m.Scheme())
}

func TestUpdateTogglesHelp(t *testing.T) {
	m := newTestModel(catalog.FamilyButton)
	require.False(t, m.help.ShowAll)

	updated, _ := m.Update(runes("?"))
	m = updated.(Model)
	require.True(t, m.help.ShowAll)
}

func TestUpdateQuits(t *testing.T) {
	m := newTestModel(catalog.FamilyButton)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
}

func TestUpdateResizesViewport(t *testing.T) {
	m := newTestModel(catalog.FamilyButton)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)
	require.Equal(t, 120, m.viewport.Width)
	require.Equal(t, 40-chromeHeight, m.viewport.Height)
	require.Equal(t, 120, m.help.Width)
}
