package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/swatch/internal/catalog"
)

func TestViewShowsFamilyAndScheme(t *testing.T) {
	m := newTestModel(catalog.FamilyPill)

	view := m.View()
	require.Contains(t, view, "Swatch showcase")
	require.Contains(t, view, "pill (2/9) · light")
	require.Contains(t, view, "next family")
}

func TestViewFollowsNavigation(t *testing.T) {
	m := newTestModel(catalog.FamilyPill)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	updated, _ = updated.Update(runes("s"))
	view := updated.View()

	require.Contains(t, view, "tile (3/9) · dark")
	require.Contains(t, view, "tile · dark")
}

func TestViewFullHelpListsEveryBinding(t *testing.T) {
	m := newTestModel(catalog.FamilyPill)
	m.help.ShowAll = true

	view := m.View()
	require.Contains(t, view, "previous family")
	require.Contains(t, view, "scroll")
}
