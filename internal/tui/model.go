// Package tui implements the interactive showcase browser.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/swatch/internal/catalog"
	"github.com/alexisbeaulieu97/swatch/internal/components"
	"github.com/alexisbeaulieu97/swatch/internal/showcase"
	"github.com/alexisbeaulieu97/swatch/internal/token"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// Lines used by the header and the help footer around the viewport.
	chromeHeight = 4
)

// Model contains the Bubbletea state for the showcase browser.
type Model struct {
	resolver *components.Resolver
	families []string
	family   int
	scheme   token.Scheme

	keys     keyMap
	help     help.Model
	viewport viewport.Model

	err    error
	width  int
	height int
}

// NewModel creates a browser opened on family (the first family when
// family is unknown) in scheme.
func NewModel(r *components.Resolver, family string, scheme token.Scheme) Model {
	m := Model{
		resolver: r,
		families: catalog.Families(),
		scheme:   scheme,
		keys:     keys,
		help:     help.New(),
		viewport: viewport.New(defaultWidth, defaultHeight-chromeHeight),
		width:    defaultWidth,
		height:   defaultHeight,
	}

	for i, name := range m.families {
		if name == family {
			m.family = i
			break
		}
	}

	m.refresh()
	return m
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// Family returns the family on screen.
func (m Model) Family() string {
	return m.families[m.family]
}

// Scheme returns the scheme on screen.
func (m Model) Scheme() token.Scheme {
	return m.scheme
}

// Err returns the last render error, if any.
func (m Model) Err() error {
	return m.err
}

func (m *Model) nextFamily() {
	m.family = (m.family + 1) % len(m.families)
	m.refresh()
}

func (m *Model) prevFamily() {
	m.family--
	if m.family < 0 {
		m.family = len(m.families) - 1
	}
	m.refresh()
}

func (m *Model) toggleScheme() {
	if m.scheme == token.Light {
		m.scheme = token.Dark
	} else {
		m.scheme = token.Light
	}
	m.refresh()
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.viewport.Width = width
	m.viewport.Height = max(height-chromeHeight, 1)
}

// refresh re-renders the current family into the viewport and scrolls to
// the top.
func (m *Model) refresh() {
	content, err := showcase.Render(m.resolver, m.Family(), m.scheme)
	m.err = err
	if err != nil {
		content = err.Error()
	}
	m.viewport.SetContent(content)
	m.viewport.GotoTop()
}
