package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facetlabs/facet/config"
	"github.com/facetlabs/facet/errors"
	"github.com/facetlabs/facet/panels"
	"github.com/facetlabs/facet/world"
)

func newTestApp(t *testing.T, cfg *config.Config) *App {
	t.Helper()
	if cfg == nil {
		cfg = &config.Config{}
	}
	cfg.SetDefaults()
	app, err := NewApp(world.Sample(), cfg, nil)
	require.NoError(t, err)
	return app
}

func press(app *App, keys ...string) {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEscape}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "shift+tab":
			msg = tea.KeyMsg{Type: tea.KeyShiftTab}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		app.Update(msg)
	}
}

func TestNewAppOpensConfiguredPanels(t *testing.T) {
	app := newTestApp(t, &config.Config{
		Panels: []config.PanelConfig{
			{Scope: "place:p1", Presentation: "tree"},
			{Scope: "place:p1", Presentation: "viewport"},
			{Scope: "asset:m1", State: "browse", Presentation: "text"},
		},
	})

	require.Len(t, app.views, 3)
	assert.Equal(t, "place:p1|edit", app.views[0].panel.ContextKey())
	assert.Equal(t, "place:p1|edit", app.views[1].panel.ContextKey())
	assert.Equal(t, "asset:m1|browse", app.views[2].panel.ContextKey())
}

func TestNewAppDefaultLayoutWhenNoPanelsConfigured(t *testing.T) {
	app := newTestApp(t, nil)

	require.Len(t, app.views, 2)
	assert.Equal(t, app.views[0].panel.ContextKey(), app.views[1].panel.ContextKey())
}

func TestNewAppRejectsBadScope(t *testing.T) {
	cfg := &config.Config{
		Panels: []config.PanelConfig{{Scope: "nonsense"}},
	}
	cfg.SetDefaults()
	_, err := NewApp(world.Sample(), cfg, nil)
	assert.Error(t, err)
}

func TestNewAppRejectsUnknownNode(t *testing.T) {
	cfg := &config.Config{
		Panels: []config.PanelConfig{{Scope: "place:ghost"}},
	}
	cfg.SetDefaults()
	_, err := NewApp(world.Sample(), cfg, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeNodeNotFound))
}

func TestSelectionSharedAcrossPanelsInContext(t *testing.T) {
	app := newTestApp(t, &config.Config{
		Panels: []config.PanelConfig{
			{Scope: "place:p1", Presentation: "tree"},
			{Scope: "place:p1", Presentation: "viewport"},
		},
	})

	// Move the cursor in the tree and select. The viewport shares the
	// context, so its display selection updates before Update returns.
	press(app, "j", "enter")

	sel := app.views[0].selected
	require.NotEmpty(t, sel)
	assert.Equal(t, sel, app.views[1].selected)
}

func TestSelectionIsolatedBetweenStates(t *testing.T) {
	app := newTestApp(t, &config.Config{
		Panels: []config.PanelConfig{
			{Scope: "place:p1", State: "edit", Presentation: "tree"},
			{Scope: "place:p1", State: "browse", Presentation: "tree"},
		},
	})

	press(app, "enter")

	assert.NotEmpty(t, app.views[0].selected)
	assert.Empty(t, app.views[1].selected)
}

func TestToggleDeselects(t *testing.T) {
	app := newTestApp(t, &config.Config{
		Panels: []config.PanelConfig{{Scope: "place:p1", Presentation: "tree"}},
	})

	press(app, "enter")
	require.NotEmpty(t, app.views[0].selected)

	press(app, "enter")
	assert.Empty(t, app.views[0].selected)
}

func TestEscapeClearsSelection(t *testing.T) {
	app := newTestApp(t, &config.Config{
		Panels: []config.PanelConfig{{Scope: "place:p1", Presentation: "tree"}},
	})

	press(app, "enter")
	require.NotEmpty(t, app.views[0].selected)

	press(app, "esc")
	assert.Empty(t, app.views[0].selected)
}

func TestCycleStateMigratesContext(t *testing.T) {
	app := newTestApp(t, &config.Config{
		Panels: []config.PanelConfig{{Scope: "place:p1", State: "edit", Presentation: "tree"}},
	})

	press(app, "enter")
	require.NotEmpty(t, app.views[0].selected)

	// Cycling into browse leaves the edit selection behind and adopts
	// browse's (empty) selection.
	press(app, "s")
	assert.Equal(t, "place:p1|browse", app.views[0].panel.ContextKey())
	assert.Empty(t, app.views[0].selected)

	// Cycling back through the remaining states returns to edit, where the
	// dormant selection is still waiting.
	press(app, "s", "s", "s", "s")
	assert.Equal(t, "place:p1|edit", app.views[0].panel.ContextKey())
	assert.NotEmpty(t, app.views[0].selected)
}

func TestDuplicatePanelJoinsContext(t *testing.T) {
	app := newTestApp(t, &config.Config{
		Panels: []config.PanelConfig{{Scope: "place:p1", Presentation: "tree"}},
	})

	press(app, "enter")
	sel := app.views[0].selected
	require.NotEmpty(t, sel)

	press(app, "o")
	require.Len(t, app.views, 2)
	assert.Equal(t, app.views[0].panel.ContextKey(), app.views[1].panel.ContextKey())
	assert.Equal(t, sel, app.views[1].selected)
	assert.Equal(t, 1, app.focus)
}

func TestClosePanelKeepsSiblingSelection(t *testing.T) {
	app := newTestApp(t, &config.Config{
		Panels: []config.PanelConfig{
			{Scope: "place:p1", Presentation: "tree"},
			{Scope: "place:p1", Presentation: "viewport"},
		},
	})

	press(app, "enter")
	sel := app.views[1].selected
	require.NotEmpty(t, sel)

	press(app, "x")
	require.Len(t, app.views, 1)
	assert.Equal(t, sel, app.views[0].selected)
}

func TestFocusCycling(t *testing.T) {
	app := newTestApp(t, &config.Config{
		Panels: []config.PanelConfig{
			{Scope: "place:p1", Presentation: "tree"},
			{Scope: "place:p2", Presentation: "tree"},
		},
	})

	assert.Equal(t, 0, app.focus)
	press(app, "tab")
	assert.Equal(t, 1, app.focus)
	press(app, "tab")
	assert.Equal(t, 0, app.focus)
	press(app, "shift+tab")
	assert.Equal(t, 1, app.focus)
}

func TestWorldReloadClampsCursor(t *testing.T) {
	app := newTestApp(t, &config.Config{
		Panels: []config.PanelConfig{{Scope: "place:p1", Presentation: "tree"}},
	})

	press(app, "G")
	require.Greater(t, app.views[0].cursor, 0)

	smaller, err := world.Parse([]byte(`version: "1"
owners:
  - id: acct-1
    name: Tiny
    games:
      - id: g1
        name: OneGame
        places:
          - id: p1
            name: Empty
`))
	require.NoError(t, err)

	app.Update(WorldReloadedMsg{Graph: smaller})
	assert.Equal(t, 0, app.views[0].cursor)
	assert.Equal(t, "World reloaded", app.status)
}

func TestViewRendersPanelsAndStatus(t *testing.T) {
	app := newTestApp(t, &config.Config{
		Theme: "terminal",
		Panels: []config.PanelConfig{
			{Scope: "place:p1", Presentation: "tree"},
			{Scope: "place:p1", Presentation: "properties"},
		},
	})
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	out := app.View()
	assert.Contains(t, out, "Hub")
	assert.Contains(t, out, "(no selection)")
	assert.Contains(t, out, "ctx place:p1|edit")

	press(app, "enter")
	out = app.View()
	assert.Contains(t, out, "Kind")
	assert.NotContains(t, out, "(no selection)")
}

func TestHelpViewTogglesOnAnyKey(t *testing.T) {
	app := newTestApp(t, nil)

	press(app, "?")
	assert.True(t, app.showHelp)
	assert.Contains(t, app.View(), "Keybindings")

	press(app, "j")
	assert.False(t, app.showHelp)
}

func TestQuitReturnsQuitCmd(t *testing.T) {
	app := newTestApp(t, nil)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Equal(t, "", app.View())
}

func TestTextPanelShowsAssetUsage(t *testing.T) {
	app := newTestApp(t, &config.Config{
		Theme: "terminal",
		Panels: []config.PanelConfig{
			{Scope: "asset:m1", State: "browse", Presentation: "text"},
		},
	})

	out := app.View()
	assert.Contains(t, out, "used by:")
}

func TestNextPresentationWraps(t *testing.T) {
	seen := map[panels.Presentation]bool{}
	p := panels.PresentationTree
	for i := 0; i < len(panels.Presentations); i++ {
		seen[p] = true
		p = nextPresentation(p)
	}
	assert.Len(t, seen, len(panels.Presentations))
	assert.Equal(t, panels.PresentationTree, p)
}
