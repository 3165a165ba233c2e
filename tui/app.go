package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/facetlabs/facet/config"
	"github.com/facetlabs/facet/domain"
	"github.com/facetlabs/facet/errors"
	"github.com/facetlabs/facet/panels"
	"github.com/facetlabs/facet/tui/theme"
)

// WorldReloadedMsg carries a freshly loaded graph into the update loop. The
// world watcher sends it via tea.Program.Send, keeping all coordination
// mutations on the single update goroutine.
type WorldReloadedMsg struct {
	Graph *domain.Graph
}

// App is the bubbletea model hosting every open panel.
type App struct {
	coord *panels.Coordinator
	graph *domain.Graph
	theme *theme.Theme
	keys  KeyMap

	views    []*panelView
	focus    int
	width    int
	height   int
	showHelp bool
	status   string
	quitting bool
}

// NewApp builds the workspace: a coordinator, a theme and one panel per
// config entry. A config without panels gets a tree over the first root.
func NewApp(graph *domain.Graph, cfg *config.Config, log *logrus.Entry) (*App, error) {
	a := &App{
		coord:  panels.NewCoordinator(log),
		graph:  graph,
		theme:  theme.New(cfg.Theme),
		keys:   DefaultKeyMap(),
		status: "Ready",
		width:  100,
		height: 32,
	}

	specs := cfg.Panels
	if len(specs) == 0 {
		specs = defaultPanels(graph, cfg.DefaultState)
	}

	for _, pc := range specs {
		scope, err := pc.ParseScope()
		if err != nil {
			return nil, err
		}
		// A configured panel must point at a real node. Nodes disappearing
		// later (a world reload) are tolerated; a bad facet.yml is not.
		if _, ok := graph.NodeByScope(scope); !ok {
			return nil, errors.NodeNotFound(scope.String())
		}
		state, ok := panels.ParseState(pc.State)
		if !ok {
			state = panels.StateEdit
		}
		pres, ok := panels.ParsePresentation(pc.Presentation)
		if !ok {
			pres = panels.PresentationTree
		}
		a.openPanel(scope, state, pres, panels.LayoutHints{Width: pc.Width, Height: pc.Height})
	}
	return a, nil
}

// defaultPanels derives a starter layout when facet.yml lists no panels:
// a tree and a properties panel over the first root.
func defaultPanels(graph *domain.Graph, state string) []config.PanelConfig {
	roots := graph.Roots()
	if len(roots) == 0 {
		return nil
	}
	scope := roots[0].Scope().String()
	return []config.PanelConfig{
		{Scope: scope, State: state, Presentation: "tree"},
		{Scope: scope, State: state, Presentation: "properties"},
	}
}

// openPanel opens a panel through the coordinator and wires its selection
// callback to the view's display state.
func (a *App) openPanel(scope domain.Scope, state panels.State, pres panels.Presentation, layout panels.LayoutHints) {
	v := &panelView{}
	v.panel = a.coord.OpenPanel(panels.PanelSpec{
		Scope:        scope,
		State:        state,
		Presentation: pres,
		Layout:       layout,
		OnSelectionChange: func(e panels.SelectionEvent) {
			v.selected = e.Selected
		},
	})
	a.views = append(a.views, v)
}

// Coordinator exposes the app's coordinator, e.g. for status surfaces.
func (a *App) Coordinator() *panels.Coordinator {
	return a.coord
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Every selection mutation a key triggers is
// fully broadcast before Update returns, so View always renders a
// consistent workspace.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case WorldReloadedMsg:
		a.graph = msg.Graph
		for _, v := range a.views {
			v.clampCursor(a.graph)
		}
		a.status = "World reloaded"
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		a.quitting = true
		return a, tea.Quit

	case key.Matches(msg, a.keys.Help):
		a.showHelp = true
		return a, nil

	case key.Matches(msg, a.keys.FocusNext):
		if len(a.views) > 0 {
			a.focus = (a.focus + 1) % len(a.views)
		}
		return a, nil

	case key.Matches(msg, a.keys.FocusPrev):
		if len(a.views) > 0 {
			a.focus = (a.focus - 1 + len(a.views)) % len(a.views)
		}
		return a, nil
	}

	v := a.focusedView()
	if v == nil {
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.Up):
		if v.cursor > 0 {
			v.cursor--
		}

	case key.Matches(msg, a.keys.Down):
		if v.cursor < len(v.rows(a.graph))-1 {
			v.cursor++
		}

	case key.Matches(msg, a.keys.Top):
		v.cursor = 0

	case key.Matches(msg, a.keys.Bottom):
		v.cursor = len(v.rows(a.graph)) - 1
		if v.cursor < 0 {
			v.cursor = 0
		}

	case key.Matches(msg, a.keys.Select):
		if r, ok := v.cursorRow(a.graph); ok {
			a.coord.ToggleSelection(v.panel.ContextKey(), r.id)
		}

	case key.Matches(msg, a.keys.ClearSelect):
		a.coord.ClearSelection(v.panel.ContextKey())

	case key.Matches(msg, a.keys.CycleState):
		next := v.panel.State.Next()
		if err := a.coord.ReassignPanelState(v.panel.ID, next); err != nil {
			a.status = err.Error()
			return a, nil
		}
		a.status = fmt.Sprintf("Panel %d now in %s", v.panel.ID, next)

	case key.Matches(msg, a.keys.CyclePresentation):
		v.panel.Presentation = nextPresentation(v.panel.Presentation)
		v.clampCursor(a.graph)

	case key.Matches(msg, a.keys.DuplicatePanel):
		// A twin panel: same scope and state, next presentation. Both join
		// the same context and share its selection immediately.
		a.openPanel(v.panel.Scope, v.panel.State, nextPresentation(v.panel.Presentation), v.panel.Layout)
		a.focus = len(a.views) - 1

	case key.Matches(msg, a.keys.ClosePanel):
		a.closeFocused()
	}

	return a, nil
}

func (a *App) closeFocused() {
	v := a.focusedView()
	if v == nil {
		return
	}
	if err := a.coord.ClosePanel(v.panel.ID); err != nil {
		a.status = err.Error()
		return
	}
	a.views = append(a.views[:a.focus], a.views[a.focus+1:]...)
	if a.focus >= len(a.views) {
		a.focus = len(a.views) - 1
	}
	if a.focus < 0 {
		a.focus = 0
	}
}

func (a *App) focusedView() *panelView {
	if a.focus < 0 || a.focus >= len(a.views) {
		return nil
	}
	return a.views[a.focus]
}

func nextPresentation(p panels.Presentation) panels.Presentation {
	for i, c := range panels.Presentations {
		if c == p {
			return panels.Presentations[(i+1)%len(panels.Presentations)]
		}
	}
	return panels.PresentationTree
}

// View implements tea.Model.
func (a *App) View() string {
	if a.quitting {
		return ""
	}
	if a.showHelp {
		return a.helpView()
	}
	if len(a.views) == 0 {
		return a.theme.Muted.Render("No panels open. Press o on a panel, or add panels to facet.yml.") + "\n"
	}

	rendered := make([]string, 0, len(a.views))
	for i, v := range a.views {
		rendered = append(rendered, a.renderPanel(v, i == a.focus))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	return body + "\n" + a.statusBar()
}

// renderPanel draws one panel: bordered box, context-accented, title plus
// presentation body.
func (a *App) renderPanel(v *panelView, focused bool) string {
	width := v.panel.Layout.Width
	if width <= 0 {
		width = a.panelWidth()
	}
	bodyHeight := v.panel.Layout.Height
	if bodyHeight <= 0 {
		bodyHeight = a.height - 6
	}
	if bodyHeight < 3 {
		bodyHeight = 3
	}

	accent := a.theme.AccentFor(a.coord.ContextColor(v.panel.ContextKey()))

	var b strings.Builder
	b.WriteString(a.theme.PanelTitle.Foreground(accent).Render(v.title()))
	b.WriteString("\n")

	lines := a.bodyLines(v, focused)
	for i := 0; i < bodyHeight && i < len(lines); i++ {
		b.WriteString(lines[i])
		b.WriteString("\n")
	}

	style := a.theme.PanelBorder
	if focused {
		style = a.theme.PanelBorderFocused.BorderForeground(accent)
	}
	return style.Width(width).Render(strings.TrimRight(b.String(), "\n"))
}

func (a *App) bodyLines(v *panelView, focused bool) []string {
	switch v.panel.Presentation {
	case panels.PresentationProperties:
		return propertiesLines(a.graph, v.selected)
	case panels.PresentationText:
		return textLines(a.graph, v.panel.Scope)
	}

	rows := v.rows(a.graph)
	if len(rows) == 0 {
		return []string{a.theme.Muted.Render("(empty)")}
	}

	lines := make([]string, 0, len(rows))
	for i, r := range rows {
		var line strings.Builder

		if focused && i == v.cursor {
			line.WriteString(a.theme.Cursor.Render("▶ "))
		} else {
			line.WriteString("  ")
		}
		line.WriteString(strings.Repeat("  ", r.depth))

		label := r.label
		switch {
		case r.id == v.selected && focused:
			label = a.theme.Selected.Render(label)
		case r.id == v.selected:
			label = a.theme.SelectedUnfocused.Render(label)
		}
		line.WriteString(label)

		lines = append(lines, line.String())
	}
	return lines
}

func (a *App) panelWidth() int {
	n := len(a.views)
	if n == 0 {
		n = 1
	}
	w := a.width/n - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (a *App) statusBar() string {
	var parts []string
	if v := a.focusedView(); v != nil {
		sel := "none"
		if v.selected != "" {
			sel = v.selected
		}
		parts = append(parts, fmt.Sprintf("ctx %s", v.panel.ContextKey()))
		parts = append(parts, fmt.Sprintf("sel %s", sel))
	}
	parts = append(parts, a.status)
	parts = append(parts, "? help")
	return a.theme.Muted.Render(strings.Join(parts, " • "))
}

func (a *App) helpView() string {
	var b strings.Builder
	b.WriteString(a.theme.Title.Render("Keybindings"))
	b.WriteString("\n\n")
	for _, binding := range a.keys.HelpBindings() {
		h := binding.Help()
		b.WriteString(fmt.Sprintf("  %-8s %s\n", h.Key, h.Desc))
	}
	b.WriteString("\n")
	b.WriteString(a.theme.Muted.Render("Press any key to close help"))
	return b.String()
}
