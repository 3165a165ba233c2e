package panels

import "github.com/facetlabs/facet/domain"

// PanelID uniquely identifies an open panel. Ids are assigned monotonically
// by the coordinator and never reused within a process.
type PanelID int

// LayoutHints carries the position and size a panel was opened with. The
// coordinator stores them verbatim for the rendering collaborator; they have
// no effect on selection sharing.
type LayoutHints struct {
	X      int
	Y      int
	Width  int
	Height int
}

// SelectionEvent is delivered to a panel whenever the selection of its
// context changes. Selected is empty when nothing is selected.
type SelectionEvent struct {
	ContextKey string
	Selected   string
}

// PanelSpec describes a panel to open.
type PanelSpec struct {
	Scope        domain.Scope
	State        State
	Presentation Presentation
	Layout       LayoutHints

	// OnSelectionChange is invoked synchronously for every selection
	// mutation in the panel's context, and once immediately when the panel
	// opens or migrates so it reflects the current selection.
	OnSelectionChange func(SelectionEvent)
}

// Panel is one open view bound to a (scope, state, presentation) tuple.
// Its context key is derived, never stored independently of scope and state;
// the coordinator recomputes it when the state axis changes.
type Panel struct {
	ID           PanelID
	Scope        domain.Scope
	State        State
	Presentation Presentation
	Layout       LayoutHints

	onSelectionChange func(SelectionEvent)
	contextKey        string
}

// ContextKey returns the panel's current derived context key.
func (p *Panel) ContextKey() string {
	return p.contextKey
}

func (p *Panel) notify(selected string) {
	if p.onSelectionChange == nil {
		return
	}
	p.onSelectionChange(SelectionEvent{ContextKey: p.contextKey, Selected: selected})
}

// Renderer is the external rendering collaborator. The coordinator tells it
// when panels appear and disappear; everything selection-related flows
// through the panels' own OnSelectionChange callbacks.
type Renderer interface {
	PanelOpened(*Panel)
	PanelClosed(PanelID)
}
