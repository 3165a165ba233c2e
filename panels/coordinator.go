package panels

import (
	"github.com/sirupsen/logrus"

	"github.com/facetlabs/facet/errors"
)

// Coordinator owns all mutable view-coordination state: the selection store,
// the panel registry, the per-context listener sets and the per-context
// accent-color registry. It is explicitly injected into everything that
// mutates selections, so tests and embedders can run multiple independent
// instances.
//
// The coordinator is single-threaded by contract: all mutations happen
// synchronously inside one interaction at a time, and every broadcast
// completes before the mutating call returns. No panel ever observes a stale
// selection after the handler that changed it returns.
type Coordinator struct {
	log *logrus.Entry

	selections  map[string]string
	panels      map[PanelID]*Panel
	subscribers map[string]map[PanelID]*Panel
	colorSlots  map[string]int
	nextColor   int
	nextID      PanelID

	renderer Renderer
}

// NewCoordinator creates an empty coordinator.
func NewCoordinator(log *logrus.Entry) *Coordinator {
	if log == nil {
		log = logrus.NewEntry(logrus.New())
	}
	return &Coordinator{
		log:         log,
		selections:  make(map[string]string),
		panels:      make(map[PanelID]*Panel),
		subscribers: make(map[string]map[PanelID]*Panel),
		colorSlots:  make(map[string]int),
		nextID:      1,
	}
}

// SetRenderer attaches the rendering collaborator. Panels opened before the
// renderer is attached do not receive a retroactive PanelOpened call.
func (c *Coordinator) SetRenderer(r Renderer) {
	c.renderer = r
}

// --- Selection store ---

// Selection returns the current selection for a context. A context that has
// never been touched reads as empty; no entry is created as a side effect.
func (c *Coordinator) Selection(contextKey string) (string, bool) {
	sel, ok := c.selections[contextKey]
	if !ok || sel == "" {
		return "", false
	}
	return sel, true
}

// SetSelection replaces the selection for a context atomically. Any previous
// selection is cleared; an empty itemID clears the selection entirely. The
// broadcast to every panel in the context completes before SetSelection
// returns.
func (c *Coordinator) SetSelection(contextKey, itemID string) {
	if itemID == "" {
		delete(c.selections, contextKey)
	} else {
		c.selections[contextKey] = itemID
	}
	c.log.WithFields(logrus.Fields{
		"context":  contextKey,
		"selected": itemID,
	}).Debug("Selection changed")
	c.broadcast(contextKey)
}

// ClearSelection clears the selection for a context.
func (c *Coordinator) ClearSelection(contextKey string) {
	c.SetSelection(contextKey, "")
}

// ToggleSelection clears itemID if it is currently selected, and otherwise
// replaces the current selection with itemID. This is single-selection mode:
// toggling a new item always deselects the old one, exactly as the original
// prototypes behaved.
func (c *Coordinator) ToggleSelection(contextKey, itemID string) {
	if c.selections[contextKey] == itemID {
		c.SetSelection(contextKey, "")
		return
	}
	c.SetSelection(contextKey, itemID)
}

// broadcast notifies every panel subscribed to contextKey, and only those.
// No ordering between panels sharing a context is guaranteed.
func (c *Coordinator) broadcast(contextKey string) {
	selected := c.selections[contextKey]
	for _, p := range c.subscribers[contextKey] {
		p.notify(selected)
	}
}

// --- Panel registry ---

// OpenPanel allocates a new panel, derives its context key, registers it,
// hands it to the rendering collaborator and immediately delivers one
// selection event so the panel reflects the context's current selection.
func (c *Coordinator) OpenPanel(spec PanelSpec) *Panel {
	p := &Panel{
		ID:                c.nextID,
		Scope:             spec.Scope,
		State:             spec.State,
		Presentation:      spec.Presentation,
		Layout:            spec.Layout,
		onSelectionChange: spec.OnSelectionChange,
		contextKey:        ContextKey(spec.Scope, spec.State),
	}
	c.nextID++

	c.panels[p.ID] = p
	c.subscribe(p)

	c.log.WithFields(logrus.Fields{
		"panel":        p.ID,
		"context":      p.contextKey,
		"presentation": p.Presentation,
	}).Debug("Panel opened")

	if c.renderer != nil {
		c.renderer.PanelOpened(p)
	}
	p.notify(c.selections[p.contextKey])
	return p
}

// ClosePanel removes a panel from the registry. The selection entry for its
// context is left untouched: other panels may still share it, and a dormant
// context keeps its selection for reuse.
func (c *Coordinator) ClosePanel(id PanelID) error {
	p, ok := c.panels[id]
	if !ok {
		return errors.PanelNotFound(int(id))
	}

	c.unsubscribe(p)
	delete(c.panels, id)

	c.log.WithFields(logrus.Fields{
		"panel":   id,
		"context": p.contextKey,
	}).Debug("Panel closed")

	if c.renderer != nil {
		c.renderer.PanelClosed(id)
	}
	return nil
}

// ReassignPanelState changes only the state axis of an open panel. Its scope
// and presentation are unchanged; the context key is recomputed and the panel
// re-subscribes to the new context, receiving one event with that context's
// current selection.
func (c *Coordinator) ReassignPanelState(id PanelID, newState State) error {
	p, ok := c.panels[id]
	if !ok {
		return errors.PanelNotFound(int(id))
	}

	oldKey := p.contextKey
	c.unsubscribe(p)
	p.State = newState
	p.contextKey = ContextKey(p.Scope, newState)
	c.subscribe(p)

	c.log.WithFields(logrus.Fields{
		"panel": id,
		"from":  oldKey,
		"to":    p.contextKey,
	}).Debug("Panel state reassigned")

	p.notify(c.selections[p.contextKey])
	return nil
}

// Panel returns an open panel by id.
func (c *Coordinator) Panel(id PanelID) (*Panel, bool) {
	p, ok := c.panels[id]
	return p, ok
}

// OpenPanels returns every open panel, in no particular order.
func (c *Coordinator) OpenPanels() []*Panel {
	out := make([]*Panel, 0, len(c.panels))
	for _, p := range c.panels {
		out = append(out, p)
	}
	return out
}

// PanelsInContext returns the open panels subscribed to a context key.
func (c *Coordinator) PanelsInContext(contextKey string) []*Panel {
	subs := c.subscribers[contextKey]
	out := make([]*Panel, 0, len(subs))
	for _, p := range subs {
		out = append(out, p)
	}
	return out
}

func (c *Coordinator) subscribe(p *Panel) {
	set, ok := c.subscribers[p.contextKey]
	if !ok {
		set = make(map[PanelID]*Panel)
		c.subscribers[p.contextKey] = set
	}
	set[p.ID] = p
	c.touchColor(p.contextKey)
}

func (c *Coordinator) unsubscribe(p *Panel) {
	set, ok := c.subscribers[p.contextKey]
	if !ok {
		return
	}
	delete(set, p.ID)
	if len(set) == 0 {
		delete(c.subscribers, p.contextKey)
	}
}
