package panels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facetlabs/facet/domain"
	"github.com/facetlabs/facet/errors"
)

// recorder collects the selection events delivered to one panel.
type recorder struct {
	events []SelectionEvent
}

func (r *recorder) callback() func(SelectionEvent) {
	return func(e SelectionEvent) { r.events = append(r.events, e) }
}

func (r *recorder) last() SelectionEvent {
	if len(r.events) == 0 {
		return SelectionEvent{}
	}
	return r.events[len(r.events)-1]
}

func openRecorded(c *Coordinator, scope domain.Scope, state State, pres Presentation) (*Panel, *recorder) {
	rec := &recorder{}
	p := c.OpenPanel(PanelSpec{
		Scope:             scope,
		State:             state,
		Presentation:      pres,
		OnSelectionChange: rec.callback(),
	})
	return p, rec
}

func TestOpenPanelAssignsMonotonicIDs(t *testing.T) {
	c := NewCoordinator(nil)
	p1, _ := openRecorded(c, domain.NewScope(domain.KindGame, "g1"), StateEdit, PresentationTree)
	p2, _ := openRecorded(c, domain.NewScope(domain.KindGame, "g1"), StateEdit, PresentationList)
	require.NoError(t, c.ClosePanel(p1.ID))
	p3, _ := openRecorded(c, domain.NewScope(domain.KindGame, "g2"), StateEdit, PresentationTree)

	assert.Less(t, p1.ID, p2.ID)
	assert.Less(t, p2.ID, p3.ID, "closed ids are never reused")
}

func TestOpenPanelDeliversInitialSelection(t *testing.T) {
	c := NewCoordinator(nil)
	scope := domain.NewScope(domain.KindPlace, "p1")
	key := ContextKey(scope, StateEdit)
	c.SetSelection(key, "instance-7")

	_, rec := openRecorded(c, scope, StateEdit, PresentationTree)
	require.Len(t, rec.events, 1, "opening delivers exactly one initial event")
	assert.Equal(t, "instance-7", rec.last().Selected)
	assert.Equal(t, key, rec.last().ContextKey)
}

func TestIsolationBetweenContexts(t *testing.T) {
	c := NewCoordinator(nil)
	p1, r1 := openRecorded(c, domain.NewScope(domain.KindGame, "g1"), StateEdit, PresentationTree)
	p2, r2 := openRecorded(c, domain.NewScope(domain.KindGame, "g1"), StateBrowse, PresentationTree)
	require.NotEqual(t, p1.ContextKey(), p2.ContextKey())

	before := len(r2.events)
	c.SetSelection(p1.ContextKey(), "x")

	_, ok := c.Selection(p2.ContextKey())
	assert.False(t, ok, "other context's selection must stay empty")
	assert.Len(t, r2.events, before, "panels in other contexts must not be notified")
	assert.Equal(t, "x", r1.last().Selected)
}

func TestSharingWithinContext(t *testing.T) {
	c := NewCoordinator(nil)
	scope := domain.NewScope(domain.KindGame, "g1")
	p1, r1 := openRecorded(c, scope, StateEdit, PresentationTree)
	_, r2 := openRecorded(c, scope, StateEdit, PresentationViewport)

	b1, b2 := len(r1.events), len(r2.events)
	c.SetSelection(p1.ContextKey(), "instance-7")

	assert.Len(t, r1.events, b1+1, "each sharing panel fires exactly once per mutation")
	assert.Len(t, r2.events, b2+1)
	assert.Equal(t, "instance-7", r1.last().Selected)
	assert.Equal(t, "instance-7", r2.last().Selected)

	sel, ok := c.Selection(p1.ContextKey())
	require.True(t, ok)
	assert.Equal(t, "instance-7", sel)
}

func TestToggleSelectionSemantics(t *testing.T) {
	c := NewCoordinator(nil)
	key := ContextKey(domain.NewScope(domain.KindPlace, "p1"), StateEdit)

	// Toggling the same item twice returns the context to empty.
	c.ToggleSelection(key, "a")
	sel, ok := c.Selection(key)
	require.True(t, ok)
	assert.Equal(t, "a", sel)

	c.ToggleSelection(key, "a")
	_, ok = c.Selection(key)
	assert.False(t, ok)

	// Toggling a different item replaces, never accumulates.
	c.ToggleSelection(key, "a")
	c.ToggleSelection(key, "b")
	sel, ok = c.Selection(key)
	require.True(t, ok)
	assert.Equal(t, "b", sel)
}

func TestSetSelectionEmptyClears(t *testing.T) {
	c := NewCoordinator(nil)
	key := ContextKey(domain.NewScope(domain.KindAsset, "m1"), StateEdit)

	c.SetSelection(key, "m1-child")
	c.SetSelection(key, "")
	_, ok := c.Selection(key)
	assert.False(t, ok)

	c.SetSelection(key, "m1-child")
	c.ClearSelection(key)
	_, ok = c.Selection(key)
	assert.False(t, ok)
}

func TestUntouchedContextReadsEmpty(t *testing.T) {
	c := NewCoordinator(nil)
	sel, ok := c.Selection("game:never|edit")
	assert.False(t, ok)
	assert.Empty(t, sel)
}

func TestBroadcastCompletesBeforeReturn(t *testing.T) {
	c := NewCoordinator(nil)
	scope := domain.NewScope(domain.KindGame, "g1")
	key := ContextKey(scope, StateEdit)

	observed := ""
	c.OpenPanel(PanelSpec{
		Scope: scope,
		State: StateEdit,
		OnSelectionChange: func(e SelectionEvent) {
			sel, _ := c.Selection(e.ContextKey)
			observed = sel
		},
	})

	c.SetSelection(key, "instance-7")
	// The callback already ran and saw the committed value.
	assert.Equal(t, "instance-7", observed)
}

func TestReassignmentMigratesSubscription(t *testing.T) {
	c := NewCoordinator(nil)
	scope := domain.NewScope(domain.KindGame, "g1")
	p, rec := openRecorded(c, scope, StateEdit, PresentationTree)
	c1 := p.ContextKey()

	require.NoError(t, c.ReassignPanelState(p.ID, StatePreview))
	c2 := p.ContextKey()
	require.NotEqual(t, c1, c2)
	assert.Equal(t, scope, p.Scope, "scope axis is unchanged")
	assert.Equal(t, PresentationTree, p.Presentation, "presentation axis is unchanged")

	before := len(rec.events)
	c.SetSelection(c1, "old-home")
	assert.Len(t, rec.events, before, "old context no longer reaches the panel")

	c.SetSelection(c2, "new-home")
	require.Len(t, rec.events, before+1)
	assert.Equal(t, "new-home", rec.last().Selected)
}

func TestReassignmentDeliversNewContextSelection(t *testing.T) {
	c := NewCoordinator(nil)
	scope := domain.NewScope(domain.KindGame, "g1")
	target := ContextKey(scope, StateServer)
	c.SetSelection(target, "script-1")

	p, rec := openRecorded(c, scope, StateEdit, PresentationText)
	before := len(rec.events)

	require.NoError(t, c.ReassignPanelState(p.ID, StateServer))
	require.Len(t, rec.events, before+1, "migration delivers one event for the new context")
	assert.Equal(t, "script-1", rec.last().Selected)
}

func TestReassignUnknownPanel(t *testing.T) {
	c := NewCoordinator(nil)
	err := c.ReassignPanelState(99, StateBrowse)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodePanelNotFound))
}

func TestCloseUnknownPanel(t *testing.T) {
	c := NewCoordinator(nil)
	err := c.ClosePanel(42)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodePanelNotFound))
}

func TestSharedTreeAndViewportScenario(t *testing.T) {
	// Panels A and B look at the same game in edit state with different
	// presentations; panel C looks at an asset and is unaffected throughout.
	c := NewCoordinator(nil)
	game := domain.NewScope(domain.KindGame, "g1")
	asset := domain.NewScope(domain.KindAsset, "m1")

	a, ra := openRecorded(c, game, StateEdit, PresentationTree)
	b, rb := openRecorded(c, game, StateEdit, PresentationViewport)
	cPanel, rc := openRecorded(c, asset, StateEdit, PresentationText)
	require.Equal(t, a.ContextKey(), b.ContextKey())

	cEvents := len(rc.events)
	c.SetSelection(a.ContextKey(), "instance-7")

	assert.Equal(t, "instance-7", ra.last().Selected)
	assert.Equal(t, "instance-7", rb.last().Selected)
	assert.Len(t, rc.events, cEvents, "asset panel sees nothing")
	_, ok := c.Selection(cPanel.ContextKey())
	assert.False(t, ok, "asset context selection remains empty")

	// Closing A leaves the shared context's selection intact for B.
	require.NoError(t, c.ClosePanel(a.ID))
	sel, ok := c.Selection(b.ContextKey())
	require.True(t, ok)
	assert.Equal(t, "instance-7", sel)

	// And B keeps receiving mutations alone.
	bEvents := len(rb.events)
	c.SetSelection(b.ContextKey(), "instance-8")
	assert.Len(t, rb.events, bEvents+1)
}

func TestClosedPanelReceivesNoEvents(t *testing.T) {
	c := NewCoordinator(nil)
	scope := domain.NewScope(domain.KindPlace, "p1")
	p, rec := openRecorded(c, scope, StateEdit, PresentationList)
	key := p.ContextKey()

	require.NoError(t, c.ClosePanel(p.ID))
	before := len(rec.events)
	c.SetSelection(key, "anything")
	assert.Len(t, rec.events, before)
}

func TestDormantContextKeepsSelectionForReuse(t *testing.T) {
	c := NewCoordinator(nil)
	scope := domain.NewScope(domain.KindPlace, "p1")
	p, _ := openRecorded(c, scope, StateEdit, PresentationList)
	key := p.ContextKey()

	c.SetSelection(key, "instance-7")
	require.NoError(t, c.ClosePanel(p.ID))

	// A later panel joining the dormant context sees its old selection.
	_, rec := openRecorded(c, scope, StateEdit, PresentationTree)
	require.Len(t, rec.events, 1)
	assert.Equal(t, "instance-7", rec.last().Selected)
}

func TestPanelsInContext(t *testing.T) {
	c := NewCoordinator(nil)
	scope := domain.NewScope(domain.KindGame, "g1")
	p1, _ := openRecorded(c, scope, StateEdit, PresentationTree)
	openRecorded(c, scope, StateEdit, PresentationList)
	openRecorded(c, scope, StateBrowse, PresentationList)

	assert.Len(t, c.PanelsInContext(p1.ContextKey()), 2)
	assert.Len(t, c.OpenPanels(), 3)

	got, ok := c.Panel(p1.ID)
	require.True(t, ok)
	assert.Same(t, p1, got)
}

// stubRenderer records renderer hook invocations.
type stubRenderer struct {
	opened []PanelID
	closed []PanelID
}

func (r *stubRenderer) PanelOpened(p *Panel)   { r.opened = append(r.opened, p.ID) }
func (r *stubRenderer) PanelClosed(id PanelID) { r.closed = append(r.closed, id) }

func TestRendererHooks(t *testing.T) {
	c := NewCoordinator(nil)
	rend := &stubRenderer{}
	c.SetRenderer(rend)

	p, _ := openRecorded(c, domain.NewScope(domain.KindGame, "g1"), StateEdit, PresentationTree)
	require.NoError(t, c.ClosePanel(p.ID))

	assert.Equal(t, []PanelID{p.ID}, rend.opened)
	assert.Equal(t, []PanelID{p.ID}, rend.closed)
}

func TestContextColorStability(t *testing.T) {
	c := NewCoordinator(nil)
	k1 := ContextKey(domain.NewScope(domain.KindGame, "g1"), StateEdit)
	k2 := ContextKey(domain.NewScope(domain.KindGame, "g1"), StateBrowse)

	c1 := c.ContextColor(k1)
	c2 := c.ContextColor(k2)
	assert.NotEqual(t, c1, c2)
	assert.Equal(t, c1, c.ContextColor(k1), "assignment is stable")

	// Panels joining a context reuse its slot.
	p, _ := openRecorded(c, domain.NewScope(domain.KindGame, "g1"), StateEdit, PresentationTree)
	assert.Equal(t, c1, c.ContextColor(p.ContextKey()))
}
