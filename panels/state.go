package panels

// State is the mode a panel (and therefore its context) operates in.
type State string

const (
	StateEdit    State = "edit"
	StateBrowse  State = "browse"
	StatePreview State = "preview"
	StateClient  State = "client"
	StateServer  State = "server"
)

// States lists every supported panel state.
var States = []State{StateEdit, StateBrowse, StatePreview, StateClient, StateServer}

// ParseState converts a string into a State, reporting whether it is supported.
func ParseState(s string) (State, bool) {
	for _, st := range States {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// Next returns the state following this one, wrapping around. Used by the
// "change state via menu" interaction to migrate a panel between contexts.
func (s State) Next() State {
	for i, st := range States {
		if st == s {
			return States[(i+1)%len(States)]
		}
	}
	return StateEdit
}

// Presentation is the rendering style of a panel. It has no influence on
// selection sharing: two panels with the same scope and state share a context
// regardless of how they draw themselves.
type Presentation string

const (
	PresentationTree       Presentation = "tree"
	PresentationViewport   Presentation = "viewport"
	PresentationList       Presentation = "list"
	PresentationGrid       Presentation = "grid"
	PresentationProperties Presentation = "properties"
	PresentationText       Presentation = "text"
)

// Presentations lists every supported presentation.
var Presentations = []Presentation{
	PresentationTree,
	PresentationViewport,
	PresentationList,
	PresentationGrid,
	PresentationProperties,
	PresentationText,
}

// ParsePresentation converts a string into a Presentation, reporting whether
// it is supported.
func ParsePresentation(s string) (Presentation, bool) {
	for _, p := range Presentations {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}
