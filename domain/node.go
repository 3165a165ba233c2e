package domain

import "fmt"

// Kind identifies what category of domain object a node (or a Scope) refers to.
type Kind string

const (
	KindOwner     Kind = "owner"
	KindAccount   Kind = "account"
	KindGame      Kind = "game"
	KindPlace     Kind = "place"
	KindInstance  Kind = "instance"
	KindInventory Kind = "inventory"
	KindAsset     Kind = "asset"
)

// Kinds lists every supported node kind.
var Kinds = []Kind{
	KindOwner,
	KindAccount,
	KindGame,
	KindPlace,
	KindInstance,
	KindInventory,
	KindAsset,
}

// ParseKind converts a string into a Kind, reporting whether it is supported.
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// Scope identifies a domain node by (kind, id). It is an immutable value:
// two scopes are equal iff kind and id match.
type Scope struct {
	Kind Kind
	ID   string
}

// NewScope constructs a scope for a node.
func NewScope(kind Kind, id string) Scope {
	return Scope{Kind: kind, ID: id}
}

// String renders the scope in its canonical "kind:id" form.
func (s Scope) String() string {
	return fmt.Sprintf("%s:%s", s.Kind, s.ID)
}

// IsZero reports whether the scope is the empty value.
func (s Scope) IsZero() bool {
	return s.Kind == "" && s.ID == ""
}

// Node is one entry in the domain graph. The parent's child slice owns its
// children; ParentID is a back-reference used only for lookups.
type Node struct {
	Kind     Kind
	ID       string
	Name     string
	ParentID string
	Props    map[string]string

	children []*Node
}

// Scope returns the scope value that identifies this node.
func (n *Node) Scope() Scope {
	return Scope{Kind: n.Kind, ID: n.ID}
}

// Children returns the node's children in insertion order.
func (n *Node) Children() []*Node {
	return n.children
}

// Prop returns a display property of the node, or "" when unset.
func (n *Node) Prop(key string) string {
	if n.Props == nil {
		return ""
	}
	return n.Props[key]
}
