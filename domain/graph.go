package domain

// Graph is the static in-memory tree of domain nodes. It is built once at
// startup; every node reachable from a root is registered in the id index at
// construction time and never removed.
type Graph struct {
	roots  []*Node
	index  map[string]*Node
	usages []Usage
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		index: make(map[string]*Node),
	}
}

// AddRoot registers a top-level node (an owner or account).
func (g *Graph) AddRoot(node *Node) *Node {
	g.roots = append(g.roots, node)
	g.register(node)
	return node
}

// AddChild appends a child under parent and registers it in the index.
// The parent's child slice owns the new node.
func (g *Graph) AddChild(parent *Node, child *Node) *Node {
	child.ParentID = parent.ID
	parent.children = append(parent.children, child)
	g.register(child)
	return child
}

func (g *Graph) register(node *Node) {
	g.index[node.ID] = node
}

// Roots returns the top-level nodes in insertion order.
func (g *Graph) Roots() []*Node {
	return g.roots
}

// NodeByID looks a node up in the global id index.
func (g *Graph) NodeByID(id string) (*Node, bool) {
	n, ok := g.index[id]
	return n, ok
}

// NodeByScope resolves a scope to its node. A scope whose id is present in
// the index but registered under a different kind is a miss: the caller asked
// for something that does not exist.
func (g *Graph) NodeByScope(scope Scope) (*Node, bool) {
	n, ok := g.index[scope.ID]
	if !ok || n.Kind != scope.Kind {
		return nil, false
	}
	return n, true
}

// ChildrenForScope returns the ordered children of the node a scope refers
// to. A lookup miss yields nil, never an error; rendering shows it as an
// empty listing.
func (g *Graph) ChildrenForScope(scope Scope) []*Node {
	n, ok := g.NodeByScope(scope)
	if !ok {
		return nil
	}
	return n.children
}

// Len returns the number of registered nodes.
func (g *Graph) Len() int {
	return len(g.index)
}

// Walk visits every node reachable from the roots in depth-first order.
func (g *Graph) Walk(visit func(*Node)) {
	var rec func(*Node)
	rec = func(n *Node) {
		visit(n)
		for _, c := range n.children {
			rec(c)
		}
	}
	for _, r := range g.roots {
		rec(r)
	}
}
