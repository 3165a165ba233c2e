package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/facetlabs/facet/domain"
	"github.com/facetlabs/facet/panels"
)

// row is one selectable line in a panel body.
type row struct {
	id    string
	label string
	depth int
	kind  domain.Kind
}

// panelView is the rendering state for one open panel. The selected field is
// maintained by the panel's OnSelectionChange callback, so it is always the
// context's current selection by the time View runs.
type panelView struct {
	panel    *panels.Panel
	cursor   int
	selected string
}

// rows computes the selectable lines for the panel's presentation against
// the current graph. Properties and text panels have no selectable rows;
// they resolve the context's selection instead.
func (v *panelView) rows(g *domain.Graph) []row {
	switch v.panel.Presentation {
	case panels.PresentationTree:
		return treeRows(g, v.panel.Scope)
	case panels.PresentationViewport:
		return instanceRows(g, v.panel.Scope)
	case panels.PresentationList, panels.PresentationGrid:
		return childRows(g, v.panel.Scope)
	default:
		return nil
	}
}

// clampCursor keeps the cursor inside the current row count, e.g. after a
// world reload shrank the listing.
func (v *panelView) clampCursor(g *domain.Graph) {
	n := len(v.rows(g))
	if v.cursor >= n {
		v.cursor = n - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

// cursorRow returns the row under the cursor, if any.
func (v *panelView) cursorRow(g *domain.Graph) (row, bool) {
	rows := v.rows(g)
	if v.cursor < 0 || v.cursor >= len(rows) {
		return row{}, false
	}
	return rows[v.cursor], true
}

// treeRows flattens the subtree under a scope, root included.
func treeRows(g *domain.Graph, scope domain.Scope) []row {
	node, ok := g.NodeByScope(scope)
	if !ok {
		return nil
	}

	var out []row
	var rec func(n *domain.Node, depth int)
	rec = func(n *domain.Node, depth int) {
		out = append(out, row{id: n.ID, label: n.Name, depth: depth, kind: n.Kind})
		for _, c := range n.Children() {
			rec(c, depth+1)
		}
	}
	rec(node, 0)
	return out
}

// childRows lists the immediate children of a scope.
func childRows(g *domain.Graph, scope domain.Scope) []row {
	var out []row
	for _, c := range g.ChildrenForScope(scope) {
		out = append(out, row{id: c.ID, label: c.Name, kind: c.Kind})
	}
	return out
}

// instanceRows lists every instance in the subtree under a scope, the
// flattened "what is in this place" view a viewport presents.
func instanceRows(g *domain.Graph, scope domain.Scope) []row {
	node, ok := g.NodeByScope(scope)
	if !ok {
		return nil
	}

	var out []row
	var rec func(n *domain.Node)
	rec = func(n *domain.Node) {
		if n.Kind == domain.KindInstance {
			label := n.Name
			if class := n.Prop("class"); class != "" {
				label = fmt.Sprintf("%s (%s)", n.Name, class)
			}
			out = append(out, row{id: n.ID, label: label, kind: n.Kind})
		}
		for _, c := range n.Children() {
			rec(c)
		}
	}
	rec(node)
	return out
}

// propertiesLines renders the selected node's details, or a placeholder when
// nothing is selected or the id no longer resolves. Both are normal states,
// not errors.
func propertiesLines(g *domain.Graph, selected string) []string {
	if selected == "" {
		return []string{"(no selection)"}
	}
	node, ok := g.NodeByID(selected)
	if !ok {
		return []string{fmt.Sprintf("(%s not found)", selected)}
	}

	lines := []string{
		fmt.Sprintf("Name     %s", node.Name),
		fmt.Sprintf("Kind     %s", node.Kind),
		fmt.Sprintf("Id       %s", node.ID),
	}
	if node.ParentID != "" {
		lines = append(lines, fmt.Sprintf("Parent   %s", node.ParentID))
	}
	for _, k := range sortedPropKeys(node) {
		lines = append(lines, fmt.Sprintf("%-8s %s", k, node.Prop(k)))
	}
	return lines
}

// textLines renders the scope's node as prose, including where-used
// information for assets.
func textLines(g *domain.Graph, scope domain.Scope) []string {
	node, ok := g.NodeByScope(scope)
	if !ok {
		return []string{fmt.Sprintf("(%s not found)", scope)}
	}

	lines := []string{node.Name}
	if t := node.Prop("type"); t != "" {
		lines = append(lines, fmt.Sprintf("type: %s", t))
	}

	if node.Kind == domain.KindAsset {
		usages := g.UsagesOfAsset(node.ID)
		if len(usages) == 0 {
			lines = append(lines, "", "not used anywhere")
		} else {
			lines = append(lines, "", "used by:")
			for _, u := range usages {
				entry := "  " + u.InstanceID
				if inst, ok := g.NodeByID(u.InstanceID); ok {
					entry = "  " + inst.Name
				}
				if u.Detail != "" {
					entry += " - " + u.Detail
				}
				lines = append(lines, entry)
			}
		}
	}
	return lines
}

func sortedPropKeys(n *domain.Node) []string {
	if len(n.Props) == 0 {
		return nil
	}
	keys := make([]string, 0, len(n.Props))
	for k := range n.Props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// title renders the panel header: presentation, scope and state.
func (v *panelView) title() string {
	return fmt.Sprintf("%s %s [%s]",
		strings.ToUpper(string(v.panel.Presentation)[:1])+string(v.panel.Presentation)[1:],
		v.panel.Scope,
		v.panel.State,
	)
}
