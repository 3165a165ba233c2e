package panels

import (
	"fmt"

	"github.com/facetlabs/facet/domain"
)

// ContextKey derives the canonical key for the (scope, state) pair that
// defines a selection context. The derivation is pure and deterministic:
// every component that needs a context key must go through this function so
// that panels agree on what they share.
//
// The key format is "kind:id|state". Distinct (scope, state) pairs never
// collapse to the same key because kinds, ids and states contain neither
// ':' nor '|' by construction.
func ContextKey(scope domain.Scope, state State) string {
	return fmt.Sprintf("%s:%s|%s", scope.Kind, scope.ID, state)
}
