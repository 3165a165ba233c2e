package config

import (
	"fmt"
	"strings"

	"github.com/facetlabs/facet/domain"
	"github.com/facetlabs/facet/errors"
	"github.com/facetlabs/facet/panels"
)

// Validate checks that the loaded configuration is usable: states,
// presentations and scope references must be well-formed. Validation happens
// once at load time so the coordination core can assume every scope and state
// it sees is valid by construction.
func (c *Config) Validate() error {
	if _, ok := panels.ParseState(c.DefaultState); !ok {
		return errors.ConfigInvalid(fmt.Sprintf("unknown default_state %q", c.DefaultState))
	}

	for i, p := range c.Panels {
		if _, err := p.ParseScope(); err != nil {
			return errors.ConfigInvalid(fmt.Sprintf("panels[%d]: %v", i, err))
		}
		if _, ok := panels.ParseState(p.State); !ok {
			return errors.ConfigInvalid(fmt.Sprintf("panels[%d]: unknown state %q", i, p.State))
		}
		if _, ok := panels.ParsePresentation(p.Presentation); !ok {
			return errors.ConfigInvalid(fmt.Sprintf("panels[%d]: unknown presentation %q", i, p.Presentation))
		}
	}
	return nil
}

// ParseScope parses the panel's "kind:id" scope reference.
func (p PanelConfig) ParseScope() (domain.Scope, error) {
	kindStr, id, found := strings.Cut(p.Scope, ":")
	if !found || id == "" {
		return domain.Scope{}, fmt.Errorf("scope %q is not in kind:id form", p.Scope)
	}
	kind, ok := domain.ParseKind(kindStr)
	if !ok {
		return domain.Scope{}, fmt.Errorf("unknown scope kind %q", kindStr)
	}
	return domain.NewScope(kind, id), nil
}
