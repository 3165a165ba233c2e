package world

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/facetlabs/facet/domain"
	"github.com/facetlabs/facet/errors"
)

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// Load reads, validates and converts a world document into a domain graph.
func Load(path string) (*domain.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WorldNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeWorldInvalid, "failed to read world document").
			WithDetail("path", path)
	}

	g, err := Parse(data)
	if err != nil {
		if facetErr, ok := err.(*errors.FacetError); ok {
			return nil, facetErr.WithDetail("path", path)
		}
		return nil, err
	}
	return g, nil
}

// Parse validates world document data and builds the domain graph.
func Parse(data []byte) (*domain.Graph, error) {
	expanded := expandEnvVars(string(data))

	var doc Document
	if err := yaml.Unmarshal([]byte(expanded), &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeWorldInvalid, "failed to parse world document")
	}

	validator, err := NewValidator()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to load world schema")
	}
	if err := validator.Validate(&doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeWorldValidation, "world document rejected by schema")
	}

	return build(&doc)
}

// build converts a schema-valid document into a graph, enforcing the
// semantic rules the schema cannot express: ids are unique across the whole
// document, and usage records reference existing instances and assets.
func build(doc *Document) (*domain.Graph, error) {
	g := domain.NewGraph()
	seen := make(map[string]bool)

	claim := func(id string) error {
		if seen[id] {
			return errors.WorldValidation(fmt.Sprintf("duplicate id %q", id))
		}
		seen[id] = true
		return nil
	}

	var addInstances func(parent *domain.Node, docs []InstanceDoc) error
	addInstances = func(parent *domain.Node, docs []InstanceDoc) error {
		for _, inst := range docs {
			if err := claim(inst.ID); err != nil {
				return err
			}
			props := inst.Props
			if inst.Class != "" {
				if props == nil {
					props = map[string]string{}
				} else {
					copied := make(map[string]string, len(props)+1)
					for k, v := range props {
						copied[k] = v
					}
					props = copied
				}
				props["class"] = inst.Class
			}
			node := g.AddChild(parent, &domain.Node{
				Kind:  domain.KindInstance,
				ID:    inst.ID,
				Name:  inst.Name,
				Props: props,
			})
			if err := addInstances(node, inst.Children); err != nil {
				return err
			}
		}
		return nil
	}

	for _, owner := range doc.Owners {
		if err := claim(owner.ID); err != nil {
			return nil, err
		}
		kind := domain.KindOwner
		if owner.Kind == "account" {
			kind = domain.KindAccount
		}
		ownerNode := g.AddRoot(&domain.Node{Kind: kind, ID: owner.ID, Name: owner.Name})

		for _, game := range owner.Games {
			if err := claim(game.ID); err != nil {
				return nil, err
			}
			gameNode := g.AddChild(ownerNode, &domain.Node{
				Kind: domain.KindGame,
				ID:   game.ID,
				Name: game.Name,
			})

			for _, place := range game.Places {
				if err := claim(place.ID); err != nil {
					return nil, err
				}
				placeNode := g.AddChild(gameNode, &domain.Node{
					Kind: domain.KindPlace,
					ID:   place.ID,
					Name: place.Name,
				})
				if err := addInstances(placeNode, place.Instances); err != nil {
					return nil, err
				}
			}
		}
	}

	for _, inv := range doc.Inventories {
		if err := claim(inv.ID); err != nil {
			return nil, err
		}
		invNode := g.AddRoot(&domain.Node{Kind: domain.KindInventory, ID: inv.ID, Name: inv.Name})

		for _, asset := range inv.Assets {
			if err := claim(asset.ID); err != nil {
				return nil, err
			}
			props := asset.Props
			if asset.Type != "" {
				if props == nil {
					props = map[string]string{}
				} else {
					copied := make(map[string]string, len(props)+1)
					for k, v := range props {
						copied[k] = v
					}
					props = copied
				}
				props["type"] = asset.Type
			}
			g.AddChild(invNode, &domain.Node{
				Kind:  domain.KindAsset,
				ID:    asset.ID,
				Name:  asset.Name,
				Props: props,
			})
		}
	}

	for _, u := range doc.Usages {
		inst, ok := g.NodeByID(u.Instance)
		if !ok || inst.Kind != domain.KindInstance {
			return nil, errors.WorldValidation(
				fmt.Sprintf("usage references unknown instance %q", u.Instance))
		}
		asset, ok := g.NodeByID(u.Asset)
		if !ok || asset.Kind != domain.KindAsset {
			return nil, errors.WorldValidation(
				fmt.Sprintf("usage references unknown asset %q", u.Asset))
		}
		g.AddUsage(domain.Usage{InstanceID: u.Instance, AssetID: u.Asset, Detail: u.Detail})
	}

	return g, nil
}

// expandEnvVars replaces ${VAR} references with environment values.
func expandEnvVars(s string) string {
	return envVarRegex.ReplaceAllStringFunc(s, func(match string) string {
		name := envVarRegex.FindStringSubmatch(match)[1]
		if val, ok := os.LookupEnv(name); ok {
			return val
		}
		return match
	})
}
