package domain

// Usage is a recorded cross-reference from an instance to an inventory asset
// it consumes. It powers "where is this used" queries.
type Usage struct {
	InstanceID string
	AssetID    string
	Detail     string
}

// AddUsage records a usage cross-reference.
func (g *Graph) AddUsage(u Usage) {
	g.usages = append(g.usages, u)
}

// Usages returns all recorded usage cross-references.
func (g *Graph) Usages() []Usage {
	return g.usages
}

// UsagesOfAsset returns every usage that consumes the given asset.
func (g *Graph) UsagesOfAsset(assetID string) []Usage {
	var out []Usage
	for _, u := range g.usages {
		if u.AssetID == assetID {
			out = append(out, u)
		}
	}
	return out
}

// UsagesByInstance returns every usage recorded for the given instance.
func (g *Graph) UsagesByInstance(instanceID string) []Usage {
	var out []Usage
	for _, u := range g.usages {
		if u.InstanceID == instanceID {
			out = append(out, u)
		}
	}
	return out
}
