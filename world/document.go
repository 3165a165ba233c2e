package world

// Document is the raw shape of a world file (world.yml). It mirrors the
// owners.json document the earlier prototypes shipped: a forest of owners and
// inventories plus usage cross-references, converted into a domain.Graph
// after validation.
type Document struct {
	Version     string         `yaml:"version" json:"version"`
	Owners      []OwnerDoc     `yaml:"owners" json:"owners"`
	Inventories []InventoryDoc `yaml:"inventories,omitempty" json:"inventories,omitempty"`
	Usages      []UsageDoc     `yaml:"usages,omitempty" json:"usages,omitempty"`
}

// OwnerDoc is an owner or account with its games.
type OwnerDoc struct {
	ID    string    `yaml:"id" json:"id"`
	Name  string    `yaml:"name" json:"name"`
	Kind  string    `yaml:"kind,omitempty" json:"kind,omitempty"` // "owner" (default) or "account"
	Games []GameDoc `yaml:"games,omitempty" json:"games,omitempty"`
}

// GameDoc is a game with its places.
type GameDoc struct {
	ID     string     `yaml:"id" json:"id"`
	Name   string     `yaml:"name" json:"name"`
	Places []PlaceDoc `yaml:"places,omitempty" json:"places,omitempty"`
}

// PlaceDoc is a place with its instance tree.
type PlaceDoc struct {
	ID        string        `yaml:"id" json:"id"`
	Name      string        `yaml:"name" json:"name"`
	Instances []InstanceDoc `yaml:"instances,omitempty" json:"instances,omitempty"`
}

// InstanceDoc is one instance; instances nest arbitrarily.
type InstanceDoc struct {
	ID       string            `yaml:"id" json:"id"`
	Name     string            `yaml:"name" json:"name"`
	Class    string            `yaml:"class,omitempty" json:"class,omitempty"`
	Props    map[string]string `yaml:"props,omitempty" json:"props,omitempty"`
	Children []InstanceDoc     `yaml:"children,omitempty" json:"children,omitempty"`
}

// InventoryDoc is an inventory with its assets.
type InventoryDoc struct {
	ID     string     `yaml:"id" json:"id"`
	Name   string     `yaml:"name" json:"name"`
	Assets []AssetDoc `yaml:"assets,omitempty" json:"assets,omitempty"`
}

// AssetDoc is one inventory asset.
type AssetDoc struct {
	ID    string            `yaml:"id" json:"id"`
	Name  string            `yaml:"name" json:"name"`
	Type  string            `yaml:"type,omitempty" json:"type,omitempty"`
	Props map[string]string `yaml:"props,omitempty" json:"props,omitempty"`
}

// UsageDoc records that an instance consumes an asset.
type UsageDoc struct {
	Instance string `yaml:"instance" json:"instance"`
	Asset    string `yaml:"asset" json:"asset"`
	Detail   string `yaml:"detail,omitempty" json:"detail,omitempty"`
}
