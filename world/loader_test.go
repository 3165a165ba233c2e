package world

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facetlabs/facet/domain"
	"github.com/facetlabs/facet/errors"
)

func TestParseBuildsGraph(t *testing.T) {
	g, err := Parse([]byte(`
version: "1"
owners:
  - id: acct-1
    name: Studio
    kind: account
    games:
      - id: g1
        name: Skylands
        places:
          - id: p1
            name: Hub
            instances:
              - id: i1
                name: Workspace
                children:
                  - id: i2
                    name: SpawnPad
                    class: SpawnLocation
inventories:
  - id: inv-1
    name: Inventory
    assets:
      - id: m1
        name: GateMesh
        type: mesh
usages:
  - instance: i2
    asset: m1
`))
	require.NoError(t, err)

	require.Len(t, g.Roots(), 2)
	assert.Equal(t, domain.KindAccount, g.Roots()[0].Kind)

	// Nested instances land under their parent instance, not the place.
	spawn, ok := g.NodeByScope(domain.NewScope(domain.KindInstance, "i2"))
	require.True(t, ok)
	assert.Equal(t, "i1", spawn.ParentID)
	assert.Equal(t, "SpawnLocation", spawn.Prop("class"))

	asset, ok := g.NodeByScope(domain.NewScope(domain.KindAsset, "m1"))
	require.True(t, ok)
	assert.Equal(t, "mesh", asset.Prop("type"))

	require.Len(t, g.UsagesOfAsset("m1"), 1)
	assert.Equal(t, "i2", g.UsagesOfAsset("m1")[0].InstanceID)
}

func TestParseOwnerDefaultsToOwnerKind(t *testing.T) {
	g, err := Parse([]byte(`
owners:
  - id: o1
    name: Solo
`))
	require.NoError(t, err)
	require.Len(t, g.Roots(), 1)
	assert.Equal(t, domain.KindOwner, g.Roots()[0].Kind)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("owners: [\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeWorldInvalid))
}

func TestParseRejectsSchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "missing owners",
			doc:  "version: \"1\"\n",
		},
		{
			name: "owner without name",
			doc: `
owners:
  - id: o1
`,
		},
		{
			name: "id with reserved character",
			doc: `
owners:
  - id: "bad:id"
    name: Bad
`,
		},
		{
			name: "unknown owner kind",
			doc: `
owners:
  - id: o1
    name: Bad
    kind: committee
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeWorldValidation))
		})
	}
}

func TestParseRejectsDuplicateIDs(t *testing.T) {
	_, err := Parse([]byte(`
owners:
  - id: o1
    name: First
  - id: o1
    name: Second
`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeWorldValidation))
}

func TestParseRejectsDanglingUsage(t *testing.T) {
	doc := `
owners:
  - id: o1
    name: Studio
    games:
      - id: g1
        name: Game
        places:
          - id: p1
            name: Place
            instances:
              - id: i1
                name: Thing
inventories:
  - id: inv-1
    name: Inventory
    assets:
      - id: m1
        name: Mesh
usages:
  - instance: %s
    asset: %s
`
	tests := []struct {
		name     string
		instance string
		asset    string
	}{
		{"unknown instance", "nope", "m1"},
		{"unknown asset", "i1", "nope"},
		{"asset id used as instance", "m1", "m1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(fmt.Sprintf(doc, tt.instance, tt.asset)))
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeWorldValidation))
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeWorldNotFound))
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.yml")
	require.NoError(t, os.WriteFile(path, SampleYAML(), 0644))

	g, err := Load(path)
	require.NoError(t, err)
	assert.Greater(t, g.Len(), 0)
}

func TestSampleWorldIsValid(t *testing.T) {
	g := Sample()

	// The demo data the panels open against must resolve.
	for _, scope := range []domain.Scope{
		domain.NewScope(domain.KindGame, "g1"),
		domain.NewScope(domain.KindPlace, "p1"),
		domain.NewScope(domain.KindInstance, "instance-7"),
		domain.NewScope(domain.KindAsset, "m1"),
	} {
		_, ok := g.NodeByScope(scope)
		assert.True(t, ok, "sample world should contain %s", scope)
	}

	assert.NotEmpty(t, g.UsagesOfAsset("m1"))
}

func TestEnvVarExpansionInWorld(t *testing.T) {
	t.Setenv("FACET_TEST_GAME_NAME", "Expanded")

	g, err := Parse([]byte(`
owners:
  - id: o1
    name: Studio
    games:
      - id: g1
        name: ${FACET_TEST_GAME_NAME}
`))
	require.NoError(t, err)

	game, ok := g.NodeByScope(domain.NewScope(domain.KindGame, "g1"))
	require.True(t, ok)
	assert.Equal(t, "Expanded", game.Name)
}
