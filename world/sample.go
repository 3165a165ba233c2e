package world

import "github.com/facetlabs/facet/domain"

// sampleYAML is the built-in demo world, used when no world file is
// configured. It is a valid world document, so `facet init` writes it out
// verbatim as a starting point.
const sampleYAML = `version: "1"
owners:
  - id: acct-1
    name: Driftwood Studio
    kind: account
    games:
      - id: g1
        name: Skylands
        places:
          - id: p1
            name: Hub
            instances:
              - id: instance-1
                name: Workspace
                class: Folder
                children:
                  - id: instance-7
                    name: SpawnPad
                    class: SpawnLocation
                    props:
                      anchored: "true"
                  - id: instance-8
                    name: Gate
                    class: Model
                    children:
                      - id: instance-9
                        name: GateHinge
                        class: Part
              - id: instance-2
                name: Lighting
                class: Lighting
          - id: p2
            name: Arena
            instances:
              - id: instance-20
                name: Workspace
                class: Folder
                children:
                  - id: instance-21
                    name: ScorePost
                    class: Model
      - id: g2
        name: Mineshaft
        places:
          - id: p3
            name: Entrance
            instances:
              - id: instance-30
                name: Elevator
                class: Model
  - id: owner-2
    name: Solo Dev
    games:
      - id: g3
        name: Sandbox
inventories:
  - id: inv-1
    name: Studio Inventory
    assets:
      - id: m1
        name: GateMesh
        type: mesh
      - id: m2
        name: ClangSound
        type: audio
      - id: s1
        name: DoorScript
        type: script
usages:
  - instance: instance-8
    asset: m1
    detail: mesh
  - instance: instance-8
    asset: s1
    detail: open/close behavior
  - instance: instance-21
    asset: m2
    detail: hit sound
`

// Sample returns the built-in demo graph.
func Sample() *domain.Graph {
	g, err := Parse([]byte(sampleYAML))
	if err != nil {
		// The sample is compiled in and covered by tests; failing to parse
		// it is a programming error.
		panic(err)
	}
	return g
}

// SampleYAML returns the built-in demo world as a document, for `facet init`.
func SampleYAML() []byte {
	return []byte(sampleYAML)
}
