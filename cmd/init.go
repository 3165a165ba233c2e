package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/facetlabs/facet/world"
)

const initialConfig = `version: "1.0"
world: world.yml
theme: kanagawa
default_state: edit

panels:
  - scope: place:p1
    presentation: tree
  - scope: place:p1
    presentation: viewport
  - scope: place:p1
    presentation: properties
`

func NewInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter facet.yml and sample world",
		Long: `Create facet.yml and world.yml in the current directory.

The world is the built-in sample, a small two-owner catalog that the
starter panels point into. Existing files are left alone unless --force
is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			files := map[string][]byte{
				"facet.yml": []byte(initialConfig),
				"world.yml": world.SampleYAML(),
			}

			for name, data := range files {
				if !force {
					if _, err := os.Stat(name); err == nil {
						fmt.Printf("Skipping %s: already exists (use --force to overwrite)\n", name)
						continue
					}
				}
				if err := os.WriteFile(name, data, 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", name, err)
				}
				fmt.Printf("Created %s\n", name)
			}

			fmt.Println("\nRun 'facet open' to start the workspace.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files")
	return cmd
}
