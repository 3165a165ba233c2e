package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/facetlabs/facet/cli"
	"github.com/facetlabs/facet/state"
	"github.com/facetlabs/facet/world"
)

func NewValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [world-file]",
		Short: "Validate a world document against the schema",
		Long: `Validate a world document without opening the workspace.

With no argument the world configured in facet.yml is validated.
Checks YAML syntax, the document schema, id uniqueness and that every
usage reference resolves.`,
		Example: `  # Validate the configured world
  facet validate

  # Validate a specific file
  facet validate ./world.yml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.GetOptions(cmd)
			handler := cli.NewErrorHandler(opts.Verbose)

			var path string
			if len(args) > 0 {
				path = args[0]
			} else {
				cfg, err := loadConfig(opts.ConfigFile)
				if err != nil {
					return handler.Handle(err)
				}
				path = cfg.World
			}

			if path == "" {
				// Fall back to the last world this project opened.
				path, _ = state.GetString("last_world")
			}
			if path == "" {
				fmt.Println("No world document configured; nothing to validate.")
				return nil
			}

			graph, err := world.Load(path)
			if err != nil {
				return handler.Handle(err)
			}

			fmt.Printf("✓ %s is valid (%d nodes)\n", path, graph.Len())
			return nil
		},
	}
	return cmd
}
