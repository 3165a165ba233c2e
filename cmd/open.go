package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/facetlabs/facet/cli"
	"github.com/facetlabs/facet/config"
	"github.com/facetlabs/facet/domain"
	"github.com/facetlabs/facet/errors"
	"github.com/facetlabs/facet/state"
	"github.com/facetlabs/facet/tui"
	"github.com/facetlabs/facet/world"
)

func NewOpenCmd() *cobra.Command {
	var worldFlag string

	cmd := &cobra.Command{
		Use:   "open",
		Short: "Open the panel workspace for a world",
		Long: `Open the interactive panel workspace.

The world document comes from --world, the 'world' entry in facet.yml,
or the built-in sample world, in that order. While the workspace is
open the world file is watched and reloaded on change.`,
		Example: `  # Open the world configured in facet.yml
  facet open

  # Open a specific world document
  facet open --world ./world.yml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.GetOptions(cmd)
			handler := cli.NewErrorHandler(opts.Verbose)
			log := cli.GetLogger(cmd).WithField("component", "facet")

			cfg, err := loadConfig(opts.ConfigFile)
			if err != nil {
				return handler.Handle(err)
			}

			worldPath := worldFlag
			if worldPath == "" {
				worldPath = cfg.World
			}

			graph, err := loadWorld(worldPath)
			if err != nil {
				return handler.Handle(err)
			}

			if worldPath != "" {
				if err := state.Set("last_world", worldPath); err != nil {
					log.WithError(err).Debug("Failed to record last world")
				}
			}

			app, err := tui.NewApp(graph, cfg, log)
			if err != nil {
				return handler.Handle(err)
			}

			tui.Initialize()
			program := tea.NewProgram(app, tea.WithAltScreen())

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			if worldPath != "" {
				watcher, err := world.NewWatcher(worldPath, 0, func(g *domain.Graph) {
					program.Send(tui.WorldReloadedMsg{Graph: g})
				})
				if err != nil {
					log.WithError(err).Warn("World watching disabled")
				} else {
					defer watcher.Close()
					go watcher.Start(ctx)
				}
			}

			if _, err := program.Run(); err != nil {
				return handler.Handle(errors.Wrap(err, errors.ErrCodeInternal, "workspace exited abnormally"))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&worldFlag, "world", "w", "", "Path to the world document")
	return cmd
}

// loadConfig resolves the effective configuration: an explicit --config file,
// the nearest facet.yml, or built-in defaults when neither exists.
func loadConfig(configFile string) (*config.Config, error) {
	if configFile != "" {
		return config.Load(configFile)
	}

	path, err := cli.InitConfig(configFile)
	if err != nil {
		return nil, err
	}
	if path == "" {
		cfg := &config.Config{}
		cfg.SetDefaults()
		return cfg, nil
	}

	// Load with global merging from the found project config's directory.
	return config.LoadFrom(filepath.Dir(path))
}

// loadWorld loads a world document, or the built-in sample when no path is
// configured.
func loadWorld(path string) (*domain.Graph, error) {
	if path == "" {
		fmt.Println("No world configured, using the built-in sample world.")
		return world.Sample(), nil
	}
	return world.Load(path)
}
