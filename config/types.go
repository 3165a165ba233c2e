package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Config is the parsed facet.yml document.
type Config struct {
	// Version of the config format.
	Version string `yaml:"version"`

	// World is the path to the world document. Empty means the built-in
	// sample world.
	World string `yaml:"world"`

	// Theme selects the TUI color theme.
	Theme string `yaml:"theme"`

	// DefaultState is the state new panels open in when none is given.
	DefaultState string `yaml:"default_state"`

	// Panels lists the panels to open at startup.
	Panels []PanelConfig `yaml:"panels"`

	// Extensions holds custom configuration sections for tools built on
	// facet. Use UnmarshalExtension to decode them.
	Extensions map[string]interface{} `yaml:"extensions"`
}

// PanelConfig describes one panel opened at startup.
type PanelConfig struct {
	// Scope in "kind:id" form, e.g. "game:g1".
	Scope string `yaml:"scope"`

	// State the panel opens in. Empty falls back to DefaultState.
	State string `yaml:"state"`

	// Presentation of the panel (tree, viewport, list, grid, properties, text).
	Presentation string `yaml:"presentation"`

	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SetDefaults applies default values to unset fields.
func (c *Config) SetDefaults() {
	if c.Version == "" {
		c.Version = "1.0"
	}
	if c.Theme == "" {
		c.Theme = "kanagawa"
	}
	if c.DefaultState == "" {
		c.DefaultState = "edit"
	}
	for i := range c.Panels {
		if c.Panels[i].State == "" {
			c.Panels[i].State = c.DefaultState
		}
		if c.Panels[i].Presentation == "" {
			c.Panels[i].Presentation = "tree"
		}
	}
}

// UnmarshalExtension decodes a specific extension's configuration from the
// loaded facet.yml into the provided target struct. The target must be a
// pointer. This provides a type-safe way for extensions to access their
// custom configuration sections.
//
// Example:
//
//	var logCfg logging.Config
//	err := cfg.UnmarshalExtension("logging", &logCfg)
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		// It's not an error if the key doesn't exist.
		// The target struct will simply remain zero-valued.
		return nil
	}

	// Use mapstructure to decode the generic map[string]interface{}
	// into the strongly-typed target struct. We configure it to use
	// `yaml` tags for consistency.
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "yaml",
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}
