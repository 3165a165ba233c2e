package config

import (
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/facetlabs/facet/errors"
)

// ConfigFileNames are the recognized config file names, in lookup order.
var ConfigFileNames = []string{"facet.yml", "facet.yaml"}

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// Load reads and parses a facet configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	return LoadFromBytes(data)
}

// LoadFromBytes parses configuration data, applies defaults and validates.
func LoadFromBytes(data []byte) (*Config, error) {
	expanded := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse config")
	}

	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDefault finds and loads the configuration with hierarchical merging:
// 1. Global config (~/.config/facet/facet.yml) - base layer
// 2. Project config (facet.yml, found walking up from the cwd) - overrides global
func LoadDefault() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to get current directory")
	}

	return LoadFrom(cwd)
}

// LoadFrom loads configuration with hierarchical merging starting from the given directory
func LoadFrom(startDir string) (*Config, error) {
	projectPath, err := FindConfigFile(startDir)
	if err != nil {
		return nil, err
	}

	var final *Config

	// 1. Load global config if it exists (optional)
	globalPath := getXDGConfigPath()
	if globalPath != "" {
		if _, err := os.Stat(globalPath); err == nil {
			globalData, err := os.ReadFile(globalPath)
			if err == nil {
				expanded := expandEnvVars(string(globalData))
				var globalConfig Config
				if err := yaml.Unmarshal([]byte(expanded), &globalConfig); err == nil {
					final = &globalConfig
				}
				// A broken global config is ignored; the project config
				// stands on its own.
			}
		}
	}

	// 2. Load and merge project config (required)
	projectData, err := os.ReadFile(projectPath)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read project config").
			WithDetail("path", projectPath)
	}

	expanded := expandEnvVars(string(projectData))
	var projectConfig Config
	if err := yaml.Unmarshal([]byte(expanded), &projectConfig); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse project config").
			WithDetail("path", projectPath)
	}

	if final == nil {
		final = &projectConfig
	} else {
		final = mergeConfigs(final, &projectConfig)
	}

	// Relative world paths are resolved against the project config's directory.
	if final.World != "" && !filepath.IsAbs(final.World) {
		final.World = filepath.Join(filepath.Dir(projectPath), final.World)
	}

	final.SetDefaults()
	if err := final.Validate(); err != nil {
		return nil, err
	}
	return final, nil
}

// FindConfigFile searches for a config file starting from the given
// directory and walking up toward the filesystem root.
func FindConfigFile(startDir string) (string, error) {
	dir := startDir
	for {
		for _, name := range ConfigFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.ConfigNotFound(filepath.Join(startDir, ConfigFileNames[0]))
		}
		dir = parent
	}
}

// mergeConfigs overlays the project config on top of the base (global)
// config. Scalar fields from the overlay win when set; extension sections
// are merged key-wise with overlay keys winning.
func mergeConfigs(base, overlay *Config) *Config {
	merged := *base

	if overlay.Version != "" {
		merged.Version = overlay.Version
	}
	if overlay.World != "" {
		merged.World = overlay.World
	}
	if overlay.Theme != "" {
		merged.Theme = overlay.Theme
	}
	if overlay.DefaultState != "" {
		merged.DefaultState = overlay.DefaultState
	}
	if len(overlay.Panels) > 0 {
		merged.Panels = overlay.Panels
	}

	if len(overlay.Extensions) > 0 {
		if merged.Extensions == nil {
			merged.Extensions = make(map[string]interface{}, len(overlay.Extensions))
		} else {
			copied := make(map[string]interface{}, len(merged.Extensions)+len(overlay.Extensions))
			for k, v := range merged.Extensions {
				copied[k] = v
			}
			merged.Extensions = copied
		}
		for k, v := range overlay.Extensions {
			merged.Extensions[k] = v
		}
	}

	return &merged
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

func getXDGConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "facet", "facet.yml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "facet", "facet.yml")
}
