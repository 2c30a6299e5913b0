package config

import (
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const (
	userConfigRelPath  = "kaya/rocket.yaml"
	localConfigRelPath = "configs/rocket.yaml"
)

// Load loads the rocket scene configuration.
// Search order: customPath -> $XDG_CONFIG_HOME/kaya/rocket.yaml -> ./configs/rocket.yaml -> embedded default.
// Files are decoded over the defaults, so a file only needs the keys it changes.
func Load(customPath string) (RocketConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RocketConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return RocketConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory. A file
	// that exists but does not parse is an error, not a silent fallback.
	for _, path := range []string{userConfigPath(), localConfigRelPath} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := Parse(data)
		if err != nil {
			return RocketConfig{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultRocketYAML)
	if err != nil {
		return DefaultRocketConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the default configuration and validates the result.
func Parse(data []byte) (RocketConfig, error) {
	cfg := DefaultRocketConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RocketConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RocketConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg RocketConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the existing user config file, or empty if there is none.
func userConfigPath() string {
	path, err := xdg.SearchConfigFile(userConfigRelPath)
	if err != nil {
		return ""
	}
	return path
}
