package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file name looked up in the search path.
const FileName = "dodgeball.yaml"

// Load loads and validates the dodgeball configuration.
// Search order: customPath -> ~/.dodgeball/dodgeball.yaml ->
// ./configs/dodgeball.yaml -> embedded default.
//
// Values missing from a file keep their defaults, so a partial file only
// overrides what it names.
func Load(customPath string) (DodgeballConfig, error) {
	cfg, _, err := LoadWithSource(customPath)
	return cfg, err
}

// LoadWithSource is Load that also reports where the configuration came from
// ("embedded" for the built-in default).
func LoadWithSource(customPath string) (DodgeballConfig, string, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, nil
	}

	for _, path := range searchPaths() {
		if _, statErr := os.Stat(path); statErr != nil {
			continue
		}
		cfg, err := loadFile(path)
		if err != nil {
			return cfg, path, err
		}
		return cfg, path, nil
	}

	cfg, err := Parse(defaultDodgeballYAML)
	if err != nil {
		// Fallback to hardcoded if embed fails
		return DefaultDodgeballConfig(), "embedded", nil
	}
	return cfg, "embedded", nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (DodgeballConfig, error) {
	cfg := DefaultDodgeballConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(path string) (DodgeballConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultDodgeballConfig(), fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func searchPaths() []string {
	paths := make([]string, 0, 2)
	if p := userConfigPath(FileName); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", FileName))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dodgeball", filename)
}
