package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const biomassFile = "biomass.yaml"

// LoadBiomass loads the game configuration.
// Search order: customPath -> ~/.biomass/configs/biomass.yaml -> ./configs/biomass.yaml -> embedded default
//
// Files are decoded on top of the embedded defaults, so a file only needs
// the sections it changes. A list that is present replaces the default list.
func LoadBiomass(customPath string) (BiomassConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BiomassConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := overlay(data)
		if err != nil {
			return BiomassConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(biomassFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := overlay(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", biomassFile)); err == nil {
		if cfg, err := overlay(data); err == nil {
			return cfg, nil
		}
	}

	return embeddedDefault(), nil
}

// embeddedDefault parses the embedded YAML, falling back to the hardcoded
// defaults if the embed is broken.
func embeddedDefault() BiomassConfig {
	var cfg BiomassConfig
	if err := yaml.Unmarshal(defaultBiomassYAML, &cfg); err != nil {
		return DefaultBiomassConfig()
	}
	return cfg
}

func overlay(data []byte) (BiomassConfig, error) {
	cfg := embeddedDefault()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BiomassConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".biomass", "configs", filename)
}

// WriteYAML writes the config to path, creating parent directories.
func (c BiomassConfig) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}
