package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DuelFile is the config file name looked up in each search directory.
const DuelFile = "duel.yaml"

// LoadDuel loads the duel configuration.
// Search order: customPath -> ~/.blockduel/configs/duel.yaml -> ./configs/duel.yaml -> embedded default.
// Keys missing from a file keep their default values. A custom path that
// cannot be read or parsed is an error; the other locations are skipped
// silently when absent or broken.
func LoadDuel(customPath string) (DuelConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DuelConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseDuel(data)
		if err != nil {
			return DuelConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, path := range []string{userConfigPath(DuelFile), filepath.Join("configs", DuelFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseDuel(data); err == nil {
			return cfg, cfg.Validate()
		}
	}

	cfg, err := parseDuel(defaultDuelYAML)
	if err != nil {
		return DefaultDuelConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// parseDuel decodes YAML over the defaults.
func parseDuel(data []byte) (DuelConfig, error) {
	cfg := DefaultDuelConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DuelConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a config file in the user's config directory.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blockduel", "configs", filename)
}
