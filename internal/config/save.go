package config

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/aidanlsb/journey/internal/atomicfile"
)

type persistedConfig struct {
	DefaultVault *string           `toml:"default_vault,omitempty"`
	Vaults       map[string]string `toml:"vaults,omitempty"`
	Editor       *string           `toml:"editor,omitempty"`
	UI           *persistedUI      `toml:"ui,omitempty"`
}

type persistedUI struct {
	Accent *string `toml:"accent,omitempty"`
}

func nonEmptyPtr(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// SaveTo writes the global config to a specific path atomically.
func SaveTo(path string, cfg *Config) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("config path is required")
	}
	if cfg == nil {
		cfg = &Config{}
	}

	out := persistedConfig{
		DefaultVault: nonEmptyPtr(cfg.DefaultVault),
		Editor:       nonEmptyPtr(cfg.Editor),
	}
	if accent := nonEmptyPtr(cfg.UI.Accent); accent != nil {
		out.UI = &persistedUI{Accent: accent}
	}
	if len(cfg.Vaults) > 0 {
		out.Vaults = cfg.Vaults
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(out); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := atomicfile.WriteFile(path, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}
