// Package config handles the global journey configuration (the vault
// registry) and per-vault settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/aidanlsb/journey/internal/paths"
)

// ConfigEnvVar overrides the global config location.
const ConfigEnvVar = "JOURNEY_CONFIG"

// DefaultEditor is launched when neither the config nor $EDITOR names one.
const DefaultEditor = "nano"

// ErrNoVaults is returned when a vault is needed but none are registered.
var ErrNoVaults = errors.New("no vaults configured; use 'journeyctl init' to create one")

// VaultNotFoundError reports a vault that could not be selected.
type VaultNotFoundError struct {
	// Name is the requested vault, empty when selection was ambiguous.
	Name      string
	Available []string
}

func (e *VaultNotFoundError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("multiple vaults available: %s; specify one with --vault", strings.Join(e.Available, ", "))
	}
	if len(e.Available) == 0 {
		return fmt.Sprintf("vault '%s' not found in config", e.Name)
	}
	return fmt.Sprintf("vault '%s' not found in config (available: %s)", e.Name, strings.Join(e.Available, ", "))
}

// ParseError reports a config file that exists but could not be decoded.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse config %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Config represents the global journey configuration.
type Config struct {
	// DefaultVault is the name of the default vault (from Vaults map).
	DefaultVault string `toml:"default_vault"`

	// Vaults is a map of vault names to paths.
	Vaults map[string]string `toml:"vaults"`

	// Editor is the editor to use for opening files (defaults to $EDITOR).
	Editor string `toml:"editor"`

	UI UIConfig `toml:"ui"`
}

// UIConfig holds terminal display preferences.
type UIConfig struct {
	// Accent is an ANSI code (0-255), a hex color, or "none".
	Accent string `toml:"accent"`
}

// VaultNames returns the registered vault names, sorted.
func (c *Config) VaultNames() []string {
	names := make([]string, 0, len(c.Vaults))
	for name := range c.Vaults {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SelectVault resolves which vault to use: an explicit name, then the
// default vault, then the only registered vault. It returns the vault name
// and its expanded path.
func (c *Config) SelectVault(name string) (string, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = strings.TrimSpace(c.DefaultVault)
	}
	if name == "" {
		switch len(c.Vaults) {
		case 0:
			return "", "", ErrNoVaults
		case 1:
			name = c.VaultNames()[0]
		default:
			return "", "", &VaultNotFoundError{Available: c.VaultNames()}
		}
	}

	path, ok := c.Vaults[name]
	if !ok {
		return "", "", &VaultNotFoundError{Name: name, Available: c.VaultNames()}
	}
	expanded, err := paths.ExpandHome(path)
	if err != nil {
		return "", "", err
	}
	return name, expanded, nil
}

// AddVault registers (or re-points) a vault.
func (c *Config) AddVault(name, path string) {
	if c.Vaults == nil {
		c.Vaults = make(map[string]string)
	}
	c.Vaults[name] = path
}

// RemoveVault unregisters a vault and clears the default if it pointed at it.
// It reports whether the vault existed.
func (c *Config) RemoveVault(name string) bool {
	if _, ok := c.Vaults[name]; !ok {
		return false
	}
	delete(c.Vaults, name)
	if c.DefaultVault == name {
		c.DefaultVault = ""
	}
	return true
}

// SetDefault marks a registered vault as the default.
func (c *Config) SetDefault(name string) error {
	if _, ok := c.Vaults[name]; !ok {
		return &VaultNotFoundError{Name: name, Available: c.VaultNames()}
	}
	c.DefaultVault = name
	return nil
}

// Load loads the configuration from the default location.
// Returns an empty config if the file doesn't exist.
func Load() (*Config, error) {
	return LoadFrom(DefaultPath())
}

// LoadFrom loads the configuration from a specific path. A missing file
// yields an empty config.
func LoadFrom(path string) (*Config, error) {
	var config Config
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return &config, nil
	}
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return &config, nil
}

// DefaultPath returns the config file path: $JOURNEY_CONFIG when set,
// otherwise ~/.config/journey/config.toml, falling back to the OS config dir.
func DefaultPath() string {
	if p := strings.TrimSpace(os.Getenv(ConfigEnvVar)); p != "" {
		if expanded, err := paths.ExpandHome(p); err == nil {
			return expanded
		}
		return p
	}
	if xdg, err := XDGPath(); err == nil {
		return xdg
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "journey", "config.toml")
	}
	return filepath.Join(".", "config.toml")
}

// XDGPath returns the XDG-style config path (~/.config/journey/config.toml).
func XDGPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "journey", "config.toml"), nil
}

// GetEditor returns the editor to use: the configured one, then $EDITOR,
// then nano.
func (c *Config) GetEditor() string {
	if c != nil && strings.TrimSpace(c.Editor) != "" {
		return c.Editor
	}
	if e := strings.TrimSpace(os.Getenv("EDITOR")); e != "" {
		return e
	}
	return DefaultEditor
}
