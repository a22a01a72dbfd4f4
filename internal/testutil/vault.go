// Package testutil provides reusable fixtures for journey tests: a temporary
// vault builder and a matching global config file.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
)

// TestVault represents a temporary vault for testing.
type TestVault struct {
	Name  string
	Path  string
	t     *testing.T
	files map[string]string
}

// NewTestVault creates a new test vault builder.
// Call Build() to create the actual vault directory.
func NewTestVault(t *testing.T) *TestVault {
	t.Helper()
	return &TestVault{
		Name:  "test",
		t:     t,
		files: make(map[string]string),
	}
}

// WithName sets the name the vault is registered under.
func (v *TestVault) WithName(name string) *TestVault {
	v.Name = name
	return v
}

// WithFile adds a file to the vault.
// The path is relative to the vault root.
func (v *TestVault) WithFile(path, content string) *TestVault {
	v.files[path] = content
	return v
}

// WithJourneyYAML sets the journey.yaml content for the vault.
func (v *TestVault) WithJourneyYAML(yaml string) *TestVault {
	v.files["journey.yaml"] = yaml
	return v
}

// Build creates the vault directory and all configured files.
func (v *TestVault) Build() *TestVault {
	v.t.Helper()
	v.Path = v.t.TempDir()
	for path, content := range v.files {
		v.writeFile(path, content)
	}
	return v
}

func (v *TestVault) writeFile(relPath, content string) {
	v.t.Helper()
	path := v.abs(relPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		v.t.Fatalf("mkdir for %s: %v", relPath, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		v.t.Fatalf("write %s: %v", relPath, err)
	}
}

// ReadFile returns the content of a vault file, failing the test if it is
// missing.
func (v *TestVault) ReadFile(relPath string) string {
	v.t.Helper()
	content, err := os.ReadFile(v.abs(relPath))
	if err != nil {
		v.t.Fatalf("read %s: %v", relPath, err)
	}
	return string(content)
}

// WriteGlobalConfig writes a config.toml registering the given vaults and
// points JOURNEY_CONFIG at it for the rest of the test. It returns the path.
func WriteGlobalConfig(t *testing.T, defaultVault string, vaults ...*TestVault) string {
	t.Helper()

	doc := struct {
		DefaultVault string            `toml:"default_vault,omitempty"`
		Vaults       map[string]string `toml:"vaults"`
	}{DefaultVault: defaultVault, Vaults: map[string]string{}}
	for _, v := range vaults {
		doc.Vaults[v.Name] = v.Path
	}

	path := filepath.Join(t.TempDir(), "config.toml")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create config: %v", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(doc); err != nil {
		t.Fatalf("failed to encode config: %v", err)
	}

	t.Setenv("JOURNEY_CONFIG", path)
	return path
}

// FileExists reports whether relPath (file or directory) exists in the vault.
func (v *TestVault) FileExists(relPath string) bool {
	_, err := os.Stat(v.abs(relPath))
	return err == nil
}
