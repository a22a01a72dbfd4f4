// Package vault opens a registered journal vault: it resolves which vault to
// use, loads its journey.yaml, and locates the document for a given day.
package vault

import (
	"fmt"
	"os"
	"time"

	"github.com/aidanlsb/journey/internal/config"
	"github.com/aidanlsb/journey/internal/journal"
)

// Vault is a registered journal directory with its settings loaded.
type Vault struct {
	Name   string
	Path   string
	Config *config.VaultConfig
}

// Open selects a vault from the global config (see config.SelectVault) and
// loads its settings. The vault directory must exist.
func Open(cfg *config.Config, name string) (*Vault, error) {
	if cfg == nil {
		cfg = &config.Config{}
	}
	selected, path, err := cfg.SelectVault(name)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("vault '%s' at %s: %w", selected, path, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("vault '%s' at %s is not a directory", selected, path)
	}

	vc, err := config.LoadVaultConfig(path)
	if err != nil {
		return nil, err
	}
	return &Vault{Name: selected, Path: path, Config: vc}, nil
}

// DocumentPath returns where the document for day d lives.
func (v *Vault) DocumentPath(d time.Time) (string, error) {
	return v.Config.NotePath(v.Path, d)
}

// Session opens the document for day d for appending.
func (v *Vault) Session(d time.Time) (*journal.Session, error) {
	path, err := v.DocumentPath(d)
	if err != nil {
		return nil, err
	}
	opts, err := v.Config.JournalOptions(v.Path)
	if err != nil {
		return nil, err
	}
	return journal.Open(path, opts)
}

// DocumentInfo describes the document for one day.
type DocumentInfo struct {
	Vault   string     `json:"vault"`
	Date    string     `json:"date"`
	Path    string     `json:"path"`
	Exists  bool       `json:"exists"`
	Size    int64      `json:"size,omitempty"`
	Entries int        `json:"entries,omitempty"`
	ModTime *time.Time `json:"modified,omitempty"`
}

// Describe reports the location of the document for day d and, when it
// exists, its size and number of entries.
func (v *Vault) Describe(d time.Time) (*DocumentInfo, error) {
	path, err := v.DocumentPath(d)
	if err != nil {
		return nil, err
	}
	info := &DocumentInfo{Vault: v.Name, Date: d.Format("2006-01-02"), Path: path}

	st, err := os.Stat(path)
	if os.IsNotExist(err) {
		return info, nil
	}
	if err != nil {
		return nil, err
	}
	info.Exists = true
	info.Size = st.Size()
	mod := st.ModTime()
	info.ModTime = &mod

	doc, err := journal.Read(path)
	if err != nil {
		return nil, err
	}
	if doc != nil {
		info.Entries = len(doc.Entries())
	}
	return info, nil
}
