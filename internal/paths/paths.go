// Package paths provides canonical helpers for vault-relative note paths:
// normalizing separators, forcing the .md extension, expanding ~ and
// environment variables in configured locations, and keeping resolved
// paths inside the vault root.
package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrPathOutsideVault is returned when a resolved path escapes the vault root.
var ErrPathOutsideVault = errors.New("path is outside the vault")

// NormalizeRelPath normalizes a vault-relative path-like value:
// - converts OS separators to '/'
// - trims leading "./" and leading "/"
// - collapses repeated '/'
func NormalizeRelPath(p string) string {
	p = filepath.ToSlash(p)
	for strings.HasPrefix(p, "./") {
		p = strings.TrimPrefix(p, "./")
	}
	p = strings.TrimLeft(p, "/")
	for strings.Contains(p, "//") {
		p = strings.ReplaceAll(p, "//", "/")
	}
	return p
}

// EnsureMarkdownExt appends ".md" unless p already ends with it.
func EnsureMarkdownExt(p string) string {
	if strings.HasSuffix(strings.ToLower(p), ".md") {
		return p
	}
	return p + ".md"
}

// ExpandHome expands a leading "~" or "~/" and any $VAR references.
func ExpandHome(p string) (string, error) {
	p = os.ExpandEnv(strings.TrimSpace(p))
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expand %q: %w", p, err)
	}
	if p == "~" {
		return home, nil
	}
	return filepath.Join(home, p[2:]), nil
}

// ValidateWithinVault returns ErrPathOutsideVault if target does not resolve
// to vaultPath or a descendant of it.
func ValidateWithinVault(vaultPath, target string) error {
	absVault, err := filepath.Abs(vaultPath)
	if err != nil {
		return err
	}
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return err
	}
	if absTarget == absVault || strings.HasPrefix(absTarget, absVault+string(filepath.Separator)) {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrPathOutsideVault, target)
}

// ResolveInVault joins a vault-relative path onto vaultPath and validates
// the result stays inside the vault.
func ResolveInVault(vaultPath, rel string) (string, error) {
	full := filepath.Join(vaultPath, filepath.FromSlash(NormalizeRelPath(rel)))
	if err := ValidateWithinVault(vaultPath, full); err != nil {
		return "", err
	}
	return full, nil
}
