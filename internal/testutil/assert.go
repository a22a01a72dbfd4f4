package testutil

import (
	"os"
	"path/filepath"
	"strings"
)

func (v *TestVault) abs(relPath string) string {
	return filepath.Join(v.Path, filepath.FromSlash(relPath))
}

// AssertFileNotExists reports an error if relPath was created.
func (v *TestVault) AssertFileNotExists(relPath string) {
	v.t.Helper()
	if _, err := os.Stat(v.abs(relPath)); err == nil {
		v.t.Errorf("%s should not exist", relPath)
	}
}

func (v *TestVault) AssertFileContains(relPath, substr string) {
	v.t.Helper()
	if content := v.ReadFile(relPath); !strings.Contains(content, substr) {
		v.t.Errorf("%s does not contain %q:\n%s", relPath, substr, content)
	}
}

// AssertFileEquals compares the whole document, frontmatter included.
func (v *TestVault) AssertFileEquals(relPath, want string) {
	v.t.Helper()
	if got := v.ReadFile(relPath); got != want {
		v.t.Errorf("%s:\n--- got ---\n%s\n--- want ---\n%s", relPath, got, want)
	}
}

// AssertEntryCount counts lines starting with prefix ("- " for bullets,
// "| " for table rows including the header).
func (v *TestVault) AssertEntryCount(relPath, prefix string, n int) {
	v.t.Helper()
	count := 0
	for _, line := range strings.Split(v.ReadFile(relPath), "\n") {
		if strings.HasPrefix(line, prefix) {
			count++
		}
	}
	if count != n {
		v.t.Errorf("%s: %d lines start with %q, want %d", relPath, count, prefix, n)
	}
}
