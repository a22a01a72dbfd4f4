package ui

import (
	"strings"
	"testing"
)

func TestRenderVaultTable(t *testing.T) {
	if got := RenderVaultTable(nil); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}

	out := RenderVaultTable([]VaultRow{
		{Name: "personal", Path: "/home/me/journal", Default: true},
		{Name: "work", Path: "/srv/work"},
	})

	for _, want := range []string{"NAME", "personal", "/home/me/journal", "work", "/srv/work", "*"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Count(out, "*") != 1 {
		t.Errorf("expected a single default marker:\n%s", out)
	}
}
