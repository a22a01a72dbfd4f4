package slugs

import "testing"

func TestComponentSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Journal", "journal"},
		{"My Work Log", "my-work-log"},
		{"UPPER CASE", "upper-case"},
		{"notes.md", "notes"},
		{"dir-name", "dir-name"},
		{"Special: Characters!", "special-characters"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ComponentSlug(tt.in); got != tt.want {
				t.Fatalf("ComponentSlug(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestVaultName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/home/me/Documents/Work Journal", "work-journal"},
		{"journal/", "journal"},
		{"./diary", "diary"},
		{"/", "default"},
		{".", "default"},
		{"", "default"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := VaultName(tt.in); got != tt.want {
				t.Fatalf("VaultName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
