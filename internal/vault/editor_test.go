package vault

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
)

func TestEditorCommand(t *testing.T) {
	tests := []struct {
		name   string
		editor string
		want   []string
	}{
		{name: "simple", editor: "vim", want: []string{"vim", "/tmp/a b.md"}},
		{name: "extra spaces", editor: "  hx  ", want: []string{"hx", "/tmp/a b.md"}},
		{name: "with args", editor: "code --wait", want: []string{"sh", "-c", "code --wait '/tmp/a b.md'"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := EditorCommand(tt.editor, "/tmp/a b.md")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(cmd.Args) != len(tt.want) {
				t.Fatalf("args = %q, want %q", cmd.Args, tt.want)
			}
			for i := range tt.want {
				if cmd.Args[i] != tt.want[i] {
					t.Fatalf("args = %q, want %q", cmd.Args, tt.want)
				}
			}
		})
	}

	if _, err := EditorCommand(" ", "x.md"); err == nil {
		t.Fatal("expected error for empty editor")
	}
}

func TestOpenInEditorWaitsForExit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	target := filepath.Join(t.TempDir(), "note.md")
	if err := OpenInEditor("sh -c 'echo edited > \"$0\"'", target); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st, err := os.Stat(target); err != nil || st.Size() == 0 {
		t.Fatalf("expected editor to have written %s before returning", target)
	}

	if err := OpenInEditor("sh -c 'exit 3'", target); err == nil {
		t.Fatal("expected failing editor to return an error")
	}
}
