package shellquote

import "testing"

func TestQuote(t *testing.T) {
	tests := map[string]string{
		"plain":         "'plain'",
		"with space":    "'with space'",
		"it's":          `'it'\''s'`,
		"$HOME/note.md": "'$HOME/note.md'",
		"":              "''",
	}
	for in, want := range tests {
		if got := Quote(in); got != want {
			t.Errorf("Quote(%q) = %q, want %q", in, got, want)
		}
	}
}
