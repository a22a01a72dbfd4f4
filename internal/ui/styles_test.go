package ui

import "testing"

func TestNormalizeAccentColor(t *testing.T) {
	valid := map[string]string{
		"39":       "39",
		"  244 ":   "244",
		"0":        "0",
		"#7AA2F7":  "#7aa2f7",
		"#abc":     "#aabbcc",
		" #FFFFFF": "#ffffff",
	}
	for in, want := range valid {
		got, ok := normalizeAccentColor(in)
		if !ok || got != want {
			t.Errorf("normalizeAccentColor(%q) = %q, %v; want %q", in, got, ok, want)
		}
	}

	for _, in := range []string{"", "none", "off", "256", "-1", "#zzzzzz", "#abcd", "blue"} {
		if got, ok := normalizeAccentColor(in); ok {
			t.Errorf("normalizeAccentColor(%q) = %q, want rejection", in, got)
		}
	}
}

func TestConfigureTheme(t *testing.T) {
	origAccent := Accent
	origAccentColor := accentColor
	t.Cleanup(func() {
		Accent = origAccent
		accentColor = origAccentColor
	})

	ConfigureTheme("#7AA2F7")
	if got, ok := AccentColor(); !ok || got != "#7aa2f7" {
		t.Fatalf("AccentColor() = %q, %v after configuring hex", got, ok)
	}

	ConfigureTheme("none")
	if _, ok := AccentColor(); ok {
		t.Fatalf("expected accent color to be disabled")
	}
}
