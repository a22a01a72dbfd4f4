package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aidanlsb/journey/internal/dates"
	"github.com/aidanlsb/journey/internal/journal"
	"github.com/aidanlsb/journey/internal/paths"
	"github.com/aidanlsb/journey/internal/template"
)

func writeVaultConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, VaultConfigFile), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
}

func strPtr(s string) *string { return &s }

func TestLoadVaultConfig(t *testing.T) {
	t.Run("default config when file missing", func(t *testing.T) {
		cfg, err := LoadVaultConfig(t.TempDir())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.ListType != "bullet" {
			t.Errorf("expected list_type 'bullet', got %q", cfg.ListType)
		}
		if cfg.Profile().Key != "en" {
			t.Errorf("expected en profile, got %q", cfg.Profile().Key)
		}
		if cfg.Section() != "" {
			t.Errorf("expected no default section, got %q", cfg.Section())
		}
	})

	t.Run("loads custom config", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeVaultConfig(t, tmpDir, `locale: nb_NO.UTF-8
date_format: DD.MM.YYYY
time_format: 24h
file_path_format: "{year}/{month:02}/{date}"
section_header: "## Logg"
categories:
  work: "## Jobb"
phrases:
  "@mtg": meeting with
list_type: table
table_header:
  time: Kl.
show_table_header: false
`)

		cfg, err := LoadVaultConfig(tmpDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Profile().Key != "no" {
			t.Errorf("expected no profile, got %q", cfg.Profile().Key)
		}
		if p, ok := cfg.DateOverride().Pattern(); !ok || p != "DD.MM.YYYY" {
			t.Errorf("expected forced DD.MM.YYYY, got %q (%v)", p, ok)
		}
		if o, err := cfg.TimeOverride(); err != nil || o != dates.Forced24Hour {
			t.Errorf("expected 24h override, got %v (%v)", o, err)
		}

		f := cfg.Format()
		if f.ListType != journal.ListTable {
			t.Errorf("expected table format, got %q", f.ListType)
		}
		if f.TableHeader.Time != "Kl." {
			t.Errorf("expected time label override, got %q", f.TableHeader.Time)
		}
		if f.TableHeader.Content != cfg.Profile().TableHeader.Content {
			t.Errorf("expected locale content label, got %q", f.TableHeader.Content)
		}
		if f.ShowTableHeader {
			t.Error("expected table header hidden")
		}
	})

	t.Run("table vault without header key", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeVaultConfig(t, tmpDir, "locale: en\nlist_type: table\n")

		cfg, err := LoadVaultConfig(tmpDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		f := cfg.Format()
		if f.ListType != journal.ListTable {
			t.Errorf("expected table format, got %q", f.ListType)
		}
		if f.ShowTableHeader {
			t.Error("expected table header off unless show_table_header is set")
		}

		writeVaultConfig(t, tmpDir, "locale: en\nlist_type: table\nshow_table_header: true\n")
		cfg, err = LoadVaultConfig(tmpDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !cfg.Format().ShowTableHeader {
			t.Error("expected table header when show_table_header is true")
		}
	})

	t.Run("legacy section_name", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeVaultConfig(t, tmpDir, "locale: en\nsection_name: Notes\n")

		cfg, err := LoadVaultConfig(tmpDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Section() != "Notes" {
			t.Errorf("expected 'Notes', got %q", cfg.Section())
		}
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		cases := map[string]string{
			"list_type":   "locale: en\nlist_type: numbered\n",
			"time_format": "locale: en\ntime_format: 13h\n",
			"locale":      "locale: \"\"\n",
			"date_format": "locale: en\ndate_format: \"%Q\"\n",
		}
		for field, content := range cases {
			tmpDir := t.TempDir()
			writeVaultConfig(t, tmpDir, content)

			_, err := LoadVaultConfig(tmpDir)
			if err == nil {
				t.Errorf("%s: expected validation error", field)
				continue
			}
			if !strings.Contains(err.Error(), field) {
				t.Errorf("%s: expected field in error, got %v", field, err)
			}
		}
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeVaultConfig(t, tmpDir, "locale: [unterminated\n")
		if _, err := LoadVaultConfig(tmpDir); err == nil {
			t.Error("expected parse error")
		}
	})
}

func TestCreateDefaultVaultConfig(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := DefaultVaultConfig()
	cfg.Locale = "no"
	cfg.ListType = "table"

	created, err := CreateDefaultVaultConfig(tmpDir, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Fatal("expected config to be created")
	}

	created, err = CreateDefaultVaultConfig(tmpDir, DefaultVaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Error("expected existing config to be kept")
	}

	loaded, err := LoadVaultConfig(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded.Locale != "no" || loaded.ListType != "table" {
		t.Errorf("unexpected config: %+v", loaded)
	}
}

func TestVaultConfigSectionFor(t *testing.T) {
	cfg := &VaultConfig{
		Locale:        "en",
		SectionHeader: strPtr("# Log"),
		Categories:    map[string]string{"work": "# Work"},
	}

	tests := map[string]string{
		"":         "# Log",
		"work":     "# Work",
		"personal": "personal",
	}
	for category, want := range tests {
		if got := cfg.SectionFor(category); got != want {
			t.Errorf("SectionFor(%q) = %q, want %q", category, got, want)
		}
	}
}

func TestVaultConfigNotePath(t *testing.T) {
	vault := t.TempDir()
	d := time.Date(2025, time.March, 7, 0, 0, 0, 0, time.Local)

	cfg := &VaultConfig{Locale: "en"}
	got, err := cfg.NotePath(vault, d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != filepath.Join(vault, "2025-03-07.md") {
		t.Errorf("unexpected default path %q", got)
	}

	cfg.FilePathFormat = strPtr("journal/{year}/{month:02}/{day:02}")
	got, err = cfg.NotePath(vault, d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != filepath.Join(vault, "journal", "2025", "03", "07.md") {
		t.Errorf("unexpected templated path %q", got)
	}

	cfg.FilePathFormat = strPtr("../escape/{date}")
	if _, err := cfg.NotePath(vault, d); !errors.Is(err, paths.ErrPathOutsideVault) {
		t.Errorf("expected ErrPathOutsideVault, got %v", err)
	}
}

func TestVaultConfigJournalOptions(t *testing.T) {
	vault := t.TempDir()
	if err := os.WriteFile(filepath.Join(vault, "daily.md"), []byte("# {date}\n{note}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := &VaultConfig{
		Locale:       "en",
		TemplateFile: strPtr("daily.md"),
		DateFormat:   strPtr("MM/DD/YYYY"),
		Phrases:      map[string]string{"@x": "expanded"},
	}
	opts, err := cfg.JournalOptions(vault)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Template != "# {date}\n{note}\n" {
		t.Errorf("unexpected template %q", opts.Template)
	}
	if opts.DatePattern != "MM/DD/YYYY" {
		t.Errorf("unexpected date pattern %q", opts.DatePattern)
	}
	if opts.Phrases.Len() != 1 {
		t.Errorf("expected one phrase, got %d", opts.Phrases.Len())
	}

	cfg.TemplateFile = strPtr("missing.md")
	_, err = cfg.JournalOptions(vault)
	var readErr *template.ReadError
	if !errors.As(err, &readErr) {
		t.Errorf("expected template.ReadError, got %v", err)
	}
}
