package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestConfigSelectVault(t *testing.T) {
	vaults := map[string]string{
		"work":     "/path/to/work",
		"personal": "/path/to/personal",
	}

	t.Run("named vault", func(t *testing.T) {
		cfg := &Config{Vaults: vaults}

		name, path, err := cfg.SelectVault("work")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if name != "work" || path != "/path/to/work" {
			t.Errorf("expected work at '/path/to/work', got %q at %q", name, path)
		}
	})

	t.Run("flag beats default vault", func(t *testing.T) {
		cfg := &Config{DefaultVault: "personal", Vaults: vaults}

		name, _, err := cfg.SelectVault("work")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if name != "work" {
			t.Errorf("expected 'work', got %q", name)
		}
	})

	t.Run("default vault", func(t *testing.T) {
		cfg := &Config{DefaultVault: "personal", Vaults: vaults}

		_, path, err := cfg.SelectVault("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if path != "/path/to/personal" {
			t.Errorf("expected '/path/to/personal', got %q", path)
		}
	})

	t.Run("single vault without default", func(t *testing.T) {
		cfg := &Config{Vaults: map[string]string{"only": "/only"}}

		name, _, err := cfg.SelectVault("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if name != "only" {
			t.Errorf("expected 'only', got %q", name)
		}
	})

	t.Run("ambiguous lists available vaults", func(t *testing.T) {
		cfg := &Config{Vaults: vaults}

		_, _, err := cfg.SelectVault("")
		var notFound *VaultNotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("expected VaultNotFoundError, got %v", err)
		}
		if !reflect.DeepEqual(notFound.Available, []string{"personal", "work"}) {
			t.Errorf("expected sorted names, got %v", notFound.Available)
		}
	})

	t.Run("unknown vault", func(t *testing.T) {
		cfg := &Config{Vaults: vaults}

		_, _, err := cfg.SelectVault("nonexistent")
		var notFound *VaultNotFoundError
		if !errors.As(err, &notFound) || notFound.Name != "nonexistent" {
			t.Fatalf("expected VaultNotFoundError for 'nonexistent', got %v", err)
		}
	})

	t.Run("no vaults configured", func(t *testing.T) {
		cfg := &Config{}

		_, _, err := cfg.SelectVault("")
		if !errors.Is(err, ErrNoVaults) {
			t.Errorf("expected ErrNoVaults, got %v", err)
		}
	})

	t.Run("expands home", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		cfg := &Config{Vaults: map[string]string{"notes": "~/notes"}}

		_, path, err := cfg.SelectVault("notes")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if path != filepath.Join(home, "notes") {
			t.Errorf("expected expanded path, got %q", path)
		}
	})
}

func TestConfigVaultRegistry(t *testing.T) {
	cfg := &Config{}
	cfg.AddVault("work", "/w")
	cfg.AddVault("home", "/h")

	if err := cfg.SetDefault("missing"); err == nil {
		t.Error("expected error setting unknown default")
	}
	if err := cfg.SetDefault("work"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !cfg.RemoveVault("work") {
		t.Fatal("expected work to be removed")
	}
	if cfg.DefaultVault != "" {
		t.Errorf("expected default cleared, got %q", cfg.DefaultVault)
	}
	if cfg.RemoveVault("work") {
		t.Error("expected second removal to report false")
	}
	if got := cfg.VaultNames(); !reflect.DeepEqual(got, []string{"home"}) {
		t.Errorf("unexpected vaults: %v", got)
	}
}

func TestConfigGetEditor(t *testing.T) {
	t.Run("configured editor", func(t *testing.T) {
		cfg := &Config{Editor: "vim"}
		if cfg.GetEditor() != "vim" {
			t.Errorf("expected 'vim', got %q", cfg.GetEditor())
		}
	})

	t.Run("falls back to EDITOR env", func(t *testing.T) {
		t.Setenv("EDITOR", "hx")
		cfg := &Config{}
		if cfg.GetEditor() != "hx" {
			t.Errorf("expected 'hx', got %q", cfg.GetEditor())
		}
	})

	t.Run("nano when nothing configured", func(t *testing.T) {
		t.Setenv("EDITOR", "")
		cfg := &Config{}
		if cfg.GetEditor() != DefaultEditor {
			t.Errorf("expected %q, got %q", DefaultEditor, cfg.GetEditor())
		}
	})
}

func TestLoadFrom(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `default_vault = "work"
editor = "code"

[vaults]
work = "/path/to/work"
personal = "/path/to/personal"

[ui]
accent = "39"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DefaultVault != "work" {
		t.Errorf("expected default_vault 'work', got %q", cfg.DefaultVault)
	}
	if cfg.Editor != "code" {
		t.Errorf("expected editor 'code', got %q", cfg.Editor)
	}
	if len(cfg.Vaults) != 2 {
		t.Errorf("expected 2 vaults, got %d: %v", len(cfg.Vaults), cfg.Vaults)
	}
	if cfg.UI.Accent != "39" {
		t.Errorf("expected ui.accent '39', got %q", cfg.UI.Accent)
	}
}

func TestLoadFromMissing(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg == nil || len(cfg.Vaults) != 0 {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestLoadFromInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `this is not valid toml {{{{`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := LoadFrom(configPath); err == nil {
		t.Error("expected error for invalid TOML")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := &Config{DefaultVault: "work"}
	cfg.AddVault("work", "~/journal")

	if err := SaveTo(configPath, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded.DefaultVault != "work" || loaded.Vaults["work"] != "~/journal" {
		t.Errorf("unexpected round trip: %+v", loaded)
	}
	if loaded.Editor != "" {
		t.Errorf("expected no editor, got %q", loaded.Editor)
	}
}

func TestDefaultPath(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		want := filepath.Join(t.TempDir(), "custom.toml")
		t.Setenv(ConfigEnvVar, want)
		if got := DefaultPath(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("xdg location", func(t *testing.T) {
		t.Setenv(ConfigEnvVar, "")
		path, err := XDGPath()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if DefaultPath() != path {
			t.Errorf("expected %q, got %q", path, DefaultPath())
		}
		if filepath.Base(filepath.Dir(path)) != "journey" {
			t.Errorf("expected journey config dir, got %s", path)
		}
	})
}
