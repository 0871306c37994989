package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadWritesDefaultsWhenConfigMissing(t *testing.T) {
	home := t.TempDir()

	cfg, err := Load(home)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !cfg.CaseSensitive {
		t.Fatalf("expected CaseSensitive default to be true")
	}
	if cfg.Editor != "vi" {
		t.Fatalf("expected Editor default \"vi\", got %q", cfg.Editor)
	}
	if len(cfg.ExcludeDirs) == 0 || len(cfg.Extensions) == 0 {
		t.Fatalf("expected non-empty default exclude dirs and extensions")
	}

	if _, err := os.Stat(GetConfigPath(home)); err != nil {
		t.Fatalf("expected Load to persist the default config: %v", err)
	}
}

func TestLoadRoundTripsSavedConfig(t *testing.T) {
	home := t.TempDir()

	first, err := Load(home)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	first.Dir = "/notes"
	first.CaseSensitive = false
	if err := first.Save(home); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	second, err := Load(home)
	if err != nil {
		t.Fatalf("second Load returned error: %v", err)
	}
	if second.Dir != "/notes" {
		t.Fatalf("expected Dir %q to round-trip, got %q", "/notes", second.Dir)
	}
	if second.CaseSensitive {
		t.Fatalf("expected CaseSensitive=false to round-trip")
	}
}

func TestEnsureDefaultsFillsOnlyMissingFields(t *testing.T) {
	cfg := &Config{Dir: "/custom", ExcludeDirs: []string{"vendor"}}
	cfg.ensureDefaults()

	if len(cfg.ExcludeDirs) != 1 || cfg.ExcludeDirs[0] != "vendor" {
		t.Fatalf("expected an explicitly-set ExcludeDirs to survive ensureDefaults, got %#v", cfg.ExcludeDirs)
	}
	if cfg.Editor != "vi" {
		t.Fatalf("expected Editor to be defaulted to \"vi\", got %q", cfg.Editor)
	}
	if cfg.Dir != "/custom" {
		t.Fatalf("expected Dir to be left untouched, got %q", cfg.Dir)
	}
}

func TestWalkOptionsUsesConfiguredLists(t *testing.T) {
	cfg := &Config{ExcludeDirs: []string{"build"}, Extensions: []string{"md"}}
	opts := cfg.WalkOptions()

	if len(opts.ExcludeDirs) != 1 || opts.ExcludeDirs[0] != "build" {
		t.Fatalf("expected ExcludeDirs to flow through, got %#v", opts.ExcludeDirs)
	}
	if len(opts.Extensions) != 1 || opts.Extensions[0] != "md" {
		t.Fatalf("expected Extensions to flow through, got %#v", opts.Extensions)
	}
}

func TestGetConfigPathJoinsHome(t *testing.T) {
	got := GetConfigPath("/home/alice")
	want := filepath.Join("/home/alice", ".config", "mdfind", "config.yaml")
	if got != want {
		t.Fatalf("GetConfigPath = %q, want %q", got, want)
	}
}
