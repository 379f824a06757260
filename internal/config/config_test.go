package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenAbsent(t *testing.T) {
	root := t.TempDir()
	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.CratesDir != "crates" || cfg.BundledDir != "bundled" {
		t.Fatalf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	root := t.TempDir()
	content := "crates_dir: libs\nexternal_crate: \"judge_io\"\n"
	if err := os.WriteFile(filepath.Join(root, "cpbundle.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.CratesDir != "libs" || cfg.ExternalCrate != "judge_io" {
		t.Fatalf("Load() = %+v", cfg)
	}
	if cfg.BundledDir != "bundled" {
		t.Fatalf("expected default BundledDir to survive partial override, got %+v", cfg)
	}
}

func TestLoadPlainFileOverridesDotfile(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "cpbundle.yaml"), []byte("crates_dir: plain\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, ".cpbundle.yaml"), []byte("crates_dir: dotfile\n"), 0o644); err != nil {
		t.Fatalf("write dotfile config: %v", err)
	}

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.CratesDir != "plain" {
		t.Fatalf("expected the later candidate (plain cpbundle.yaml) to win, got %+v", cfg)
	}
}
