package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TargetPerRoom != 3 {
		t.Errorf("TargetPerRoom = %d, want 3", cfg.TargetPerRoom)
	}
	if cfg.AllowOverlap {
		t.Error("AllowOverlap = true, want false by default")
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	content := `{"allow_overlap": true, "target_per_room": 4, "disabled_tools": ["roster_import"]}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(content), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.AllowOverlap {
		t.Error("AllowOverlap = false, want true")
	}
	if cfg.TargetPerRoom != 4 {
		t.Errorf("TargetPerRoom = %d, want 4", cfg.TargetPerRoom)
	}
	if len(cfg.DisabledTools) != 1 || cfg.DisabledTools[0] != "roster_import" {
		t.Errorf("DisabledTools = %v", cfg.DisabledTools)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{nope"), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestSynergyTable_BuiltinDefault(t *testing.T) {
	cfg := DefaultConfig()
	table, err := cfg.SynergyTable()
	if err != nil {
		t.Fatalf("SynergyTable failed: %v", err)
	}
	if table != DefaultSynergyTable {
		t.Error("want the built-in table when no path is configured")
	}
}

func TestSynergyTable_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "table.txt")
	if err := os.WriteFile(path, []byte("Finance | accounting"), 0600); err != nil {
		t.Fatalf("write table: %v", err)
	}

	cfg := DefaultConfig()
	cfg.SynergyTablePath = path

	table, err := cfg.SynergyTable()
	if err != nil {
		t.Fatalf("SynergyTable failed: %v", err)
	}
	if table != "Finance | accounting" {
		t.Errorf("table = %q", table)
	}

	cfg.SynergyTablePath = filepath.Join(dir, "missing.txt")
	if _, err := cfg.SynergyTable(); err == nil {
		t.Fatal("expected error for missing table file")
	}
}
