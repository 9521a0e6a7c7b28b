// ABOUTME: Tests for keto configuration management.
// ABOUTME: Covers load, save, defaults, path expansion, and store opening.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetHeightMetersDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetHeightMeters(); got != DefaultHeightMeters {
		t.Errorf("GetHeightMeters() = %g, want %g", got, DefaultHeightMeters)
	}
}

func TestGetHeightMetersExplicit(t *testing.T) {
	cfg := &Config{HeightMeters: 1.85}
	if got := cfg.GetHeightMeters(); got != 1.85 {
		t.Errorf("GetHeightMeters() = %g, want 1.85", got)
	}
}

func TestGetHeightMetersRejectsNonPositive(t *testing.T) {
	cfg := &Config{HeightMeters: -1}
	if got := cfg.GetHeightMeters(); got != DefaultHeightMeters {
		t.Errorf("GetHeightMeters() = %g, want default for bad value", got)
	}
}

func TestGetCarbLimitGramsDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetCarbLimitGrams(); got != DefaultCarbLimitGrams {
		t.Errorf("GetCarbLimitGrams() = %g, want %g", got, DefaultCarbLimitGrams)
	}
}

func TestGetCarbLimitGramsExplicit(t *testing.T) {
	cfg := &Config{CarbLimitGrams: 25}
	if got := cfg.GetCarbLimitGrams(); got != 25 {
		t.Errorf("GetCarbLimitGrams() = %g, want 25", got)
	}
}

func TestGetDataDirDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetDataDir(); got == "" {
		t.Error("GetDataDir() returned empty string")
	}
}

func TestGetDataDirExplicit(t *testing.T) {
	cfg := &Config{DataDir: "/tmp/keto-test"}
	if got := cfg.GetDataDir(); got != "/tmp/keto-test" {
		t.Errorf("GetDataDir() = %q, want %q", got, "/tmp/keto-test")
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"/tmp/foo", "/tmp/foo"},
		{"data/keto", "data/keto"},
		{"~", home},
		{"~/keto-data", filepath.Join(home, "keto-data")},
	}

	for _, tt := range tests {
		if got := ExpandPath(tt.input); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with no config file should not error: %v", err)
	}
	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}
	if cfg.DataDir != "" || cfg.HeightMeters != 0 || cfg.CarbLimitGrams != 0 {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := &Config{
		DataDir:        "/tmp/keto-data",
		HeightMeters:   1.80,
		CarbLimitGrams: 25,
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded.DataDir != "/tmp/keto-data" {
		t.Errorf("DataDir = %q, want /tmp/keto-data", loaded.DataDir)
	}
	if loaded.HeightMeters != 1.80 {
		t.Errorf("HeightMeters = %g, want 1.80", loaded.HeightMeters)
	}
	if loaded.CarbLimitGrams != 25 {
		t.Errorf("CarbLimitGrams = %g, want 25", loaded.CarbLimitGrams)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	configPath := filepath.Join(tmpDir, "keto", "config.json")
	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(configPath, []byte("not json"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() with invalid JSON should error")
	}
}

func TestOpenStoreSeedsCatalog(t *testing.T) {
	cfg := &Config{DataDir: t.TempDir()}

	db, err := cfg.OpenStore()
	if err != nil {
		t.Fatalf("OpenStore() failed: %v", err)
	}
	defer db.Close()

	count, err := db.CountFoodItems()
	if err != nil {
		t.Fatalf("CountFoodItems failed: %v", err)
	}
	if count != 13 {
		t.Errorf("expected seeded catalog of 13 foods, got %d", count)
	}
}

func TestOpenStoreReopenDoesNotReseed(t *testing.T) {
	cfg := &Config{DataDir: t.TempDir()}

	db, err := cfg.OpenStore()
	if err != nil {
		t.Fatalf("OpenStore() failed: %v", err)
	}
	if err := db.DeleteFoodItem("Walnüsse"); err != nil {
		t.Fatalf("DeleteFoodItem failed: %v", err)
	}
	db.Close()

	db, err = cfg.OpenStore()
	if err != nil {
		t.Fatalf("second OpenStore() failed: %v", err)
	}
	defer db.Close()

	count, _ := db.CountFoodItems()
	if count != 12 {
		t.Errorf("expected catalog untouched on reopen, got %d items", count)
	}
}
