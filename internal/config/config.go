// ABOUTME: Keto tracker configuration management.
// ABOUTME: Handles user height, daily carb limit, data dir, and store factory.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/keto/internal/storage"
)

const (
	// DefaultHeightMeters is assumed for BMI until the user sets their own.
	DefaultHeightMeters = 1.73
	// DefaultCarbLimitGrams is the ketosis carb limit used as the dashboard
	// alert boundary.
	DefaultCarbLimitGrams = 20.0
)

// Config stores keto tool configuration.
type Config struct {
	// DataDir is the root directory for data storage; keto.db lives here.
	// Supports ~ expansion for home directory. Defaults to ~/.local/share/keto.
	DataDir string `json:"data_dir,omitempty"`

	// HeightMeters is the user's height, used for BMI.
	HeightMeters float64 `json:"height_meters,omitempty"`

	// CarbLimitGrams is the daily carbohydrate budget.
	CarbLimitGrams float64 `json:"carb_limit_grams,omitempty"`
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetHeightMeters returns the configured height, defaulting to 1.73 m.
func (c *Config) GetHeightMeters() float64 {
	if c.HeightMeters <= 0 {
		return DefaultHeightMeters
	}
	return c.HeightMeters
}

// GetCarbLimitGrams returns the daily carb limit, defaulting to 20 g.
func (c *Config) GetCarbLimitGrams() float64 {
	if c.CarbLimitGrams <= 0 {
		return DefaultCarbLimitGrams
	}
	return c.CarbLimitGrams
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStore opens the SQLite store at the configured location and seeds the
// default food catalog when the store is brand new.
func (c *Config) OpenStore() (*storage.DB, error) {
	dbPath := filepath.Join(c.GetDataDir(), "keto.db")
	db, err := storage.Open(dbPath)
	if err != nil {
		return nil, err
	}
	if _, err := db.SeedDefaultFoods(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("seed catalog: %w", err)
	}
	return db, nil
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "keto", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
