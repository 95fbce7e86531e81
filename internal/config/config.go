package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/menta2k/a2d2-coco/pkg/category"
	"github.com/menta2k/a2d2-coco/pkg/split"
)

// Config holds the converter configuration
type Config struct {
	Dataset DatasetConfig `json:"dataset"`
	Split   SplitConfig   `json:"split"`
	Output  OutputConfig  `json:"output"`
}

// DatasetConfig holds configuration for dataset discovery and conversion
type DatasetConfig struct {
	// PkgDir is the package subdirectory under the dataset root holding
	// the sequence directories.
	PkgDir string `json:"pkg_dir"`
	// Style is the target label space ("a2d2" or "cityscapes").
	Style string `json:"style"`
	// ProbeDims reads real image dimensions instead of assuming the
	// fixed sensor resolution.
	ProbeDims bool `json:"probe_dims"`
}

// SplitConfig holds the split sample counts and shuffle seed
type SplitConfig struct {
	Val  int   `json:"val"`
	Test int   `json:"test"`
	Seed int64 `json:"seed"`
}

// OutputConfig holds configuration for JSON output generation
type OutputConfig struct {
	Pretty  bool `json:"pretty"`
	Preview int  `json:"preview"`
}

// Default returns a configuration with default values
func Default() *Config {
	return &Config{
		Dataset: DatasetConfig{
			PkgDir:    "camera_lidar_semantic_bboxes",
			Style:     category.StyleCityscapes,
			ProbeDims: false,
		},
		Split: SplitConfig{
			Val:  800,
			Test: 0,
			Seed: split.DefaultSeed,
		},
		Output: OutputConfig{
			Pretty:  true,
			Preview: 0,
		},
	}
}

// LoadFromFile loads configuration from a JSON file
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a JSON file
func (c *Config) SaveToFile(filename string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Dataset.PkgDir == "" {
		return fmt.Errorf("dataset.pkg_dir cannot be empty")
	}

	if _, err := category.Categories(c.Dataset.Style); err != nil {
		return fmt.Errorf("dataset.style is invalid: %w", err)
	}

	if c.Split.Val < 0 {
		return fmt.Errorf("split.val must not be negative")
	}

	if c.Split.Test < 0 {
		return fmt.Errorf("split.test must not be negative")
	}

	if c.Output.Preview < 0 {
		return fmt.Errorf("output.preview must not be negative")
	}

	return nil
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./config.json"
	}
	return filepath.Join(home, ".config", "a2d2-coco", "config.json")
}
