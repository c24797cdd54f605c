package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds runtime configuration for the coloring board.
// Fields may be loaded from a TOML file and overridden by command-line flags.
type Config struct {
	Debug    bool   `toml:"debug"`
	LogLevel string `toml:"log_level"`

	// AssetsDir points at a directory holding the catalog and images.
	// Empty means the embedded assets.
	AssetsDir string `toml:"assets_dir"`
	Catalog   string `toml:"catalog"`

	ViewportFraction      float64 `toml:"viewport_fraction"`
	BrushRadius           float64 `toml:"brush_radius"`
	ResizeDebounceMS      int     `toml:"resize_debounce_ms"`
	OrientationDebounceMS int     `toml:"orientation_debounce_ms"`

	ImageCacheSize int `toml:"image_cache_size"`
	ThumbnailSize  int `toml:"thumbnail_size"`

	WindowWidth  float32 `toml:"window_width"`
	WindowHeight float32 `toml:"window_height"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:                 false,
		LogLevel:              "info",
		AssetsDir:             "",
		Catalog:               "catalog.json",
		ViewportFraction:      0.9,
		BrushRadius:           5,
		ResizeDebounceMS:      250,
		OrientationDebounceMS: 500,
		ImageCacheSize:        16,
		ThumbnailSize:         160,
		WindowWidth:           1024,
		WindowHeight:          768,
	}
}

// Validate replaces out-of-range values with their defaults.
func (c *Config) Validate() {
	d := DefaultConfig()
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.Catalog == "" {
		c.Catalog = d.Catalog
	}
	if c.ViewportFraction <= 0 || c.ViewportFraction > 1 {
		c.ViewportFraction = d.ViewportFraction
	}
	if c.BrushRadius <= 0 {
		c.BrushRadius = d.BrushRadius
	}
	if c.ResizeDebounceMS <= 0 {
		c.ResizeDebounceMS = d.ResizeDebounceMS
	}
	if c.OrientationDebounceMS <= 0 {
		c.OrientationDebounceMS = d.OrientationDebounceMS
	}
	if c.ImageCacheSize <= 0 {
		c.ImageCacheSize = d.ImageCacheSize
	}
	if c.ThumbnailSize <= 0 {
		c.ThumbnailSize = d.ThumbnailSize
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		c.WindowWidth, c.WindowHeight = d.WindowWidth, d.WindowHeight
	}
}

func (c *Config) ResizeDelay() time.Duration {
	return time.Duration(c.ResizeDebounceMS) * time.Millisecond
}

func (c *Config) OrientationDelay() time.Duration {
	return time.Duration(c.OrientationDebounceMS) * time.Millisecond
}

// DefaultPath returns the config file location under the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "coloring-board", "config.toml"), nil
}

// Load reads configuration from the given TOML file path. If the file does not
// exist it returns DefaultConfig(). On decode error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return DefaultConfig(), fmt.Errorf("config %s: %w", path, err)
	}
	cfg.Validate()
	return cfg, nil
}
