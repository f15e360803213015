package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Startup defaults
const (
	AppDirName      = "eggplanters-store"
	ConfigFileName  = "config.toml"
	DefaultWidth    = 1280
	DefaultHeight   = 720
	DefaultLogLevel = "info"
	MinWindowWidth  = 640
	MinWindowHeight = 400
)

// CatalogConfig selects the catalog file
type CatalogConfig struct {
	Path string `toml:"path"`
}

// WindowConfig sets the initial window size
type WindowConfig struct {
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
}

// LogConfig sets the log level
type LogConfig struct {
	Level string `toml:"level"`
}

// FileConfig is the startup configuration read from config.toml
type FileConfig struct {
	Catalog CatalogConfig `toml:"catalog"`
	Window  WindowConfig  `toml:"window"`
	Log     LogConfig     `toml:"log"`
}

// DefaultFileConfig returns the configuration used when no file exists
func DefaultFileConfig() *FileConfig {
	return &FileConfig{
		Window: WindowConfig{Width: DefaultWidth, Height: DefaultHeight},
		Log:    LogConfig{Level: DefaultLogLevel},
	}
}

// DefaultConfigPath returns <UserConfigDir>/eggplanters-store/config.toml
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ConfigFileName
	}
	return filepath.Join(dir, AppDirName, ConfigFileName)
}

// LoadFile reads the TOML config at path. A missing file yields defaults.
func LoadFile(path string) (*FileConfig, error) {
	cfg := DefaultFileConfig()

	data, err := os.ReadFile(ExpandPath(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return DefaultFileConfig(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.normalize()
	return cfg, nil
}

// normalize expands paths and clamps values to usable ranges
func (c *FileConfig) normalize() {
	c.Catalog.Path = ExpandPath(strings.TrimSpace(c.Catalog.Path))

	if c.Window.Width <= 0 {
		c.Window.Width = DefaultWidth
	} else if c.Window.Width < MinWindowWidth {
		c.Window.Width = MinWindowWidth
	}
	if c.Window.Height <= 0 {
		c.Window.Height = DefaultHeight
	} else if c.Window.Height < MinWindowHeight {
		c.Window.Height = MinWindowHeight
	}

	if strings.TrimSpace(c.Log.Level) == "" {
		c.Log.Level = DefaultLogLevel
	}
}

// ExpandPath replaces a leading "~" with the user's home directory
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// ResolveCatalogPath picks the catalog in precedence order: flag, saved
// preference, config file. "" means the embedded catalog.
func ResolveCatalogPath(flagPath string, settings *Settings, cfg *FileConfig) string {
	if p := strings.TrimSpace(flagPath); p != "" {
		return ExpandPath(p)
	}
	if settings != nil {
		if p := settings.GetCatalogPath(); p != "" {
			return p
		}
	}
	if cfg != nil {
		return cfg.Catalog.Path
	}
	return ""
}
