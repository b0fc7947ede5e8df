package config

import (
	"os"
	"path/filepath"
)

// Paths provides all muntjac-related filesystem paths.
type Paths struct {
	ConfigDir  string // ~/.config/muntjac
	ConfigFile string // ~/.config/muntjac/config.yaml
}

// NewPaths creates Paths using the ~/.config directory. The path is
// explicit for cross-platform consistency rather than using
// platform-specific defaults (like ~/Library/Application Support on
// macOS).
func NewPaths() *Paths {
	home := os.Getenv("HOME")
	configDir := filepath.Join(home, ".config", "muntjac")

	return &Paths{
		ConfigDir:  configDir,
		ConfigFile: filepath.Join(configDir, "config.yaml"),
	}
}

// NewPathsWithOverrides allows overriding the config directory for
// testing.
func NewPathsWithOverrides(configDir string) *Paths {
	return &Paths{
		ConfigDir:  configDir,
		ConfigFile: filepath.Join(configDir, "config.yaml"),
	}
}
