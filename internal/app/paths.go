// Package app provides the application initialization and wiring.
package app

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DefaultConfigDir returns the directory searched first for vackup.yaml.
func DefaultConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "vackup")
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".config", "vackup")
	}
	return "/etc/vackup"
}

// DefaultLogPath returns the rotating log file used when none is configured.
func DefaultLogPath() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "vackup", "vackup.log")
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".local", "state", "vackup", "vackup.log")
	}
	return filepath.Join(os.TempDir(), "vackup.log")
}

// ConfigureViper sets up viper with standard config file search paths.
// Config file: vackup.yaml
// Search paths (in order): user config dir, /etc/vackup, current directory
func ConfigureViper(v *viper.Viper, configPath string) {
	if configPath != "" {
		v.SetConfigFile(configPath)
		return
	}
	v.SetConfigName("vackup")
	v.SetConfigType("yaml")
	v.AddConfigPath(DefaultConfigDir())
	v.AddConfigPath("/etc/vackup")
	v.AddConfigPath(".")
}
