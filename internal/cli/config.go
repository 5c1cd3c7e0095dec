package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds user-level CLI defaults loaded from the config file.
// Flags always override config values; the config file is optional.
type Config struct {
	Render RenderConfig `toml:"render"`
	Serve  ServeConfig  `toml:"serve"`
}

// RenderConfig holds defaults for the render command.
type RenderConfig struct {
	Format string `toml:"format"` // ascii, dot, or svg
	Color  bool   `toml:"color"`  // styled ASCII output
}

// ServeConfig holds defaults for the serve command.
type ServeConfig struct {
	Addr string `toml:"addr"`
}

// defaultConfig returns the configuration used when no config file exists.
func defaultConfig() Config {
	return Config{
		Render: RenderConfig{Format: "ascii", Color: true},
		Serve:  ServeConfig{Addr: ":8080"},
	}
}

// configPath returns the path of the user config file,
// e.g. ~/.config/grove/config.toml on Linux.
func configPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "grove", "config.toml"), nil
}

// loadConfig reads the config file, falling back to defaults when the file
// does not exist. A malformed file is an error rather than a silent default,
// so typos do not go unnoticed.
func loadConfig() (Config, error) {
	cfg := defaultConfig()

	path, err := configPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
