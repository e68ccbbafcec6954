// Package config loads assembler defaults (memory limits, output
// location, default CLI flag values) from an optional TOML file,
// falling back to built-in defaults when none is present.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config represents the assembler's configuration.
type Config struct {
	// Memory holds the fixed bounds the specification names DMEM_LIMIT
	// and IMEM_LIMIT. They are configurable here for experimentation but
	// default to the i281's real limits.
	Memory struct {
		DMEMLimit int `toml:"dmem_limit"`
		IMEMLimit int `toml:"imem_limit"`
	} `toml:"memory"`

	// Output controls where assembled bundles land and whether an
	// existing bundle is silently overwritten.
	Output struct {
		Directory   string `toml:"directory"`
		ForceWrites bool   `toml:"force_writes"`
	} `toml:"output"`

	// CLI holds default values for flags a user can still override on
	// the command line.
	CLI struct {
		Verbose     bool `toml:"verbose"`
		Interactive bool `toml:"interactive"`
	} `toml:"cli"`
}

// DefaultConfig returns a configuration with the specification's
// default values: 16 data variables, 32 instructions, ./output as the
// bundle directory.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Memory.DMEMLimit = 16
	cfg.Memory.IMEMLimit = 32

	cfg.Output.Directory = "./output"
	cfg.Output.ForceWrites = false

	cfg.CLI.Verbose = false
	cfg.CLI.Interactive = false

	return cfg
}

// GetConfigPath returns the platform-specific config file path.
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		// Windows: %APPDATA%\i281asm\config.toml
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "i281asm")

	case "darwin", "linux":
		// macOS/Linux: ~/.config/i281asm/config.toml
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "i281asm")

	default:
		return "config.toml"
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// Load loads configuration from the default config file.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the specified file, returning
// defaults unchanged if the file does not exist.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to the default config file.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to the specified file.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close config file: %w", closeErr)
		}
	}()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
