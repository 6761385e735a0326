package cli

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds tool defaults loaded from a TOML file. Flags take precedence
// over config values.
type Config struct {
	// Transform is the default named transform (escape, unescape).
	Transform string `toml:"transform"`
	// LogLevel is the default log level.
	LogLevel string `toml:"log_level"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Transform: "escape",
		LogLevel:  "info",
	}
}

// LoadConfig reads configuration from path, merged over the defaults.
// A missing file is not an error; the defaults are returned unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}
