package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/keybind/internal/input/key"
	"github.com/dshills/keybind/internal/input/scancode"
	"github.com/dshills/keybind/internal/logging"
)

// Config holds all keybind settings.
type Config struct {
	Log   LogConfig   `toml:"log"`
	Input InputConfig `toml:"input"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `toml:"level"`
	// File receives log output. Empty means stderr.
	File string `toml:"file"`
}

// InputConfig configures input handling.
type InputConfig struct {
	// Layout names the keyboard layout used to resolve key names.
	Layout string `toml:"layout"`
	// Mouse enables mouse reporting.
	Mouse bool `toml:"mouse"`
	// QuitKey names the key that ends interactive programs.
	QuitKey string `toml:"quit_key"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		Input: InputConfig{
			Layout:  "us",
			Mouse:   true,
			QuitKey: "Escape",
		},
	}
}

// Load reads the TOML file at path over the defaults. A missing file is
// not an error; the defaults are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := cfg.decode(path, data); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes TOML data over the defaults. source names the data in
// errors.
func Parse(source string, data []byte) (*Config, error) {
	cfg := Default()
	if err := cfg.decode(source, data); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(source string, data []byte) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		perr := &ParseError{Path: source, Message: err.Error(), Err: err}

		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			perr.Message = "unknown setting: " + serr.String()
		}
		return perr
	}
	return nil
}

// Validate checks that every setting holds a usable value.
func (c *Config) Validate() error {
	if _, ok := logging.ParseLevel(c.Log.Level); !ok {
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.Log.Level)
	}
	if _, err := key.LayoutByName(c.Input.Layout); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Input.QuitKey != "" && c.QuitScancode() == scancode.Unknown {
		return fmt.Errorf("%w: quit key %q does not name a key", ErrInvalidConfig, c.Input.QuitKey)
	}
	return nil
}

// Level returns the configured log level, or info if it is invalid.
func (c *Config) Level() logging.Level {
	lvl, _ := logging.ParseLevel(c.Log.Level)
	return lvl
}

// Layout returns the configured layout, or key.US if it is unknown.
func (c *Config) Layout() *key.Layout {
	if l, err := key.LayoutByName(c.Input.Layout); err == nil {
		return l
	}
	return key.US
}

// QuitScancode resolves the quit key the way binding.Table.BindKeyByName
// does. An empty quit key resolves to scancode.Unknown.
func (c *Config) QuitScancode() scancode.Scancode {
	return scancode.Parse(c.Input.QuitKey)
}
