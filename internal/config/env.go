package config

import (
	"fmt"
	"os"
	"strconv"
)

// EnvPrefix prefixes every environment variable ApplyEnv reads.
const EnvPrefix = "KEYBIND_"

// LookupFunc looks up an environment variable.
type LookupFunc func(name string) (string, bool)

// ApplyEnv overrides settings from KEYBIND_* environment variables.
// A nil lookup reads the process environment. Empty values are applied,
// not ignored.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	strs := []struct {
		name string
		dst  *string
	}{
		{EnvPrefix + "LOG_LEVEL", &c.Log.Level},
		{EnvPrefix + "LOG_FILE", &c.Log.File},
		{EnvPrefix + "LAYOUT", &c.Input.Layout},
		{EnvPrefix + "QUIT_KEY", &c.Input.QuitKey},
	}
	for _, s := range strs {
		if v, ok := lookup(s.name); ok {
			*s.dst = v
		}
	}

	if v, ok := lookup(EnvPrefix + "MOUSE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %sMOUSE=%q is not a boolean", ErrInvalidConfig, EnvPrefix, v)
		}
		c.Input.Mouse = b
	}
	return nil
}
