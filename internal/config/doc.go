// Package config loads keybind settings.
//
// Settings come from three layers, later ones overriding earlier ones:
//
//  1. Built-in defaults (Default)
//  2. A TOML file (Load)
//  3. KEYBIND_* environment variables (ApplyEnv)
//
// A file looks like:
//
//	[log]
//	level = "debug"
//	file = "/tmp/keybind.log"
//
//	[input]
//	layout = "azerty"
//	mouse = true
//	quit_key = "Escape"
//
// Bindings themselves are not configured here; programs bind controls
// in code or from the command line.
package config
