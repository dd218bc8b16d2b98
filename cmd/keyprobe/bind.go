package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/keybind/internal/input/binding"
	"github.com/dshills/keybind/internal/input/mouse"
)

// errBadBind indicates a -bind value keyprobe cannot parse.
var errBadBind = errors.New("invalid binding")

// source selects how a binding names its input.
type source uint8

const (
	sourceAny      source = iota // scancode.Parse
	sourceKey                    // key name through the layout
	sourceScancode               // scancode name only
	sourceMouse                  // mouse button
)

// bindSpec is one parsed -bind value.
type bindSpec struct {
	source source
	name   string
	button mouse.Button
	label  string
}

// String returns the input part of the binding as the user would write it.
func (b bindSpec) String() string {
	switch b.source {
	case sourceKey:
		return "key:" + b.name
	case sourceScancode:
		return "scancode:" + b.name
	case sourceMouse:
		return "mouse:" + b.button.String()
	default:
		return b.name
	}
}

// parseBindSpec parses "input=label". input is a key definition, or one
// of key:<name>, scancode:<name> and mouse:<button>. The label follows
// the last '=', so "==equals" binds the '=' key.
func parseBindSpec(s string) (bindSpec, error) {
	i := strings.LastIndex(s, "=")
	if i <= 0 || i == len(s)-1 {
		return bindSpec{}, fmt.Errorf("%w: %q (want input=label)", errBadBind, s)
	}
	spec := bindSpec{name: s[:i], label: strings.TrimSpace(s[i+1:])}
	if spec.label == "" {
		return bindSpec{}, fmt.Errorf("%w: %q has an empty label", errBadBind, s)
	}

	prefix, rest, ok := strings.Cut(spec.name, ":")
	if !ok || rest == "" {
		return spec, nil
	}
	switch strings.ToLower(prefix) {
	case "key":
		spec.source, spec.name = sourceKey, rest
	case "scancode":
		spec.source, spec.name = sourceScancode, rest
	case "mouse":
		b, err := mouse.ParseButton(rest)
		if err != nil {
			return bindSpec{}, fmt.Errorf("%w: %w", errBadBind, err)
		}
		spec.source, spec.name, spec.button = sourceMouse, rest, b
	}
	return spec, nil
}

// apply binds the spec's input to l.
func (b bindSpec) apply(t *binding.Table, l binding.Listener) error {
	switch b.source {
	case sourceKey:
		return t.BindKeyByKeyName(b.name, l)
	case sourceScancode:
		return t.BindKeyByScancodeName(b.name, l)
	case sourceMouse:
		return t.BindMouseButton(b.button, l)
	default:
		return t.BindKeyByName(b.name, l)
	}
}

// bindFlags collects repeated -bind flags.
type bindFlags []bindSpec

func (f *bindFlags) String() string {
	parts := make([]string, len(*f))
	for i, b := range *f {
		parts[i] = b.String() + "=" + b.label
	}
	return strings.Join(parts, ",")
}

func (f *bindFlags) Set(s string) error {
	spec, err := parseBindSpec(s)
	if err != nil {
		return err
	}
	*f = append(*f, spec)
	return nil
}
