package script

import (
	"fmt"
	"sort"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keybind/internal/logging"
)

// Engine owns the Lua state scripted listeners run in.
type Engine struct {
	L      *lua.LState
	logger *logging.Logger
	closed bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger listener errors are reported to.
func WithLogger(l *logging.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEngine creates an engine with a restricted Lua state.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{logger: logging.NullLogger}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.WithComponent("script")

	e.L = lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(e.L)
	return e
}

// openSafeLibraries opens the libraries scripts may use. io, os, debug
// and package stay closed.
func openSafeLibraries(L *lua.LState) {
	for _, lib := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(lib.fn))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}
}

// DoString runs Lua source.
func (e *Engine) DoString(src string) error {
	if e.closed {
		return ErrEngineClosed
	}
	if err := e.L.DoString(src); err != nil {
		return fmt.Errorf("running script: %w", err)
	}
	return nil
}

// DoFile runs a Lua file.
func (e *Engine) DoFile(path string) error {
	if e.closed {
		return ErrEngineClosed
	}
	if err := e.L.DoFile(path); err != nil {
		return fmt.Errorf("running script %s: %w", path, err)
	}
	return nil
}

// Functions returns the names of the global functions defined by the
// scripts run so far, excluding library functions, sorted.
func (e *Engine) Functions() []string {
	if e.closed {
		return nil
	}
	var names []string
	e.L.G.Global.ForEach(func(k, v lua.LValue) {
		fn, ok := v.(*lua.LFunction)
		if !ok || fn.IsG {
			return
		}
		if s, ok := k.(lua.LString); ok {
			names = append(names, string(s))
		}
	})
	sort.Strings(names)
	return names
}

// Listener returns a listener calling the global function name.
func (e *Engine) Listener(name string) (*Listener, error) {
	if e.closed {
		return nil, ErrEngineClosed
	}
	fn, ok := e.L.GetGlobal(name).(*lua.LFunction)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFunction, name)
	}
	return NewListener(e.L, fn, name, e.logger), nil
}

// Close releases the Lua state. Listeners obtained from the engine must
// be unbound first.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.closed = true
	e.L.Close()
}
