package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keybind/internal/logging"
)

// Listener is a control listener backed by a Lua function. The function
// is called with a single boolean argument.
type Listener struct {
	L      *lua.LState
	fn     *lua.LFunction
	name   string
	logger *logging.Logger

	lastErr error
	errors  int
}

// NewListener wraps fn. name identifies the listener in log messages.
// A nil logger discards errors after recording them.
func NewListener(L *lua.LState, fn *lua.LFunction, name string, logger *logging.Logger) *Listener {
	if logger == nil {
		logger = logging.NullLogger
	}
	return &Listener{L: L, fn: fn, name: name, logger: logger}
}

// Name returns the listener name.
func (l *Listener) Name() string {
	return l.name
}

// OnControlChange calls the Lua function in protected mode.
func (l *Listener) OnControlChange(active bool) {
	err := l.L.CallByParam(lua.P{
		Fn:      l.fn,
		NRet:    0,
		Protect: true,
	}, lua.LBool(active))
	if err != nil {
		l.lastErr = err
		l.errors++
		l.logger.Error("listener %s failed: %v", l.name, err)
	}
}

// Err returns the error raised by the most recent failing call, or nil.
func (l *Listener) Err() error {
	return l.lastErr
}

// Errors returns how many calls have failed.
func (l *Listener) Errors() int {
	return l.errors
}
