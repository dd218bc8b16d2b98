package binding

// Control is a named listener that may be fed by several sources at once,
// for example "W", "Up" and the left mouse button all bound to "jump".
// It is active while at least one of its sources is held.
//
// Control counts presses and releases, so it relies on sources reporting
// each release after its press. Like Table, it is not safe for
// concurrent use.
type Control struct {
	name     string
	held     int
	onChange func(name string, active bool)
}

// NewControl creates an inactive control.
func NewControl(name string) *Control {
	return &Control{name: name}
}

// OnChange sets a hook called whenever the control turns on or off.
// Presses that do not change the state (a second held source) do not
// call it.
func (c *Control) OnChange(fn func(name string, active bool)) *Control {
	c.onChange = fn
	return c
}

// Name returns the control name.
func (c *Control) Name() string {
	return c.name
}

// Active reports whether any source of the control is held.
func (c *Control) Active() bool {
	return c.held > 0
}

// Reset releases every source without calling the change hook.
func (c *Control) Reset() {
	c.held = 0
}

// OnControlChange implements Listener.
func (c *Control) OnControlChange(active bool) {
	was := c.Active()
	switch {
	case active:
		c.held++
	case c.held > 0:
		c.held--
	}
	if now := c.Active(); now != was && c.onChange != nil {
		c.onChange(c.name, now)
	}
}
