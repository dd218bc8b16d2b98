package binding

// Listener receives state changes of a bound control.
type Listener interface {
	// OnControlChange reports that a source of this binding changed to
	// the given state: true when active, false when inactive.
	OnControlChange(active bool)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(active bool)

// OnControlChange calls f(active).
func (f ListenerFunc) OnControlChange(active bool) {
	f(active)
}

// normalize maps listeners that cannot be called to nil so they read as
// an unbound slot.
func normalize(l Listener) Listener {
	if f, ok := l.(ListenerFunc); ok && f == nil {
		return nil
	}
	return l
}
