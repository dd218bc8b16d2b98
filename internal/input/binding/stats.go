package binding

// Stats counts what FireEvent did with the events it was given.
type Stats struct {
	// KeyEvents counts key presses and releases.
	KeyEvents uint64
	// MouseEvents counts mouse button presses and releases.
	MouseEvents uint64
	// Dispatched counts events delivered to a listener.
	Dispatched uint64
	// Unbound counts key and mouse events whose slot had no listener.
	Unbound uint64
	// OutOfRange counts key and mouse events with an invalid scancode or
	// button.
	OutOfRange uint64
	// Ignored counts events of kinds the table does not route.
	Ignored uint64
}

// Total returns the number of events seen.
func (s Stats) Total() uint64 {
	return s.KeyEvents + s.MouseEvents + s.Ignored
}

// Stats returns a snapshot of the dispatch counters.
func (t *Table) Stats() Stats {
	return t.stats
}

// ResetStats zeroes the dispatch counters. Bindings are untouched.
func (t *Table) ResetStats() {
	t.stats = Stats{}
}
