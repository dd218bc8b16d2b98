// Package binding routes raw input events to control listeners.
//
// A Table holds one listener slot per scancode and one per mouse button.
// FireEvent looks up the slot addressed by an event and tells the
// listener whether its control became active (press) or inactive
// (release):
//
//	t := binding.NewTable()
//	jump := binding.NewControl("jump")
//	t.BindKeyByName("Space", jump)
//	t.BindKeyByName("scancode 26", jump) // W position on any layout
//	t.BindMouseButton(mouse.ButtonLeft, jump)
//
//	for _, ev := range events {
//	    t.FireEvent(ev)
//	}
//
// # Names
//
// Keys can be bound by scancode or by name. BindKeyByName accepts every
// form scancode.Parse does; BindKeyByKeyName resolves through the
// table's keyboard layout; BindKeyByScancodeName accepts scancode names
// only. A name that resolves to nothing still binds, to
// scancode.Unknown, which no event source emits. Resolve the name first
// when a dead binding is not acceptable.
//
// # Ownership
//
// The table never creates, copies or releases listeners. The caller owns
// them and must unbind a listener before discarding it.
//
// # Concurrency
//
// A Table is not safe for concurrent use. It is meant to be driven by the
// single goroutine that pumps input events; callers sharing a table must
// synchronise externally.
//
// Listeners may change bindings from OnControlChange. The change applies
// to events fired afterwards; the callback already running is not
// affected.
package binding
