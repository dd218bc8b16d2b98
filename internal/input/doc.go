// Package input defines the raw input events routed to control bindings.
//
// An Event is a discrete, already-decoded occurrence: a key went down or
// up, a mouse button went down or up, the pointer moved, and so on. Event
// sources (see the source/ packages) translate platform events into Event
// values; binding.Table consumes them.
//
// # Subpackages
//
//   - scancode: physical key positions and the key-definition resolver
//   - key: layout-dependent key identifiers and keyboard layouts
//   - mouse: mouse button indices and button masks
//   - binding: the scancode/button to listener dispatch table
//   - script: Lua-scripted listeners
//   - source/terminal, source/window: event sources
package input
