// Package scancode identifies physical key positions independent of the
// keyboard layout.
//
// Scancode values follow the USB HID keyboard usage page, so scancode 4
// is always the key in the "A" position of a US keyboard, whatever glyph
// the active layout prints on it.
//
// # Names
//
// Every scancode that has a name carries a fixed, layout-independent one:
//
//	scancode.FromName("Return")     // scancode.Return
//	scancode.FromName("keypad 7")   // scancode.KP7
//	scancode.Space.Name()           // "Space"
//
// # Resolving user input
//
// Parse accepts the looser forms people write in key bindings:
//
//   - a single character is a scancode name: "a", "4", ";"
//   - an integer literal is a raw scancode: "26", "0x1a", "032"
//   - "scancode" followed by a literal pins a raw scancode: "scancode 4"
//   - anything else is a scancode name: "Left Ctrl", "keypad enter"
//
// Parse never fails; input it cannot resolve yields Unknown.
package scancode
