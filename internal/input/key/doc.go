// Package key identifies keys by meaning rather than position.
//
// A Key is what a layout makes of a scancode: the same physical key
// (scancode.A) is key 'a' on a US layout and key 'q' on AZERTY. Printable
// keys are their lower-case code point; keys without a glyph reuse their
// scancode with bit 30 set.
//
//	k := key.FromName("Q")              // 'q'
//	key.US.Scancode(k)                  // scancode.Q
//	key.AZERTY.Scancode(k)              // scancode.A
//	key.ScancodeFromName("Q", key.US)   // scancode.Q
//
// Layouts are immutable; With derives a new one.
package key
