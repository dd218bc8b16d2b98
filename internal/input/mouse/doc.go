// Package mouse identifies mouse buttons and tracks button masks.
//
// Buttons are small integer indices. The conventional buttons are
// numbered from one:
//
//	mouse.ButtonLeft   // 1
//	mouse.ButtonMiddle // 2
//	mouse.ButtonRight  // 3
//	mouse.ButtonX1     // 4 (back)
//	mouse.ButtonX2     // 5 (forward)
//
// Platforms usually report only a handful of buttons but hand out a
// 32-bit mask of held buttons, and some mice have close to twenty, so
// every index below MaxButtons is addressable.
//
// # Masks
//
// Event sources that only see the set of held buttons turn successive
// masks into press and release transitions with Mask.Diff:
//
//	pressed, released := cur.Diff(prev)
//	for _, b := range pressed.Buttons(nil) {
//	    // b went down
//	}
package mouse
