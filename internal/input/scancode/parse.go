package scancode

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"
)

// rawPrefix marks a name as an explicit raw scancode ("scancode 4").
const rawPrefix = "scancode"

// Parse resolves a key definition to a scancode. Matching is not case
// sensitive and the first rule that applies wins:
//
//  1. A single character is looked up as a scancode name, so "4" is the
//     digit-4 key rather than raw scancode 4.
//  2. An integer literal (decimal, 0x hex, leading-0 octal) is a raw
//     scancode. Literals outside [0, Num) yield Unknown.
//  3. A "scancode" prefix forces the remainder through rule 2. This is
//     how raw scancodes 0-9 are reached: "scancode 4" is the A position
//     on any layout.
//  4. Anything else is looked up as a scancode name.
//
// Parse returns Unknown for anything it cannot resolve.
func Parse(keyname string) Scancode {
	if utf8.RuneCountInString(keyname) == 1 {
		return FromName(keyname)
	}

	if s, ok := parseLiteral(keyname); ok {
		return s
	}

	if hasPrefixFold(keyname, rawPrefix) {
		if s, ok := parseLiteral(keyname[len(rawPrefix):]); ok {
			return s
		}
		return Unknown
	}

	return FromName(keyname)
}

// parseLiteral parses s as a whole integer literal. ok is true when s is
// numeric; s is then Unknown if the value is out of range.
func parseLiteral(s string) (sc Scancode, ok bool) {
	s = strings.TrimLeft(s, " \t\n\v\f\r")
	if s == "" {
		return Unknown, false
	}

	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Unknown, true
		}
		return Unknown, false
	}
	if v < 0 || v >= Num {
		return Unknown, true
	}
	return Scancode(v), true
}
