package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keybind/internal/input"
	"github.com/dshills/keybind/internal/input/key"
)

// Source reads events from a tcell screen and translates them.
type Source struct {
	screen tcell.Screen
	tr     *Translator
	buf    []input.Event
}

// NewSource creates a source for an initialized screen.
func NewSource(screen tcell.Screen, layout *key.Layout) *Source {
	return &Source{
		screen: screen,
		tr:     NewTranslator(layout),
		buf:    make([]input.Event, 0, 8),
	}
}

// Poll blocks for the next screen event and returns it together with its
// translation. The returned slice is reused by the next call. raw is nil
// once the screen has been finalized.
func (s *Source) Poll() (raw tcell.Event, events []input.Event) {
	raw = s.screen.PollEvent()
	if raw == nil {
		return nil, nil
	}
	s.buf = s.tr.Translate(raw, s.buf[:0])
	return raw, s.buf
}
