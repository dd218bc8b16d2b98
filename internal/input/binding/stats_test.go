package binding

import (
	"testing"

	"github.com/dshills/keybind/internal/input"
	"github.com/dshills/keybind/internal/input/mouse"
	"github.com/dshills/keybind/internal/input/scancode"
)

func TestStats(t *testing.T) {
	tbl := NewTable()
	r := &recorder{}
	if err := tbl.BindKey(scancode.A, r); err != nil {
		t.Fatal(err)
	}
	if err := tbl.BindMouseButton(mouse.ButtonLeft, r); err != nil {
		t.Fatal(err)
	}

	events := []input.Event{
		input.KeyDown(scancode.A),
		input.KeyUp(scancode.A),
		input.KeyDown(scancode.B),
		input.KeyDown(scancode.Num),
		input.MouseDown(mouse.ButtonLeft),
		input.MouseDown(mouse.ButtonRight),
		input.MouseDown(mouse.MaxButtons),
		{Kind: input.KindMouseMotion},
		{Kind: input.KindQuit},
	}
	for _, ev := range events {
		tbl.FireEvent(ev)
	}

	want := Stats{
		KeyEvents:   4,
		MouseEvents: 3,
		Dispatched:  3,
		Unbound:     2,
		OutOfRange:  2,
		Ignored:     2,
	}
	if got := tbl.Stats(); got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
	if got := tbl.Stats().Total(); got != uint64(len(events)) {
		t.Errorf("Total() = %d, want %d", got, len(events))
	}

	tbl.ResetStats()
	if got := tbl.Stats(); got != (Stats{}) {
		t.Errorf("after ResetStats, Stats() = %+v, want zero", got)
	}
	if tbl.KeyListener(scancode.A) == nil {
		t.Error("ResetStats should keep bindings")
	}
}
