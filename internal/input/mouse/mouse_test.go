package mouse

import (
	"errors"
	"reflect"
	"testing"
)

func TestButtonString(t *testing.T) {
	tests := []struct {
		button   Button
		expected string
	}{
		{ButtonNone, "none"},
		{ButtonLeft, "left"},
		{ButtonMiddle, "middle"},
		{ButtonRight, "right"},
		{ButtonX1, "x1"},
		{ButtonX2, "x2"},
		{Button(9), "button9"},
		{Button(31), "button31"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.button.String(); got != tt.expected {
				t.Errorf("Button.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestButtonValid(t *testing.T) {
	if !Button(0).Valid() || !Button(31).Valid() {
		t.Error("buttons 0 and 31 should be valid")
	}
	if Button(32).Valid() || Button(255).Valid() {
		t.Error("buttons 32 and 255 should be invalid")
	}
}

func TestParseButton(t *testing.T) {
	tests := []struct {
		name string
		want Button
	}{
		{"left", ButtonLeft},
		{"Left", ButtonLeft},
		{"middle", ButtonMiddle},
		{" right ", ButtonRight},
		{"back", ButtonX1},
		{"x1", ButtonX1},
		{"forward", ButtonX2},
		{"7", Button(7)},
		{"button7", Button(7)},
		{"Button 31", Button(31)},
		{"0", ButtonNone},
	}

	for _, tt := range tests {
		got, err := ParseButton(tt.name)
		if err != nil {
			t.Errorf("ParseButton(%q) error = %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseButton(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestParseButtonInvalid(t *testing.T) {
	for _, name := range []string{"", "wheel", "32", "button 300", "-1"} {
		if _, err := ParseButton(name); !errors.Is(err, ErrUnknownButton) {
			t.Errorf("ParseButton(%q) error = %v, want ErrUnknownButton", name, err)
		}
	}
}

func TestMaskOf(t *testing.T) {
	if got := MaskOf(ButtonLeft); got != 0b10 {
		t.Errorf("MaskOf(left) = %b, want 10", got)
	}
	if got := MaskOf(Button(31)); got != 1<<31 {
		t.Errorf("MaskOf(31) = %b, want 1<<31", got)
	}
	if got := MaskOf(Button(32)); got != 0 {
		t.Errorf("MaskOf(32) = %b, want 0", got)
	}
}

func TestMaskWithWithout(t *testing.T) {
	var m Mask
	m = m.With(ButtonLeft).With(ButtonRight)
	if !m.Has(ButtonLeft) || !m.Has(ButtonRight) || m.Has(ButtonMiddle) {
		t.Errorf("mask %b has wrong buttons", m)
	}
	m = m.Without(ButtonLeft)
	if m.Has(ButtonLeft) {
		t.Errorf("mask %b still has left after Without", m)
	}
}

func TestMaskDiff(t *testing.T) {
	prev := MaskOf(ButtonLeft).With(ButtonMiddle)
	cur := MaskOf(ButtonMiddle).With(ButtonRight).With(Button(31))

	pressed, released := cur.Diff(prev)

	if got := pressed.Buttons(nil); !reflect.DeepEqual(got, []Button{ButtonRight, 31}) {
		t.Errorf("pressed = %v, want [right button31]", got)
	}
	if got := released.Buttons(nil); !reflect.DeepEqual(got, []Button{ButtonLeft}) {
		t.Errorf("released = %v, want [left]", got)
	}
}

func TestMaskDiffUnchanged(t *testing.T) {
	m := MaskOf(ButtonLeft)
	pressed, released := m.Diff(m)
	if pressed != 0 || released != 0 {
		t.Errorf("Diff of equal masks = %b, %b, want 0, 0", pressed, released)
	}
}

func TestMaskButtonsAppends(t *testing.T) {
	dst := []Button{ButtonX2}
	got := MaskOf(ButtonLeft).Buttons(dst)
	if !reflect.DeepEqual(got, []Button{ButtonX2, ButtonLeft}) {
		t.Errorf("Buttons() = %v, want [x2 left]", got)
	}
	if got := Mask(0).Buttons(nil); len(got) != 0 {
		t.Errorf("empty mask Buttons() = %v, want none", got)
	}
}
