package main

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keybind/internal/input"
	"github.com/dshills/keybind/internal/input/binding"
	"github.com/dshills/keybind/internal/input/script"
	"github.com/dshills/keybind/internal/input/source/terminal"
	"github.com/dshills/keybind/internal/logging"
)

// errInterrupted is posted to the screen when a signal asks keyprobe to
// stop.
var errInterrupted = errors.New("interrupted")

// probe shows which controls are active while the user presses keys.
type probe struct {
	screen   tcell.Screen
	src      *terminal.Source
	table    *binding.Table
	controls []*binding.Control
	inputs   map[string][]string
	hits     map[string]int
	logs     *logPane
	logger   *logging.Logger
	quitName string
	last     input.Event
	quit     bool
}

func newProbe(table *binding.Table, logs *logPane, logger *logging.Logger) *probe {
	return &probe{
		table:  table,
		inputs: make(map[string][]string),
		hits:   make(map[string]int),
		logs:   logs,
		logger: logger,
	}
}

// bind binds every spec to the control named by its label, creating
// controls as needed. Labels that match a function in eng also call
// that function whenever the control turns on or off.
func (p *probe) bind(specs []bindSpec, eng *script.Engine) error {
	byLabel := make(map[string]*binding.Control)
	for _, spec := range specs {
		c, ok := byLabel[spec.label]
		if !ok {
			c = p.newControl(spec.label, eng)
			byLabel[spec.label] = c
			p.controls = append(p.controls, c)
		}
		if err := spec.apply(p.table, c); err != nil {
			return fmt.Errorf("binding %s: %w", spec, err)
		}
		p.inputs[spec.label] = append(p.inputs[spec.label], spec.String())
	}
	return nil
}

func (p *probe) newControl(label string, eng *script.Engine) *binding.Control {
	var scripted *script.Listener
	if eng != nil && slices.Contains(eng.Functions(), label) {
		scripted, _ = eng.Listener(label)
	}

	return binding.NewControl(label).OnChange(func(name string, active bool) {
		p.logger.Info("%s %s", name, onOff(active))
		if active {
			p.hits[name]++
		}
		if scripted != nil {
			scripted.OnControlChange(active)
		}
	})
}

// bindQuit binds the quit key. It replaces any control bound to the
// same key.
func (p *probe) bindQuit(keyname string) error {
	if keyname == "" {
		return nil
	}
	p.quitName = keyname
	quit := binding.ListenerFunc(func(active bool) {
		if active {
			p.quit = true
		}
	})
	return p.table.BindKeyByName(keyname, quit)
}

// run pumps events from screen until the quit key is pressed, Ctrl-C
// is typed or the screen is interrupted.
func (p *probe) run(screen tcell.Screen) {
	p.screen = screen
	p.src = terminal.NewSource(screen, p.table.Layout())
	for !p.quit {
		p.draw()

		raw, events := p.src.Poll()
		switch ev := raw.(type) {
		case nil:
			return
		case *tcell.EventInterrupt:
			if ev.Data() == errInterrupted {
				return
			}
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				return
			}
		case *tcell.EventResize:
			p.screen.Sync()
		}

		// Terminal key presses arrive as a down and up pair; show the down.
		for i, ev := range events {
			if i == 0 && ev.Kind != input.KindNone {
				p.last = ev
			}
			p.table.FireEvent(ev)
		}
	}
}

func (p *probe) draw() {
	p.screen.Clear()
	w, h := p.screen.Size()

	bold := tcell.StyleDefault.Bold(true)
	on := tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)

	header := fmt.Sprintf("keyprobe  layout: %s", p.table.Layout().Name())
	if p.quitName != "" {
		header += fmt.Sprintf("  quit: %s", p.quitName)
	}
	drawText(p.screen, 0, 0, w, bold, header)
	st := p.table.Stats()
	drawText(p.screen, 0, 1, w, tcell.StyleDefault, fmt.Sprintf(
		"events: %d  dispatched: %d  unbound: %d", st.Total(), st.Dispatched, st.Unbound))

	row := 3
	for _, c := range p.controls {
		style, mark := tcell.StyleDefault, "[ ]"
		if c.Active() {
			style, mark = on, "[x]"
		}
		line := fmt.Sprintf("%s %-16s %4d  %s", mark, c.Name(), p.hits[c.Name()], strings.Join(p.inputs[c.Name()], ", "))
		drawText(p.screen, 0, row, w, style, line)
		row++
	}
	if len(p.controls) == 0 {
		drawText(p.screen, 0, row, w, tcell.StyleDefault, "no controls bound; use -bind input=label")
		row++
	}

	row++
	drawText(p.screen, 0, row, w, tcell.StyleDefault, "last: "+describe(p.last))

	lines := p.logs.Lines()
	room := h - row - 2
	if room > 0 && len(lines) > room {
		lines = lines[len(lines)-room:]
	}
	for i, line := range lines {
		drawText(p.screen, 0, h-len(lines)+i, w, tcell.StyleDefault.Dim(true), line)
	}

	p.screen.Show()
}

func drawText(s tcell.Screen, x, y, maxWidth int, style tcell.Style, text string) {
	for _, r := range text {
		if x >= maxWidth {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// describe formats an event for the status line.
func describe(ev input.Event) string {
	switch {
	case ev.Kind.IsKey():
		return fmt.Sprintf("%s %s (%d)", ev.Kind, ev.Scancode, int(ev.Scancode))
	case ev.Kind.IsMouseButton():
		return fmt.Sprintf("%s %s at %d,%d", ev.Kind, ev.Button, ev.X, ev.Y)
	case ev.Kind == input.KindMouseMotion:
		return fmt.Sprintf("%s to %d,%d", ev.Kind, ev.X, ev.Y)
	case ev.Kind == input.KindMouseWheel || ev.Kind == input.KindResize:
		return fmt.Sprintf("%s %d,%d", ev.Kind, ev.X, ev.Y)
	case ev.Kind == input.KindNone:
		return "-"
	default:
		return ev.Kind.String()
	}
}

func onOff(active bool) string {
	if active {
		return "on"
	}
	return "off"
}
