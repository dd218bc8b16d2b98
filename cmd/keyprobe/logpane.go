package main

import (
	"bytes"
	"sync"
)

// logPane keeps the last lines written to it so log output can be shown
// inside the probe screen instead of corrupting it.
type logPane struct {
	mu    sync.Mutex
	max   int
	lines []string
	part  []byte
}

func newLogPane(max int) *logPane {
	return &logPane{max: max}
}

// Write implements io.Writer. Incomplete lines are held until their
// newline arrives.
func (p *logPane) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	data := append(p.part, b...)
	for {
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			break
		}
		p.lines = append(p.lines, string(data[:i]))
		data = data[i+1:]
	}
	p.part = append(p.part[:0:0], data...)

	if over := len(p.lines) - p.max; over > 0 {
		p.lines = append(p.lines[:0], p.lines[over:]...)
	}
	return len(b), nil
}

// Lines returns a copy of the retained lines, oldest first.
func (p *logPane) Lines() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.lines...)
}
