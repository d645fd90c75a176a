// Package menu provides the bounded list widget the overlay menus are built
// from.
package menu

import (
	"errors"
	"fmt"

	"github.com/automoto/ss-practice/button"
	"github.com/automoto/ss-practice/config"
	"github.com/automoto/ss-practice/gfx"
)

// ErrCapacity is returned when an entry is added to a full menu.
var ErrCapacity = errors.New("menu capacity exceeded")

type entry struct {
	label string
	value string
}

// Simple is a heading over a fixed-capacity list of entries with one
// highlighted row. Menus build one each frame from their own cursor.
type Simple struct {
	heading  string
	entries  []entry
	capacity int
	cursor   int
}

func New(capacity int) *Simple {
	return &Simple{capacity: capacity, entries: make([]entry, 0, capacity)}
}

func (m *Simple) SetHeading(heading string) {
	m.heading = heading
}

// SetCursor selects row i. Out of range values are clamped when the cursor is
// next used.
func (m *Simple) SetCursor(i int) {
	m.cursor = i
}

// Cursor returns the selected row, clamped into range.
func (m *Simple) Cursor() int {
	n := len(m.entries)
	switch {
	case n == 0 || m.cursor < 0:
		return 0
	case m.cursor >= n:
		return n - 1
	}
	return m.cursor
}

func (m *Simple) Len() int {
	return len(m.entries)
}

// AddEntry appends a row. A full menu keeps its entries and returns
// ErrCapacity.
func (m *Simple) AddEntry(label string) error {
	return m.AddEntryValue(label, "")
}

// AddEntryValue appends a row with a value shown right-aligned.
func (m *Simple) AddEntryValue(label, value string) error {
	if len(m.entries) >= m.capacity {
		return fmt.Errorf("add %q: %w", label, ErrCapacity)
	}
	m.entries = append(m.entries, entry{label: label, value: value})
	return nil
}

// MoveCursor applies this frame's up/down presses with wrap-around and returns
// the new row.
func (m *Simple) MoveCursor(pad *button.Pad) int {
	n := len(m.entries)
	c := m.Cursor()
	if n == 0 {
		m.cursor = 0
		return 0
	}
	if pad.IsPressed(button.DpadUp) {
		c = (c - 1 + n) % n
	} else if pad.IsPressed(button.DpadDown) {
		c = (c + 1) % n
	}
	m.cursor = c
	return c
}

// Draw renders the heading, the entries and a highlight bar behind the
// selected row.
func (m *Simple) Draw(r gfx.Renderer) {
	cfg := config.Overlay
	size := cfg.FontSize
	step := r.LineHeight(size) + cfg.LineGap

	x, y := cfg.MenuX, cfg.MenuY
	if m.heading != "" {
		r.DrawText(m.heading, x, y, size, cfg.HeadingColor)
		y += step + cfg.LineGap
	}

	cursor := m.Cursor()
	for i, e := range m.entries {
		colour := cfg.TextColorNormal
		if i == cursor {
			r.FillRect(x-4, y-cfg.LineGap/2, cfg.MenuWidth, step, cfg.HighlightColor)
			colour = cfg.TextColorSelected
		}
		r.DrawText(e.label, x, y, size, colour)
		if e.value != "" {
			vx := x + cfg.MenuWidth - 12 - r.MeasureText(e.value, size)
			r.DrawText(e.value, vx, y, size, cfg.ValueColor)
		}
		y += step
	}
}
