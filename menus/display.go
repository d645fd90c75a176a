package menus

import (
	"github.com/automoto/ss-practice/button"
	"github.com/automoto/ss-practice/liveinfo"
)

// DisplayMenu toggles the live info panels.
type DisplayMenu struct {
	active     bool
	cursor     int
	forceClose bool
	enabled    [liveinfo.PanelCount]bool
}

func NewDisplayMenu() *DisplayMenu {
	return &DisplayMenu{}
}

// Enabled reports whether panel p is switched on.
func (m *DisplayMenu) Enabled(p liveinfo.Panel) bool {
	if p < 0 || p >= liveinfo.PanelCount {
		return false
	}
	return m.enabled[p]
}

func (m *DisplayMenu) SetEnabled(p liveinfo.Panel, on bool) {
	if p < 0 || p >= liveinfo.PanelCount {
		return
	}
	m.enabled[p] = on
}

func (m *DisplayMenu) IsActive() bool {
	return m.active
}

func (m *DisplayMenu) Enable(f *Frame) {
	m.active = true
}

func (m *DisplayMenu) Disable(f *Frame) {
	m.forceClose = true
	suppress(f)
}

func (m *DisplayMenu) Input(f *Frame) {
	if !m.active {
		return
	}
	if f.Pad.IsPressed(button.B) {
		m.active = false
		f.Pad.SetNotPressed(button.B)
	} else if f.Pad.IsPressed(button.A) {
		p := liveinfo.Panel(m.cursor)
		m.SetEnabled(p, !m.Enabled(p))
		f.Pad.SetNotPressed(button.A)
	}
}

func (m *DisplayMenu) Display(f *Frame) {
	if m.active {
		rows := make([]row, liveinfo.PanelCount)
		for p := liveinfo.Panel(0); p < liveinfo.PanelCount; p++ {
			rows[p] = row{p.String(), onOff(m.enabled[p])}
		}
		list := newList("Display Menu", int(liveinfo.PanelCount), m.cursor, rows...)
		list.Draw(f.Gfx)
		m.cursor = list.MoveCursor(f.Pad)
	}

	if m.forceClose {
		m.forceClose = false
		m.active = false
	}
}

func onOff(b bool) string {
	if b {
		return "On"
	}
	return "Off"
}
