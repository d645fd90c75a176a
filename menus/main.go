package menus

import (
	"github.com/automoto/ss-practice/button"
	"github.com/automoto/ss-practice/config"
	"github.com/automoto/ss-practice/gfx"
)

// MainState is the main menu's current screen.
type MainState int

const (
	StateOff MainState = iota
	StateMenuSelect
	StateDisplay
	StateWarp
	StateAction
)

func (s MainState) String() string {
	switch s {
	case StateOff:
		return "Off"
	case StateMenuSelect:
		return "MenuSelect"
	case StateDisplay:
		return "DisplayMenu"
	case StateWarp:
		return "WarpMenu"
	case StateAction:
		return "ActionMenu"
	}
	return "Unknown"
}

// mainEntries is the menu select list, in cursor order.
var mainEntries = []struct {
	label string
	state MainState
}{
	{"On Screen Display", StateDisplay},
	{"Warp", StateWarp},
	{"Actions", StateAction},
}

const mainCapacity = 5

// MainMenu opens on the activation chord and hands off to one sub-menu at a
// time.
type MainMenu struct {
	state      MainState
	cursor     int
	forceClose bool

	OSD    *DisplayMenu
	Warp   *WarpMenu
	Action *ActionMenu
}

func NewMainMenu() *MainMenu {
	return &MainMenu{
		OSD:    NewDisplayMenu(),
		Warp:   NewWarpMenu(),
		Action: NewActionMenu(),
	}
}

// State returns the current screen.
func (m *MainMenu) State() MainState {
	return m.state
}

// Cursor returns the menu select row.
func (m *MainMenu) Cursor() int {
	return m.cursor
}

func (m *MainMenu) IsActive() bool {
	return m.state != StateOff
}

// sub returns the menu owning state s, nil for Off and MenuSelect.
func (m *MainMenu) sub(s MainState) Menu {
	switch s {
	case StateDisplay:
		return m.OSD
	case StateWarp:
		return m.Warp
	case StateAction:
		return m.Action
	}
	return nil
}

// Enable opens the menu select screen when the chord is held.
func (m *MainMenu) Enable(f *Frame) {
	if m.IsActive() {
		return
	}
	if f.Pad.IsDown(config.Practice.Chord) {
		m.state = StateMenuSelect
		m.cursor = 0
	}
}

func (m *MainMenu) Disable(f *Frame) {
	m.forceClose = true
	suppress(f)
	if sub := m.sub(m.state); sub != nil {
		sub.Disable(f)
	}
}

func (m *MainMenu) Input(f *Frame) {
	switch m.state {
	case StateMenuSelect:
		if f.Pad.IsPressed(button.B) {
			m.state = StateOff
			f.Pad.SetNotPressed(button.B)
		} else if f.Pad.IsPressed(button.A) {
			if m.cursor < 0 || m.cursor >= len(mainEntries) {
				return
			}
			m.state = mainEntries[m.cursor].state
			m.sub(m.state).Enable(f)
		}
	default:
		if sub := m.sub(m.state); sub != nil {
			sub.Input(f)
		}
	}
}

func (m *MainMenu) Display(f *Frame) {
	if m.IsActive() {
		drawGuide(f.Gfx)
	}

	switch m.state {
	case StateMenuSelect:
		rows := make([]row, len(mainEntries))
		for i, e := range mainEntries {
			rows[i] = row{label: e.label}
		}
		list := newList("Main Menu Select", mainCapacity, m.cursor, rows...)
		list.Draw(f.Gfx)
		m.cursor = list.MoveCursor(f.Pad)
	case StateDisplay, StateWarp, StateAction:
		sub := m.sub(m.state)
		sub.Display(f)
		if !sub.IsActive() {
			m.state = StateMenuSelect
		}
	}

	if m.forceClose {
		m.forceClose = false
		m.state = StateOff
	}
}

// drawGuide dims the host's picture and lists the controls along the bottom.
func drawGuide(r gfx.Renderer) {
	cfg := config.Overlay
	r.FillRect(0, 0, gfx.ScreenWidth, gfx.ScreenHeight, cfg.DimColor)

	w := gfx.NewTextWriter(r)
	w.SetFontColor(cfg.GuideColor)
	w.SetFontSize(cfg.GuideSize)
	w.SetPosition(cfg.GuideX, cfg.GuideY)
	w.PrintSymbol(gfx.SymbolA)
	w.Print("Select\t")
	w.PrintSymbol(gfx.SymbolB)
	w.Print("Back\t")
	w.PrintSymbol(gfx.SymbolDpadUpDown)
	w.Print("Up/Down\t")
	w.PrintSymbol(gfx.SymbolDpadLeftRight)
	w.Print("Change Value")
}
