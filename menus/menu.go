// Package menus holds the overlay's menu state machines. Each menu is driven
// once per host frame: Input reacts to this frame's presses, then Display
// draws and finishes any transitions Input started.
package menus

import (
	"log"

	"github.com/automoto/ss-practice/button"
	"github.com/automoto/ss-practice/config"
	"github.com/automoto/ss-practice/game"
	"github.com/automoto/ss-practice/gfx"
	"github.com/automoto/ss-practice/menu"
)

// Frame is what a menu may touch during one host frame.
type Frame struct {
	Pad  *button.Pad
	Gfx  gfx.Renderer
	Host *game.Host
	// Root is the top-level menu, closed by sub-menus after they act
	Root Menu
}

// Menu is the contract every overlay menu follows.
//
// Enable opens the menu and does nothing when it is already open. Disable
// requests a close; the menu stays active until the end of its next Display,
// and the buttons the overlay uses are hidden from the host straight away.
type Menu interface {
	Enable(f *Frame)
	Disable(f *Frame)
	Input(f *Frame)
	Display(f *Frame)
	IsActive() bool
}

// closeAll closes the whole overlay, or just m when there is no root.
func closeAll(m Menu, f *Frame) {
	if f.Root != nil {
		f.Root.Disable(f)
		return
	}
	m.Disable(f)
}

func suppress(f *Frame) {
	f.Pad.SetNotPressed(config.Practice.Intercepted)
}

// row is one list entry; an empty value draws none.
type row struct {
	label string
	value string
}

// Headings of lists that already reported an overflow. Lists are rebuilt
// every frame, so each one warns once.
var overflowed = map[string]bool{}

// newList builds a list from rows. Rows past capacity are dropped and logged.
func newList(heading string, capacity, cursor int, rows ...row) *menu.Simple {
	list := menu.New(capacity)
	list.SetHeading(heading)
	list.SetCursor(cursor)
	for _, r := range rows {
		if err := list.AddEntryValue(r.label, r.value); err != nil {
			if !overflowed[heading] {
				overflowed[heading] = true
				log.Printf("Warning: menu %q: %v", heading, err)
			}
		}
	}
	return list
}
