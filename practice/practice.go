// Package practice is the overlay's per-frame entry point. The host calls
// Input after polling its controller and Display after drawing its own frame.
package practice

import (
	"github.com/automoto/ss-practice/game"
	"github.com/automoto/ss-practice/gfx"
	"github.com/automoto/ss-practice/liveinfo"
	"github.com/automoto/ss-practice/menus"
)

// Tool owns every menu for the life of the host run.
type Tool struct {
	host *game.Host
	main *menus.MainMenu
}

func New(host *game.Host) *Tool {
	return &Tool{host: host, main: menus.NewMainMenu()}
}

func (t *Tool) frame(r gfx.Renderer) *menus.Frame {
	return &menus.Frame{
		Pad:  t.host.Pad(),
		Gfx:  r,
		Host: t.host,
		Root: t.main,
	}
}

// Input opens the main menu on the chord and routes this frame's presses.
func (t *Tool) Input() {
	f := t.frame(nil)
	t.main.Enable(f)
	t.main.Input(f)
}

// Display draws the enabled live info panels, then the menus on top.
func (t *Tool) Display(r gfx.Renderer) {
	for p := liveinfo.Panel(0); p < liveinfo.PanelCount; p++ {
		if t.main.OSD.Enabled(p) {
			liveinfo.Render(p, t.host, r)
		}
	}
	t.main.Display(t.frame(r))
}

// Active reports whether any menu is open.
func (t *Tool) Active() bool {
	return t.main.IsActive()
}

// Menu exposes the main menu.
func (t *Tool) Menu() *menus.MainMenu {
	return t.main
}
