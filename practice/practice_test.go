package practice

import (
	"testing"

	"github.com/automoto/ss-practice/button"
	"github.com/automoto/ss-practice/config"
	"github.com/automoto/ss-practice/game"
	"github.com/automoto/ss-practice/gfx"
	"github.com/automoto/ss-practice/hostcall"
	"github.com/automoto/ss-practice/hostmem"
	"github.com/automoto/ss-practice/liveinfo"
	"github.com/automoto/ss-practice/menus"
)

var testSymbols = game.Symbols{
	LinkPtr:          0x80000000,
	PadPtr:           0x80000004,
	SceneflagManager: 0x80000008,
}

const (
	padAt   hostmem.Addr = 0x80000100
	flagsAt hostmem.Addr = 0x80000200
)

func newTool(t *testing.T) (*Tool, *button.Pad, *hostmem.Arena) {
	t.Helper()
	a := hostmem.NewArena(0x80000000, 0x1000)
	hostmem.WriteU32(a, hostmem.Addr(testSymbols.PadPtr), uint32(padAt))
	host := game.NewHost(a, hostcall.NewTable(), testSymbols)
	return New(host), host.Pad(), a
}

func run(tool *Tool, pad *button.Pad, down, pressed button.Buttons) *gfx.Recorder {
	pad.Store(button.State{Down: down, Pressed: pressed})
	tool.Input()
	r := &gfx.Recorder{}
	tool.Display(r)
	return r
}

func TestFrameFlow(t *testing.T) {
	tool, pad, _ := newTool(t)

	if r := run(tool, pad, 0, 0); len(r.Ops) != 0 || tool.Active() {
		t.Fatal("idle overlay drew or opened")
	}

	run(tool, pad, config.Practice.Chord, button.Two)
	if !tool.Active() || tool.Menu().State() != menus.StateMenuSelect {
		t.Fatalf("chord did not open the menu")
	}

	// On Screen Display, enable the input viewer, back out twice.
	run(tool, pad, button.A, button.A)
	run(tool, pad, button.DpadDown, button.DpadDown)
	run(tool, pad, button.DpadDown, button.DpadDown)
	run(tool, pad, button.A, button.A)
	run(tool, pad, button.B, button.B)
	run(tool, pad, button.B, button.B)
	if tool.Active() {
		t.Fatal("menu still open")
	}

	r := run(tool, pad, button.A|button.One, button.One)
	if !r.HasText("Input: A 1") {
		t.Errorf("input viewer missing, drew %q", r.Texts())
	}
	if r.HasText("Main Menu Select") {
		t.Error("menu drawn while closed")
	}
}

func TestPanelsDrawBelowMenu(t *testing.T) {
	tool, pad, a := newTool(t)
	hostmem.WriteU32(a, hostmem.Addr(testSymbols.SceneflagManager), uint32(flagsAt))
	hostmem.WriteU16(a, flagsAt+0x04, 0x1234)
	tool.Menu().OSD.SetEnabled(liveinfo.PanelSceneFlags, true)

	r := run(tool, pad, config.Practice.Chord, button.Two)

	panel, menu := -1, -1
	for i, op := range r.Ops {
		if op.Kind != gfx.OpText {
			continue
		}
		if panel < 0 && len(op.Text) >= 6 && op.Text[:6] == "Scene:" {
			panel = i
		}
		if op.Text == "Main Menu Select" {
			menu = i
		}
	}
	if panel < 0 || menu < 0 || panel > menu {
		t.Errorf("panel op %d, menu op %d: panel must come first", panel, menu)
	}
	if !r.HasText("Scene: 12 34") {
		t.Errorf("flag words missing: %q", r.Texts())
	}
}

func TestAbsentPad(t *testing.T) {
	a := hostmem.NewArena(0x80000000, 0x1000)
	tool := New(game.NewHost(a, hostcall.NewTable(), testSymbols))

	tool.Input()
	r := &gfx.Recorder{}
	tool.Display(r)
	if tool.Active() || len(r.Ops) != 0 {
		t.Error("overlay reacted without a controller record")
	}
}
