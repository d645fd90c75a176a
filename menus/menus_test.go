package menus

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/automoto/ss-practice/button"
	"github.com/automoto/ss-practice/config"
	"github.com/automoto/ss-practice/game"
	"github.com/automoto/ss-practice/gfx"
	"github.com/automoto/ss-practice/hostcall"
	"github.com/automoto/ss-practice/hostmem"
	"github.com/automoto/ss-practice/liveinfo"
)

var testSymbols = game.Symbols{
	LinkPtr:         0x80000000,
	PadPtr:          0x80000004,
	Scratch:         0x80000200,
	TriggerEntrance: 0x80100000,
}

const (
	padAt  hostmem.Addr = 0x80000100
	linkAt hostmem.Addr = 0x80001000
)

type fixture struct {
	t         *testing.T
	pad       *button.Pad
	player    game.Player
	root      *MainMenu
	rec       *gfx.Recorder
	f         *Frame
	entrances []game.Entrance
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	a := hostmem.NewArena(0x80000000, 0x10000)
	hostmem.WriteU32(a, hostmem.Addr(testSymbols.PadPtr), uint32(padAt))
	hostmem.WriteU32(a, hostmem.Addr(testSymbols.LinkPtr), uint32(linkAt))

	fx := &fixture{t: t, root: NewMainMenu(), rec: &gfx.Recorder{}}
	tbl := hostcall.NewTable()
	tbl.Register(testSymbols.TriggerEntrance, "triggerEntrance", func(args *hostcall.Args) hostcall.Result {
		e, _ := game.DecodeEntrance(a, args)
		fx.entrances = append(fx.entrances, e)
		return hostcall.Result{}
	})

	host := game.NewHost(a, tbl, testSymbols)
	fx.pad = host.Pad()
	fx.player = host.Player()
	fx.f = &Frame{Pad: fx.pad, Gfx: fx.rec, Host: host, Root: fx.root}
	return fx
}

// frame runs one host frame with down held and pressed going down this frame.
func (fx *fixture) frame(down, pressed button.Buttons) {
	fx.pad.Store(button.State{Down: down, Pressed: pressed})
	fx.rec.Reset()
	fx.root.Enable(fx.f)
	fx.root.Input(fx.f)
	fx.root.Display(fx.f)
}

func (fx *fixture) press(b button.Buttons) {
	fx.frame(b, b)
}

func (fx *fixture) open() {
	fx.frame(config.Practice.Chord, button.Two)
	if fx.root.State() != StateMenuSelect {
		fx.t.Fatalf("chord did not open the menu, state %v", fx.root.State())
	}
}

// enter opens the menu and selects row i of the menu select screen.
func (fx *fixture) enter(i int) {
	fx.open()
	for n := 0; n < i; n++ {
		fx.press(button.DpadDown)
	}
	fx.press(button.A)
}

func TestChordActivation(t *testing.T) {
	fx := newFixture(t)

	fx.frame(button.DpadRight, button.DpadRight)
	if fx.root.IsActive() {
		t.Fatal("partial chord opened the menu")
	}

	fx.open()
	fx.press(button.DpadDown)
	if fx.root.Cursor() != 1 {
		t.Fatalf("cursor = %d, want 1", fx.root.Cursor())
	}
	fx.press(button.B)
	if fx.root.State() != StateOff {
		t.Fatalf("B left state %v", fx.root.State())
	}
	if fx.pad.IsDown(button.B) {
		t.Error("B leaked through to the host")
	}

	fx.open()
	if fx.root.Cursor() != 0 {
		t.Errorf("cursor after reopening = %d, want 0", fx.root.Cursor())
	}
}

func TestMenuSelectToWarp(t *testing.T) {
	fx := newFixture(t)
	fx.enter(1)

	if fx.root.State() != StateWarp {
		t.Fatalf("state = %v, want WarpMenu", fx.root.State())
	}
	if !fx.root.Warp.IsActive() {
		t.Error("warp menu not active")
	}
	if !fx.rec.HasText("Warp Menu") {
		t.Error("warp menu not drawn on the frame it opened")
	}
}

func TestSubMenuBackReturnsToMenuSelect(t *testing.T) {
	for i, want := range []MainState{StateDisplay, StateWarp, StateAction} {
		t.Run(want.String(), func(t *testing.T) {
			fx := newFixture(t)
			fx.enter(i)
			if fx.root.State() != want {
				t.Fatalf("state = %v, want %v", fx.root.State(), want)
			}

			fx.press(button.B)
			if fx.root.State() != StateMenuSelect {
				t.Errorf("after B state = %v, want MenuSelect", fx.root.State())
			}
			if fx.pad.IsPressed(button.B) {
				t.Error("B not suppressed")
			}
		})
	}
}

func TestDisableClosesFromEveryState(t *testing.T) {
	tests := []struct {
		name  string
		setup func(fx *fixture)
	}{
		{"MenuSelect", func(fx *fixture) { fx.open() }},
		{"DisplayMenu", func(fx *fixture) { fx.enter(0) }},
		{"WarpMenu stage select", func(fx *fixture) { fx.enter(1) }},
		{"WarpMenu details", func(fx *fixture) {
			fx.enter(1)
			fx.press(button.A)
		}},
		{"ActionMenu", func(fx *fixture) { fx.enter(2) }},
		{"Off", func(fx *fixture) {}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newFixture(t)
			tt.setup(fx)

			all := config.Practice.Intercepted
			fx.pad.Store(button.State{Down: all, Pressed: all})
			fx.root.Disable(fx.f)
			if fx.pad.Down()&all != 0 {
				t.Errorf("intercepted buttons still held: %v", fx.pad.Down()&all)
			}

			fx.root.Display(fx.f)
			if fx.root.State() != StateOff {
				t.Errorf("state = %v, want Off", fx.root.State())
			}
			if fx.root.OSD.IsActive() || fx.root.Warp.IsActive() || fx.root.Action.IsActive() {
				t.Error("a sub-menu is still active")
			}
		})
	}
}

func TestEnableIsIdempotent(t *testing.T) {
	fx := newFixture(t)
	fx.enter(1)
	fx.press(button.DpadDown)
	fx.press(button.A)
	fx.press(button.DpadDown)

	before := *fx.root.Warp
	fx.root.Warp.Enable(fx.f)
	fx.root.Warp.Enable(fx.f)
	if *fx.root.Warp != before {
		t.Error("Enable changed an active warp menu")
	}

	// Holding the chord while open must not reset the main menu.
	fx.frame(config.Practice.Chord, 0)
	if fx.root.State() != StateWarp {
		t.Errorf("state = %v, want WarpMenu", fx.root.State())
	}

	d := NewDisplayMenu()
	d.Enable(fx.f)
	d.cursor = 2
	d.Enable(fx.f)
	if !d.IsActive() || d.cursor != 2 {
		t.Error("Enable changed an active display menu")
	}
}

func TestGuide(t *testing.T) {
	fx := newFixture(t)
	fx.frame(0, 0)
	if len(fx.rec.Ops) != 0 {
		t.Fatalf("closed menu drew %d ops", len(fx.rec.Ops))
	}

	fx.open()
	dim := fx.rec.Ops[0]
	if dim.Kind != gfx.OpRect || dim.W != gfx.ScreenWidth || dim.H != gfx.ScreenHeight || dim.Color != config.Overlay.DimColor {
		t.Errorf("first op = %+v, want full screen dim", dim)
	}
	for _, s := range []string{"Select", "Back", "Up/Down", "Change Value", "Main Menu Select", "Warp"} {
		if !fx.rec.HasText(s) {
			t.Errorf("missing %q", s)
		}
	}
}

func TestDisplayMenuToggles(t *testing.T) {
	fx := newFixture(t)
	fx.enter(0)

	fx.press(button.A)
	if !fx.root.OSD.Enabled(liveinfo.PanelSceneFlags) {
		t.Error("A did not enable scene flags")
	}
	if fx.pad.IsPressed(button.A) {
		t.Error("A not suppressed")
	}
	if op, ok := fx.rec.Find("On"); !ok || op.Color != config.Overlay.ValueColor {
		t.Error("toggle value not drawn")
	}

	fx.press(button.DpadDown)
	fx.press(button.DpadDown)
	fx.press(button.A)
	if !fx.root.OSD.Enabled(liveinfo.PanelInputViewer) {
		t.Error("A did not enable the input viewer")
	}
	fx.press(button.A)
	if fx.root.OSD.Enabled(liveinfo.PanelInputViewer) {
		t.Error("second A did not disable the input viewer")
	}
	if fx.root.State() != StateDisplay {
		t.Errorf("toggling left state %v", fx.root.State())
	}
}

func TestWarp(t *testing.T) {
	fx := newFixture(t)
	fx.enter(1)

	fx.press(button.DpadDown) // Faron Woods
	fx.press(button.A)
	if !fx.rec.HasText("Faron Woods") {
		t.Fatal("details heading not drawn")
	}

	fx.press(button.DpadRight) // one room, stays 0
	fx.press(button.DpadDown)
	fx.press(button.DpadRight)
	fx.press(button.DpadRight) // layer 2
	fx.press(button.DpadDown)
	fx.press(button.DpadLeft) // entrance wraps to 2
	fx.press(button.DpadDown)
	fx.press(button.DpadRight) // night on
	fx.press(button.DpadDown)

	if len(fx.entrances) != 0 {
		t.Fatal("warped before A")
	}
	fx.press(button.A)

	want := game.Entrance{
		Stage: "F100", Room: 0, Layer: 2, Entrance: 2, ForcedNight: true,
		Transition: game.TransitionFade, FadeFrames: config.Practice.WarpFadeFrames,
	}
	if len(fx.entrances) != 1 || fx.entrances[0] != want {
		t.Fatalf("entrances = %+v, want [%+v]", fx.entrances, want)
	}
	if fx.root.State() != StateOff || fx.root.Warp.IsActive() {
		t.Errorf("overlay still open after warp, state %v", fx.root.State())
	}
}

func TestWarpBackSteps(t *testing.T) {
	fx := newFixture(t)
	fx.enter(1)
	fx.press(button.A)

	fx.press(button.B)
	if fx.root.State() != StateWarp || !fx.rec.HasText("Warp Menu") {
		t.Fatal("B in details did not return to stage select")
	}
	fx.press(button.B)
	if fx.root.State() != StateMenuSelect {
		t.Errorf("B in stage select left state %v", fx.root.State())
	}
}

func TestStepWraps(t *testing.T) {
	tests := []struct {
		v     uint8
		delta int
		limit uint8
		want  uint8
	}{
		{0, -1, 4, 3},
		{3, 1, 4, 0},
		{1, 1, 4, 2},
		{0, 1, 1, 0},
		{5, 1, 0, 0},
	}
	for _, tt := range tests {
		if got := step(tt.v, tt.delta, tt.limit); got != tt.want {
			t.Errorf("step(%d, %d, %d) = %d, want %d", tt.v, tt.delta, tt.limit, got, tt.want)
		}
	}
}

func TestActions(t *testing.T) {
	fx := newFixture(t)
	start := game.Vec3f{X: 100, Y: 0, Z: -50}
	fx.player.SetPosition(start)
	fx.player.SetAngle(game.Vec3s{Y: 0x4000})

	fx.enter(2)
	fx.press(button.A) // Save Position
	if fx.root.State() != StateOff {
		t.Fatalf("state after action = %v, want Off", fx.root.State())
	}
	if !fx.root.Action.HasSave() {
		t.Fatal("position not saved")
	}

	fx.player.SetPosition(game.Vec3f{X: 1, Y: 2, Z: 3})
	fx.player.SetAngle(game.Vec3s{})
	fx.player.SetStamina(10)

	fx.enter(2)
	fx.press(button.DpadDown)
	fx.press(button.A) // Load Position
	if pos, _ := fx.player.Position(); pos != start {
		t.Errorf("position = %v, want %v", pos, start)
	}
	if angle, _ := fx.player.Angle(); angle.Y != 0x4000 {
		t.Errorf("angle = %v", angle)
	}

	fx.enter(2)
	fx.press(button.DpadDown) // cursor kept from last time, now Refill Stamina
	fx.press(button.A)
	if s, _ := fx.player.Stamina(); s != game.StaminaFull {
		t.Errorf("stamina = %d, want %d", s, game.StaminaFull)
	}
}

func TestLoadWithoutSave(t *testing.T) {
	fx := newFixture(t)
	pos := game.Vec3f{X: 7, Y: 8, Z: 9}
	fx.player.SetPosition(pos)

	fx.enter(2)
	fx.press(button.DpadDown)
	fx.press(button.A)

	if got, _ := fx.player.Position(); got != pos {
		t.Errorf("position moved to %v", got)
	}
	if fx.root.IsActive() {
		t.Error("overlay still open")
	}
}

func TestNewListOverflowLogged(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)
	defer delete(overflowed, "Overflow Test")

	rows := []row{{label: "One"}, {"Two", "2"}, {label: "Three"}}
	tests := []struct {
		name     string
		capacity int
		wantLen  int
		wantLogs int
	}{
		{"fits", 3, 3, 0},
		{"too small", 2, 2, 1},
		{"too small again", 1, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := newList("Overflow Test", tt.capacity, 0, rows...)
			if list.Len() != tt.wantLen {
				t.Errorf("Len = %d, want %d", list.Len(), tt.wantLen)
			}
			if n := strings.Count(buf.String(), "Warning:"); n != tt.wantLogs {
				t.Errorf("warnings = %d, want %d: %q", n, tt.wantLogs, buf.String())
			}
		})
	}
	if !strings.Contains(buf.String(), "Overflow Test") {
		t.Errorf("warning does not name the list: %q", buf.String())
	}
}
