package systems

import (
	"testing"

	"github.com/automoto/ss-practice/button"
	"github.com/automoto/ss-practice/config"
	"github.com/automoto/ss-practice/fonts"
	"github.com/automoto/ss-practice/menus"
	"github.com/automoto/ss-practice/sandbox"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newHostECS(t *testing.T) (*ecs.ECS, *sandbox.Sandbox) {
	t.Helper()
	if err := fonts.LoadDefaults(); err != nil {
		t.Fatal(err)
	}
	sym, err := config.Lookup("rev0")
	if err != nil {
		t.Fatal(err)
	}
	sb, err := sandbox.New(sym)
	if err != nil {
		t.Fatal(err)
	}
	e := ecs.NewECS(donburi.NewWorld())
	CreateHost(e, sb)
	return e, sb
}

func TestOverlayAdvancesEveryUpdate(t *testing.T) {
	e, sb := newHostECS(t)
	host, _ := getHost(e)

	// Several updates with no draw in between, as ebiten does when it
	// catches up.
	frames := []button.Buttons{
		config.Practice.Chord,
		0,
		button.DpadDown,
		0,
		button.DpadDown,
	}
	var prev button.Buttons
	for _, down := range frames {
		sb.Pad().Store(button.Next(prev, down, 0, 0))
		prev = down
		UpdatePractice(e)
		UpdateOverlay(e)
	}

	m := host.Tool.Menu()
	if m.State() != menus.StateMenuSelect {
		t.Fatalf("state = %v, want MenuSelect", m.State())
	}
	if m.Cursor() != 2 {
		t.Errorf("cursor = %d, want 2", m.Cursor())
	}
	if !host.Overlay.HasText("Actions") {
		t.Errorf("overlay frame = %v", host.Overlay.Texts())
	}
}

func TestOverlayCloseAppliedWithoutDraw(t *testing.T) {
	e, sb := newHostECS(t)
	host, _ := getHost(e)

	sb.Pad().Store(button.Next(0, config.Practice.Chord, 0, 0))
	UpdatePractice(e)
	UpdateOverlay(e)

	host.Tool.Menu().Disable(&menus.Frame{Pad: sb.Pad(), Host: sb.Host, Root: host.Tool.Menu()})
	sb.Pad().Store(button.Next(config.Practice.Chord, 0, 0, 0))
	UpdatePractice(e)
	UpdateOverlay(e)

	if host.Tool.Active() {
		t.Error("menu still open after its display pass")
	}
}
