package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePractice hands the frame's controller record to the overlay.
// Must run after UpdateInput and before UpdateHost.
func UpdatePractice(ecs *ecs.ECS) {
	host, ok := getHost(ecs)
	if !ok {
		return
	}
	host.Tool.Input()
}

// UpdateOverlay runs the overlay's display pass for this frame. The pass
// moves cursors and applies closes, so it belongs to every update; its draw
// calls are kept for DrawPractice. Must run after UpdateHost.
func UpdateOverlay(ecs *ecs.ECS) {
	host, ok := getHost(ecs)
	if !ok {
		return
	}
	host.Overlay.Reset()
	host.Tool.Display(host.Overlay)
}

// DrawPractice draws the last overlay frame over the finished stage image.
func DrawPractice(ecs *ecs.ECS, screen *ebiten.Image) {
	host, ok := getHost(ecs)
	if !ok {
		return
	}
	host.Overlay.Replay(NewScreen(screen))
}
