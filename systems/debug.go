package systems

import (
	"image/color"

	"github.com/automoto/ss-practice/sandbox"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision box on screen.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.ShowWalls {
		return
	}
	host, ok := getHost(ecs)
	if !ok {
		return
	}
	v := host.Sandbox.View()

	for _, w := range v.Walls {
		outline(screen, w, color.RGBA{100, 100, 100, 255}) // Grey
	}
	for _, a := range v.Actors {
		outline(screen, a.Box, color.RGBA{255, 0, 0, 255}) // Red
	}
	outline(screen, v.Player, color.RGBA{0, 0, 255, 255}) // Blue
}

func outline(screen *ebiten.Image, b sandbox.Rect, c color.RGBA) {
	x, y, w, h := float32(b.X), float32(b.Y), float32(b.W), float32(b.H)
	vector.FillRect(screen, x, y, w, 1, c, false)
	vector.FillRect(screen, x, y+h-1, w, 1, c, false)
	vector.FillRect(screen, x, y, 1, h, c, false)
	vector.FillRect(screen, x+w-1, y, 1, h, c, false)
}
