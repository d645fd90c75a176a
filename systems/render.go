package systems

import (
	"fmt"

	cfg "github.com/automoto/ss-practice/config"
	"github.com/automoto/ss-practice/game"
	"github.com/automoto/ss-practice/gfx"
	"github.com/automoto/ss-practice/sandbox"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 8
	hudMargin    = 10
	hudTextSize  = 0.4
)

// DrawStage renders the sandbox's own frame. Stage space maps one to one onto
// the screen.
func DrawStage(ecs *ecs.ECS, screen *ebiten.Image) {
	host, ok := getHost(ecs)
	if !ok {
		return
	}
	v := host.Sandbox.View()
	sb := cfg.Sandbox

	screen.Fill(sb.SkyColor.RGBA())
	for _, w := range v.Walls {
		fillRect(screen, w, sb.WallColor)
	}
	for _, a := range v.Actors {
		c := sb.ActorColor
		if a.Opened {
			c = sb.OpenedColor
		}
		fillRect(screen, a.Box, c)
	}
	fillRect(screen, v.Player, sb.PlayerColor)

	drawHUD(NewScreen(screen), v)

	if v.Fade > 0 {
		c := cfg.Black
		if v.WhiteFade {
			c = cfg.White
		}
		alpha := gfx.Color(float32(0xFF) * min(v.Fade, 1))
		c = c&^0xFF | alpha
		vector.FillRect(screen, 0, 0, float32(gfx.ScreenWidth), float32(gfx.ScreenHeight), c.RGBA(), false)
	}
}

// drawHUD prints the location along the bottom right and the stamina gauge
// above it.
func drawHUD(r gfx.Renderer, v sandbox.View) {
	c := cfg.Sandbox.HUDColor
	line := r.LineHeight(hudTextSize)
	x := float32(gfx.ScreenWidth - hudBarWidth - hudMargin)
	y := float32(gfx.ScreenHeight-hudMargin) - 2*line - hudBarHeight - 4

	ratio := float32(v.Stamina) / float32(game.StaminaFull)
	r.FillRect(x, y, hudBarWidth, hudBarHeight, 0x282828FF)
	r.FillRect(x, y, hudBarWidth*min(ratio, 1), hudBarHeight, cfg.Sandbox.PlayerColor)
	y += hudBarHeight + 4

	loc := v.Location
	r.DrawText(fmt.Sprintf("%s (%s)", v.StageName, loc.Stage), x, y, hudTextSize, c)
	y += line
	r.DrawText(fmt.Sprintf("R%d L%d E%d", loc.Room, loc.Layer, loc.Entrance), x, y, hudTextSize, c)
}

func fillRect(screen *ebiten.Image, b sandbox.Rect, c gfx.Color) {
	vector.FillRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), c.RGBA(), false)
}
