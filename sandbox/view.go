package sandbox

import (
	"github.com/automoto/ss-practice/config"
	"github.com/automoto/ss-practice/game"
)

// ActorView is an actor as the renderer sees it.
type ActorView struct {
	Name   string
	Box    Rect
	Opened bool
}

// View is a snapshot of everything the sandbox draws.
type View struct {
	Location  game.Location
	StageName string
	Walls     []Rect
	Actors    []ActorView
	Player    Rect
	Stamina   uint32
	Fade      float32
	WhiteFade bool
}

// View reads the current frame's state. Positions come from host memory so
// changes made by the overlay show straight away.
func (s *Sandbox) View() View {
	v := View{
		Location:  s.Location(),
		StageName: s.stage.Name,
		Walls:     s.stage.Walls,
		Fade:      s.fadeAlpha,
		WhiteFade: s.whiteFade,
	}

	flags := s.Host.Flags()
	for _, a := range s.actors {
		v.Actors = append(v.Actors, ActorView{
			Name:   a.spec.Name,
			Box:    a.spec.Box,
			Opened: flags.Flag(game.BankScene, a.spec.Flag),
		})
	}

	p := s.Host.Player()
	size := config.Sandbox.PlayerSize
	if pos, ok := p.Position(); ok {
		v.Player = Rect{X: float64(pos.X) - size/2, Y: float64(pos.Z) - size/2, W: size, H: size}
	}
	v.Stamina, _ = p.Stamina()
	return v
}
