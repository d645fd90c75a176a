// Package sandbox is a small stand-in for the host game. All of its state
// that the overlay can see lives in a big-endian arena laid out like the
// real host, and its routines are reached only through a call table.
package sandbox

import (
	"fmt"
	"log"
	"math"

	"github.com/automoto/ss-practice/button"
	"github.com/automoto/ss-practice/config"
	"github.com/automoto/ss-practice/game"
	"github.com/automoto/ss-practice/hostcall"
	"github.com/automoto/ss-practice/hostmem"
	"github.com/automoto/ss-practice/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// collisionCell is the size of a resolv space cell.
const collisionCell = 16

// actorVtable marks sandbox actor records.
const actorVtable uint32 = 0x80500000

type actor struct {
	spec ActorSpec
	addr hostmem.Addr
	obj  *resolv.Object
}

// Sandbox is the stand-in host.
type Sandbox struct {
	Mem   *hostmem.Arena
	Calls *hostcall.Table
	// Host is the sandbox's own typed view of its memory
	Host *game.Host

	stages     map[string]*StageMap
	stage      *StageMap
	sceneFlags map[string][]uint16
	actorPool  []hostmem.Addr

	space  *resolv.Space
	player *resolv.Object
	actors []*actor

	fade        *gween.Tween
	fadeSeconds float32
	fadeAlpha   float32
	whiteFade   bool
	pending     *game.Entrance
}

// New lays out host memory for sym, loads the stage maps and enters the
// first stage.
func New(sym game.Symbols) (*Sandbox, error) {
	cfg := config.Sandbox
	mem := hostmem.NewArena(hostmem.Addr(cfg.ArenaBase), cfg.ArenaSize)
	s := &Sandbox{
		Mem:        mem,
		Calls:      hostcall.NewTable(),
		sceneFlags: map[string][]uint16{},
	}
	s.Host = game.NewHost(mem, s.Calls, sym)

	h := &heap{next: hostmem.Addr(cfg.HeapStart), end: hostmem.Addr(cfg.ArenaBase + cfg.ArenaSize)}
	records := []struct {
		name   string
		layout *hostmem.Layout
		slot   hostmem.Pointer
	}{
		{"player", game.PlayerLayout, sym.LinkPtr},
		{"pad", button.PadLayout, sym.PadPtr},
		{"sceneflags", game.SceneflagLayout, sym.SceneflagManager},
	}
	for _, r := range records {
		at, err := h.alloc(r.name, r.layout.Size)
		if err != nil {
			return nil, err
		}
		if !hostmem.WriteU32(mem, hostmem.Addr(r.slot), uint32(at)) {
			return nil, fmt.Errorf("%s pointer slot %#x outside the arena", r.name, uint32(r.slot))
		}
	}
	for i := 0; i < game.MaxActors; i++ {
		at, err := h.alloc("actor", game.ActorLayout.Size)
		if err != nil {
			return nil, err
		}
		s.actorPool = append(s.actorPool, at)
	}

	stages, err := LoadStages(stagesFS, "stages")
	if err != nil {
		return nil, err
	}
	s.stages = stages

	s.registerRoutines()
	s.Host.Player().SetStamina(game.StaminaFull)
	s.enter(game.Entrance{Stage: game.Stages[0].Code})
	return s, nil
}

// Pad is the controller record the sandbox reads every step.
func (s *Sandbox) Pad() *button.Pad {
	return s.Host.Pad()
}

// Stage is the loaded stage map.
func (s *Sandbox) Stage() *StageMap {
	return s.stage
}

// Location reads the current location back from host memory.
func (s *Sandbox) Location() game.Location {
	loc, _ := s.Host.StageInfo().Location()
	return loc
}

// Fading reports whether a warp transition is running.
func (s *Sandbox) Fading() bool {
	return s.fade != nil
}

// enter loads a stage. Scene flags are kept per stage; temp and zone flags
// do not survive a load.
func (s *Sandbox) enter(e game.Entrance) {
	flags := s.Host.Flags()
	if s.stage != nil {
		s.sceneFlags[s.stage.Code] = flags.Words(game.BankScene)
	}

	stage := s.stages[e.Stage]
	s.stage = stage
	s.Host.StageInfo().SetLocation(game.Location{
		Stage:    e.Stage,
		Room:     e.Room,
		Layer:    e.Layer,
		Entrance: e.Entrance,
		Night:    e.ForcedNight,
	})

	flags.Clear(game.BankScene)
	flags.SetWords(game.BankScene, s.sceneFlags[e.Stage])
	flags.Clear(game.BankTemp)
	flags.Clear(game.BankZone)

	s.space = resolv.NewSpace(int(stage.Width), int(stage.Height), collisionCell, collisionCell)
	for _, w := range stage.Walls {
		obj := resolv.NewObject(w.X, w.Y, w.W, w.H, tags.ResolvSolid)
		obj.SetShape(resolv.NewRectangle(0, 0, w.W, w.H))
		s.space.Add(obj)
	}

	s.actors = s.actors[:0]
	var addrs []hostmem.Addr
	for i, spec := range stage.ActorsIn(e.Room, e.Layer) {
		if i >= len(s.actorPool) {
			log.Printf("Warning: sandbox: %s has more than %d actors", stage.Code, game.MaxActors)
			break
		}
		a := &actor{spec: spec, addr: s.actorPool[i]}
		a.obj = resolv.NewObject(spec.Box.X, spec.Box.Y, spec.Box.W, spec.Box.H, tags.ResolvActor)
		a.obj.Data = a
		s.space.Add(a.obj)

		rec := game.ActorAt(s.Mem, a.addr)
		rec.SetVtable(actorVtable)
		rec.SetPosition(game.Vec3f{
			X: float32(spec.Box.X + spec.Box.W/2),
			Z: float32(spec.Box.Y + spec.Box.H/2),
		})
		s.actors = append(s.actors, a)
		addrs = append(addrs, a.addr)
	}
	s.Host.Actors().Set(addrs)

	size := config.Sandbox.PlayerSize
	x, y := stage.Spawn(e.Room, e.Entrance)
	s.player = resolv.NewObject(x-size/2, y-size/2, size, size, tags.ResolvPlayer)
	s.player.SetShape(resolv.NewRectangle(0, 0, size, size))
	s.space.Add(s.player)
	s.Host.Player().SetPosition(game.Vec3f{X: float32(x), Z: float32(y)})

	s.whiteFade = e.Transition == game.TransitionWhite
}

// Step advances the sandbox by one frame of dt seconds.
func (s *Sandbox) Step(dt float32) {
	if s.fade != nil {
		s.stepFade(dt)
		return
	}
	s.movePlayer()
	s.touchActors()
}

func (s *Sandbox) stepFade(dt float32) {
	alpha, done := s.fade.Update(dt)
	s.fadeAlpha = alpha
	if !done {
		return
	}
	if s.pending != nil {
		s.enter(*s.pending)
		s.pending = nil
		s.fade = gween.New(1, 0, s.fadeSeconds, ease.Linear)
		return
	}
	s.fade = nil
	s.fadeAlpha = 0
}

func (s *Sandbox) movePlayer() {
	cfg := config.Sandbox
	p := s.Host.Player()
	pos, ok := p.Position()
	if !ok {
		return
	}

	// The overlay may have moved the player since the last step.
	half := s.player.W / 2
	s.player.X = float64(pos.X) - half
	s.player.Y = float64(pos.Z) - half
	s.player.Update()

	pad := s.Pad()
	sx, sy := pad.Stick()
	moving := sx != 0 || sy != 0

	stamina, _ := p.Stamina()
	speed := cfg.WalkSpeed
	if moving && pad.IsDown(button.Z) && stamina > 0 {
		speed = cfg.SprintSpeed
		stamina -= min(stamina, cfg.StaminaDrain)
	} else {
		stamina = min(game.StaminaFull, stamina+cfg.StaminaRegen)
	}
	p.SetStamina(stamina)

	if !moving {
		return
	}

	dx := s.sweep(float64(sx)*speed, 0)
	s.player.X += dx
	s.player.Update()
	dy := s.sweep(0, float64(sy)*speed)
	s.player.Y += dy
	s.player.Update()

	p.SetPosition(game.Vec3f{
		X: float32(s.player.X + half),
		Y: pos.Y,
		Z: float32(s.player.Y + half),
	})
	angle := math.Atan2(float64(sx), float64(sy)) * 0x8000 / math.Pi
	p.SetAngle(game.Vec3s{Y: int16(int32(angle))})
}

// sweep shortens a move along one axis so the player stops against walls it
// is not already inside.
func (s *Sandbox) sweep(dx, dy float64) float64 {
	check := s.player.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		return dx + dy
	}
	obj := s.player
	for _, w := range check.ObjectsByTags(tags.ResolvSolid) {
		switch {
		case dx > 0 && overlapsY(obj, w) && w.X >= obj.X+obj.W:
			dx = min(dx, w.X-(obj.X+obj.W))
		case dx < 0 && overlapsY(obj, w) && w.X+w.W <= obj.X:
			dx = max(dx, w.X+w.W-obj.X)
		case dy > 0 && overlapsX(obj, w) && w.Y >= obj.Y+obj.H:
			dy = min(dy, w.Y-(obj.Y+obj.H))
		case dy < 0 && overlapsX(obj, w) && w.Y+w.H <= obj.Y:
			dy = max(dy, w.Y+w.H-obj.Y)
		}
	}
	return dx + dy
}

func overlapsX(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W
}

func overlapsY(a, b *resolv.Object) bool {
	return a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

// touchActors sets the scene flag of every actor the player overlaps.
func (s *Sandbox) touchActors() {
	check := s.player.Check(0, 0, tags.ResolvActor)
	if check == nil {
		return
	}
	flags := s.Host.Flags()
	for _, o := range check.ObjectsByTags(tags.ResolvActor) {
		if !overlapsX(s.player, o) || !overlapsY(s.player, o) {
			continue
		}
		if a, ok := o.Data.(*actor); ok {
			flags.SetFlag(game.BankScene, a.spec.Flag, true)
		}
	}
}
