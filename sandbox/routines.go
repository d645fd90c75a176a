package sandbox

import (
	"log"

	"github.com/automoto/ss-practice/config"
	"github.com/automoto/ss-practice/game"
	"github.com/automoto/ss-practice/hostcall"
	"github.com/automoto/ss-practice/hostmem"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

func (s *Sandbox) registerRoutines() {
	s.Calls.Register(s.Host.Symbols.CheckXZDistanceFromLink, "checkXZDistanceFromLink", s.checkXZDistanceFromLink)
	s.Calls.Register(s.Host.Symbols.TriggerEntrance, "triggerEntrance", s.triggerEntrance)
}

// checkXZDistanceFromLink(actor *dAcBase, distance f32) bool
func (s *Sandbox) checkXZDistanceFromLink(args *hostcall.Args) hostcall.Result {
	actor := game.ActorAt(s.Mem, hostmem.Addr(args.Int(0)))
	pos, ok := actor.Position()
	if !ok {
		return hostcall.BoolResult(false)
	}
	link, ok := s.Host.Player().Position()
	if !ok {
		return hostcall.BoolResult(false)
	}
	return hostcall.BoolResult(pos.DistXZ(link) <= float32(args.Float(0)))
}

// triggerEntrance(stage *char, room, layer, entrance u8, forced_night, forced_trial bool, transition, fade_frames u8)
func (s *Sandbox) triggerEntrance(args *hostcall.Args) hostcall.Result {
	e, ok := game.DecodeEntrance(s.Mem, args)
	if !ok {
		log.Printf("Warning: sandbox: triggerEntrance with unreadable stage name")
		return hostcall.Result{}
	}
	if _, ok := s.stages[e.Stage]; !ok {
		log.Printf("Warning: sandbox: triggerEntrance to unknown stage %q", e.Stage)
		return hostcall.Result{}
	}
	// One transition at a time, fade in included.
	if s.Fading() {
		return hostcall.Result{}
	}

	s.pending = &e
	s.fadeSeconds = config.Sandbox.FadeSeconds
	if e.FadeFrames > 0 {
		s.fadeSeconds = float32(e.FadeFrames) / 60
	}
	s.fade = gween.New(0, 1, s.fadeSeconds, ease.Linear)
	return hostcall.Result{}
}
