package sandbox

import (
	"testing"

	"github.com/automoto/ss-practice/button"
	"github.com/automoto/ss-practice/config"
	"github.com/automoto/ss-practice/game"
	"github.com/automoto/ss-practice/hostmem"
)

const frame = float32(1.0 / 60)

func newSandbox(t *testing.T) *Sandbox {
	t.Helper()
	sym, err := config.Lookup("rev0")
	if err != nil {
		t.Fatal(err)
	}
	s, err := New(sym)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func hold(s *Sandbox, down button.Buttons, sx, sy float32) {
	s.Pad().Store(button.State{Down: down, StickX: sx, StickY: sy})
}

func TestLoadStages(t *testing.T) {
	stages, err := LoadStages(stagesFS, "stages")
	if err != nil {
		t.Fatal(err)
	}
	for _, st := range game.Stages {
		m, ok := stages[st.Code]
		if !ok {
			t.Errorf("no map for %s", st.Code)
			continue
		}
		if m.Name != st.Name {
			t.Errorf("%s name = %q, want %q", st.Code, m.Name, st.Name)
		}
		if m.Width != 640 || m.Height != 480 || len(m.Walls) < 4 {
			t.Errorf("%s: %vx%v with %d walls", st.Code, m.Width, m.Height, len(m.Walls))
		}
	}

	eldin := stages["F200"]
	if got := len(eldin.ActorsIn(1, 0)); got != 1 {
		t.Errorf("Eldin room 1 layer 0 actors = %d, want 1", got)
	}
	if got := len(eldin.ActorsIn(1, 1)); got != 2 {
		t.Errorf("Eldin room 1 layer 1 actors = %d, want 2", got)
	}
	if x, y := eldin.Spawn(1, 0); x != 320 || y != 60 {
		t.Errorf("Eldin room 1 fallback spawn = %v,%v", x, y)
	}
}

func TestNewLaysOutHost(t *testing.T) {
	s := newSandbox(t)
	h := s.Host

	if !h.Player().Present() || !h.Flags().Present() || h.Pad().Handle().Base() == 0 {
		t.Fatal("records not reachable through pointer slots")
	}
	if base := h.Player().Addr(); base < hostmem.Addr(config.Sandbox.HeapStart) {
		t.Errorf("player at %#x, below the heap", uint32(base))
	}
	if st, _ := h.Player().Stamina(); st != game.StaminaFull {
		t.Errorf("stamina = %d", st)
	}

	loc := s.Location()
	if loc.Stage != "F000" || loc.Room != 0 {
		t.Errorf("location = %+v", loc)
	}
	// Skyloft layer 0 has the chest and the goddess cube.
	if n := h.Actors().Len(); n != 2 {
		t.Errorf("actors = %d, want 2", n)
	}
	if v, _ := h.Actors().At(0).Vtable(); v != actorVtable {
		t.Errorf("actor vtable = %#x", v)
	}
	if pos, _ := h.Player().Position(); pos.X != 320 || pos.Z != 240 {
		t.Errorf("spawn = %v", pos)
	}
}

func TestWalkStopsAtWall(t *testing.T) {
	s := newSandbox(t)

	// Skyloft has a wall spanning y 120..144 above the spawn.
	hold(s, 0, 0, -1)
	for i := 0; i < 100; i++ {
		s.Step(frame)
	}
	pos, _ := s.Host.Player().Position()
	if pos.Z != 144+float32(config.Sandbox.PlayerSize/2) {
		t.Errorf("z = %v, want flush against the wall", pos.Z)
	}
	if pos.X != 320 {
		t.Errorf("x drifted to %v", pos.X)
	}
	if a, _ := s.Host.Player().Angle(); a.Y != -0x8000 {
		t.Errorf("facing = %#x, want -0x8000", a.Y)
	}
}

func TestSprintUsesStamina(t *testing.T) {
	s := newSandbox(t)
	p := s.Host.Player()

	hold(s, button.Z, 1, 0)
	s.Step(frame)
	pos, _ := p.Position()
	if pos.X != 320+float32(config.Sandbox.SprintSpeed) {
		t.Errorf("x = %v after one sprint step", pos.X)
	}
	if st, _ := p.Stamina(); st != game.StaminaFull-config.Sandbox.StaminaDrain {
		t.Errorf("stamina = %d", st)
	}

	p.SetStamina(0)
	s.Step(frame)
	pos2, _ := p.Position()
	if pos2.X-pos.X != float32(config.Sandbox.WalkSpeed) {
		t.Errorf("moved %v with no stamina, want walk speed", pos2.X-pos.X)
	}

	hold(s, 0, 0, 0)
	s.Step(frame)
	if st, _ := p.Stamina(); st != 2*config.Sandbox.StaminaRegen {
		t.Errorf("stamina = %d after regen", st)
	}
}

func TestTouchingActorSetsFlag(t *testing.T) {
	s := newSandbox(t)
	flags := s.Host.Flags()

	// Goddess cube, flag 1, centred at 120,300.
	s.Host.Player().SetPosition(game.Vec3f{X: 120, Z: 300})
	hold(s, 0, 0, 0)
	s.Step(frame)

	if !flags.Flag(game.BankScene, 1) {
		t.Error("flag 1 not set")
	}
	if flags.Flag(game.BankScene, 0) {
		t.Error("flag 0 set without touching the chest")
	}
	v := s.View()
	opened := 0
	for _, a := range v.Actors {
		if a.Opened {
			opened++
		}
	}
	if opened != 1 {
		t.Errorf("opened actors in view = %d", opened)
	}
}

func TestCheckXZDistanceFromLink(t *testing.T) {
	s := newSandbox(t)
	chest := s.Host.Actors().At(0)
	pos, _ := chest.Position()
	s.Host.Player().SetPosition(game.Vec3f{X: pos.X + 30, Y: 500, Z: pos.Z + 40})

	if !s.Host.CheckXZDistanceFromLink(chest.Addr(), 50) {
		t.Error("actor 50 away not within 50")
	}
	if s.Host.CheckXZDistanceFromLink(chest.Addr(), 49) {
		t.Error("actor 50 away within 49")
	}
	if s.Host.CheckXZDistanceFromLink(0, 1000) {
		t.Error("null actor reported near")
	}
}

func TestTriggerEntrance(t *testing.T) {
	s := newSandbox(t)
	flags := s.Host.Flags()
	flags.SetFlag(game.BankScene, 5, true)
	flags.SetFlag(game.BankTemp, 2, true)

	s.Host.TriggerEntrance(game.Entrance{Stage: "F200", Room: 1, Layer: 1, Entrance: 1, FadeFrames: 6})
	if !s.Fading() {
		t.Fatal("no transition started")
	}
	// Still in Skyloft until the fade out finishes.
	s.Step(frame)
	if s.Location().Stage != "F000" {
		t.Fatal("stage changed before the fade out")
	}

	for i := 0; i < 30 && s.Fading(); i++ {
		s.Step(frame)
	}
	if s.Fading() {
		t.Fatal("transition never finished")
	}

	loc := s.Location()
	want := game.Location{Stage: "F200", Room: 1, Layer: 1, Entrance: 1}
	if loc != want {
		t.Errorf("location = %+v, want %+v", loc, want)
	}
	if flags.Flag(game.BankScene, 5) || flags.Flag(game.BankTemp, 2) {
		t.Error("flags carried into the new stage")
	}
	if n := s.Host.Actors().Len(); n != 2 {
		t.Errorf("actors = %d, want 2", n)
	}
	if pos, _ := s.Host.Player().Position(); pos.X != 320 || pos.Z != 60 {
		t.Errorf("spawn = %v", pos)
	}

	// Going back restores Skyloft's scene flags.
	s.Host.TriggerEntrance(game.Entrance{Stage: "F000", FadeFrames: 6})
	for i := 0; i < 30 && s.Fading(); i++ {
		s.Step(frame)
	}
	if !flags.Flag(game.BankScene, 5) {
		t.Error("Skyloft scene flags lost")
	}
	if flags.Flag(game.BankTemp, 2) {
		t.Error("temp flags survived two loads")
	}
}

func TestTriggerEntranceDuringFadeIgnored(t *testing.T) {
	tests := []struct {
		name  string
		until func(s *Sandbox) bool
	}{
		{"fade out", func(s *Sandbox) bool { return true }},
		{"fade in", func(s *Sandbox) bool { return s.Location().Stage == "F200" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSandbox(t)
			s.Host.TriggerEntrance(game.Entrance{Stage: "F200", FadeFrames: 6})
			for i := 0; i < 30 && !tt.until(s); i++ {
				s.Step(frame)
			}
			if !s.Fading() {
				t.Fatal("transition already over")
			}

			s.Host.TriggerEntrance(game.Entrance{Stage: "F300", FadeFrames: 6})
			for i := 0; i < 60 && s.Fading(); i++ {
				s.Step(frame)
			}
			if s.Fading() {
				t.Fatal("transition never finished")
			}
			if got := s.Location().Stage; got != "F200" {
				t.Errorf("stage = %s, want F200", got)
			}
		})
	}
}

func TestTriggerEntranceUnknownStage(t *testing.T) {
	s := newSandbox(t)
	s.Host.TriggerEntrance(game.Entrance{Stage: "D999"})
	if s.Fading() {
		t.Error("transition started for an unknown stage")
	}
}
