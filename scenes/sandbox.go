package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/ss-practice/config"
	"github.com/automoto/ss-practice/sandbox"
	"github.com/automoto/ss-practice/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SandboxScene runs the stand-in host with the overlay attached
type SandboxScene struct {
	ecs     *ecs.ECS
	sandbox *sandbox.Sandbox
	once    sync.Once
}

// NewSandboxScene creates a scene around an already laid out sandbox
func NewSandboxScene(sb *sandbox.Sandbox) *SandboxScene {
	return &SandboxScene{sandbox: sb}
}

func (s *SandboxScene) Update() {
	s.once.Do(s.configure)
	s.ecs.Update()
}

func (s *SandboxScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

func (s *SandboxScene) configure() {
	s.ecs = ecs.NewECS(donburi.NewWorld())

	systems.CreateHost(s.ecs, s.sandbox)

	// Order matches the host's frame: poll, overlay input, simulate, overlay display
	s.ecs.AddSystem(systems.UpdateInput)
	s.ecs.AddSystem(systems.UpdatePractice)
	s.ecs.AddSystem(systems.UpdateHost)
	s.ecs.AddSystem(systems.UpdateOverlay)
	s.ecs.AddSystem(systems.UpdateSettings)

	s.ecs.AddRenderer(cfg.Default, systems.DrawStage)
	s.ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	s.ecs.AddRenderer(cfg.OverlayLayer, systems.DrawPractice)
}
