package scenes

import (
	"fmt"
	"image/color"
	"io/fs"
	"log"
	"sync"

	"github.com/automoto/gamex/assets"
	"github.com/automoto/gamex/components"
	cfg "github.com/automoto/gamex/config"
	"github.com/automoto/gamex/systems"
	"github.com/automoto/gamex/systems/factory"
	"github.com/automoto/gamex/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	tuning       <-chan []byte
	once         sync.Once
}

// NewPlatformerScene creates a scene running the configured level. Tuning
// files received on tuning are applied between frames; tuning may be nil.
func NewPlatformerScene(sc SceneChanger, tuning <-chan []byte) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, tuning: tuning}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.applyTuning()
	ps.ecs.Update()

	input := components.Input.Get(components.Input.MustFirst(ps.ecs.World))
	if input.Action(cfg.ActionToggleDebug).JustPressed {
		cfg.Debug.DrawColliders = !cfg.Debug.DrawColliders
		cfg.Debug.DrawState = !cfg.Debug.DrawState
	}

	// Restart on request, or once the player has been destroyed
	if input.Action(cfg.ActionRestart).JustPressed || ps.playerCount() == 0 {
		ps.sceneChanger.ChangeScene(NewPlatformerScene(ps.sceneChanger, ps.tuning))
	}
}

// applyTuning drains pending hot reloads without blocking.
func (ps *PlatformerScene) applyTuning() {
	if ps.tuning == nil {
		return
	}
	for {
		select {
		case data, ok := <-ps.tuning:
			if !ok {
				ps.tuning = nil
				return
			}
			t, err := cfg.ParseTuning(data)
			if err != nil {
				log.Printf("[tuning] keeping previous values: %v", err)
				continue
			}
			t.Apply()
			log.Printf("[tuning] applied")
		default:
			return
		}
	}
}

func (ps *PlatformerScene) playerCount() int {
	count := 0
	tags.Player.Each(ps.ecs.World, func(entry *donburi.Entry) {
		count++
	})
	return count
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	world, err := NewWorld(assets.Levels(), cfg.C.LevelPath, 1/float64(cfg.C.TPS))
	if err != nil {
		log.Fatalf("[level] %v", err)
	}
	ps.ecs = world
}

// NewWorld builds the ECS for a level: singletons, systems in frame order,
// renderers and every entity the level describes.
func NewWorld(fsys fs.FS, levelPath string, delta float64) (*ecs.ECS, error) {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateTimers)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateProjectiles)
	ecs.AddSystem(systems.UpdateEnemies)
	ecs.AddSystem(systems.UpdateFloatingPlatforms)
	ecs.AddSystem(systems.UpdateAnimations)

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawActors)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	factory.CreateTimers(ecs, delta)
	factory.CreateInput(ecs)
	factory.CreateCollaborators(ecs, systems.NewSpaceMover(), systems.SpaceBroadphase{})

	if _, err := factory.CreateLevel(ecs, fsys, levelPath); err != nil {
		return nil, fmt.Errorf("failed to build world: %w", err)
	}
	return ecs, nil
}
