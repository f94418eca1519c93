package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/gamex/components"
	cfg "github.com/automoto/gamex/config"
	"github.com/automoto/gamex/fonts"
	"github.com/automoto/gamex/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if cfg.Debug.DrawColliders {
		drawColliders(ecs, screen)
	}
	if cfg.Debug.DrawState && fonts.Loaded(fonts.HUDSmall) {
		drawPlayerState(ecs, screen)
	}
}

func drawColliders(ecs *ecs.ECS, screen *ebiten.Image) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		// Determine color based on tags
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvSolid) {
			c = color.RGBA{100, 100, 100, 255} // Grey
		} else if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{0, 0, 255, 255} // Blue
		} else if obj.HasTags(tags.ResolvEnemy) {
			c = color.RGBA{255, 0, 0, 255} // Red
		} else if obj.HasTags(tags.ResolvPlayerProjectile) {
			c = color.RGBA{0, 255, 0, 255} // Green
		}

		vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
	}
}

func drawPlayerState(ecs *ecs.ECS, screen *ebiten.Image) {
	face := fonts.HUDSmall.Get()
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e).Object
		anim := components.Animation.Get(e)
		label := fmt.Sprintf("%s %s", PlayerState(e), anim.Current.Name)
		text.Draw(screen, label, face, int(obj.X)-8, int(obj.Y)-4, cfg.White)
	})
}
