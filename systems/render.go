package systems

import (
	"image/color"

	"github.com/automoto/gamex/components"
	cfg "github.com/automoto/gamex/config"
	"github.com/automoto/gamex/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// facingMarker is the size of the notch drawn on the side an actor faces.
const facingMarker = 3

// DrawLevel clears the screen and draws solid geometry.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Background)

	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		fillObject(screen, components.Object.Get(e).Object, cfg.SolidColor)
	})
	tags.FloatingPlatform.Each(ecs.World, func(e *donburi.Entry) {
		fillObject(screen, components.Object.Get(e).Object, cfg.SolidColor)
	})
}

// DrawActors draws enemies, projectiles and players as filled boxes. A
// blinking player swaps to its blink color on the highlighted ticks.
func DrawActors(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		fillObject(screen, components.Object.Get(e).Object, cfg.EnemyColor)
	})

	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		c := projectileColor(p.Tier)
		if p.Phase == components.ProjectileHit {
			c.A = 128
		}
		fillObject(screen, components.Object.Get(e).Object, c)
	})

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e).Object
		c := cfg.PlayerColor
		if blink := components.Blink.Get(e); blink.On {
			c = blink.Color
		}
		fillObject(screen, obj, c)

		x := obj.X + obj.W - facingMarker
		if !components.Movement.Get(e).FacingRight {
			x = obj.X
		}
		vector.FillRect(screen, float32(x), float32(obj.Y+obj.H/4), facingMarker, facingMarker, cfg.White, false)
	})
}

func projectileColor(tier components.ChargeTier) color.RGBA {
	switch tier {
	case components.ChargeHalf:
		return cfg.ChargeBlue
	case components.ChargeFull:
		return cfg.White
	}
	return cfg.ShotColor
}

func fillObject(screen *ebiten.Image, obj *resolv.Object, c color.RGBA) {
	vector.FillRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), c, false)
}
