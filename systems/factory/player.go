package factory

import (
	"math"

	"github.com/automoto/gamex/archetypes"
	"github.com/automoto/gamex/assets/animations"
	"github.com/automoto/gamex/components"
	cfg "github.com/automoto/gamex/config"
	"github.com/automoto/gamex/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Player.CollisionWidth, cfg.Player.CollisionHeight
	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Player.SetValue(player, components.PlayerData{SpawnX: x, SpawnY: y})
	components.Movement.SetValue(player, components.MovementData{
		FacingRight: true,
	})
	components.Weapon.SetValue(player, components.WeaponData{
		// The gate opens after the first button-up interval, and no
		// shooting pose lingers from before the spawn.
		ReleaseTime: math.Inf(1),
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})
	components.Animation.SetValue(player, newAnimator(cfg.Animation.Player, "idle", animations.Loop))

	return player
}
