package factory

import (
	"github.com/automoto/gamex/archetypes"
	"github.com/automoto/gamex/assets/animations"
	"github.com/automoto/gamex/components"
	cfg "github.com/automoto/gamex/config"
	"github.com/automoto/gamex/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateEnemy(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	w, h := cfg.Enemy.CollisionWidth, cfg.Enemy.CollisionHeight
	obj := resolv.NewObject(x, y, w, h, tags.ResolvEnemy)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Health.SetValue(enemy, components.HealthData{
		Current: cfg.Enemy.Health,
		Max:     cfg.Enemy.Health,
	})
	components.Animation.SetValue(enemy, newAnimator(cfg.Animation.Enemy, "idle", animations.ClampForever))

	return enemy
}
