package systems

import (
	"github.com/automoto/gamex/components"
	cfg "github.com/automoto/gamex/config"
	"github.com/automoto/gamex/shared/gamemath"
	"github.com/automoto/gamex/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateEnemies applies gravity to every enemy and moves it through the mover.
// Enemies have no behavior beyond falling and standing.
func UpdateEnemies(ecs *ecs.ECS) {
	dt := timers(ecs).Delta
	mover := collaborators(ecs).Mover

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		collision := components.CollisionState.Get(e)
		obj := components.Object.Get(e).Object

		enemy.Velocity.Y = gamemath.ApplyGravity(enemy.Velocity.Y, cfg.Enemy.Gravity, cfg.Enemy.MaxFallSpeed, dt)

		mover.Move(math.Vec2{X: enemy.Velocity.X * dt, Y: enemy.Velocity.Y * dt}, obj, collision)

		if collision.Below {
			enemy.Velocity.Y = 0
		}
	})
}
