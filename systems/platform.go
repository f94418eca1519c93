package systems

import (
	"github.com/automoto/gamex/components"
	"github.com/automoto/gamex/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFloatingPlatforms steps each platform's tween and moves its collider.
// The tween restarts when it finishes so platforms bob forever.
func UpdateFloatingPlatforms(ecs *ecs.ECS) {
	dt := float32(timers(ecs).Delta)

	tags.FloatingPlatform.Each(ecs.World, func(e *donburi.Entry) {
		tw := components.Tween.Get(e)
		obj := components.Object.Get(e).Object

		y, _, done := tw.Update(dt)
		obj.Y = float64(y)
		obj.Update()

		if done {
			tw.Reset()
		}
	})
}
