package systems

import (
	"github.com/automoto/gamex/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTimers advances the simulation clock and fires due scheduled
// callbacks. It runs first so callbacks land at the start of the tick.
func UpdateTimers(ecs *ecs.ECS) {
	e, ok := components.Timers.First(ecs.World)
	if !ok {
		return
	}
	t := components.Timers.Get(e)
	t.Frame++
	t.Scheduler.Advance(t.Delta)
}

func timers(ecs *ecs.ECS) *components.TimersData {
	return components.Timers.Get(components.Timers.MustFirst(ecs.World))
}

func collaborators(ecs *ecs.ECS) *components.CollaboratorsData {
	return components.Collaborators.Get(components.Collaborators.MustFirst(ecs.World))
}
