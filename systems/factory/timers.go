package factory

import (
	"github.com/automoto/gamex/archetypes"
	"github.com/automoto/gamex/components"
	"github.com/automoto/gamex/scheduler"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTimers creates the simulation clock stepping delta seconds per tick.
func CreateTimers(ecs *ecs.ECS, delta float64) *donburi.Entry {
	e := archetypes.Timers.Spawn(ecs)
	components.Timers.SetValue(e, components.TimersData{
		Scheduler: scheduler.New(),
		Delta:     delta,
	})
	return e
}

// CreateCollaborators installs the mover and broad-phase used by every actor.
func CreateCollaborators(ecs *ecs.ECS, mover components.Mover, broadphase components.Broadphase) *donburi.Entry {
	e := archetypes.Collaborators.Spawn(ecs)
	components.Collaborators.SetValue(e, components.CollaboratorsData{
		Mover:      mover,
		Broadphase: broadphase,
	})
	return e
}

func CreateInput(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Input.Spawn(ecs)
}
