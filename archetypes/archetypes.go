package archetypes

import (
	"github.com/automoto/gamex/components"
	cfg "github.com/automoto/gamex/config"
	"github.com/automoto/gamex/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Controls,
		components.Movement,
		components.CollisionState,
		components.Weapon,
		components.Damage,
		components.Health,
		components.Animation,
		components.Blink,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.CollisionState,
		components.Health,
		components.Animation,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
		components.Animation,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	FloatingPlatform = newArchetype(
		tags.FloatingPlatform,
		components.Object,
		components.Tween,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Input = newArchetype(
		components.Input,
	)
	Timers = newArchetype(
		components.Timers,
	)
	Collaborators = newArchetype(
		components.Collaborators,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
