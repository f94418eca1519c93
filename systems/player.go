package systems

import (
	"github.com/automoto/gamex/components"
	cfg "github.com/automoto/gamex/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer steps every player: movement, then weapon, then animation,
// then damage.
func UpdatePlayer(ecs *ecs.ECS) {
	t := timers(ecs)
	collab := collaborators(ecs)

	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		updateSinglePlayer(ecs, t, collab, playerEntry)
	})
}

func updateSinglePlayer(ecs *ecs.ECS, t *components.TimersData, collab *components.CollaboratorsData, playerEntry *donburi.Entry) {
	handleMovement(movementFrame{
		controls:  components.Controls.Get(playerEntry),
		movement:  components.Movement.Get(playerEntry),
		collision: components.CollisionState.Get(playerEntry),
		damage:    components.Damage.Get(playerEntry),
		collider:  components.Object.Get(playerEntry).Object,
		mover:     collab.Mover,
		dt:        t.Delta,
	})

	handleWeapon(ecs, t.Scheduler, playerEntry, t.Delta)

	handleAnimation(playerEntry, playerAnimationContext(playerEntry, cfg.Weapon.ShootWindow))

	handleDamage(ecs, t.Scheduler, collab.Broadphase, playerEntry)
}

// PlayerState reports the player's primary movement state.
func PlayerState(playerEntry *donburi.Entry) components.MovementMode {
	m := components.Movement.Get(playerEntry)
	return m.Mode(components.Damage.Get(playerEntry).Locked(), components.CollisionState.Get(playerEntry).Below)
}
