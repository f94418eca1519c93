package systems

import (
	"log"

	"github.com/automoto/gamex/components"
	cfg "github.com/automoto/gamex/config"
	"github.com/automoto/gamex/scheduler"
	"github.com/automoto/gamex/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// handleDamage checks the player against hostile colliders. Contact while
// clear applies one hit and starts the lock and protection timeline.
func handleDamage(ecs *ecs.ECS, sched *scheduler.Scheduler, broadphase components.Broadphase, entry *donburi.Entry) {
	d := components.Damage.Get(entry)
	if d.Locked() || d.Protected() {
		d.DamagedThisFrame = false
		return
	}

	obj := components.Object.Get(entry).Object
	if len(broadphase.Query(obj, tags.ResolvEnemy)) == 0 {
		return
	}
	applyHit(ecs, sched, entry, cfg.Damage.ContactDamage)
}

// applyHit takes damage and locks the actor. Timers from an earlier hit are
// stopped before new ones are scheduled.
func applyHit(ecs *ecs.ECS, sched *scheduler.Scheduler, entry *donburi.Entry, amount float64) {
	d := components.Damage.Get(entry)
	d.StopTimers()
	d.Phase = components.DamageLocked
	d.DamagedThisFrame = true

	health := components.Health.Get(entry)
	health.Current -= amount
	if health.Dead() {
		log.Printf("[damage] player %v destroyed", entry.Entity())
		destroyActor(ecs, entry)
		return
	}

	d.LockTimer = sched.Schedule(cfg.Damage.LockTime, false, entry, endDamageLock)
}

// endDamageLock moves a locked actor into protection.
func endDamageLock(t *scheduler.Timer) {
	entry, ok := scheduler.ContextAs[*donburi.Entry](t)
	if !ok || !entry.Valid() {
		return
	}
	d := components.Damage.Get(entry)
	if d.LockTimer != t || !d.Locked() {
		return
	}

	sched := t.Scheduler()
	d.LockTimer = nil
	d.Phase = components.DamageProtected
	startBlink(sched, entry, components.BlinkProtection, cfg.Damage.ProtectionBlinkColor, cfg.Damage.ProtectionBlinkRate)
	d.ProtectTimer = sched.Schedule(cfg.Damage.ProtectionTime, false, entry, endDamageProtection)
}

func endDamageProtection(t *scheduler.Timer) {
	entry, ok := scheduler.ContextAs[*donburi.Entry](t)
	if !ok || !entry.Valid() {
		return
	}
	d := components.Damage.Get(entry)
	if d.ProtectTimer != t || !d.Protected() {
		return
	}

	d.ProtectTimer = nil
	d.Phase = components.DamageClear
	stopBlink(components.Blink.Get(entry))
}

// destroyActor stops every timer the entry owns, takes its collider out of
// the space and removes it from the world.
func destroyActor(ecs *ecs.ECS, entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	if entry.HasComponent(components.Damage) {
		components.Damage.Get(entry).StopTimers()
	}
	if entry.HasComponent(components.Blink) {
		stopBlink(components.Blink.Get(entry))
	}
	if entry.HasComponent(components.Object) {
		if spaceEntry, ok := components.Space.First(ecs.World); ok {
			if obj := components.Object.Get(entry).Object; obj != nil && obj.Space != nil {
				components.Space.Get(spaceEntry).Remove(obj)
			}
		}
	}
	ecs.World.Remove(entry.Entity())
}
