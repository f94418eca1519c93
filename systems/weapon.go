package systems

import (
	"log"
	"strings"

	"github.com/automoto/gamex/components"
	cfg "github.com/automoto/gamex/config"
	"github.com/automoto/gamex/scheduler"
	"github.com/automoto/gamex/shared/gamemath"
	"github.com/automoto/gamex/systems/factory"
	"github.com/automoto/gamex/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// handleWeapon runs the charge shot state machine for one frame.
func handleWeapon(ecs *ecs.ECS, sched *scheduler.Scheduler, entry *donburi.Entry, dt float64) {
	w := components.Weapon.Get(entry)
	fire := components.Controls.Get(entry).Fire
	damage := components.Damage.Get(entry)
	blink := components.Blink.Get(entry)

	if fire.JustPressed {
		w.Charge = components.ChargeNone
		w.ChargeTime = 0
		w.ReleasedTier = components.ChargeNone
	}

	if fire.Pressed {
		if !blink.Active() && w.ChargeTime >= cfg.Weapon.ChargeEffectDelay && !damage.Locked() && !damage.Protected() {
			startBlink(sched, entry, components.BlinkCharge, cfg.Weapon.ChargeBlinkColor, cfg.Weapon.ChargeBlinkRate)
		}
		w.ChargeTime += dt
		w.ReleaseTime = 0
	}

	if fire.JustReleased {
		w.ReleasedTier = w.Charge
		if w.Charge != components.ChargeNone {
			fireShot(ecs, entry, w.Charge)
			closeFireGate(w)
		}
		w.Charge = components.ChargeNone
		w.ChargeTime = 0

		if blink.Source != components.BlinkProtection {
			stopBlink(blink)
		}
	}

	if fire.JustPressed && w.CanFire {
		fireShot(ecs, entry, components.ChargeNone)
		closeFireGate(w)
	}

	if !fire.Pressed {
		w.LockTime += dt
		if w.ReleaseTime < cfg.Weapon.ShootWindow {
			w.ReleaseTime += dt
		}
	}

	if w.LockTime >= cfg.Weapon.AttackInputLockTime {
		w.LockTime = 0
		w.CanFire = true
	}

	if fire.Pressed {
		w.Charge = chargeTier(w.ChargeTime)
	}
}

// chargeTier maps time held to a tier.
func chargeTier(held float64) components.ChargeTier {
	switch {
	case held >= cfg.Weapon.FullChargeTime:
		return components.ChargeFull
	case held >= cfg.Weapon.HalfChargeTime:
		return components.ChargeHalf
	}
	return components.ChargeNone
}

func closeFireGate(w *components.WeaponData) {
	w.CanFire = false
	w.LockTime = 0
}

// fireShot spawns a projectile for tier in front of the actor. Nothing spawns
// while the actor is damage locked.
func fireShot(ecs *ecs.ECS, entry *donburi.Entry, tier components.ChargeTier) {
	if components.Damage.Get(entry).Locked() {
		return
	}

	m := components.Movement.Get(entry)
	anim := components.Animation.Get(entry)
	obj := components.Object.Get(entry)
	params := cfg.TierParams(tier.Key())

	facing := gamemath.Facing(m.FacingRight)
	offX, offY := projectileOffset(anim.Current.Name)
	cx, cy := obj.Center()

	_, err := factory.CreateProjectile(ecs, factory.ProjectileSpec{
		X:                  cx + offX*facing,
		Y:                  cy + offY,
		Velocity:           math.Vec2{X: facing * cfg.Weapon.ProjectileSpeed},
		Damage:             params.Damage,
		ColliderW:          params.ColliderW,
		ColliderH:          params.ColliderH,
		AtlasID:            params.AtlasID,
		Tier:               tier,
		HasStartAnim:       tier != components.ChargeNone,
		HasHitAnim:         true,
		ContinuesAfterKill: tier != components.ChargeNone,
		Layer:              tags.ResolvPlayerProjectile,
		TargetLayer:        tags.ResolvEnemy,
	})
	if err != nil {
		log.Printf("[weapon] %v", err)
		return
	}
	components.Weapon.Get(entry).Shots++
}

// projectileOffset returns the spawn offset for the current pose, facing right.
func projectileOffset(clip string) (float64, float64) {
	if strings.Contains(clip, "jump") || strings.Contains(clip, "fall") {
		return cfg.Weapon.AirOffsetX, cfg.Weapon.AirOffsetY
	}
	return cfg.Weapon.GroundOffsetX, cfg.Weapon.GroundOffsetY
}

// shootWindowActive reports whether a base shot was released recently enough
// for shooting poses to keep playing.
func shootWindowActive(w *components.WeaponData) bool {
	return w.ReleaseTime < cfg.Weapon.ShootWindow && w.ReleasedTier == components.ChargeNone
}
