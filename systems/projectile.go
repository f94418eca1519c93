package systems

import (
	"log"

	"github.com/automoto/gamex/assets/animations"
	"github.com/automoto/gamex/components"
	"github.com/automoto/gamex/scheduler"
	"github.com/automoto/gamex/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles moves every projectile, resolves its hit and retires it
// when its visuals finish.
func UpdateProjectiles(ecs *ecs.ECS) {
	t := timers(ecs)
	broadphase := collaborators(ecs).Broadphase

	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		updateProjectile(ecs, t.Scheduler, broadphase, e, t.Delta)
	})
}

func updateProjectile(ecs *ecs.ECS, sched *scheduler.Scheduler, broadphase components.Broadphase, e *donburi.Entry, dt float64) {
	p := components.Projectile.Get(e)
	anim := components.Animation.Get(e)

	switch p.Phase {
	case components.ProjectileDestroyed:
		destroyProjectile(ecs, e)
		return
	case components.ProjectileHit:
		if anim.Animator.Completed() {
			destroyProjectile(ecs, e)
		}
		return
	case components.ProjectileSpawn:
		if anim.Animator.Completed() {
			p.Phase = components.ProjectileLive
			setProjectileClip(anim, "projectile", animations.Loop)
		}
	}

	p.Age += dt
	if p.Lifespan > 0 && p.Age >= p.Lifespan {
		destroyProjectile(ecs, e)
		return
	}

	obj := components.Object.Get(e).Object
	obj.X += p.Velocity.X * dt
	obj.Y += p.Velocity.Y * dt
	obj.Update()

	if p.HitTarget {
		return
	}

	// Level geometry stops the shot without dealing damage
	if len(broadphase.Query(obj, tags.ResolvSolid)) > 0 {
		terminateProjectile(ecs, e)
		return
	}

	for _, other := range broadphase.Query(obj, p.TargetLayer) {
		target, ok := other.Data.(*donburi.Entry)
		if !ok || !target.Valid() {
			continue
		}
		if _, struck := p.Struck[target.Entity()]; struck {
			continue
		}
		p.Struck[target.Entity()] = struct{}{}

		if damageTarget(ecs, sched, target, p.Damage) && p.ContinuesAfterKill {
			continue
		}
		terminateProjectile(ecs, e)
		return
	}
}

// terminateProjectile resolves the projectile. It is destroyed right away
// unless it has a hit visual to play first.
func terminateProjectile(ecs *ecs.ECS, e *donburi.Entry) {
	p := components.Projectile.Get(e)
	p.HitTarget = true
	p.Velocity.X, p.Velocity.Y = 0, 0

	if !p.HasHitAnim {
		destroyProjectile(ecs, e)
		return
	}
	p.Phase = components.ProjectileHit
	setProjectileClip(components.Animation.Get(e), "hit", animations.Once)
}

func destroyProjectile(ecs *ecs.ECS, e *donburi.Entry) {
	components.Projectile.Get(e).Phase = components.ProjectileDestroyed
	destroyActor(ecs, e)
}

func setProjectileClip(anim *components.AnimationData, name string, loop animations.LoopMode) {
	anim.Last = anim.Current
	anim.Current = components.AnimationInstruction{Name: name, Loop: loop}
	anim.Animator.Play(name, loop)
}

// damageTarget applies amount to target and reports whether it was destroyed.
// Actors with a damage timeline go through it and ignore hits while locked or
// protected.
func damageTarget(ecs *ecs.ECS, sched *scheduler.Scheduler, target *donburi.Entry, amount float64) bool {
	if target.HasComponent(components.Damage) {
		d := components.Damage.Get(target)
		if d.Locked() || d.Protected() {
			return false
		}
		applyHit(ecs, sched, target, amount)
		return !target.Valid()
	}

	if !target.HasComponent(components.Health) {
		return false
	}
	health := components.Health.Get(target)
	health.Current -= amount
	if !health.Dead() {
		return false
	}
	log.Printf("[projectile] target %v destroyed", target.Entity())
	destroyActor(ecs, target)
	return true
}
