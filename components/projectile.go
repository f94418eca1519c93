package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ProjectilePhase is the projectile lifecycle.
type ProjectilePhase int

const (
	ProjectileSpawn ProjectilePhase = iota
	ProjectileLive
	ProjectileHit
	ProjectileDestroyed
)

func (p ProjectilePhase) String() string {
	switch p {
	case ProjectileSpawn:
		return "spawn"
	case ProjectileLive:
		return "live"
	case ProjectileHit:
		return "hit"
	}
	return "destroyed"
}

// ProjectileData is fixed at spawn, except Velocity, HitTarget, Phase and the
// bookkeeping fields.
type ProjectileData struct {
	Velocity           math.Vec2
	Damage             float64
	ColliderW          float64
	ColliderH          float64
	AtlasID            string
	Tier               ChargeTier
	HasStartAnim       bool
	HasHitAnim         bool
	ContinuesAfterKill bool
	TargetLayer        string

	HitTarget bool
	Phase     ProjectilePhase
	Age       float64
	Lifespan  float64
	Struck    map[donburi.Entity]struct{} // targets already damaged
}

var Projectile = donburi.NewComponentType[ProjectileData]()
