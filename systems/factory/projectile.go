package factory

import (
	"errors"
	"fmt"

	"github.com/automoto/gamex/archetypes"
	"github.com/automoto/gamex/assets/animations"
	"github.com/automoto/gamex/components"
	cfg "github.com/automoto/gamex/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

var (
	ErrNoAtlas       = errors.New("projectile has no atlas id")
	ErrBadCollider   = errors.New("projectile collider must have a positive size")
	ErrNoTargetLayer = errors.New("projectile has no target layer")
)

// ProjectileSpec holds everything a projectile is created with. X and Y are
// the center of the collider.
type ProjectileSpec struct {
	X, Y               float64
	Velocity           math.Vec2
	Damage             float64
	ColliderW          float64
	ColliderH          float64
	AtlasID            string
	Tier               components.ChargeTier
	HasStartAnim       bool
	HasHitAnim         bool
	ContinuesAfterKill bool
	Layer              string
	TargetLayer        string
	Lifespan           float64 // zero uses the configured lifespan
}

// Validate reports a spec that would produce a broken projectile.
func (s ProjectileSpec) Validate() error {
	if s.AtlasID == "" {
		return ErrNoAtlas
	}
	if s.ColliderW <= 0 || s.ColliderH <= 0 {
		return fmt.Errorf("%w: %vx%v", ErrBadCollider, s.ColliderW, s.ColliderH)
	}
	if s.TargetLayer == "" {
		return ErrNoTargetLayer
	}
	return nil
}

// CreateProjectile validates spec and spawns the projectile. Nothing is added
// to the world when validation fails.
func CreateProjectile(ecs *ecs.ECS, spec ProjectileSpec) (*donburi.Entry, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("create projectile %q: %w", spec.AtlasID, err)
	}

	projectile := archetypes.Projectile.Spawn(ecs)

	obj := resolv.NewObject(spec.X-spec.ColliderW/2, spec.Y-spec.ColliderH/2, spec.ColliderW, spec.ColliderH, spec.Layer)
	obj.SetShape(resolv.NewRectangle(0, 0, spec.ColliderW, spec.ColliderH))
	obj.Data = projectile
	components.Object.SetValue(projectile, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	lifespan := spec.Lifespan
	if lifespan <= 0 {
		lifespan = cfg.Projectile.Lifespan
	}

	phase := components.ProjectileLive
	anim := newAnimator(cfg.Animation.Projectiles, "projectile", animations.Loop)
	if spec.HasStartAnim {
		phase = components.ProjectileSpawn
		anim = newAnimator(cfg.Animation.Projectiles, "start", animations.Once)
	}
	components.Animation.SetValue(projectile, anim)

	components.Projectile.SetValue(projectile, components.ProjectileData{
		Velocity:           spec.Velocity,
		Damage:             spec.Damage,
		ColliderW:          spec.ColliderW,
		ColliderH:          spec.ColliderH,
		AtlasID:            spec.AtlasID,
		Tier:               spec.Tier,
		HasStartAnim:       spec.HasStartAnim,
		HasHitAnim:         spec.HasHitAnim,
		ContinuesAfterKill: spec.ContinuesAfterKill,
		TargetLayer:        spec.TargetLayer,
		Phase:              phase,
		Lifespan:           lifespan,
		Struck:             make(map[donburi.Entity]struct{}),
	})

	return projectile, nil
}
