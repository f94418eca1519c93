package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the subset of configuration that can be overridden from a YAML
// file. Keys left out of the file keep their current values.
type Tuning struct {
	Player     PlayerConfig     `yaml:"player"`
	Weapon     WeaponConfig     `yaml:"weapon"`
	Damage     DamageConfig     `yaml:"damage"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Enemy      EnemyConfig      `yaml:"enemy"`
}

// CurrentTuning snapshots the active tuning values.
func CurrentTuning() Tuning {
	w := Weapon
	w.Tiers = make(map[string]WeaponTier, len(Weapon.Tiers))
	for k, v := range Weapon.Tiers {
		w.Tiers[k] = v
	}
	return Tuning{
		Player:     Player,
		Weapon:     w,
		Damage:     Damage,
		Projectile: Projectile,
		Enemy:      Enemy,
	}
}

// ParseTuning decodes YAML over the active tuning values and validates the result.
func ParseTuning(data []byte) (Tuning, error) {
	t := CurrentTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("failed to parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, fmt.Errorf("invalid tuning: %w", err)
	}
	return t, nil
}

// LoadTuning reads a tuning file from disk.
func LoadTuning(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("failed to read tuning %s: %w", path, err)
	}
	return ParseTuning(data)
}

// Apply installs the tuning values as the active configuration.
func (t Tuning) Apply() {
	Player = t.Player
	Weapon = t.Weapon
	Damage = t.Damage
	Projectile = t.Projectile
	Enemy = t.Enemy
}

// Validate checks that the tuning values keep the simulation well defined.
func (t Tuning) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be > 0, got %.3f", name, v))
		}
	}
	nonNegative := func(name string, v float64) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must be >= 0, got %.3f", name, v))
		}
	}

	p := t.Player
	positive("player.moveSpeed", p.MoveSpeed)
	positive("player.dashSpeed", p.DashSpeed)
	positive("player.gravity", p.Gravity)
	positive("player.terminalVelocity", p.TerminalVelocity)
	positive("player.jumpHeight", p.JumpHeight)
	positive("player.maxGroundDashTime", p.MaxGroundDashTime)
	positive("player.maxAirDashTime", p.MaxAirDashTime)
	positive("player.health", p.Health)
	positive("player.collisionWidth", p.CollisionWidth)
	positive("player.collisionHeight", p.CollisionHeight)
	nonNegative("player.wallSlideSpeed", p.WallSlideSpeed)
	nonNegative("player.wallJumpTimeWindow", p.WallJumpTimeWindow)
	nonNegative("player.dashJumpWallGrace", p.DashJumpWallGrace)

	w := t.Weapon
	positive("weapon.halfChargeTime", w.HalfChargeTime)
	if w.FullChargeTime <= w.HalfChargeTime {
		errs = append(errs, fmt.Errorf("weapon.fullChargeTime (%.3f) must exceed halfChargeTime (%.3f)",
			w.FullChargeTime, w.HalfChargeTime))
	}
	positive("weapon.projectileSpeed", w.ProjectileSpeed)
	positive("weapon.attackInputLockTime", w.AttackInputLockTime)
	positive("weapon.chargeBlinkRate", w.ChargeBlinkRate)
	nonNegative("weapon.shootWindow", w.ShootWindow)
	for _, key := range []string{TierNone, TierHalf, TierFull} {
		tier, ok := w.Tiers[key]
		if !ok {
			errs = append(errs, fmt.Errorf("weapon.tiers.%s is missing", key))
			continue
		}
		if tier.AtlasID == "" {
			errs = append(errs, fmt.Errorf("weapon.tiers.%s.atlasID is empty", key))
		}
		positive("weapon.tiers."+key+".colliderW", tier.ColliderW)
		positive("weapon.tiers."+key+".colliderH", tier.ColliderH)
	}

	d := t.Damage
	nonNegative("damage.contactDamage", d.ContactDamage)
	positive("damage.lockTime", d.LockTime)
	positive("damage.protectionTime", d.ProtectionTime)
	positive("damage.protectionBlinkRate", d.ProtectionBlinkRate)

	positive("projectile.lifespan", t.Projectile.Lifespan)

	e := t.Enemy
	positive("enemy.health", e.Health)
	positive("enemy.maxFallSpeed", e.MaxFallSpeed)
	positive("enemy.collisionWidth", e.CollisionWidth)
	positive("enemy.collisionHeight", e.CollisionHeight)

	return errors.Join(errs...)
}
