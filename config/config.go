package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer every gameplay entity is created on.
const Default ecs.LayerID = 0

// Config holds window and simulation settings.
type Config struct {
	Width        int // design resolution
	Height       int
	WindowWidth  int
	WindowHeight int
	TPS          int
	LevelPath    string
	TuningPath   string
}

// PlayerConfig contains movement tuning for the player controller. Speeds are
// in pixels per second, times in seconds.
type PlayerConfig struct {
	// Movement
	MoveSpeed          float64 `yaml:"moveSpeed"`
	DashSpeed          float64 `yaml:"dashSpeed"`
	WallSlideSpeed     float64 `yaml:"wallSlideSpeed"`
	MaxGroundDashTime  float64 `yaml:"maxGroundDashTime"`
	MaxAirDashTime     float64 `yaml:"maxAirDashTime"`
	Gravity            float64 `yaml:"gravity"`
	TerminalVelocity   float64 `yaml:"terminalVelocity"`
	JumpHeight         float64 `yaml:"jumpHeight"`
	WallJumpTimeWindow float64 `yaml:"wallJumpTimeWindow"`
	WallJumpMultiplier float64 `yaml:"wallJumpMultiplier"`
	DashJumpWallGrace  float64 `yaml:"dashJumpWallGrace"` // dash-jump survives side contact for this long

	// Stats
	Health float64 `yaml:"health"`

	// Dimensions
	CollisionWidth  float64 `yaml:"collisionWidth"`
	CollisionHeight float64 `yaml:"collisionHeight"`
	SpawnX          float64 `yaml:"spawnX"`
	SpawnY          float64 `yaml:"spawnY"`
}

// WeaponTier holds the projectile parameters for a single charge tier.
type WeaponTier struct {
	Damage    float64 `yaml:"damage"`
	ColliderW float64 `yaml:"colliderW"`
	ColliderH float64 `yaml:"colliderH"`
	AtlasID   string  `yaml:"atlasID"`
}

// WeaponConfig contains charge shot configuration.
type WeaponConfig struct {
	HalfChargeTime      float64    `yaml:"halfChargeTime"`
	FullChargeTime      float64    `yaml:"fullChargeTime"`
	ProjectileSpeed     float64    `yaml:"projectileSpeed"`
	AttackInputLockTime float64    `yaml:"attackInputLockTime"`
	ChargeEffectDelay   float64    `yaml:"chargeEffectDelay"`
	ChargeBlinkRate     float64    `yaml:"chargeBlinkRate"` // toggles per second
	ChargeBlinkColor    color.RGBA `yaml:"chargeBlinkColor"`

	// ShootWindow keeps shooting poses alive after release. Zero disables it.
	ShootWindow float64 `yaml:"shootWindow"`

	// Spawn offsets relative to the player center, x mirrored by facing.
	GroundOffsetX float64 `yaml:"groundOffsetX"`
	GroundOffsetY float64 `yaml:"groundOffsetY"`
	AirOffsetX    float64 `yaml:"airOffsetX"`
	AirOffsetY    float64 `yaml:"airOffsetY"`

	Tiers map[string]WeaponTier `yaml:"tiers"` // keyed by "none", "half", "full"
}

// DamageConfig contains the hit, knockback and protection timeline tuning.
type DamageConfig struct {
	ContactDamage        float64    `yaml:"contactDamage"`
	ImpulseX             float64    `yaml:"impulseX"`
	ImpulseY             float64    `yaml:"impulseY"`
	LockTime             float64    `yaml:"lockTime"`
	ProtectionTime       float64    `yaml:"protectionTime"`
	ProtectionBlinkRate  float64    `yaml:"protectionBlinkRate"`
	ProtectionBlinkColor color.RGBA `yaml:"protectionBlinkColor"`
}

// ProjectileConfig contains shared projectile settings.
type ProjectileConfig struct {
	Lifespan float64 `yaml:"lifespan"`
}

// EnemyConfig contains configuration for the gravity-only enemy.
type EnemyConfig struct {
	Health          float64 `yaml:"health"`
	Gravity         float64 `yaml:"gravity"`
	MaxFallSpeed    float64 `yaml:"maxFallSpeed"`
	CollisionWidth  float64 `yaml:"collisionWidth"`
	CollisionHeight float64 `yaml:"collisionHeight"`
}

// ClipDef describes a named animation clip. A zero FPS uses AnimationConfig.DefaultFPS.
type ClipDef struct {
	Frames int
	FPS    float64
}

// AnimationConfig contains clip metadata for the player, projectiles and enemies.
type AnimationConfig struct {
	DefaultFPS  float64
	Player      map[string]ClipDef
	Projectiles map[string]ClipDef
	Enemy       map[string]ClipDef
}

// DebugConfig toggles debug drawing.
type DebugConfig struct {
	DrawColliders bool
	DrawState     bool
}

var C *Config
var Player PlayerConfig
var Weapon WeaponConfig
var Damage DamageConfig
var Projectile ProjectileConfig
var Enemy EnemyConfig
var Animation AnimationConfig
var Debug DebugConfig

// Palette
var (
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ChargeBlue  = color.RGBA{R: 120, G: 200, B: 255, A: 255}
	PlayerColor = color.RGBA{R: 60, G: 140, B: 240, A: 255}
	EnemyColor  = color.RGBA{R: 220, G: 70, B: 70, A: 255}
	SolidColor  = color.RGBA{R: 90, G: 90, B: 110, A: 255}
	ShotColor   = color.RGBA{R: 120, G: 230, B: 255, A: 255}
	Background  = color.RGBA{R: 24, G: 24, B: 32, A: 255}
)

// Tier keys
const (
	TierNone = "none"
	TierHalf = "half"
	TierFull = "full"
)

func init() {
	Reset()
}

// Reset restores every tuning value to its default.
func Reset() {
	C = &Config{
		Width:        512,
		Height:       288,
		WindowWidth:  1280,
		WindowHeight: 720,
		TPS:          60,
		LevelPath:    "levels/test.tmx",
	}

	Player = PlayerConfig{
		MoveSpeed:          125,
		DashSpeed:          300,
		WallSlideSpeed:     100,
		MaxGroundDashTime:  0.5,
		MaxAirDashTime:     0.35,
		Gravity:            1000,
		TerminalVelocity:   400,
		JumpHeight:         75,
		WallJumpTimeWindow: 0.1,
		WallJumpMultiplier: 1.5,
		DashJumpWallGrace:  0.2,

		Health: 100,

		CollisionWidth:  16,
		CollisionHeight: 32,
		SpawnX:          100,
		SpawnY:          200,
	}

	Weapon = WeaponConfig{
		HalfChargeTime:      0.75,
		FullChargeTime:      1.5,
		ProjectileSpeed:     400,
		AttackInputLockTime: 0.1,
		ChargeEffectDelay:   0.5,
		ChargeBlinkRate:     20,
		ChargeBlinkColor:    ChargeBlue,
		ShootWindow:         0.3,

		GroundOffsetX: 12,
		GroundOffsetY: 4,
		AirOffsetX:    12,
		AirOffsetY:    -5,

		Tiers: map[string]WeaponTier{
			TierNone: {Damage: 10, ColliderW: 2, ColliderH: 6, AtlasID: "water_cannon/normal"},
			TierHalf: {Damage: 50, ColliderW: 2, ColliderH: 9, AtlasID: "water_cannon/half_charge"},
			TierFull: {Damage: 100, ColliderW: 2, ColliderH: 9, AtlasID: "water_cannon/full_charge"},
		},
	}

	Damage = DamageConfig{
		ContactDamage:        10,
		ImpulseX:             100,
		ImpulseY:             -200,
		LockTime:             0.5,
		ProtectionTime:       1,
		ProtectionBlinkRate:  10,
		ProtectionBlinkColor: White,
	}

	Projectile = ProjectileConfig{
		Lifespan: 2,
	}

	Enemy = EnemyConfig{
		Health:          30,
		Gravity:         1000,
		MaxFallSpeed:    300,
		CollisionWidth:  32,
		CollisionHeight: 32,
	}

	Animation = AnimationConfig{
		DefaultFPS: 10,
		Player: map[string]ClipDef{
			"idle":              {Frames: 4, FPS: 6},
			"grounded":          {Frames: 3, FPS: 25},
			"run":               {Frames: 8, FPS: 18},
			"run_shoot":         {Frames: 8, FPS: 18},
			"dash":              {Frames: 2, FPS: 18},
			"wall_slide":        {Frames: 2},
			"jump":              {Frames: 3},
			"jump_shoot":        {Frames: 3},
			"fall":              {Frames: 3},
			"fall_shoot":        {Frames: 3},
			"idle_shoot_weak":   {Frames: 3, FPS: 18},
			"idle_shoot_strong": {Frames: 4, FPS: 18},
			"damaged":           {Frames: 4},
		},
		Projectiles: map[string]ClipDef{
			"start":      {Frames: 3},
			"projectile": {Frames: 2},
			"hit":        {Frames: 4, FPS: 32},
		},
		Enemy: map[string]ClipDef{
			"idle": {Frames: 4},
		},
	}

	Debug = DebugConfig{
		DrawColliders: true,
		DrawState:     true,
	}
}

// TierParams returns the projectile parameters for a tier key, falling back
// to the base tier for unknown keys.
func TierParams(key string) WeaponTier {
	if t, ok := Weapon.Tiers[key]; ok {
		return t
	}
	return Weapon.Tiers[TierNone]
}

// ClipFPS returns the playback rate for a clip, or DefaultFPS when the clip
// has no entry or no rate.
func ClipFPS(clips map[string]ClipDef, name string) float64 {
	if def, ok := clips[name]; ok && def.FPS > 0 {
		return def.FPS
	}
	return Animation.DefaultFPS
}
