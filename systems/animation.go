package systems

import (
	"github.com/automoto/gamex/assets/animations"
	"github.com/automoto/gamex/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// AnimationContext is everything the player's animation choice depends on.
type AnimationContext struct {
	Velocity       math.Vec2
	Below          bool
	BecameGrounded bool
	Dashing        bool
	WallSliding    bool
	DamageLocked   bool

	Fire              components.ActionState
	ReleasedTier      components.ChargeTier
	ReleaseTime       float64
	ShootWindow       float64
	ShootWindowActive bool

	Last          components.AnimationInstruction
	CurrentFrame  int
	LastCompleted bool
}

// SelectAnimation picks the clip for this frame. Checks run from lowest to
// highest priority and later matches override earlier ones.
func SelectAnimation(ctx AnimationContext) components.AnimationInstruction {
	vx, vy := ctx.Velocity.X, ctx.Velocity.Y
	inst := components.AnimationInstruction{Name: "idle", Loop: animations.Loop}

	if ctx.BecameGrounded {
		inst = components.AnimationInstruction{Name: "grounded", Loop: animations.ClampForever}
		if ctx.DamageLocked {
			inst = components.AnimationInstruction{Name: "damaged", Loop: animations.Loop}
		}
		return inst
	}

	if vx != 0 && vy == 0 && ctx.Below {
		inst = components.AnimationInstruction{Name: "run", Loop: animations.Loop, StartFrame: ctx.CurrentFrame}
	}
	if ctx.Dashing {
		inst = components.AnimationInstruction{Name: "dash", Loop: animations.ClampForever}
	}
	if ctx.WallSliding && vy > 0 {
		inst = components.AnimationInstruction{Name: "wall_slide", Loop: animations.ClampForever}
	}
	if vy < 0 {
		inst = components.AnimationInstruction{Name: "jump", Loop: animations.ClampForever}
	}
	if vy > 0 && !ctx.WallSliding {
		inst = components.AnimationInstruction{Name: "fall", Loop: animations.ClampForever}
	}

	shooting := ctx.Fire.JustPressed || (ctx.Fire.JustReleased && ctx.ReleasedTier != components.ChargeNone)
	lingering := shooting || (!ctx.Fire.Pressed && ctx.ReleaseTime < ctx.ShootWindow)

	switch {
	case inst.Name == "idle" && shooting:
		inst = components.AnimationInstruction{Name: "idle_shoot_strong", Loop: animations.ClampForever}
	case inst.Name == "run" && lingering:
		inst = components.AnimationInstruction{Name: "run_shoot", Loop: animations.Loop, StartFrame: ctx.CurrentFrame}
	case inst.Name == "jump" && lingering:
		inst = components.AnimationInstruction{Name: "jump_shoot", Loop: animations.ClampForever, StartFrame: ctx.CurrentFrame}
	case inst.Name == "fall" && lingering:
		inst = components.AnimationInstruction{Name: "fall_shoot", Loop: animations.ClampForever, StartFrame: ctx.CurrentFrame}
	}

	// A shot fired on the way up keeps its pose on the way down
	if ctx.Last.Name == "jump_shoot" && vy > 0 {
		inst = components.AnimationInstruction{Name: "fall_shoot", Loop: animations.ClampForever, StartFrame: ctx.CurrentFrame}
	}

	if ctx.DamageLocked {
		inst = components.AnimationInstruction{Name: "damaged", Loop: animations.Loop}
	}
	return inst
}

type interruptPolicy int

const (
	allowInterrupt interruptPolicy = iota
	denyWhileLocked
	denyUntilComplete
	denyDuringShootWindow
)

type clipPair struct {
	last, next string
}

// anyClip matches every next clip.
const anyClip = "*"

var interruptRules = map[clipPair]interruptPolicy{
	{"damaged", anyClip}:          denyWhileLocked,
	{"grounded", "idle"}:          denyUntilComplete,
	{"idle_shoot_strong", "idle"}: denyUntilComplete,
	{"run_shoot", "run"}:          denyDuringShootWindow,
	{"jump_shoot", "jump"}:        denyDuringShootWindow,
	{"fall_shoot", "fall"}:        denyDuringShootWindow,
}

// CanInterrupt reports whether next may replace last. Pairs without a rule
// are always allowed.
func CanInterrupt(last, next components.AnimationInstruction, ctx AnimationContext) bool {
	policy, ok := interruptRules[clipPair{last.Name, next.Name}]
	if !ok {
		policy = interruptRules[clipPair{last.Name, anyClip}]
	}

	switch policy {
	case denyWhileLocked:
		return !ctx.DamageLocked
	case denyUntilComplete:
		return ctx.LastCompleted
	case denyDuringShootWindow:
		return !ctx.ShootWindowActive
	}
	return true
}

// playerAnimationContext gathers the player's state after movement and weapon
// have run this frame.
func playerAnimationContext(entry *donburi.Entry, shootWindow float64) AnimationContext {
	m := components.Movement.Get(entry)
	c := components.CollisionState.Get(entry)
	w := components.Weapon.Get(entry)
	anim := components.Animation.Get(entry)

	return AnimationContext{
		Velocity:          m.Velocity,
		Below:             c.Below,
		BecameGrounded:    c.BecameGroundedThisFrame,
		Dashing:           m.Dashing(),
		WallSliding:       m.WallSliding(),
		DamageLocked:      components.Damage.Get(entry).Locked(),
		Fire:              components.Controls.Get(entry).Fire,
		ReleasedTier:      w.ReleasedTier,
		ReleaseTime:       w.ReleaseTime,
		ShootWindow:       shootWindow,
		ShootWindowActive: shootWindowActive(w),
		Last:              anim.Current,
		CurrentFrame:      anim.Animator.Frame(),
		LastCompleted:     anim.Animator.Completed(),
	}
}

// handleAnimation selects the player's clip and plays it if the interrupt
// rules let it replace the current one.
func handleAnimation(entry *donburi.Entry, ctx AnimationContext) {
	anim := components.Animation.Get(entry)
	anim.Last = anim.Current

	next := SelectAnimation(ctx)
	if !CanInterrupt(anim.Last, next, ctx) {
		return
	}
	anim.Current = next
	playInstruction(anim.Animator, next)
}

func playInstruction(a *animations.Animator, inst components.AnimationInstruction) {
	if a.IsActive(inst.Name) {
		return
	}
	if inst.StartFrame != 0 {
		a.PlayAtFrame(inst.Name, inst.StartFrame, inst.Loop)
		return
	}
	a.Play(inst.Name, inst.Loop)
}

// UpdateAnimations advances clip playback for every animated entity.
func UpdateAnimations(ecs *ecs.ECS) {
	dt := timers(ecs).Delta
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		if a := components.Animation.Get(e).Animator; a != nil {
			a.Update(dt)
		}
	})
}
