package systems

import (
	"testing"

	"github.com/automoto/gamex/assets/animations"
	"github.com/automoto/gamex/components"
	"github.com/automoto/gamex/systems/factory"
)

func TestSelectAnimation(t *testing.T) {
	pressed := components.ActionState{Pressed: true, JustPressed: true}
	released := components.ActionState{JustReleased: true}

	tests := []struct {
		name string
		ctx  AnimationContext
		want string
		loop animations.LoopMode
	}{
		{"idle", AnimationContext{Below: true, ReleaseTime: 1, ShootWindow: 0.3}, "idle", animations.Loop},
		{"landing", AnimationContext{Below: true, BecameGrounded: true, Velocity: vec(100, 0)}, "grounded", animations.ClampForever},
		{"landing while locked", AnimationContext{Below: true, BecameGrounded: true, DamageLocked: true}, "damaged", animations.Loop},
		{"run", AnimationContext{Below: true, Velocity: vec(125, 0), ReleaseTime: 1, ShootWindow: 0.3}, "run", animations.Loop},
		{"running in the air is not run", AnimationContext{Velocity: vec(125, 0), ReleaseTime: 1, ShootWindow: 0.3}, "idle", animations.Loop},
		{"dash", AnimationContext{Below: true, Dashing: true, Velocity: vec(300, 0)}, "dash", animations.ClampForever},
		{"wall slide", AnimationContext{WallSliding: true, Velocity: vec(0, 100), ReleaseTime: 1, ShootWindow: 0.3}, "wall_slide", animations.ClampForever},
		{"jump", AnimationContext{Velocity: vec(0, -300), ReleaseTime: 1, ShootWindow: 0.3}, "jump", animations.ClampForever},
		{"fall", AnimationContext{Velocity: vec(0, 200), ReleaseTime: 1, ShootWindow: 0.3}, "fall", animations.ClampForever},
		{"jump beats dash", AnimationContext{Dashing: true, Velocity: vec(300, -100), ReleaseTime: 1, ShootWindow: 0.3}, "jump", animations.ClampForever},
		{"idle shot", AnimationContext{Below: true, Fire: pressed, ShootWindow: 0.3}, "idle_shoot_strong", animations.ClampForever},
		{"idle charged release", AnimationContext{Below: true, Fire: released, ReleasedTier: components.ChargeFull, ShootWindow: 0.3}, "idle_shoot_strong", animations.ClampForever},
		{"idle weak release is idle", AnimationContext{Below: true, Fire: released, ReleaseTime: 1, ShootWindow: 0.3}, "idle", animations.Loop},
		{"run shot lingers", AnimationContext{Below: true, Velocity: vec(125, 0), ReleaseTime: 0.1, ShootWindow: 0.3}, "run_shoot", animations.Loop},
		{"run shot window over", AnimationContext{Below: true, Velocity: vec(125, 0), ReleaseTime: 0.3, ShootWindow: 0.3}, "run", animations.Loop},
		{"window disabled", AnimationContext{Below: true, Velocity: vec(125, 0), ReleaseTime: 0, ShootWindow: 0}, "run", animations.Loop},
		{"jump shot", AnimationContext{Velocity: vec(0, -300), Fire: pressed, ShootWindow: 0.3}, "jump_shoot", animations.ClampForever},
		{"fall shot", AnimationContext{Velocity: vec(0, 200), ReleaseTime: 0.1, ShootWindow: 0.3}, "fall_shoot", animations.ClampForever},
		{
			"jump shot carries into the fall",
			AnimationContext{Velocity: vec(0, 50), ReleaseTime: 1, ShootWindow: 0.3, Last: components.AnimationInstruction{Name: "jump_shoot"}},
			"fall_shoot", animations.ClampForever,
		},
		{"locked beats everything", AnimationContext{Velocity: vec(0, -300), Fire: pressed, DamageLocked: true}, "damaged", animations.Loop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectAnimation(tt.ctx)
			if got.Name != tt.want || got.Loop != tt.loop {
				t.Errorf("SelectAnimation() = %s/%s, want %s/%s", got.Name, got.Loop, tt.want, tt.loop)
			}
		})
	}
}

func TestSelectAnimationKeepsRunPhase(t *testing.T) {
	ctx := AnimationContext{Below: true, Velocity: vec(125, 0), ReleaseTime: 0.1, ShootWindow: 0.3, CurrentFrame: 5}
	if got := SelectAnimation(ctx); got.StartFrame != 5 {
		t.Errorf("StartFrame = %d, want 5", got.StartFrame)
	}
}

func TestCanInterrupt(t *testing.T) {
	clip := func(name string) components.AnimationInstruction {
		return components.AnimationInstruction{Name: name}
	}

	tests := []struct {
		name       string
		last, next string
		ctx        AnimationContext
		want       bool
	}{
		{"no rule", "run", "jump", AnimationContext{}, true},
		{"damaged while locked", "damaged", "idle", AnimationContext{DamageLocked: true}, false},
		{"damaged after lock", "damaged", "idle", AnimationContext{}, true},
		{"landing not finished", "grounded", "idle", AnimationContext{}, false},
		{"landing finished", "grounded", "idle", AnimationContext{LastCompleted: true}, true},
		{"landing into run", "grounded", "run", AnimationContext{}, true},
		{"strong shot not finished", "idle_shoot_strong", "idle", AnimationContext{}, false},
		{"strong shot finished", "idle_shoot_strong", "idle", AnimationContext{LastCompleted: true}, true},
		{"run shot in window", "run_shoot", "run", AnimationContext{ShootWindowActive: true}, false},
		{"run shot after window", "run_shoot", "run", AnimationContext{}, true},
		{"jump shot in window", "jump_shoot", "jump", AnimationContext{ShootWindowActive: true}, false},
		{"fall shot in window", "fall_shoot", "fall", AnimationContext{ShootWindowActive: true}, false},
		{"fall shot into landing", "fall_shoot", "grounded", AnimationContext{ShootWindowActive: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanInterrupt(clip(tt.last), clip(tt.next), tt.ctx); got != tt.want {
				t.Errorf("CanInterrupt(%s, %s) = %v, want %v", tt.last, tt.next, got, tt.want)
			}
		})
	}
}

func TestLandingClipHoldsUntilComplete(t *testing.T) {
	mover := &scriptedMover{}
	w := newTestWorld(t, mover)
	player := factory.CreatePlayer(w, 100, 100)
	anim := components.Animation.Get(player)

	tick(w, player, inputFrame{})
	mover.below = true
	tick(w, player, inputFrame{})
	if anim.Current.Name != "grounded" {
		t.Fatalf("clip on landing = %q, want grounded", anim.Current.Name)
	}

	tick(w, player, inputFrame{})
	if anim.Current.Name != "grounded" {
		t.Errorf("idle interrupted the landing clip early")
	}

	for i := 0; i < 64 && anim.Current.Name == "grounded"; i++ {
		tick(w, player, inputFrame{})
	}
	if anim.Current.Name != "idle" {
		t.Errorf("clip after landing = %q, want idle", anim.Current.Name)
	}
}
