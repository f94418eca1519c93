package systems

import (
	gomath "math"
	"math/rand"
	"testing"

	"github.com/automoto/gamex/components"
	cfg "github.com/automoto/gamex/config"
	"github.com/automoto/gamex/systems/factory"
)

func TestJumpImpulseIgnoresPriorVelocity(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)
	want := -gomath.Sqrt(2 * cfg.Player.JumpHeight * cfg.Player.Gravity)

	tests := []struct {
		name  string
		prior float64
		slide bool
	}{
		{"at rest", 0, false},
		{"falling fast", 380, false},
		{"already rising", -120, false},
		{"from wall slide", cfg.Player.WallSlideSpeed, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &components.MovementData{CanJump: true, Velocity: vec(0, tt.prior)}
			c := &components.CollisionStateData{Below: !tt.slide, Right: tt.slide}
			if tt.slide {
				m.SetVertical(components.VerticalWallSliding)
			}
			controls := &components.ControlsData{}
			controls.Jump = controls.Jump.Next(true)

			handleJump(movementFrame{controls: controls, movement: m, collision: c, dt: testDT})

			if m.Velocity.Y != want {
				t.Errorf("Velocity.Y = %v, want %v", m.Velocity.Y, want)
			}
			if m.CanJump {
				t.Error("CanJump should be consumed by the jump")
			}
			if !m.Jumping() {
				t.Error("expected jumping")
			}
			if m.WallJumping() != tt.slide {
				t.Errorf("WallJumping = %v, want %v", m.WallJumping(), tt.slide)
			}
		})
	}
}

func TestShortHopOnRelease(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	m := &components.MovementData{Velocity: vec(0, -200)}
	m.SetVertical(components.VerticalJumping)
	controls := &components.ControlsData{Jump: components.ActionState{JustReleased: true}}

	handleJump(movementFrame{controls: controls, movement: m, collision: &components.CollisionStateData{}, dt: testDT})

	if m.Velocity.Y != 0 {
		t.Errorf("Velocity.Y = %v, want 0", m.Velocity.Y)
	}
	if m.Jumping() {
		t.Error("release should end the jump")
	}
}

func TestCanJumpOnlyRestoredOnLanding(t *testing.T) {
	mover := &scriptedMover{}
	w := newTestWorld(t, mover)
	player := factory.CreatePlayer(w, 100, 100)
	m := components.Movement.Get(player)
	c := components.CollisionState.Get(player)

	script := []struct {
		below bool
		jump  bool
	}{
		{false, false}, {false, false}, {true, false}, {true, false},
		{true, true}, {false, true}, {false, false}, {true, false},
		{true, false}, {false, false}, {true, true},
	}

	prevCanJump := m.CanJump
	for i, s := range script {
		mover.below = s.below
		tick(w, player, inputFrame{jump: s.jump})

		if m.CanJump && !prevCanJump && !c.BecameGroundedThisFrame {
			t.Fatalf("frame %d: CanJump restored without landing", i)
		}
		if c.BecameGroundedThisFrame && !m.CanJump && !components.Controls.Get(player).Jump.JustPressed {
			t.Fatalf("frame %d: landing did not restore CanJump", i)
		}
		prevCanJump = m.CanJump
	}

	// Jumping from the ground consumes CanJump on the same frame
	mover.below = true
	tick(w, player, inputFrame{})
	mover.below = true
	tick(w, player, inputFrame{jump: true})
	if m.CanJump {
		t.Error("jump should consume CanJump on the frame it fires")
	}
}

func TestAirDashScenario(t *testing.T) {
	mover := &scriptedMover{}
	w := newTestWorld(t, mover)
	player := factory.CreatePlayer(w, 100, 100)
	m := components.Movement.Get(player)
	m.CanAirDash = true
	m.Velocity = vec(0, 150)

	tick(w, player, inputFrame{dash: true})

	if !m.AirDashing() {
		t.Fatal("expected air dash after pressing dash in the air")
	}
	if m.Velocity.X != cfg.Player.DashSpeed {
		t.Errorf("Velocity.X = %v, want %v", m.Velocity.X, cfg.Player.DashSpeed)
	}
	if m.Velocity.Y != 0 {
		t.Errorf("Velocity.Y = %v, want 0", m.Velocity.Y)
	}

	limit := framesFor(cfg.Player.MaxAirDashTime) + 1
	frames := 1
	for m.AirDashing() && frames <= limit {
		tick(w, player, inputFrame{dash: true})
		frames++
	}
	if m.AirDashing() {
		t.Fatalf("air dash still running after %d frames", frames)
	}
	if elapsed := float64(frames) * testDT; elapsed < cfg.Player.MaxAirDashTime {
		t.Errorf("air dash ended after %.3fs, before max %.3fs", elapsed, cfg.Player.MaxAirDashTime)
	}
	if m.CanAirDash {
		t.Error("CanAirDash should be spent until grounded")
	}

	// A second press in the air does nothing
	tick(w, player, inputFrame{})
	tick(w, player, inputFrame{dash: true})
	if m.AirDashing() {
		t.Error("air dash restarted without landing")
	}

	mover.below = true
	tick(w, player, inputFrame{})
	if !m.CanAirDash {
		t.Error("landing should restore CanAirDash")
	}
}

func TestGroundDash(t *testing.T) {
	mover := &scriptedMover{below: true}
	w := newTestWorld(t, mover)
	player := factory.CreatePlayer(w, 100, 100)
	m := components.Movement.Get(player)

	tick(w, player, inputFrame{})
	tick(w, player, inputFrame{dash: true})
	if !m.GroundDashing() {
		t.Fatal("expected ground dash")
	}
	if m.Velocity.X != cfg.Player.DashSpeed {
		t.Errorf("Velocity.X = %v, want %v", m.Velocity.X, cfg.Player.DashSpeed)
	}

	t.Run("release ends it", func(t *testing.T) {
		tick(w, player, inputFrame{})
		if m.GroundDashing() {
			t.Error("ground dash survived release")
		}
		if m.GroundDashTime != 0 {
			t.Errorf("GroundDashTime = %v, want reset", m.GroundDashTime)
		}
	})

	t.Run("timeout ends it", func(t *testing.T) {
		tick(w, player, inputFrame{dash: true})
		for i := 0; i < framesFor(cfg.Player.MaxGroundDashTime)+1; i++ {
			tick(w, player, inputFrame{dash: true})
		}
		if m.GroundDashing() {
			t.Error("ground dash outlived MaxGroundDashTime")
		}
	})

	t.Run("reversing input ends it", func(t *testing.T) {
		tick(w, player, inputFrame{})
		tick(w, player, inputFrame{dash: true})
		tick(w, player, inputFrame{dash: true, moveX: -1})
		if m.GroundDashing() {
			t.Error("ground dash survived reversing input")
		}
		if m.Velocity.X != -cfg.Player.MoveSpeed {
			t.Errorf("Velocity.X = %v, want %v", m.Velocity.X, -cfg.Player.MoveSpeed)
		}
	})
}

func TestWallSlideAndWallJump(t *testing.T) {
	mover := &scriptedMover{right: true}
	w := newTestWorld(t, mover)
	player := factory.CreatePlayer(w, 100, 100)
	m := components.Movement.Get(player)

	// Falling against a wall on the right
	tick(w, player, inputFrame{moveX: 1})
	tick(w, player, inputFrame{moveX: 1})
	if !m.WallSliding() {
		t.Fatalf("expected wall slide, mode %s", PlayerState(player))
	}
	if m.Velocity.Y != cfg.Player.WallSlideSpeed {
		t.Errorf("Velocity.Y = %v, want %v", m.Velocity.Y, cfg.Player.WallSlideSpeed)
	}

	tick(w, player, inputFrame{moveX: 1, jump: true})
	if !m.WallJumping() {
		t.Fatalf("expected wall jump, mode %s", PlayerState(player))
	}
	if m.Velocity.Y >= 0 {
		t.Errorf("Velocity.Y = %v, want upward", m.Velocity.Y)
	}

	mover.right = false
	tick(w, player, inputFrame{moveX: 1, jump: true})
	want := -cfg.Player.MoveSpeed * cfg.Player.WallJumpMultiplier
	if m.Velocity.X != want {
		t.Errorf("Velocity.X in wall jump window = %v, want %v", m.Velocity.X, want)
	}

	for i := 0; i < framesFor(cfg.Player.WallJumpTimeWindow)+1; i++ {
		tick(w, player, inputFrame{moveX: 1, jump: true})
	}
	if m.Velocity.X != cfg.Player.MoveSpeed {
		t.Errorf("Velocity.X after window = %v, want %v", m.Velocity.X, cfg.Player.MoveSpeed)
	}
}

func TestDashJump(t *testing.T) {
	mover := &scriptedMover{below: true}
	w := newTestWorld(t, mover)
	player := factory.CreatePlayer(w, 100, 100)
	m := components.Movement.Get(player)

	tick(w, player, inputFrame{})
	tick(w, player, inputFrame{dash: true, moveX: 1})
	mover.below = false
	tick(w, player, inputFrame{dash: true, moveX: 1, jump: true})
	if !m.DashJumping {
		t.Fatalf("expected dash jump, mode %s", PlayerState(player))
	}
	if m.Velocity.X != cfg.Player.DashSpeed {
		t.Errorf("Velocity.X = %v, want %v", m.Velocity.X, cfg.Player.DashSpeed)
	}

	// Side contact inside the grace period keeps the dash jump
	mover.right = true
	tick(w, player, inputFrame{moveX: 1, jump: true})
	if !m.DashJumping {
		t.Fatal("dash jump cancelled inside the wall grace period")
	}

	for i := 0; i < framesFor(cfg.Player.DashJumpWallGrace)+1 && m.DashJumping; i++ {
		tick(w, player, inputFrame{moveX: 1, jump: true})
	}
	if m.DashJumping {
		t.Error("dash jump survived wall contact after the grace period")
	}
}

func TestKnockbackOverridesInput(t *testing.T) {
	mover := &scriptedMover{}
	w := newTestWorld(t, mover)
	player := factory.CreatePlayer(w, 100, 100)
	m := components.Movement.Get(player)
	d := components.Damage.Get(player)
	d.Phase = components.DamageLocked
	d.DamagedThisFrame = true

	f := movementFrame{
		controls:  &components.ControlsData{MoveX: 1},
		movement:  m,
		collision: components.CollisionState.Get(player),
		damage:    d,
		collider:  components.Object.Get(player).Object,
		mover:     mover,
		dt:        testDT,
	}
	handleMovement(f)

	if m.Velocity.X != -cfg.Damage.ImpulseX {
		t.Errorf("Velocity.X = %v, want %v", m.Velocity.X, -cfg.Damage.ImpulseX)
	}
	if m.Velocity.Y != cfg.Damage.ImpulseY {
		t.Errorf("Velocity.Y = %v, want %v", m.Velocity.Y, cfg.Damage.ImpulseY)
	}

	d.DamagedThisFrame = false
	handleMovement(f)
	want := cfg.Damage.ImpulseY + cfg.Player.Gravity*testDT
	if m.Velocity.Y != want {
		t.Errorf("Velocity.Y after impulse frame = %v, want %v", m.Velocity.Y, want)
	}
}

func TestMovementModesStayConsistent(t *testing.T) {
	mover := &scriptedMover{}
	w := newTestWorld(t, mover)
	player := factory.CreatePlayer(w, 100, 100)
	m := components.Movement.Get(player)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 5000; i++ {
		mover.below = rng.Intn(3) == 0
		mover.left = rng.Intn(5) == 0
		mover.right = !mover.left && rng.Intn(5) == 0
		mover.above = rng.Intn(10) == 0
		tick(w, player, inputFrame{
			moveX: float64(rng.Intn(3) - 1),
			jump:  rng.Intn(2) == 0,
			dash:  rng.Intn(2) == 0,
			fire:  rng.Intn(4) == 0,
		})

		if m.GroundDashing() && m.AirDashing() {
			t.Fatalf("frame %d: ground and air dash at once", i)
		}
		if m.WallSliding() && m.Jumping() {
			t.Fatalf("frame %d: wall sliding while jumping", i)
		}
		if m.GroundDashTime != 0 && !m.GroundDashing() {
			t.Fatalf("frame %d: ground dash timer left running", i)
		}
		if m.AirDashTime != 0 && !m.AirDashing() {
			t.Fatalf("frame %d: air dash timer left running", i)
		}
		if m.Velocity.Y > cfg.Player.TerminalVelocity {
			t.Fatalf("frame %d: Velocity.Y %v above terminal velocity", i, m.Velocity.Y)
		}
	}
}
