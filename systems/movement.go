package systems

import (
	"log"

	"github.com/automoto/gamex/components"
	cfg "github.com/automoto/gamex/config"
	"github.com/automoto/gamex/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/features/math"
)

// movementFrame bundles the state one movement step reads and writes.
type movementFrame struct {
	controls  *components.ControlsData
	movement  *components.MovementData
	collision *components.CollisionStateData
	damage    *components.DamageData
	collider  *resolv.Object
	mover     components.Mover
	dt        float64
}

// handleMovement advances the movement state machine by one frame. The rule
// order below is fixed: later rules see the results of earlier ones.
func handleMovement(f movementFrame) {
	m, c := f.movement, f.collision

	if !f.damage.Locked() {
		handleDash(f)
		handleHorizontal(f)
		handleJump(f)
		handleWallSlide(f)

		if !m.AirDashing() && !m.WallSliding() {
			m.Velocity.Y = gamemath.ApplyGravity(m.Velocity.Y, cfg.Player.Gravity, cfg.Player.TerminalVelocity, f.dt)
		}
	} else {
		handleKnockback(f)
	}

	f.mover.Move(math.Vec2{X: m.Velocity.X * f.dt, Y: m.Velocity.Y * f.dt}, f.collider, c)

	resolveContacts(f)
}

func handleDash(f movementFrame) {
	m, c, dash := f.movement, f.collision, f.controls.Dash

	// Ground dash start, also from a wall slide
	if (c.Below || m.WallSliding()) && (dash.JustPressed || m.GroundDashing()) {
		if setDash(m, components.DashGround) {
			m.Velocity.X = gamemath.Facing(m.FacingRight) * cfg.Player.DashSpeed
			m.GroundDashTime += f.dt
		}
	}

	// Air dash start
	if !c.Below && !m.WallSliding() && m.CanAirDash && (dash.JustPressed || m.AirDashing()) {
		if setDash(m, components.DashAir) {
			if dash.JustPressed {
				m.Velocity.X = gamemath.Facing(m.FacingRight) * cfg.Player.DashSpeed
			}
			m.AirDashTime += f.dt
			m.Velocity.Y = 0
		}
	}

	// Ground dash ends on release or timeout while grounded
	if c.Below && m.GroundDashing() && (!dash.Pressed || m.GroundDashTime >= cfg.Player.MaxGroundDashTime) {
		setDash(m, components.DashNone)
	}

	// Ground dash ends when free falling
	if !c.HasSideContact() && !c.Below && m.GroundDashing() {
		setDash(m, components.DashNone)
	}

	// Air dash ends on timeout and is spent until the next landing
	if !c.Below && m.AirDashing() && m.AirDashTime >= cfg.Player.MaxAirDashTime {
		setDash(m, components.DashNone)
		m.CanAirDash = false
	}

	if c.Below && m.AirDashing() {
		setDash(m, components.DashNone)
	}
}

func handleHorizontal(f movementFrame) {
	m, c, moveX := f.movement, f.collision, f.controls.MoveX

	if moveX == 0 {
		if !m.Dashing() {
			m.Velocity.X = 0
		}
		if m.GroundDashing() && !c.Below {
			m.Velocity.X = 0
			setDash(m, components.DashNone)
		}
		return
	}

	// Facing is frozen for the length of an air dash
	if !m.AirDashing() {
		m.FacingRight = moveX > 0
	}

	if !m.AirDashing() && c.Below && gamemath.Sign(m.Velocity.X) != gamemath.Sign(moveX) && m.GroundDashing() {
		setDash(m, components.DashNone)
	}

	if m.DashJumping {
		m.Velocity.X = gamemath.Facing(m.FacingRight) * cfg.Player.DashSpeed
		m.DashJumpTime += f.dt
	}

	if !m.Dashing() && !m.DashJumping {
		m.Velocity.X = gamemath.Facing(m.FacingRight) * cfg.Player.MoveSpeed
	}

	// Push away from the wall for a short window after a wall jump
	if m.WallJumping() && m.WallJumpTime < cfg.Player.WallJumpTimeWindow {
		m.Velocity.X *= -cfg.Player.WallJumpMultiplier
	}
}

func handleJump(f movementFrame) {
	m, c, jump := f.movement, f.collision, f.controls.Jump

	if ((m.CanJump && c.Below) || m.WallSliding()) && !m.Jumping() && jump.JustPressed {
		next := components.VerticalJumping
		if m.WallSliding() {
			next = components.VerticalWallJumping
		}
		if setVertical(m, next) {
			m.Velocity.Y = gamemath.JumpImpulse(cfg.Player.JumpHeight, cfg.Player.Gravity)
			m.CanJump = false
			if m.Velocity.X == cfg.Player.DashSpeed || m.Velocity.X == -cfg.Player.DashSpeed {
				m.SetDashJumping(true)
			}
		}
	}

	if m.WallJumping() {
		m.WallJumpTime += f.dt
	}

	// Short hop on release
	if m.Jumping() && jump.JustReleased {
		if m.Velocity.Y < 0 {
			m.Velocity.Y = 0
		}
		setVertical(m, components.VerticalFree)
	}
}

func handleWallSlide(f movementFrame) {
	m, c := f.movement, f.collision

	if !m.Jumping() && !c.Below && m.Velocity.Y > 0 && c.HasSideContact() {
		if setVertical(m, components.VerticalWallSliding) {
			m.Velocity.Y = cfg.Player.WallSlideSpeed
		}
		return
	}
	if m.WallSliding() {
		setVertical(m, components.VerticalFree)
	}
}

// handleKnockback replaces input while damage locked: pushed away from the
// facing direction, launched upward on the first locked frame only.
func handleKnockback(f movementFrame) {
	m := f.movement
	m.Velocity.X = -gamemath.Facing(m.FacingRight) * cfg.Damage.ImpulseX
	if f.damage.DamagedThisFrame {
		m.Velocity.Y = cfg.Damage.ImpulseY
		return
	}
	m.Velocity.Y = gamemath.ApplyGravity(m.Velocity.Y, cfg.Player.Gravity, cfg.Player.TerminalVelocity, f.dt)
}

func resolveContacts(f movementFrame) {
	m, c := f.movement, f.collision

	if c.Below || c.Above {
		m.Velocity.Y = 0
		if m.Jumping() {
			setVertical(m, components.VerticalFree)
		}
	}

	if c.BecameGroundedThisFrame {
		m.CanJump = true
	}

	if c.Below {
		m.CanAirDash = true
		m.SetDashJumping(false)
	}

	// A dash jump that reaches a wall after the grace period is over
	if m.DashJumping && m.DashJumpTime > cfg.Player.DashJumpWallGrace && c.HasSideContact() {
		m.SetDashJumping(false)
		if m.GroundDashing() {
			setDash(m, components.DashNone)
		}
	}
}

func setDash(m *components.MovementData, next components.DashMode) bool {
	if m.SetDash(next) {
		return true
	}
	log.Printf("[movement] refused dash transition %s -> %s", m.Dash, next)
	return false
}

func setVertical(m *components.MovementData, next components.VerticalMode) bool {
	if m.SetVertical(next) {
		return true
	}
	log.Printf("[movement] refused vertical transition %s -> %s", m.Vertical, next)
	return false
}
