package components

import (
	"slices"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// DashMode is the dash sub-state. Only one dash can run at a time.
type DashMode int

const (
	DashNone DashMode = iota
	DashGround
	DashAir
)

func (d DashMode) String() string {
	switch d {
	case DashNone:
		return "none"
	case DashGround:
		return "ground"
	case DashAir:
		return "air"
	}
	return "unknown"
}

// VerticalMode is the jump/wall sub-state. A wall jump is a jump, and a wall
// slide never overlaps a jump.
type VerticalMode int

const (
	VerticalFree VerticalMode = iota
	VerticalJumping
	VerticalWallJumping
	VerticalWallSliding
)

func (v VerticalMode) String() string {
	switch v {
	case VerticalFree:
		return "free"
	case VerticalJumping:
		return "jumping"
	case VerticalWallJumping:
		return "wall_jumping"
	case VerticalWallSliding:
		return "wall_sliding"
	}
	return "unknown"
}

// A dash pressed on the landing frame of an air dash becomes a ground dash.
var dashTransitions = map[DashMode][]DashMode{
	DashNone:   {DashGround, DashAir},
	DashGround: {DashNone, DashAir},
	DashAir:    {DashNone, DashGround},
}

var verticalTransitions = map[VerticalMode][]VerticalMode{
	VerticalFree:        {VerticalJumping, VerticalWallSliding},
	VerticalJumping:     {VerticalFree},
	VerticalWallJumping: {VerticalFree},
	VerticalWallSliding: {VerticalFree, VerticalWallJumping},
}

// MovementMode is the single state reported for an actor, derived from the
// sub-states with the highest priority first.
type MovementMode int

const (
	ModeGrounded MovementMode = iota
	ModeAirborne
	ModeJumping
	ModeWallSliding
	ModeGroundDashing
	ModeAirDashing
	ModeDashJumping
	ModeWallJumping
	ModeDamageLocked
)

func (m MovementMode) String() string {
	switch m {
	case ModeGrounded:
		return "grounded"
	case ModeAirborne:
		return "airborne"
	case ModeJumping:
		return "jumping"
	case ModeWallSliding:
		return "wall_sliding"
	case ModeGroundDashing:
		return "ground_dashing"
	case ModeAirDashing:
		return "air_dashing"
	case ModeDashJumping:
		return "dash_jumping"
	case ModeWallJumping:
		return "wall_jumping"
	case ModeDamageLocked:
		return "damage_locked"
	}
	return "unknown"
}

// MovementData is the player controller's movement state. Each timer belongs
// to one sub-state and is zeroed when that state is entered or left.
type MovementData struct {
	Velocity    math.Vec2
	FacingRight bool
	CanJump     bool
	CanAirDash  bool

	Dash           DashMode
	GroundDashTime float64
	AirDashTime    float64

	Vertical     VerticalMode
	WallJumpTime float64

	DashJumping  bool
	DashJumpTime float64
}

func (m *MovementData) GroundDashing() bool { return m.Dash == DashGround }
func (m *MovementData) AirDashing() bool    { return m.Dash == DashAir }
func (m *MovementData) Dashing() bool       { return m.Dash != DashNone }

// Jumping is true for both regular and wall jumps.
func (m *MovementData) Jumping() bool {
	return m.Vertical == VerticalJumping || m.Vertical == VerticalWallJumping
}

func (m *MovementData) WallJumping() bool { return m.Vertical == VerticalWallJumping }
func (m *MovementData) WallSliding() bool { return m.Vertical == VerticalWallSliding }

// SetDash moves to another dash mode. It returns false and leaves the state
// untouched when the transition table does not allow the move.
func (m *MovementData) SetDash(next DashMode) bool {
	if m.Dash == next {
		return true
	}
	if !slices.Contains(dashTransitions[m.Dash], next) {
		return false
	}
	m.resetDashTimer(m.Dash)
	m.Dash = next
	m.resetDashTimer(next)
	return true
}

func (m *MovementData) resetDashTimer(d DashMode) {
	switch d {
	case DashGround:
		m.GroundDashTime = 0
	case DashAir:
		m.AirDashTime = 0
	}
}

// SetVertical moves to another vertical mode under the same rules as SetDash.
func (m *MovementData) SetVertical(next VerticalMode) bool {
	if m.Vertical == next {
		return true
	}
	if !slices.Contains(verticalTransitions[m.Vertical], next) {
		return false
	}
	if m.Vertical == VerticalWallJumping || next == VerticalWallJumping {
		m.WallJumpTime = 0
	}
	m.Vertical = next
	return true
}

// SetDashJumping starts or ends the dash jump and its wall grace timer.
func (m *MovementData) SetDashJumping(on bool) {
	if m.DashJumping != on {
		m.DashJumpTime = 0
	}
	m.DashJumping = on
}

// Mode reports the highest priority state the actor is in.
func (m *MovementData) Mode(damageLocked, grounded bool) MovementMode {
	switch {
	case damageLocked:
		return ModeDamageLocked
	case m.Dash == DashAir:
		return ModeAirDashing
	case m.Dash == DashGround:
		return ModeGroundDashing
	case m.Vertical == VerticalWallSliding:
		return ModeWallSliding
	case m.Vertical == VerticalWallJumping:
		return ModeWallJumping
	case m.DashJumping:
		return ModeDashJumping
	case m.Vertical == VerticalJumping:
		return ModeJumping
	case grounded:
		return ModeGrounded
	}
	return ModeAirborne
}

var Movement = donburi.NewComponentType[MovementData]()
