package systems

import (
	"testing"

	"github.com/automoto/gamex/components"
	cfg "github.com/automoto/gamex/config"
	"github.com/automoto/gamex/systems/factory"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// testDT is a power of two so accumulated timers hit thresholds exactly.
const testDT = 1.0 / 64

// scriptedMover applies displacements without resolving anything and reports
// whatever contacts the test sets.
type scriptedMover struct {
	below, above, left, right bool
	moves                     []math.Vec2
}

func (m *scriptedMover) Move(d math.Vec2, obj *resolv.Object, s *components.CollisionStateData) {
	s.BeginMove()
	s.Below, s.Above, s.Left, s.Right = m.below, m.above, m.left, m.right
	s.EndMove()

	obj.X += d.X
	obj.Y += d.Y
	obj.Update()
	m.moves = append(m.moves, d)
}

// newTestWorld builds an ECS with every singleton the systems need and an
// empty 512x288 space. Config is reset before and after the test.
func newTestWorld(t *testing.T, mover components.Mover) *ecs.ECS {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	w := ecs.NewECS(donburi.NewWorld())
	factory.CreateTimers(w, testDT)
	factory.CreateInput(w)
	factory.CreateCollaborators(w, mover, SpaceBroadphase{})
	factory.CreateSpace(w, 512, 288, 16, 16)
	return w
}

type inputFrame struct {
	moveX            float64
	jump, dash, fire bool
}

func setControls(e *donburi.Entry, in inputFrame) {
	c := components.Controls.Get(e)
	c.MoveX = in.moveX
	c.Jump = c.Jump.Next(in.jump)
	c.Dash = c.Dash.Next(in.dash)
	c.Fire = c.Fire.Next(in.fire)
}

// tick runs one frame of the player pipeline with the given input.
func tick(w *ecs.ECS, player *donburi.Entry, in inputFrame) {
	setControls(player, in)
	UpdateTimers(w)
	UpdatePlayer(w)
	UpdateAnimations(w)
}

func vec(x, y float64) math.Vec2 {
	return math.Vec2{X: x, Y: y}
}

// framesFor returns how many frames of testDT cover d seconds.
func framesFor(d float64) int {
	n := int(d / testDT)
	if float64(n)*testDT < d {
		n++
	}
	return n
}
