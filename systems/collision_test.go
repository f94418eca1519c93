package systems

import (
	"testing"

	"github.com/automoto/gamex/components"
	"github.com/automoto/gamex/tags"
	"github.com/solarlune/resolv"
)

func newSpaceWithFloor() *resolv.Space {
	space := resolv.NewSpace(512, 288, 16, 16)
	floor := resolv.NewObject(0, 200, 512, 16, tags.ResolvSolid)
	wall := resolv.NewObject(300, 0, 16, 200, tags.ResolvSolid)
	space.Add(floor, wall)
	return space
}

func newBody(space *resolv.Space, x, y float64, tag string) *resolv.Object {
	obj := resolv.NewObject(x, y, 16, 32, tag)
	space.Add(obj)
	return obj
}

func TestSpaceMover(t *testing.T) {
	tests := []struct {
		name      string
		x, y      float64
		dx, dy    float64
		wantX     float64
		wantY     float64
		wantBelow bool
		wantRight bool
		wantLeft  bool
		wantAbove bool
	}{
		{name: "free fall", x: 100, y: 100, dy: 5, wantX: 100, wantY: 105},
		{name: "lands on floor", x: 100, y: 160, dy: 20, wantX: 100, wantY: 168, wantBelow: true},
		{name: "standing still reports ground", x: 100, y: 168, wantX: 100, wantY: 168, wantBelow: true},
		{name: "blocked by wall", x: 280, y: 100, dx: 10, wantX: 284, wantY: 100, wantRight: true},
		{name: "walks away from wall", x: 284, y: 100, dx: -10, wantX: 274, wantY: 100},
		{name: "runs along floor", x: 100, y: 168, dx: 4, wantX: 104, wantY: 168, wantBelow: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			space := newSpaceWithFloor()
			obj := newBody(space, tt.x, tt.y, tags.ResolvPlayer)
			state := &components.CollisionStateData{}

			NewSpaceMover().Move(vec(tt.dx, tt.dy), obj, state)

			if obj.X != tt.wantX || obj.Y != tt.wantY {
				t.Errorf("position = (%v, %v), want (%v, %v)", obj.X, obj.Y, tt.wantX, tt.wantY)
			}
			if state.Below != tt.wantBelow || state.Right != tt.wantRight || state.Left != tt.wantLeft || state.Above != tt.wantAbove {
				t.Errorf("contacts = %+v", *state)
			}
			if state.BecameGroundedThisFrame != tt.wantBelow {
				t.Errorf("BecameGroundedThisFrame = %v, want %v", state.BecameGroundedThisFrame, tt.wantBelow)
			}
		})
	}
}

func TestSpaceMoverGroundedTransition(t *testing.T) {
	space := newSpaceWithFloor()
	obj := newBody(space, 100, 160, tags.ResolvPlayer)
	state := &components.CollisionStateData{}
	mover := NewSpaceMover()

	mover.Move(vec(0, 20), obj, state)
	if !state.BecameGroundedThisFrame {
		t.Fatal("first landing should report the transition")
	}

	mover.Move(vec(0, 1), obj, state)
	if !state.Below || state.BecameGroundedThisFrame {
		t.Errorf("second grounded frame: Below %v, BecameGrounded %v", state.Below, state.BecameGroundedThisFrame)
	}
	if !state.WasGroundedLastFrame {
		t.Error("WasGroundedLastFrame should carry the previous contact")
	}
}

func TestSpaceBroadphase(t *testing.T) {
	space := newSpaceWithFloor()
	player := newBody(space, 100, 100, tags.ResolvPlayer)
	enemy := resolv.NewObject(110, 110, 32, 32, tags.ResolvEnemy)
	farEnemy := resolv.NewObject(400, 100, 32, 32, tags.ResolvEnemy)
	touching := resolv.NewObject(116, 100, 8, 8, tags.ResolvEnemy)
	space.Add(enemy, farEnemy, touching)

	hits := SpaceBroadphase{}.Query(player, tags.ResolvEnemy)
	if len(hits) != 1 || hits[0] != enemy {
		t.Errorf("Query(enemy) = %d objects, want only the overlapping enemy", len(hits))
	}

	if hits := (SpaceBroadphase{}).Query(player, tags.ResolvPlayer); len(hits) != 0 {
		t.Error("a collider must not report itself")
	}
	if hits := (SpaceBroadphase{}).Query(player, tags.ResolvSolid); len(hits) != 0 {
		t.Errorf("Query(solid) = %d objects, want none", len(hits))
	}
}
