package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CollisionStateData holds the contact flags of the last Move call. Only a
// Mover writes it.
type CollisionStateData struct {
	Below bool
	Above bool
	Left  bool
	Right bool

	WasGroundedLastFrame    bool
	BecameGroundedThisFrame bool
}

// HasSideContact reports a wall on either side.
func (c *CollisionStateData) HasSideContact() bool {
	return c.Left || c.Right
}

// BeginMove clears contacts and records the previous grounded flag.
func (c *CollisionStateData) BeginMove() {
	c.WasGroundedLastFrame = c.Below
	c.Below, c.Above, c.Left, c.Right = false, false, false, false
	c.BecameGroundedThisFrame = false
}

// EndMove derives the grounded transition from the new contacts.
func (c *CollisionStateData) EndMove() {
	c.BecameGroundedThisFrame = c.Below && !c.WasGroundedLastFrame
}

var CollisionState = donburi.NewComponentType[CollisionStateData]()

// Mover resolves a displacement against level geometry, moves the collider and
// writes the resulting contacts into state.
type Mover interface {
	Move(displacement math.Vec2, collider *resolv.Object, state *CollisionStateData)
}

// Broadphase returns the colliders on layer overlapping collider, never the
// collider itself.
type Broadphase interface {
	Query(collider *resolv.Object, layer string) []*resolv.Object
}

// CollaboratorsData is the singleton holding the collision services systems use.
type CollaboratorsData struct {
	Mover      Mover
	Broadphase Broadphase
}

var Collaborators = donburi.NewComponentType[CollaboratorsData]()
