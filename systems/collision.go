package systems

import (
	"github.com/automoto/gamex/components"
	"github.com/automoto/gamex/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/features/math"
)

// groundReach is how far below the collider ground is searched for when not
// moving down, so standing still still reports Below.
const groundReach = 1.0

// SpaceMover resolves displacements against solid objects in a resolv space,
// one axis at a time.
type SpaceMover struct {
	SolidTag string
}

func NewSpaceMover() *SpaceMover {
	return &SpaceMover{SolidTag: tags.ResolvSolid}
}

func (m *SpaceMover) Move(displacement math.Vec2, obj *resolv.Object, state *components.CollisionStateData) {
	state.BeginMove()
	m.moveHorizontal(displacement.X, obj, state)
	m.moveVertical(displacement.Y, obj, state)
	state.EndMove()
	obj.Update()
}

func (m *SpaceMover) moveHorizontal(dx float64, obj *resolv.Object, state *components.CollisionStateData) {
	if dx == 0 {
		return
	}

	check := obj.Check(dx, 0, m.SolidTag)
	if check == nil {
		obj.X += dx
		return
	}

	hit := false
	for _, solid := range check.ObjectsByTags(m.SolidTag) {
		if !overlapsVertically(obj, solid) || !aheadHorizontally(obj, solid, dx) {
			continue
		}
		contact := check.ContactWithObject(solid).X()
		if dx > 0 && contact < dx {
			dx = contact
			hit = true
		} else if dx < 0 && contact > dx {
			dx = contact
			hit = true
		}
	}

	if hit {
		if dx >= 0 {
			state.Right = true
		} else {
			state.Left = true
		}
	}
	obj.X += dx
}

func (m *SpaceMover) moveVertical(dy float64, obj *resolv.Object, state *components.CollisionStateData) {
	checkDistance := dy
	if dy >= 0 {
		checkDistance += groundReach
	}

	check := obj.Check(0, checkDistance, m.SolidTag)
	if check == nil {
		obj.Y += dy
		return
	}

	for _, solid := range check.ObjectsByTags(m.SolidTag) {
		if !overlapsHorizontally(obj, solid) || !aheadVertically(obj, solid, checkDistance) {
			continue
		}
		contact := check.ContactWithObject(solid).Y()
		if checkDistance >= 0 && contact <= dy {
			dy = contact
			state.Below = true
		} else if checkDistance < 0 && contact >= dy {
			dy = contact
			state.Above = true
		}
	}
	obj.Y += dy
}

func overlapsVertically(a, b *resolv.Object) bool {
	return a.Y+a.H > b.Y && a.Y < b.Y+b.H
}

func overlapsHorizontally(a, b *resolv.Object) bool {
	return a.X+a.W > b.X && a.X < b.X+b.W
}

// aheadHorizontally reports whether b lies in the direction of travel from a.
func aheadHorizontally(a, b *resolv.Object, dx float64) bool {
	ac, bc := a.X+a.W/2, b.X+b.W/2
	if dx > 0 {
		return bc > ac
	}
	return bc < ac
}

func aheadVertically(a, b *resolv.Object, dy float64) bool {
	ac, bc := a.Y+a.H/2, b.Y+b.H/2
	if dy >= 0 {
		return bc > ac
	}
	return bc < ac
}

// SpaceBroadphase answers overlap queries from the resolv space. Objects on a
// layer carry the layer name as a tag.
type SpaceBroadphase struct{}

func (SpaceBroadphase) Query(collider *resolv.Object, layer string) []*resolv.Object {
	check := collider.Check(0, 0, layer)
	if check == nil {
		return nil
	}

	var hits []*resolv.Object
	for _, other := range check.ObjectsByTags(layer) {
		if other == collider {
			continue
		}
		if overlapsVertically(collider, other) && overlapsHorizontally(collider, other) {
			hits = append(hits, other)
		}
	}
	return hits
}
