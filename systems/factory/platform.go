package factory

import (
	"github.com/automoto/gamex/archetypes"
	"github.com/automoto/gamex/components"
	"github.com/automoto/gamex/shared/leveldata"
	"github.com/automoto/gamex/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFloatingPlatform creates a solid that rises by p.Travel and comes back down.
func CreateFloatingPlatform(ecs *ecs.ECS, p leveldata.FloatingPlatform) *donburi.Entry {
	platform := archetypes.FloatingPlatform.Spawn(ecs)

	obj := resolv.NewObject(p.X, p.Y, p.W, p.H, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, p.W, p.H))
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	top := float32(p.Y - p.Travel)
	duration := float32(p.Duration)
	tw := gween.NewSequence()
	tw.Add(
		gween.New(float32(p.Y), top, duration, ease.InOutSine),
		gween.New(top, float32(p.Y), duration, ease.InOutSine),
	)
	components.Tween.Set(platform, tw)

	return platform
}
