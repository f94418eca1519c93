package factory

import (
	"github.com/automoto/gamex/assets/animations"
	"github.com/automoto/gamex/components"
	cfg "github.com/automoto/gamex/config"
)

// newAnimator builds an animator over a config clip table and starts the
// given clip.
func newAnimator(defs map[string]cfg.ClipDef, first string, loop animations.LoopMode) components.AnimationData {
	clips := make(map[string]animations.Clip, len(defs))
	for name, def := range defs {
		clips[name] = animations.Clip{Frames: def.Frames, FPS: cfg.ClipFPS(defs, name)}
	}

	animator := animations.NewAnimator(clips, cfg.Animation.DefaultFPS)
	animator.Play(first, loop)

	current := components.AnimationInstruction{Name: first, Loop: loop}
	return components.AnimationData{
		Animator: animator,
		Current:  current,
		Last:     current,
	}
}
