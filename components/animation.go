package components

import (
	"github.com/automoto/gamex/assets/animations"
	"github.com/yohamta/donburi"
)

// AnimationInstruction names the clip an actor wants this frame.
type AnimationInstruction struct {
	Name       string
	Loop       animations.LoopMode
	StartFrame int
}

type AnimationData struct {
	Animator *animations.Animator
	Current  AnimationInstruction // accepted instruction, playing now
	Last     AnimationInstruction // instruction Current replaced
}

var Animation = donburi.NewComponentType[AnimationData]()
