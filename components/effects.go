package components

import (
	"image/color"

	"github.com/automoto/gamex/scheduler"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BlinkSource identifies who started a blink.
type BlinkSource int

const (
	BlinkNone BlinkSource = iota
	BlinkCharge
	BlinkProtection
)

// BlinkData is the single blink slot of an actor. Starting a blink always
// stops the timer held here first.
type BlinkData struct {
	Timer  *scheduler.Timer
	Source BlinkSource
	Color  color.RGBA
	On     bool // highlight currently shown
}

// Active reports whether a blink timer is running.
func (b *BlinkData) Active() bool {
	return b.Timer != nil && !b.Timer.Stopped()
}

var Blink = donburi.NewComponentType[BlinkData]()

var Tween = donburi.NewComponentType[gween.Sequence]()
