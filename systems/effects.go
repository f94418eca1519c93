package systems

import (
	"image/color"

	"github.com/automoto/gamex/components"
	"github.com/automoto/gamex/scheduler"
	"github.com/yohamta/donburi"
)

// startBlink toggles the entry's highlight at rate times per second. Any
// blink already running on the entry is stopped first.
func startBlink(sched *scheduler.Scheduler, entry *donburi.Entry, source components.BlinkSource, c color.RGBA, rate float64) {
	b := components.Blink.Get(entry)
	stopBlink(b)
	if rate <= 0 {
		return
	}
	b.Source = source
	b.Color = c
	b.Timer = sched.Schedule(1/rate, true, entry, toggleBlink)
}

func toggleBlink(t *scheduler.Timer) {
	entry, ok := scheduler.ContextAs[*donburi.Entry](t)
	if !ok || !entry.Valid() {
		t.Stop()
		return
	}
	b := components.Blink.Get(entry)
	if b.Timer != t {
		t.Stop()
		return
	}
	b.On = !b.On
}

// stopBlink cancels the running blink and restores the default look.
func stopBlink(b *components.BlinkData) {
	b.Timer.Stop()
	b.Timer = nil
	b.Source = components.BlinkNone
	b.On = false
}
