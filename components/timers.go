package components

import (
	"github.com/automoto/gamex/scheduler"
	"github.com/yohamta/donburi"
)

// TimersData is the singleton simulation clock. Delta is the fixed step used
// by every system this tick.
type TimersData struct {
	Scheduler *scheduler.Scheduler
	Delta     float64
	Frame     int
}

var Timers = donburi.NewComponentType[TimersData]()
