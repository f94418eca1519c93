package components

import "github.com/yohamta/donburi"

// PlayerData holds per-player bookkeeping outside the movement, weapon and
// damage state.
type PlayerData struct {
	SpawnX, SpawnY float64
}

var Player = donburi.NewComponentType[PlayerData]()
