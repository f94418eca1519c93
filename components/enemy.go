package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type EnemyData struct {
	Velocity math.Vec2
}

var Enemy = donburi.NewComponentType[EnemyData]()
