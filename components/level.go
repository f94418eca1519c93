package components

import (
	"github.com/automoto/gamex/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Path string
	Data *leveldata.CollisionData
}

var Level = donburi.NewComponentType[LevelData]()
