package factory

import (
	"fmt"
	"io/fs"

	"github.com/automoto/gamex/archetypes"
	"github.com/automoto/gamex/components"
	cfg "github.com/automoto/gamex/config"
	"github.com/automoto/gamex/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel loads a TMX level and populates the world with its space,
// solids, moving platforms, enemies and the player. It returns the player.
func CreateLevel(ecs *ecs.ECS, fsys fs.FS, path string) (*donburi.Entry, error) {
	data, err := leveldata.LoadCollisionData(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("create level: %w", err)
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{Path: path, Data: data})

	cellW, cellH := data.TileWidth, data.TileHeight
	if cellW <= 0 || cellH <= 0 {
		cellW, cellH = 16, 16
	}
	CreateSpace(ecs, data.MapWidth, data.MapHeight, cellW, cellH)

	for _, r := range data.SolidRects {
		CreateWall(ecs, r.X, r.Y, r.W, r.H)
	}
	for _, p := range data.FloatingPlatforms {
		CreateFloatingPlatform(ecs, p)
	}
	for _, s := range data.EnemySpawns {
		CreateEnemy(ecs, s.X, s.Y)
	}

	spawn := data.PlayerSpawn(cfg.Player.SpawnX, cfg.Player.SpawnY)
	return CreatePlayer(ecs, spawn.X, spawn.Y), nil
}
