// Package leveldata parses TMX levels into plain collision and spawn data.
// It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

// Layer and object group names read from a level.
const (
	SolidLayer          = "main"
	PlayerSpawnGroup    = "PlayerSpawn"
	EnemyGroup          = "Enemies"
	FloatingPlatformGrp = "Platforms"
)

// CollisionData holds everything the simulation needs from a TMX level.
type CollisionData struct {
	SolidRects        []SolidRect
	SpawnPoints       []SpawnPoint
	EnemySpawns       []SpawnPoint
	FloatingPlatforms []FloatingPlatform
	MapWidth          int
	MapHeight         int
	TileWidth         int
	TileHeight        int
}

// SolidRect represents a solid collision tile.
type SolidRect struct {
	X, Y, W, H float64
}

// SpawnPoint is a spawn location in world pixels.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// FloatingPlatform is a solid that travels vertically and back.
type FloatingPlatform struct {
	X, Y, W, H float64
	Travel     float64 // pixels upward, defaults to DefaultTravel
	Duration   float64 // seconds per leg, defaults to DefaultTravelDuration
}

const (
	DefaultTravel         = 64
	DefaultTravelDuration = 2
)

// PlayerSpawn returns the first spawn point, or fallback when the level has none.
func (c *CollisionData) PlayerSpawn(fallbackX, fallbackY float64) SpawnPoint {
	if len(c.SpawnPoints) == 0 {
		return SpawnPoint{X: fallbackX, Y: fallbackY}
	}
	return c.SpawnPoints[0]
}
