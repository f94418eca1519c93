package leveldata

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
)

// LoadCollisionData parses a TMX file and returns its solid tiles, spawn
// points and moving platforms. It takes an fs.FS so callers can pass the
// embedded assets or os.DirFS.
func LoadCollisionData(fsys fs.FS, tmxPath string) (*CollisionData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &CollisionData{
		MapWidth:   levelMap.Width * levelMap.TileWidth,
		MapHeight:  levelMap.Height * levelMap.TileHeight,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
	}

	found := false
	for _, layer := range levelMap.Layers {
		if layer.Name != SolidLayer {
			continue
		}
		found = true
		data.SolidRects, err = solidRects(layer.Tiles, levelMap.Width, levelMap.Height,
			float64(levelMap.TileWidth), float64(levelMap.TileHeight))
		if err != nil {
			return nil, fmt.Errorf("TMX %s layer %q: %w", tmxPath, SolidLayer, err)
		}
		break
	}
	if !found {
		return nil, fmt.Errorf("TMX %s has no %q tile layer", tmxPath, SolidLayer)
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case PlayerSpawnGroup:
			for _, o := range og.Objects {
				data.SpawnPoints = append(data.SpawnPoints, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		case EnemyGroup:
			for _, o := range og.Objects {
				data.EnemySpawns = append(data.EnemySpawns, SpawnPoint{X: o.X, Y: o.Y})
			}
		case FloatingPlatformGrp:
			for _, o := range og.Objects {
				p := FloatingPlatform{
					X:        o.X,
					Y:        o.Y,
					W:        o.Width,
					H:        o.Height,
					Travel:   o.Properties.GetFloat("travel"),
					Duration: o.Properties.GetFloat("duration"),
				}
				if p.Travel == 0 {
					p.Travel = DefaultTravel
				}
				if p.Duration <= 0 {
					p.Duration = DefaultTravelDuration
				}
				data.FloatingPlatforms = append(data.FloatingPlatforms, p)
			}
		}
	}

	sort.SliceStable(data.SpawnPoints, func(i, j int) bool {
		return data.SpawnPoints[i].Index < data.SpawnPoints[j].Index
	})
	sort.SliceStable(data.EnemySpawns, func(i, j int) bool {
		return data.EnemySpawns[i].X < data.EnemySpawns[j].X
	})

	return data, nil
}

// solidRects turns a width x height tile grid into collision rects. Each
// horizontal run of solid tiles becomes one rect.
func solidRects(tiles []*tiled.LayerTile, width, height int, tileW, tileH float64) ([]SolidRect, error) {
	if want := width * height; len(tiles) < want {
		return nil, fmt.Errorf("%d tiles for a %dx%d map, want %d", len(tiles), width, height, want)
	}

	solid := func(x, y int) bool {
		t := tiles[y*width+x]
		return t != nil && !t.IsNil()
	}

	var rects []SolidRect
	for y := 0; y < height; y++ {
		for x := 0; x < width; {
			if !solid(x, y) {
				x++
				continue
			}
			start := x
			for x < width && solid(x, y) {
				x++
			}
			rects = append(rects, SolidRect{
				X: float64(start) * tileW,
				Y: float64(y) * tileH,
				W: float64(x-start) * tileW,
				H: tileH,
			})
		}
	}
	return rects, nil
}
