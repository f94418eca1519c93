package assets

import (
	"embed"
	"io/fs"
)

var (
	//go:embed all:levels
	levelFS embed.FS

	//go:embed tuning.yaml
	DefaultTuning []byte
)

// Levels returns the embedded level files rooted at the assets directory, so
// paths look like "levels/test.tmx".
func Levels() fs.FS {
	return levelFS
}
