package main

import (
	"flag"
	"image"
	"log"
	"os"

	"github.com/automoto/gamex/assets"
	"github.com/automoto/gamex/config"
	"github.com/automoto/gamex/fonts"
	"github.com/automoto/gamex/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(tuning <-chan []byte) *Game {
	if err := fonts.LoadFontWithSize(fonts.HUD, goregular.TTF, 8); err != nil {
		log.Fatal(err)
	}
	if err := fonts.LoadFontWithSize(fonts.HUDSmall, goregular.TTF, 6); err != nil {
		log.Fatal(err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewPlatformerScene(g, tuning)

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.StringVar(&config.C.TuningPath, "tuning", "", "YAML file overriding tuning values, reloaded on change")
	flag.StringVar(&config.C.LevelPath, "level", config.C.LevelPath, "level to load from the embedded assets")
	flag.BoolVar(&config.Debug.DrawColliders, "colliders", false, "draw collider outlines")
	printTuning := flag.Bool("print-tuning", false, "print a sample tuning file and exit")
	flag.Parse()

	if *printTuning {
		if _, err := os.Stdout.Write(assets.DefaultTuning); err != nil {
			log.Fatal(err)
		}
		return
	}

	var tuning <-chan []byte
	if config.C.TuningPath != "" {
		t, err := config.LoadTuning(config.C.TuningPath)
		if err != nil {
			log.Fatal(err)
		}
		t.Apply()

		watcher, err := config.WatchTuning(config.C.TuningPath)
		if err != nil {
			log.Printf("[tuning] hot reload disabled: %v", err)
		} else {
			defer watcher.Close()
			tuning = watcher.Updates
			go func() {
				for err := range watcher.Errors {
					log.Printf("[tuning] %v", err)
				}
			}()
		}
	}

	ebiten.SetWindowSize(config.C.WindowWidth, config.C.WindowHeight)
	ebiten.SetWindowTitle("gamex")
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(tuning)); err != nil {
		log.Fatal(err)
	}
}
