package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/gamex/components"
	cfg "github.com/automoto/gamex/config"
	"github.com/automoto/gamex/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarWidth  = 100
	hudBarHeight = 6
	hudMargin    = 6
	hudSpacing   = 3
)

// DrawHUD renders the player's health bar and charge meter in the top-left
// corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	hp := components.Health.Get(playerEntry)
	weapon := components.Weapon.Get(playerEntry)

	// Health
	drawMeter(screen, hudMargin, hp.Current/hp.Max, color.RGBA{40, 220, 40, 255})

	// Charge
	charge := 0.0
	if cfg.Weapon.FullChargeTime > 0 {
		charge = weapon.ChargeTime / cfg.Weapon.FullChargeTime
	}
	drawMeter(screen, hudMargin+hudBarHeight+hudSpacing, charge, projectileColor(weapon.Charge))

	if !fonts.Loaded(fonts.HUD) {
		return
	}
	label := fmt.Sprintf("%s  shots %d", weapon.Charge, weapon.Shots)
	text.Draw(screen, label, fonts.HUD.Get(), hudMargin+hudBarWidth+hudSpacing*2, hudMargin+hudBarHeight*2, cfg.White)
}

func drawMeter(screen *ebiten.Image, y float32, ratio float64, fill color.RGBA) {
	switch {
	case ratio < 0:
		ratio = 0
	case ratio > 1:
		ratio = 1
	}

	// Background (dark gray)
	vector.FillRect(screen, hudMargin, y, hudBarWidth, hudBarHeight, color.RGBA{40, 40, 40, 255}, false)
	vector.FillRect(screen, hudMargin, y, hudBarWidth*float32(ratio), hudBarHeight, fill, false)
}
