package systems

import (
	"math"

	"github.com/automoto/gamex/components"
	cfg "github.com/automoto/gamex/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls keyboard and gamepads into the Input singleton and hands
// the resolved controls to every player. Must run before UpdatePlayer.
func UpdateInput(ecs *ecs.ECS) {
	e, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	input := components.Input.Get(e)

	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.AxisX = 0

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		x := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(x) > cfg.Input.AnalogDeadzone {
			input.AxisX = x
			break
		}
	}

	ApplyControls(ecs, input)
}

// ApplyControls resolves the merged input into the discrete axis and button
// states the player controller consumes.
func ApplyControls(ecs *ecs.ECS, input *components.InputData) {
	moveX := 0.0
	if input.Current[cfg.ActionMoveLeft] || input.AxisX < 0 {
		moveX--
	}
	if input.Current[cfg.ActionMoveRight] || input.AxisX > 0 {
		moveX++
	}

	for e := range components.Controls.Iter(ecs.World) {
		controls := components.Controls.Get(e)
		controls.MoveX = moveX
		controls.Jump = input.Action(cfg.ActionJump)
		controls.Dash = input.Action(cfg.ActionDash)
		controls.Fire = input.Action(cfg.ActionFire)
	}
}
