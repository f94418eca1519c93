package components

import (
	cfg "github.com/automoto/gamex/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// Next derives this frame's state from the held flag and the previous frame.
func (a ActionState) Next(held bool) ActionState {
	return ActionState{
		Pressed:      held,
		JustPressed:  held && !a.Pressed,
		JustReleased: !held && a.Pressed,
	}
}

// InputData stores the current and previous frame's pressed state for all
// actions, merged across devices.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	AxisX    float64 // analog stick, zero inside the deadzone
}

func (i *InputData) Action(id cfg.ActionID) ActionState {
	return ActionState{
		Pressed:      i.Current[id],
		JustPressed:  i.Current[id] && !i.Previous[id],
		JustReleased: !i.Current[id] && i.Previous[id],
	}
}

var Input = donburi.NewComponentType[InputData]()

// ControlsData is the resolved input a controller consumes each frame.
type ControlsData struct {
	MoveX float64 // -1, 0 or 1
	Jump  ActionState
	Dash  ActionState
	Fire  ActionState
}

var Controls = donburi.NewComponentType[ControlsData]()
