package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/automoto/retro-runner/config"
)

// InputData stores the current and previous tick's pressed state for all
// actions, plus the analog move axis.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	Axis     float64 // -1..1, keyboard or left stick
}

func (i *InputData) Pressed(a cfg.ActionID) bool {
	return i.Current[a]
}

func (i *InputData) JustPressed(a cfg.ActionID) bool {
	return i.Current[a] && !i.Previous[a]
}

var Input = donburi.NewComponentType[InputData]()
