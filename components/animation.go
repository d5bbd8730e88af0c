package components

import (
	"log"

	"github.com/yohamta/donburi"

	"github.com/automoto/retro-runner/assets/animations"
	"github.com/automoto/retro-runner/config"
)

// AnimationData is the animation sink for a character: the sprite key it is
// drawn with and the clip set stepped by its classified state.
type AnimationData struct {
	Sprite string
	Set    *animations.Set
	Code   int // last state code received
}

func (a *AnimationData) SetState(code int) {
	a.Code = code
	if a.Set != nil {
		a.Set.Play(config.StateID(code))
	}
}

// SetSkin swaps the sprite and, when the key changes, the animation set.
// Unknown sets fall back to the default character's.
func (a *AnimationData) SetSkin(sprite, set string) {
	a.Sprite = sprite
	if a.Set != nil && a.Set.Key == set {
		return
	}
	s, ok := animations.NewSet(set)
	if !ok {
		log.Printf("Warning: no animation set %q, using %q", set, config.Player.Animations)
		s, _ = animations.NewSet(config.Player.Animations)
	}
	if a.Set != nil {
		s.Play(a.Set.State())
	}
	a.Set = s
}

// Frame is the current clip's frame index, or 0 without a clip.
func (a *AnimationData) Frame() int {
	if a.Set == nil || a.Set.Current() == nil {
		return 0
	}
	return a.Set.Current().Frame()
}

var Animation = donburi.NewComponentType[AnimationData]()
