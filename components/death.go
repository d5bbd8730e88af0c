package components

import "github.com/yohamta/donburi"

// DeathData marks a player that has died. Timer counts down in seconds;
// at zero the player respawns or, with no lives left, the journey resets.
type DeathData struct {
	Timer float64
}

var Death = donburi.NewComponentType[DeathData]()
