package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/retro-runner/movement"
	"github.com/automoto/retro-runner/profile"
)

type PlayerData struct {
	Controller   *movement.Controller
	Profile      *profile.Profile
	ProfileIndex int
	Spawn        movement.Vec2 // body center the player respawns at
}

var Player = donburi.NewComponentType[PlayerData]()

// CollectorData counts picked up items. The count persists across levels.
type CollectorData struct {
	Cherries int
}

var Collector = donburi.NewComponentType[CollectorData]()
