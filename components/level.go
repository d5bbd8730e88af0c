package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/retro-runner/leveldata"
)

// LevelOutcome is what the scene should do once the current frame ends.
type LevelOutcome int

const (
	OutcomeNone LevelOutcome = iota
	OutcomeNextLevel
	OutcomeResetJourney
)

type LevelData struct {
	Levels       []*leveldata.Level
	LevelIndex   int
	CurrentLevel *leveldata.Level
	Outcome      LevelOutcome
	Unlocked     int // highest level index reached this journey
}

// Request records an outcome; the first request in a frame wins.
func (l *LevelData) Request(o LevelOutcome) {
	if l.Outcome == OutcomeNone {
		l.Outcome = o
	}
}

var Level = donburi.NewComponentType[LevelData]()
