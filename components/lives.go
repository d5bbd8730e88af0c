package components

import "github.com/yohamta/donburi"

type LivesData struct {
	Lives    int
	MaxLives int // GiveLife stops adding once Lives reaches this bound
}

// LoseLife removes one life, never going below zero.
func (l *LivesData) LoseLife() {
	if l.Lives > 0 {
		l.Lives--
	}
}

// GiveLife adds count lives unless the bound has already been reached.
func (l *LivesData) GiveLife(count int) {
	if l.Lives < l.MaxLives {
		l.Lives += count
	}
}

var Lives = donburi.NewComponentType[LivesData]()
