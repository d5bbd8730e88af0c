package components

import "github.com/yohamta/donburi"

type ItemData struct {
	Kind string
}

var Item = donburi.NewComponentType[ItemData]()
