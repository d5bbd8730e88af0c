package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/retro-runner/components"
	cfg "github.com/automoto/retro-runner/config"
	"github.com/automoto/retro-runner/tags"
)

// ItemHeart gives a life instead of counting as a cherry.
const ItemHeart = "heart"

// UpdateItems collects every item the player touches.
func UpdateItems(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || playerEntry.HasComponent(components.Death) {
		return
	}

	touched := components.Body.Get(playerEntry).Touching(tags.ResolvItem)
	if len(touched) == 0 {
		return
	}

	space := components.Space.Get(components.Space.MustFirst(ecs.World))
	for _, obj := range touched {
		itemEntry, ok := obj.Data.(*donburi.Entry)
		if !ok || itemEntry == nil || !itemEntry.Valid() {
			continue
		}

		switch components.Item.Get(itemEntry).Kind {
		case ItemHeart:
			components.Lives.Get(playerEntry).GiveLife(1)
		default:
			components.Collector.Get(playerEntry).Cherries++
		}
		PlaySFX(ecs, cfg.SoundItemCollect)

		space.Remove(obj)
		itemEntry.Remove()
	}
	PersistProgress(ecs)
}
