package factory

import (
	"log"
	"sync"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/retro-runner/components"
	cfg "github.com/automoto/retro-runner/config"
	"github.com/automoto/retro-runner/movement"
)

// The controller keeps these for its lifetime. They look the entry up on
// every call because component pointers move when the entry's archetype
// changes.

type animationSink struct {
	entry *donburi.Entry
}

func (s animationSink) SetState(code int) {
	components.Animation.Get(s.entry).SetState(code)
}

func (s animationSink) SetSkin(sprite, animations string) {
	components.Animation.Get(s.entry).SetSkin(sprite, animations)
}

type effectPlayer struct {
	ecs   *ecs.ECS
	entry *donburi.Entry
}

// PlayEffect places dust and jump puffs at the character's feet and every
// other effect at its center.
func (p effectPlayer) PlayEffect(kind cfg.EffectID, offset movement.Vec2) {
	body := components.Body.Get(p.entry)
	at := body.Position().Add(offset)
	if kind == cfg.EffectDust || kind == cfg.EffectJump {
		at.Y -= body.Size().Y / 2
	}
	SpawnEffect(p.ecs, kind, at)
}

var noAudioOnce sync.Once

type soundPlayer struct {
	ecs *ecs.ECS
}

func (p soundPlayer) PlaySound(id cfg.SoundID) {
	if !components.QueueSFX(p.ecs.World, id) {
		noAudioOnce.Do(func() {
			log.Printf("[audio] warning: no audio queue in this world, %s sound dropped", id)
		})
	}
}
