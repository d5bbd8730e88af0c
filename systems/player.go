package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/retro-runner/components"
	cfg "github.com/automoto/retro-runner/config"
	"github.com/automoto/retro-runner/movement"
	"github.com/automoto/retro-runner/tags"
)

// UpdatePlayer runs one fixed step for the character: input events, the
// controller tick, the physics step, then the per-frame state update.
// ebiten updates at a fixed TPS, so the frame update runs once per tick.
func UpdatePlayer(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		updatePlayer(ecs, playerEntry)
	})
}

func updatePlayer(ecs *ecs.ECS, playerEntry *donburi.Entry) {
	dt := cfg.FixedDelta()
	body := components.Body.Get(playerEntry)

	// Dying players get no input; the disabled collider lets them drop
	// out of the level until the death timer runs out.
	if playerEntry.HasComponent(components.Death) {
		body.Step(dt)
		return
	}

	player := components.Player.Get(playerEntry)
	ctrl := player.Controller
	input := getOrCreateInput(ecs)

	ctrl.OnInput(movement.InputEvent{Kind: movement.InputMove, Axis: input.Axis})
	if input.JustPressed(cfg.ActionJump) {
		ctrl.OnInput(movement.InputEvent{Kind: movement.InputJump})
	}
	if input.JustPressed(cfg.ActionDash) {
		ctrl.OnInput(movement.InputEvent{Kind: movement.InputDash})
	}

	ctrl.Tick(dt)
	body.Step(dt)
	stateID := ctrl.FrameUpdate(dt)

	state := components.State.Get(playerEntry)
	if state.Enter(stateID) {
		switch {
		case stateID == cfg.Jumping || stateID == cfg.DoubleJumping:
			TriggerSquashStretch(playerEntry, cfg.Effects.JumpStretch)
		case state.Landed():
			TriggerSquashStretch(playerEntry, cfg.Effects.LandSquash)
		}
	}

	if anim := components.Animation.Get(playerEntry); anim.Set != nil {
		anim.Set.Update()
	}
}

// RespawnPlayer puts the player back at the level spawn, facing right, with
// the collider enabled again.
func RespawnPlayer(playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	body := components.Body.Get(playerEntry)

	body.SetSolid(true)
	body.SetPosition(player.Spawn)
	body.SetVelocity(movement.Vec2{})
	player.Controller.Flip(true)

	components.State.SetValue(playerEntry, components.StateData{CurrentState: cfg.Idle})
}
