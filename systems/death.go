package systems

import (
	"log"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/retro-runner/components"
	cfg "github.com/automoto/retro-runner/config"
	"github.com/automoto/retro-runner/tags"
)

// UpdateHazards kills the player on contact with a trap or death zone.
func UpdateHazards(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || playerEntry.HasComponent(components.Death) {
		return
	}
	if len(components.Body.Get(playerEntry).Touching(tags.ResolvTrap, tags.ResolvDeadZone)) > 0 {
		KillPlayer(ecs, playerEntry)
	}
}

// KillPlayer starts the death sequence: the collider is disabled, the
// camera shakes, the death sound plays and a life is lost and saved. The
// outcome is decided when the death timer runs out. Killing a player that
// is already dying does nothing.
func KillPlayer(ecs *ecs.ECS, playerEntry *donburi.Entry) {
	if playerEntry.HasComponent(components.Death) {
		return
	}

	components.Body.Get(playerEntry).SetSolid(false)
	TriggerScreenShake(ecs, cfg.Lives.ShakeIntensity, cfg.Lives.ShakeDuration)
	PlaySFX(ecs, cfg.SoundDeath)

	lives := components.Lives.Get(playerEntry)
	lives.LoseLife()
	PersistProgress(ecs)

	playerEntry.AddComponent(components.Death)
	components.Death.SetValue(playerEntry, components.DeathData{Timer: cfg.Lives.DeathDelay})
}

// UpdateDeaths counts down the death timer. With lives left the player
// respawns; otherwise the journey is reset.
func UpdateDeaths(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || !playerEntry.HasComponent(components.Death) {
		return
	}

	death := components.Death.Get(playerEntry)
	death.Timer -= cfg.FixedDelta()
	if death.Timer > 0 {
		return
	}

	if components.Lives.Get(playerEntry).Lives > 0 {
		playerEntry.RemoveComponent(components.Death)
		RespawnPlayer(playerEntry)
		return
	}

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		log.Printf("Warning: no level entity, cannot reset journey")
		return
	}
	components.Level.Get(levelEntry).Request(components.OutcomeResetJourney)
}

// IsGameOver reports whether the player is dying with no lives left.
func IsGameOver(ecs *ecs.ECS) bool {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return false
	}
	return playerEntry.HasComponent(components.Death) && components.Lives.Get(playerEntry).Lives == 0
}
