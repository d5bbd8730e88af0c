package factory

import (
	"fmt"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/retro-runner/archetypes"
	"github.com/automoto/retro-runner/components"
	cfg "github.com/automoto/retro-runner/config"
	"github.com/automoto/retro-runner/leveldata"
	"github.com/automoto/retro-runner/movement"
	"github.com/automoto/retro-runner/profile"
	"github.com/automoto/retro-runner/tags"
)

// PlayerSize is the collider footprint in world units.
func PlayerSize() movement.Vec2 {
	return movement.Vec2{X: cfg.Player.CollisionWidth, Y: cfg.Player.CollisionHeight}
}

// SpawnCenter converts a spawn point (the character's feet) to a body center.
func SpawnCenter(p leveldata.Point) movement.Vec2 {
	return movement.Vec2{X: p.X, Y: p.Y + cfg.Player.CollisionHeight/2}
}

// CreatePlayer spawns the character at spawn using prof. Lives start at the
// profile's initial count; callers restore saved progress afterwards.
func CreatePlayer(ecs *ecs.ECS, spawn leveldata.Point, prof *profile.Profile, index int) (*donburi.Entry, error) {
	conf, err := prof.ToConfig()
	if err != nil {
		return nil, fmt.Errorf("create player: %w", err)
	}

	world := mustSpace(ecs)
	center := SpawnCenter(spawn)
	body := world.NewBody(center, PlayerSize(), tags.ResolvSolid, tags.ResolvPlayer)

	player := archetypes.Player.Spawn(ecs)
	body.Object().Data = player
	components.Body.SetValue(player, components.BodyData{Body: body})
	components.State.SetValue(player, components.StateData{CurrentState: cfg.Idle})
	components.SquashStretch.SetValue(player, components.SquashStretchData{
		ScaleX: 1, ScaleY: 1, LerpSpeed: cfg.Effects.SquashLerpSpeed,
	})
	components.Lives.SetValue(player, components.LivesData{
		Lives:    prof.Lives.Initial,
		MaxLives: prof.Lives.MaxBound,
	})

	controller := movement.New(movement.Deps{
		Query:       world.Query(),
		Body:        body,
		Effects:     effectPlayer{ecs: ecs, entry: player},
		Sounds:      soundPlayer{ecs: ecs},
		Animation:   animationSink{entry: player},
		GroundLayer: tags.ResolvSolid,
	})
	if err := controller.Init(conf); err != nil {
		world.Remove(body.Object())
		player.Remove()
		return nil, fmt.Errorf("create player: %w", err)
	}

	components.Player.SetValue(player, components.PlayerData{
		Controller:   controller,
		Profile:      prof,
		ProfileIndex: index,
		Spawn:        center,
	})
	return player, nil
}
