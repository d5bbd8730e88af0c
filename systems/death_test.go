package systems

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/automoto/retro-runner/components"
	cfg "github.com/automoto/retro-runner/config"
	"github.com/automoto/retro-runner/leveldata"
	"github.com/automoto/retro-runner/movement"
	"github.com/automoto/retro-runner/profile"
	"github.com/automoto/retro-runner/save"
	"github.com/automoto/retro-runner/systems/factory"
	"github.com/automoto/retro-runner/tags"
)

type memStore struct {
	items map[string][]byte
}

func (s *memStore) LoadItem(key string) ([]byte, error) { return s.items[key], nil }

func (s *memStore) SaveItem(key string, data []byte) error {
	s.items[key] = data
	return nil
}

// newTestWorld builds a flat level with the player standing at (2, 1) and
// swaps the package saver for an in-memory one.
func newTestWorld(t *testing.T, lives int) (*ecs.ECS, *donburi.Entry) {
	t.Helper()

	prevSaver, prevJourney := saver, journey
	saver = save.NewSaver(&memStore{items: map[string][]byte{}})
	journey = save.NewJourney()
	t.Cleanup(func() { saver, journey = prevSaver, prevJourney })

	level := &leveldata.Level{
		Name:          "flat",
		Width:         20,
		Height:        10,
		PixelsPerUnit: 32,
		Spawn:         leveldata.Point{X: 2, Y: 1},
		Ground:        []leveldata.Rect{{X: 0, Y: 0, W: 20, H: 1}},
	}

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateLevelAtIndex(e, []*leveldata.Level{level}, 0)
	factory.CreateSpace(e, level.Width, level.Height)
	factory.PopulateLevel(e, level)
	factory.CreateAudio(e, 1, false)

	prof := profile.Default()
	player, err := factory.CreatePlayer(e, level.Spawn, &prof, 0)
	require.NoError(t, err)
	components.Lives.Get(player).Lives = lives

	center := factory.SpawnCenter(level.Spawn)
	factory.CreateCamera(e, dmath.NewVec2(center.X, center.Y))
	return e, player
}

func pendingSFX(e *ecs.ECS) []cfg.SoundID {
	return components.Audio.Get(components.Audio.MustFirst(e.World)).PendingSFX
}

func outcome(e *ecs.ECS) components.LevelOutcome {
	return components.Level.Get(components.Level.MustFirst(e.World)).Outcome
}

func countProjectiles(e *ecs.ECS) int {
	n := 0
	tags.Projectile.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func savedProgress(t *testing.T) save.Progress {
	t.Helper()
	p, err := saver.LoadProgress()
	require.NoError(t, err)
	return p
}

// runDeath ticks the dying player until the death timer is done and returns
// the number of ticks it took.
func runDeath(e *ecs.ECS, player *donburi.Entry) int {
	ticks := 0
	for ticks < 500 && player.HasComponent(components.Death) && outcome(e) == components.OutcomeNone {
		UpdatePlayer(e)
		UpdateDeaths(e)
		ticks++
	}
	return ticks
}

func TestKillPlayer_RespawnsWithLivesLeft(t *testing.T) {
	e, player := newTestWorld(t, 2)
	body := components.Body.Get(player).Body
	spawn := body.Position()

	KillPlayer(e, player)

	require.True(t, player.HasComponent(components.Death))
	assert.Equal(t, 1, components.Lives.Get(player).Lives)
	assert.False(t, body.Solid())
	assert.Contains(t, pendingSFX(e), cfg.SoundDeath)
	assert.True(t, components.Camera.MustFirst(e.World).HasComponent(components.ScreenShake))
	assert.Equal(t, 1, savedProgress(t).Lives, "the lost life is saved right away")

	KillPlayer(e, player)
	assert.Equal(t, 1, components.Lives.Get(player).Lives, "a dying player cannot die again")

	wantTicks := int(math.Round(cfg.Lives.DeathDelay / cfg.FixedDelta()))
	ticks := runDeath(e, player)
	assert.InDelta(t, wantTicks, ticks, 1)

	assert.False(t, player.HasComponent(components.Death))
	assert.Equal(t, components.OutcomeNone, outcome(e))
	assert.True(t, body.Solid())
	assert.InDelta(t, spawn.X, body.Position().X, 1e-9)
	assert.InDelta(t, spawn.Y, body.Position().Y, 1e-9)
	assert.Equal(t, movement.Vec2{}, body.Velocity())
	assert.False(t, components.Player.Get(player).Controller.FacingLeft())
}

func TestKillPlayer_DyingPlayerFallsThroughLevel(t *testing.T) {
	e, player := newTestWorld(t, 2)
	body := components.Body.Get(player).Body
	spawn := body.Position()

	KillPlayer(e, player)
	for i := 0; i < 20; i++ {
		UpdatePlayer(e)
	}

	assert.Less(t, body.Position().Y, spawn.Y)
	assert.True(t, player.HasComponent(components.Death))
}

func TestUpdateDeaths_NoLivesLeftResetsJourney(t *testing.T) {
	e, player := newTestWorld(t, 1)

	KillPlayer(e, player)
	assert.True(t, IsGameOver(e))
	assert.Equal(t, 0, savedProgress(t).Lives)

	runDeath(e, player)

	assert.Equal(t, components.OutcomeResetJourney, outcome(e))
	assert.True(t, player.HasComponent(components.Death), "the player is not respawned")
	assert.False(t, components.Body.Get(player).Body.Solid())
}

func TestUpdateHazards(t *testing.T) {
	tests := []struct {
		name   string
		create func(*ecs.ECS, leveldata.Rect) *donburi.Entry
		at     leveldata.Rect
		dies   bool
	}{
		{"trap overlapping the player", factory.CreateTrap, leveldata.Rect{X: 1.8, Y: 1.2, W: 0.4, H: 0.4}, true},
		{"death zone overlapping the player", factory.CreateDeathZone, leveldata.Rect{X: 0, Y: 1.2, W: 20, H: 0.2}, true},
		{"trap out of reach", factory.CreateTrap, leveldata.Rect{X: 8, Y: 1, W: 1, H: 0.5}, false},
		{"trap edge touching the player", factory.CreateTrap, leveldata.Rect{X: 2.4, Y: 1, W: 1, H: 0.5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, player := newTestWorld(t, 3)
			tt.create(e, tt.at)

			UpdateHazards(e)

			assert.Equal(t, tt.dies, player.HasComponent(components.Death))
			if tt.dies {
				assert.Equal(t, 2, components.Lives.Get(player).Lives)
			}
		})
	}
}

func TestUpdateItems(t *testing.T) {
	e, player := newTestWorld(t, 2)
	cherry := factory.CreateItem(e, leveldata.Item{Rect: leveldata.Rect{X: 1.7, Y: 1.2, W: 0.3, H: 0.3}, Kind: "cherry"})
	heart := factory.CreateItem(e, leveldata.Item{Rect: leveldata.Rect{X: 2.0, Y: 1.2, W: 0.3, H: 0.3}, Kind: ItemHeart})
	far := factory.CreateItem(e, leveldata.Item{Rect: leveldata.Rect{X: 10, Y: 1.2, W: 0.3, H: 0.3}, Kind: "cherry"})

	UpdateItems(e)

	assert.Equal(t, 1, components.Collector.Get(player).Cherries)
	assert.Equal(t, 3, components.Lives.Get(player).Lives)
	assert.False(t, cherry.Valid())
	assert.False(t, heart.Valid())
	assert.True(t, far.Valid())
	assert.Equal(t, []cfg.SoundID{cfg.SoundItemCollect, cfg.SoundItemCollect}, pendingSFX(e))

	saved := savedProgress(t)
	assert.Equal(t, 1, saved.Cherries)
	assert.Equal(t, 3, saved.Lives)

	UpdateItems(e)
	assert.Equal(t, 1, components.Collector.Get(player).Cherries, "collected items are gone")
}

func TestUpdateProjectiles_HitKillsAndRemoves(t *testing.T) {
	e, player := newTestWorld(t, 3)
	factory.CreateProjectile(e, leveldata.Launcher{
		Point:     leveldata.Point{X: 2.6, Y: 1.5},
		Direction: leveldata.Left,
		Speed:     6,
		Interval:  2,
		ResetTime: 4,
	})

	UpdateProjectiles(e)

	assert.True(t, player.HasComponent(components.Death))
	assert.Equal(t, 2, components.Lives.Get(player).Lives)
	assert.Zero(t, countProjectiles(e), "a projectile is removed on the tick it hits")
	assert.Contains(t, pendingSFX(e), cfg.SoundProjectileHit)

	effects := 0
	tags.Effect.Each(e.World, func(*donburi.Entry) { effects++ })
	assert.Equal(t, 1, effects)
}

func TestUpdateProjectiles_Expires(t *testing.T) {
	e, player := newTestWorld(t, 3)
	factory.CreateProjectile(e, leveldata.Launcher{
		Point:     leveldata.Point{X: 10, Y: 5},
		Direction: leveldata.Up,
		Speed:     1,
		ResetTime: 0.1,
	})

	for i := 0; i < 4; i++ {
		UpdateProjectiles(e)
	}
	assert.Equal(t, 1, countProjectiles(e))

	for i := 0; i < 3; i++ {
		UpdateProjectiles(e)
	}
	assert.Zero(t, countProjectiles(e))
	assert.False(t, player.HasComponent(components.Death))
	assert.Empty(t, pendingSFX(e))
}
