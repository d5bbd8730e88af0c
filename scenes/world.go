package scenes

import (
	"image/color"
	"log"
	"path/filepath"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"

	"github.com/automoto/retro-runner/archetypes"
	"github.com/automoto/retro-runner/assets"
	"github.com/automoto/retro-runner/components"
	"github.com/automoto/retro-runner/leveldata"
	"github.com/automoto/retro-runner/profile"
	"github.com/automoto/retro-runner/systems"
	"github.com/automoto/retro-runner/systems/factory"
	"github.com/automoto/retro-runner/tags"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Content is loaded once at startup and shared by every level scene.
type Content struct {
	Levels   []*leveldata.Level
	Profiles []*profile.Profile

	// AssetsDir and Watcher are only set when assets are read from disk.
	AssetsDir string
	Watcher   *profile.Watcher
}

// PlatformerScene plays the journey's current level. Finishing the level or
// running out of lives swaps in a fresh scene.
type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	content      *Content
	once         sync.Once
}

func NewPlatformerScene(sc SceneChanger, content *Content) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, content: content}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
	ps.reloadProfiles()

	levelEntry, ok := components.Level.First(ps.ecs.World)
	if !ok {
		return
	}
	switch components.Level.Get(levelEntry).Outcome {
	case components.OutcomeNextLevel:
		ps.sceneChanger.ChangeScene(NewPlatformerScene(ps.sceneChanger, ps.content))
	case components.OutcomeResetJourney:
		systems.ResetJourney()
		ps.sceneChanger.ChangeScene(NewPlatformerScene(ps.sceneChanger, ps.content))
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	// Preload sounds to avoid decode lag on first use
	systems.PreloadAllSFX()

	journey := systems.CurrentJourney()
	ecs := ecs.NewECS(donburi.NewWorld())

	// Audio, input and pause run even while paused
	ecs.AddSystem(systems.UpdateAudio)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)

	// Gameplay, in fixed tick order
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateLaunchers))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateProjectiles))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateHazards))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateItems))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateFinishLine))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateDeaths))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateEffects))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))

	// Add renderers
	ecs.AddRenderer(archetypes.DefaultLayer, systems.DrawLevel)
	ecs.AddRenderer(archetypes.DefaultLayer, systems.DrawObjects)
	ecs.AddRenderer(archetypes.DefaultLayer, systems.DrawPlayer)
	ecs.AddRenderer(archetypes.DefaultLayer, systems.DrawEffects)
	ecs.AddRenderer(archetypes.DefaultLayer, systems.DrawSensors)
	ecs.AddRenderer(archetypes.DefaultLayer, systems.DrawHUD)
	ecs.AddRenderer(archetypes.DefaultLayer, systems.DrawOverlay)

	ps.ecs = ecs

	// Create the level entity first; the space is sized from it.
	levelEntry := factory.CreateLevelAtIndex(ps.ecs, ps.content.Levels, journey.LevelIndex)
	levelData := components.Level.Get(levelEntry)
	levelData.Unlocked = journey.UnlockedLevel
	level := levelData.CurrentLevel

	factory.CreateSpace(ps.ecs, level.Width, level.Height)
	factory.PopulateLevel(ps.ecs, level)

	settings := systems.LoadSettings()
	factory.CreateAudio(ps.ecs, settings.SFXVolume, settings.Muted)

	player := ps.spawnPlayer(level, journey.Character)
	if journey.Lives > 0 {
		components.Lives.Get(player).Lives = journey.Lives
	}
	components.Collector.Get(player).Cherries = journey.Cherries

	// Snap camera to the spawn to prevent panning from (0,0)
	center := factory.SpawnCenter(level.Spawn)
	factory.CreateCamera(ps.ecs, math.NewVec2(center.X, center.Y))
}

// spawnPlayer creates the character at index, falling back to the first
// profile and then to the built-in defaults when a profile cannot be used.
func (ps *PlatformerScene) spawnPlayer(level *leveldata.Level, index int) *donburi.Entry {
	profiles := ps.content.Profiles
	if index < 0 || index >= len(profiles) {
		log.Printf("Warning: character %d out of range, using the first", index)
		index = 0
	}
	if index < len(profiles) {
		player, err := factory.CreatePlayer(ps.ecs, level.Spawn, profiles[index], index)
		if err == nil {
			return player
		}
		log.Printf("Warning: %v, using the default profile", err)
	}

	def := profile.Default()
	player, err := factory.CreatePlayer(ps.ecs, level.Spawn, &def, index)
	if err != nil {
		panic("failed to create player: " + err.Error())
	}
	return player
}

// reloadProfiles drains the profile watcher and applies edits to the active
// character without restarting the level.
func (ps *PlatformerScene) reloadProfiles() {
	w := ps.content.Watcher
	if w == nil {
		return
	}
	for {
		select {
		case name, ok := <-w.Events:
			if !ok {
				ps.content.Watcher = nil
				return
			}
			ps.reloadProfile(name)
		case err, ok := <-w.Errors:
			if !ok {
				ps.content.Watcher = nil
				return
			}
			log.Printf("[profile] watch error: %v", err)
		default:
			return
		}
	}
}

func (ps *PlatformerScene) reloadProfile(osPath string) {
	rel, err := filepath.Rel(ps.content.AssetsDir, osPath)
	if err != nil {
		log.Printf("[profile] warning: %s is outside %s", osPath, ps.content.AssetsDir)
		return
	}
	name := filepath.ToSlash(rel)

	prof, err := profile.Load(assets.FS, name)
	if err != nil {
		log.Printf("[profile] warning: keeping previous profile: %v", err)
		return
	}
	for i, p := range ps.content.Profiles {
		if p.Path == name {
			ps.content.Profiles[i] = prof
		}
	}

	playerEntry, ok := tags.Player.First(ps.ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	if player.Profile == nil || player.Profile.Path != name {
		return
	}
	conf, err := prof.ToConfig()
	if err == nil {
		err = player.Controller.ApplyProfile(conf)
	}
	if err != nil {
		log.Printf("[profile] warning: keeping previous profile: %v", err)
		return
	}
	player.Profile = prof
	components.Lives.Get(playerEntry).MaxLives = prof.Lives.MaxBound
	log.Printf("[profile] reloaded %s", name)
}
