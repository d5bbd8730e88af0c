package main

import (
	"flag"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/automoto/retro-runner/assets"
	"github.com/automoto/retro-runner/config"
	"github.com/automoto/retro-runner/fonts"
	"github.com/automoto/retro-runner/profile"
	"github.com/automoto/retro-runner/scenes"
	"github.com/automoto/retro-runner/systems"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(content *scenes.Content) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewPlatformerScene(g, content)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	level := flag.Int("level", -1, "start at this level index instead of the saved one")
	character := flag.Int("character", -1, "play this character index instead of the saved one")
	assetsDir := flag.String("assets", "", "read levels, profiles and sounds from this directory and hot reload profiles")
	flag.BoolVar(&config.Debug.SkipSave, "skip-save", config.Debug.SkipSave, "don't read or write saved progress")
	flag.BoolVar(&config.Debug.DrawSensors, "debug-sensors", config.Debug.DrawSensors, "outline the ground and wall probes")
	flag.Parse()

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	content := &scenes.Content{}
	if *assetsDir != "" {
		assets.FS = os.DirFS(*assetsDir)
		content.AssetsDir = *assetsDir
		w, err := profile.NewWatcher(filepath.Join(*assetsDir, assets.ProfilesDir))
		if err != nil {
			log.Printf("Warning: profile hot reload disabled: %v", err)
		} else {
			content.Watcher = w
			defer w.Close()
		}
	}
	content.Levels = assets.MustLoadLevels()
	content.Profiles = assets.MustLoadProfiles()

	// Initialize persistence and resume the saved journey
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	systems.LoadJourney()
	systems.StartAt(*level, *character)

	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Retro Runner")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(content)); err != nil {
		log.Fatal(err)
	}
}
