package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"

	"github.com/automoto/retro-runner/components"
	cfg "github.com/automoto/retro-runner/config"
	"github.com/automoto/retro-runner/fonts"
	"github.com/automoto/retro-runner/tags"
)

var overlayShade = color.RGBA{R: 0, G: 0, B: 0, A: 140}

// DrawHUD renders lives, cherries, the character and level names in the
// top-left corner, and the mute marker in the top-right.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	face := fonts.HUD.Get()
	x := int(cfg.HUD.Margin)
	y := int(cfg.HUD.Margin + cfg.HUD.LineGap)
	gap := int(cfg.HUD.LineGap)

	lives := components.Lives.Get(playerEntry)
	collector := components.Collector.Get(playerEntry)
	player := components.Player.Get(playerEntry)

	lines := []string{
		fmt.Sprintf("Lives: %d", lives.Lives),
		fmt.Sprintf("Cherries: %d", collector.Cherries),
	}
	if player.Profile != nil {
		lines = append(lines, player.Profile.Name)
	}
	if levelEntry, ok := components.Level.First(ecs.World); ok {
		if level := components.Level.Get(levelEntry).CurrentLevel; level != nil {
			lines = append(lines, level.Name)
		}
	}

	for i, line := range lines {
		text.Draw(screen, line, face, x, y+i*gap, cfg.HUD.TextColor)
	}

	if audioEntry, ok := components.Audio.First(ecs.World); ok && components.Audio.Get(audioEntry).Muted {
		small := fonts.Small.Get()
		label := "MUTED"
		w := text.BoundString(small, label).Dx()
		text.Draw(screen, label, small, screen.Bounds().Dx()-w-int(cfg.HUD.Margin), y, cfg.Orange)
	}
}

// DrawOverlay shades the screen with a banner for pause, level complete and
// game over.
func DrawOverlay(ecs *ecs.ECS, screen *ebiten.Image) {
	var title, hint string
	clr := cfg.White
	switch {
	case IsGameOver(ecs):
		title, hint, clr = "Game Over", "Starting over...", cfg.Red
	case IsLevelComplete(ecs):
		title, hint, clr = "Level Complete!", "", cfg.BrightYellow
	case GetOrCreatePause(ecs).IsPaused:
		title, hint = "Paused", "Esc to resume, F5 to restart the journey"
	default:
		return
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, float32(h)/2-40, float32(w), 80, overlayShade, false)

	drawCentered(screen, title, fonts.Title.Get(), h/2+4, clr)
	if hint != "" {
		drawCentered(screen, hint, fonts.Small.Get(), h/2+28, cfg.White)
	}
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, y int, clr color.Color) {
	bounds := text.BoundString(face, s)
	x := (screen.Bounds().Dx() - bounds.Dx()) / 2
	text.Draw(screen, s, face, x, y, clr)
}
