package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/retro-runner/components"
	cfg "github.com/automoto/retro-runner/config"
	"github.com/automoto/retro-runner/movement"
	"github.com/automoto/retro-runner/tags"
)

var (
	sensorIdle    = color.RGBA{R: 0, G: 255, B: 255, A: 255} // Cyan
	sensorContact = color.RGBA{R: 255, G: 60, B: 200, A: 255}
)

// DrawSensors outlines the ground probe and wall probes of the player when
// debug sensor drawing is enabled. Probes that touch are drawn in magenta.
func DrawSensors(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawSensors {
		return
	}
	v, ok := newView(ecs, screen)
	if !ok {
		return
	}

	tags.Player.Each(ecs.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry)
		ctrl := components.Player.Get(entry).Controller
		conf := ctrl.Config()
		contacts := ctrl.Contacts()

		// Ground box swept down by the probe distance
		pos, size := body.Position(), body.Size()
		probe := cfg.Player.GroundProbeDistance
		gx, gy, gw, gh := v.rect(pos.X-size.X/2, pos.Y-size.Y/2-probe, size.X, size.Y)
		vector.StrokeRect(screen, gx, gy, gw, gh, 1, probeColor(contacts.Grounded), false)

		if !conf.CanWallGrab {
			return
		}
		drawProbe(screen, v, pos.Add(conf.GrabLeftOffset), conf.GrabCheckRadius, contacts.LeftWall)
		drawProbe(screen, v, pos.Add(conf.GrabRightOffset), conf.GrabCheckRadius, contacts.RightWall)
	})

	if entry, ok := tags.Player.First(ecs.World); ok {
		ctrl := components.Player.Get(entry).Controller
		msg := fmt.Sprintf("TPS %.0f  state %s  speed %.2f  air jumps %d  dash %t",
			ebiten.ActualTPS(), ctrl.State(), ctrl.Speed(), ctrl.AirJumps(), ctrl.Dashing())
		ebitenutil.DebugPrintAt(screen, msg, 4, screen.Bounds().Dy()-16)
	}
}

func drawProbe(screen *ebiten.Image, v view, center movement.Vec2, radius float64, touching bool) {
	cx, cy := v.point(center.X, center.Y)
	vector.StrokeCircle(screen, cx, cy, v.length(radius), 1, probeColor(touching), true)
}

func probeColor(touching bool) color.Color {
	if touching {
		return sensorContact
	}
	return sensorIdle
}
