package systems

import (
	"math"

	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/automoto/retro-runner/components"
	"github.com/automoto/retro-runner/config"
	"github.com/automoto/retro-runner/tags"
)

// UpdateCamera eases the camera toward the player, kept inside the level,
// and advances any screen shake.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	if cameraEntry.HasComponent(components.ScreenShake) {
		if components.ScreenShake.Get(cameraEntry).Advance(config.FixedDelta()) {
			cameraEntry.RemoveComponent(components.ScreenShake)
		}
	}

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	if level == nil {
		return
	}

	// A dead player falls out of the level; hold the camera where it died.
	if playerEntry.HasComponent(components.Death) {
		return
	}

	target := components.Body.Get(playerEntry).Position()
	x, y := clampToLevel(target.X, target.Y, level.Width, level.Height)

	camera.Position.X += (x - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (y - camera.Position.Y) * config.Camera.FollowSmoothing
}

// clampToLevel keeps a camera center inside the level so the view never
// shows past its edges. Levels smaller than the view are centered.
func clampToLevel(x, y, levelW, levelH float64) (float64, float64) {
	halfW := float64(config.C.Width) / config.C.PixelsPerUnit / 2
	halfH := float64(config.C.Height) / config.C.PixelsPerUnit / 2
	return clampAxis(x, halfW, levelW), clampAxis(y, halfH, levelH)
}

func clampAxis(v, half, size float64) float64 {
	if size <= half*2 {
		return size / 2
	}
	return math.Max(half, math.Min(size-half, v))
}

// TriggerScreenShake starts a shake that decays over duration seconds. A
// weaker shake never replaces a stronger one that is still running.
func TriggerScreenShake(e *ecs.ECS, intensity, duration float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		if intensity > shake.Current {
			*shake = components.NewScreenShake(intensity, duration)
		}
		return
	}
	cameraEntry.AddComponent(components.ScreenShake)
	components.ScreenShake.SetValue(cameraEntry, components.NewScreenShake(intensity, duration))
}

// cameraView returns the camera center including shake.
func cameraView(e *ecs.ECS) (dmath.Vec2, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return dmath.Vec2{}, false
	}
	pos := components.Camera.Get(cameraEntry).Position
	if cameraEntry.HasComponent(components.ScreenShake) {
		offset := components.ScreenShake.Get(cameraEntry).Offset
		pos.X += offset.X
		pos.Y += offset.Y
	}
	return pos, true
}
