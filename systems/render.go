package systems

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/retro-runner/components"
	cfg "github.com/automoto/retro-runner/config"
	"github.com/automoto/retro-runner/tags"
)

var spikeColor = color.RGBA{R: 215, G: 215, B: 230, A: 255}

// view maps world units (Y up) to screen pixels (Y down) around the camera.
type view struct {
	cx, cy       float64
	ppu          float64
	halfW, halfH float64
}

func newView(e *ecs.ECS, screen *ebiten.Image) (view, bool) {
	pos, ok := cameraView(e)
	if !ok {
		return view{}, false
	}
	return view{
		cx:    pos.X,
		cy:    pos.Y,
		ppu:   cfg.C.PixelsPerUnit,
		halfW: float64(screen.Bounds().Dx()) / 2,
		halfH: float64(screen.Bounds().Dy()) / 2,
	}, true
}

func (v view) point(x, y float64) (float32, float32) {
	return float32((x-v.cx)*v.ppu + v.halfW), float32(v.halfH - (y-v.cy)*v.ppu)
}

// rect converts a box given by its bottom-left corner to a screen rect.
func (v view) rect(x, y, w, h float64) (float32, float32, float32, float32) {
	sx, sy := v.point(x, y+h)
	return sx, sy, float32(w * v.ppu), float32(h * v.ppu)
}

func (v view) length(l float64) float32 {
	return float32(l * v.ppu)
}

// visible culls boxes outside the screen, with a one unit margin.
func (v view) visible(x, y, w, h float64) bool {
	marginX := v.halfW/v.ppu + 1
	marginY := v.halfH/v.ppu + 1
	return x+w >= v.cx-marginX && x <= v.cx+marginX && y+h >= v.cy-marginY && y <= v.cy+marginY
}

// DrawLevel fills the sky and draws the ground boxes.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Sky)
	v, ok := newView(e, screen)
	if !ok {
		return
	}
	space := components.Space.Get(components.Space.MustFirst(e.World))

	tags.Ground.Each(e.World, func(entry *donburi.Entry) {
		x, y, w, h := space.Bounds(components.Object.Get(entry).Object)
		if !v.visible(x, y, w, h) {
			return
		}
		sx, sy, sw, sh := v.rect(x, y, w, h)
		vector.FillRect(screen, sx, sy, sw, sh, cfg.Ground, false)
		vector.FillRect(screen, sx, sy, sw, 2, cfg.BrightGreen, false)
	})
}

// DrawObjects draws traps, items, the finish flag, launchers and projectiles.
func DrawObjects(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(e, screen)
	if !ok {
		return
	}
	space := components.Space.Get(components.Space.MustFirst(e.World))

	tags.Trap.Each(e.World, func(entry *donburi.Entry) {
		x, y, w, h := space.Bounds(components.Object.Get(entry).Object)
		if !v.visible(x, y, w, h) {
			return
		}
		drawSpikes(screen, v, x, y, w, h)
	})

	tags.Item.Each(e.World, func(entry *donburi.Entry) {
		x, y, w, h := space.Bounds(components.Object.Get(entry).Object)
		if !v.visible(x, y, w, h) {
			return
		}
		clr := cfg.Cherry
		if components.Item.Get(entry).Kind == ItemHeart {
			clr = cfg.Red
		}
		cx, cy := v.point(x+w/2, y+h/2)
		vector.DrawFilledCircle(screen, cx, cy, v.length(math.Min(w, h)/2), clr, true)
	})

	tags.FinishLine.Each(e.World, func(entry *donburi.Entry) {
		x, y, w, h := space.Bounds(components.Object.Get(entry).Object)
		if !v.visible(x, y, w, h) {
			return
		}
		drawFlag(screen, v, x, y, w, h, components.FinishLine.Get(entry))
	})

	components.Launcher.Each(e.World, func(entry *donburi.Entry) {
		l := components.Launcher.Get(entry)
		sx, sy, sw, sh := v.rect(l.X-0.3, l.Y-0.3, 0.6, 0.6)
		vector.FillRect(screen, sx, sy, sw, sh, cfg.DarkBlue, false)
	})

	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		c := space.Center(components.Object.Get(entry).Object)
		cx, cy := v.point(c.X, c.Y)
		vector.DrawFilledCircle(screen, cx, cy, v.length(cfg.Projectile.Size/2), cfg.Orange, true)
	})
}

func drawSpikes(screen *ebiten.Image, v view, x, y, w, h float64) {
	sx, sy, sw, sh := v.rect(x, y, w, h)
	vector.FillRect(screen, sx, sy+sh*0.6, sw, sh*0.4, cfg.Red, false)

	// One tooth per half unit of width
	teeth := int(math.Max(1, math.Round(w*2)))
	tw := sw / float32(teeth)
	for i := 0; i < teeth; i++ {
		left := sx + float32(i)*tw
		vector.StrokeLine(screen, left, sy+sh, left+tw/2, sy, 2, spikeColor, true)
		vector.StrokeLine(screen, left+tw/2, sy, left+tw, sy+sh, 2, spikeColor, true)
	}
}

func drawFlag(screen *ebiten.Image, v view, x, y, w, h float64, finish *components.FinishLineData) {
	poleX, poleY, _, poleH := v.rect(x+w/2-0.05, y, 0.1, h)
	vector.FillRect(screen, poleX, poleY, v.length(0.1), poleH, cfg.White, false)

	clr := cfg.BrightYellow
	if finish.Activated {
		clr = cfg.BrightGreen
	}
	scale := finish.Scale
	if scale <= 0 {
		scale = 1
	}
	fw, fh := 0.6*scale, 0.4*scale
	fx, fy, fsw, fsh := v.rect(x+w/2, y+h-fh, fw, fh)
	vector.FillRect(screen, fx, fy, fsw, fsh, clr, false)
}

// DrawPlayer draws the character as its skin's shapes, squashed and
// stretched around its feet.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(e, screen)
	if !ok {
		return
	}

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry)
		anim := components.Animation.Get(entry)
		ss := components.SquashStretch.Get(entry)
		ctrl := components.Player.Get(entry).Controller

		skin, ok := cfg.Skins[anim.Sprite]
		if !ok {
			skin = cfg.FallbackSkin
		}
		bodyColor := skin.Body
		if entry.HasComponent(components.Death) {
			bodyColor = fade(skin.Body, 0.5)
		}

		pos, size := body.Position(), body.Size()
		w, h := size.X*ss.ScaleX, size.Y*ss.ScaleY

		// Running and idle clips bob the character by their frame.
		bob := 0.0
		if set := anim.Set; set != nil && set.Current() != nil {
			if st := set.State(); st == cfg.Running || st == cfg.Idle {
				bob = math.Sin(set.Current().Progress()*2*math.Pi) * 0.03
			}
		}

		feetY := pos.Y - size.Y/2 + bob
		sx, sy, sw, sh := v.rect(pos.X-w/2, feetY, w, h)
		vector.FillRect(screen, sx, sy, sw, sh, bodyColor, false)

		// Headband and eye on the facing side
		bx, by, bw, bh := v.rect(pos.X-w/2, feetY+h*0.7, w, h*0.1)
		vector.FillRect(screen, bx, by, bw, bh, skin.Accent, false)
		eyeX := pos.X + w*0.2
		if ctrl.FacingLeft() {
			eyeX = pos.X - w*0.2
		}
		ex, ey := v.point(eyeX, feetY+h*0.6)
		vector.DrawFilledCircle(screen, ex, ey, v.length(0.07), cfg.White, true)
	})
}

// DrawEffects draws particle puffs, fading out over their lifetime.
func DrawEffects(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(e, screen)
	if !ok {
		return
	}
	components.Particles.Each(e.World, func(entry *donburi.Entry) {
		p := components.Particles.Get(entry)
		clr := fade(p.Color, p.Alpha())
		r := v.length(p.Size)
		for _, pt := range p.Particles {
			x, y := v.point(pt.X, pt.Y)
			vector.DrawFilledCircle(screen, x, y, r, clr, true)
		}
	})
}

// fade scales a premultiplied color by alpha.
func fade(c color.RGBA, alpha float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
