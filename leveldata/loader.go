package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"

	cfg "github.com/automoto/retro-runner/config"
)

// ErrNoSpawn is returned for levels without a PlayerSpawn object.
var ErrNoSpawn = errors.New("level has no player spawn")

const defaultItemKind = "cherry"

// Load parses a TMX file from fsys. It takes an fs.FS so callers can pass the
// embedded assets or a directory on disk.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	ppu := float64(levelMap.TileWidth)
	if ppu <= 0 {
		ppu = cfg.C.PixelsPerUnit
	}
	heightPx := float64(levelMap.Height * levelMap.TileHeight)

	conv := converter{ppu: ppu, heightPx: heightPx}
	level := &Level{
		Name:          strings.TrimSuffix(path.Base(tmxPath), path.Ext(tmxPath)),
		Width:         float64(levelMap.Width*levelMap.TileWidth) / ppu,
		Height:        heightPx / ppu,
		PixelsPerUnit: ppu,
	}

	var spawns []Point
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Ground":
			for _, o := range og.Objects {
				level.Ground = append(level.Ground, conv.rect(o))
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				spawns = append(spawns, conv.point(o))
			}
		case "Traps":
			for _, o := range og.Objects {
				level.Traps = append(level.Traps, conv.rect(o))
			}
		case "DeathZones":
			for _, o := range og.Objects {
				level.DeathZones = append(level.DeathZones, conv.rect(o))
			}
		case "Items":
			for _, o := range og.Objects {
				kind := o.Class
				if kind == "" {
					kind = o.Type //nolint:staticcheck // older TMX files use type=
				}
				if kind == "" {
					kind = defaultItemKind
				}
				level.Items = append(level.Items, Item{Rect: conv.rect(o), Kind: kind})
			}
		case "Finish":
			for _, o := range og.Objects {
				level.Finish = append(level.Finish, conv.rect(o))
			}
		case "Launchers":
			for _, o := range og.Objects {
				level.Launchers = append(level.Launchers, conv.launcher(o))
			}
		}
	}

	level.Ground = append(level.Ground, groundTiles(levelMap, conv)...)

	if len(spawns) == 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoSpawn)
	}
	// Leftmost spawn wins so the start is stable regardless of object order.
	sort.Slice(spawns, func(i, j int) bool { return spawns[i].X < spawns[j].X })
	level.Spawn = spawns[0]

	return level, nil
}

// LoadAll loads every .tmx file in dir, sorted by file name. Level order is
// the play order.
func LoadAll(fsys fs.FS, dir string) ([]*Level, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", dir)
	}
	sort.Strings(matches)

	levels := make([]*Level, 0, len(matches))
	for _, p := range matches {
		level, err := Load(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", p, err)
		}
		levels = append(levels, level)
	}
	return levels, nil
}

// groundTiles turns every non-empty tile of a "Ground" tile layer into a
// one-tile solid.
func groundTiles(levelMap *tiled.Map, conv converter) []Rect {
	var out []Rect
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != "Ground" || len(layer.Tiles) < levelMap.Width*levelMap.Height {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				out = append(out, conv.box(float64(x)*tileW, float64(y)*tileH, tileW, tileH))
			}
		}
		break
	}
	return out
}

type converter struct {
	ppu      float64
	heightPx float64
}

// box converts a Tiled pixel box (top-left corner, y down).
func (c converter) box(x, y, w, h float64) Rect {
	return Rect{
		X: x / c.ppu,
		Y: (c.heightPx - y - h) / c.ppu,
		W: w / c.ppu,
		H: h / c.ppu,
	}
}

func (c converter) rect(o *tiled.Object) Rect {
	if o.Width == 0 && o.Height == 0 {
		// Point objects get a half-tile box around them.
		p := c.point(o)
		return Rect{X: p.X - 0.25, Y: p.Y - 0.25, W: 0.5, H: 0.5}
	}
	return c.box(o.X, o.Y, o.Width, o.Height)
}

func (c converter) point(o *tiled.Object) Point {
	return Point{X: o.X / c.ppu, Y: (c.heightPx - o.Y) / c.ppu}
}

func (c converter) launcher(o *tiled.Object) Launcher {
	l := Launcher{
		Point:     c.point(o),
		Direction: Direction(strings.ToLower(o.Properties.GetString("direction"))),
		Speed:     o.Properties.GetFloat("speed"),
		Interval:  o.Properties.GetFloat("interval"),
		ResetTime: o.Properties.GetFloat("resetTime"),
	}
	if l.Direction == "" {
		l.Direction = Left
	}
	if l.Speed <= 0 {
		l.Speed = cfg.Projectile.Speed
	}
	if l.Interval <= 0 {
		l.Interval = cfg.Projectile.Interval
	}
	if l.ResetTime <= 0 {
		l.ResetTime = cfg.Projectile.ResetTime
	}
	return l
}
