// Package profile loads character profiles from YAML. A profile overrides the
// default movement tuning from config.Player; anything it leaves out keeps
// the default.
package profile

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	cfg "github.com/automoto/retro-runner/config"
	"github.com/automoto/retro-runner/movement"
)

type VecSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v VecSpec) vec() movement.Vec2 {
	return movement.Vec2{X: v.X, Y: v.Y}
}

type DashSpec struct {
	Speed    float64 `yaml:"speed"`
	Duration float64 `yaml:"duration"`
	Cooldown float64 `yaml:"cooldown"`
}

type WallGrabSpec struct {
	Enabled     bool    `yaml:"enabled"`
	Radius      float64 `yaml:"radius"`
	RightOffset VecSpec `yaml:"right_offset"`
	LeftOffset  VecSpec `yaml:"left_offset"`
	SlideSpeed  float64 `yaml:"slide_speed"`
	JumpForce   VecSpec `yaml:"jump_force"`
}

type LivesSpec struct {
	Initial  int `yaml:"initial"`
	MaxBound int `yaml:"max_bound"`
}

type Profile struct {
	Name           string       `yaml:"name"`
	Sprite         string       `yaml:"sprite"`
	Animations     string       `yaml:"animations"`
	MoveSpeed      float64      `yaml:"move_speed"`
	MaxSpeed       float64      `yaml:"max_speed"`
	SpeedRamp      float64      `yaml:"speed_ramp"`
	JumpForce      float64      `yaml:"jump_force"`
	ExtraJumpForce float64      `yaml:"extra_jump_force"`
	MaxAirJumps    int          `yaml:"max_air_jumps"`
	Dash           DashSpec     `yaml:"dash"`
	WallGrab       WallGrabSpec `yaml:"wall_grab"`
	Lives          LivesSpec    `yaml:"lives"`

	// Path is the file the profile was read from.
	Path string `yaml:"-"`
}

// Default returns the profile equivalent to config.Player and config.Lives.
func Default() Profile {
	p := cfg.Player
	return Profile{
		Name:           "default",
		Sprite:         p.Sprite,
		Animations:     p.Animations,
		MoveSpeed:      p.MoveSpeed,
		MaxSpeed:       p.MaxSpeed,
		SpeedRamp:      p.SpeedIncreasePerSecond,
		JumpForce:      p.JumpForce,
		ExtraJumpForce: p.ExtraJumpForce,
		MaxAirJumps:    p.MaxAirJumps,
		Dash: DashSpec{
			Speed:    p.DashSpeed,
			Duration: p.DashDuration,
			Cooldown: p.DashCooldown,
		},
		WallGrab: WallGrabSpec{
			Enabled:     p.CanWallGrab,
			Radius:      p.GrabCheckRadius,
			RightOffset: VecSpec{X: p.GrabRightOffset.X, Y: p.GrabRightOffset.Y},
			LeftOffset:  VecSpec{X: p.GrabLeftOffset.X, Y: p.GrabLeftOffset.Y},
			SlideSpeed:  p.WallSlideSpeed,
			JumpForce:   VecSpec{X: p.WallJumpForce.X, Y: p.WallJumpForce.Y},
		},
		Lives: LivesSpec{
			Initial:  cfg.Lives.InitialLives,
			MaxBound: cfg.Lives.MaxLivesBound,
		},
	}
}

// Parse decodes YAML on top of Default, so omitted keys keep their defaults.
func Parse(data []byte) (*Profile, error) {
	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("profile: unmarshal: %w", err)
	}
	if p.Lives.Initial < 0 || p.Lives.MaxBound < p.Lives.Initial {
		return nil, fmt.Errorf("profile %s: lives %d outside [0, %d]", p.Name, p.Lives.Initial, p.Lives.MaxBound)
	}
	if _, err := p.ToConfig(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Load reads and validates one profile from fsys.
func Load(fsys fs.FS, name string) (*Profile, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("profile: load %s: %w", name, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("profile: %s: %w", name, err)
	}
	p.Path = name
	if p.Name == "" || p.Name == "default" {
		p.Name = strings.TrimSuffix(path.Base(name), path.Ext(name))
	}
	return p, nil
}

// LoadAll loads every .yaml/.yml file in dir, ordered by file name. The
// order is the character selection order.
func LoadAll(fsys fs.FS, dir string) ([]*Profile, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("profile: read %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && isProfileFile(e.Name()) {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("profile: no profiles found in %s", dir)
	}
	sort.Strings(names)

	profiles := make([]*Profile, 0, len(names))
	for _, n := range names {
		p, err := Load(fsys, path.Join(dir, n))
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// ToConfig converts the profile into a validated movement config.
func (p *Profile) ToConfig() (movement.Config, error) {
	c := movement.Config{
		MoveSpeed:              p.MoveSpeed,
		MaxSpeed:               p.MaxSpeed,
		SpeedIncreasePerSecond: p.SpeedRamp,
		JumpForce:              p.JumpForce,
		ExtraJumpForce:         p.ExtraJumpForce,
		MaxAirJumps:            p.MaxAirJumps,
		DashSpeed:              p.Dash.Speed,
		DashDuration:           p.Dash.Duration,
		DashCooldown:           p.Dash.Cooldown,
		CanWallGrab:            p.WallGrab.Enabled,
		GrabCheckRadius:        p.WallGrab.Radius,
		GrabRightOffset:        p.WallGrab.RightOffset.vec(),
		GrabLeftOffset:         p.WallGrab.LeftOffset.vec(),
		WallSlideSpeed:         p.WallGrab.SlideSpeed,
		WallJumpForce:          p.WallGrab.JumpForce.vec(),
		Sprite:                 p.Sprite,
		Animations:             p.Animations,
	}
	if err := c.Validate(); err != nil {
		return movement.Config{}, fmt.Errorf("profile %s: %w", p.Name, err)
	}
	return c, nil
}

func isProfileFile(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
