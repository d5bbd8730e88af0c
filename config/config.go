package config

import "image/color"

// Vector is a plain 2D value used by configuration tables.
type Vector struct {
	X, Y float64
}

// PlayerConfig contains the default character profile and the fixed
// movement constants that profiles do not override.
type PlayerConfig struct {
	// Movement
	MoveSpeed              float64 // starting (base) horizontal speed
	MaxSpeed               float64 // cap the base speed ramps toward
	SpeedIncreasePerSecond float64

	// Dash
	DashSpeed        float64
	DashDuration     float64 // seconds
	DashCooldown     float64 // seconds
	DashEffectOffset float64 // dash puff is placed this far behind the player

	// Jump
	JumpForce      float64
	ExtraJumpForce float64
	MaxAirJumps    int

	// Wall grab & jump
	CanWallGrab     bool
	GrabCheckRadius float64
	GrabRightOffset Vector
	GrabLeftOffset  Vector
	WallSlideSpeed  float64
	WallJumpForce   Vector
	WallJumpLock    float64 // seconds of ignored input after a wall jump

	// Sensing
	GroundProbeDistance float64
	VerticalThreshold   float64 // |vy| below this counts as not moving vertically

	// Dimensions (world units)
	CollisionWidth  float64
	CollisionHeight float64

	// Visual
	Sprite     string
	Animations string
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity      float64 // world units / s^2, negative is down
	MaxFallSpeed float64
	CellSize     int // resolv broadphase cell size in world units
}

// LivesConfig contains life bookkeeping values
type LivesConfig struct {
	InitialLives   int
	MaxLivesBound  int
	DeathDelay     float64 // seconds between death and level reload
	ShakeIntensity float64 // world units
	ShakeDuration  float64 // seconds
}

// FinishConfig contains level-finish values
type FinishConfig struct {
	CompleteDelay float64 // seconds between touching the flag and advancing
}

// ProjectileConfig contains defaults for enemy projectile launchers
type ProjectileConfig struct {
	Speed     float64 // world units / s
	ResetTime float64 // seconds a projectile lives before despawning
	Interval  float64 // seconds between launches
	Size      float64
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // How fast camera follows player (0.0-1.0)
}

// HUDConfig contains HUD layout values
type HUDConfig struct {
	Margin    float64
	LineGap   float64
	TextColor color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width         int
	Height        int
	PixelsPerUnit float64
	TPS           int // fixed ticks per second
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipSave    bool // Don't read or write persisted progress
	DrawSensors bool // Outline ground box and wall probes
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Lives LivesConfig
var Finish FinishConfig
var Projectile ProjectileConfig
var Camera CameraConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Sky          = color.RGBA{R: 33, G: 31, B: 48, A: 255}
	Ground       = color.RGBA{R: 110, G: 84, B: 64, A: 255}
	Cherry       = color.RGBA{R: 220, G: 30, B: 60, A: 255}
)

func init() {
	C = &Config{
		Width:         640,
		Height:        360,
		PixelsPerUnit: 32,
		TPS:           50,
	}

	Physics = PhysicsConfig{
		Gravity:      -30.0,
		MaxFallSpeed: 25.0,
		CellSize:     2,
	}

	Player = PlayerConfig{
		MoveSpeed:              7.0,
		MaxSpeed:               12.0,
		SpeedIncreasePerSecond: 0.05,

		DashSpeed:        21.0,
		DashDuration:     0.2,
		DashCooldown:     1.0,
		DashEffectOffset: 1.2,

		JumpForce:      14.0,
		ExtraJumpForce: 10.0,
		MaxAirJumps:    1,

		CanWallGrab:     false,
		GrabCheckRadius: 0.2,
		GrabRightOffset: Vector{X: 0.5, Y: -0.4},
		GrabLeftOffset:  Vector{X: -0.5, Y: -0.4},
		WallSlideSpeed:  2.5,
		WallJumpForce:   Vector{X: 15.0, Y: 15.0},
		WallJumpLock:    0.15,

		GroundProbeDistance: 0.1,
		VerticalThreshold:   0.1,

		CollisionWidth:  0.8,
		CollisionHeight: 1.0,

		Sprite:     "ninja_frog",
		Animations: "ninja_frog",
	}

	Lives = LivesConfig{
		InitialLives:   3,
		MaxLivesBound:  100,
		DeathDelay:     1.5,
		ShakeIntensity: 5.0 / 32.0,
		ShakeDuration:  0.25,
	}

	Finish = FinishConfig{
		CompleteDelay: 2.15,
	}

	Projectile = ProjectileConfig{
		Speed:     6.0,
		ResetTime: 4.0,
		Interval:  2.0,
		Size:      0.3,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
	}

	HUD = HUDConfig{
		Margin:    8,
		LineGap:   16,
		TextColor: White,
	}

	Debug = DebugConfig{
		SkipSave:    false,
		DrawSensors: false,
	}
}

// FixedDelta returns the fixed tick length in seconds.
func FixedDelta() float64 {
	return 1.0 / float64(C.TPS)
}
