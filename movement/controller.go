package movement

import (
	"fmt"
	"math"

	cfg "github.com/automoto/retro-runner/config"
)

// InputKind distinguishes the three player actions.
type InputKind int

const (
	InputMove InputKind = iota
	InputJump
	InputDash
)

// InputEvent is delivered by the input layer. Axis is only read for
// InputMove and is clamped to [-1, 1].
type InputEvent struct {
	Kind InputKind
	Axis float64
}

// Controller owns the player's runtime movement state. It is not safe for
// concurrent use; Tick, FrameUpdate and OnInput are expected on one thread.
type Controller struct {
	deps   Deps
	sensor *Sensor
	log    warner

	conf        Config
	initialized bool

	intent     float64
	speed      float64
	airJumps   int
	dash       dashTimer
	lock       moveLock
	facingLeft bool
	state      cfg.StateID
}

// New creates a controller bound to its collaborators. Call Init before the
// first Tick.
func New(d Deps) *Controller {
	c := &Controller{deps: d, state: cfg.Idle}
	c.sensor = newSensor(d, &c.log)
	return c
}

// Init applies the profile and resets all runtime state. The air-jump
// counter starts exhausted so a character spawned mid-air cannot air jump
// until it has landed once.
func (c *Controller) Init(conf Config) error {
	if err := c.ApplyProfile(conf); err != nil {
		return fmt.Errorf("init controller: %w", err)
	}
	c.intent = 0
	c.airJumps = c.conf.MaxAirJumps
	c.dash = dashTimer{}
	c.lock = moveLock{}
	c.facingLeft = false
	c.state = cfg.Idle
	c.initialized = true
	return nil
}

// ApplyProfile validates conf and swaps it in whole. On error nothing
// changes. The current speed restarts at the new base speed.
func (c *Controller) ApplyProfile(conf Config) error {
	if err := conf.Validate(); err != nil {
		return fmt.Errorf("apply profile: %w", err)
	}
	c.conf = conf
	c.speed = conf.MoveSpeed
	if c.airJumps > conf.MaxAirJumps {
		c.airJumps = conf.MaxAirJumps
	}
	if c.deps.Animation != nil {
		c.deps.Animation.SetSkin(conf.Sprite, conf.Animations)
	} else {
		c.log.warn("animation", "animation sink not assigned, skin and state updates dropped")
	}
	return nil
}

// OnInput routes a discrete input event.
func (c *Controller) OnInput(ev InputEvent) {
	switch ev.Kind {
	case InputMove:
		c.SetIntent(ev.Axis)
	case InputJump:
		c.RequestJump()
	case InputDash:
		c.RequestDash()
	}
}

// SetIntent records the horizontal input axis. NaN counts as no input.
func (c *Controller) SetIntent(axis float64) {
	if math.IsNaN(axis) {
		axis = 0
	}
	c.intent = math.Max(-1, math.Min(1, axis))
}

// Tick runs one fixed physics step.
func (c *Controller) Tick(dt float64) {
	if !c.initialized {
		c.log.warn("init", "tick before Init, ignoring")
		return
	}

	c.lock.advance(dt)

	if c.speed < c.conf.MaxSpeed {
		c.speed = math.Min(c.speed+c.conf.SpeedIncreasePerSecond*dt, c.conf.MaxSpeed)
	}

	contacts := c.sensor.Read(&c.conf)
	sliding := contacts.Sliding()
	locked := c.lock.locked()

	if !sliding && !locked {
		v := c.velocity()
		v.X = c.intent * c.speed
		c.setVelocity(v)
	}

	if sliding && !locked {
		v := c.velocity()
		v.Y = -c.conf.WallSlideSpeed
		c.setVelocity(v)
	}

	if contacts.Grounded {
		c.airJumps = 0
	}

	c.dash.sinceLast += dt
	if c.dash.active {
		if c.dash.elapsed >= c.conf.DashDuration {
			c.dash.reset()
			c.setVelocity(Vec2{})
		} else {
			c.dash.elapsed += dt
			v := c.velocity()
			v.X = c.facingSign() * c.conf.DashSpeed
			c.setVelocity(v)
		}
	}
}

// FrameUpdate reclassifies the animation state, plays running dust and
// updates facing. It returns the state it sent to the animation sink.
func (c *Controller) FrameUpdate(dt float64) cfg.StateID {
	contacts := c.sensor.Read(&c.conf)
	locked := c.lock.locked()

	state := Classify(Snapshot{
		Grounded:  contacts.Grounded,
		OnWall:    contacts.OnWall(),
		Intent:    c.intent,
		VelocityY: c.velocity().Y,
		AirJumps:  c.airJumps,
		Locked:    locked,
	})

	if !contacts.Sliding() && !locked && c.intent != 0 {
		c.playEffect(cfg.EffectDust, Vec2{})
		c.facingLeft = c.intent < 0
	}

	c.state = state
	if c.deps.Animation != nil {
		c.deps.Animation.SetState(int(state))
	}
	return state
}

// RequestJump performs a wall jump, ground jump or air jump, in that order
// of priority. With nothing available it does nothing.
func (c *Controller) RequestJump() {
	if !c.initialized {
		return
	}
	contacts := c.sensor.Read(&c.conf)
	switch {
	case contacts.Sliding():
		c.wallJump()
	case contacts.Grounded:
		c.jump(c.conf.JumpForce)
	case c.airJumps < c.conf.MaxAirJumps:
		c.jump(c.conf.ExtraJumpForce)
		c.airJumps++
	}
}

// RequestDash starts a dash when one is off cooldown. Profiles with a zero
// dash speed cannot dash.
func (c *Controller) RequestDash() {
	if !c.initialized || c.conf.DashSpeed <= 0 {
		return
	}
	if !c.dash.ready(c.conf.DashCooldown) {
		return
	}
	c.dash.start()

	offset := -cfg.Player.DashEffectOffset
	if c.facingLeft {
		offset = cfg.Player.DashEffectOffset
	}
	c.playEffect(cfg.EffectDash, Vec2{X: offset})
}

// Flip toggles facing. With reset it forces facing right instead.
func (c *Controller) Flip(reset bool) {
	if reset {
		c.facingLeft = false
		return
	}
	c.facingLeft = !c.facingLeft
}

func (c *Controller) jump(force float64) {
	c.playEffect(cfg.EffectJump, Vec2{})
	c.playSound(cfg.SoundJump)
	v := c.velocity()
	v.Y = force
	c.setVelocity(v)
}

// wallJump pushes away from the wall the player is facing.
func (c *Controller) wallJump() {
	c.lock.arm(cfg.Player.WallJumpLock)
	c.playEffect(cfg.EffectJump, Vec2{})
	c.playSound(cfg.SoundJump)

	v := c.conf.WallJumpForce
	if !c.facingLeft {
		v.X = -v.X
	}
	c.setVelocity(v)
	c.Flip(false)
}

func (c *Controller) facingSign() float64 {
	if c.facingLeft {
		return -1
	}
	return 1
}

func (c *Controller) velocity() Vec2 {
	if c.deps.Body == nil {
		return Vec2{}
	}
	return c.deps.Body.Velocity()
}

func (c *Controller) setVelocity(v Vec2) {
	if c.deps.Body == nil {
		c.log.warn("velocity", "body not assigned, velocity changes dropped")
		return
	}
	c.deps.Body.SetVelocity(v)
}

func (c *Controller) playEffect(kind cfg.EffectID, offset Vec2) {
	if c.deps.Effects == nil {
		c.log.warn("effects", "effect player not assigned, %s effect skipped", kind)
		return
	}
	c.deps.Effects.PlayEffect(kind, offset)
}

func (c *Controller) playSound(id cfg.SoundID) {
	if c.deps.Sounds == nil {
		c.log.warn("sounds", "sound player not assigned, %s sound skipped", id)
		return
	}
	c.deps.Sounds.PlaySound(id)
}

// State is the state sent to the animation sink on the last FrameUpdate.
func (c *Controller) State() cfg.StateID { return c.state }

// Speed is the current base horizontal speed.
func (c *Controller) Speed() float64 { return c.speed }

func (c *Controller) AirJumps() int { return c.airJumps }
func (c *Controller) Dashing() bool { return c.dash.active }
func (c *Controller) Locked() bool { return c.lock.locked() }
func (c *Controller) FacingLeft() bool { return c.facingLeft }
func (c *Controller) Intent() float64 { return c.intent }
func (c *Controller) Config() Config { return c.conf }
func (c *Controller) Contacts() Contacts { return c.sensor.Read(&c.conf) }
