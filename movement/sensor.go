package movement

import cfg "github.com/automoto/retro-runner/config"

// Contacts is the sensor reading for one tick.
type Contacts struct {
	Grounded  bool
	LeftWall  bool
	RightWall bool
}

// OnWall reports whether either wall probe is touching.
func (c Contacts) OnWall() bool {
	return c.LeftWall || c.RightWall
}

// Sliding reports the wall-slide condition: touching a wall while airborne.
func (c Contacts) Sliding() bool {
	return c.OnWall() && !c.Grounded
}

// Sensor probes the physics world around a body. It holds no state of its
// own between calls.
type Sensor struct {
	query         PhysicsQuery
	body          Body
	layer         string
	probeDistance float64
	log           *warner
}

func newSensor(d Deps, w *warner) *Sensor {
	return &Sensor{
		query:         d.Query,
		body:          d.Body,
		layer:         d.GroundLayer,
		probeDistance: cfg.Player.GroundProbeDistance,
		log:           w,
	}
}

func (s *Sensor) ready() bool {
	if s.query == nil {
		s.log.warn("query", "physics query not assigned, reporting no contacts")
		return false
	}
	if s.body == nil {
		s.log.warn("body", "body not assigned, reporting no contacts")
		return false
	}
	return true
}

// IsGrounded casts the body's footprint a short distance down against the
// ground layer.
func (s *Sensor) IsGrounded() bool {
	if !s.ready() {
		return false
	}
	return s.query.BoxCast(s.body.Position(), s.body.Size(), Down, s.probeDistance, s.layer)
}

// IsOnWall reports a wall on either side. It is always false when the
// profile does not allow wall grabbing.
func (s *Sensor) IsOnWall(c *Config) bool {
	if !c.CanWallGrab {
		return false
	}
	return s.onRightWall(c) || s.onLeftWall(c)
}

func (s *Sensor) onRightWall(c *Config) bool {
	if !c.CanWallGrab || !s.ready() {
		return false
	}
	return s.query.OverlapCircle(s.body.Position().Add(c.GrabRightOffset), c.GrabCheckRadius, s.layer)
}

func (s *Sensor) onLeftWall(c *Config) bool {
	if !c.CanWallGrab || !s.ready() {
		return false
	}
	return s.query.OverlapCircle(s.body.Position().Add(c.GrabLeftOffset), c.GrabCheckRadius, s.layer)
}

// Read samples all probes at once.
func (s *Sensor) Read(c *Config) Contacts {
	return Contacts{
		Grounded:  s.IsGrounded(),
		LeftWall:  s.onLeftWall(c),
		RightWall: s.onRightWall(c),
	}
}
