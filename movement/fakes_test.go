package movement

import cfg "github.com/automoto/retro-runner/config"

type fakeBody struct {
	pos, size, vel Vec2
	sets           int
}

func (b *fakeBody) Position() Vec2 { return b.pos }
func (b *fakeBody) Size() Vec2 { return b.size }
func (b *fakeBody) Velocity() Vec2 { return b.vel }
func (b *fakeBody) SetVelocity(v Vec2) { b.vel = v; b.sets++ }

// fakeQuery answers probes from flags. Circles right of the body center hit
// the right wall, circles left of it hit the left wall.
type fakeQuery struct {
	body      *fakeBody
	ground    bool
	leftWall  bool
	rightWall bool
	layers    []string
}

func (q *fakeQuery) BoxCast(center, size, dir Vec2, distance float64, layer string) bool {
	q.layers = append(q.layers, layer)
	return q.ground
}

func (q *fakeQuery) OverlapCircle(center Vec2, radius float64, layer string) bool {
	q.layers = append(q.layers, layer)
	if center.X > q.body.pos.X {
		return q.rightWall
	}
	return q.leftWall
}

type playedEffect struct {
	kind   cfg.EffectID
	offset Vec2
}

type fakeEffects struct {
	played []playedEffect
}

func (e *fakeEffects) PlayEffect(kind cfg.EffectID, offset Vec2) {
	e.played = append(e.played, playedEffect{kind: kind, offset: offset})
}

func (e *fakeEffects) count(kind cfg.EffectID) int {
	n := 0
	for _, p := range e.played {
		if p.kind == kind {
			n++
		}
	}
	return n
}

type fakeSounds struct {
	played []cfg.SoundID
}

func (s *fakeSounds) PlaySound(id cfg.SoundID) {
	s.played = append(s.played, id)
}

type fakeAnimation struct {
	states            []int
	sprite, animation string
}

func (a *fakeAnimation) SetState(code int) { a.states = append(a.states, code) }

func (a *fakeAnimation) SetSkin(sprite, animations string) {
	a.sprite = sprite
	a.animation = animations
}

type rig struct {
	body    *fakeBody
	query   *fakeQuery
	effects *fakeEffects
	sounds  *fakeSounds
	anim    *fakeAnimation
	ctrl    *Controller
}

func newRig(conf Config) *rig {
	body := &fakeBody{size: Vec2{X: 0.8, Y: 1}}
	r := &rig{
		body:    body,
		query:   &fakeQuery{body: body},
		effects: &fakeEffects{},
		sounds:  &fakeSounds{},
		anim:    &fakeAnimation{},
	}
	r.ctrl = New(Deps{
		Query:       r.query,
		Body:        r.body,
		Effects:     r.effects,
		Sounds:      r.sounds,
		Animation:   r.anim,
		GroundLayer: "ground",
	})
	if err := r.ctrl.Init(conf); err != nil {
		panic(err)
	}
	return r
}

func wallConfig() Config {
	c := DefaultConfig()
	c.CanWallGrab = true
	return c
}

const dt = 0.02
