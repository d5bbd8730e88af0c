package movement

// dashTimer tracks an active dash and the time since the last one ended.
type dashTimer struct {
	active    bool
	elapsed   float64
	sinceLast float64
}

func (d *dashTimer) ready(cooldown float64) bool {
	return !d.active && d.sinceLast >= cooldown
}

func (d *dashTimer) start() {
	d.active = true
}

func (d *dashTimer) reset() {
	d.active = false
	d.elapsed = 0
	d.sinceLast = 0
}

// lockEpsilon absorbs float drift so 0.15s at a 0.05s step is 3 ticks, not 4.
const lockEpsilon = 1e-9

// moveLock suppresses horizontal input for a short window after a wall jump.
// Arming it again restarts the countdown.
type moveLock struct {
	remaining float64
}

func (l *moveLock) arm(d float64) {
	l.remaining = d
}

func (l *moveLock) locked() bool {
	return l.remaining > 0
}

func (l *moveLock) advance(dt float64) {
	if l.remaining <= 0 {
		return
	}
	l.remaining -= dt
	if l.remaining < lockEpsilon {
		l.remaining = 0
	}
}
