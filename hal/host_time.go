package hal

import "time"

type hostTime struct {
	now     func() time.Time
	start   time.Time
	elapsed time.Duration
}

func newHostTime() *hostTime {
	return &hostTime{now: time.Now}
}

func (t *hostTime) Elapsed() time.Duration { return t.elapsed }

// step samples the wall clock. The first call anchors the clock at zero.
func (t *hostTime) step() {
	now := t.now()
	if t.start.IsZero() {
		t.start = now
		return
	}
	if d := now.Sub(t.start); d > t.elapsed {
		t.elapsed = d
	}
}

// advance moves the clock forward by a fixed amount, independent of the wall
// clock. Headless runs use it to stay deterministic.
func (t *hostTime) advance(d time.Duration) {
	if d > 0 {
		t.elapsed += d
	}
}
