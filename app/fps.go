package app

import (
	"math"
	"time"
)

const fpsWindow = 30

// fpsMeter averages the last fpsWindow per-frame rates.
type fpsMeter struct {
	samples [fpsWindow]float64
	next    int
	n       int
}

// add records one frame that took dt. Zero-length frames carry no rate and
// are skipped.
func (m *fpsMeter) add(dt time.Duration) {
	if dt <= 0 {
		return
	}
	m.samples[m.next] = math.Round(float64(time.Second) / float64(dt))
	m.next = (m.next + 1) % fpsWindow
	if m.n < fpsWindow {
		m.n++
	}
}

// average returns the floored mean rate, or 0 before the first frame.
func (m *fpsMeter) average() int {
	if m.n == 0 {
		return 0
	}
	var sum float64
	for i := 0; i < m.n; i++ {
		sum += m.samples[i]
	}
	return int(math.Floor(sum / float64(m.n)))
}
