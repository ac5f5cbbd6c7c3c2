package game

import "time"

// FPSCounter counts frames and reports a rate once per interval
type FPSCounter struct {
	interval time.Duration
	frames   int
	last     time.Time
}

// NewFPSCounter starts counting from now
func NewFPSCounter(interval time.Duration, now time.Time) *FPSCounter {
	return &FPSCounter{interval: interval, last: now}
}

// Frame records one presented frame. When the interval has elapsed it
// returns the rounded rate and true, and starts a new interval.
func (c *FPSCounter) Frame(now time.Time) (int, bool) {
	c.frames++
	elapsed := now.Sub(c.last)
	if elapsed < c.interval {
		return 0, false
	}
	fps := int(float64(c.frames)/elapsed.Seconds() + 0.5)
	c.frames = 0
	c.last = now
	return fps, true
}
