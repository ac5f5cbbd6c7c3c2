package game

import (
	"testing"
	"time"
)

func TestFPSCounterReportsOncePerInterval(t *testing.T) {
	start := time.Unix(0, 0)
	c := NewFPSCounter(time.Second, start)

	for i := 1; i < 60; i++ {
		if _, ok := c.Frame(start.Add(time.Duration(i) * time.Second / 60)); ok {
			t.Fatalf("reported early at frame %d", i)
		}
	}
	fps, ok := c.Frame(start.Add(time.Second))
	if !ok {
		t.Fatal("expected a report after one second")
	}
	if fps != 60 {
		t.Errorf("fps = %d, want 60", fps)
	}

	// next interval starts fresh
	if _, ok := c.Frame(start.Add(time.Second + time.Millisecond)); ok {
		t.Error("counter did not reset")
	}
}

func TestFPSLimiterUncapped(t *testing.T) {
	f := NewFPSLimiter()
	start := time.Now()
	for i := 0; i < 100; i++ {
		f.waitFor(0)
	}
	if !f.next.IsZero() {
		t.Error("uncapped limiter should not schedule frames")
	}
	if time.Since(start) > 50*time.Millisecond {
		t.Error("uncapped limiter should not block")
	}
}

func TestFPSLimiterPacesFrames(t *testing.T) {
	f := NewFPSLimiter()
	start := time.Now()
	for i := 0; i < 5; i++ {
		f.waitFor(100)
	}
	// 5 frames at 100 FPS is at least 50ms
	if elapsed := time.Since(start); elapsed < 45*time.Millisecond {
		t.Errorf("limiter too fast: %v", elapsed)
	}
}
