package config

import (
	"strconv"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderSettings holds render configuration
type RenderSettings struct {
	mu         sync.RWMutex
	clearColor mgl32.Vec4
	fpsLimit   int // 0 means uncapped
	vsync      bool
}

var globalRenderSettings = &RenderSettings{
	clearColor: mgl32.Vec4{0, 0, 0, 1},
	fpsLimit:   0,
	vsync:      true,
}

// GetClearColor returns the color the framebuffer is cleared to each frame
func GetClearColor() mgl32.Vec4 {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.clearColor
}

// SetClearColor sets the clear color, clamping each channel to [0, 1]
func SetClearColor(c mgl32.Vec4) {
	for i := range c {
		c[i] = mgl32.Clamp(c[i], 0, 1)
	}

	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.clearColor = c
}

// GetFPSLimit returns the frame cap, 0 when uncapped
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame cap
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	// Clamp to reasonable values
	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}

	globalRenderSettings.fpsLimit = limit
}

// GetVSync returns whether buffer swaps wait for vertical blank
func GetVSync() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.vsync
}

// SetVSync toggles vertical sync
func SetVSync(enabled bool) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.vsync = enabled
}

// FPSLimitSteps are the caps cycled through at runtime; 0 is uncapped
var FPSLimitSteps = []int{0, 30, 60, 120, 240}

// NextFPSLimit returns the step after current. Values between steps move to
// the next larger step; past the last step it wraps to uncapped.
func NextFPSLimit(current int) int {
	for _, step := range FPSLimitSteps {
		if step > current {
			return step
		}
	}
	return FPSLimitSteps[0]
}

// CycleFPSLimit advances the frame cap to the next step and returns it
func CycleFPSLimit() int {
	next := NextFPSLimit(GetFPSLimit())
	SetFPSLimit(next)
	return GetFPSLimit()
}

// FPSLimitLabel formats a frame cap for display
func FPSLimitLabel(limit int) string {
	if limit <= 0 {
		return "Uncapped"
	}
	return strconv.Itoa(limit) + " FPS"
}
