package config

import "sync"

// WindowSettings holds window and asset configuration
type WindowSettings struct {
	mu       sync.RWMutex
	title    string
	width    int
	height   int
	vertPath string
	fragPath string
}

var globalWindowSettings = &WindowSettings{
	title:    "GL Template",
	width:    640,
	height:   480,
	vertPath: "./shader.vert",
	fragPath: "./shader.frag",
}

// GetTitle returns the window title
func GetTitle() string {
	globalWindowSettings.mu.RLock()
	defer globalWindowSettings.mu.RUnlock()
	return globalWindowSettings.title
}

// GetWindowSize returns the default window size in screen coordinates
func GetWindowSize() (int, int) {
	globalWindowSettings.mu.RLock()
	defer globalWindowSettings.mu.RUnlock()
	return globalWindowSettings.width, globalWindowSettings.height
}

// SetWindowSize sets the default window size. Non-positive dimensions are ignored.
func SetWindowSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	globalWindowSettings.mu.Lock()
	defer globalWindowSettings.mu.Unlock()
	globalWindowSettings.width = width
	globalWindowSettings.height = height
}

// GetShaderPaths returns the vertex and fragment shader source paths
func GetShaderPaths() (vert, frag string) {
	globalWindowSettings.mu.RLock()
	defer globalWindowSettings.mu.RUnlock()
	return globalWindowSettings.vertPath, globalWindowSettings.fragPath
}

// SetShaderPaths overrides the shader source paths. Empty values keep the current path.
func SetShaderPaths(vert, frag string) {
	globalWindowSettings.mu.Lock()
	defer globalWindowSettings.mu.Unlock()
	if vert != "" {
		globalWindowSettings.vertPath = vert
	}
	if frag != "" {
		globalWindowSettings.fragPath = frag
	}
}
