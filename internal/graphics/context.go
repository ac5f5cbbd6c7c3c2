package graphics

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ContextInfo describes the current GL context
type ContextInfo struct {
	Major, Minor int
	Version      string
	Renderer     string
}

// QueryContext reads version strings from the current context.
// major and minor come from the windowing layer.
func QueryContext(major, minor int) ContextInfo {
	return ContextInfo{
		Major:    major,
		Minor:    minor,
		Version:  gl.GoStr(gl.GetString(gl.VERSION)),
		Renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
	}
}

// Lines formats the startup banner
func (c ContextInfo) Lines() []string {
	lines := []string{
		fmt.Sprintf("GL context version: %d.%d", c.Major, c.Minor),
		fmt.Sprintf("Using OpenGL version: %s", c.Version),
	}
	if c.Renderer != "" {
		lines = append(lines, fmt.Sprintf("Renderer: %s", c.Renderer))
	}
	return lines
}
