package renderer

import (
	"errors"
	"fmt"

	"gl-template/internal/config"
	"gl-template/internal/graphics"
	"gl-template/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	ready       []bool
	width       int
	height      int

	gpu backend
}

// backend holds the GL calls the renderer issues itself
type backend struct {
	clear      func()
	viewport   func(width, height int)
	checkError func(op string) error
}

var glBackend = backend{
	clear:      clearFramebuffer,
	viewport:   setViewport,
	checkError: graphics.CheckError,
}

// NewRenderer creates a new renderer and initializes the given renderables.
// A renderable whose Init fails is reported and skipped on every frame; the
// returned error joins all Init failures.
func NewRenderer(width, height int, rs ...Renderable) (*Renderer, error) {
	r := newRenderer(glBackend, width, height, rs...)
	return r, r.init()
}

func newRenderer(gpu backend, width, height int, rs ...Renderable) *Renderer {
	return &Renderer{
		renderables: rs,
		ready:       make([]bool, len(rs)),
		width:       width,
		height:      height,
		gpu:         gpu,
	}
}

func (r *Renderer) init() error {
	r.gpu.viewport(r.width, r.height)

	var errs []error
	for i, rb := range r.renderables {
		// a partial Init may still own GL objects
		if err := rb.Init(); err != nil {
			errs = append(errs, err)
			rb.Dispose()
			continue
		}
		if err := r.gpu.checkError(fmt.Sprintf("init of renderable %d", i)); err != nil {
			errs = append(errs, err)
			rb.Dispose()
			continue
		}
		rb.SetViewport(r.width, r.height)
		r.ready[i] = true
	}
	return errors.Join(errs...)
}

// Render clears the framebuffer, draws every initialized renderable and
// reports the first GL error raised during the frame.
func (r *Renderer) Render(dt float64) error {
	defer profiling.Track("renderer.Render")()

	r.gpu.clear()

	ctx := RenderContext{
		DT:     dt,
		Width:  r.width,
		Height: r.height,
	}

	for i, rb := range r.renderables {
		if r.ready[i] {
			rb.Render(ctx)
		}
	}

	return r.gpu.checkError("render")
}

// Ready reports how many renderables initialized successfully
func (r *Renderer) Ready() int {
	n := 0
	for _, ok := range r.ready {
		if ok {
			n++
		}
	}
	return n
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		if r.ready[i] {
			r.renderables[i].Dispose()
			r.ready[i] = false
		}
	}
}

// UpdateViewport propagates new framebuffer dimensions
func (r *Renderer) UpdateViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.width = width
	r.height = height
	r.gpu.viewport(width, height)
	for i, rb := range r.renderables {
		if r.ready[i] {
			rb.SetViewport(width, height)
		}
	}
}

func clearFramebuffer() {
	c := config.GetClearColor()
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func setViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}
