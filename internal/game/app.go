package game

import (
	"log"
	"time"

	"gl-template/internal/config"
	"gl-template/internal/graphics"
	"gl-template/internal/graphics/renderables/triangle"
	renderer "gl-template/internal/graphics/renderer"
	"gl-template/internal/input"
	"gl-template/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type App struct {
	window       *glfw.Window
	inputManager *input.InputManager
	renderer     *renderer.Renderer

	fpsLimiter *FPSLimiter
	fpsCounter *FPSCounter
	lastTime   time.Time

	showProfile bool
	// lastRenderErr suppresses repeats of the same per-frame GL error
	lastRenderErr string
}

// NewApp prints the context banner and realizes the renderables. A failed
// realize is logged; the window stays open and keeps clearing.
func NewApp(window *glfw.Window, im *input.InputManager) *App {
	info := graphics.QueryContext(
		window.GetAttrib(glfw.ContextVersionMajor),
		window.GetAttrib(glfw.ContextVersionMinor),
	)
	for _, line := range info.Lines() {
		log.Println(line)
	}

	fbW, fbH := window.GetFramebufferSize()
	r, err := renderer.NewRenderer(fbW, fbH, triangle.NewTriangle())
	if err != nil {
		log.Printf("Failed to initialize renderer: %v", err)
	}

	a := &App{
		window:       window,
		inputManager: im,
		renderer:     r,
		fpsLimiter:   NewFPSLimiter(),
		fpsCounter:   NewFPSCounter(time.Second, time.Now()),
		lastTime:     time.Now(),
	}

	im.SetKeyCallback(window)
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		a.renderer.UpdateViewport(width, height)
		a.RefreshRender()
	})

	return a
}

func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

// Dispose releases GL resources; call while the context is still current
func (a *App) Dispose() {
	a.renderer.Dispose()
}

func (a *App) tick() {
	profiling.ResetFrame()
	now := time.Now()
	dt := now.Sub(a.lastTime).Seconds()
	a.lastTime = now

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()
	a.handleInput()

	a.render(dt)

	func() { defer profiling.Track("glfw.SwapBuffers")(); a.window.SwapBuffers() }()

	if fps, ok := a.fpsCounter.Frame(time.Now()); ok {
		if a.showProfile {
			glfwDur := profiling.SumWithPrefix("glfw.").Round(time.Microsecond)
			log.Printf("FPS: %d (glfw %v; %s)", fps, glfwDur, profiling.TopN(3))
		} else {
			log.Printf("FPS: %d", fps)
		}
	}

	a.inputManager.PostUpdate()
	a.fpsLimiter.Wait()
}

func (a *App) handleInput() {
	if a.inputManager.JustPressed(input.ActionQuit) {
		a.window.SetShouldClose(true)
	}
	if a.inputManager.JustPressed(input.ActionToggleVSync) {
		vsync := !config.GetVSync()
		config.SetVSync(vsync)
		applySwapInterval(vsync)
		log.Printf("VSync: %v", vsync)
	}
	if a.inputManager.JustPressed(input.ActionToggleProfiling) {
		a.showProfile = !a.showProfile
	}
	if a.inputManager.JustPressed(input.ActionCycleFPSLimit) {
		log.Printf("FPS limit: %s", config.FPSLimitLabel(config.CycleFPSLimit()))
	}
}

func (a *App) render(dt float64) {
	err := a.renderer.Render(dt)
	if err == nil {
		a.lastRenderErr = ""
		return
	}
	if msg := err.Error(); msg != a.lastRenderErr {
		log.Println(msg)
		a.lastRenderErr = msg
	}
}

// RefreshRender repaints without advancing time (used during window resize)
func (a *App) RefreshRender() {
	a.render(0)
	a.window.SwapBuffers()
}
