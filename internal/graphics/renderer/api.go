package renderer

// RenderContext provides shared context for all renderables
type RenderContext struct {
	DT     float64
	Width  int
	Height int
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
