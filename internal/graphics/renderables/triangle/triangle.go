package triangle

import (
	"gl-template/internal/config"
	"gl-template/internal/graphics"
	renderer "gl-template/internal/graphics/renderer"
	"gl-template/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Corners of the triangle in normalized device coordinates
var Corners = []mgl32.Vec3{
	{-0.5, -0.5, 0.0},
	{0.5, -0.5, 0.0},
	{0.0, 0.5, 0.0},
}

// Indices into Corners, counter-clockwise
var Indices = []uint32{0, 1, 2}

// Color is passed to the fragment stage when it declares a "color" uniform
var Color = mgl32.Vec4{1.0, 0.5, 0.2, 1.0}

const floatSize = 4

// Vertices flattens corners into a tightly packed xyz buffer
func Vertices(corners []mgl32.Vec3) []float32 {
	out := make([]float32, 0, len(corners)*3)
	for _, c := range corners {
		out = append(out, c[0], c[1], c[2])
	}
	return out
}

// Triangle implements static triangle rendering
type Triangle struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32
	ebo    uint32

	indexCount int32
}

// NewTriangle creates a new triangle renderable
func NewTriangle() *Triangle {
	return &Triangle{}
}

// Init loads the shader pair and uploads the geometry
func (t *Triangle) Init() error {
	vert, frag := config.GetShaderPaths()

	var err error
	t.shader, err = graphics.NewShader(vert, frag)
	if err != nil {
		return err
	}

	t.setupTriangleVAO()
	return graphics.CheckError("triangle buffer upload")
}

// Render draws the triangle
func (t *Triangle) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderTriangle")()

	t.shader.Use()
	t.shader.SetVector4("color", Color)

	gl.BindVertexArray(t.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, t.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// SetViewport is a no-op; the geometry is already in clip space
func (t *Triangle) SetViewport(width, height int) {}

// Dispose cleans up OpenGL resources
func (t *Triangle) Dispose() {
	if t.ebo != 0 {
		gl.DeleteBuffers(1, &t.ebo)
		t.ebo = 0
	}
	if t.vbo != 0 {
		gl.DeleteBuffers(1, &t.vbo)
		t.vbo = 0
	}
	if t.vao != 0 {
		gl.DeleteVertexArrays(1, &t.vao)
		t.vao = 0
	}
	if t.shader != nil {
		t.shader.Delete()
		t.shader = nil
	}
}

func (t *Triangle) setupTriangleVAO() {
	vertices := Vertices(Corners)
	t.indexCount = int32(len(Indices))

	gl.GenVertexArrays(1, &t.vao)
	gl.GenBuffers(1, &t.vbo)
	gl.GenBuffers(1, &t.ebo)

	gl.BindVertexArray(t.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, t.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*floatSize, gl.Ptr(vertices), gl.STATIC_DRAW)

	// the element buffer binding is stored in the VAO
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, t.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(Indices)*4, gl.Ptr(Indices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*floatSize, 0)

	// unbind to reduce accidental state changes
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}
