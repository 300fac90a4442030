// Package glcanvas implements graphics.Canvas on an OpenGL 4.1 core context.
// Every call must happen on the thread that owns the context.
package glcanvas

import (
	"fmt"
	"image"
	"math"
	"mini-orrery/internal/graphics"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const vertexStride = int32(unsafe.Sizeof(graphics.Vertex{}))

type meshKind int

const (
	meshSphere meshKind = iota
	meshDisk
	meshCylinder
)

// meshKey identifies a unit mesh; sizes are applied through the model matrix
type meshKey struct {
	kind   meshKind
	a, b   float32 // shape ratios, quantized
	inside bool
}

type gpuMesh struct {
	vao, vbo, ebo uint32
	count         int32
}

// Canvas draws through a single shader program, caching one GPU mesh per shape
type Canvas struct {
	shader *Shader
	meshes map[meshKey]*gpuMesh

	// streaming buffer for immediate primitives
	dynVAO, dynVBO uint32

	state   graphics.RenderState
	proj    mgl32.Mat4
	view    mgl32.Mat4
	texture graphics.TextureHandle
	color   mgl32.Vec4

	width, height int
	textures      []uint32
}

// New compiles the program and puts the context into the default state
func New(width, height int) (*Canvas, error) {
	shader, err := NewShader(vertexSource, fragmentSource)
	if err != nil {
		return nil, fmt.Errorf("canvas shader: %w", err)
	}

	c := &Canvas{
		shader: shader,
		meshes: make(map[meshKey]*gpuMesh),
		proj:   mgl32.Ident4(),
		view:   mgl32.Ident4(),
		color:  graphics.White,
	}

	gl.GenVertexArrays(1, &c.dynVAO)
	gl.GenBuffers(1, &c.dynVBO)
	gl.BindVertexArray(c.dynVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, c.dynVBO)
	setupAttributes()
	gl.BindVertexArray(0)

	gl.Disable(gl.CULL_FACE)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(0, 0, 0, 1)
	c.SetViewport(width, height)
	c.applyState(graphics.DefaultState())

	shader.Use()
	shader.SetInt("uTex", 0)
	return c, nil
}

func setupAttributes() {
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexStride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, vertexStride, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 4, gl.FLOAT, false, vertexStride, 5*4)
}

// SetViewport resizes the GL viewport
func (c *Canvas) SetViewport(width, height int) {
	c.width, c.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (c *Canvas) Clear() {
	// depth writes must be on for the depth clear to take effect
	gl.DepthMask(true)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.DepthMask(c.state.DepthWrite)
}

func (c *Canvas) State() graphics.RenderState { return c.state }

func (c *Canvas) SetState(s graphics.RenderState) {
	if s != c.state {
		c.applyState(s)
	}
}

func (c *Canvas) applyState(s graphics.RenderState) {
	enable(gl.DEPTH_TEST, s.DepthTest)
	enable(gl.BLEND, s.Blend)
	gl.DepthMask(s.DepthWrite)
	c.state = s
}

func enable(flag uint32, on bool) {
	if on {
		gl.Enable(flag)
	} else {
		gl.Disable(flag)
	}
}

func (c *Canvas) Projection() mgl32.Mat4     { return c.proj }
func (c *Canvas) SetProjection(m mgl32.Mat4) { c.proj = m }
func (c *Canvas) View() mgl32.Mat4           { return c.view }
func (c *Canvas) SetView(m mgl32.Mat4)       { c.view = m }

func (c *Canvas) BindTexture(h graphics.TextureHandle) {
	c.texture = h
}

func (c *Canvas) SetColor(col mgl32.Vec4) {
	c.color = col
}

func (c *Canvas) DrawSphere(model mgl32.Mat4, radius float32, inside bool) {
	if radius <= 0 {
		return
	}
	m := c.mesh(meshKey{kind: meshSphere, inside: inside})
	c.drawMesh(m, model.Mul4(mgl32.Scale3D(radius, radius, radius)))
}

func (c *Canvas) DrawDisk(model mgl32.Mat4, inner, outer float32) {
	if outer <= 0 {
		return
	}
	m := c.mesh(meshKey{kind: meshDisk, a: quantize(inner / outer)})
	c.drawMesh(m, model.Mul4(mgl32.Scale3D(outer, outer, 1)))
}

func (c *Canvas) DrawCylinder(model mgl32.Mat4, base, top, height float32) {
	r := max(base, top)
	if r <= 0 || height == 0 {
		return
	}
	m := c.mesh(meshKey{kind: meshCylinder, a: quantize(base / r), b: quantize(top / r)})
	c.drawMesh(m, model.Mul4(mgl32.Scale3D(r, r, height)))
}

func (c *Canvas) DrawPrimitive(model mgl32.Mat4, p graphics.Primitive, verts []graphics.Vertex) {
	mvp := c.proj.Mul4(c.view).Mul4(model)
	var mode uint32
	switch p {
	case graphics.Lines, graphics.LineLoop:
		mode = gl.LINES
		if p == graphics.LineLoop {
			mode = gl.LINE_LOOP
		}
		// a forward-compatible core context only rasterizes 1px lines
		if c.state.LineWidth > 1 {
			verts = graphics.WideLines(mvp, c.width, c.height, verts, p == graphics.LineLoop, c.state.LineWidth)
			mvp = mgl32.Ident4()
			mode = gl.TRIANGLES
		}
	default:
		mode = gl.TRIANGLES
		verts = graphics.Triangulate(verts)
	}
	if len(verts) == 0 {
		return
	}

	// vertex colours carry the whole colour for primitives
	c.bindProgram(mvp, graphics.White)
	gl.BindVertexArray(c.dynVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, c.dynVBO)
	size := len(verts) * int(vertexStride)
	gl.BufferData(gl.ARRAY_BUFFER, size, gl.Ptr(verts), gl.STREAM_DRAW)
	gl.DrawArrays(mode, 0, int32(len(verts)))
	gl.BindVertexArray(0)
}

func (c *Canvas) drawMesh(m *gpuMesh, model mgl32.Mat4) {
	c.bindProgram(c.proj.Mul4(c.view).Mul4(model), c.color)
	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

func (c *Canvas) bindProgram(mvp mgl32.Mat4, col mgl32.Vec4) {
	c.shader.Use()
	c.shader.SetMatrix4("uMVP", &mvp[0])
	c.shader.SetVector4("uColor",
		mgl32.Clamp(col[0], 0, 1), mgl32.Clamp(col[1], 0, 1),
		mgl32.Clamp(col[2], 0, 1), mgl32.Clamp(col[3], 0, 1))

	mode := int32(0)
	if c.state.Texturing && c.texture != 0 {
		mode = 1
		if c.state.TexMode == graphics.TexReplace {
			mode = 2
		}
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, uint32(c.texture))
	}
	c.shader.SetInt("uTexMode", mode)
}

func (c *Canvas) mesh(key meshKey) *gpuMesh {
	if m, ok := c.meshes[key]; ok {
		return m
	}
	var src graphics.Mesh
	switch key.kind {
	case meshSphere:
		src = graphics.UnitSphere(graphics.SphereSlices, graphics.SphereStacks, key.inside)
	case meshDisk:
		src = graphics.UnitDisk(key.a, graphics.DiskSlices, graphics.DiskLoops)
	default:
		src = graphics.UnitCylinder(key.a, key.b, graphics.CylinderSlices, graphics.CylinderStacks)
	}
	m := upload(src)
	c.meshes[key] = m
	return m
}

func upload(src graphics.Mesh) *gpuMesh {
	m := &gpuMesh{count: int32(len(src.Indices))}
	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.GenBuffers(1, &m.ebo)

	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(src.Vertices)*int(vertexStride), gl.Ptr(src.Vertices), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(src.Indices)*4, gl.Ptr(src.Indices), gl.STATIC_DRAW)
	setupAttributes()
	gl.BindVertexArray(0)
	return m
}

func quantize(r float32) float32 {
	return float32(math.Round(float64(r)*1000) / 1000)
}

// Upload creates a linear-filtered, repeating RGBA texture
func (c *Canvas) Upload(img *image.RGBA) (graphics.TextureHandle, error) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return 0, fmt.Errorf("empty image %v", b)
	}
	if img.Stride != b.Dx()*4 {
		packed := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		for y := 0; y < b.Dy(); y++ {
			copy(packed.Pix[y*packed.Stride:(y+1)*packed.Stride], img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):])
		}
		img = packed
	}

	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(b.Dx()),
		int32(b.Dy()),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix),
	)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	c.textures = append(c.textures, texture)
	return graphics.TextureHandle(texture), nil
}

// Dispose releases every GL object the canvas created
func (c *Canvas) Dispose() {
	for _, m := range c.meshes {
		gl.DeleteVertexArrays(1, &m.vao)
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteBuffers(1, &m.ebo)
	}
	c.meshes = make(map[meshKey]*gpuMesh)
	if c.dynVAO != 0 {
		gl.DeleteVertexArrays(1, &c.dynVAO)
		gl.DeleteBuffers(1, &c.dynVBO)
		c.dynVAO, c.dynVBO = 0, 0
	}
	if len(c.textures) > 0 {
		gl.DeleteTextures(int32(len(c.textures)), &c.textures[0])
		c.textures = nil
	}
	c.shader.Delete()
}
