package overlay

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/lemniscate-torus/internal/engine/shader"
	"github.com/Faultbox/lemniscate-torus/pkg/math"
)

const quadVertexShader = `#version 410 core
layout (location = 0) in vec2 aCorner;

uniform vec4 uRect; // x, y, w, h in pixels, origin top-left
uniform mat4 uProjection;

out vec2 vUV;

void main() {
	vec2 px = uRect.xy + aCorner * uRect.zw;
	gl_Position = uProjection * vec4(px, 0.0, 1.0);
	vUV = aCorner;
}
`

const quadFragmentShader = `#version 410 core
in vec2 vUV;

uniform sampler2D uTexture;

out vec4 FragColor;

void main() {
	FragColor = texture(uTexture, vUV);
}
`

// panelBlend composites the raster, which image.RGBA stores premultiplied.
var panelBlend = [2]uint32{gl.ONE, gl.ONE_MINUS_SRC_ALPHA}

// Renderer uploads a Panel's raster and draws it as a screen-space quad.
type Renderer struct {
	program *shader.Program
	vao     uint32
	vbo     uint32
	texture uint32
	texW    int
	texH    int
}

// NewRenderer creates the quad program and buffers. It needs a current GL context.
func NewRenderer() (*Renderer, error) {
	program, err := shader.NewProgram(quadVertexShader, quadFragmentShader, "uRect", "uProjection", "uTexture")
	if err != nil {
		return nil, fmt.Errorf("overlay shader: %w", err)
	}
	r := &Renderer{program: program}

	// Two triangles covering the unit square; corners double as UVs.
	corners := []float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(corners)*4, gl.Ptr(corners), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)

	gl.GenTextures(1, &r.texture)
	gl.BindTexture(gl.TEXTURE_2D, r.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return r, nil
}

// Draw renders p if visible, re-uploading its raster when the text changed.
func (r *Renderer) Draw(p *Panel, viewportW, viewportH int) {
	if !p.Visible() || viewportW <= 0 || viewportH <= 0 {
		return
	}
	if p.Dirty() || r.texW == 0 {
		r.upload(p)
	}

	panel, _ := p.Layout()

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(panelBlend[0], panelBlend[1])
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)

	r.program.Use()
	r.program.SetVec4("uRect", [4]float32{float32(panel.X), float32(panel.Y), float32(panel.W), float32(panel.H)})
	r.program.SetMat4("uProjection", screenProjection(viewportW, viewportH))
	r.program.SetInt("uTexture", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.texture)
	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)

	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.DEPTH_TEST)
}

// screenProjection maps pixel coordinates with a top-left origin to clip space.
func screenProjection(w, h int) math.Mat4 {
	return math.Ortho(0, float32(w), float32(h), 0, -1, 1)
}

func (r *Renderer) upload(p *Panel) {
	img := p.Rasterize()
	b := img.Bounds()

	gl.BindTexture(gl.TEXTURE_2D, r.texture)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(b.Dx()), int32(b.Dy()), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	r.texW, r.texH = b.Dx(), b.Dy()
}

// Close releases GPU resources.
func (r *Renderer) Close() {
	if r.texture != 0 {
		gl.DeleteTextures(1, &r.texture)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != nil {
		r.program.Delete()
	}
}
