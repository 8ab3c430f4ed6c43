// Package scene keeps the GPU objects of the sweep animation and draws them.
//
// Scene implements sequencer.Sink: the sequencer adds and removes polylines
// and moves the point, while the application registers the surface meshes
// up front and the sequencer reveals them by handle.
package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/lemniscate-torus/internal/engine/lighting"
	"github.com/Faultbox/lemniscate-torus/internal/engine/shader"
	"github.com/Faultbox/lemniscate-torus/internal/sequencer"
	"github.com/Faultbox/lemniscate-torus/pkg/lemniscate"
	"github.com/Faultbox/lemniscate-torus/pkg/math"
	"github.com/Faultbox/lemniscate-torus/pkg/surface"
)

// Handle identifies an object in the scene.
type Handle = sequencer.Handle

type primitive int

const (
	primLines primitive = iota
	primPoints
	primTriangles
)

type object struct {
	handle   Handle
	prim     primitive
	vao      uint32
	vbo      uint32
	ebo      uint32
	count    int32 // vertices, or indices when ebo != 0
	material Material
	model    math.Mat4
	center   math.Vec3 // local space
	visible  bool
}

func (o *object) worldCenter() math.Vec3 {
	return o.model.TransformVec3(o.center)
}

// View is what a frame needs from the camera.
type View struct {
	View       math.Mat4
	Projection math.Mat4
	Eye        math.Vec3
	Height     int // viewport height in pixels
}

// Scene owns every renderable. It is not safe for concurrent use.
type Scene struct {
	log     *zap.Logger
	flat    *shader.Program
	lit     *shader.Program
	objects map[Handle]*object
	next    Handle
	point   Handle
	rig     lighting.Rig
}

var _ sequencer.Sink = (*Scene)(nil)

// New compiles the scene programs and creates the hidden moving point.
func New(rig lighting.Rig, log *zap.Logger) (*Scene, error) {
	if log == nil {
		log = zap.NewNop()
	}

	flat, err := shader.NewProgram(flatVertexShader, flatFragmentShader,
		"uViewProj", "uView", "uModel", "uColor", "uPointSize", "uPointScale")
	if err != nil {
		return nil, fmt.Errorf("flat shader: %w", err)
	}
	lit, err := shader.NewProgram(litVertexShader, litFragmentShader,
		"uViewProj", "uModel", "uColor", "uAmbient", "uLightDir", "uLightColor", "uEye", "uShininess")
	if err != nil {
		flat.Delete()
		return nil, fmt.Errorf("lit shader: %w", err)
	}

	s := &Scene{
		log:     log,
		flat:    flat,
		lit:     lit,
		objects: make(map[Handle]*object),
		next:    sequencer.NoHandle + 1,
		rig:     rig,
	}

	// The point stays hidden until it is first placed.
	s.point = s.add(primPoints, []float32{0, 0, 0}, 3, nil, PointMaterial(), math.Identity(), false)
	return s, nil
}

// AddMesh uploads a triangle mesh with generated normals. An empty mesh
// still gets a handle but owns no buffers and never draws.
func (s *Scene) AddMesh(m surface.Mesh, mat Material, model math.Mat4, visible bool) Handle {
	if m.Empty() {
		s.log.Warn("empty mesh registered", zap.Bool("wireframe", mat.Wireframe))
		return s.add(primTriangles, nil, 6, nil, mat, model, visible)
	}

	interleaved := surface.Interleave(m, surface.ComputeNormals(m))
	h := s.add(primTriangles, interleaved, 6, m.Indices, mat, model, visible)
	s.objects[h].center = centroid(m.Vertices)

	s.log.Debug("mesh added",
		zap.Uint32("handle", uint32(h)),
		zap.Int("vertices", m.VertexCount()),
		zap.Int("triangles", m.TriangleCount()),
		zap.Bool("wireframe", mat.Wireframe),
	)
	return h
}

// MovePoint repositions the moving point.
func (s *Scene) MovePoint(p lemniscate.Point) {
	o := s.objects[s.point]
	v := p.Vec3()
	o.model = math.Translate(v.X, v.Y, v.Z)
	o.visible = true
}

// AddPolyline uploads a line strip through points.
func (s *Scene) AddPolyline(o lemniscate.Orientation, points []lemniscate.Point) Handle {
	vertices := polylineVertices(points)
	h := s.add(primLines, vertices, 3, nil, CurveMaterial(o), math.Identity(), true)
	s.objects[h].center = centroid(vertices)
	return h
}

// Remove destroys an object and frees its buffers. Unknown handles are ignored.
func (s *Scene) Remove(h Handle) {
	o, ok := s.objects[h]
	if !ok {
		return
	}
	release(o)
	delete(s.objects, h)
}

// SetVisible toggles an object's visibility.
func (s *Scene) SetVisible(h Handle, visible bool) {
	if o, ok := s.objects[h]; ok {
		o.visible = visible
		s.log.Debug("visibility changed", zap.Uint32("handle", uint32(h)), zap.Bool("visible", visible))
	}
}

// Visible reports whether h exists and is shown.
func (s *Scene) Visible(h Handle) bool {
	o, ok := s.objects[h]
	return ok && o.visible
}

// Len returns the number of live objects, the moving point included.
func (s *Scene) Len() int {
	return len(s.objects)
}

// add uploads vertex data with the given float stride and registers it.
func (s *Scene) add(prim primitive, vertices []float32, stride int, indices []uint32, mat Material, model math.Mat4, visible bool) Handle {
	o := &object{
		handle:   s.next,
		prim:     prim,
		material: mat,
		model:    model,
		visible:  visible,
		count:    int32(len(vertices) / stride),
	}
	s.next++

	if len(vertices) > 0 {
		gl.GenVertexArrays(1, &o.vao)
		gl.BindVertexArray(o.vao)

		gl.GenBuffers(1, &o.vbo)
		gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
		gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

		gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(stride*4), 0)
		gl.EnableVertexAttribArray(0)
		if stride == 6 {
			gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(stride*4), 3*4)
			gl.EnableVertexAttribArray(1)
		}

		if len(indices) > 0 {
			gl.GenBuffers(1, &o.ebo)
			gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, o.ebo)
			gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
			o.count = int32(len(indices))
		}

		gl.BindVertexArray(0)
	}

	s.objects[o.handle] = o
	return o.handle
}

func release(o *object) {
	if o.ebo != 0 {
		gl.DeleteBuffers(1, &o.ebo)
	}
	if o.vbo != 0 {
		gl.DeleteBuffers(1, &o.vbo)
	}
	if o.vao != 0 {
		gl.DeleteVertexArrays(1, &o.vao)
	}
}

// Render draws every visible object: opaque ones first, then transparent
// ones back to front.
func (s *Scene) Render(v View) {
	viewProj := v.Projection.Mul(v.View)
	ambient, lightDir, lightColor := s.rig.Uniforms()

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.Disable(gl.CULL_FACE)

	s.flat.Use()
	s.flat.SetMat4("uViewProj", viewProj)
	s.flat.SetMat4("uView", v.View)
	s.flat.SetFloat("uPointScale", float32(v.Height)/2)

	s.lit.Use()
	s.lit.SetMat4("uViewProj", viewProj)
	s.lit.SetVec3("uAmbient", ambient)
	s.lit.SetVec3("uLightDir", lightDir)
	s.lit.SetVec3("uLightColor", lightColor)
	s.lit.SetVec3("uEye", v.Eye.Array())
	s.lit.SetFloat("uShininess", 30)

	for _, o := range drawOrder(s.objects, v.Eye) {
		s.draw(o)
	}

	gl.DepthMask(true)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	gl.BindVertexArray(0)
}

func (s *Scene) draw(o *object) {
	p := s.flat
	if o.material.Lit {
		p = s.lit
	}
	p.Use()
	p.SetMat4("uModel", o.model)
	c := o.material.Color
	p.SetVec4("uColor", [4]float32{c[0], c[1], c[2], o.material.Opacity})

	// Translucent surfaces overlap each other; they test depth but do not write it.
	gl.DepthMask(!o.material.Transparent())

	if o.material.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	gl.BindVertexArray(o.vao)
	switch o.prim {
	case primLines:
		p.SetFloat("uPointSize", 0)
		gl.DrawArrays(gl.LINE_STRIP, 0, o.count)
	case primPoints:
		p.SetFloat("uPointSize", MovingPointSize)
		gl.DrawArrays(gl.POINTS, 0, o.count)
	case primTriangles:
		gl.DrawElementsWithOffset(gl.TRIANGLES, o.count, gl.UNSIGNED_INT, 0)
	}
}

// Close frees every object and both programs.
func (s *Scene) Close() {
	for h, o := range s.objects {
		release(o)
		delete(s.objects, h)
	}
	s.flat.Delete()
	s.lit.Delete()
	s.log.Debug("scene closed")
}
