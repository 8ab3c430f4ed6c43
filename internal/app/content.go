package app

import (
	"fmt"

	"github.com/Faultbox/lemniscate-torus/internal/config"
	"github.com/Faultbox/lemniscate-torus/internal/engine/scene"
	"github.com/Faultbox/lemniscate-torus/internal/sequencer"
	"github.com/Faultbox/lemniscate-torus/pkg/lemniscate"
	"github.com/Faultbox/lemniscate-torus/pkg/math"
	"github.com/Faultbox/lemniscate-torus/pkg/surface"
)

// Curve constants of the viewer.
var Curve = lemniscate.Params{Scale: 20, MajorRadius: 10}

// Mesh resolution and overlay sphere.
const (
	Segments     = 64
	Rings        = 64
	SphereRadius = 20
)

// SphereCenter places the overlay sphere on the torus' sweep axis.
var SphereCenter = math.Vec3{X: 10, Y: 0, Z: 0}

// MeshAdder registers a mesh with the renderer and returns its handle.
type MeshAdder interface {
	AddMesh(m surface.Mesh, mat scene.Material, model math.Mat4, visible bool) sequencer.Handle
}

// surfacePair is the wireframe and solid renderables of one revealed shape.
type surfacePair struct {
	Wire, Solid sequencer.Handle
}

func (p surfacePair) handles() []sequencer.Handle {
	return []sequencer.Handle{p.Wire, p.Solid}
}

func addPair(dst MeshAdder, m surface.Mesh, color [3]float32, model math.Mat4) surfacePair {
	wire, solid := scene.SurfaceMaterials(color)
	return surfacePair{
		Wire:  dst.AddMesh(m, wire, model, false),
		Solid: dst.AddMesh(m.Clone(), solid, model, false),
	}
}

// Populate builds every surface the variant reveals, registers them hidden,
// and returns the sweep phases that reveal them.
func Populate(dst MeshAdder, variant string) ([]sequencer.Phase, error) {
	switch variant {
	case config.VariantSingle, config.VariantDual:
	default:
		return nil, fmt.Errorf("unknown variant %q", variant)
	}

	horizontal := surface.BuildTorus(Curve, Segments, Rings, lemniscate.Horizontal)
	h := addPair(dst, horizontal, scene.OrientationColor(lemniscate.Horizontal), math.Identity())

	if variant == config.VariantSingle {
		return []sequencer.Phase{
			{Orientation: lemniscate.Horizontal, Reveal: h.handles()},
		}, nil
	}

	// The sphere shares the horizontal surface's colour and reveal time.
	sphere := surface.Sphere(SphereRadius, Segments, Rings)
	sp := addPair(dst, sphere, scene.OrientationColor(lemniscate.Horizontal),
		math.Translate(SphereCenter.X, SphereCenter.Y, SphereCenter.Z))

	vertical := surface.BuildTorus(Curve, Segments, Rings, lemniscate.Vertical)
	v := addPair(dst, vertical, scene.OrientationColor(lemniscate.Vertical), math.Identity())

	return []sequencer.Phase{
		{Orientation: lemniscate.Horizontal, Reveal: append(h.handles(), sp.handles()...)},
		{Orientation: lemniscate.Vertical, Reveal: v.handles()},
	}, nil
}

// startPoint is where the moving point rests before the first tick: the
// first phase's curve at the start parameter, unrotated.
func startPoint(phases []sequencer.Phase) lemniscate.Point {
	return Curve.Evaluate(sequencer.StartParam, 0, phases[0].Orientation)
}
