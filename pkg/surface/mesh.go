// Package surface builds the triangulated surfaces shown once a sweep completes.
package surface

import (
	"math"

	"github.com/Faultbox/lemniscate-torus/pkg/lemniscate"
)

// Mesh holds flattened vertex data ready for GPU upload.
type Mesh struct {
	Vertices []float32 // x, y, z per vertex
	UVs      []float32 // u, v per vertex
	Indices  []uint32  // three per triangle
}

// VertexCount returns the number of vertices.
func (m Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Empty reports whether the mesh has nothing to draw.
func (m Mesh) Empty() bool {
	return len(m.Indices) == 0
}

// Clone returns a deep copy, so a wireframe and a solid renderable can own
// separate buffers without rebuilding the geometry.
func (m Mesh) Clone() Mesh {
	return Mesh{
		Vertices: append([]float32(nil), m.Vertices...),
		UVs:      append([]float32(nil), m.UVs...),
		Indices:  append([]uint32(nil), m.Indices...),
	}
}

// BuildTorus sweeps the lemniscate lobe a full turn and triangulates the result.
//
// Vertices are laid out ring-major, segment-minor on a (rings+1)×(segments+1)
// grid; the seam rows and columns are duplicated so UVs stay continuous.
// The result always has 3·(rings+1)·(segments+1) vertex floats and
// 6·rings·segments indices. Non-positive resolutions yield an empty mesh.
func BuildTorus(p lemniscate.Params, segments, rings int, o lemniscate.Orientation) Mesh {
	if segments < 1 || rings < 1 {
		return Mesh{}
	}

	count := (rings + 1) * (segments + 1)
	m := Mesh{
		Vertices: make([]float32, 0, count*3),
		UVs:      make([]float32, 0, count*2),
	}

	for ring := 0; ring <= rings; ring++ {
		rotation := float64(ring) / float64(rings) * math.Pi * 2
		for segment := 0; segment <= segments; segment++ {
			t := float64(segment)/float64(segments)*math.Pi*2 - math.Pi
			pt := p.EvaluateRadians(t, rotation, o)
			m.Vertices = append(m.Vertices, float32(pt.X), float32(pt.Y), float32(pt.Z))
			m.UVs = append(m.UVs, float32(segment)/float32(segments), float32(ring)/float32(rings))
		}
	}

	m.Indices = gridIndices(segments, rings)
	return m
}

// gridIndices triangulates a (rings+1)×(segments+1) vertex grid into quads of
// two triangles each, with consistent winding.
func gridIndices(segments, rings int) []uint32 {
	indices := make([]uint32, 0, 6*rings*segments)
	for ring := 0; ring < rings; ring++ {
		for segment := 0; segment < segments; segment++ {
			current := uint32(ring*(segments+1) + segment)
			next := current + uint32(segments) + 1

			indices = append(indices, current, next, current+1)
			indices = append(indices, current+1, next, next+1)
		}
	}
	return indices
}
