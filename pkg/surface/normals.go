package surface

import vmath "github.com/Faultbox/lemniscate-torus/pkg/math"

// ComputeNormals returns one normal per vertex, averaged from the faces that
// share it and weighted by face area. Degenerate faces contribute nothing and
// vertices touched only by degenerate faces get a zero normal.
func ComputeNormals(m Mesh) []float32 {
	normals := make([]float32, len(m.Vertices))

	vertex := func(i uint32) vmath.Vec3 {
		return vmath.Vec3{X: m.Vertices[i*3], Y: m.Vertices[i*3+1], Z: m.Vertices[i*3+2]}
	}

	for f := 0; f+2 < len(m.Indices); f += 3 {
		a, b, c := m.Indices[f], m.Indices[f+1], m.Indices[f+2]
		pa, pb, pc := vertex(a), vertex(b), vertex(c)

		// Unnormalized cross product carries the area weighting.
		n := pb.Sub(pa).Cross(pc.Sub(pa))
		for _, idx := range [3]uint32{a, b, c} {
			normals[idx*3] += n.X
			normals[idx*3+1] += n.Y
			normals[idx*3+2] += n.Z
		}
	}

	for i := 0; i+2 < len(normals); i += 3 {
		n := vmath.Vec3{X: normals[i], Y: normals[i+1], Z: normals[i+2]}.Normalize()
		normals[i], normals[i+1], normals[i+2] = n.X, n.Y, n.Z
	}

	return normals
}

// Interleave packs positions and normals as [px py pz nx ny nz] per vertex,
// the layout the scene renderer binds to attribute locations 0 and 1.
func Interleave(m Mesh, normals []float32) []float32 {
	out := make([]float32, 0, len(m.Vertices)*2)
	for i := 0; i+2 < len(m.Vertices); i += 3 {
		out = append(out, m.Vertices[i], m.Vertices[i+1], m.Vertices[i+2])
		if i+2 < len(normals) {
			out = append(out, normals[i], normals[i+1], normals[i+2])
		} else {
			out = append(out, 0, 0, 0)
		}
	}
	return out
}
