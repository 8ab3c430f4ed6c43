package surface

import "github.com/chewxy/math32"

// Sphere builds a UV sphere centred on the origin. It shares the torus grid
// topology, so the same index layout and winding apply.
func Sphere(radius float32, segments, rings int) Mesh {
	if segments < 1 || rings < 1 {
		return Mesh{}
	}

	count := (rings + 1) * (segments + 1)
	m := Mesh{
		Vertices: make([]float32, 0, count*3),
		UVs:      make([]float32, 0, count*2),
	}

	for ring := 0; ring <= rings; ring++ {
		theta := float32(ring) * math32.Pi / float32(rings)
		sinTheta, cosTheta := math32.Sincos(theta)

		for seg := 0; seg <= segments; seg++ {
			phi := float32(seg) * 2 * math32.Pi / float32(segments)
			sinPhi, cosPhi := math32.Sincos(phi)

			m.Vertices = append(m.Vertices,
				cosPhi*sinTheta*radius,
				cosTheta*radius,
				sinPhi*sinTheta*radius,
			)
			m.UVs = append(m.UVs, float32(seg)/float32(segments), float32(ring)/float32(rings))
		}
	}

	m.Indices = gridIndices(segments, rings)
	return m
}
