package surface

import (
	"math"
	"testing"

	"github.com/Faultbox/lemniscate-torus/pkg/lemniscate"
)

var reference = lemniscate.Params{Scale: 20, MajorRadius: 10}

func TestBuildTorusCounts(t *testing.T) {
	tests := []struct {
		segments, rings int
	}{
		{64, 64},
		{1, 1},
		{3, 7},
		{16, 4},
	}

	for _, o := range []lemniscate.Orientation{lemniscate.Horizontal, lemniscate.Vertical} {
		for _, tt := range tests {
			m := BuildTorus(reference, tt.segments, tt.rings, o)

			wantVerts := 3 * (tt.rings + 1) * (tt.segments + 1)
			if len(m.Vertices) != wantVerts {
				t.Errorf("%s %dx%d: got %d vertex floats, want %d", o, tt.segments, tt.rings, len(m.Vertices), wantVerts)
			}
			wantIdx := 6 * tt.rings * tt.segments
			if len(m.Indices) != wantIdx {
				t.Errorf("%s %dx%d: got %d indices, want %d", o, tt.segments, tt.rings, len(m.Indices), wantIdx)
			}
			if len(m.UVs) != 2*(tt.rings+1)*(tt.segments+1) {
				t.Errorf("%s %dx%d: got %d uv floats", o, tt.segments, tt.rings, len(m.UVs))
			}
			for _, idx := range m.Indices {
				if int(idx) >= m.VertexCount() {
					t.Fatalf("index %d out of range (%d vertices)", idx, m.VertexCount())
				}
			}
		}
	}
}

func TestBuildTorusIdempotent(t *testing.T) {
	a := BuildTorus(reference, 64, 64, lemniscate.Vertical)
	b := BuildTorus(reference, 64, 64, lemniscate.Vertical)

	if len(a.Vertices) != len(b.Vertices) {
		t.Fatalf("length mismatch: %d vs %d", len(a.Vertices), len(b.Vertices))
	}
	for i := range a.Vertices {
		if math.Float32bits(a.Vertices[i]) != math.Float32bits(b.Vertices[i]) {
			t.Fatalf("vertex float %d differs: %v vs %v", i, a.Vertices[i], b.Vertices[i])
		}
	}
}

func TestBuildTorusMatchesCurve(t *testing.T) {
	const segments, rings = 8, 4
	m := BuildTorus(reference, segments, rings, lemniscate.Horizontal)

	// Ring 1 is a quarter turn; segment 4 is t = 0, the lobe tip.
	i := (1*(segments+1) + 4) * 3
	got := [3]float32{m.Vertices[i], m.Vertices[i+1], m.Vertices[i+2]}
	if math.Abs(float64(got[0]-10)) > 1e-4 || math.Abs(float64(got[1])) > 1e-4 || math.Abs(float64(got[2]-20)) > 1e-4 {
		t.Errorf("vertex at ring 1 segment 4 = %v, want (10, 0, 20)", got)
	}

	uv := (1*(segments+1) + 4) * 2
	if m.UVs[uv] != 0.5 || m.UVs[uv+1] != 0.25 {
		t.Errorf("uv = (%v, %v), want (0.5, 0.25)", m.UVs[uv], m.UVs[uv+1])
	}
}

func TestBuildTorusWinding(t *testing.T) {
	m := BuildTorus(reference, 2, 2, lemniscate.Horizontal)
	want := []uint32{0, 3, 1, 1, 3, 4}
	for i, w := range want {
		if m.Indices[i] != w {
			t.Fatalf("first quad indices = %v, want %v", m.Indices[:6], want)
		}
	}
}

func TestBuildTorusInvalidResolution(t *testing.T) {
	if m := BuildTorus(reference, 0, 64, lemniscate.Horizontal); !m.Empty() || len(m.Vertices) != 0 {
		t.Errorf("expected empty mesh for zero segments, got %d vertices", m.VertexCount())
	}
	if m := BuildTorus(reference, 64, -1, lemniscate.Horizontal); !m.Empty() {
		t.Errorf("expected empty mesh for negative rings")
	}
}

func TestClone(t *testing.T) {
	a := BuildTorus(reference, 4, 4, lemniscate.Horizontal)
	b := a.Clone()

	b.Vertices[0] = 999
	b.Indices[0] = 42
	if a.Vertices[0] == 999 || a.Indices[0] == 42 {
		t.Error("Clone shares buffers with the original")
	}
	if b.VertexCount() != a.VertexCount() || b.TriangleCount() != a.TriangleCount() {
		t.Error("Clone changed counts")
	}
}

func TestSphere(t *testing.T) {
	m := Sphere(20, 16, 8)
	if m.VertexCount() != 17*9 {
		t.Errorf("VertexCount() = %d, want %d", m.VertexCount(), 17*9)
	}
	if m.TriangleCount() != 2*16*8 {
		t.Errorf("TriangleCount() = %d, want %d", m.TriangleCount(), 2*16*8)
	}
	for i := 0; i < len(m.Vertices); i += 3 {
		r := math.Sqrt(float64(m.Vertices[i]*m.Vertices[i] + m.Vertices[i+1]*m.Vertices[i+1] + m.Vertices[i+2]*m.Vertices[i+2]))
		if math.Abs(r-20) > 1e-3 {
			t.Fatalf("vertex %d at radius %v, want 20", i/3, r)
		}
	}
	if !Sphere(1, 0, 0).Empty() {
		t.Error("expected empty sphere for zero resolution")
	}
}
