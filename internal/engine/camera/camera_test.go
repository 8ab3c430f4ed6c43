package camera

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/Faultbox/lemniscate-torus/pkg/math"
)

const epsilon = 1e-3

func approx(a, b float32) bool {
	return math32.Abs(a-b) < epsilon
}

func newDefault() *OrbitCamera {
	return NewOrbitCamera(math.Vec3{X: 0, Y: 20, Z: 40}, math.Vec3{})
}

func TestNewOrbitCameraPosition(t *testing.T) {
	c := newDefault()

	pos := c.Position()
	if !approx(pos.X, 0) || !approx(pos.Y, 20) || !approx(pos.Z, 40) {
		t.Errorf("Position() = %+v, want (0, 20, 40)", pos)
	}
	if !approx(c.Distance, math32.Sqrt(2000)) {
		t.Errorf("Distance = %v, want %v", c.Distance, math32.Sqrt(2000))
	}
}

func TestViewMatrixLooksAtTarget(t *testing.T) {
	c := newDefault()
	view := c.ViewMatrix()

	// The target lands on the negative view axis at the orbit distance.
	p := view.TransformVec3(c.Target)
	if !approx(p.X, 0) || !approx(p.Y, 0) || !approx(p.Z, -c.Distance) {
		t.Errorf("target in view space = %+v, want (0, 0, %v)", p, -c.Distance)
	}
}

func TestZoomClamps(t *testing.T) {
	c := newDefault()

	for i := 0; i < 200; i++ {
		c.HandleZoom(1)
		c.Update()
	}
	if c.Distance != c.MinDistance {
		t.Errorf("Distance = %v, want min %v", c.Distance, c.MinDistance)
	}

	for i := 0; i < 200; i++ {
		c.HandleZoom(-1)
		c.Update()
	}
	if c.Distance != c.MaxDistance {
		t.Errorf("Distance = %v, want max %v", c.Distance, c.MaxDistance)
	}
}

func TestZoomDirection(t *testing.T) {
	c := newDefault()
	start := c.Distance

	c.HandleZoom(1)
	c.Update()
	if c.Distance >= start {
		t.Errorf("positive wheel should move closer: %v -> %v", start, c.Distance)
	}
}

func TestPitchClamp(t *testing.T) {
	c := newDefault()
	c.Damping = 0

	c.HandleDrag(0, 10000, 720)
	c.Update()
	if c.Pitch > pitchLimit || c.Pitch < pitchLimit-epsilon {
		t.Errorf("Pitch = %v, want clamped to %v", c.Pitch, pitchLimit)
	}

	c.HandleDrag(0, -20000, 720)
	c.Update()
	if c.Pitch < -pitchLimit || c.Pitch > -pitchLimit+epsilon {
		t.Errorf("Pitch = %v, want clamped to %v", c.Pitch, -pitchLimit)
	}
}

func TestDampingGlides(t *testing.T) {
	c := newDefault()
	c.HandleDrag(72, 0, 720)

	// A tenth of the viewport at speed 0.5 is π/10 of total yaw.
	total := -math32.Pi / 10

	c.Update()
	first := c.Yaw
	if !approx(first, total*c.Damping) {
		t.Errorf("first step yaw = %v, want %v", first, total*c.Damping)
	}

	for i := 0; i < 500; i++ {
		c.Update()
	}
	if !approx(c.Yaw, total) {
		t.Errorf("yaw converged to %v, want %v", c.Yaw, total)
	}
}

func TestNoDampingAppliesImmediately(t *testing.T) {
	c := newDefault()
	c.Damping = 0
	c.HandleDrag(-72, 0, 720)
	c.Update()

	if !approx(c.Yaw, math32.Pi/10) {
		t.Errorf("Yaw = %v, want %v", c.Yaw, math32.Pi/10)
	}
	c.Update()
	if !approx(c.Yaw, math32.Pi/10) {
		t.Error("pending rotation should be consumed")
	}
}

func TestDragIgnoresEmptyViewport(t *testing.T) {
	c := newDefault()
	c.HandleDrag(100, 100, 0)
	c.Update()
	if c.Yaw != 0 {
		t.Errorf("Yaw = %v, want 0", c.Yaw)
	}
}

func TestSetViewport(t *testing.T) {
	c := newDefault()

	c.SetViewport(1920, 1080)
	if !approx(c.Aspect, 16.0/9.0) {
		t.Errorf("Aspect = %v", c.Aspect)
	}

	c.SetViewport(0, 1080)
	if !approx(c.Aspect, 16.0/9.0) {
		t.Error("zero width must not change aspect")
	}
}

func TestReset(t *testing.T) {
	c := newDefault()
	c.HandleDrag(300, 200, 720)
	c.HandleZoom(3)
	c.Update()

	c.Reset()
	c.Update()

	pos := c.Position()
	if !approx(pos.Y, 20) || !approx(pos.Z, 40) {
		t.Errorf("Position() after Reset = %+v", pos)
	}
}

func TestProjectionMatrix(t *testing.T) {
	c := newDefault()
	c.Aspect = 1
	m := c.ProjectionMatrix()

	// m[5] is cot(fov/2).
	want := 1 / math32.Tan(75*math32.Pi/360)
	if !approx(m[5], want) || !approx(m[0], want) {
		t.Errorf("projection scale = (%v, %v), want %v", m[0], m[5], want)
	}
}
