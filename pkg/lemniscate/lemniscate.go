// Package lemniscate evaluates a lemniscate of Bernoulli swept around a major axis.
//
// The planar lobe is
//
//	x0 = a·cos(t) / (1 + sin²t)
//	y0 = a·sin(t)·cos(t) / (1 + sin²t)
//
// and is rotated about the Y axis (horizontal sweep) or the Z axis (vertical
// sweep), then offset by the major radius R along X.
package lemniscate

import (
	"math"

	vmath "github.com/Faultbox/lemniscate-torus/pkg/math"
)

// Orientation selects the plane the lobe is swept through.
type Orientation int

const (
	// Horizontal sweeps the lobe through the XZ plane.
	Horizontal Orientation = iota
	// Vertical sweeps the lobe through the XY plane.
	Vertical
)

// String returns the orientation name used in logs and config files.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Params holds the curve constants. It is immutable and passed by value.
type Params struct {
	Scale       float64 // a: lobe size
	MajorRadius float64 // R: offset of the sweep axis along X
}

// Point is an evaluated curve position.
type Point struct {
	X, Y, Z float64
}

// Vec3 converts the point to the float32 vector uploaded to the GPU.
func (p Point) Vec3() vmath.Vec3 {
	return vmath.Vec3{X: float32(p.X), Y: float32(p.Y), Z: float32(p.Z)}
}

// Lobe returns the planar lemniscate coordinates at parameter t.
// The denominator is at least 1 for every real t.
func (p Params) Lobe(t float64) (x0, y0 float64) {
	sin, cos := math.Sincos(t)
	d := 1 + sin*sin
	return p.Scale * cos / d, p.Scale * sin * cos / d
}

// Evaluate returns the curve point at parameter t with the lobe rotated by
// rotationDegrees around the sweep axis.
func (p Params) Evaluate(t, rotationDegrees float64, o Orientation) Point {
	x0, y0 := p.Lobe(t)
	sin, cos := math.Sincos(rotationDegrees * math.Pi / 180)
	return sweep(x0, y0, sin, cos, p.MajorRadius, o)
}

// EvaluateRadians is Evaluate with the rotation already in radians.
func (p Params) EvaluateRadians(t, rotation float64, o Orientation) Point {
	x0, y0 := p.Lobe(t)
	sin, cos := math.Sincos(rotation)
	return sweep(x0, y0, sin, cos, p.MajorRadius, o)
}

func sweep(x0, y0, sin, cos, r float64, o Orientation) Point {
	if o == Vertical {
		return Point{X: x0*cos + r, Y: x0 * sin, Z: y0}
	}
	return Point{X: x0*cos + r, Y: y0, Z: x0 * sin}
}

// IsValid reports whether every component of p is a finite number.
func IsValid(p Point) bool {
	return finite(p.X) && finite(p.Y) && finite(p.Z)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
