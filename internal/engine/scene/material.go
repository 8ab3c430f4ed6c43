package scene

import "github.com/Faultbox/lemniscate-torus/pkg/lemniscate"

// Palette.
var (
	Green = Hex(0x00ff00)
	Amber = Hex(0xffd200)
	Red   = Hex(0xff0000)
)

// Opacities of the revealed surface pair.
const (
	WireframeOpacity = 0.5
	SolidOpacity     = 0.2
)

// MovingPointSize is the moving point's diameter in world units.
const MovingPointSize = 0.5

// Material describes how an object is shaded.
type Material struct {
	Color     [3]float32
	Opacity   float32 // 1 is opaque
	Wireframe bool    // draw triangle edges only
	Lit       bool    // apply the light rig; lines and points are flat
}

// Transparent reports whether the material needs blending.
func (m Material) Transparent() bool {
	return m.Opacity < 1
}

// Hex converts a 0xRRGGBB colour to normalized RGB.
func Hex(rgb uint32) [3]float32 {
	return [3]float32{
		float32(rgb>>16&0xff) / 255,
		float32(rgb>>8&0xff) / 255,
		float32(rgb&0xff) / 255,
	}
}

// OrientationColor is green for the horizontal sweep and amber for the vertical.
func OrientationColor(o lemniscate.Orientation) [3]float32 {
	if o == lemniscate.Vertical {
		return Amber
	}
	return Green
}

// CurveMaterial is the flat, opaque material of a sweep polyline.
func CurveMaterial(o lemniscate.Orientation) Material {
	return Material{Color: OrientationColor(o), Opacity: 1}
}

// SurfaceMaterials returns the translucent wireframe and solid materials of
// a revealed surface in colour c.
func SurfaceMaterials(c [3]float32) (wire, solid Material) {
	wire = Material{Color: c, Opacity: WireframeOpacity, Wireframe: true, Lit: true}
	solid = Material{Color: c, Opacity: SolidOpacity, Lit: true}
	return wire, solid
}

// PointMaterial is the moving point's material.
func PointMaterial() Material {
	return Material{Color: Red, Opacity: 1}
}
