// Package lighting describes the scene's light rig for GPU upload.
package lighting

import (
	"github.com/Faultbox/lemniscate-torus/pkg/math"
)

// Color is linear RGB in the 0-1 range.
type Color [3]float32

// White is full-intensity white light.
var White = Color{1, 1, 1}

// Scaled returns the color multiplied by intensity, clamped to 0-1.
func (c Color) Scaled(intensity float32) Color {
	var out Color
	for i := range c {
		out[i] = clamp01(c[i] * intensity)
	}
	return out
}

// Directional is a light infinitely far away. Position only defines the
// direction, like a three.js DirectionalLight aimed at the origin.
type Directional struct {
	Position  math.Vec3
	Color     Color
	Intensity float32
}

// Direction returns the normalized vector from the origin towards the light.
func (d Directional) Direction() math.Vec3 {
	if d.Position.Length() == 0 {
		return math.Vec3{X: 0, Y: 1, Z: 0}
	}
	return d.Position.Normalize()
}

// Rig is one ambient term plus one directional light.
type Rig struct {
	Ambient          Color
	AmbientIntensity float32
	Sun              Directional
}

// DefaultRig returns soft white ambient light and a white key light above
// and in front of the surface.
func DefaultRig() Rig {
	return Rig{
		Ambient:          White,
		AmbientIntensity: 0.5,
		Sun: Directional{
			Position:  math.Vec3{X: 10, Y: 20, Z: 30},
			Color:     White,
			Intensity: 1,
		},
	}
}

// Uniforms flattens the rig for upload: ambient rgb, light direction xyz,
// light rgb.
func (r Rig) Uniforms() (ambient, direction, diffuse [3]float32) {
	return r.Ambient.Scaled(r.AmbientIntensity),
		r.Sun.Direction().Array(),
		r.Sun.Color.Scaled(r.Sun.Intensity)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
