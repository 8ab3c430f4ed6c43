// Package camera provides the orbit camera used to inspect the surface.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/lemniscate-torus/pkg/math"
)

// pitchLimit keeps the camera just short of the poles so LookAt's up vector
// never becomes parallel to the view direction.
const pitchLimit = math32.Pi/2 - 0.001

// OrbitCamera orbits around a target point. Input accumulates pending
// rotation which Update bleeds off at the Damping rate, so the view keeps
// gliding briefly after the mouse stops.
type OrbitCamera struct {
	Target math.Vec3

	// Spherical coordinates around Target
	Distance float32
	Pitch    float32 // elevation above the XZ plane, radians
	Yaw      float32 // rotation around Y, radians; 0 looks down -Z

	// Constraints
	MinDistance float32
	MaxDistance float32

	// Response
	Damping     float32 // 0 disables inertia
	RotateSpeed float32
	ZoomSpeed   float32

	// Projection
	FOV    float32 // vertical, degrees
	Near   float32
	Far    float32
	Aspect float32

	pendingYaw   float32
	pendingPitch float32
	zoomScale    float32

	home orbit
}

type orbit struct {
	target               math.Vec3
	distance, pitch, yaw float32
}

// NewOrbitCamera places a camera at eye looking at target.
func NewOrbitCamera(eye, target math.Vec3) *OrbitCamera {
	c := &OrbitCamera{
		Target:      target,
		MinDistance: 20,
		MaxDistance: 100,
		Damping:     0.05,
		RotateSpeed: 0.5,
		ZoomSpeed:   0.8,
		FOV:         75,
		Near:        0.1,
		Far:         1000,
		Aspect:      16.0 / 9.0,
		zoomScale:   1,
	}

	offset := eye.Sub(target)
	c.Distance = offset.Length()
	if c.Distance > 0 {
		c.Pitch = math32.Asin(offset.Y / c.Distance)
		c.Yaw = math32.Atan2(offset.X, offset.Z)
	}
	c.home = orbit{target: target, distance: c.Distance, pitch: c.Pitch, yaw: c.Yaw}
	return c
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	sinP, cosP := math32.Sincos(c.Pitch)
	sinY, cosY := math32.Sincos(c.Yaw)

	return math.Vec3{
		X: c.Target.X + c.Distance*cosP*sinY,
		Y: c.Target.Y + c.Distance*sinP,
		Z: c.Target.Z + c.Distance*cosP*cosY,
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	up := math.Vec3{X: 0, Y: 1, Z: 0}
	return math.LookAt(c.Position(), c.Target, up)
}

// ProjectionMatrix returns the perspective projection for the current aspect.
func (c *OrbitCamera) ProjectionMatrix() math.Mat4 {
	return math.Perspective(c.FOV*math32.Pi/180, c.Aspect, c.Near, c.Far)
}

// SetViewport updates the aspect ratio after a resize. Degenerate sizes
// are ignored.
func (c *OrbitCamera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// HandleDrag queues a rotation from a mouse drag of (dx, dy) pixels.
// A drag across the full viewport height turns the camera a full circle
// at RotateSpeed 1.
func (c *OrbitCamera) HandleDrag(dx, dy float32, viewportHeight int) {
	if viewportHeight <= 0 {
		return
	}
	h := float32(viewportHeight)
	c.pendingYaw -= 2 * math32.Pi * dx / h * c.RotateSpeed
	c.pendingPitch += 2 * math32.Pi * dy / h * c.RotateSpeed
}

// HandleZoom queues a dolly from wheel ticks; positive moves closer.
func (c *OrbitCamera) HandleZoom(ticks float32) {
	step := math32.Pow(0.95, c.ZoomSpeed)
	c.zoomScale *= math32.Pow(step, ticks)
}

// Update applies pending input. Call once per frame.
func (c *OrbitCamera) Update() {
	if c.Damping > 0 {
		c.Yaw += c.pendingYaw * c.Damping
		c.Pitch += c.pendingPitch * c.Damping
		c.pendingYaw *= 1 - c.Damping
		c.pendingPitch *= 1 - c.Damping
	} else {
		c.Yaw += c.pendingYaw
		c.Pitch += c.pendingPitch
		c.pendingYaw, c.pendingPitch = 0, 0
	}

	c.Distance *= c.zoomScale
	c.zoomScale = 1

	c.clamp()
}

// Reset returns to the construction pose and drops pending motion.
func (c *OrbitCamera) Reset() {
	c.Target = c.home.target
	c.Distance = c.home.distance
	c.Pitch = c.home.pitch
	c.Yaw = c.home.yaw
	c.pendingYaw, c.pendingPitch = 0, 0
	c.zoomScale = 1
}

func (c *OrbitCamera) clamp() {
	if c.Pitch > pitchLimit {
		c.Pitch = pitchLimit
	}
	if c.Pitch < -pitchLimit {
		c.Pitch = -pitchLimit
	}
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}
