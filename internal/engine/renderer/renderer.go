// Package renderer owns global OpenGL state and the frame boundaries.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/lemniscate-torus/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	MSAA       bool
	Background [4]float32
}

// DefaultBackground is the near-black clear colour of the viewer.
var DefaultBackground = [4]float32{0.02, 0.02, 0.04, 1}

// Renderer handles frame setup and viewport management.
type Renderer struct {
	config Config
	log    *zap.Logger
	frames uint64
}

// New initializes OpenGL function pointers and the default state.
// Must be called after the OpenGL context is created.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	if cfg.MSAA {
		gl.Enable(gl.MULTISAMPLE)
	}

	bg := cfg.Background
	if bg == ([4]float32{}) {
		bg = DefaultBackground
	}
	gl.ClearColor(bg[0], bg[1], bg[2], bg[3])

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Close logs renderer shutdown. GPU objects belong to their owners.
func (r *Renderer) Close() {
	r.log.Info("closing renderer", zap.Uint64("frames", r.frames))
}

// Resize updates the viewport to the drawable size in pixels.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the current viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// End finishes the current frame.
func (r *Renderer) End() {
	r.frames++
}

// ReadPixels returns the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	if w <= 0 || h <= 0 {
		return nil, 0, 0
	}
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadBuffer(gl.BACK)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}
