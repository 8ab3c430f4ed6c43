// Package app wires the window, the scene and the sweep sequencer into the
// viewer's frame loop.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/lemniscate-torus/internal/config"
	"github.com/Faultbox/lemniscate-torus/internal/engine/camera"
	"github.com/Faultbox/lemniscate-torus/internal/engine/debug"
	"github.com/Faultbox/lemniscate-torus/internal/engine/input"
	"github.com/Faultbox/lemniscate-torus/internal/engine/lighting"
	"github.com/Faultbox/lemniscate-torus/internal/engine/overlay"
	"github.com/Faultbox/lemniscate-torus/internal/engine/renderer"
	"github.com/Faultbox/lemniscate-torus/internal/engine/scene"
	"github.com/Faultbox/lemniscate-torus/internal/engine/window"
	"github.com/Faultbox/lemniscate-torus/internal/logger"
	"github.com/Faultbox/lemniscate-torus/internal/sequencer"
	"github.com/Faultbox/lemniscate-torus/pkg/math"
)

// Initial camera pose.
var (
	cameraEye    = math.Vec3{X: 0, Y: 20, Z: 40}
	cameraTarget = math.Vec3{}
)

// App is the viewer instance.
type App struct {
	cfg *config.Config
	log *zap.Logger

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	bindings input.Bindings

	camera   *camera.OrbitCamera
	scene    *scene.Scene
	seq      *sequencer.Sequencer
	panel    *overlay.Panel
	panelGPU *overlay.Renderer

	rotations int

	shots *debug.Screenshots
	stats *debug.FrameStats

	vp             viewport
	dragging       bool
	wantScreenshot bool
}

// New opens the window and builds everything the animation needs.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg:      cfg,
		log:      logger.Named("app"),
		bindings: input.DefaultBindings(),
	}

	a.log.Info("initializing viewer",
		zap.String("variant", cfg.Animation.Variant),
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	var err error
	a.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		MSAA:       cfg.Graphics.MSAA,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	// Fullscreen and HiDPI may not match the requested size.
	a.vp = a.measureViewport()

	// The renderer loads GL entry points, so it must follow the context.
	a.renderer, err = renderer.New(renderer.Config{
		Width:  a.vp.pxW,
		Height: a.vp.pxH,
		MSAA:   cfg.Graphics.MSAA > 0,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.scene, err = scene.New(lighting.DefaultRig(), logger.Named("scene"))
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}

	phases, err := Populate(a.scene, cfg.Animation.Variant)
	if err != nil {
		a.Close()
		return nil, err
	}

	seqCfg := sequencer.DefaultConfig(phases...)
	a.rotations = seqCfg.Rotations
	a.seq, err = sequencer.New(Curve, seqCfg, a.scene,
		sequencer.WithLogger(logger.Named("sequencer")))
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create sequencer: %w", err)
	}
	a.scene.MovePoint(startPoint(phases))

	a.panelGPU, err = overlay.NewRenderer()
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create info panel: %w", err)
	}
	a.panel = overlay.NewPanel(Title, infoLines(cfg.Animation.Variant))
	if !cfg.Animation.ShowInfo {
		a.panel.Dismiss()
	}

	a.camera = newCamera(cfg.Camera)
	a.camera.SetViewport(a.vp.pxW, a.vp.pxH)

	a.input = input.New()
	a.shots = debug.NewScreenshots(cfg.Debug.ScreenshotDir, "lemniscate")

	a.log.Info("viewer initialized",
		zap.Int("objects", a.scene.Len()),
		zap.Int("drawable_width", a.vp.pxW),
		zap.Int("drawable_height", a.vp.pxH),
	)
	return a, nil
}

func (a *App) measureViewport() viewport {
	var vp viewport
	vp.winW, vp.winH = a.window.GetSize()
	vp.pxW, vp.pxH = a.window.DrawableSize()
	return vp
}

func newCamera(cfg config.CameraConfig) *camera.OrbitCamera {
	c := camera.NewOrbitCamera(cameraEye, cameraTarget)
	c.FOV = cfg.FOV
	c.MinDistance = cfg.MinDistance
	c.MaxDistance = cfg.MaxDistance
	c.Damping = cfg.Damping
	c.RotateSpeed = cfg.RotateSpeed
	c.ZoomSpeed = cfg.ZoomSpeed
	return c
}

// Run drives the frame loop until the window closes, Esc is pressed, the
// sweep finishes with ExitOnDone set, or ctx is cancelled. Cancellation is
// observed only between frames.
func (a *App) Run(ctx context.Context) error {
	now := time.Now()
	last := now
	a.stats = debug.NewFrameStats(now)
	doneFrames := 0

	a.log.Info("starting frame loop")

	for {
		select {
		case <-ctx.Done():
			a.log.Info("frame loop cancelled", zap.Error(ctx.Err()))
			return nil
		default:
		}

		frameStart := time.Now()

		if a.input.Update() {
			a.log.Info("window closed")
			return nil
		}
		if quit := a.handleEvents(a.input.Events()); quit {
			return nil
		}

		a.seq.Tick()
		a.camera.Update()
		a.panel.SetStatus(statusLine(a.seq.State(), a.rotations, a.seq.Progress()))

		a.render()
		a.window.SwapBuffers()

		now = time.Now()
		if a.stats.Frame(now, now.Sub(last)) {
			if a.cfg.Debug.ShowFPS {
				a.window.SetTitle(windowTitle(true, a.stats.FPS()))
			}
			a.log.Debug("fps",
				zap.Int("fps", a.stats.FPS()),
				zap.Duration("frame", a.stats.FrameTime()),
				zap.Int("objects", a.scene.Len()),
			)
		}
		last = now

		if a.seq.Done() && a.cfg.Animation.ExitOnDone {
			// Present the final reveal once before leaving.
			if doneFrames++; doneFrames > 1 {
				a.log.Info("sweep finished, exiting", zap.Int("ticks", a.seq.Ticks()))
				return nil
			}
		}

		if budget := frameBudget(a.cfg.Graphics.FPSLimit); budget > 0 {
			if elapsed := time.Since(frameStart); elapsed < budget {
				time.Sleep(budget - elapsed)
			}
		}
	}
}

// handleEvents applies input to the camera, the panel and the bindings.
// It returns true when the viewer should quit.
func (a *App) handleEvents(events []input.Event) bool {
	for _, e := range events {
		switch e.Type {
		case input.EventWindowResize:
			// The event carries window coordinates; the drawable may be larger.
			a.vp = a.measureViewport()
			a.renderer.Resize(a.vp.pxW, a.vp.pxH)
			a.camera.SetViewport(a.vp.pxW, a.vp.pxH)

		case input.EventMouseDown:
			if e.Button != sdl.BUTTON_LEFT {
				continue
			}
			x, y := a.vp.toPixels(e.MouseX, e.MouseY)
			if a.panel.Click(x, y) {
				a.log.Debug("info panel dismissed")
				continue
			}
			a.dragging = !a.panel.Covers(x, y)

		case input.EventMouseUp:
			if e.Button == sdl.BUTTON_LEFT {
				a.dragging = false
			}

		case input.EventMouseMove:
			if a.dragging {
				a.camera.HandleDrag(float32(e.DeltaX), float32(e.DeltaY), a.vp.winH)
			}

		case input.EventMouseWheel:
			a.camera.HandleZoom(float32(e.DeltaY))
		}
	}

	for _, action := range a.bindings.Actions(events) {
		switch action {
		case input.ActionQuit:
			a.log.Info("quit requested")
			return true
		case input.ActionShowInfo:
			a.panel.Show()
		case input.ActionScreenshot:
			a.wantScreenshot = true
		case input.ActionResetCamera:
			a.camera.Reset()
		}
	}
	return false
}

// render draws the scene and the panel into the back buffer.
func (a *App) render() {
	a.renderer.Begin()

	a.scene.Render(scene.View{
		View:       a.camera.ViewMatrix(),
		Projection: a.camera.ProjectionMatrix(),
		Eye:        a.camera.Position(),
		Height:     a.vp.pxH,
	})
	a.panelGPU.Draw(a.panel, a.vp.pxW, a.vp.pxH)

	if a.wantScreenshot {
		a.wantScreenshot = false
		a.screenshot()
	}

	a.renderer.End()
}

func (a *App) screenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.shots.SavePixels(pixels, w, h)
	if err != nil {
		a.log.Error("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

// frameBudget is the minimum frame duration for an FPS limit; 0 means none.
func frameBudget(fps int) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Second / time.Duration(fps)
}

// Close releases resources in reverse creation order. It is safe on a
// partially constructed App.
func (a *App) Close() {
	a.log.Info("closing viewer")

	if a.panelGPU != nil {
		a.panelGPU.Close()
	}
	if a.scene != nil {
		a.scene.Close()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
