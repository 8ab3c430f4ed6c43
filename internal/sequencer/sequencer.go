// Package sequencer drives the sweep animation one frame at a time.
//
// Each phase sweeps the lemniscate lobe through Rotations rings. Within a ring
// the curve parameter advances from StartParam to EndParam in MainStep
// increments per tick, with SubSteps+1 evaluations per tick feeding the
// ring's polyline. When the last ring of a phase completes, the phase's
// transient polylines are removed and its surfaces are revealed.
package sequencer

import (
	"errors"
	"math"

	"go.uber.org/zap"

	"github.com/Faultbox/lemniscate-torus/pkg/lemniscate"
)

// Parameter range swept for every ring.
const (
	StartParam = -math.Pi / 2
	EndParam   = 3 * math.Pi / 2
)

// Handle identifies a renderable owned by the Sink. NoHandle means none.
type Handle uint32

// NoHandle is the zero Handle.
const NoHandle Handle = 0

// Sink receives the sequencer's output. All calls happen on the tick's
// goroutine and must not retain the points slice.
type Sink interface {
	// MovePoint replaces the moving point's position in place.
	MovePoint(p lemniscate.Point)
	// AddPolyline creates a line renderable through points and returns its handle.
	AddPolyline(o lemniscate.Orientation, points []lemniscate.Point) Handle
	// Remove destroys a renderable created by AddPolyline.
	Remove(h Handle)
	// SetVisible toggles a renderable's visibility flag.
	SetVisible(h Handle, visible bool)
}

// Evaluator computes a curve point. It defaults to lemniscate.Params.Evaluate.
type Evaluator func(t, rotationDegrees float64, o lemniscate.Orientation) lemniscate.Point

// Phase is one sweep orientation plus the renderables revealed when it ends.
type Phase struct {
	Orientation lemniscate.Orientation
	Reveal      []Handle
}

// Config controls stepping. Phases run in order.
type Config struct {
	MainStep     float64 // parameter advance per tick
	SubSteps     int     // extra evaluations per tick
	Rotations    int     // rings per phase
	RotationStep float64 // degrees between consecutive rings
	Phases       []Phase
}

// DefaultConfig returns the reference stepping for the given phases.
func DefaultConfig(phases ...Phase) Config {
	return Config{
		MainStep:     0.2,
		SubSteps:     8,
		Rotations:    18,
		RotationStep: 10,
		Phases:       phases,
	}
}

func (c Config) validate() error {
	switch {
	case c.MainStep <= 0 || math.IsNaN(c.MainStep) || math.IsInf(c.MainStep, 0):
		return errors.New("main step must be a positive number")
	case c.SubSteps < 0:
		return errors.New("sub steps must not be negative")
	case c.Rotations < 1:
		return errors.New("rotations must be at least 1")
	case len(c.Phases) == 0:
		return errors.New("at least one phase is required")
	}
	return nil
}

// State is a snapshot of the sweep progress.
type State struct {
	Phase       int
	Orientation lemniscate.Orientation
	Ring        int
	Param       float64
	Accumulated []lemniscate.Point
	Done        bool
}

// Sequencer owns the sweep state. It is not safe for concurrent use; the
// frame loop calls Tick and then presents.
type Sequencer struct {
	cfg  Config
	sink Sink
	eval Evaluator
	log  *zap.Logger

	phase  int
	ring   int
	param  float64
	points []lemniscate.Point
	curves []Handle // current polyline per ring of the active phase
	done   bool
	ticks  int
}

// Option configures a Sequencer.
type Option func(*Sequencer)

// WithEvaluator replaces the curve evaluator.
func WithEvaluator(e Evaluator) Option {
	return func(s *Sequencer) {
		s.eval = e
	}
}

// WithLogger sets the logger used for phase changes.
func WithLogger(l *zap.Logger) Option {
	return func(s *Sequencer) {
		s.log = l
	}
}

// New creates a sequencer positioned at the start of the first phase.
func New(params lemniscate.Params, cfg Config, sink Sink, opts ...Option) (*Sequencer, error) {
	if sink == nil {
		return nil, errors.New("sequencer: nil sink")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	s := &Sequencer{
		cfg:    cfg,
		sink:   sink,
		eval:   params.Evaluate,
		log:    zap.NewNop(),
		param:  StartParam,
		curves: make([]Handle, cfg.Rotations),
		points: make([]lemniscate.Point, 0, pointsPerRing(cfg)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// pointsPerRing estimates how many evaluations one ring produces.
func pointsPerRing(cfg Config) int {
	ticks := int(math.Ceil((EndParam - StartParam) / cfg.MainStep))
	return ticks * (cfg.SubSteps + 1)
}

// Tick advances the animation by one frame. Once every phase has finished
// it does nothing.
func (s *Sequencer) Tick() {
	if s.done || s.ring >= s.cfg.Rotations {
		return
	}
	s.ticks++

	o := s.cfg.Phases[s.phase].Orientation
	rotation := float64(s.ring) * s.cfg.RotationStep
	subStep := s.cfg.MainStep / float64(s.cfg.SubSteps+1)

	for i := 0; i <= s.cfg.SubSteps; i++ {
		p := s.eval(s.param+float64(i)*subStep, rotation, o)
		if !lemniscate.IsValid(p) {
			continue
		}
		if i == 0 {
			s.sink.MovePoint(p)
		}

		s.points = append(s.points, p)
		if len(s.points) >= 2 {
			s.replaceCurve(o)
		}
	}

	s.param += s.cfg.MainStep
	if s.param < EndParam {
		return
	}

	s.param = StartParam
	s.ring++
	s.points = s.points[:0]

	if s.ring >= s.cfg.Rotations {
		s.finishPhase()
	}
}

// replaceCurve swaps the active ring's polyline for one through all
// accumulated points.
func (s *Sequencer) replaceCurve(o lemniscate.Orientation) {
	if old := s.curves[s.ring]; old != NoHandle {
		s.sink.Remove(old)
	}
	s.curves[s.ring] = s.sink.AddPolyline(o, s.points)
}

func (s *Sequencer) finishPhase() {
	phase := s.cfg.Phases[s.phase]

	for ring, h := range s.curves {
		if h != NoHandle {
			s.sink.Remove(h)
			s.curves[ring] = NoHandle
		}
	}
	for _, h := range phase.Reveal {
		s.sink.SetVisible(h, true)
	}

	s.log.Info("sweep phase complete",
		zap.Stringer("orientation", phase.Orientation),
		zap.Int("rings", s.cfg.Rotations),
		zap.Int("ticks", s.ticks),
	)

	if s.phase+1 < len(s.cfg.Phases) {
		s.phase++
		s.ring = 0
		s.param = StartParam
		return
	}
	s.done = true
}

// Done reports whether every phase has finished.
func (s *Sequencer) Done() bool {
	return s.done
}

// Ticks returns how many ticks did work.
func (s *Sequencer) Ticks() int {
	return s.ticks
}

// Progress returns the fraction of rings completed across all phases.
func (s *Sequencer) Progress() float64 {
	if s.done {
		return 1
	}
	total := len(s.cfg.Phases) * s.cfg.Rotations
	return float64(s.phase*s.cfg.Rotations+s.ring) / float64(total)
}

// State returns a snapshot of the current sweep state.
func (s *Sequencer) State() State {
	return State{
		Phase:       s.phase,
		Orientation: s.cfg.Phases[s.phase].Orientation,
		Ring:        s.ring,
		Param:       s.param,
		Accumulated: append([]lemniscate.Point(nil), s.points...),
		Done:        s.done,
	}
}
