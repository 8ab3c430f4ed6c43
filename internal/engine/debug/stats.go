package debug

import "time"

// FrameStats counts frames over one-second windows.
type FrameStats struct {
	windowStart time.Time
	frames      int
	fps         int
	last        time.Duration
}

// NewFrameStats starts counting at now.
func NewFrameStats(now time.Time) *FrameStats {
	return &FrameStats{windowStart: now}
}

// Frame records a frame that took dt. It returns true when a window closed
// and FPS was updated.
func (s *FrameStats) Frame(now time.Time, dt time.Duration) bool {
	s.frames++
	s.last = dt

	elapsed := now.Sub(s.windowStart)
	if elapsed < time.Second {
		return false
	}
	s.fps = int(float64(s.frames) / elapsed.Seconds())
	s.frames = 0
	s.windowStart = now
	return true
}

// FPS returns the rate measured over the last complete window.
func (s *FrameStats) FPS() int {
	return s.fps
}

// FrameTime returns the duration of the most recent frame.
func (s *FrameStats) FrameTime() time.Duration {
	return s.last
}
