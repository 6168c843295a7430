package engine

import "sync"

// Scheduler runs tick once per frame from a FrameSource. The frame counter
// advances only while playing; tick still runs while paused.
type Scheduler struct {
	frames FrameSource
	tick   func(frame uint64)

	playing    bool
	frame      uint64
	pending    FrameID
	hasPending bool
	started    bool
	stopped    bool
	stopOnce   sync.Once
}

// NewScheduler returns a playing scheduler that has not been started.
func NewScheduler(frames FrameSource, tick func(frame uint64)) *Scheduler {
	return &Scheduler{frames: frames, tick: tick, playing: true}
}

// Start requests the first frame. Later calls do nothing, so at most one
// loop exists.
func (s *Scheduler) Start() {
	if s.started || s.stopped {
		return
	}
	s.started = true
	s.request()
}

// Stop cancels the pending frame. Only the first call has an effect.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.stopped = true
		if s.hasPending {
			s.frames.CancelFrame(s.pending)
			s.hasPending = false
		}
	})
}

// TogglePlay flips between playing and paused and returns the new state.
func (s *Scheduler) TogglePlay() bool {
	s.playing = !s.playing
	return s.playing
}

// Playing reports whether the frame counter advances.
func (s *Scheduler) Playing() bool { return s.playing }

// Frame returns the current frame counter.
func (s *Scheduler) Frame() uint64 { return s.frame }

// Running reports whether a frame request is outstanding.
func (s *Scheduler) Running() bool { return s.hasPending }

func (s *Scheduler) request() {
	s.pending = s.frames.RequestFrame(s.run)
	s.hasPending = true
}

func (s *Scheduler) run() {
	s.hasPending = false
	if s.stopped {
		return
	}
	if s.playing {
		s.frame++
	}
	s.tick(s.frame)
	// tick may have stopped the loop.
	if !s.stopped {
		s.request()
	}
}
