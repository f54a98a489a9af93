package voice

import (
	"sync"
	"time"
)

// Scheduler assigns gapless playback slots to audio frames as they arrive.
// The cursor marks where the next frame starts: never before the current
// time, never before the end of the previously scheduled frame. Frames are
// played in receipt order regardless of arrival jitter.
type Scheduler struct {
	rate int
	now  func() float64

	mu      sync.Mutex
	cursor  float64
	pending []slot
}

// slot is one scheduled frame's playback window, in seconds on the
// scheduler's clock.
type slot struct {
	start float64
	end   float64
}

// NewScheduler creates a playback scheduler for PCM frames at the given
// sample rate.
func NewScheduler(sampleRate int) *Scheduler {
	epoch := time.Now()
	return &Scheduler{
		rate: sampleRate,
		now:  func() float64 { return time.Since(epoch).Seconds() },
	}
}

// Schedule assigns a playback slot to a frame and returns its start time.
func (s *Scheduler) Schedule(pcm []byte) float64 {
	d := FrameDuration(pcm, s.rate).Seconds()

	s.mu.Lock()
	defer s.mu.Unlock()

	if now := s.now(); s.cursor < now {
		s.cursor = now
	}
	start := s.cursor
	s.cursor += d
	s.pending = append(s.pending, slot{start: start, end: s.cursor})
	return start
}

// Scheduled reports how many frames are still queued or playing.
func (s *Scheduler) Scheduled() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked()
	return len(s.pending)
}

// Interrupt discards everything queued or playing and rewinds the cursor so
// the next frame starts immediately. Returns the number of discarded frames.
func (s *Scheduler) Interrupt() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked()
	n := len(s.pending)
	s.pending = nil
	s.cursor = 0
	return n
}

// Stop discards everything queued or playing without rewinding the cursor.
// Returns the number of discarded frames.
func (s *Scheduler) Stop() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked()
	n := len(s.pending)
	s.pending = nil
	return n
}

// pruneLocked drops frames whose playback window has passed. Callers must
// hold s.mu.
func (s *Scheduler) pruneLocked() {
	now := s.now()
	kept := s.pending[:0]
	for _, sl := range s.pending {
		if sl.end > now {
			kept = append(kept, sl)
		}
	}
	s.pending = kept
}
