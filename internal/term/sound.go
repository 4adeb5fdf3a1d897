package term

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Sound plays the short cues of the terminal viewer. A nil or uninitialized
// Sound is silent.
type Sound struct {
	mu     sync.Mutex
	active bool
}

// NewSound opens the speaker. When no audio device is available it returns a
// silent Sound together with the error, so callers can log and carry on.
func NewSound() (*Sound, error) {
	s := &Sound{}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return s, err
	}
	s.active = true
	return s, nil
}

// Enabled reports whether cues reach the speaker.
func (s *Sound) Enabled() bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Feed plays the cue for a snake eating.
func (s *Sound) Feed() { s.tone(880, 60*time.Millisecond) }

// Death plays the cue for a snake dying or a world freezing.
func (s *Sound) Death() { s.tone(110, 400*time.Millisecond) }

func (s *Sound) tone(freq int, d time.Duration) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return
	}
	sine, err := generators.SineTone(sampleRate, float64(freq))
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

// Close releases the speaker.
func (s *Sound) Close() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active {
		speaker.Close()
		s.active = false
	}
}
