// Package clock paces generations against wall time for the interactive
// front ends.
package clock

import "time"

// DefaultInterval is the delay between generations when none is configured.
const DefaultInterval = 300 * time.Millisecond

// Pacer decides, once per frame, whether the next generation is due. Frames
// arrive faster than generations; time not yet spent carries over.
type Pacer struct {
	interval time.Duration
	pending  time.Duration
	last     time.Time
	paused   bool
}

// NewPacer returns a pacer that fires immediately and then every interval.
func NewPacer(interval time.Duration) *Pacer {
	p := &Pacer{}
	p.SetInterval(interval)
	p.pending = p.interval
	return p
}

// SetInterval changes the delay between generations. Non-positive values
// select DefaultInterval.
func (p *Pacer) SetInterval(d time.Duration) {
	if d <= 0 {
		d = DefaultInterval
	}
	p.interval = d
	if p.pending > d {
		p.pending = d
	}
}

// Interval returns the delay between generations.
func (p *Pacer) Interval() time.Duration { return p.interval }

// Paused reports whether Due is suppressed.
func (p *Pacer) Paused() bool { return p.paused }

// SetPaused stops or resumes pacing. Time spent paused is not owed afterwards.
func (p *Pacer) SetPaused(paused bool) {
	p.paused = paused
	p.last = time.Time{}
	p.pending = 0
}

// Due reports whether a generation should run now.
func (p *Pacer) Due() bool { return p.advance(time.Now()) }

func (p *Pacer) advance(now time.Time) bool {
	if p.paused {
		return false
	}
	if !p.last.IsZero() {
		p.pending += now.Sub(p.last)
	}
	p.last = now
	if p.pending < p.interval {
		return false
	}
	p.pending -= p.interval
	// A long stall yields one generation, not a burst.
	if p.pending > p.interval {
		p.pending = p.interval
	}
	return true
}
