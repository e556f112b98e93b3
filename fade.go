package reel

import (
	"sync"
	"time"
)

// FadeSteps is the number of opacity steps in a ramp.
const FadeSteps = 10

// DefaultFadeDuration is used when a fade is requested with a zero or
// negative duration.
const DefaultFadeDuration = time.Second

// Ramp is an in-flight opacity transition on one target. It applies
// opacity level/FadeSteps on every tick and cancels its own timer once the
// last level has been applied.
type Ramp struct {
	target Target
	step   int

	mu     sync.Mutex
	level  int
	handle Handle
	done   bool
}

// FadeOut ramps t from opacity 0.9 down to 0.0 over d, one step every
// d/FadeSteps. The ramp has no completion callback; callers that need one
// schedule their own follow-up d later.
func FadeOut(sched Scheduler, t Target, d time.Duration) *Ramp {
	return startRamp(sched, t, d, FadeSteps-1, -1)
}

// FadeIn ramps t from opacity 0.1 up to 1.0 over d, one step every
// d/FadeSteps.
func FadeIn(sched Scheduler, t Target, d time.Duration) *Ramp {
	return startRamp(sched, t, d, 1, 1)
}

func startRamp(sched Scheduler, t Target, d time.Duration, from, step int) *Ramp {
	if d <= 0 {
		d = DefaultFadeDuration
	}
	r := &Ramp{target: t, level: from, step: step}

	r.mu.Lock()
	r.handle = sched.ScheduleRepeating(d/FadeSteps, r.tick)
	r.mu.Unlock()
	return r
}

// tick applies the current level, or finishes the ramp once the level has
// run past either end.
func (r *Ramp) tick() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.done {
		return
	}
	if r.level < 0 || r.level > FadeSteps {
		r.finish()
		return
	}
	r.target.SetOpacity(float64(r.level) / FadeSteps)
	r.level += r.step
}

// Cancel stops the ramp, leaving the target at whatever opacity it last
// received. It reports whether the ramp was still running.
func (r *Ramp) Cancel() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.done {
		return false
	}
	r.finish()
	return true
}

// Done reports whether the ramp has finished or been cancelled.
func (r *Ramp) Done() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.done
}

func (r *Ramp) finish() {
	r.done = true
	if r.handle != nil {
		r.handle.Cancel()
	}
}

// Ensure Ramp implements Handle.
var _ Handle = (*Ramp)(nil)
