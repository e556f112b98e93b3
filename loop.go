package reel

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/zoobzio/clockz"
)

// ErrLoopRunning is returned when Run is called on a Loop that is already running.
var ErrLoopRunning = errors.New("loop already running")

// Loop is a real-time Scheduler. A single goroutine, the one calling Run,
// executes every callback, so callbacks never overlap. Callbacks may be
// scheduled from any goroutine, before or during Run.
type Loop struct {
	clock clockz.Clock
	queue timerQueue
	wake  chan struct{}

	mu      sync.Mutex
	running bool
}

// NewLoop creates a Loop driven by clockz.RealClock.
func NewLoop() *Loop {
	l := &Loop{
		clock: clockz.RealClock,
		wake:  make(chan struct{}, 1),
	}
	l.queue.changed = l.poke
	return l
}

// Clock sets a custom clock for time operations.
// Use this with clockz.FakeClock for deterministic testing.
// Must be called before Run().
func (l *Loop) Clock(clock clockz.Clock) *Loop {
	l.clock = clock
	return l
}

// ScheduleOnce runs fn once after delay.
// Positive delays shorter than a millisecond are raised to one.
func (l *Loop) ScheduleOnce(delay time.Duration, fn func()) Handle {
	return l.queue.push(l.clock.Now().Add(clampDelay(delay)), 0, fn)
}

// ScheduleRepeating runs fn every interval until cancelled.
func (l *Loop) ScheduleRepeating(interval time.Duration, fn func()) Handle {
	interval = clampInterval(interval)
	return l.queue.push(l.clock.Now().Add(interval), interval, fn)
}

// Pending returns the number of callbacks waiting to fire.
func (l *Loop) Pending() int {
	return l.queue.len()
}

// Run executes callbacks as they fall due until ctx is cancelled.
// It returns ctx.Err() on cancellation.
func (l *Loop) Run(ctx context.Context) error {
	l.mu.Lock()
	if l.running {
		l.mu.Unlock()
		return ErrLoopRunning
	}
	l.running = true
	l.mu.Unlock()

	defer func() {
		l.mu.Lock()
		l.running = false
		l.mu.Unlock()
	}()

	var timer clockz.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		l.drain(ctx)

		// Arm the timer for the earliest pending entry, or leave it nil
		// and wait for a wake-up.
		var timerC <-chan time.Time
		if due, ok := l.queue.next(); ok {
			wait := due.Sub(l.clock.Now())
			if wait <= 0 {
				continue
			}
			if timer == nil {
				timer = l.clock.NewTimer(wait)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C():
					default:
					}
				}
				timer.Reset(wait)
			}
			timerC = timer.C()
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		case <-timerC:
		}
	}
}

// drain fires the entries due at the time it was called. Entries that
// fall due while it runs wait for the next pass.
func (l *Loop) drain(ctx context.Context) {
	now := l.clock.Now()
	for ctx.Err() == nil {
		_, fn, ok := l.queue.popDue(now)
		if !ok {
			return
		}
		fn()
	}
}

func (l *Loop) poke() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Ensure Loop implements Scheduler.
var _ Scheduler = (*Loop)(nil)
