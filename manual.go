package reel

import (
	"sync"
	"time"
)

// ManualScheduler is a Scheduler driven by virtual time. Nothing fires
// until Advance is called, and every callback runs synchronously on the
// caller's goroutine in due order. Use it in tests, or to embed a
// slideshow in a host that owns its own frame clock.
type ManualScheduler struct {
	queue timerQueue

	mu    sync.Mutex
	now   time.Time
	start time.Time
}

// NewManualScheduler creates a ManualScheduler whose virtual clock starts
// at the Unix epoch.
func NewManualScheduler() *ManualScheduler {
	epoch := time.Unix(0, 0).UTC()
	return &ManualScheduler{now: epoch, start: epoch}
}

// ScheduleOnce runs fn once, delay after the current virtual time.
// Positive delays shorter than a millisecond are raised to one.
func (m *ManualScheduler) ScheduleOnce(delay time.Duration, fn func()) Handle {
	return m.queue.push(m.Now().Add(clampDelay(delay)), 0, fn)
}

// ScheduleRepeating runs fn every interval of virtual time until cancelled.
func (m *ManualScheduler) ScheduleRepeating(interval time.Duration, fn func()) Handle {
	interval = clampInterval(interval)
	return m.queue.push(m.Now().Add(interval), interval, fn)
}

// Now returns the current virtual time.
func (m *ManualScheduler) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Elapsed returns the virtual time elapsed since creation.
func (m *ManualScheduler) Elapsed() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now.Sub(m.start)
}

// Pending returns the number of callbacks waiting to fire.
func (m *ManualScheduler) Pending() int {
	return m.queue.len()
}

// Advance moves virtual time forward by d, firing every callback that
// falls due on the way. The clock reads each callback's due time while it
// runs, so callbacks that schedule further work are timed correctly.
// It returns the number of callbacks fired.
func (m *ManualScheduler) Advance(d time.Duration) int {
	m.mu.Lock()
	until := m.now.Add(d)
	m.mu.Unlock()

	fired := 0
	for {
		due, fn, ok := m.queue.popDue(until)
		if !ok {
			break
		}
		m.mu.Lock()
		if due.After(m.now) {
			m.now = due
		}
		m.mu.Unlock()

		fn()
		fired++
	}

	m.mu.Lock()
	m.now = until
	m.mu.Unlock()
	return fired
}

// Ensure ManualScheduler implements Scheduler.
var _ Scheduler = (*ManualScheduler)(nil)
