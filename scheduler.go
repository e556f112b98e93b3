package reel

import (
	"container/heap"
	"sync"
	"time"
)

// minInterval is the shortest period a repeating callback may use, and
// the shortest positive one-shot delay. Shorter values are raised to it
// so a callback chain can never starve the queue it lives in.
const minInterval = time.Millisecond

// Handle is a cancellable reference to a scheduled callback.
type Handle interface {
	// Cancel prevents any further firing of the callback. It reports
	// whether the callback was still pending.
	Cancel() bool
}

// Scheduler runs callbacks after a delay.
//
// Implementations must run callbacks one at a time on a single logical
// thread, never earlier than requested, and exactly once per firing.
// Callbacks due at the same instant run in the order they were first
// scheduled.
type Scheduler interface {
	// ScheduleOnce runs fn once after delay.
	ScheduleOnce(delay time.Duration, fn func()) Handle

	// ScheduleRepeating runs fn every interval until the returned handle
	// is cancelled.
	ScheduleRepeating(interval time.Duration, fn func()) Handle
}

// entry is one pending callback in a timerQueue.
type entry struct {
	due      time.Time
	seq      uint64
	interval time.Duration
	fn       func()
	index    int
	queue    *timerQueue
}

// Cancel removes the entry from its queue.
func (e *entry) Cancel() bool {
	return e.queue.cancel(e)
}

// entryHeap orders entries by due time, then by creation sequence.
type entryHeap []*entry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].due.Equal(h[j].due) {
		return h[i].seq < h[j].seq
	}
	return h[i].due.Before(h[j].due)
}

func (h entryHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *entryHeap) Push(x any) {
	e := x.(*entry) //nolint:errcheck // heap only ever holds *entry
	e.index = len(*h)
	*h = append(*h, e)
}

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]
	return e
}

// timerQueue is the shared pending-callback store behind Loop and
// ManualScheduler.
type timerQueue struct {
	mu      sync.Mutex
	entries entryHeap
	seq     uint64

	// changed is invoked outside the lock whenever the earliest due time
	// may have moved.
	changed func()
}

func (q *timerQueue) push(due time.Time, interval time.Duration, fn func()) *entry {
	q.mu.Lock()
	q.seq++
	e := &entry{
		due:      due,
		seq:      q.seq,
		interval: interval,
		fn:       fn,
		queue:    q,
	}
	heap.Push(&q.entries, e)
	q.mu.Unlock()

	q.notify()
	return e
}

func (q *timerQueue) cancel(e *entry) bool {
	q.mu.Lock()
	if e.index < 0 {
		q.mu.Unlock()
		return false
	}
	heap.Remove(&q.entries, e.index)
	q.mu.Unlock()

	q.notify()
	return true
}

// popDue removes and returns the earliest entry due at or before now.
// Repeating entries are put back with their next due time before being
// returned, keeping their original sequence so ordering against entries
// created later stays stable.
func (q *timerQueue) popDue(now time.Time) (time.Time, func(), bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.entries) == 0 || q.entries[0].due.After(now) {
		return time.Time{}, nil, false
	}
	e := heap.Pop(&q.entries).(*entry) //nolint:errcheck // heap only ever holds *entry
	due := e.due
	if e.interval > 0 {
		e.due = e.due.Add(e.interval)
		heap.Push(&q.entries, e)
	}
	return due, e.fn, true
}

// next returns the earliest due time, if any entry is pending.
func (q *timerQueue) next() (time.Time, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.entries) == 0 {
		return time.Time{}, false
	}
	return q.entries[0].due, true
}

func (q *timerQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}

func (q *timerQueue) notify() {
	if q.changed != nil {
		q.changed()
	}
}

func clampInterval(interval time.Duration) time.Duration {
	if interval < minInterval {
		return minInterval
	}
	return interval
}

// clampDelay raises a positive one-shot delay to minInterval. Zero and
// negative delays mean "as soon as possible".
func clampDelay(delay time.Duration) time.Duration {
	if delay <= 0 {
		return 0
	}
	return clampInterval(delay)
}
