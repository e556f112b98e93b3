package reel

import (
	"sync"
	"time"
)

// ReloadError is one failed reload attempt.
type ReloadError struct {
	At    time.Time
	Stage string
	Err   error
}

// Error implements error.
func (e ReloadError) Error() string {
	return e.Stage + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e ReloadError) Unwrap() error {
	return e.Err
}

// errorRing keeps the most recent reload failures.
// A nil ring is valid and records nothing.
type errorRing struct {
	mu      sync.RWMutex
	entries []ReloadError
	next    int
	full    bool
}

// newErrorRing creates a ring holding up to size failures, or nil when
// size is not positive.
func newErrorRing(size int) *errorRing {
	if size <= 0 {
		return nil
	}
	return &errorRing{entries: make([]ReloadError, size)}
}

func (r *errorRing) push(e ReloadError) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[r.next] = e
	r.next++
	if r.next == len(r.entries) {
		r.next = 0
		r.full = true
	}
}

func (r *errorRing) clear() {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.entries)
	r.next = 0
	r.full = false
}

// all returns the recorded failures, oldest first.
func (r *errorRing) all() []ReloadError {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.full {
		if r.next == 0 {
			return nil
		}
		return append([]ReloadError(nil), r.entries[:r.next]...)
	}
	out := make([]ReloadError, 0, len(r.entries))
	out = append(out, r.entries[r.next:]...)
	return append(out, r.entries[:r.next]...)
}
